package character

import (
	"github.com/KirkDiggler/sheet-api/internal/errors"
)

// Updates is a typed partial update for a character. Nil fields are left
// untouched; set fields are shallow-merged over the existing record.
// Unknown fields are rejected at the HTTP boundary before an Updates value
// is ever built, so the schema here is the whole mutation surface.
type Updates struct {
	Name       *string   `json:"name,omitempty"`
	Race       *Race     `json:"race,omitempty"`
	Gender     *Gender   `json:"gender,omitempty"`
	Class      *string   `json:"class,omitempty"`
	Level      *int32    `json:"level,omitempty"`
	XP         *int32    `json:"xp,omitempty"`
	HP         *int32    `json:"hp,omitempty"`
	MaxHP      *int32    `json:"maxHp,omitempty"`
	AC         *int32    `json:"ac,omitempty"`
	Background *string   `json:"background,omitempty"`
	Alignment  *string   `json:"alignment,omitempty"`
	Deity      *string   `json:"deity,omitempty"`
	Attacks    *[]Attack `json:"attacks,omitempty"`
	Talents    *[]string `json:"talents,omitempty"`
	Gear       *[]string `json:"gear,omitempty"`
	Portrait   *string   `json:"portrait,omitempty"`
}

// Validate checks every set field against the schema.
func (u *Updates) Validate() error {
	vb := errors.NewValidationBuilder()

	if u.Race != nil && !u.Race.IsValid() {
		vb.InvalidField("race", "not a recognized race")
	}
	if u.Gender != nil && !u.Gender.IsValid() {
		vb.InvalidField("gender", "not a recognized gender")
	}
	if u.Level != nil && *u.Level < 1 {
		vb.Field("level", "must be at least 1")
	}
	if u.XP != nil && *u.XP < 0 {
		vb.Field("xp", "must not be negative")
	}
	if u.HP != nil && *u.HP < 0 {
		vb.Field("hp", "must not be negative")
	}
	if u.MaxHP != nil && *u.MaxHP < 1 {
		vb.Field("maxHp", "must be at least 1")
	}

	return vb.Build()
}

// Apply returns a new character with the updates merged over the given
// record. The input record is not modified.
func (u *Updates) Apply(c *Character) (*Character, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := u.Validate(); err != nil {
		return nil, err
	}

	out := c.Clone()

	if u.Name != nil {
		out.Name = *u.Name
	}
	if u.Race != nil {
		out.Race = *u.Race
	}
	if u.Gender != nil {
		out.Gender = *u.Gender
	}
	if u.Class != nil {
		out.Class = *u.Class
	}
	if u.Level != nil {
		out.Level = *u.Level
	}
	if u.XP != nil {
		out.XP = *u.XP
	}
	if u.HP != nil {
		out.HP = *u.HP
	}
	if u.MaxHP != nil {
		out.MaxHP = *u.MaxHP
	}
	if u.AC != nil {
		out.AC = *u.AC
	}
	if u.Background != nil {
		out.Background = *u.Background
	}
	if u.Alignment != nil {
		out.Alignment = *u.Alignment
	}
	if u.Deity != nil {
		out.Deity = *u.Deity
	}
	if u.Attacks != nil {
		out.Attacks = append([]Attack(nil), *u.Attacks...)
	}
	if u.Talents != nil {
		out.Talents = append([]string(nil), *u.Talents...)
	}
	if u.Gear != nil {
		out.Gear = append([]string(nil), *u.Gear...)
	}
	if u.Portrait != nil {
		out.Portrait = *u.Portrait
	}

	// A race or gender change without an explicit portrait override moves
	// the derived portrait along with it.
	if (u.Race != nil || u.Gender != nil) && u.Portrait == nil {
		out.Portrait = PortraitPath(out.Race, out.Gender)
	}

	return out, nil
}

// StatUpdates is a typed partial update for the six ability scores.
type StatUpdates struct {
	STR *int32 `json:"STR,omitempty"`
	DEX *int32 `json:"DEX,omitempty"`
	CON *int32 `json:"CON,omitempty"`
	INT *int32 `json:"INT,omitempty"`
	WIS *int32 `json:"WIS,omitempty"`
	CHA *int32 `json:"CHA,omitempty"`
}

// Apply returns a new character with the stat updates merged in. Any attack
// keyed to an ability, explicitly or by the legacy name convention, gets its
// bonus recomputed from the new scores. Attacks outside both are untouched.
func (su *StatUpdates) Apply(c *Character) (*Character, error) {
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	out := c.Clone()

	if su.STR != nil {
		out.Stats.STR = *su.STR
	}
	if su.DEX != nil {
		out.Stats.DEX = *su.DEX
	}
	if su.CON != nil {
		out.Stats.CON = *su.CON
	}
	if su.INT != nil {
		out.Stats.INT = *su.INT
	}
	if su.WIS != nil {
		out.Stats.WIS = *su.WIS
	}
	if su.CHA != nil {
		out.Stats.CHA = *su.CHA
	}

	for i := range out.Attacks {
		keyed := out.Attacks[i].KeyedAbility
		if keyed == "" {
			keyed = DefaultKeyedAbility(out.Attacks[i].Name)
		}
		if keyed == "" {
			continue
		}
		out.Attacks[i].Bonus = Modifier(out.Stats.Value(keyed))
	}

	return out, nil
}
