// Package character implements the character sheet entities.
// NOTE: These are data-only structs plus the pure functions defined over
// them (modifiers, partial updates). Persistence and chain interaction
// live in the repositories and orchestrators.
package character

import "fmt"

// Race is one of the playable races. The set is fixed by the token schema.
type Race string

// Playable races
const (
	RaceHuman    Race = "Human"
	RaceElf      Race = "Elf"
	RaceDwarf    Race = "Dwarf"
	RaceHalfling Race = "Halfling"
	RaceHalfOrc  Race = "Half-Orc"
	RaceGoblin   Race = "Goblin"
)

// Races lists every recognized race in display order.
func Races() []Race {
	return []Race{RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceHalfOrc, RaceGoblin}
}

// IsValid reports whether the race is a recognized enum member.
func (r Race) IsValid() bool {
	switch r {
	case RaceHuman, RaceElf, RaceDwarf, RaceHalfling, RaceHalfOrc, RaceGoblin:
		return true
	}
	return false
}

// Gender is the character's gender, used for portrait selection.
type Gender string

// Genders
const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

// Genders lists every recognized gender.
func Genders() []Gender {
	return []Gender{GenderMale, GenderFemale}
}

// IsValid reports whether the gender is a recognized enum member.
func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// Ability identifies one of the six ability scores.
type Ability string

// Abilities
const (
	AbilityStrength     Ability = "STR"
	AbilityDexterity    Ability = "DEX"
	AbilityConstitution Ability = "CON"
	AbilityIntelligence Ability = "INT"
	AbilityWisdom       Ability = "WIS"
	AbilityCharisma     Ability = "CHA"
)

// Stats holds the six raw ability scores, conventionally 3-20.
type Stats struct {
	STR int32 `json:"STR"`
	DEX int32 `json:"DEX"`
	CON int32 `json:"CON"`
	INT int32 `json:"INT"`
	WIS int32 `json:"WIS"`
	CHA int32 `json:"CHA"`
}

// Value returns the raw score for the given ability. Unknown abilities
// return 0, which yields the -5 floor modifier.
func (s Stats) Value(a Ability) int32 {
	switch a {
	case AbilityStrength:
		return s.STR
	case AbilityDexterity:
		return s.DEX
	case AbilityConstitution:
		return s.CON
	case AbilityIntelligence:
		return s.INT
	case AbilityWisdom:
		return s.WIS
	case AbilityCharisma:
		return s.CHA
	}
	return 0
}

// Attack is a single attack line on the sheet.
type Attack struct {
	Name   string `json:"name"`
	Damage string `json:"damage"`
	Bonus  int32  `json:"bonus"`
	// KeyedAbility is the ability the attack bonus is derived from. Empty
	// for attacks whose bonus is maintained by hand.
	KeyedAbility Ability `json:"keyedAbility,omitempty"`
}

// Character is the canonical in-memory character record. Exactly one
// character is active per session; it is owned by the session store and
// mutated only through the sheet orchestrator.
type Character struct {
	Name       string   `json:"name"`
	Race       Race     `json:"race"`
	Gender     Gender   `json:"gender"`
	Class      string   `json:"class"`
	Level      int32    `json:"level"`
	XP         int32    `json:"xp"`
	Stats      Stats    `json:"stats"`
	HP         int32    `json:"hp"`
	MaxHP      int32    `json:"maxHp"`
	AC         int32    `json:"ac"`
	Background string   `json:"background,omitempty"`
	Alignment  string   `json:"alignment,omitempty"`
	Deity      string   `json:"deity,omitempty"`
	Attacks    []Attack `json:"attacks"`
	Talents    []string `json:"talents"`
	Gear       []string `json:"gear"`
	Portrait   string   `json:"portrait,omitempty"`
}

// Modifier returns the ability modifier for a raw score:
// floor((score-10)/2), rounding toward negative infinity for scores
// below 10 (score 9 is -1, score 3 is -4).
func Modifier(score int32) int32 {
	d := score - 10
	if d < 0 {
		return (d - 1) / 2
	}
	return d / 2
}

// FormatModifier renders a modifier with an explicit sign, e.g. "+3" or "-1".
func FormatModifier(mod int32) string {
	if mod >= 0 {
		return fmt.Sprintf("+%d", mod)
	}
	return fmt.Sprintf("%d", mod)
}

// AbilityModifier returns the modifier for one of the character's abilities.
func (c *Character) AbilityModifier(a Ability) int32 {
	return Modifier(c.Stats.Value(a))
}

// keyedAbilityDefaults maps legacy attack names to the ability their bonus
// is derived from. Data minted before Attack.KeyedAbility existed carries
// only the name, so the name match is kept as a migration default.
var keyedAbilityDefaults = map[string]Ability{
	"Dagger":   AbilityStrength,
	"Crossbow": AbilityDexterity,
}

// DefaultKeyedAbility returns the ability an attack name is conventionally
// keyed to, or empty when the name carries no convention.
func DefaultKeyedAbility(name string) Ability {
	return keyedAbilityDefaults[name]
}

// Clone returns a deep copy of the character. Callers that hand records to
// the view layer use this so edit buffers never alias the canonical record.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}

	out := *c
	out.Attacks = append([]Attack(nil), c.Attacks...)
	out.Talents = append([]string(nil), c.Talents...)
	out.Gear = append([]string(nil), c.Gear...)
	return &out
}
