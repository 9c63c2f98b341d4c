package character

import (
	"fmt"
	"strings"
)

const portraitDir = "/upload/character-portraits"

// PortraitPath derives the portrait image path from race and gender.
// Male portraits use the bare race slug, female ones a _female suffix.
func PortraitPath(race Race, gender Gender) string {
	slug := strings.ToLower(strings.ReplaceAll(string(race), "-", "_"))
	if gender == GenderFemale {
		return fmt.Sprintf("%s/%s_female.png", portraitDir, slug)
	}
	return fmt.Sprintf("%s/%s.png", portraitDir, slug)
}

// Default returns the fixed baseline character used when no prior record
// exists. Deterministic; callers own the returned copy.
func Default() *Character {
	stats := Stats{
		STR: 11,
		DEX: 17,
		CON: 9,
		INT: 12,
		WIS: 8,
		CHA: 15,
	}

	return &Character{
		Name:   "Ralina Biggins",
		Race:   RaceHalfling,
		Gender: GenderFemale,
		Class:  "Thief",
		Level:  1,
		XP:     10,
		Stats:  stats,
		HP:     3,
		MaxHP:  3,
		AC:     14,
		Attacks: []Attack{
			{Name: "Dagger", Damage: "1d4", Bonus: Modifier(stats.STR), KeyedAbility: AbilityStrength},
			{Name: "Crossbow", Damage: "1d6", Bonus: Modifier(stats.DEX), KeyedAbility: AbilityDexterity},
		},
		Gear:       []string{"Leather armor", "Dagger", "Crossbow", "Bow bolts (20)", "Rations (3)"},
		Talents:    []string{"Stealthy", "Backstab", "Thievery"},
		Background: "Criminal",
		Alignment:  "Neutral",
		Portrait:   PortraitPath(RaceHalfling, GenderFemale),
	}
}
