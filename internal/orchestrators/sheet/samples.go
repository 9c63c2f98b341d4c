package sheet

import (
	"github.com/KirkDiggler/sheet-api/internal/entities/character"
)

// sampleCharacter pairs a roster ID with a pre-built character record.
type sampleCharacter struct {
	ID        int32
	Character character.Character
}

// sampleRoster is the built-in gallery of pre-made characters. They are
// read-only templates: loading one copies it into the owner's session.
var sampleRoster = []sampleCharacter{
	{
		ID: 1,
		Character: character.Character{
			Name:       "Ralina",
			Race:       character.RaceElf,
			Gender:     character.GenderFemale,
			Class:      "Wizard",
			Level:      5,
			XP:         350,
			Stats:      character.Stats{STR: 8, DEX: 14, CON: 12, INT: 17, WIS: 13, CHA: 10},
			HP:         28,
			MaxHP:      35,
			AC:         12,
			Background: "Sage",
			Alignment:  "Chaotic Good",
			Deity:      "Seladrine",
			Attacks: []character.Attack{
				{Name: "Magic Missile", Damage: "3d4+3", Bonus: 7},
				{Name: "Staff", Damage: "1d6", Bonus: 2},
			},
			Talents:  []string{"Mage Hand", "Fireball", "Mage Shield", "Invisibility"},
			Gear:     []string{"Spellbook", "Wizard Staff", "Spell Components", "Magic Robe", "Healing Potion"},
			Portrait: "/upload/character-portraits/elf_female.png",
		},
	},
	{
		ID: 2,
		Character: character.Character{
			Name:       "Thorn",
			Race:       character.RaceHuman,
			Gender:     character.GenderMale,
			Class:      "Warrior",
			Level:      7,
			XP:         550,
			Stats:      character.Stats{STR: 16, DEX: 12, CON: 15, INT: 8, WIS: 10, CHA: 14},
			HP:         65,
			MaxHP:      65,
			AC:         18,
			Background: "Soldier",
			Alignment:  "Lawful Neutral",
			Deity:      "Tempus",
			Attacks: []character.Attack{
				{Name: "Longsword", Damage: "1d8+3", Bonus: 6},
				{Name: "Heavy Crossbow", Damage: "1d10", Bonus: 4},
			},
			Talents:  []string{"Fighting Style: Protection", "Second Wind", "Improved Critical Hit", "Extra Attack"},
			Gear:     []string{"Chainmail", "Shield", "Longsword", "Heavy Crossbow", "Explorer Pack"},
			Portrait: "/upload/character-portraits/human.png",
		},
	},
	{
		ID: 3,
		Character: character.Character{
			Name:       "Grokk",
			Race:       character.RaceHalfOrc,
			Gender:     character.GenderMale,
			Class:      "Barbarian",
			Level:      6,
			XP:         450,
			Stats:      character.Stats{STR: 18, DEX: 12, CON: 16, INT: 7, WIS: 10, CHA: 8},
			HP:         72,
			MaxHP:      72,
			AC:         15,
			Background: "Outlander",
			Alignment:  "Chaotic Neutral",
			Deity:      "Gruumsh",
			Attacks: []character.Attack{
				{Name: "Battle Axe", Damage: "1d12+4", Bonus: 7},
				{Name: "Throwing Axes", Damage: "1d6+4", Bonus: 7},
			},
			Talents:  []string{"Rage", "Reckless Attack", "Danger Sense", "Path of the Berserker"},
			Gear:     []string{"Leather Armor", "Battle Axe", "Throwing Axes (3)", "Fang Amulet", "Hunting Horn"},
			Portrait: "/upload/character-portraits/half_orc.png",
		},
	},
	{
		ID: 4,
		Character: character.Character{
			Name:       "Lilia",
			Race:       character.RaceHalfling,
			Gender:     character.GenderFemale,
			Class:      "Druid",
			Level:      5,
			XP:         330,
			Stats:      character.Stats{STR: 10, DEX: 16, CON: 12, INT: 13, WIS: 17, CHA: 14},
			HP:         36,
			MaxHP:      40,
			AC:         14,
			Background: "Hermit",
			Alignment:  "Neutral Good",
			Deity:      "Silvanus",
			Attacks: []character.Attack{
				{Name: "Staff", Damage: "1d6", Bonus: 4},
				{Name: "Sickle", Damage: "1d4", Bonus: 4},
			},
			Talents:  []string{"Wild Shape", "Speak with Plants", "Entangle", "Restoration", "Circle of Land"},
			Gear:     []string{"Leather Armor", "Wooden Shield", "Staff", "Sickle", "Druidic Focus", "Herbalism Kit"},
			Portrait: "/upload/character-portraits/halfling_female.png",
		},
	},
	{
		ID: 5,
		Character: character.Character{
			Name:       "Grimnir",
			Race:       character.RaceDwarf,
			Gender:     character.GenderFemale,
			Class:      "Mage",
			Level:      4,
			XP:         290,
			Stats:      character.Stats{STR: 12, DEX: 10, CON: 14, INT: 16, WIS: 14, CHA: 9},
			HP:         26,
			MaxHP:      30,
			AC:         13,
			Background: "Guild Artisan",
			Alignment:  "Lawful Neutral",
			Deity:      "Moradin",
			Attacks: []character.Attack{
				{Name: "Runic Staff", Damage: "1d6+2", Bonus: 4},
				{Name: "Fireball", Damage: "3d6", Bonus: 6},
			},
			Talents:  []string{"School of Evocation", "Arcane Recovery", "Runic Magic", "Enchantment"},
			Gear:     []string{"Runic Staff", "Spellbook", "Magic Amulet", "Power Runes", "Mana Potions (2)"},
			Portrait: "/upload/character-portraits/dwarf_female_mage.png",
		},
	},
}
