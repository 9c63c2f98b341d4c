// Package conversion provides the mapping between the in-memory character
// record and the flat token metadata schema stored on the soulbound token.
//
// The mapping is deliberately lossy in one direction: the token schema has
// no attack slots and a single hit-point value, so decoding sets attacks to
// empty and maximum HP equal to current HP. RoundTripLoss documents the
// loss for logging and tests instead of silently discarding it.
package conversion

import (
	"fmt"

	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/entities/character"
	"github.com/KirkDiggler/sheet-api/internal/errors"
)

// CharacterToTokenMetadata flattens a character into the token schema.
// Total and pure: every scalar and list field is preserved except the
// attack list (no slot in the schema) and MaxHP (collapsed into HP).
func CharacterToTokenMetadata(c *character.Character) *chain.TokenMetadata {
	if c == nil {
		return nil
	}

	return &chain.TokenMetadata{
		Name:       c.Name,
		Race:       string(c.Race),
		Gender:     string(c.Gender),
		Class:      c.Class,
		Level:      c.Level,
		XP:         c.XP,
		Stats:      c.Stats,
		HP:         c.HP,
		AC:         c.AC,
		Gear:       append([]string(nil), c.Gear...),
		Talents:    append([]string(nil), c.Talents...),
		Background: c.Background,
		Alignment:  c.Alignment,
		Deity:      c.Deity,
		Image:      c.Portrait,
	}
}

// TokenMetadataToCharacter reconstructs a character from token metadata.
// Never errors: unrecognized race or gender strings fall back to Human and
// Male, MaxHP is set equal to HP, and attacks start empty.
func TokenMetadataToCharacter(m *chain.TokenMetadata) *character.Character {
	if m == nil {
		return nil
	}

	race := character.Race(m.Race)
	if !race.IsValid() {
		race = character.RaceHuman
	}

	gender := character.Gender(m.Gender)
	if !gender.IsValid() {
		gender = character.GenderMale
	}

	return &character.Character{
		Name:       m.Name,
		Race:       race,
		Gender:     gender,
		Class:      m.Class,
		Level:      m.Level,
		XP:         m.XP,
		Stats:      m.Stats,
		HP:         m.HP,
		MaxHP:      m.HP,
		AC:         m.AC,
		Background: m.Background,
		Alignment:  m.Alignment,
		Deity:      m.Deity,
		Attacks:    []character.Attack{},
		Talents:    append([]string(nil), m.Talents...),
		Gear:       append([]string(nil), m.Gear...),
		Portrait:   m.Image,
	}
}

// RoundTripLoss reports what an encode/decode round trip of the given
// character would lose. Nil when the round trip is exact; otherwise a
// CodecLoss error listing the lossy fields. Informational only, never
// treated as a failure.
func RoundTripLoss(c *character.Character) *errors.Error {
	if c == nil {
		return nil
	}

	var lost []string
	if len(c.Attacks) > 0 {
		lost = append(lost, fmt.Sprintf("attacks (%d entries dropped)", len(c.Attacks)))
	}
	if c.MaxHP != c.HP {
		lost = append(lost, fmt.Sprintf("maxHp (%d collapses to hp %d)", c.MaxHP, c.HP))
	}

	if len(lost) == 0 {
		return nil
	}

	err := errors.CodecLoss("token metadata round trip is lossy")
	return err.WithMeta("fields", lost)
}
