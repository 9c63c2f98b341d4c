// Package dice implements the dice roll entities: the supported dice
// kinds, the immutable roll record, and the bounded roll history.
package dice

import (
	"github.com/KirkDiggler/sheet-api/internal/errors"
)

// Kind identifies a dice kind. Only d4, d6 and d20 exist in this game.
type Kind string

// Supported dice kinds
const (
	KindD4  Kind = "d4"
	KindD6  Kind = "d6"
	KindD20 Kind = "d20"
)

// KindAll is the history filter wildcard, not a rollable kind.
const KindAll Kind = "all"

// Kinds lists every rollable kind.
func Kinds() []Kind {
	return []Kind{KindD4, KindD6, KindD20}
}

// ParseKind parses a dice kind string. Unrecognized kinds are an explicit
// error; requests never silently fall back to d20.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case KindD4, KindD6, KindD20:
		return Kind(s), nil
	}
	return "", errors.UnsupportedDiceKindf("unsupported dice kind: %q", s)
}

// Sides returns the number of sides, i.e. the maximum roll result.
func (k Kind) Sides() int32 {
	switch k {
	case KindD4:
		return 4
	case KindD6:
		return 6
	case KindD20:
		return 20
	}
	return 0
}

// Code returns the numeric code the dice contract uses on the wire.
func (k Kind) Code() int32 {
	return k.Sides()
}

// KindFromCode decodes a contract event code. The contract can emit codes
// this client never sent, so unknown codes keep the legacy d20 fallback
// instead of dropping the event.
func KindFromCode(code int32) Kind {
	switch code {
	case 4:
		return KindD4
	case 6:
		return KindD6
	case 20:
		return KindD20
	default:
		return KindD20
	}
}
