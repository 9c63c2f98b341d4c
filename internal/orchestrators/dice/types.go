package dice

import (
	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/entities/dice"
)

// State describes an owner's roll lifecycle. An owner with a roll in
// flight cannot start another; the guard exists so a slow remote
// confirmation cannot interleave with a second submission.
type State string

// Roll states
const (
	StateIdle    State = "idle"
	StateRolling State = "rolling"
)

// RollLocalInput defines the request for an instant client-side roll
type RollLocalInput struct {
	Owner string
	Kind  string
	// Reason tags the roll in history, e.g. "attack" or "initiative"
	Reason string
}

// RollLocalOutput defines the response for an instant roll
type RollLocalOutput struct {
	Roll *dice.Roll
}

// RollRemoteInput defines the request for an on-chain roll
type RollRemoteInput struct {
	Owner  string
	Kind   string
	Reason string
}

// RollRemoteOutput defines the response for an on-chain roll. The result
// is not in it: it arrives later through the event pump.
type RollRemoteOutput struct {
	Tx *chain.TxHandle
}

// GetHistoryInput defines the request for reading the roll history.
// Kind filters the view; empty or "all" keeps every roll.
type GetHistoryInput struct {
	Owner string
	Kind  string
}

// GetHistoryOutput defines the response for reading the roll history
type GetHistoryOutput struct {
	Rolls []dice.Roll
	State State
}

// ClearHistoryInput defines the request for clearing the roll history
type ClearHistoryInput struct {
	Owner string
}

// ClearHistoryOutput defines the response for clearing the roll history
type ClearHistoryOutput struct{}
