// Package session provides the repository interface and types for browser
// sessions: the single active character and the roll history, keyed by
// wallet address and durable across page reloads.
package session

//go:generate mockgen -destination=mock/mock_repository.go -package=sessionmock github.com/KirkDiggler/sheet-api/internal/repositories/session Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/sheet-api/internal/entities/character"
	"github.com/KirkDiggler/sheet-api/internal/entities/dice"
)

// Session is the persisted per-owner state blob. Character is nil until
// the owner creates or hydrates one. A session is torn down only by
// explicit reset; wallet disconnect leaves it in place.
type Session struct {
	// Owner is the wallet address the session is keyed by
	Owner string `json:"owner"`

	// Character is the single active character, nil when none exists
	Character *character.Character `json:"character"`

	// Rolls is the bounded roll history, newest first
	Rolls dice.History `json:"rolls"`

	// UpdatedAt is when the session was last saved
	UpdatedAt time.Time `json:"updatedAt"`
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	Owner string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *Session
}

// SaveInput contains parameters for saving a session
type SaveInput struct {
	Session *Session
}

// SaveOutput contains the result of saving a session
type SaveOutput struct {
	Session *Session
}

// DeleteInput contains parameters for deleting a session
type DeleteInput struct {
	Owner string
}

// DeleteOutput contains the result of deleting a session
type DeleteOutput struct{}

// Repository defines the interface for session storage operations
type Repository interface {
	// Get retrieves a session by owner. NotFound when none exists.
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Save stores a session, replacing any existing one for the owner
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Delete removes a session. Deleting a missing session is not an error.
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}
