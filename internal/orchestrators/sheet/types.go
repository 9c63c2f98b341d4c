package sheet

import (
	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/entities/character"
)

// GetCharacterInput defines the request for reading the active character
type GetCharacterInput struct {
	Owner string
}

// GetCharacterOutput defines the response for reading the active character
type GetCharacterOutput struct {
	Character *character.Character
}

// CreateDefaultInput defines the request for creating the default character
type CreateDefaultInput struct {
	Owner string
}

// CreateDefaultOutput defines the response for creating the default character
type CreateDefaultOutput struct {
	Character *character.Character
}

// SetCharacterInput defines the request for replacing the active character
type SetCharacterInput struct {
	Owner     string
	Character *character.Character
}

// SetCharacterOutput defines the response for replacing the active character
type SetCharacterOutput struct {
	Character *character.Character
}

// UpdateCharacterInput defines the request for a partial character update
type UpdateCharacterInput struct {
	Owner   string
	Updates *character.Updates
}

// UpdateCharacterOutput defines the response for a partial character update
type UpdateCharacterOutput struct {
	Character *character.Character
}

// UpdateStatsInput defines the request for updating ability scores
type UpdateStatsInput struct {
	Owner string
	Stats *character.StatUpdates
}

// UpdateStatsOutput defines the response for updating ability scores
type UpdateStatsOutput struct {
	Character *character.Character
}

// ResetInput defines the request for tearing down a session
type ResetInput struct {
	Owner string
}

// ResetOutput defines the response for tearing down a session
type ResetOutput struct{}

// MintCharacterInput defines the request for writing the character to the
// soulbound token
type MintCharacterInput struct {
	Owner string
}

// MintCharacterOutput defines the response for a mint or metadata update.
// Updated is true when an existing token was updated instead of minted.
type MintCharacterOutput struct {
	Tx      *chain.TxHandle
	Updated bool
}

// SyncFromTokenInput defines the request for hydrating the session from
// the owner's token
type SyncFromTokenInput struct {
	Owner string
}

// SyncFromTokenOutput defines the response for hydrating from the token
type SyncFromTokenOutput struct {
	Character *character.Character
}

// SampleSummary is the roster listing entry for a sample character
type SampleSummary struct {
	ID       int32            `json:"id"`
	Name     string           `json:"name"`
	Class    string           `json:"class"`
	Level    int32            `json:"level"`
	Race     character.Race   `json:"race"`
	Gender   character.Gender `json:"gender"`
	Portrait string           `json:"image"`
	Stats    character.Stats  `json:"stats"`
}

// ListSampleCharactersInput defines the request for the sample roster
type ListSampleCharactersInput struct{}

// ListSampleCharactersOutput defines the response for the sample roster
type ListSampleCharactersOutput struct {
	Characters []SampleSummary
}

// GetSampleCharacterInput defines the request for one sample character
type GetSampleCharacterInput struct {
	ID int32
}

// GetSampleCharacterOutput defines the response for one sample character
type GetSampleCharacterOutput struct {
	Character *character.Character
}
