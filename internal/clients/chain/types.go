package chain

import (
	"github.com/KirkDiggler/sheet-api/internal/entities/character"
)

// TokenMetadata is the flat character schema stored on the soulbound token.
// It is the external format: no attack list and a single hit-point value,
// so a Character -> TokenMetadata -> Character round trip loses attacks and
// the current/maximum HP split.
type TokenMetadata struct {
	Name       string          `json:"name"`
	Race       string          `json:"race"`
	Gender     string          `json:"gender"`
	Class      string          `json:"class"`
	Level      int32           `json:"level"`
	XP         int32           `json:"xp"`
	Stats      character.Stats `json:"stats"`
	HP         int32           `json:"hp"`
	AC         int32           `json:"ac"`
	Gear       []string        `json:"gear"`
	Talents    []string        `json:"talents"`
	Background string          `json:"background,omitempty"`
	Alignment  string          `json:"alignment,omitempty"`
	Deity      string          `json:"deity,omitempty"`
	Image      string          `json:"image,omitempty"`
}

// TokenInfo pairs a token with its owner and metadata.
type TokenInfo struct {
	TokenID  string         `json:"tokenId"`
	Owner    string         `json:"owner"`
	Metadata *TokenMetadata `json:"metadata"`
}

// TxHandle identifies a submitted transaction. Submission never implies
// resolution; outcomes arrive as events.
type TxHandle struct {
	Hash string `json:"hash"`
}

// RollEvent is a DiceRolled contract event as delivered by the wallet
// client: (player, rollId, diceKindCode, result, reason).
type RollEvent struct {
	Player   string
	RollID   string
	KindCode int32
	Result   int32
	Reason   string
}
