// Package chain is the client boundary to the wallet and contract stack.
// The soulbound token contract stores character metadata; the dice game
// contract resolves remote rolls. Both are opaque: the core submits
// transactions and consumes events, nothing more.
package chain

//go:generate mockgen -destination=mock/mock_client.go -package=chainmock github.com/KirkDiggler/sheet-api/internal/clients/chain Client

import (
	"context"
)

// Client defines the interface for the external wallet/contract client.
type Client interface {
	// BalanceOf returns how many soulbound tokens the owner holds (0 or 1).
	BalanceOf(ctx context.Context, owner string) (int64, error)

	// TokenOf returns the owner's token ID. NotFound when the owner holds none.
	TokenOf(ctx context.Context, owner string) (string, error)

	// TokenMetadata fetches the stored metadata for a token.
	// NotFound when the token does not exist.
	TokenMetadata(ctx context.Context, tokenID string) (*TokenMetadata, error)

	// Mint submits a mint transaction binding a new token to the owner.
	Mint(ctx context.Context, owner string, metadata *TokenMetadata) (*TxHandle, error)

	// UpdateTokenMetadata submits a metadata update for an existing token.
	UpdateTokenMetadata(ctx context.Context, tokenID string, metadata *TokenMetadata) (*TxHandle, error)

	// SubmitRoll submits a dice roll transaction. The result arrives later
	// as a RollEvent; the returned handle only proves submission.
	SubmitRoll(ctx context.Context, player string, kindCode int32, reason string) (*TxHandle, error)

	// SubscribeRollEvents returns the inbound DiceRolled event channel.
	// The channel closes when ctx is canceled.
	SubscribeRollEvents(ctx context.Context) (<-chan RollEvent, error)
}
