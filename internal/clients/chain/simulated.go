package chain

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/KirkDiggler/sheet-api/internal/entities/dice"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/pkg/clock"
	"github.com/KirkDiggler/sheet-api/internal/pkg/idgen"
)

const defaultRollDelay = 500 * time.Millisecond

// SimulatedConfig holds the dependencies for the simulated chain client.
type SimulatedConfig struct {
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// RollDelay is how long a simulated roll transaction takes to confirm
	// and emit its event. Zero means the default.
	RollDelay time.Duration
}

// Validate ensures all required dependencies are provided
func (c *SimulatedConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

// Simulated is an in-process Client for development and tests: tokens live
// in memory and roll transactions confirm after a short delay by emitting a
// DiceRolled event with a random result. It mirrors the contract's
// semantics (one soulbound token per owner, event-driven roll outcomes)
// without a chain behind it.
type Simulated struct {
	idGen     idgen.Generator
	clock     clock.Clock
	rollDelay time.Duration

	mu       sync.Mutex
	owners   map[string]string         // owner -> tokenID
	tokens   map[string]*TokenMetadata // tokenID -> metadata
	nextID   int64
	events   chan RollEvent
	closed   bool
	stopOnce sync.Once
}

// NewSimulated creates a new simulated chain client
func NewSimulated(cfg *SimulatedConfig) (*Simulated, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	delay := cfg.RollDelay
	if delay == 0 {
		delay = defaultRollDelay
	}

	return &Simulated{
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
		rollDelay: delay,
		owners:    make(map[string]string),
		tokens:    make(map[string]*TokenMetadata),
		events:    make(chan RollEvent, 16),
	}, nil
}

var _ Client = (*Simulated)(nil)

// BalanceOf returns 1 when the owner holds a token, 0 otherwise.
func (s *Simulated) BalanceOf(_ context.Context, owner string) (int64, error) {
	if owner == "" {
		return 0, errors.InvalidArgument("owner is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[owner]; ok {
		return 1, nil
	}
	return 0, nil
}

// TokenOf returns the owner's token ID.
func (s *Simulated) TokenOf(_ context.Context, owner string) (string, error) {
	if owner == "" {
		return "", errors.InvalidArgument("owner is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	tokenID, ok := s.owners[owner]
	if !ok {
		return "", errors.NotFoundf("no token for owner %s", owner)
	}
	return tokenID, nil
}

// TokenMetadata fetches the stored metadata for a token.
func (s *Simulated) TokenMetadata(_ context.Context, tokenID string) (*TokenMetadata, error) {
	if tokenID == "" {
		return nil, errors.InvalidArgument("token ID is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	meta, ok := s.tokens[tokenID]
	if !ok {
		return nil, errors.NotFoundf("token %s not found", tokenID)
	}

	out := *meta
	return &out, nil
}

// Mint binds a new token to the owner. Soulbound: one token per owner,
// a second mint fails the way the contract would reject it.
func (s *Simulated) Mint(_ context.Context, owner string, metadata *TokenMetadata) (*TxHandle, error) {
	if owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}
	if metadata == nil {
		return nil, errors.InvalidArgument("metadata is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.owners[owner]; ok {
		return nil, errors.WrapWithCode(
			errors.AlreadyExistsf("owner %s already holds a token", owner),
			errors.CodeTransactionFailed, "mint reverted",
		)
	}

	s.nextID++
	tokenID := fmt.Sprintf("%d", s.nextID)
	stored := *metadata
	s.owners[owner] = tokenID
	s.tokens[tokenID] = &stored

	slog.Info("Simulated mint confirmed",
		"owner", owner,
		"token_id", tokenID,
	)

	return &TxHandle{Hash: s.idGen.Generate()}, nil
}

// UpdateTokenMetadata replaces the metadata of an existing token.
func (s *Simulated) UpdateTokenMetadata(_ context.Context, tokenID string, metadata *TokenMetadata) (*TxHandle, error) {
	if tokenID == "" {
		return nil, errors.InvalidArgument("token ID is required")
	}
	if metadata == nil {
		return nil, errors.InvalidArgument("metadata is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tokens[tokenID]; !ok {
		return nil, errors.WrapWithCode(
			errors.NotFoundf("token %s not found", tokenID),
			errors.CodeTransactionFailed, "setTokenURI reverted",
		)
	}

	stored := *metadata
	s.tokens[tokenID] = &stored

	return &TxHandle{Hash: s.idGen.Generate()}, nil
}

// SubmitRoll confirms after the configured delay by emitting a DiceRolled
// event with a uniform random result. Unknown kind codes roll a d20, the
// same fallback the contract applies.
func (s *Simulated) SubmitRoll(_ context.Context, player string, kindCode int32, reason string) (*TxHandle, error) {
	if player == "" {
		return nil, errors.InvalidArgument("player is required")
	}

	kind := dice.KindFromCode(kindCode)
	rollID := s.idGen.Generate()
	handle := &TxHandle{Hash: s.idGen.Generate()}

	time.AfterFunc(s.rollDelay, func() {
		result := rand.Int32N(kind.Sides()) + 1

		s.mu.Lock()
		defer s.mu.Unlock()
		if s.closed {
			return
		}

		s.events <- RollEvent{
			Player:   player,
			RollID:   rollID,
			KindCode: kind.Code(),
			Result:   result,
			Reason:   reason,
		}
	})

	return handle, nil
}

// SubscribeRollEvents returns the inbound event channel. The channel closes
// when ctx is canceled.
func (s *Simulated) SubscribeRollEvents(ctx context.Context) (<-chan RollEvent, error) {
	go func() {
		<-ctx.Done()
		s.stopOnce.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.closed = true
			close(s.events)
		})
	}()

	return s.events, nil
}
