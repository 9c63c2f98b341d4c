package session

import (
	"context"
	"sync"

	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/pkg/clock"
)

// InMemoryRepository implements Repository using in-memory storage. Used
// in tests and in setups without Redis; state does not survive restarts.
type InMemoryRepository struct {
	mu    sync.RWMutex
	store map[string]*Session
	clock clock.Clock
}

// NewInMemory creates a new in-memory repository
func NewInMemory(clk clock.Clock) *InMemoryRepository {
	if clk == nil {
		clk = clock.New()
	}
	return &InMemoryRepository{
		store: make(map[string]*Session),
		clock: clk,
	}
}

var _ Repository = (*InMemoryRepository)(nil)

// Get retrieves a session by owner
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, exists := r.store[input.Owner]
	if !exists {
		return nil, errors.NotFoundf("no session for owner %s", input.Owner)
	}

	// Return a copy to prevent external modification
	out := *sess
	out.Character = sess.Character.Clone()
	out.Rolls = append(out.Rolls[:0:0], sess.Rolls...)
	return &GetOutput{Session: &out}, nil
}

// Save stores a session, replacing any existing one for the owner
func (r *InMemoryRepository) Save(_ context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sess := *input.Session
	sess.Character = input.Session.Character.Clone()
	sess.Rolls = append(sess.Rolls[:0:0], input.Session.Rolls...)
	sess.UpdatedAt = r.clock.Now()

	r.store[sess.Owner] = &sess

	out := sess
	return &SaveOutput{Session: &out}, nil
}

// Delete removes a session
func (r *InMemoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.store, input.Owner)
	return &DeleteOutput{}, nil
}
