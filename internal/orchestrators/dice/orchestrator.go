// Package dice implements the dice orchestrator: instant local rolls,
// on-chain rolls resolved through contract events, and the per-owner
// bounded roll history.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/KirkDiggler/sheet-api/internal/orchestrators/dice Service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	rpgdice "github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/entities/dice"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/notifications"
	"github.com/KirkDiggler/sheet-api/internal/pkg/clock"
	"github.com/KirkDiggler/sheet-api/internal/pkg/idgen"
	"github.com/KirkDiggler/sheet-api/internal/repositories/session"
)

// How long a roll result notification stays on screen.
const notifyDuration = 3000 * time.Millisecond

// Name used in history entries when a roll resolves for an owner with no
// character in their session.
const unknownCharacterName = "Unknown"

// Service defines the interface for dice operations
type Service interface {
	// RollLocal resolves a roll immediately with a local random draw.
	RollLocal(ctx context.Context, input *RollLocalInput) (*RollLocalOutput, error)

	// RollRemote submits a roll to the dice contract. The result arrives
	// later as a contract event consumed by Start.
	RollRemote(ctx context.Context, input *RollRemoteInput) (*RollRemoteOutput, error)

	// GetHistory returns the owner's roll history, newest first, optionally
	// filtered by kind, along with the owner's current roll state.
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// ClearHistory empties the owner's roll history. The character stays.
	ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error)

	// Start subscribes to contract roll events and pumps them into history
	// until ctx is canceled.
	Start(ctx context.Context) error
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	SessionRepo session.Repository
	ChainClient chain.Client
	Notifier    notifications.Notifier
	IDGenerator idgen.Generator
	Clock       clock.Clock

	// LocalRollDelay delays local roll resolution, giving the frontend
	// time to animate. Zero resolves immediately.
	LocalRollDelay time.Duration

	// ConfirmTimeout bounds how long a remote roll may stay unconfirmed
	// before the owner is unblocked. Zero means wait forever.
	ConfirmTimeout time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.ChainClient == nil {
		vb.RequiredField("ChainClient")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type pendingRoll struct {
	timer *time.Timer
}

type orchestrator struct {
	sessionRepo    session.Repository
	chainClient    chain.Client
	notifier       notifications.Notifier
	idGen          idgen.Generator
	clock          clock.Clock
	localRollDelay time.Duration
	confirmTimeout time.Duration

	mu      sync.Mutex
	pending map[string]*pendingRoll
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo:    cfg.SessionRepo,
		chainClient:    cfg.ChainClient,
		notifier:       cfg.Notifier,
		idGen:          cfg.IDGenerator,
		clock:          cfg.Clock,
		localRollDelay: cfg.LocalRollDelay,
		confirmTimeout: cfg.ConfirmTimeout,
		pending:        make(map[string]*pendingRoll),
	}, nil
}

// beginRoll marks the owner as rolling. FailedPrecondition when a roll is
// already in flight.
func (o *orchestrator) beginRoll(owner string) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, busy := o.pending[owner]; busy {
		return errors.FailedPreconditionf("a roll is already in flight for %s", owner)
	}
	o.pending[owner] = &pendingRoll{}
	return nil
}

// finishRoll returns the owner to idle. Safe to call when not rolling.
func (o *orchestrator) finishRoll(owner string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if p, ok := o.pending[owner]; ok && p.timer != nil {
		p.timer.Stop()
	}
	delete(o.pending, owner)
}

func (o *orchestrator) stateOf(owner string) State {
	o.mu.Lock()
	defer o.mu.Unlock()

	if _, busy := o.pending[owner]; busy {
		return StateRolling
	}
	return StateIdle
}

// RollLocal resolves a roll immediately with a local random draw
func (o *orchestrator) RollLocal(ctx context.Context, input *RollLocalInput) (*RollLocalOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}
	kind, err := dice.ParseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	if err := o.beginRoll(input.Owner); err != nil {
		return nil, err
	}
	defer o.finishRoll(input.Owner)

	if o.localRollDelay > 0 {
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "roll canceled")
		case <-time.After(o.localRollDelay):
		}
	}

	draw, err := rpgdice.NewRoll(1, int(kind.Sides()))
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll dice")
	}
	result := int32(draw.GetValue())

	roll, err := o.recordRoll(ctx, input.Owner, dice.Roll{
		ID:     o.idGen.Generate(),
		Kind:   kind,
		Result: result,
		Reason: input.Reason,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Local roll resolved",
		"owner", input.Owner,
		"kind", kind,
		"result", result,
	)

	return &RollLocalOutput{Roll: roll}, nil
}

// RollRemote submits a roll to the dice contract
func (o *orchestrator) RollRemote(ctx context.Context, input *RollRemoteInput) (*RollRemoteOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}
	kind, err := dice.ParseKind(input.Kind)
	if err != nil {
		return nil, err
	}

	if err := o.beginRoll(input.Owner); err != nil {
		return nil, err
	}

	tx, err := o.chainClient.SubmitRoll(ctx, input.Owner, kind.Code(), input.Reason)
	if err != nil {
		o.finishRoll(input.Owner)
		o.notifier.Notify(ctx, notifications.Notification{
			Kind:     notifications.KindError,
			Message:  "Dice roll failed. Please try again.",
			Duration: notifyDuration,
		})
		return nil, errors.WrapWithCode(err, errors.CodeTransactionFailed, "failed to submit roll")
	}

	// Stays in the rolling state until the DiceRolled event lands. With a
	// confirm timeout configured the owner is unblocked after it expires
	// even if the event never arrives.
	if o.confirmTimeout > 0 {
		owner := input.Owner
		o.mu.Lock()
		if p, ok := o.pending[owner]; ok {
			p.timer = time.AfterFunc(o.confirmTimeout, func() {
				o.finishRoll(owner)
				slog.Warn("Remote roll unconfirmed past timeout", "owner", owner)
			})
		}
		o.mu.Unlock()
	}

	slog.Info("Remote roll submitted",
		"owner", input.Owner,
		"kind", kind,
		"tx_hash", tx.Hash,
	)

	return &RollRemoteOutput{Tx: tx}, nil
}

// GetHistory returns the owner's roll history
func (o *orchestrator) GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	filter := dice.KindAll
	if input.Kind != "" && input.Kind != string(dice.KindAll) {
		kind, err := dice.ParseKind(input.Kind)
		if err != nil {
			return nil, err
		}
		filter = kind
	}

	out := &GetHistoryOutput{
		Rolls: []dice.Roll{},
		State: o.stateOf(input.Owner),
	}

	getOutput, err := o.sessionRepo.Get(ctx, session.GetInput{Owner: input.Owner})
	if err != nil {
		if errors.IsNotFound(err) {
			return out, nil
		}
		return nil, errors.Wrap(err, "failed to get session")
	}

	out.Rolls = getOutput.Session.Rolls.FilteredSlice(filter)
	return out, nil
}

// ClearHistory empties the owner's roll history
func (o *orchestrator) ClearHistory(ctx context.Context, input *ClearHistoryInput) (*ClearHistoryOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	getOutput, err := o.sessionRepo.Get(ctx, session.GetInput{Owner: input.Owner})
	if err != nil {
		if errors.IsNotFound(err) {
			return &ClearHistoryOutput{}, nil
		}
		return nil, errors.Wrap(err, "failed to get session")
	}

	sess := getOutput.Session
	sess.Rolls = nil
	if _, err := o.sessionRepo.Save(ctx, session.SaveInput{Session: sess}); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	slog.Info("Roll history cleared", "owner", input.Owner)
	return &ClearHistoryOutput{}, nil
}

// Start subscribes to contract roll events and pumps them into history
func (o *orchestrator) Start(ctx context.Context) error {
	events, err := o.chainClient.SubscribeRollEvents(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to subscribe to roll events")
	}

	go func() {
		for event := range events {
			o.handleRollEvent(ctx, event)
		}
		slog.Info("Roll event stream closed")
	}()

	return nil
}

// handleRollEvent resolves a remote roll: history entry, notification, and
// the owner's return to idle.
func (o *orchestrator) handleRollEvent(ctx context.Context, event chain.RollEvent) {
	o.finishRoll(event.Player)

	id := event.RollID
	if id == "" {
		id = o.idGen.Generate()
	}

	roll, err := o.recordRoll(ctx, event.Player, dice.Roll{
		ID:     id,
		Kind:   dice.KindFromCode(event.KindCode),
		Result: event.Result,
		Reason: event.Reason,
	})
	if err != nil {
		slog.Error("Failed to record roll event",
			"player", event.Player,
			"roll_id", event.RollID,
			"error", err,
		)
		return
	}

	slog.Info("Remote roll resolved",
		"player", event.Player,
		"kind", roll.Kind,
		"result", roll.Result,
	)
}

// recordRoll stamps the roll, appends it to the owner's history and fires
// the result notification. A missing session is created on the spot so
// remote results are never dropped.
func (o *orchestrator) recordRoll(ctx context.Context, owner string, roll dice.Roll) (*dice.Roll, error) {
	var sess *session.Session

	getOutput, err := o.sessionRepo.Get(ctx, session.GetInput{Owner: owner})
	if err != nil {
		if !errors.IsNotFound(err) {
			return nil, errors.Wrap(err, "failed to get session")
		}
		sess = &session.Session{Owner: owner}
	} else {
		sess = getOutput.Session
	}

	roll.Timestamp = o.clock.Now()
	roll.CharacterName = unknownCharacterName
	if sess.Character != nil {
		roll.CharacterName = sess.Character.Name
	}

	sess.Rolls.Add(roll)
	if _, err := o.sessionRepo.Save(ctx, session.SaveInput{Session: sess}); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}

	o.notifier.Notify(ctx, notifications.Notification{
		Kind:     notifications.KindSuccess,
		Message:  fmt.Sprintf("%s rolls %s and gets %d!", roll.CharacterName, roll.Kind, roll.Result),
		Duration: notifyDuration,
	})

	return &roll, nil
}
