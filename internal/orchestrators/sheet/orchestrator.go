// Package sheet implements the character sheet orchestrator: the active
// character lifecycle, typed partial updates, the sample roster, and the
// soulbound token round trip.
package sheet

//go:generate mockgen -destination=mock/mock_service.go -package=sheetmock github.com/KirkDiggler/sheet-api/internal/orchestrators/sheet Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/sheet-api/internal/clients/chain"
	"github.com/KirkDiggler/sheet-api/internal/entities/character"
	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/notifications"
	"github.com/KirkDiggler/sheet-api/internal/repositories/session"
	"github.com/KirkDiggler/sheet-api/internal/services/conversion"
)

const notifyDuration = 3000 * time.Millisecond

// Service defines the interface for character sheet operations
type Service interface {
	// GetCharacter returns the owner's active character. NotFound when the
	// session has none.
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error)

	// CreateDefault puts the built-in starter character into the session.
	// AlreadyExists when the session already has a character.
	CreateDefault(ctx context.Context, input *CreateDefaultInput) (*CreateDefaultOutput, error)

	// SetCharacter replaces the active character with the given record.
	SetCharacter(ctx context.Context, input *SetCharacterInput) (*SetCharacterOutput, error)

	// UpdateCharacter applies a typed partial update to the active character.
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error)

	// UpdateStats applies ability score changes, recomputing keyed attack
	// bonuses.
	UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error)

	// Reset tears down the owner's session: character and roll history.
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// MintCharacter writes the active character to the owner's soulbound
	// token, minting one if the owner holds none.
	MintCharacter(ctx context.Context, input *MintCharacterInput) (*MintCharacterOutput, error)

	// SyncFromToken hydrates the session character from the owner's token.
	SyncFromToken(ctx context.Context, input *SyncFromTokenInput) (*SyncFromTokenOutput, error)

	// ListSampleCharacters returns the built-in roster summaries.
	ListSampleCharacters(ctx context.Context, input *ListSampleCharactersInput) (*ListSampleCharactersOutput, error)

	// GetSampleCharacter returns one roster character by ID.
	GetSampleCharacter(ctx context.Context, input *GetSampleCharacterInput) (*GetSampleCharacterOutput, error)
}

// Config holds the dependencies for the sheet orchestrator
type Config struct {
	SessionRepo session.Repository
	ChainClient chain.Client
	Notifier    notifications.Notifier
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

	return vb.Build()
}

type orchestrator struct {
	sessionRepo session.Repository
	chainClient chain.Client
	notifier    notifications.Notifier
}

// NewOrchestrator creates a new sheet orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo: cfg.SessionRepo,
		chainClient: cfg.ChainClient,
		notifier:    cfg.Notifier,
	}, nil
}

// loadSession returns the owner's session, or a fresh empty one when none
// is stored yet.
func (o *orchestrator) loadSession(ctx context.Context, owner string) (*session.Session, error) {
	getOutput, err := o.sessionRepo.Get(ctx, session.GetInput{Owner: owner})
	if err != nil {
		if errors.IsNotFound(err) {
			return &session.Session{Owner: owner}, nil
		}
		return nil, errors.Wrap(err, "failed to get session")
	}
	return getOutput.Session, nil
}

// loadCharacter returns the owner's active character. NotFound when the
// session has none.
func (o *orchestrator) loadCharacter(ctx context.Context, owner string) (*session.Session, error) {
	sess, err := o.loadSession(ctx, owner)
	if err != nil {
		return nil, err
	}
	if sess.Character == nil {
		return nil, errors.NotFoundf("no character for owner %s", owner)
	}
	return sess, nil
}

// saveCharacter writes the character into the owner's session, keeping the
// roll history.
func (o *orchestrator) saveCharacter(ctx context.Context, sess *session.Session, c *character.Character) error {
	sess.Character = c
	if _, err := o.sessionRepo.Save(ctx, session.SaveInput{Session: sess}); err != nil {
		return errors.Wrap(err, "failed to save session")
	}
	return nil
}

// GetCharacter returns the owner's active character
func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*GetCharacterOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	sess, err := o.loadCharacter(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	return &GetCharacterOutput{Character: sess.Character}, nil
}

// CreateDefault puts the built-in starter character into the session
func (o *orchestrator) CreateDefault(ctx context.Context, input *CreateDefaultInput) (*CreateDefaultOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	sess, err := o.loadSession(ctx, input.Owner)
	if err != nil {
		return nil, err
	}
	if sess.Character != nil {
		return nil, errors.AlreadyExistsf("owner %s already has a character", input.Owner)
	}

	c := character.Default()
	if err := o.saveCharacter(ctx, sess, c); err != nil {
		return nil, err
	}

	slog.Info("Default character created", "owner", input.Owner, "name", c.Name)
	return &CreateDefaultOutput{Character: c}, nil
}

// validateCharacter checks a full character record before it enters the
// session.
func validateCharacter(c *character.Character) error {
	vb := errors.NewValidationBuilder()

	if c.Name == "" {
		vb.RequiredField("name")
	}
	if !c.Race.IsValid() {
		vb.InvalidField("race", "not a recognized race")
	}
	if !c.Gender.IsValid() {
		vb.InvalidField("gender", "not a recognized gender")
	}
	if c.Level < 1 {
		vb.Field("level", "must be at least 1")
	}
	if c.XP < 0 {
		vb.Field("xp", "must not be negative")
	}
	if c.HP < 0 {
		vb.Field("hp", "must not be negative")
	}
	if c.MaxHP < 1 {
		vb.Field("maxHp", "must be at least 1")
	}

	return vb.Build()
}

// SetCharacter replaces the active character with the given record
func (o *orchestrator) SetCharacter(ctx context.Context, input *SetCharacterInput) (*SetCharacterOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}
	if input.Character == nil {
		return nil, errors.InvalidArgument("character is required")
	}
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	sess, err := o.loadSession(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	c := input.Character.Clone()
	if c.Portrait == "" {
		c.Portrait = character.PortraitPath(c.Race, c.Gender)
	}

	if err := o.saveCharacter(ctx, sess, c); err != nil {
		return nil, err
	}

	slog.Info("Character set", "owner", input.Owner, "name", c.Name)
	return &SetCharacterOutput{Character: c}, nil
}

// UpdateCharacter applies a typed partial update to the active character
func (o *orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*UpdateCharacterOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}
	if input.Updates == nil {
		return nil, errors.InvalidArgument("updates are required")
	}

	sess, err := o.loadCharacter(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	updated, err := input.Updates.Apply(sess.Character)
	if err != nil {
		return nil, err
	}

	if err := o.saveCharacter(ctx, sess, updated); err != nil {
		return nil, err
	}

	return &UpdateCharacterOutput{Character: updated}, nil
}

// UpdateStats applies ability score changes
func (o *orchestrator) UpdateStats(ctx context.Context, input *UpdateStatsInput) (*UpdateStatsOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}
	if input.Stats == nil {
		return nil, errors.InvalidArgument("stats are required")
	}

	sess, err := o.loadCharacter(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	updated, err := input.Stats.Apply(sess.Character)
	if err != nil {
		return nil, err
	}

	if err := o.saveCharacter(ctx, sess, updated); err != nil {
		return nil, err
	}

	return &UpdateStatsOutput{Character: updated}, nil
}

// Reset tears down the owner's session
func (o *orchestrator) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	if _, err := o.sessionRepo.Delete(ctx, session.DeleteInput{Owner: input.Owner}); err != nil {
		return nil, errors.Wrap(err, "failed to delete session")
	}

	slog.Info("Session reset", "owner", input.Owner)
	return &ResetOutput{}, nil
}

// MintCharacter writes the active character to the owner's soulbound token
func (o *orchestrator) MintCharacter(ctx context.Context, input *MintCharacterInput) (*MintCharacterOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	sess, err := o.loadCharacter(ctx, input.Owner)
	if err != nil {
		return nil, err
	}

	if loss := conversion.RoundTripLoss(sess.Character); loss != nil {
		slog.Warn("Minting loses sheet data",
			"owner", input.Owner,
			"fields", loss.Meta["fields"],
		)
	}

	metadata := conversion.CharacterToTokenMetadata(sess.Character)

	balance, err := o.chainClient.BalanceOf(ctx, input.Owner)
	if err != nil {
		return nil, o.mintFailed(ctx, err, "failed to check token balance")
	}

	// One token per owner: holders update metadata, newcomers mint.
	if balance > 0 {
		tokenID, err := o.chainClient.TokenOf(ctx, input.Owner)
		if err != nil {
			return nil, o.mintFailed(ctx, err, "failed to resolve token")
		}

		tx, err := o.chainClient.UpdateTokenMetadata(ctx, tokenID, metadata)
		if err != nil {
			return nil, o.mintFailed(ctx, err, "failed to update token metadata")
		}

		o.notifier.Notify(ctx, notifications.Notification{
			Kind:     notifications.KindSuccess,
			Message:  "Character successfully updated!",
			Duration: notifyDuration,
		})

		slog.Info("Token metadata updated",
			"owner", input.Owner,
			"token_id", tokenID,
			"tx_hash", tx.Hash,
		)
		return &MintCharacterOutput{Tx: tx, Updated: true}, nil
	}

	tx, err := o.chainClient.Mint(ctx, input.Owner, metadata)
	if err != nil {
		return nil, o.mintFailed(ctx, err, "failed to mint token")
	}

	o.notifier.Notify(ctx, notifications.Notification{
		Kind:     notifications.KindSuccess,
		Message:  "Character successfully created!",
		Duration: notifyDuration,
	})

	slog.Info("Token minted", "owner", input.Owner, "tx_hash", tx.Hash)
	return &MintCharacterOutput{Tx: tx}, nil
}

// mintFailed notifies the owner and wraps the cause as a failed transaction.
func (o *orchestrator) mintFailed(ctx context.Context, cause error, message string) error {
	o.notifier.Notify(ctx, notifications.Notification{
		Kind:     notifications.KindError,
		Message:  "Failed to save character on chain.",
		Duration: notifyDuration,
	})
	return errors.WrapWithCode(cause, errors.CodeTransactionFailed, message)
}

// SyncFromToken hydrates the session character from the owner's token
func (o *orchestrator) SyncFromToken(ctx context.Context, input *SyncFromTokenInput) (*SyncFromTokenOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument("owner is required")
	}

	tokenID, err := o.chainClient.TokenOf(ctx, input.Owner)
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, errors.NotFoundf("owner %s holds no token", input.Owner)
		}
		return nil, errors.Wrap(err, "failed to resolve token")
	}

	metadata, err := o.chainClient.TokenMetadata(ctx, tokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch token metadata")
	}

	c := conversion.TokenMetadataToCharacter(metadata)

	sess, err := o.loadSession(ctx, input.Owner)
	if err != nil {
		return nil, err
	}
	if err := o.saveCharacter(ctx, sess, c); err != nil {
		return nil, err
	}

	slog.Info("Character hydrated from token",
		"owner", input.Owner,
		"token_id", tokenID,
		"name", c.Name,
	)
	return &SyncFromTokenOutput{Character: c}, nil
}

// ListSampleCharacters returns the built-in roster summaries
func (o *orchestrator) ListSampleCharacters(_ context.Context, _ *ListSampleCharactersInput) (*ListSampleCharactersOutput, error) {
	summaries := make([]SampleSummary, 0, len(sampleRoster))
	for _, s := range sampleRoster {
		summaries = append(summaries, SampleSummary{
			ID:       s.ID,
			Name:     s.Character.Name,
			Class:    s.Character.Class,
			Level:    s.Character.Level,
			Race:     s.Character.Race,
			Gender:   s.Character.Gender,
			Portrait: s.Character.Portrait,
			Stats:    s.Character.Stats,
		})
	}

	return &ListSampleCharactersOutput{Characters: summaries}, nil
}

// GetSampleCharacter returns one roster character by ID
func (o *orchestrator) GetSampleCharacter(_ context.Context, input *GetSampleCharacterInput) (*GetSampleCharacterOutput, error) {
	for _, s := range sampleRoster {
		if s.ID == input.ID {
			return &GetSampleCharacterOutput{Character: s.Character.Clone()}, nil
		}
	}
	return nil, errors.NotFoundf("no sample character with id %d", input.ID)
}
