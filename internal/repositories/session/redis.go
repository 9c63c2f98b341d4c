package session

import (
	"context"
	"encoding/json"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/sheet-api/internal/errors"
	"github.com/KirkDiggler/sheet-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/sheet-api/internal/redis"
)

const (
	// Key pattern: sheet_session:v1:{owner}. The version segment exists so
	// a schema change can move to a new key instead of migrating blobs.
	sessionKeyPrefix = "sheet_session:v1:"

	// Error messages
	errSessionNil   = "session cannot be nil"
	errOwnerEmpty   = "owner cannot be empty"
	errUnmarshaling = "failed to unmarshal session"
)

// RedisConfig holds the configuration for the Redis repository
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *RedisConfig) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for sessions
func NewRedisRepository(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

func (r *redisRepository) buildKey(owner string) string {
	return sessionKeyPrefix + owner
}

// Get retrieves a session by owner
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	key := r.buildKey(input.Owner)
	result, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("no session for owner %s", input.Owner)
		}
		return nil, errors.Wrapf(err, "failed to get session")
	}

	var sess Session
	if err := json.Unmarshal([]byte(result), &sess); err != nil {
		return nil, errors.Wrap(err, errUnmarshaling)
	}

	return &GetOutput{Session: &sess}, nil
}

// Save stores a session, replacing any existing one for the owner.
// Sessions have no TTL: character data survives reloads and disconnects
// until the owner explicitly resets.
func (r *redisRepository) Save(ctx context.Context, input SaveInput) (*SaveOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument(errSessionNil)
	}
	if input.Session.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	sess := *input.Session
	sess.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(&sess)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := r.buildKey(sess.Owner)
	if err := r.client.Set(ctx, key, data, 0).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store session")
	}

	return &SaveOutput{Session: &sess}, nil
}

// Delete removes a session
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.Owner == "" {
		return nil, errors.InvalidArgument(errOwnerEmpty)
	}

	key := r.buildKey(input.Owner)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete session")
	}

	return &DeleteOutput{}, nil
}
