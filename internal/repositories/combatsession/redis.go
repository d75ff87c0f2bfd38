package combatsession

import (
	"context"
	"encoding/json"
	"fmt"

	redis "github.com/redis/go-redis/v9"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	redisclient "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/redis"
)

const (
	// Key pattern: combat_session:{session_id}
	sessionKeyPrefix = "combat_session:"

	// Optimistic retries before giving up on a contended session
	maxMutateAttempts = 5
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
}

// NewRedisRepository creates a new Redis repository for combat sessions
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new session; the ID must not already exist
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Session == nil {
		return nil, errors.InvalidArgument("session cannot be nil")
	}
	if input.Session.ID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	data, err := json.Marshal(input.Session)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal session")
	}

	key := buildKey(input.Session.ID)
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store session in Redis")
	}
	if !created {
		return nil, errors.AlreadyExistsf("combat session %q already exists", input.Session.ID)
	}

	return &CreateOutput{Session: input.Session}, nil
}

// Get retrieves a session by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}

	data, err := r.client.Get(ctx, buildKey(input.SessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("combat session not found")
		}
		return nil, errors.Wrapf(err, "failed to get session from Redis")
	}

	var session entities.CombatSession
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal session")
	}

	return &GetOutput{Session: &session}, nil
}

// Mutate atomically applies fn to the stored session. The key is WATCHed,
// so a concurrent write between the read and the EXEC aborts the
// transaction and the whole read-modify-write is retried.
func (r *redisRepository) Mutate(ctx context.Context, sessionID string, fn func(*entities.CombatSession) error) (*entities.CombatSession, error) {
	if sessionID == "" {
		return nil, errors.InvalidArgument("session ID cannot be empty")
	}
	if fn == nil {
		return nil, errors.InvalidArgument("mutate function cannot be nil")
	}

	key := buildKey(sessionID)
	var result *entities.CombatSession

	txFn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFound("combat session not found")
			}
			return errors.Wrapf(err, "failed to get session from Redis")
		}

		var session entities.CombatSession
		if err := json.Unmarshal([]byte(data), &session); err != nil {
			return errors.Wrapf(err, "failed to unmarshal session")
		}

		if err := fn(&session); err != nil {
			return err
		}

		updated, err := json.Marshal(&session)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal session")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = &session
		return nil
	}

	for attempt := 0; attempt < maxMutateAttempts; attempt++ {
		err := r.client.Watch(ctx, txFn, key)
		if err == nil {
			return result, nil
		}
		if err == redis.TxFailedErr {
			continue
		}
		var domainErr *errors.Error
		if errors.As(err, &domainErr) {
			return nil, err
		}
		return nil, errors.Wrapf(err, "failed to mutate session")
	}

	return nil, errors.Unavailable("combat session is contended, try again")
}

func buildKey(sessionID string) string {
	return fmt.Sprintf("%s%s", sessionKeyPrefix, sessionID)
}
