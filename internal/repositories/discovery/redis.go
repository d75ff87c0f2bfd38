package discovery

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
	// Key pattern: combo_discovery:{user_id}:{enemy_id}:{combo_id}
	discoveryKeyPrefix = "combo_discovery:"

	maxRecordAttempts = 5
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

// NewRedisRepository creates a new Redis repository for combo discoveries
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves a discovery record
func (r *redisRepository) Get(ctx context.Context, userID, enemyID, comboID string) (*entities.ComboDiscovery, error) {
	if userID == "" || enemyID == "" || comboID == "" {
		return nil, errors.InvalidArgument("user, enemy, and combo IDs are required")
	}

	data, err := r.client.Get(ctx, buildKey(userID, enemyID, comboID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("combo discovery not found")
		}
		return nil, errors.Wrapf(err, "failed to get discovery from Redis")
	}

	var record entities.ComboDiscovery
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal discovery")
	}

	return &record, nil
}

// RecordUse upserts a discovery record under a WATCH so concurrent
// exploitations never lose counter increments or create duplicates.
func (r *redisRepository) RecordUse(ctx context.Context, input RecordUseInput) (*RecordUseOutput, error) {
	if input.UserID == "" || input.EnemyID == "" || input.ComboID == "" {
		return nil, errors.InvalidArgument("user, enemy, and combo IDs are required")
	}

	key := buildKey(input.UserID, input.EnemyID, input.ComboID)
	var result *RecordUseOutput

	txFn := func(tx *redis.Tx) error {
		var record entities.ComboDiscovery
		created := false

		data, err := tx.Get(ctx, key).Result()
		switch {
		case err == redis.Nil:
			created = true
			record = entities.ComboDiscovery{
				UserID:       input.UserID,
				EnemyID:      input.EnemyID,
				ComboID:      input.ComboID,
				DiscoveredAt: input.Now,
			}
		case err != nil:
			return errors.Wrapf(err, "failed to get discovery from Redis")
		default:
			if err := json.Unmarshal([]byte(data), &record); err != nil {
				return errors.Wrapf(err, "failed to unmarshal discovery")
			}
		}

		record.TimesUsed++
		if input.Won {
			record.TimesWon++
		}

		updated, err := json.Marshal(&record)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal discovery")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = &RecordUseOutput{Discovery: &record, NewlyRecorded: created}
		return nil
	}

	for attempt := 0; attempt < maxRecordAttempts; attempt++ {
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
		return nil, errors.Wrapf(err, "failed to record combo use")
	}

	return nil, errors.Unavailable("combo discovery is contended, try again")
}

// RecordWin increments the win counter on an existing discovery
func (r *redisRepository) RecordWin(ctx context.Context, userID, enemyID, comboID string) (*entities.ComboDiscovery, error) {
	if userID == "" || enemyID == "" || comboID == "" {
		return nil, errors.InvalidArgument("user, enemy, and combo IDs are required")
	}

	key := buildKey(userID, enemyID, comboID)
	var result *entities.ComboDiscovery

	txFn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFound("combo discovery not found")
			}
			return errors.Wrapf(err, "failed to get discovery from Redis")
		}

		var record entities.ComboDiscovery
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return errors.Wrapf(err, "failed to unmarshal discovery")
		}

		record.TimesWon++

		updated, err := json.Marshal(&record)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal discovery")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = &record
		return nil
	}

	for attempt := 0; attempt < maxRecordAttempts; attempt++ {
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
		return nil, errors.Wrapf(err, "failed to record combo win")
	}

	return nil, errors.Unavailable("combo discovery is contended, try again")
}

func buildKey(userID, enemyID, comboID string) string {
	return fmt.Sprintf("%s%s:%s:%s", discoveryKeyPrefix, userID, enemyID, comboID)
}
