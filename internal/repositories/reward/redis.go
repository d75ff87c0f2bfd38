package reward

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	redisclient "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/redis"
)

const (
	// Key patterns: reward:{reward_id}, hero_rewards:{hero_id} (set of
	// unclaimed reward IDs)
	rewardKeyPrefix    = "reward:"
	heroIndexKeyPrefix = "hero_rewards:"

	maxClaimAttempts = 5
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

// NewRedisRepository creates a new Redis repository for reward records
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a new unclaimed record and indexes it by hero
func (r *redisRepository) Create(ctx context.Context, record *entities.RewardRecord) error {
	if record == nil {
		return errors.InvalidArgument("record cannot be nil")
	}
	if record.ID == "" {
		return errors.InvalidArgument("record ID cannot be empty")
	}
	if record.HeroID == "" {
		return errors.InvalidArgument("hero ID cannot be empty")
	}
	for _, line := range record.Lines {
		if !line.Validate() {
			return errors.InvalidArgumentf("malformed reward line of kind %q", line.Kind)
		}
	}

	data, err := json.Marshal(record)
	if err != nil {
		return errors.Wrapf(err, "failed to marshal record")
	}

	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, rewardKey(record.ID), data, 0)
		pipe.SAdd(ctx, heroIndexKey(record.HeroID), record.ID)
		return nil
	})
	if err != nil {
		return errors.Wrapf(err, "failed to store record in Redis")
	}

	return nil
}

// Get retrieves a record by ID
func (r *redisRepository) Get(ctx context.Context, rewardID string) (*entities.RewardRecord, error) {
	if rewardID == "" {
		return nil, errors.InvalidArgument("reward ID cannot be empty")
	}

	data, err := r.client.Get(ctx, rewardKey(rewardID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("reward record not found")
		}
		return nil, errors.Wrapf(err, "failed to get record from Redis")
	}

	var record entities.RewardRecord
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal record")
	}

	return &record, nil
}

// ListUnclaimedByHero returns a hero's unclaimed records
func (r *redisRepository) ListUnclaimedByHero(ctx context.Context, heroID string) ([]*entities.RewardRecord, error) {
	if heroID == "" {
		return nil, errors.InvalidArgument("hero ID cannot be empty")
	}

	ids, err := r.client.SMembers(ctx, heroIndexKey(heroID)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read hero reward index")
	}

	records := make([]*entities.RewardRecord, 0, len(ids))
	for _, id := range ids {
		record, err := r.Get(ctx, id)
		if err != nil {
			if errors.IsNotFound(err) {
				// Stale index entry; drop it
				_ = r.client.SRem(ctx, heroIndexKey(heroID), id)
				continue
			}
			return nil, err
		}
		if !record.Claimed {
			records = append(records, record)
		}
	}

	return records, nil
}

// MarkClaimed flips the claimed flag exactly once. The record key is
// WATCHed, so a racing claim aborts one side with AlreadyExists.
func (r *redisRepository) MarkClaimed(ctx context.Context, rewardID string, claimedAt time.Time) (*entities.RewardRecord, error) {
	if rewardID == "" {
		return nil, errors.InvalidArgument("reward ID cannot be empty")
	}

	key := rewardKey(rewardID)
	var result *entities.RewardRecord

	txFn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFound("reward record not found")
			}
			return errors.Wrapf(err, "failed to get record from Redis")
		}

		var record entities.RewardRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return errors.Wrapf(err, "failed to unmarshal record")
		}

		if record.Claimed {
			return errors.AlreadyExists("reward already claimed")
		}

		before := record
		record.Claimed = true
		record.ClaimedAt = &claimedAt

		updated, err := json.Marshal(&record)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal record")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			pipe.SRem(ctx, heroIndexKey(record.HeroID), record.ID)
			return nil
		})
		if err != nil {
			return err
		}

		result = &before
		return nil
	}

	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
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
		return nil, errors.Wrapf(err, "failed to claim record")
	}

	return nil, errors.Unavailable("reward record is contended, try again")
}

// MarkApplied stamps a claimed record once its grants have been applied
func (r *redisRepository) MarkApplied(ctx context.Context, rewardID string, appliedAt time.Time) (*entities.RewardRecord, error) {
	if rewardID == "" {
		return nil, errors.InvalidArgument("reward ID cannot be empty")
	}

	key := rewardKey(rewardID)
	var result *entities.RewardRecord

	txFn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFound("reward record not found")
			}
			return errors.Wrapf(err, "failed to get record from Redis")
		}

		var record entities.RewardRecord
		if err := json.Unmarshal([]byte(data), &record); err != nil {
			return errors.Wrapf(err, "failed to unmarshal record")
		}

		if !record.Claimed {
			return errors.FailedPrecondition("reward record is not claimed")
		}

		record.AppliedAt = &appliedAt

		updated, err := json.Marshal(&record)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal record")
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

	for attempt := 0; attempt < maxClaimAttempts; attempt++ {
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
		return nil, errors.Wrapf(err, "failed to mark record applied")
	}

	return nil, errors.Unavailable("reward record is contended, try again")
}

func rewardKey(rewardID string) string {
	return fmt.Sprintf("%s%s", rewardKeyPrefix, rewardID)
}

func heroIndexKey(heroID string) string {
	return fmt.Sprintf("%s%s", heroIndexKeyPrefix, heroID)
}
