package diceinventory

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
	// Key pattern: dice_inventory:{user_id}
	inventoryKeyPrefix = "dice_inventory:"

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

// NewRedisRepository creates a new Redis repository for dice inventories
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{client: cfg.Client}, nil
}

var _ Repository = (*redisRepository)(nil)

// Get retrieves a user's inventory
func (r *redisRepository) Get(ctx context.Context, userID string) (*entities.DiceInventory, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	data, err := r.client.Get(ctx, buildKey(userID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("dice inventory not found")
		}
		return nil, errors.Wrapf(err, "failed to get inventory from Redis")
	}

	var inventory entities.DiceInventory
	if err := json.Unmarshal([]byte(data), &inventory); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal inventory")
	}

	return &inventory, nil
}

// Create stores a new inventory unless the user already has one. Lazy
// creation races are resolved by SETNX: the loser reads back the winner's
// inventory.
func (r *redisRepository) Create(ctx context.Context, inventory *entities.DiceInventory) (*entities.DiceInventory, error) {
	if inventory == nil {
		return nil, errors.InvalidArgument("inventory cannot be nil")
	}
	if inventory.UserID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}

	data, err := json.Marshal(inventory)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal inventory")
	}

	created, err := r.client.SetNX(ctx, buildKey(inventory.UserID), data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store inventory in Redis")
	}
	if !created {
		return r.Get(ctx, inventory.UserID)
	}

	return inventory, nil
}

// Mutate atomically applies fn to the stored inventory
func (r *redisRepository) Mutate(ctx context.Context, userID string, fn func(*entities.DiceInventory) error) (*entities.DiceInventory, error) {
	if userID == "" {
		return nil, errors.InvalidArgument("user ID cannot be empty")
	}
	if fn == nil {
		return nil, errors.InvalidArgument("mutate function cannot be nil")
	}

	key := buildKey(userID)
	var result *entities.DiceInventory

	txFn := func(tx *redis.Tx) error {
		data, err := tx.Get(ctx, key).Result()
		if err != nil {
			if err == redis.Nil {
				return errors.NotFound("dice inventory not found")
			}
			return errors.Wrapf(err, "failed to get inventory from Redis")
		}

		var inventory entities.DiceInventory
		if err := json.Unmarshal([]byte(data), &inventory); err != nil {
			return errors.Wrapf(err, "failed to unmarshal inventory")
		}

		if err := fn(&inventory); err != nil {
			return err
		}

		updated, err := json.Marshal(&inventory)
		if err != nil {
			return errors.Wrapf(err, "failed to marshal inventory")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, updated, 0)
			return nil
		})
		if err != nil {
			return err
		}

		result = &inventory
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
		return nil, errors.Wrapf(err, "failed to mutate inventory")
	}

	return nil, errors.Unavailable("dice inventory is contended, try again")
}

func buildKey(userID string) string {
	return fmt.Sprintf("%s%s", inventoryKeyPrefix, userID)
}
