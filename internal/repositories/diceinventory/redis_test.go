package diceinventory_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/diceinventory"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/testutils"
)

func newTestRepo(t *testing.T) diceinventory.Repository {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := diceinventory.NewRedisRepository(&diceinventory.Config{Client: client})
	require.NoError(t, err)
	return repo
}

func testInventory() *entities.DiceInventory {
	return &entities.DiceInventory{
		UserID: "user_1",
		Counts: map[entities.DiceType]int{
			entities.DiceSmall:  5,
			entities.DiceMedium: 3,
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestRedisRepository_CreateIsIdempotent(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	first, err := repo.Create(ctx, testInventory())
	require.NoError(t, err)
	assert.Equal(t, 5, first.Count(entities.DiceSmall))

	// Second create loses the SETNX race and returns the stored inventory
	second := testInventory()
	second.Counts[entities.DiceSmall] = 99
	got, err := repo.Create(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Count(entities.DiceSmall))
}

func TestRedisRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "user_missing")
	assert.True(t, errors.IsNotFound(err))
}

func TestRedisRepository_MutateDecrements(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.Create(ctx, testInventory())
	require.NoError(t, err)

	updated, err := repo.Mutate(ctx, "user_1", func(inv *entities.DiceInventory) error {
		if inv.Count(entities.DiceMedium) == 0 {
			return errors.ResourceExhausted("no medium dice")
		}
		inv.Counts[entities.DiceMedium]--
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Count(entities.DiceMedium))

	stored, err := repo.Get(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Count(entities.DiceMedium))
}

func TestRedisRepository_MutateAbortDoesNotPersist(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	inv := testInventory()
	inv.Counts[entities.DiceLarge] = 0
	_, err := repo.Create(ctx, inv)
	require.NoError(t, err)

	_, err = repo.Mutate(ctx, "user_1", func(inv *entities.DiceInventory) error {
		inv.Counts[entities.DiceLarge]--
		return errors.ResourceExhausted("no large dice")
	})
	assert.True(t, errors.IsResourceExhausted(err))

	stored, err := repo.Get(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Count(entities.DiceLarge), "count never goes negative")
}
