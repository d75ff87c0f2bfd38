package reward_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/reward"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/testutils"
)

func newTestRepo(t *testing.T) reward.Repository {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := reward.NewRedisRepository(&reward.Config{Client: client})
	require.NoError(t, err)
	return repo
}

func testRecord(id string) *entities.RewardRecord {
	return &entities.RewardRecord{
		ID:      id,
		UserID:  "user_1",
		HeroID:  "hero_1",
		EnemyID: "enemy_goblin_raider",
		Source:  entities.RewardSourceCombat,
		Lines: []entities.RewardLine{
			entities.NewGoldLine(25),
			entities.NewExperienceLine(60),
		},
		CreatedAt: time.Now().UTC(),
	}
}

func TestRedisRepository_CreateAndList(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testRecord("reward_1")))
	require.NoError(t, repo.Create(ctx, testRecord("reward_2")))

	records, err := repo.ListUnclaimedByHero(ctx, "hero_1")
	require.NoError(t, err)
	assert.Len(t, records, 2)

	records, err = repo.ListUnclaimedByHero(ctx, "hero_other")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRedisRepository_CreateRejectsMalformedLines(t *testing.T) {
	repo := newTestRepo(t)

	record := testRecord("reward_bad")
	record.Lines = append(record.Lines, entities.RewardLine{Kind: entities.RewardGold})

	err := repo.Create(context.Background(), record)
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestRedisRepository_MarkClaimed_ExactlyOnce(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	claimedAt := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, testRecord("reward_1")))

	before, err := repo.MarkClaimed(ctx, "reward_1", claimedAt)
	require.NoError(t, err)
	assert.False(t, before.Claimed, "returned snapshot predates the flip")

	stored, err := repo.Get(ctx, "reward_1")
	require.NoError(t, err)
	assert.True(t, stored.Claimed)
	require.NotNil(t, stored.ClaimedAt)
	assert.WithinDuration(t, claimedAt, *stored.ClaimedAt, time.Second)

	// Second claim is rejected and the record drops out of the index
	_, err = repo.MarkClaimed(ctx, "reward_1", claimedAt)
	assert.True(t, errors.IsAlreadyExists(err))

	records, err := repo.ListUnclaimedByHero(ctx, "hero_1")
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRedisRepository_MarkClaimedMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.MarkClaimed(context.Background(), "reward_missing", time.Now().UTC())
	assert.True(t, errors.IsNotFound(err))
}

func TestRedisRepository_MarkApplied(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, repo.Create(ctx, testRecord("reward_1")))

	// An unclaimed record cannot be stamped applied
	_, err := repo.MarkApplied(ctx, "reward_1", now)
	assert.True(t, errors.IsFailedPrecondition(err))

	_, err = repo.MarkClaimed(ctx, "reward_1", now)
	require.NoError(t, err)

	applied, err := repo.MarkApplied(ctx, "reward_1", now)
	require.NoError(t, err)
	require.NotNil(t, applied.AppliedAt)
	assert.WithinDuration(t, now, *applied.AppliedAt, time.Second)

	stored, err := repo.Get(ctx, "reward_1")
	require.NoError(t, err)
	assert.True(t, stored.Claimed)
	require.NotNil(t, stored.AppliedAt)
}

func TestRedisRepository_MarkAppliedMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.MarkApplied(context.Background(), "reward_missing", time.Now().UTC())
	assert.True(t, errors.IsNotFound(err))
}
