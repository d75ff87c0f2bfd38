package discovery_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/discovery"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/testutils"
)

func newTestRepo(t *testing.T) discovery.Repository {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := discovery.NewRedisRepository(&discovery.Config{Client: client})
	require.NoError(t, err)
	return repo
}

func TestRedisRepository_RecordUse_FirstUseCreates(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	out, err := repo.RecordUse(ctx, discovery.RecordUseInput{
		UserID:  "user_1",
		EnemyID: "enemy_lich_king",
		ComboID: "combo_holy_vanguard",
		Won:     false,
		Now:     now,
	})
	require.NoError(t, err)
	assert.True(t, out.NewlyRecorded)
	assert.Equal(t, 1, out.Discovery.TimesUsed)
	assert.Equal(t, 0, out.Discovery.TimesWon)
	assert.WithinDuration(t, now, out.Discovery.DiscoveredAt, time.Second)
}

func TestRedisRepository_RecordUse_RepeatsIncrement(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()
	now := time.Now().UTC()

	input := discovery.RecordUseInput{
		UserID:  "user_1",
		EnemyID: "enemy_lich_king",
		ComboID: "combo_holy_vanguard",
		Won:     true,
		Now:     now,
	}

	_, err := repo.RecordUse(ctx, input)
	require.NoError(t, err)

	out, err := repo.RecordUse(ctx, input)
	require.NoError(t, err)
	assert.False(t, out.NewlyRecorded, "record is unique per user/enemy/combo")
	assert.Equal(t, 2, out.Discovery.TimesUsed)
	assert.Equal(t, 2, out.Discovery.TimesWon)

	stored, err := repo.Get(ctx, "user_1", "enemy_lich_king", "combo_holy_vanguard")
	require.NoError(t, err)
	assert.Equal(t, 2, stored.TimesUsed)
}

func TestRedisRepository_RecordWin(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	_, err := repo.RecordUse(ctx, discovery.RecordUseInput{
		UserID:  "user_1",
		EnemyID: "enemy_ember_drake",
		ComboID: "combo_steel_and_sorcery",
		Now:     time.Now().UTC(),
	})
	require.NoError(t, err)

	record, err := repo.RecordWin(ctx, "user_1", "enemy_ember_drake", "combo_steel_and_sorcery")
	require.NoError(t, err)
	assert.Equal(t, 1, record.TimesUsed)
	assert.Equal(t, 1, record.TimesWon)
}

func TestRedisRepository_RecordWin_MissingRecord(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.RecordWin(context.Background(), "user_1", "enemy_ember_drake", "combo_steel_and_sorcery")
	assert.True(t, errors.IsNotFound(err))
}

func TestRedisRepository_GetMissing(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.Get(context.Background(), "user_1", "enemy_lich_king", "combo_nope")
	assert.True(t, errors.IsNotFound(err))
}
