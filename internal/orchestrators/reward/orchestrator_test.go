package reward_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster"
	rostermock "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster/mock"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/dice"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/reward"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/clock"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/idgen"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/diceinventory"
	rewardrepo "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/reward"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/testutils"
)

type rewardFixture struct {
	service reward.Service
	dice    dice.Service
	roster  *roster.InMemoryClient
	clock   *clock.Fixed
}

func newRewardFixture(t *testing.T) *rewardFixture {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	rewardRepo, err := rewardrepo.NewRedisRepository(&rewardrepo.Config{Client: client})
	require.NoError(t, err)
	inventoryRepo, err := diceinventory.NewRedisRepository(&diceinventory.Config{Client: client})
	require.NoError(t, err)

	rosterClient := roster.NewInMemoryClient()
	fixedClock := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	diceService, err := dice.NewOrchestrator(&dice.Config{
		InventoryRepo: inventoryRepo,
		Roster:        rosterClient,
		Clock:         fixedClock,
	})
	require.NoError(t, err)

	service, err := reward.NewOrchestrator(&reward.Config{
		RewardRepo:  rewardRepo,
		Roster:      rosterClient,
		DiceService: diceService,
		Clock:       fixedClock,
		IDGenerator: idgen.NewSequential("reward"),
	})
	require.NoError(t, err)

	return &rewardFixture{
		service: service,
		dice:    diceService,
		roster:  rosterClient,
		clock:   fixedClock,
	}
}

func testHero() *entities.Hero {
	return &entities.Hero{
		ID:     "hero_1",
		UserID: "user_1",
		Name:   "Aldric",
		Class:  entities.ClassWarrior,
		Level:  1,
	}
}

func TestGrantCombatRewards_StoresUnclaimedRecord(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.roster.AddHero(testHero())

	out, err := f.service.GrantCombatRewards(ctx, &reward.GrantCombatRewardsInput{
		UserID:  "user_1",
		HeroID:  "hero_1",
		QuestID: "quest_road_ambush",
		EnemyID: "enemy_goblin_raider",
		Lines: []entities.RewardLine{
			entities.NewGoldLine(25),
			entities.NewExperienceLine(60),
		},
	})
	require.NoError(t, err)
	assert.False(t, out.Record.Claimed)
	assert.Equal(t, entities.RewardSourceCombat, out.Record.Source)

	list, err := f.service.ListUnclaimed(ctx, &reward.ListUnclaimedInput{
		UserID: "user_1",
		HeroID: "hero_1",
	})
	require.NoError(t, err)
	require.Len(t, list.Records, 1)
	assert.Equal(t, out.Record.ID, list.Records[0].ID)
}

func TestGrantCombatRewards_RejectsMalformedLine(t *testing.T) {
	f := newRewardFixture(t)

	_, err := f.service.GrantCombatRewards(context.Background(), &reward.GrantCombatRewardsInput{
		UserID:  "user_1",
		HeroID:  "hero_1",
		EnemyID: "enemy_goblin_raider",
		Lines:   []entities.RewardLine{{Kind: entities.RewardGold}},
	})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestClaim_AppliesAllLineKinds(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.roster.AddHero(testHero())

	granted, err := f.service.GrantCombatRewards(ctx, &reward.GrantCombatRewardsInput{
		UserID:  "user_1",
		HeroID:  "hero_1",
		EnemyID: "enemy_goblin_raider",
		Lines: []entities.RewardLine{
			entities.NewGoldLine(25),
			entities.NewExperienceLine(120),
			entities.NewItemLine("item_healing_potion", 1),
			entities.NewDiceLine(entities.DiceMedium, 2),
		},
	})
	require.NoError(t, err)

	out, err := f.service.Claim(ctx, &reward.ClaimInput{
		RewardID: granted.Record.ID,
		UserID:   "user_1",
		HeroID:   "hero_1",
	})
	require.NoError(t, err)
	assert.True(t, out.Record.Claimed)
	assert.NotNil(t, out.Record.AppliedAt, "successful claims are stamped applied")

	gold, err := f.roster.GetGold(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 25, gold)

	// 120 xp crosses the 100 xp threshold for level 2
	hero, err := f.roster.GetHero(ctx, "hero_1")
	require.NoError(t, err)
	assert.Equal(t, 120, hero.Experience)
	assert.Equal(t, 2, hero.Level)

	assert.Equal(t, 1, f.roster.ItemCount("hero_1", "item_healing_potion"))

	inv, err := f.dice.GetOrCreateInventory(ctx, &dice.GetInventoryInput{UserID: "user_1"})
	require.NoError(t, err)
	assert.Equal(t, 5, inv.Inventory.Count(entities.DiceMedium)) // 3 starting + 2 granted
}

func TestClaim_SecondAttemptRejected(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.roster.AddHero(testHero())

	granted, err := f.service.GrantCombatRewards(ctx, &reward.GrantCombatRewardsInput{
		UserID:  "user_1",
		HeroID:  "hero_1",
		EnemyID: "enemy_goblin_raider",
		Lines:   []entities.RewardLine{entities.NewGoldLine(40)},
	})
	require.NoError(t, err)

	claimInput := &reward.ClaimInput{
		RewardID: granted.Record.ID,
		UserID:   "user_1",
		HeroID:   "hero_1",
	}

	_, err = f.service.Claim(ctx, claimInput)
	require.NoError(t, err)

	_, err = f.service.Claim(ctx, claimInput)
	require.Error(t, err)
	assert.True(t, errors.IsAlreadyExists(err))

	// Double claiming never double-grants
	gold, err := f.roster.GetGold(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 40, gold)
}

func TestClaim_WrongHeroRejected(t *testing.T) {
	f := newRewardFixture(t)
	ctx := context.Background()
	f.roster.AddHero(testHero())

	granted, err := f.service.GrantCombatRewards(ctx, &reward.GrantCombatRewardsInput{
		UserID:  "user_1",
		HeroID:  "hero_1",
		EnemyID: "enemy_goblin_raider",
		Lines:   []entities.RewardLine{entities.NewGoldLine(10)},
	})
	require.NoError(t, err)

	_, err = f.service.Claim(ctx, &reward.ClaimInput{
		RewardID: granted.Record.ID,
		UserID:   "user_2",
		HeroID:   "hero_other",
	})
	assert.True(t, errors.IsPermissionDenied(err))
}

func TestClaim_MissingRecord(t *testing.T) {
	f := newRewardFixture(t)

	_, err := f.service.Claim(context.Background(), &reward.ClaimInput{
		RewardID: "reward_missing",
		UserID:   "user_1",
		HeroID:   "hero_1",
	})
	assert.True(t, errors.IsNotFound(err))
}

func TestClaim_FlagFlipsBeforeGrantsApply(t *testing.T) {
	ctrl := gomock.NewController(t)

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	rewardRepo, err := rewardrepo.NewRedisRepository(&rewardrepo.Config{Client: client})
	require.NoError(t, err)
	inventoryRepo, err := diceinventory.NewRedisRepository(&diceinventory.Config{Client: client})
	require.NoError(t, err)

	mockRoster := rostermock.NewMockClient(ctrl)
	fixedClock := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	diceService, err := dice.NewOrchestrator(&dice.Config{
		InventoryRepo: inventoryRepo,
		Roster:        mockRoster,
		Clock:         fixedClock,
	})
	require.NoError(t, err)

	service, err := reward.NewOrchestrator(&reward.Config{
		RewardRepo:  rewardRepo,
		Roster:      mockRoster,
		DiceService: diceService,
		Clock:       fixedClock,
		IDGenerator: idgen.NewSequential("reward"),
	})
	require.NoError(t, err)

	ctx := context.Background()
	granted, err := service.GrantCombatRewards(ctx, &reward.GrantCombatRewardsInput{
		UserID:  "user_1",
		HeroID:  "hero_1",
		EnemyID: "enemy_goblin_raider",
		Lines:   []entities.RewardLine{entities.NewGoldLine(50)},
	})
	require.NoError(t, err)

	// The gold grant fails after the claimed flag has flipped
	mockRoster.EXPECT().
		AddGold(gomock.Any(), "user_1", 50).
		Return(errors.Unavailable("roster unavailable"))

	_, err = service.Claim(ctx, &reward.ClaimInput{
		RewardID: granted.Record.ID,
		UserID:   "user_1",
		HeroID:   "hero_1",
	})
	require.Error(t, err)

	// The record stays claimed: a retry is rejected rather than risking a
	// double grant. The missing applied stamp is what marks it for repair.
	record, err := rewardRepo.Get(ctx, granted.Record.ID)
	require.NoError(t, err)
	assert.True(t, record.Claimed)
	assert.Nil(t, record.AppliedAt)
}

func TestNewOrchestrator_ValidatesConfig(t *testing.T) {
	_, err := reward.NewOrchestrator(&reward.Config{})
	require.Error(t, err)
}
