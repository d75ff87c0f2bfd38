package dice_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/content"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/dice"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/clock"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/diceinventory"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/testutils"
)

type diceFixture struct {
	service dice.Service
	roster  *roster.InMemoryClient
	clock   *clock.Fixed
}

func newDiceFixture(t *testing.T) *diceFixture {
	t.Helper()

	client, cleanup := testutils.CreateTestRedisClient(t)
	t.Cleanup(cleanup)

	repo, err := diceinventory.NewRedisRepository(&diceinventory.Config{Client: client})
	require.NoError(t, err)

	rosterClient := roster.NewInMemoryClient()
	fixedClock := clock.NewFixed(time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	service, err := dice.NewOrchestrator(&dice.Config{
		InventoryRepo: repo,
		Roster:        rosterClient,
		Clock:         fixedClock,
	})
	require.NoError(t, err)

	return &diceFixture{service: service, roster: rosterClient, clock: fixedClock}
}

func TestGetOrCreateInventory_SeedsStartingCounts(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	out, err := f.service.GetOrCreateInventory(ctx, &dice.GetInventoryInput{UserID: "user_1"})
	require.NoError(t, err)

	assert.Equal(t, content.StartingDiceCounts[entities.DiceSmall], out.Inventory.Count(entities.DiceSmall))
	assert.Equal(t, content.StartingDiceCounts[entities.DiceMedium], out.Inventory.Count(entities.DiceMedium))
	assert.Equal(t, content.StartingDiceCounts[entities.DiceLarge], out.Inventory.Count(entities.DiceLarge))
	assert.Equal(t, 0, out.Inventory.Count(entities.DiceExtraLarge))

	// Second call returns the same inventory, not a fresh seed
	again, err := f.service.GetOrCreateInventory(ctx, &dice.GetInventoryInput{UserID: "user_1"})
	require.NoError(t, err)
	assert.Equal(t, out.Inventory.Counts, again.Inventory.Counts)
}

func TestPurchase_DebitsGoldAndCreditsDice(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	f.roster.SetGold("user_1", 100)

	out, err := f.service.Purchase(ctx, &dice.PurchaseInput{
		UserID:   "user_1",
		DiceType: entities.DiceMedium,
		Quantity: 2,
	})
	require.NoError(t, err)

	wantCost := content.DicePrices[entities.DiceMedium] * 2
	assert.Equal(t, wantCost, out.GoldSpent)
	assert.Equal(t, content.StartingDiceCounts[entities.DiceMedium]+2, out.Inventory.Count(entities.DiceMedium))

	gold, err := f.roster.GetGold(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 100-wantCost, gold)
}

func TestPurchase_InsufficientGold(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	f.roster.SetGold("user_1", 5)

	_, err := f.service.Purchase(ctx, &dice.PurchaseInput{
		UserID:   "user_1",
		DiceType: entities.DiceExtraLarge,
		Quantity: 1,
	})
	require.Error(t, err)
	assert.True(t, errors.IsResourceExhausted(err))

	// The failed purchase must not touch the dice counts
	out, err := f.service.GetOrCreateInventory(ctx, &dice.GetInventoryInput{UserID: "user_1"})
	require.NoError(t, err)
	assert.Equal(t, 0, out.Inventory.Count(entities.DiceExtraLarge))

	gold, err := f.roster.GetGold(ctx, "user_1")
	require.NoError(t, err)
	assert.Equal(t, 5, gold)
}

func TestPurchase_RejectsInvalidInput(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	_, err := f.service.Purchase(ctx, &dice.PurchaseInput{
		UserID:   "user_1",
		DiceType: entities.DiceType("d20"),
		Quantity: 1,
	})
	assert.True(t, errors.IsInvalidArgument(err))

	_, err = f.service.Purchase(ctx, &dice.PurchaseInput{
		UserID:   "user_1",
		DiceType: entities.DiceSmall,
		Quantity: 0,
	})
	assert.True(t, errors.IsInvalidArgument(err))
}

func TestConsume_SpendsOneDie(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	out, err := f.service.Consume(ctx, &dice.ConsumeInput{
		UserID:   "user_1",
		DiceType: entities.DiceSmall,
	})
	require.NoError(t, err)
	assert.Equal(t, content.StartingDiceCounts[entities.DiceSmall]-1, out.Inventory.Count(entities.DiceSmall))
}

func TestConsume_AtZeroFails(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	// Extra-large dice start at zero
	_, err := f.service.Consume(ctx, &dice.ConsumeInput{
		UserID:   "user_1",
		DiceType: entities.DiceExtraLarge,
	})
	require.Error(t, err)
	assert.True(t, errors.IsResourceExhausted(err))
}

func TestClaimFree_GrantsAndStartsCooldown(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	out, err := f.service.ClaimFree(ctx, &dice.ClaimFreeInput{
		UserID:   "user_1",
		DiceType: entities.DiceSmall,
	})
	require.NoError(t, err)

	assert.Equal(t, content.StartingDiceCounts[entities.DiceSmall]+1, out.Inventory.Count(entities.DiceSmall))
	assert.Equal(t, f.clock.Now().Add(content.FreeDiceCooldowns[entities.DiceSmall]), out.NextAvailableAt)
}

func TestClaimFree_RejectedDuringCooldown(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	_, err := f.service.ClaimFree(ctx, &dice.ClaimFreeInput{
		UserID:   "user_1",
		DiceType: entities.DiceMedium,
	})
	require.NoError(t, err)

	// One second shy of the cooldown still rejects
	f.clock.Advance(content.FreeDiceCooldowns[entities.DiceMedium] - time.Second)
	_, err = f.service.ClaimFree(ctx, &dice.ClaimFreeInput{
		UserID:   "user_1",
		DiceType: entities.DiceMedium,
	})
	require.Error(t, err)
	assert.True(t, errors.IsFailedPrecondition(err))

	f.clock.Advance(time.Second)
	out, err := f.service.ClaimFree(ctx, &dice.ClaimFreeInput{
		UserID:   "user_1",
		DiceType: entities.DiceMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, content.StartingDiceCounts[entities.DiceMedium]+2, out.Inventory.Count(entities.DiceMedium))
}

func TestClaimFree_CooldownsAreIndependentPerType(t *testing.T) {
	f := newDiceFixture(t)
	ctx := context.Background()

	_, err := f.service.ClaimFree(ctx, &dice.ClaimFreeInput{
		UserID:   "user_1",
		DiceType: entities.DiceSmall,
	})
	require.NoError(t, err)

	// A claim on one type never blocks another
	out, err := f.service.ClaimFree(ctx, &dice.ClaimFreeInput{
		UserID:   "user_1",
		DiceType: entities.DiceLarge,
	})
	require.NoError(t, err)
	assert.Equal(t, content.StartingDiceCounts[entities.DiceLarge]+1, out.Inventory.Count(entities.DiceLarge))
}

func TestNewOrchestrator_ValidatesConfig(t *testing.T) {
	_, err := dice.NewOrchestrator(&dice.Config{})
	require.Error(t, err)
}
