// Package dice implements the dice inventory orchestrator: per-user dice
// counts, purchases, combat consumption, and time-gated free grants.
package dice

//go:generate mockgen -destination=mock/mock_service.go -package=dicemock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/dice Service

import (
	"context"
	"log/slog"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/content"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/clock"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/diceinventory"
)

// Service defines the interface for dice inventory operations
type Service interface {
	// GetOrCreateInventory lazily creates the user's inventory with the
	// documented starting counts
	GetOrCreateInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error)

	// Purchase buys dice with gold: gold debit and dice credit are one
	// unit of work
	Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error)

	// Consume spends one die, failing with ResourceExhausted when none
	// remain. Dice are spent on the attempt, win or lose.
	Consume(ctx context.Context, input *ConsumeInput) (*ConsumeOutput, error)

	// Grant credits dice without payment, used by reward claims
	Grant(ctx context.Context, input *GrantInput) (*GrantOutput, error)

	// ClaimFree grants one free die if the dice type's cooldown has
	// elapsed
	ClaimFree(ctx context.Context, input *ClaimFreeInput) (*ClaimFreeOutput, error)
}

// Config holds the dependencies for the dice orchestrator
type Config struct {
	InventoryRepo diceinventory.Repository
	Roster        roster.Client
	Clock         clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.InventoryRepo == nil {
		vb.RequiredField("InventoryRepo")
	}
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	inventoryRepo diceinventory.Repository
	roster        roster.Client
	clock         clock.Clock
}

// NewOrchestrator creates a new dice orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		inventoryRepo: cfg.InventoryRepo,
		roster:        cfg.Roster,
		clock:         cfg.Clock,
	}, nil
}

// GetOrCreateInventory lazily creates the user's inventory
func (o *orchestrator) GetOrCreateInventory(ctx context.Context, input *GetInventoryInput) (*GetInventoryOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}

	inventory, err := o.inventoryRepo.Get(ctx, input.UserID)
	if err == nil {
		return &GetInventoryOutput{Inventory: inventory}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to load dice inventory")
	}

	now := o.clock.Now()
	counts := make(map[entities.DiceType]int, len(content.StartingDiceCounts))
	for diceType, count := range content.StartingDiceCounts {
		counts[diceType] = count
	}

	inventory, err = o.inventoryRepo.Create(ctx, &entities.DiceInventory{
		UserID:     input.UserID,
		Counts:     counts,
		FreeGrants: make(map[entities.DiceType]entities.FreeDiceGrant),
		CreatedAt:  now,
		UpdatedAt:  now,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create dice inventory")
	}

	slog.Info("Dice inventory created",
		"user_id", input.UserID,
	)

	return &GetInventoryOutput{Inventory: inventory}, nil
}

// Purchase buys dice with gold
func (o *orchestrator) Purchase(ctx context.Context, input *PurchaseInput) (*PurchaseOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	if !input.DiceType.Valid() {
		return nil, errors.InvalidArgumentf("unknown dice type %q", input.DiceType)
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	if _, err := o.GetOrCreateInventory(ctx, &GetInventoryInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	cost := content.DicePrices[input.DiceType] * input.Quantity

	// Debit first so insufficient gold rejects before dice are credited
	if err := o.roster.SpendGold(ctx, input.UserID, cost); err != nil {
		return nil, errors.Wrap(err, "failed to debit gold")
	}

	inventory, err := o.inventoryRepo.Mutate(ctx, input.UserID, func(inv *entities.DiceInventory) error {
		if inv.Counts == nil {
			inv.Counts = make(map[entities.DiceType]int)
		}
		inv.Counts[input.DiceType] += input.Quantity
		inv.UpdatedAt = o.clock.Now()
		return nil
	})
	if err != nil {
		// Compensate the debit so the purchase stays all-or-nothing
		if refundErr := o.roster.AddGold(ctx, input.UserID, cost); refundErr != nil {
			slog.Error("Failed to refund gold after dice credit failure",
				"user_id", input.UserID,
				"amount", cost,
				"error", refundErr,
			)
		}
		return nil, errors.Wrap(err, "failed to credit dice")
	}

	slog.Info("Dice purchased",
		"user_id", input.UserID,
		"dice_type", input.DiceType,
		"quantity", input.Quantity,
		"gold_spent", cost,
	)

	return &PurchaseOutput{Inventory: inventory, GoldSpent: cost}, nil
}

// Consume spends one die
func (o *orchestrator) Consume(ctx context.Context, input *ConsumeInput) (*ConsumeOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	if !input.DiceType.Valid() {
		return nil, errors.InvalidArgumentf("unknown dice type %q", input.DiceType)
	}

	if _, err := o.GetOrCreateInventory(ctx, &GetInventoryInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	inventory, err := o.inventoryRepo.Mutate(ctx, input.UserID, func(inv *entities.DiceInventory) error {
		if inv.Count(input.DiceType) == 0 {
			return errors.ResourceExhaustedf("no %s dice remaining", input.DiceType)
		}
		inv.Counts[input.DiceType]--
		inv.UpdatedAt = o.clock.Now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &ConsumeOutput{Inventory: inventory}, nil
}

// Grant credits dice without payment
func (o *orchestrator) Grant(ctx context.Context, input *GrantInput) (*GrantOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	if !input.DiceType.Valid() {
		return nil, errors.InvalidArgumentf("unknown dice type %q", input.DiceType)
	}
	if input.Quantity <= 0 {
		return nil, errors.InvalidArgument("quantity must be positive")
	}

	if _, err := o.GetOrCreateInventory(ctx, &GetInventoryInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	inventory, err := o.inventoryRepo.Mutate(ctx, input.UserID, func(inv *entities.DiceInventory) error {
		if inv.Counts == nil {
			inv.Counts = make(map[entities.DiceType]int)
		}
		inv.Counts[input.DiceType] += input.Quantity
		inv.UpdatedAt = o.clock.Now()
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to credit dice")
	}

	return &GrantOutput{Inventory: inventory}, nil
}

// ClaimFree grants one free die if the cooldown has elapsed
func (o *orchestrator) ClaimFree(ctx context.Context, input *ClaimFreeInput) (*ClaimFreeOutput, error) {
	if input.UserID == "" {
		return nil, errors.InvalidArgument("user ID is required")
	}
	if !input.DiceType.Valid() {
		return nil, errors.InvalidArgumentf("unknown dice type %q", input.DiceType)
	}

	if _, err := o.GetOrCreateInventory(ctx, &GetInventoryInput{UserID: input.UserID}); err != nil {
		return nil, err
	}

	now := o.clock.Now()
	cooldown := content.FreeDiceCooldowns[input.DiceType]

	inventory, err := o.inventoryRepo.Mutate(ctx, input.UserID, func(inv *entities.DiceInventory) error {
		grant, claimed := inv.FreeGrants[input.DiceType]
		if claimed && now.Before(grant.NextAvailableAt) {
			return errors.FailedPreconditionf("free %s die not available until %s",
				input.DiceType, grant.NextAvailableAt.Format("2006-01-02 15:04:05"))
		}

		if inv.Counts == nil {
			inv.Counts = make(map[entities.DiceType]int)
		}
		if inv.FreeGrants == nil {
			inv.FreeGrants = make(map[entities.DiceType]entities.FreeDiceGrant)
		}

		inv.Counts[input.DiceType]++
		inv.FreeGrants[input.DiceType] = entities.FreeDiceGrant{
			LastClaimedAt:   now,
			NextAvailableAt: now.Add(cooldown),
		}
		inv.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Free die claimed",
		"user_id", input.UserID,
		"dice_type", input.DiceType,
		"next_available_at", inventory.FreeGrants[input.DiceType].NextAvailableAt,
	)

	return &ClaimFreeOutput{
		Inventory:       inventory,
		NextAvailableAt: inventory.FreeGrants[input.DiceType].NextAvailableAt,
	}, nil
}
