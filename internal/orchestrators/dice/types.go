package dice

import (
	"time"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// GetInventoryInput defines the request for fetching a dice inventory
type GetInventoryInput struct {
	UserID string
}

// GetInventoryOutput defines the response for fetching a dice inventory
type GetInventoryOutput struct {
	Inventory *entities.DiceInventory
}

// PurchaseInput defines the request for buying dice with gold
type PurchaseInput struct {
	UserID   string
	DiceType entities.DiceType
	Quantity int
}

// PurchaseOutput defines the response for buying dice
type PurchaseOutput struct {
	Inventory *entities.DiceInventory
	GoldSpent int
}

// ConsumeInput defines the request for spending one die
type ConsumeInput struct {
	UserID   string
	DiceType entities.DiceType
}

// ConsumeOutput defines the response for spending one die
type ConsumeOutput struct {
	Inventory *entities.DiceInventory
}

// GrantInput defines the request for crediting dice without payment, used
// by reward claims
type GrantInput struct {
	UserID   string
	DiceType entities.DiceType
	Quantity int
}

// GrantOutput defines the response for crediting dice
type GrantOutput struct {
	Inventory *entities.DiceInventory
}

// ClaimFreeInput defines the request for claiming a free die
type ClaimFreeInput struct {
	UserID   string
	DiceType entities.DiceType
}

// ClaimFreeOutput defines the response for claiming a free die
type ClaimFreeOutput struct {
	Inventory       *entities.DiceInventory
	NextAvailableAt time.Time
}
