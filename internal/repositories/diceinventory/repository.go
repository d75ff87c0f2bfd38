// Package diceinventory provides storage for per-user dice inventories
package diceinventory

//go:generate mockgen -destination=mock/mock_repository.go -package=diceinventorymock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/diceinventory Repository

import (
	"context"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// Repository defines the storage interface for dice inventories.
//
// Mutate runs the supplied function inside an optimistic read-modify-write,
// the unit of work for consume/purchase/claim: a concurrent mutation of the
// same user's inventory forces a retry, so counts never go negative and
// grants are never lost.
type Repository interface {
	// Get retrieves a user's inventory
	Get(ctx context.Context, userID string) (*entities.DiceInventory, error)

	// Create stores a new inventory if the user does not already have
	// one; when one exists the stored inventory is returned unchanged.
	Create(ctx context.Context, inventory *entities.DiceInventory) (*entities.DiceInventory, error)

	// Mutate atomically applies fn to the stored inventory and persists
	// the result. fn returning an error aborts without writing.
	Mutate(ctx context.Context, userID string, fn func(*entities.DiceInventory) error) (*entities.DiceInventory, error)
}
