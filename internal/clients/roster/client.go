// Package roster defines the interface to the surrounding application's
// user/hero roster. The combat core reads party and hero data through it and
// delegates reward application (gold, experience, items) back to it. The
// core trusts the user IDs it receives; authentication happens upstream.
package roster

//go:generate mockgen -destination=mock/mock_client.go -package=rostermock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster Client

import (
	"context"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// Client is the read/mutate surface the combat core needs from the roster
type Client interface {
	// GetHero returns a hero by ID, soft-deleted heroes included
	GetHero(ctx context.Context, heroID string) (*entities.Hero, error)

	// GetActiveParty returns the user's active, non-deleted heroes in
	// party order
	GetActiveParty(ctx context.Context, userID string) ([]*entities.Hero, error)

	// GetGold returns the user's gold balance
	GetGold(ctx context.Context, userID string) (int, error)

	// SpendGold debits gold atomically, failing with ResourceExhausted
	// when the balance is insufficient
	SpendGold(ctx context.Context, userID string, amount int) error

	// AddGold credits gold to the user
	AddGold(ctx context.Context, userID string, amount int) error

	// AddExperience credits experience to a hero, applying any level-ups
	AddExperience(ctx context.Context, heroID string, amount int) error

	// GrantItem adds an item to a hero's inventory
	GrantItem(ctx context.Context, heroID, itemID string, quantity int) error

	// ConsumeItem removes one item from a hero's inventory, failing with
	// ResourceExhausted when the hero holds none
	ConsumeItem(ctx context.Context, heroID, itemID string) error
}
