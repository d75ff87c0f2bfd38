package roster

import (
	"context"
	"sync"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
)

// InMemoryClient is a reference roster backed by process memory. The real
// deployment wires the surrounding application's roster service instead;
// this implementation serves local runs and integration tests.
type InMemoryClient struct {
	mu     sync.RWMutex
	heroes map[string]*entities.Hero
	gold   map[string]int
	items  map[string]map[string]int // heroID -> itemID -> quantity
}

// NewInMemoryClient creates an empty in-memory roster
func NewInMemoryClient() *InMemoryClient {
	return &InMemoryClient{
		heroes: make(map[string]*entities.Hero),
		gold:   make(map[string]int),
		items:  make(map[string]map[string]int),
	}
}

var _ Client = (*InMemoryClient)(nil)

// AddHero registers a hero and seeds its owner's gold balance if the hero
// carries gold.
func (c *InMemoryClient) AddHero(hero *entities.Hero) {
	c.mu.Lock()
	defer c.mu.Unlock()

	copied := *hero
	c.heroes[hero.ID] = &copied
	if hero.Gold > 0 {
		c.gold[hero.UserID] += hero.Gold
	}
}

// SetGold sets a user's gold balance directly
func (c *InMemoryClient) SetGold(userID string, amount int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.gold[userID] = amount
}

// ItemCount returns how many of an item a hero holds
func (c *InMemoryClient) ItemCount(heroID, itemID string) int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.items[heroID][itemID]
}

// GetHero returns a hero by ID
func (c *InMemoryClient) GetHero(_ context.Context, heroID string) (*entities.Hero, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	hero, ok := c.heroes[heroID]
	if !ok {
		return nil, errors.NotFoundf("hero %q not found", heroID)
	}
	copied := *hero
	return &copied, nil
}

// GetActiveParty returns the user's non-deleted heroes
func (c *InMemoryClient) GetActiveParty(_ context.Context, userID string) ([]*entities.Hero, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var party []*entities.Hero
	for _, hero := range c.heroes {
		if hero.UserID == userID && !hero.Deleted {
			copied := *hero
			party = append(party, &copied)
		}
	}
	return party, nil
}

// GetGold returns the user's gold balance
func (c *InMemoryClient) GetGold(_ context.Context, userID string) (int, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.gold[userID], nil
}

// SpendGold debits gold, failing when the balance is insufficient
func (c *InMemoryClient) SpendGold(_ context.Context, userID string, amount int) error {
	if amount < 0 {
		return errors.InvalidArgument("amount must not be negative")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gold[userID] < amount {
		return errors.ResourceExhaustedf("insufficient gold: have %d, need %d", c.gold[userID], amount)
	}
	c.gold[userID] -= amount
	return nil
}

// AddGold credits gold to the user
func (c *InMemoryClient) AddGold(_ context.Context, userID string, amount int) error {
	if amount < 0 {
		return errors.InvalidArgument("amount must not be negative")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.gold[userID] += amount
	return nil
}

// ConsumeItem removes one item from a hero's inventory
func (c *InMemoryClient) ConsumeItem(_ context.Context, heroID, itemID string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.heroes[heroID]; !ok {
		return errors.NotFoundf("hero %q not found", heroID)
	}
	if c.items[heroID][itemID] == 0 {
		return errors.ResourceExhaustedf("hero %q holds no %q", heroID, itemID)
	}
	c.items[heroID][itemID]--
	return nil
}

// AddExperience credits experience to a hero and applies level-ups
func (c *InMemoryClient) AddExperience(_ context.Context, heroID string, amount int) error {
	if amount < 0 {
		return errors.InvalidArgument("amount must not be negative")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	hero, ok := c.heroes[heroID]
	if !ok {
		return errors.NotFoundf("hero %q not found", heroID)
	}

	hero.Experience += amount
	hero.Level = entities.LevelForExperience(hero.Experience)
	return nil
}

// GrantItem adds an item to a hero's inventory
func (c *InMemoryClient) GrantItem(_ context.Context, heroID, itemID string, quantity int) error {
	if quantity <= 0 {
		return errors.InvalidArgument("quantity must be positive")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.heroes[heroID]; !ok {
		return errors.NotFoundf("hero %q not found", heroID)
	}
	if c.items[heroID] == nil {
		c.items[heroID] = make(map[string]int)
	}
	c.items[heroID][itemID] += quantity
	return nil
}
