package entities

import "time"

// DiceType identifies one of the four dice sizes players own and consume
type DiceType string

// Dice types, smallest to largest
const (
	DiceSmall      DiceType = "small"
	DiceMedium     DiceType = "medium"
	DiceLarge      DiceType = "large"
	DiceExtraLarge DiceType = "extra_large"
)

// DiceTypes lists all dice types in ascending face order
var DiceTypes = []DiceType{DiceSmall, DiceMedium, DiceLarge, DiceExtraLarge}

// Faces returns the number of faces for the dice type. Unknown types
// return 0.
func (d DiceType) Faces() int {
	switch d {
	case DiceSmall:
		return 4
	case DiceMedium:
		return 6
	case DiceLarge:
		return 8
	case DiceExtraLarge:
		return 12
	default:
		return 0
	}
}

// Valid reports whether the dice type is one of the four known sizes
func (d DiceType) Valid() bool {
	return d.Faces() > 0
}

// FreeDiceGrant tracks the time-gated free grant for one dice type
type FreeDiceGrant struct {
	LastClaimedAt   time.Time `json:"last_claimed_at"`
	NextAvailableAt time.Time `json:"next_available_at"`
}

// DiceInventory holds a user's dice counts and free-grant cooldowns. Dice
// are owned by the user, not by individual heroes.
type DiceInventory struct {
	UserID string           `json:"user_id"`
	Counts map[DiceType]int `json:"counts"`

	// FreeGrants tracks per-type claim cooldowns; a type missing from the
	// map has never been claimed and is immediately available
	FreeGrants map[DiceType]FreeDiceGrant `json:"free_grants"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Count returns the number of dice of the given type, zero for unknown or
// never-granted types.
func (i *DiceInventory) Count(t DiceType) int {
	if i.Counts == nil {
		return 0
	}
	return i.Counts[t]
}
