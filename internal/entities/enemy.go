package entities

// EnemyTemplate is immutable reference data describing a monster. A combat
// session copies MaxHealth into session-local state; the template itself is
// never decremented.
type EnemyTemplate struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Power  int    `json:"power"`
	Health int    `json:"health"`

	// Dice gate for landing a hit on this enemy
	RequiredDiceType DiceType `json:"required_dice_type"`
	RequiredRoll     int      `json:"required_roll"`

	IsBoss bool `json:"is_boss"`

	// Base rewards on victory
	GoldReward       int `json:"gold_reward"`
	ExperienceReward int `json:"experience_reward"`

	// Drop table: one item with a base percent chance, scaled by any
	// weakness drop multiplier
	DropItemID        string `json:"drop_item_id,omitempty"`
	DropChancePercent int    `json:"drop_chance_percent,omitempty"`
}
