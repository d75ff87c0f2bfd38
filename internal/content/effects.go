package content

import "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"

// Combat tuning constants. Effect magnitudes are fixed game content, not
// per-effect data.
const (
	// PoisonTickDamage is dealt to a poisoned target each round
	PoisonTickDamage = 3

	// WeakenedDamagePenalty is subtracted from a weakened actor's damage
	WeakenedDamagePenalty = 2

	// StrengthBoostDamageBonus is added to a strength-boosted actor's damage
	StrengthBoostDamageBonus = 2

	// CritDamageMultiplier applies when the roll lands on the die's top face
	CritDamageMultiplier = 2

	// FleeSuccessRoll is the minimum flee roll on FleeDiceType
	FleeSuccessRoll = 5

	// EnemyHitRoll is the minimum enemy roll on EnemyDiceType that lands
	// the automated enemy action
	EnemyHitRoll = 3

	// DropRollSize is the percentile die for item drop chances
	DropRollSize = 100
)

// FleeDiceType is the die rolled for a flee attempt. Fleeing costs no dice
// from the inventory.
const FleeDiceType = entities.DiceMedium

// EnemyDiceType is the die the enemy rolls for its automated action. Enemy
// rolls never touch the party's inventory.
const EnemyDiceType = entities.DiceMedium
