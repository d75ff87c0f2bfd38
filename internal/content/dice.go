package content

import (
	"time"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// DicePrices is the gold cost per die, by type
var DicePrices = map[entities.DiceType]int{
	entities.DiceSmall:      10,
	entities.DiceMedium:     25,
	entities.DiceLarge:      50,
	entities.DiceExtraLarge: 100,
}

// FreeDiceCooldowns is the fixed wait between free grants, by type. Larger
// dice have longer cooldowns.
var FreeDiceCooldowns = map[entities.DiceType]time.Duration{
	entities.DiceSmall:      6 * time.Hour,
	entities.DiceMedium:     12 * time.Hour,
	entities.DiceLarge:      24 * time.Hour,
	entities.DiceExtraLarge: 48 * time.Hour,
}

// StartingDiceCounts seeds a freshly created inventory
var StartingDiceCounts = map[entities.DiceType]int{
	entities.DiceSmall:      5,
	entities.DiceMedium:     3,
	entities.DiceLarge:      1,
	entities.DiceExtraLarge: 0,
}
