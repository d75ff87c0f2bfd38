package entities

import "time"

// Combo defines a party-class composition. Two classes are required; the
// third is optional.
type Combo struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Classes []HeroClass `json:"classes"`
}

// Matches reports whether the party contains every class the combo
// requires. Extra party members are allowed; duplicates in the party count
// once per required slot.
func (c *Combo) Matches(partyClasses []HeroClass) bool {
	if len(c.Classes) == 0 {
		return false
	}

	available := make(map[HeroClass]int, len(partyClasses))
	for _, pc := range partyClasses {
		available[pc]++
	}

	for _, required := range c.Classes {
		if available[required] == 0 {
			return false
		}
		available[required]--
	}
	return true
}

// BossWeakness links an enemy to a combo that exploits it
type BossWeakness struct {
	EnemyID              string  `json:"enemy_id"`
	ComboID              string  `json:"combo_id"`
	RollReduction        int     `json:"roll_reduction"`
	DropMultiplier       float64 `json:"drop_multiplier"`
	ExperienceMultiplier float64 `json:"experience_multiplier"`

	// Hidden weaknesses only apply once a party member has discovered them
	Hidden bool `json:"hidden"`
}

// ComboDiscovery records the first successful exploitation of a boss
// weakness by a user. Unique per user/enemy/combo.
type ComboDiscovery struct {
	UserID       string    `json:"user_id"`
	EnemyID      string    `json:"enemy_id"`
	ComboID      string    `json:"combo_id"`
	TimesUsed    int       `json:"times_used"`
	TimesWon     int       `json:"times_won"`
	DiscoveredAt time.Time `json:"discovered_at"`
}
