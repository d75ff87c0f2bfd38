package entities

// ItemTemplate is immutable reference data for an item. Items usable in
// combat carry a deterministic effect (healing and/or a status effect)
// instead of requiring a roll.
type ItemTemplate struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`

	// Equipment bonuses applied to the wielder's derived stats
	AttackBonus  int `json:"attack_bonus,omitempty"`
	DefenseBonus int `json:"defense_bonus,omitempty"`
	MagicBonus   int `json:"magic_bonus,omitempty"`

	// Combat consumable behavior
	UsableInCombat bool       `json:"usable_in_combat,omitempty"`
	HealAmount     int        `json:"heal_amount,omitempty"`
	EffectType     EffectType `json:"effect_type,omitempty"`
	EffectTurns    int        `json:"effect_turns,omitempty"`
}
