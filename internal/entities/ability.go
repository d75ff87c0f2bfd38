package entities

// Ability is immutable reference data for a hero ability. Abilities follow
// the same roll contract as attacks but may additionally apply a status
// effect and carry a per-session cooldown.
type Ability struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Class HeroClass `json:"class"`

	// UsesMagic selects the actor's magic stat over attack for damage
	UsesMagic   bool `json:"uses_magic"`
	DamageBonus int  `json:"damage_bonus"`

	// Status effect applied to the enemy on a successful hit
	EffectType  EffectType `json:"effect_type,omitempty"`
	EffectTurns int        `json:"effect_turns,omitempty"`

	// Turns the ability is blocked after use
	CooldownTurns int `json:"cooldown_turns"`
}
