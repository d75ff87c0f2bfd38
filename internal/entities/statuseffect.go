package entities

// TargetKind discriminates which side of the encounter an effect is
// attached to
type TargetKind string

// Target kinds
const (
	TargetHero  TargetKind = "hero"
	TargetEnemy TargetKind = "enemy"
)

// EffectType identifies a timed buff/debuff
type EffectType string

// Effect types
const (
	EffectWeakened        EffectType = "weakened"
	EffectPoisoned        EffectType = "poisoned"
	EffectStunned         EffectType = "stunned"
	EffectShielded        EffectType = "shielded"
	EffectStrengthBoosted EffectType = "strength_boosted"
)

// StatusEffect is a timed modifier attached to a hero or the enemy for a
// fixed number of turns. Effects live inside the combat session aggregate
// and are decremented exactly once after each resolved action.
type StatusEffect struct {
	TargetKind     TargetKind `json:"target_kind"`
	TargetID       string     `json:"target_id"`
	Type           EffectType `json:"type"`
	TurnsRemaining int        `json:"turns_remaining"`
}

// ApplyEffect adds an effect to the list. Re-applying an effect type already
// active on the same target refreshes its duration to the new value rather
// than stacking a second entry.
func ApplyEffect(effects []StatusEffect, effect StatusEffect) []StatusEffect {
	for i := range effects {
		if effects[i].TargetKind == effect.TargetKind &&
			effects[i].TargetID == effect.TargetID &&
			effects[i].Type == effect.Type {
			effects[i].TurnsRemaining = effect.TurnsRemaining
			return effects
		}
	}
	return append(effects, effect)
}

// TickEffects decrements every effect by one turn and removes expired ones.
// It returns the surviving effects and the effects that expired this tick.
func TickEffects(effects []StatusEffect) (remaining, expired []StatusEffect) {
	for _, e := range effects {
		e.TurnsRemaining--
		if e.TurnsRemaining <= 0 {
			expired = append(expired, e)
			continue
		}
		remaining = append(remaining, e)
	}
	return remaining, expired
}

// ActiveEffects returns the effects currently attached to one target
func ActiveEffects(effects []StatusEffect, kind TargetKind, targetID string) []StatusEffect {
	var out []StatusEffect
	for _, e := range effects {
		if e.TargetKind == kind && e.TargetID == targetID {
			out = append(out, e)
		}
	}
	return out
}

// HasEffect reports whether the target currently has an effect of the given
// type
func HasEffect(effects []StatusEffect, kind TargetKind, targetID string, effectType EffectType) bool {
	for _, e := range effects {
		if e.TargetKind == kind && e.TargetID == targetID && e.Type == effectType {
			return true
		}
	}
	return false
}
