package entities

// Morale reflects a side's recent success/failure streak. It is derived
// from the session's streak counters, never stored.
type Morale string

// Morale states
const (
	MoraleInspired Morale = "inspired"
	MoraleSteady   Morale = "steady"
	MoraleShaken   Morale = "shaken"
)

// Streak length at which morale shifts away from steady
const moraleStreakThreshold = 3

// MoraleFor derives morale from consecutive success and failure counters
func MoraleFor(successStreak, failureStreak int) Morale {
	switch {
	case successStreak >= moraleStreakThreshold:
		return MoraleInspired
	case failureStreak >= moraleStreakThreshold:
		return MoraleShaken
	default:
		return MoraleSteady
	}
}

// DamageBonus returns the flat damage adjustment morale grants. Inspired
// parties hit slightly harder; shaken morale is flavor only.
func (m Morale) DamageBonus() int {
	if m == MoraleInspired {
		return 1
	}
	return 0
}
