package combat

import (
	"time"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// ActionKind selects what a hero does on their turn
type ActionKind string

// Action kinds
const (
	ActionAttack  ActionKind = "attack"
	ActionAbility ActionKind = "ability"
	ActionItem    ActionKind = "item"
)

// StartCombatInput defines the request for starting an encounter. An empty
// HeroIDs defaults to the caller's active party.
type StartCombatInput struct {
	UserID  string
	HeroIDs []string
	QuestID string
}

// StartCombatOutput defines the response for starting an encounter
type StartCombatOutput struct {
	Summary *SessionSummary
}

// ResolveActionInput defines one hero action submission. DiceType is
// optional: when empty the enemy's required die is consumed.
type ResolveActionInput struct {
	SessionID   string
	UserID      string
	ActorHeroID string
	Action      ActionKind
	DiceType    entities.DiceType
	AbilityID   string
	ItemID      string
}

// ResolveActionOutput defines the response for a resolved action
type ResolveActionOutput struct {
	Summary *SessionSummary
}

// FleeInput defines the request for abandoning an encounter
type FleeInput struct {
	SessionID string
	UserID    string
}

// FleeOutput defines the response for a flee attempt. A failed attempt
// forfeits the hero turn: the enemy acts before the response returns.
type FleeOutput struct {
	Success bool
	Summary *SessionSummary
}

// GetSessionInput defines the request for reading session state
type GetSessionInput struct {
	SessionID string
	UserID    string
}

// GetSessionOutput defines the response for reading session state
type GetSessionOutput struct {
	Summary *SessionSummary
}

// SessionSummary is the caller-facing view of a session after an
// operation. LastRoll and LastRollHit are only populated by operations
// that rolled in the same request.
type SessionSummary struct {
	SessionID string
	Status    entities.CombatStatus
	Turn      entities.Turn

	EnemyID   string
	EnemyName string

	HeroHealth  map[string]entities.HealthPool
	EnemyHealth entities.HealthPool

	Effects     []entities.StatusEffect
	PartyMorale entities.Morale

	LastRoll    int
	LastRollHit bool
	LastAction  string

	// Weakness applied for this encounter, zero values when none
	WeaknessComboID string
	RollReduction   int

	RewardID    string
	CompletedAt *time.Time
}
