package entities

import "time"

// CombatStatus is the lifecycle state of a combat session. Victory, defeat,
// and fled are terminal: once set they never change.
type CombatStatus string

// Combat session statuses
const (
	CombatNotStarted CombatStatus = "not_started"
	CombatInProgress CombatStatus = "in_progress"
	CombatVictory    CombatStatus = "victory"
	CombatDefeat     CombatStatus = "defeat"
	CombatFled       CombatStatus = "fled"
)

// Terminal reports whether the status ends the session
func (s CombatStatus) Terminal() bool {
	return s == CombatVictory || s == CombatDefeat || s == CombatFled
}

// Turn identifies which side acts next
type Turn string

// Turn sides
const (
	TurnHero  Turn = "hero"
	TurnEnemy Turn = "enemy"
)

// HealthPool is session-local mutable health, clamped to [0, Max]
type HealthPool struct {
	Current int `json:"current"`
	Max     int `json:"max"`
}

// Damage subtracts amount from the pool, flooring at zero, and returns the
// damage actually applied.
func (h *HealthPool) Damage(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if amount > h.Current {
		amount = h.Current
	}
	h.Current -= amount
	return amount
}

// Heal adds amount to the pool, capping at Max, and returns the amount
// actually restored.
func (h *HealthPool) Heal(amount int) int {
	if amount < 0 {
		amount = 0
	}
	if h.Current+amount > h.Max {
		amount = h.Max - h.Current
	}
	h.Current += amount
	return amount
}

// Depleted reports whether the pool is empty
func (h *HealthPool) Depleted() bool {
	return h.Current <= 0
}

// CombatSession is the aggregate root of one hero-party-vs-enemy encounter.
// Heroes always act first; the automated enemy action resolves inside the
// same request after the hero action, so callers only ever observe the
// session waiting on the hero side or terminal.
type CombatSession struct {
	ID      string       `json:"id"`
	UserID  string       `json:"user_id"`
	HeroIDs []string     `json:"hero_ids"`
	QuestID string       `json:"quest_id"`
	EnemyID string       `json:"enemy_id"`
	Status  CombatStatus `json:"status"`
	Turn    Turn         `json:"turn"`

	HeroHealth  map[string]*HealthPool `json:"hero_health"`
	EnemyHealth HealthPool             `json:"enemy_health"`

	// Per-hero, per-ability remaining cooldown turns
	Cooldowns map[string]map[string]int `json:"cooldowns,omitempty"`

	// Active status effects for both sides
	Effects []StatusEffect `json:"effects,omitempty"`

	// Streak counters feeding morale and combo tracking
	ConsecutiveHits   int `json:"consecutive_hits"`
	ConsecutiveMisses int `json:"consecutive_misses"`

	// Weakness active for this encounter, zero values when none applies
	WeaknessComboID      string  `json:"weakness_combo_id,omitempty"`
	RollReduction        int     `json:"roll_reduction,omitempty"`
	DropMultiplier       float64 `json:"drop_multiplier,omitempty"`
	ExperienceMultiplier float64 `json:"experience_multiplier,omitempty"`

	// WeaknessRecorded is set once the first successful hit of this
	// session has been counted against the discovery record
	WeaknessRecorded bool `json:"weakness_recorded,omitempty"`

	// LatentComboID is a matched hidden weakness the party has not yet
	// discovered. It grants nothing this session; winning discovers it.
	LatentComboID string `json:"latent_combo_id,omitempty"`

	// ID of the hero that landed the killing blow; rewards go to them
	LastActorHeroID string `json:"last_actor_hero_id,omitempty"`

	LastAction string `json:"last_action,omitempty"`

	RewardID string `json:"reward_id,omitempty"`

	CreatedAt   time.Time  `json:"created_at"`
	StartedAt   time.Time  `json:"started_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// HasHero reports whether the hero participates in this session
func (s *CombatSession) HasHero(heroID string) bool {
	for _, id := range s.HeroIDs {
		if id == heroID {
			return true
		}
	}
	return false
}

// HeroAlive reports whether the hero still has health remaining
func (s *CombatSession) HeroAlive(heroID string) bool {
	pool, ok := s.HeroHealth[heroID]
	return ok && !pool.Depleted()
}

// AllHeroesDown reports whether every participating hero is at zero health
func (s *CombatSession) AllHeroesDown() bool {
	for _, id := range s.HeroIDs {
		if s.HeroAlive(id) {
			return false
		}
	}
	return true
}

// LowestHealthHero returns the living hero with the least current health.
// Ties break on party order. Returns empty string when all heroes are down.
func (s *CombatSession) LowestHealthHero() string {
	best := ""
	bestHealth := 0
	for _, id := range s.HeroIDs {
		pool, ok := s.HeroHealth[id]
		if !ok || pool.Depleted() {
			continue
		}
		if best == "" || pool.Current < bestHealth {
			best = id
			bestHealth = pool.Current
		}
	}
	return best
}

// CooldownFor returns the hero's remaining cooldown for an ability
func (s *CombatSession) CooldownFor(heroID, abilityID string) int {
	if s.Cooldowns == nil {
		return 0
	}
	return s.Cooldowns[heroID][abilityID]
}

// SetCooldown records a hero's ability cooldown
func (s *CombatSession) SetCooldown(heroID, abilityID string, turns int) {
	if s.Cooldowns == nil {
		s.Cooldowns = make(map[string]map[string]int)
	}
	if s.Cooldowns[heroID] == nil {
		s.Cooldowns[heroID] = make(map[string]int)
	}
	s.Cooldowns[heroID][abilityID] = turns
}

// TickCooldowns decrements every active cooldown by one turn, dropping
// entries that reach zero.
func (s *CombatSession) TickCooldowns() {
	for heroID, byAbility := range s.Cooldowns {
		for abilityID, turns := range byAbility {
			if turns <= 1 {
				delete(byAbility, abilityID)
				continue
			}
			byAbility[abilityID] = turns - 1
		}
		if len(byAbility) == 0 {
			delete(s.Cooldowns, heroID)
		}
	}
}

// PartyMorale derives the party's morale from the session streak counters
func (s *CombatSession) PartyMorale() Morale {
	return MoraleFor(s.ConsecutiveHits, s.ConsecutiveMisses)
}
