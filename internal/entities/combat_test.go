package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthPool_DamageClampsAtZero(t *testing.T) {
	pool := HealthPool{Current: 10, Max: 30}

	assert.Equal(t, 10, pool.Damage(25))
	assert.Equal(t, 0, pool.Current)
	assert.True(t, pool.Depleted())

	// Further damage is a no-op, never negative
	assert.Equal(t, 0, pool.Damage(5))
	assert.Equal(t, 0, pool.Current)
}

func TestHealthPool_HealCapsAtMax(t *testing.T) {
	pool := HealthPool{Current: 25, Max: 30}

	assert.Equal(t, 5, pool.Heal(20))
	assert.Equal(t, 30, pool.Current)
}

func TestCombatStatus_Terminal(t *testing.T) {
	assert.False(t, CombatNotStarted.Terminal())
	assert.False(t, CombatInProgress.Terminal())
	assert.True(t, CombatVictory.Terminal())
	assert.True(t, CombatDefeat.Terminal())
	assert.True(t, CombatFled.Terminal())
}

func TestCombatSession_LowestHealthHero(t *testing.T) {
	session := &CombatSession{
		HeroIDs: []string{"hero_1", "hero_2", "hero_3"},
		HeroHealth: map[string]*HealthPool{
			"hero_1": {Current: 12, Max: 30},
			"hero_2": {Current: 0, Max: 30},
			"hero_3": {Current: 8, Max: 30},
		},
	}

	// Downed heroes are never targeted
	assert.Equal(t, "hero_3", session.LowestHealthHero())

	session.HeroHealth["hero_3"].Damage(8)
	assert.Equal(t, "hero_1", session.LowestHealthHero())
	assert.False(t, session.AllHeroesDown())

	session.HeroHealth["hero_1"].Damage(12)
	assert.Equal(t, "", session.LowestHealthHero())
	assert.True(t, session.AllHeroesDown())
}

func TestCombatSession_Cooldowns(t *testing.T) {
	session := &CombatSession{}

	assert.Equal(t, 0, session.CooldownFor("hero_1", "power_strike"))

	session.SetCooldown("hero_1", "power_strike", 2)
	assert.Equal(t, 2, session.CooldownFor("hero_1", "power_strike"))

	session.TickCooldowns()
	assert.Equal(t, 1, session.CooldownFor("hero_1", "power_strike"))

	session.TickCooldowns()
	assert.Equal(t, 0, session.CooldownFor("hero_1", "power_strike"))
	assert.Empty(t, session.Cooldowns)
}

func TestCombatSession_PartyMorale(t *testing.T) {
	session := &CombatSession{}
	assert.Equal(t, MoraleSteady, session.PartyMorale())

	session.ConsecutiveHits = 3
	assert.Equal(t, MoraleInspired, session.PartyMorale())
	assert.Equal(t, 1, session.PartyMorale().DamageBonus())

	session.ConsecutiveHits = 0
	session.ConsecutiveMisses = 4
	assert.Equal(t, MoraleShaken, session.PartyMorale())
	assert.Equal(t, 0, session.PartyMorale().DamageBonus())
}
