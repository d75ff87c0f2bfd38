package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/content"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

func TestHitThreshold_ClampsToOne(t *testing.T) {
	tests := []struct {
		name      string
		required  int
		reduction int
		want      int
	}{
		{"no reduction", 4, 0, 4},
		{"partial reduction", 4, 2, 2},
		{"reduction to zero clamps", 4, 4, 1},
		{"reduction below zero clamps", 4, 6, 1},
		{"roll of one can always hit", 1, 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hitThreshold(tt.required, tt.reduction))
		})
	}
}

func testSession() *entities.CombatSession {
	return &entities.CombatSession{
		ID:      "combat_1",
		HeroIDs: []string{"hero_1"},
		HeroHealth: map[string]*entities.HealthPool{
			"hero_1": {Current: 30, Max: 30},
		},
		EnemyHealth: entities.HealthPool{Current: 40, Max: 40},
		EnemyID:     "enemy_1",
		Status:      entities.CombatInProgress,
		Turn:        entities.TurnHero,
	}
}

func TestHeroDamage_Modifiers(t *testing.T) {
	enemy := entities.EnemyTemplate{ID: "enemy_1"}
	actor := &entities.Hero{ID: "hero_1", Attack: 8, Magic: 12}

	s := testSession()
	assert.Equal(t, 8, heroDamage(s, actor, enemy, nil, false))

	ability := &entities.Ability{UsesMagic: true, DamageBonus: 3}
	assert.Equal(t, 15, heroDamage(s, actor, enemy, ability, false))

	assert.Equal(t, 16, heroDamage(s, actor, enemy, nil, true), "crits double")

	s.Effects = entities.ApplyEffect(s.Effects, entities.StatusEffect{
		TargetKind: entities.TargetHero, TargetID: "hero_1",
		Type: entities.EffectStrengthBoosted, TurnsRemaining: 2,
	})
	assert.Equal(t, 10, heroDamage(s, actor, enemy, nil, false))

	s = testSession()
	s.Effects = entities.ApplyEffect(s.Effects, entities.StatusEffect{
		TargetKind: entities.TargetHero, TargetID: "hero_1",
		Type: entities.EffectWeakened, TurnsRemaining: 2,
	})
	assert.Equal(t, 6, heroDamage(s, actor, enemy, nil, false))

	// Weakening never drives damage below one
	weakActor := &entities.Hero{ID: "hero_1", Attack: 1}
	assert.Equal(t, 1, heroDamage(s, weakActor, enemy, nil, false))
}

func TestHeroDamage_MoraleBonus(t *testing.T) {
	enemy := entities.EnemyTemplate{ID: "enemy_1"}
	actor := &entities.Hero{ID: "hero_1", Attack: 8}

	s := testSession()
	s.ConsecutiveHits = 3
	assert.Equal(t, 9, heroDamage(s, actor, enemy, nil, false), "inspired parties hit harder")
}

func TestEnemyHalf_RollGate(t *testing.T) {
	enemy := entities.EnemyTemplate{ID: "enemy_1", Name: "Gnarl", Power: 10}
	heroes := map[string]*entities.Hero{
		"hero_1": {ID: "hero_1", Name: "Petra", Defense: 4},
	}

	s := testSession()
	enemyHalf(s, enemy, heroes, content.EnemyHitRoll-1)
	assert.Equal(t, 30, s.HeroHealth["hero_1"].Current, "a roll under the hit roll misses")

	enemyHalf(s, enemy, heroes, content.EnemyHitRoll)
	assert.Equal(t, 22, s.HeroHealth["hero_1"].Current)
}

func TestEnemyDamage_ShieldHalves(t *testing.T) {
	enemy := entities.EnemyTemplate{ID: "enemy_1", Power: 10}
	target := &entities.Hero{ID: "hero_1", Defense: 4}

	s := testSession()
	assert.Equal(t, 8, enemyDamage(s, enemy, target), "power 10 - defense/2")

	s.Effects = entities.ApplyEffect(s.Effects, entities.StatusEffect{
		TargetKind: entities.TargetHero, TargetID: "hero_1",
		Type: entities.EffectShielded, TurnsRemaining: 2,
	})
	assert.Equal(t, 4, enemyDamage(s, enemy, target))
}

func TestEnemyDamage_FloorsAtOne(t *testing.T) {
	enemy := entities.EnemyTemplate{ID: "enemy_1", Power: 2}
	target := &entities.Hero{ID: "hero_1", Defense: 20}

	s := testSession()
	assert.Equal(t, 1, enemyDamage(s, enemy, target))
}
