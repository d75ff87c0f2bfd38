package combat

import (
	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// HeroEntity wraps entities.Hero to implement core.Entity interface
type HeroEntity struct {
	*entities.Hero
}

// GetID returns the hero's ID
func (h *HeroEntity) GetID() string {
	return h.ID
}

// GetType returns the entity type for rpg-toolkit
func (h *HeroEntity) GetType() string {
	return "hero"
}

// EnemyEntity wraps entities.EnemyTemplate to implement core.Entity interface
type EnemyEntity struct {
	entities.EnemyTemplate
}

// GetID returns the enemy's ID
func (e *EnemyEntity) GetID() string {
	return e.ID
}

// GetType returns the entity type for rpg-toolkit
func (e *EnemyEntity) GetType() string {
	return "enemy"
}

// wrapHero converts an entities.Hero to a HeroEntity
func wrapHero(hero *entities.Hero) *HeroEntity {
	return &HeroEntity{Hero: hero}
}

// wrapEnemy converts an entities.EnemyTemplate to an EnemyEntity
func wrapEnemy(template entities.EnemyTemplate) *EnemyEntity {
	return &EnemyEntity{EnemyTemplate: template}
}

// Compile-time check that our entity wrappers implement core.Entity
var (
	_ core.Entity = (*HeroEntity)(nil)
	_ core.Entity = (*EnemyEntity)(nil)
)
