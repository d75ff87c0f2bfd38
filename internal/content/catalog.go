// Package content holds the static game content catalog: enemies, quests,
// items, abilities, party combos, and boss weaknesses. The catalog is built
// once at process start from literal tables and is read-only afterwards.
package content

import (
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
)

// Catalog is an immutable lookup over the static content tables
type Catalog struct {
	enemies    map[string]entities.EnemyTemplate
	quests     map[string]entities.Quest
	items      map[string]entities.ItemTemplate
	abilities  map[string]entities.Ability
	combos     map[string]entities.Combo
	weaknesses map[string][]entities.BossWeakness
}

// New builds the catalog from the literal content tables
func New() *Catalog {
	c := &Catalog{
		enemies:    make(map[string]entities.EnemyTemplate, len(enemyTable)),
		quests:     make(map[string]entities.Quest, len(questTable)),
		items:      make(map[string]entities.ItemTemplate, len(itemTable)),
		abilities:  make(map[string]entities.Ability, len(abilityTable)),
		combos:     make(map[string]entities.Combo, len(comboTable)),
		weaknesses: make(map[string][]entities.BossWeakness),
	}

	for _, e := range enemyTable {
		c.enemies[e.ID] = e
	}
	for _, q := range questTable {
		c.quests[q.ID] = q
	}
	for _, i := range itemTable {
		c.items[i.ID] = i
	}
	for _, a := range abilityTable {
		c.abilities[a.ID] = a
	}
	for _, combo := range comboTable {
		c.combos[combo.ID] = combo
	}
	for _, w := range weaknessTable {
		c.weaknesses[w.EnemyID] = append(c.weaknesses[w.EnemyID], w)
	}

	return c
}

// Enemy looks up an enemy template by ID
func (c *Catalog) Enemy(id string) (entities.EnemyTemplate, error) {
	e, ok := c.enemies[id]
	if !ok {
		return entities.EnemyTemplate{}, errors.Internalf("enemy template %q missing from catalog", id)
	}
	return e, nil
}

// Quest looks up a quest by ID
func (c *Catalog) Quest(id string) (entities.Quest, error) {
	q, ok := c.quests[id]
	if !ok {
		return entities.Quest{}, errors.Internalf("quest %q missing from catalog", id)
	}
	return q, nil
}

// Item looks up an item template by ID
func (c *Catalog) Item(id string) (entities.ItemTemplate, error) {
	i, ok := c.items[id]
	if !ok {
		return entities.ItemTemplate{}, errors.NotFoundf("unknown item %q", id)
	}
	return i, nil
}

// Ability looks up an ability by ID
func (c *Catalog) Ability(id string) (entities.Ability, error) {
	a, ok := c.abilities[id]
	if !ok {
		return entities.Ability{}, errors.NotFoundf("unknown ability %q", id)
	}
	return a, nil
}

// Combo looks up a party combo by ID
func (c *Catalog) Combo(id string) (entities.Combo, error) {
	combo, ok := c.combos[id]
	if !ok {
		return entities.Combo{}, errors.Internalf("combo %q missing from catalog", id)
	}
	return combo, nil
}

// WeaknessesFor returns every registered weakness for an enemy, empty when
// the enemy has none.
func (c *Catalog) WeaknessesFor(enemyID string) []entities.BossWeakness {
	return c.weaknesses[enemyID]
}
