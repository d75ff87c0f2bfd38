package content

import "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"

var comboTable = []entities.Combo{
	{
		ID:      "combo_steel_and_sorcery",
		Name:    "Steel and Sorcery",
		Classes: []entities.HeroClass{entities.ClassWarrior, entities.ClassMage},
	},
	{
		ID:      "combo_holy_vanguard",
		Name:    "Holy Vanguard",
		Classes: []entities.HeroClass{entities.ClassWarrior, entities.ClassCleric},
	},
	{
		ID:      "combo_shadow_hunt",
		Name:    "Shadow Hunt",
		Classes: []entities.HeroClass{entities.ClassRogue, entities.ClassRanger},
	},
	{
		ID:      "combo_trinity",
		Name:    "The Trinity",
		Classes: []entities.HeroClass{entities.ClassWarrior, entities.ClassMage, entities.ClassCleric},
	},
}

// weaknessTable links bosses to the combos that exploit them. Hidden
// weaknesses only apply after the user has a discovery record.
var weaknessTable = []entities.BossWeakness{
	{
		EnemyID:              "enemy_ember_drake",
		ComboID:              "combo_steel_and_sorcery",
		RollReduction:        2,
		DropMultiplier:       1.5,
		ExperienceMultiplier: 1.25,
	},
	{
		EnemyID:              "enemy_lich_king",
		ComboID:              "combo_holy_vanguard",
		RollReduction:        3,
		DropMultiplier:       2.0,
		ExperienceMultiplier: 1.5,
		Hidden:               true,
	},
	{
		EnemyID:              "enemy_lich_king",
		ComboID:              "combo_trinity",
		RollReduction:        4,
		DropMultiplier:       2.5,
		ExperienceMultiplier: 2.0,
		Hidden:               true,
	},
}
