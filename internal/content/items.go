package content

import "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"

var itemTable = []entities.ItemTemplate{
	{
		ID:             "item_healing_potion",
		Name:           "Healing Potion",
		Price:          30,
		UsableInCombat: true,
		HealAmount:     15,
	},
	{
		ID:             "item_oil_of_weakness",
		Name:           "Oil of Weakness",
		Price:          45,
		UsableInCombat: true,
		EffectType:     entities.EffectWeakened,
		EffectTurns:    3,
	},
	{
		ID:             "item_stoneskin_draught",
		Name:           "Stoneskin Draught",
		Price:          50,
		UsableInCombat: true,
		EffectType:     entities.EffectShielded,
		EffectTurns:    2,
	},
	{
		ID:             "item_ogre_blood_tonic",
		Name:           "Ogre Blood Tonic",
		Price:          60,
		UsableInCombat: true,
		EffectType:     entities.EffectStrengthBoosted,
		EffectTurns:    3,
	},
	{
		ID:          "item_runed_charm",
		Name:        "Runed Charm",
		Price:       80,
		MagicBonus:  3,
	},
	{
		ID:           "item_drake_scale_shield",
		Name:         "Drake Scale Shield",
		Price:        200,
		DefenseBonus: 5,
	},
	{
		ID:          "item_phylactery_shard",
		Name:        "Phylactery Shard",
		Price:       500,
		MagicBonus:  8,
		AttackBonus: 2,
	},
}
