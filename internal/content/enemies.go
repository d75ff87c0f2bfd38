package content

import "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"

// enemyTable is the static monster roster. Health and MaxHealth here are
// template values; sessions copy them into per-encounter pools.
var enemyTable = []entities.EnemyTemplate{
	{
		ID:               "enemy_giant_rat",
		Name:             "Giant Rat",
		Type:             "beast",
		Power:            4,
		Health:           18,
		RequiredDiceType: entities.DiceSmall,
		RequiredRoll:     2,
		GoldReward:       10,
		ExperienceReward: 25,
	},
	{
		ID:                "enemy_goblin_raider",
		Name:              "Goblin Raider",
		Type:              "humanoid",
		Power:             6,
		Health:            30,
		RequiredDiceType:  entities.DiceMedium,
		RequiredRoll:      4,
		GoldReward:        25,
		ExperienceReward:  60,
		DropItemID:        "item_healing_potion",
		DropChancePercent: 20,
	},
	{
		ID:               "enemy_stone_golem",
		Name:             "Stone Golem",
		Type:             "construct",
		Power:            9,
		Health:           55,
		RequiredDiceType: entities.DiceLarge,
		RequiredRoll:     5,
		GoldReward:       60,
		ExperienceReward: 140,
	},
	{
		ID:                "enemy_marsh_hag",
		Name:              "Marsh Hag",
		Type:              "fey",
		Power:             8,
		Health:            42,
		RequiredDiceType:  entities.DiceMedium,
		RequiredRoll:      5,
		GoldReward:        45,
		ExperienceReward:  110,
		DropItemID:        "item_runed_charm",
		DropChancePercent: 15,
	},
	{
		ID:                "enemy_ember_drake",
		Name:              "Ember Drake",
		Type:              "dragon",
		Power:             12,
		Health:            80,
		RequiredDiceType:  entities.DiceLarge,
		RequiredRoll:      6,
		IsBoss:            true,
		GoldReward:        150,
		ExperienceReward:  350,
		DropItemID:        "item_drake_scale_shield",
		DropChancePercent: 35,
	},
	{
		ID:                "enemy_lich_king",
		Name:              "Lich King",
		Type:              "undead",
		Power:             15,
		Health:            110,
		RequiredDiceType:  entities.DiceExtraLarge,
		RequiredRoll:      8,
		IsBoss:            true,
		GoldReward:        300,
		ExperienceReward:  700,
		DropItemID:        "item_phylactery_shard",
		DropChancePercent: 50,
	},
}
