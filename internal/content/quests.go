package content

import "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"

var questTable = []entities.Quest{
	{
		ID:               "quest_cellar_pests",
		Name:             "Pests in the Cellar",
		EnemyID:          "enemy_giant_rat",
		RecommendedLevel: 1,
		GoldReward:       15,
		ExperienceReward: 30,
	},
	{
		ID:               "quest_road_ambush",
		Name:             "Ambush on the King's Road",
		EnemyID:          "enemy_goblin_raider",
		RecommendedLevel: 2,
		GoldReward:       30,
		ExperienceReward: 75,
	},
	{
		ID:               "quest_quarry_guardian",
		Name:             "Guardian of the Quarry",
		EnemyID:          "enemy_stone_golem",
		RecommendedLevel: 4,
		GoldReward:       70,
		ExperienceReward: 160,
	},
	{
		ID:               "quest_marsh_curse",
		Name:             "Curse of the Marsh",
		EnemyID:          "enemy_marsh_hag",
		RecommendedLevel: 3,
		GoldReward:       55,
		ExperienceReward: 130,
	},
	{
		ID:               "quest_drake_roost",
		Name:             "The Drake's Roost",
		EnemyID:          "enemy_ember_drake",
		RecommendedLevel: 6,
		GoldReward:       180,
		ExperienceReward: 400,
	},
	{
		ID:               "quest_throne_of_bone",
		Name:             "Throne of Bone",
		EnemyID:          "enemy_lich_king",
		RecommendedLevel: 9,
		GoldReward:       350,
		ExperienceReward: 800,
	},
}
