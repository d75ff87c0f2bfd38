package entities

// Quest is immutable reference data pairing an enemy with quest-level
// rewards.
type Quest struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	EnemyID          string `json:"enemy_id"`
	RecommendedLevel int    `json:"recommended_level"`
	GoldReward       int    `json:"gold_reward"`
	ExperienceReward int    `json:"experience_reward"`
}
