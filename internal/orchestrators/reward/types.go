package reward

import (
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// GrantCombatRewardsInput defines the request for recording a completed
// encounter's rewards
type GrantCombatRewardsInput struct {
	UserID  string
	HeroID  string
	QuestID string
	EnemyID string
	Lines   []entities.RewardLine
}

// GrantCombatRewardsOutput defines the response for recording combat rewards
type GrantCombatRewardsOutput struct {
	Record *entities.RewardRecord
}

// GrantQuestRewardsInput defines the request for recording a completed
// quest's rewards
type GrantQuestRewardsInput struct {
	UserID  string
	HeroID  string
	QuestID string
	Lines   []entities.RewardLine
}

// GrantQuestRewardsOutput defines the response for recording quest rewards
type GrantQuestRewardsOutput struct {
	Record *entities.RewardRecord
}

// ListUnclaimedInput defines the request for listing a hero's unclaimed
// rewards
type ListUnclaimedInput struct {
	UserID string
	HeroID string
}

// ListUnclaimedOutput defines the response for listing unclaimed rewards
type ListUnclaimedOutput struct {
	Records []*entities.RewardRecord
}

// ClaimInput defines the request for claiming a reward record
type ClaimInput struct {
	RewardID string
	UserID   string
	HeroID   string
}

// ClaimOutput defines the response for claiming a reward record
type ClaimOutput struct {
	Record *entities.RewardRecord
}
