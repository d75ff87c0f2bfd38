package entities

import "time"

// RewardKind discriminates reward line items
type RewardKind string

// Reward kinds
const (
	RewardGold       RewardKind = "gold"
	RewardExperience RewardKind = "experience"
	RewardItem       RewardKind = "item"
	RewardDice       RewardKind = "dice"
)

// GoldGrant is a gold reward line payload
type GoldGrant struct {
	Amount int `json:"amount"`
}

// ExperienceGrant is an experience reward line payload
type ExperienceGrant struct {
	Amount int `json:"amount"`
}

// ItemGrant is an item reward line payload
type ItemGrant struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
}

// DiceGrant is a dice reward line payload
type DiceGrant struct {
	Type     DiceType `json:"type"`
	Quantity int      `json:"quantity"`
}

// RewardLine is a tagged union: Kind selects which payload pointer is set,
// and each payload carries only the fields its kind needs. Use the
// constructors; a line with a mismatched or missing payload fails Validate.
type RewardLine struct {
	Kind       RewardKind       `json:"kind"`
	Gold       *GoldGrant       `json:"gold,omitempty"`
	Experience *ExperienceGrant `json:"experience,omitempty"`
	Item       *ItemGrant       `json:"item,omitempty"`
	Dice       *DiceGrant       `json:"dice,omitempty"`
}

// NewGoldLine creates a gold reward line
func NewGoldLine(amount int) RewardLine {
	return RewardLine{Kind: RewardGold, Gold: &GoldGrant{Amount: amount}}
}

// NewExperienceLine creates an experience reward line
func NewExperienceLine(amount int) RewardLine {
	return RewardLine{Kind: RewardExperience, Experience: &ExperienceGrant{Amount: amount}}
}

// NewItemLine creates an item reward line
func NewItemLine(itemID string, quantity int) RewardLine {
	return RewardLine{Kind: RewardItem, Item: &ItemGrant{ItemID: itemID, Quantity: quantity}}
}

// NewDiceLine creates a dice reward line
func NewDiceLine(diceType DiceType, quantity int) RewardLine {
	return RewardLine{Kind: RewardDice, Dice: &DiceGrant{Type: diceType, Quantity: quantity}}
}

// Validate checks that exactly the payload matching Kind is set
func (l RewardLine) Validate() bool {
	switch l.Kind {
	case RewardGold:
		return l.Gold != nil && l.Experience == nil && l.Item == nil && l.Dice == nil
	case RewardExperience:
		return l.Experience != nil && l.Gold == nil && l.Item == nil && l.Dice == nil
	case RewardItem:
		return l.Item != nil && l.Gold == nil && l.Experience == nil && l.Dice == nil
	case RewardDice:
		return l.Dice != nil && l.Gold == nil && l.Experience == nil && l.Item == nil
	default:
		return false
	}
}

// RewardSource identifies what produced a reward record
type RewardSource string

// Reward sources
const (
	RewardSourceCombat RewardSource = "combat"
	RewardSourceQuest  RewardSource = "quest"
)

// RewardRecord is an unclaimed bundle of reward lines awaiting explicit
// claim by the owning hero. Claim is at-most-once: Claimed flips exactly
// one time and the second attempt is rejected. AppliedAt is set after the
// grants land, so a claimed record with a nil AppliedAt marks a payout
// that was interrupted and needs repair.
type RewardRecord struct {
	ID      string       `json:"id"`
	UserID  string       `json:"user_id"`
	HeroID  string       `json:"hero_id"`
	QuestID string       `json:"quest_id,omitempty"`
	EnemyID string       `json:"enemy_id,omitempty"`
	Source  RewardSource `json:"source"`
	Lines   []RewardLine `json:"lines"`

	Claimed   bool       `json:"claimed"`
	ClaimedAt *time.Time `json:"claimed_at,omitempty"`
	AppliedAt *time.Time `json:"applied_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
