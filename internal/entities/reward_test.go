package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewardLine_Constructors(t *testing.T) {
	lines := []RewardLine{
		NewGoldLine(50),
		NewExperienceLine(120),
		NewItemLine("item_healing_potion", 2),
		NewDiceLine(DiceMedium, 1),
	}

	for _, line := range lines {
		assert.True(t, line.Validate(), "line kind %s should validate", line.Kind)
	}

	assert.Equal(t, 50, lines[0].Gold.Amount)
	assert.Equal(t, 120, lines[1].Experience.Amount)
	assert.Equal(t, "item_healing_potion", lines[2].Item.ItemID)
	assert.Equal(t, DiceMedium, lines[3].Dice.Type)
}

func TestRewardLine_ValidateRejectsMixedPayloads(t *testing.T) {
	assert.False(t, RewardLine{Kind: RewardGold}.Validate())
	assert.False(t, RewardLine{Kind: "trophy"}.Validate())
	assert.False(t, RewardLine{
		Kind:       RewardGold,
		Gold:       &GoldGrant{Amount: 10},
		Experience: &ExperienceGrant{Amount: 10},
	}.Validate())
}

func TestRewardLine_JSONRoundTrip(t *testing.T) {
	line := NewDiceLine(DiceLarge, 2)

	data, err := json.Marshal(line)
	require.NoError(t, err)

	// Only the dice payload is serialized
	assert.NotContains(t, string(data), "gold")

	var decoded RewardLine
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, decoded.Validate())
	assert.Equal(t, DiceLarge, decoded.Dice.Type)
	assert.Equal(t, 2, decoded.Dice.Quantity)
}

func TestExperienceLevels(t *testing.T) {
	assert.Equal(t, 0, ExperienceForLevel(1))
	assert.Equal(t, 100, ExperienceForLevel(2))
	assert.Equal(t, 300, ExperienceForLevel(3))
	assert.Equal(t, 600, ExperienceForLevel(4))

	assert.Equal(t, 1, LevelForExperience(0))
	assert.Equal(t, 1, LevelForExperience(99))
	assert.Equal(t, 2, LevelForExperience(100))
	assert.Equal(t, 3, LevelForExperience(599))
	assert.Equal(t, 4, LevelForExperience(600))
}
