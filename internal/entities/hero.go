// Package entities provides core data structures for the combat backend.
package entities

import "time"

// HeroClass identifies a hero's class, used for party combo matching
type HeroClass string

// Hero classes
const (
	ClassWarrior HeroClass = "warrior"
	ClassMage    HeroClass = "mage"
	ClassRogue   HeroClass = "rogue"
	ClassCleric  HeroClass = "cleric"
	ClassRanger  HeroClass = "ranger"
)

// Hero represents a user's hero. The combat core reads heroes through the
// roster client; only reward claims mutate them (gold, experience, level).
type Hero struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Name         string    `json:"name"`
	Class        HeroClass `json:"class"`
	Level        int       `json:"level"`
	Experience   int       `json:"experience"`
	Strength     int       `json:"strength"`
	Intelligence int       `json:"intelligence"`
	Dexterity    int       `json:"dexterity"`

	// Derived combat stats
	Attack  int `json:"attack"`
	Defense int `json:"defense"`
	Magic   int `json:"magic"`

	CurrentHealth int `json:"current_health"`
	MaxHealth     int `json:"max_health"`
	Gold          int `json:"gold"`

	// Soft delete flag; deleted heroes stay in storage but never
	// appear in the active party
	Deleted bool `json:"deleted"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ExperienceForLevel returns the cumulative experience required to reach the
// given level. Level 1 is free; each next level costs 100*level more.
func ExperienceForLevel(level int) int {
	if level <= 1 {
		return 0
	}
	total := 0
	for l := 2; l <= level; l++ {
		total += 100 * (l - 1)
	}
	return total
}

// LevelForExperience returns the level a hero with the given cumulative
// experience has earned.
func LevelForExperience(xp int) int {
	level := 1
	for ExperienceForLevel(level+1) <= xp {
		level++
	}
	return level
}
