package entities

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombo_Matches(t *testing.T) {
	twoSlot := &Combo{ID: "combo_1", Classes: []HeroClass{ClassWarrior, ClassMage}}
	threeSlot := &Combo{ID: "combo_2", Classes: []HeroClass{ClassWarrior, ClassMage, ClassCleric}}

	tests := []struct {
		name  string
		combo *Combo
		party []HeroClass
		want  bool
	}{
		{"exact two-slot match", twoSlot, []HeroClass{ClassWarrior, ClassMage}, true},
		{"order does not matter", twoSlot, []HeroClass{ClassMage, ClassWarrior}, true},
		{"extra members allowed", twoSlot, []HeroClass{ClassRogue, ClassWarrior, ClassMage}, true},
		{"missing class", twoSlot, []HeroClass{ClassWarrior, ClassRogue}, false},
		{"three-slot needs all three", threeSlot, []HeroClass{ClassWarrior, ClassMage}, false},
		{"three-slot full match", threeSlot, []HeroClass{ClassCleric, ClassWarrior, ClassMage}, true},
		{"duplicate requirement needs duplicates", &Combo{Classes: []HeroClass{ClassWarrior, ClassWarrior}}, []HeroClass{ClassWarrior, ClassMage}, false},
		{"empty party", twoSlot, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.combo.Matches(tt.party))
		})
	}
}
