package content

import "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"

var abilityTable = []entities.Ability{
	{
		ID:            "ability_power_strike",
		Name:          "Power Strike",
		Class:         entities.ClassWarrior,
		DamageBonus:   4,
		CooldownTurns: 2,
	},
	{
		ID:            "ability_crippling_blow",
		Name:          "Crippling Blow",
		Class:         entities.ClassWarrior,
		DamageBonus:   1,
		EffectType:    entities.EffectWeakened,
		EffectTurns:   2,
		CooldownTurns: 3,
	},
	{
		ID:            "ability_firebolt",
		Name:          "Firebolt",
		Class:         entities.ClassMage,
		UsesMagic:     true,
		DamageBonus:   3,
		CooldownTurns: 1,
	},
	{
		ID:            "ability_venom_veil",
		Name:          "Venom Veil",
		Class:         entities.ClassMage,
		UsesMagic:     true,
		EffectType:    entities.EffectPoisoned,
		EffectTurns:   3,
		CooldownTurns: 3,
	},
	{
		ID:            "ability_cheap_shot",
		Name:          "Cheap Shot",
		Class:         entities.ClassRogue,
		DamageBonus:   2,
		EffectType:    entities.EffectStunned,
		EffectTurns:   1,
		CooldownTurns: 4,
	},
	{
		ID:            "ability_smite",
		Name:          "Smite",
		Class:         entities.ClassCleric,
		UsesMagic:     true,
		DamageBonus:   2,
		CooldownTurns: 2,
	},
	{
		ID:            "ability_piercing_arrow",
		Name:          "Piercing Arrow",
		Class:         entities.ClassRanger,
		DamageBonus:   3,
		CooldownTurns: 2,
	},
}
