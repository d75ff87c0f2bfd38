package combat

import (
	"fmt"
	"strings"
	"time"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/content"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// actionOutcome captures what one resolved round did, for the response
// summary and the post-commit side effects (reward creation, discovery
// recording).
type actionOutcome struct {
	Roll         int
	Hit          bool
	Crit         bool
	DamageDealt  int
	FirstExploit bool
	Victory      bool
	Defeat       bool
}

// actionRequest is the validated hero half of a round plus the pre-rolled
// enemy answer. Both rolls are made before the storage transaction so a
// retried transaction replays the same round.
type actionRequest struct {
	Kind      ActionKind
	Roll      int
	EnemyRoll int
	Ability   *entities.Ability
	Item      *entities.ItemTemplate
}

// hitThreshold clamps the required roll after weakness reduction. A roll of
// 1 always hits an enemy whose threshold is driven to or below zero.
func hitThreshold(requiredRoll, reduction int) int {
	threshold := requiredRoll - reduction
	if threshold < 1 {
		threshold = 1
	}
	return threshold
}

// resolveRound applies one full round to the session: the hero action, the
// enemy's poison tick, the automated enemy action, the party's poison
// ticks, terminal checks, and end-of-round effect/cooldown upkeep. It
// mutates the session in place and never touches storage.
func resolveRound(s *entities.CombatSession, actor *entities.Hero, enemy entities.EnemyTemplate, heroes map[string]*entities.Hero, req actionRequest, now time.Time) *actionOutcome {
	oc := &actionOutcome{Roll: req.Roll}
	var parts []string

	switch req.Kind {
	case ActionItem:
		parts = applyItem(s, actor, enemy, req.Item)
	default:
		parts = applyStrike(s, oc, actor, enemy, req)
	}
	s.LastActorHeroID = actor.ID

	parts = append(parts, tickEnemyPoison(s, enemy)...)

	if s.EnemyHealth.Depleted() {
		oc.Victory = true
		completeSession(s, entities.CombatVictory, now)
		parts = append(parts, fmt.Sprintf("%s is defeated!", enemy.Name))
		s.LastAction = strings.Join(parts, " ")
		return oc
	}

	parts = append(parts, enemyHalf(s, enemy, heroes, req.EnemyRoll)...)

	if s.AllHeroesDown() {
		oc.Defeat = true
		completeSession(s, entities.CombatDefeat, now)
		parts = append(parts, "The party has fallen.")
		s.LastAction = strings.Join(parts, " ")
		return oc
	}

	endRound(s)
	s.LastAction = strings.Join(parts, " ")
	return oc
}

// resolveFailedFlee runs the round that follows a failed flee attempt: the
// hero half is forfeited and the enemy acts.
func resolveFailedFlee(s *entities.CombatSession, enemy entities.EnemyTemplate, heroes map[string]*entities.Hero, roll, enemyRoll int, now time.Time) *actionOutcome {
	oc := &actionOutcome{Roll: roll}
	parts := []string{fmt.Sprintf("The party fails to flee (rolled %d).", roll)}

	parts = append(parts, enemyHalf(s, enemy, heroes, enemyRoll)...)

	if s.AllHeroesDown() {
		oc.Defeat = true
		completeSession(s, entities.CombatDefeat, now)
		parts = append(parts, "The party has fallen.")
		s.LastAction = strings.Join(parts, " ")
		return oc
	}

	endRound(s)
	s.LastAction = strings.Join(parts, " ")
	return oc
}

// applyStrike resolves a dice-gated attack or ability
func applyStrike(s *entities.CombatSession, oc *actionOutcome, actor *entities.Hero, enemy entities.EnemyTemplate, req actionRequest) []string {
	faces := enemy.RequiredDiceType.Faces()
	threshold := hitThreshold(enemy.RequiredRoll, s.RollReduction)
	oc.Hit = req.Roll >= threshold
	oc.Crit = oc.Hit && req.Roll == faces

	verb := "attacks"
	if req.Ability != nil {
		verb = fmt.Sprintf("uses %s on", req.Ability.Name)
		if req.Ability.CooldownTurns > 0 {
			// The attempt starts the cooldown, hit or miss
			s.SetCooldown(actor.ID, req.Ability.ID, req.Ability.CooldownTurns)
		}
	}

	if !oc.Hit {
		s.ConsecutiveMisses++
		s.ConsecutiveHits = 0
		return []string{fmt.Sprintf("%s %s %s, rolls %d, and misses.", actor.Name, verb, enemy.Name, req.Roll)}
	}

	s.ConsecutiveHits++
	s.ConsecutiveMisses = 0

	damage := heroDamage(s, actor, enemy, req.Ability, oc.Crit)
	oc.DamageDealt = s.EnemyHealth.Damage(damage)

	if s.WeaknessComboID != "" && !s.WeaknessRecorded {
		s.WeaknessRecorded = true
		oc.FirstExploit = true
	}

	parts := []string{fmt.Sprintf("%s %s %s, rolls %d, and hits for %d damage.",
		actor.Name, verb, enemy.Name, req.Roll, oc.DamageDealt)}
	if oc.Crit {
		parts[0] = fmt.Sprintf("%s %s %s, rolls %d, and crits for %d damage!",
			actor.Name, verb, enemy.Name, req.Roll, oc.DamageDealt)
	}

	if req.Ability != nil && req.Ability.EffectType != "" {
		s.Effects = entities.ApplyEffect(s.Effects, entities.StatusEffect{
			TargetKind:     entities.TargetEnemy,
			TargetID:       enemy.ID,
			Type:           req.Ability.EffectType,
			TurnsRemaining: req.Ability.EffectTurns,
		})
		parts = append(parts, fmt.Sprintf("%s is %s.", enemy.Name, effectLabel(req.Ability.EffectType)))
	}

	return parts
}

// applyItem resolves a combat consumable. Items hit deterministically: no
// roll, no dice consumed.
func applyItem(s *entities.CombatSession, actor *entities.Hero, enemy entities.EnemyTemplate, item *entities.ItemTemplate) []string {
	var parts []string

	if item.HealAmount > 0 {
		restored := s.HeroHealth[actor.ID].Heal(item.HealAmount)
		parts = append(parts, fmt.Sprintf("%s drinks %s and restores %d health.", actor.Name, item.Name, restored))
	}

	if item.EffectType != "" {
		effect := entities.StatusEffect{
			Type:           item.EffectType,
			TurnsRemaining: item.EffectTurns,
		}
		if effectTargetsSelf(item.EffectType) {
			effect.TargetKind = entities.TargetHero
			effect.TargetID = actor.ID
			parts = append(parts, fmt.Sprintf("%s uses %s and is %s.", actor.Name, item.Name, effectLabel(item.EffectType)))
		} else {
			effect.TargetKind = entities.TargetEnemy
			effect.TargetID = enemy.ID
			parts = append(parts, fmt.Sprintf("%s uses %s: %s is %s.", actor.Name, item.Name, enemy.Name, effectLabel(item.EffectType)))
		}
		s.Effects = entities.ApplyEffect(s.Effects, effect)
	}

	if len(parts) == 0 {
		parts = append(parts, fmt.Sprintf("%s uses %s to no effect.", actor.Name, item.Name))
	}
	return parts
}

// enemyHalf runs the automated enemy action and the party's poison ticks.
// The enemy action follows the same roll contract as hero strikes: it only
// lands on a roll of EnemyHitRoll or better.
func enemyHalf(s *entities.CombatSession, enemy entities.EnemyTemplate, heroes map[string]*entities.Hero, roll int) []string {
	var parts []string
	s.Turn = entities.TurnEnemy

	if entities.HasEffect(s.Effects, entities.TargetEnemy, enemy.ID, entities.EffectStunned) {
		parts = append(parts, fmt.Sprintf("%s is stunned and cannot act.", enemy.Name))
	} else if targetID := s.LowestHealthHero(); targetID != "" {
		target := heroes[targetID]
		if roll < content.EnemyHitRoll {
			parts = append(parts, fmt.Sprintf("%s lunges at %s, rolls %d, and misses.", enemy.Name, target.Name, roll))
		} else {
			damage := enemyDamage(s, enemy, target)
			dealt := s.HeroHealth[targetID].Damage(damage)
			parts = append(parts, fmt.Sprintf("%s rolls %d and strikes %s for %d damage.", enemy.Name, roll, target.Name, dealt))
			if !s.HeroAlive(targetID) {
				parts = append(parts, fmt.Sprintf("%s falls.", target.Name))
			}
		}
	}

	for _, heroID := range s.HeroIDs {
		if !s.HeroAlive(heroID) {
			continue
		}
		if !entities.HasEffect(s.Effects, entities.TargetHero, heroID, entities.EffectPoisoned) {
			continue
		}
		dealt := s.HeroHealth[heroID].Damage(content.PoisonTickDamage)
		if dealt > 0 {
			parts = append(parts, fmt.Sprintf("%s suffers %d poison damage.", heroes[heroID].Name, dealt))
		}
	}

	return parts
}

// tickEnemyPoison applies the enemy's poison damage after the hero half
func tickEnemyPoison(s *entities.CombatSession, enemy entities.EnemyTemplate) []string {
	if s.EnemyHealth.Depleted() {
		return nil
	}
	if !entities.HasEffect(s.Effects, entities.TargetEnemy, enemy.ID, entities.EffectPoisoned) {
		return nil
	}
	dealt := s.EnemyHealth.Damage(content.PoisonTickDamage)
	if dealt == 0 {
		return nil
	}
	return []string{fmt.Sprintf("%s suffers %d poison damage.", enemy.Name, dealt)}
}

// endRound runs effect/cooldown upkeep and hands the turn back to the party
func endRound(s *entities.CombatSession) {
	s.Effects, _ = entities.TickEffects(s.Effects)
	s.TickCooldowns()
	s.Turn = entities.TurnHero
}

func completeSession(s *entities.CombatSession, status entities.CombatStatus, now time.Time) {
	s.Status = status
	s.CompletedAt = &now
}

// heroDamage computes the damage a hero action deals before the health
// pool's own clamping.
func heroDamage(s *entities.CombatSession, actor *entities.Hero, enemy entities.EnemyTemplate, ability *entities.Ability, crit bool) int {
	base := actor.Attack
	if ability != nil {
		if ability.UsesMagic {
			base = actor.Magic
		}
		base += ability.DamageBonus
	}
	base += s.PartyMorale().DamageBonus()

	if entities.HasEffect(s.Effects, entities.TargetHero, actor.ID, entities.EffectStrengthBoosted) {
		base += content.StrengthBoostDamageBonus
	}
	if entities.HasEffect(s.Effects, entities.TargetHero, actor.ID, entities.EffectWeakened) {
		base -= content.WeakenedDamagePenalty
	}
	if base < 1 {
		base = 1
	}
	if crit {
		base *= content.CritDamageMultiplier
	}
	if entities.HasEffect(s.Effects, entities.TargetEnemy, enemy.ID, entities.EffectShielded) {
		base /= 2
		if base < 1 {
			base = 1
		}
	}
	return base
}

// enemyDamage computes the damage the enemy deals to one hero
func enemyDamage(s *entities.CombatSession, enemy entities.EnemyTemplate, target *entities.Hero) int {
	damage := enemy.Power - target.Defense/2

	if entities.HasEffect(s.Effects, entities.TargetEnemy, enemy.ID, entities.EffectWeakened) {
		damage -= content.WeakenedDamagePenalty
	}
	if entities.HasEffect(s.Effects, entities.TargetEnemy, enemy.ID, entities.EffectStrengthBoosted) {
		damage += content.StrengthBoostDamageBonus
	}
	if damage < 1 {
		damage = 1
	}
	if entities.HasEffect(s.Effects, entities.TargetHero, target.ID, entities.EffectShielded) {
		damage /= 2
		if damage < 1 {
			damage = 1
		}
	}
	return damage
}

// effectTargetsSelf reports whether an item's effect buffs the user rather
// than debuffing the enemy
func effectTargetsSelf(t entities.EffectType) bool {
	return t == entities.EffectShielded || t == entities.EffectStrengthBoosted
}

func effectLabel(t entities.EffectType) string {
	switch t {
	case entities.EffectStrengthBoosted:
		return "strength-boosted"
	default:
		return string(t)
	}
}
