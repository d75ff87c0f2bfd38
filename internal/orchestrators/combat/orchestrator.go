// Package combat implements the combat session orchestrator: encounter
// lifecycle, dice-gated action resolution, status effects, morale, party
// combos against boss weaknesses, and victory rewards.
package combat

//go:generate mockgen -destination=mock/mock_service.go -package=combatmock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/combat Service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/content"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	diceservice "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/dice"
	rewardservice "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/reward"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/clock"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/idgen"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/combatsession"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/discovery"
)

// Service defines the interface for combat session operations
type Service interface {
	// StartCombat opens an encounter for the caller's party against a
	// quest's enemy
	StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error)

	// ResolveAction runs one full round: the submitted hero action and
	// the automated enemy response
	ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error)

	// Flee attempts to abandon the encounter. Fleeing costs no dice; a
	// failed attempt forfeits the turn.
	Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error)

	// GetCombatSession returns the caller's view of a session
	GetCombatSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)
}

// Config holds the dependencies for the combat orchestrator
type Config struct {
	SessionRepo   combatsession.Repository
	DiscoveryRepo discovery.Repository
	DiceService   diceservice.Service
	RewardService rewardservice.Service
	Roster        roster.Client
	Catalog       *content.Catalog
	DiceRoller    dice.Roller
	EventBus      events.EventBus
	Clock         clock.Clock
	IDGenerator   idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.SessionRepo == nil {
		vb.RequiredField("SessionRepo")
	}
	if c.DiscoveryRepo == nil {
		vb.RequiredField("DiscoveryRepo")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
	}
	if c.RewardService == nil {
		vb.RequiredField("RewardService")
	}
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.DiceRoller == nil {
		vb.RequiredField("DiceRoller")
	}
	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	sessionRepo   combatsession.Repository
	discoveryRepo discovery.Repository
	diceService   diceservice.Service
	rewardService rewardservice.Service
	roster        roster.Client
	catalog       *content.Catalog
	roller        dice.Roller
	eventBus      events.EventBus
	clock         clock.Clock
	idGen         idgen.Generator
}

// NewOrchestrator creates a new combat orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		sessionRepo:   cfg.SessionRepo,
		discoveryRepo: cfg.DiscoveryRepo,
		diceService:   cfg.DiceService,
		rewardService: cfg.RewardService,
		roster:        cfg.Roster,
		catalog:       cfg.Catalog,
		roller:        cfg.DiceRoller,
		eventBus:      cfg.EventBus,
		clock:         cfg.Clock,
		idGen:         cfg.IDGenerator,
	}, nil
}

// StartCombat opens an encounter for the caller's party
func (o *orchestrator) StartCombat(ctx context.Context, input *StartCombatInput) (*StartCombatOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.UserID == "" {
		vb.RequiredField("UserID")
	}
	if input.QuestID == "" {
		vb.RequiredField("QuestID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	heroIDs := input.HeroIDs
	if len(heroIDs) == 0 {
		party, err := o.roster.GetActiveParty(ctx, input.UserID)
		if err != nil {
			return nil, errors.Wrap(err, "failed to resolve active party")
		}
		if len(party) == 0 {
			return nil, errors.FailedPrecondition("user has no active party")
		}
		for _, hero := range party {
			heroIDs = append(heroIDs, hero.ID)
		}
	}

	quest, err := o.catalog.Quest(input.QuestID)
	if err != nil {
		return nil, errors.NotFoundf("unknown quest %q", input.QuestID)
	}
	enemy, err := o.catalog.Enemy(quest.EnemyID)
	if err != nil {
		return nil, err
	}

	heroes := make(map[string]*entities.Hero, len(heroIDs))
	partyClasses := make([]entities.HeroClass, 0, len(heroIDs))
	for _, heroID := range heroIDs {
		if _, ok := heroes[heroID]; ok {
			return nil, errors.InvalidArgumentf("hero %q listed twice", heroID)
		}
		hero, err := o.roster.GetHero(ctx, heroID)
		if err != nil {
			return nil, err
		}
		if hero.UserID != input.UserID {
			return nil, errors.PermissionDenied("hero does not belong to caller")
		}
		if hero.Deleted {
			return nil, errors.FailedPreconditionf("hero %q is retired", heroID)
		}
		if hero.CurrentHealth <= 0 {
			return nil, errors.FailedPreconditionf("hero %q has no health remaining", heroID)
		}
		heroes[heroID] = hero
		partyClasses = append(partyClasses, hero.Class)
	}

	now := o.clock.Now()
	session := &entities.CombatSession{
		ID:          o.idGen.Generate(),
		UserID:      input.UserID,
		HeroIDs:     heroIDs,
		QuestID:     quest.ID,
		EnemyID:     enemy.ID,
		Status:      entities.CombatInProgress,
		Turn:        entities.TurnHero,
		HeroHealth:  make(map[string]*entities.HealthPool, len(heroIDs)),
		EnemyHealth: entities.HealthPool{Current: enemy.Health, Max: enemy.Health},
		CreatedAt:   now,
		StartedAt:   now,
	}
	for heroID, hero := range heroes {
		session.HeroHealth[heroID] = &entities.HealthPool{
			Current: hero.CurrentHealth,
			Max:     hero.MaxHealth,
		}
	}

	weakness, latentComboID, err := o.findApplicableWeakness(ctx, input.UserID, enemy.ID, partyClasses)
	if err != nil {
		return nil, err
	}
	if weakness != nil {
		session.WeaknessComboID = weakness.ComboID
		session.RollReduction = weakness.RollReduction
		session.DropMultiplier = weakness.DropMultiplier
		session.ExperienceMultiplier = weakness.ExperienceMultiplier
	}
	session.LatentComboID = latentComboID

	out, err := o.sessionRepo.Create(ctx, combatsession.CreateInput{Session: session})
	if err != nil {
		return nil, errors.Wrap(err, "failed to store combat session")
	}

	target := wrapEnemy(enemy)
	slog.Info("Combat session started",
		"session_id", session.ID,
		"quest_id", quest.ID,
		"target_id", target.GetID(),
		"target_type", target.GetType(),
		"party_size", len(heroIDs),
		"weakness_combo_id", session.WeaknessComboID,
	)

	return &StartCombatOutput{Summary: buildSummary(out.Session, enemy, nil)}, nil
}

// findApplicableWeakness matches the party's classes against the enemy's
// registered weaknesses. Hidden weaknesses only apply once discovered; a
// matched-but-undiscovered one is returned as latent so a victory this
// session can uncover it.
func (o *orchestrator) findApplicableWeakness(ctx context.Context, userID, enemyID string, partyClasses []entities.HeroClass) (*entities.BossWeakness, string, error) {
	latent := ""
	for _, w := range o.catalog.WeaknessesFor(enemyID) {
		combo, err := o.catalog.Combo(w.ComboID)
		if err != nil {
			return nil, "", err
		}
		if !combo.Matches(partyClasses) {
			continue
		}
		if !w.Hidden {
			return &w, "", nil
		}
		_, err = o.discoveryRepo.Get(ctx, userID, enemyID, w.ComboID)
		if err == nil {
			return &w, "", nil
		}
		if !errors.IsNotFound(err) {
			return nil, "", errors.Wrap(err, "failed to check combo discovery")
		}
		if latent == "" {
			latent = w.ComboID
		}
	}
	return nil, latent, nil
}

// ResolveAction runs one full round of the encounter
func (o *orchestrator) ResolveAction(ctx context.Context, input *ResolveActionInput) (*ResolveActionOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.SessionID == "" {
		vb.RequiredField("SessionID")
	}
	if input.ActorHeroID == "" {
		vb.RequiredField("ActorHeroID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	session, enemy, heroes, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := validateActionable(session); err != nil {
		return nil, err
	}
	if !session.HasHero(input.ActorHeroID) {
		return nil, errors.InvalidArgumentf("hero %q is not in this session", input.ActorHeroID)
	}
	if !session.HeroAlive(input.ActorHeroID) {
		return nil, errors.FailedPreconditionf("hero %q is down", input.ActorHeroID)
	}
	actor := heroes[input.ActorHeroID]

	req, err := o.prepareAction(ctx, session, actor, enemy, input)
	if err != nil {
		return nil, err
	}

	// The enemy's answering roll is made up front as well: Mutate may
	// retry its fn and must stay deterministic
	req.EnemyRoll, err = o.roller.Roll(content.EnemyDiceType.Faces())
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll")
	}

	now := o.clock.Now()
	var oc *actionOutcome
	updated, err := o.sessionRepo.Mutate(ctx, session.ID, func(s *entities.CombatSession) error {
		// Revalidate against the stored copy; a concurrent action may
		// have landed between the read and this transaction
		if err := validateActionable(s); err != nil {
			return err
		}
		if !s.HeroAlive(input.ActorHeroID) {
			return errors.FailedPreconditionf("hero %q is down", input.ActorHeroID)
		}
		oc = resolveRound(s, actor, enemy, heroes, req, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.afterRound(ctx, updated, enemy, oc)

	actorEntity := wrapHero(actor)
	target := wrapEnemy(enemy)
	o.publishRound(ctx, updated, actorEntity, target, oc)
	slog.Info("Combat action resolved",
		"session_id", updated.ID,
		"actor_id", actorEntity.GetID(),
		"actor_type", actorEntity.GetType(),
		"target_id", target.GetID(),
		"target_type", target.GetType(),
		"action", input.Action,
		"roll", oc.Roll,
		"hit", oc.Hit,
		"status", updated.Status,
	)

	return &ResolveActionOutput{Summary: buildSummary(updated, enemy, oc)}, nil
}

// prepareAction validates the action inputs and pays its costs: one die
// for dice-gated actions, one consumable for item actions. Costs are spent
// on the attempt, win or lose.
func (o *orchestrator) prepareAction(ctx context.Context, session *entities.CombatSession, actor *entities.Hero, enemy entities.EnemyTemplate, input *ResolveActionInput) (actionRequest, error) {
	req := actionRequest{Kind: input.Action}

	switch input.Action {
	case ActionAttack, ActionAbility:
		if input.Action == ActionAbility {
			if input.AbilityID == "" {
				return req, errors.InvalidArgument("ability ID is required")
			}
			ability, err := o.catalog.Ability(input.AbilityID)
			if err != nil {
				return req, err
			}
			if ability.Class != actor.Class {
				return req, errors.FailedPreconditionf("%s heroes cannot use %s", actor.Class, ability.Name)
			}
			if turns := session.CooldownFor(actor.ID, ability.ID); turns > 0 {
				return req, errors.FailedPreconditionf("%s is on cooldown for %d more turns", ability.Name, turns)
			}
			req.Ability = &ability
		}

		diceType := input.DiceType
		if diceType == "" {
			diceType = enemy.RequiredDiceType
		}
		if diceType != enemy.RequiredDiceType {
			return req, errors.InvalidArgumentf("%s requires a %s die", enemy.Name, enemy.RequiredDiceType)
		}

		if _, err := o.diceService.Consume(ctx, &diceservice.ConsumeInput{
			UserID:   session.UserID,
			DiceType: diceType,
		}); err != nil {
			return req, err
		}

		roll, err := o.roller.Roll(diceType.Faces())
		if err != nil {
			return req, errors.Wrap(err, "failed to roll")
		}
		req.Roll = roll

	case ActionItem:
		if input.ItemID == "" {
			return req, errors.InvalidArgument("item ID is required")
		}
		item, err := o.catalog.Item(input.ItemID)
		if err != nil {
			return req, err
		}
		if !item.UsableInCombat {
			return req, errors.FailedPreconditionf("%s cannot be used in combat", item.Name)
		}
		if err := o.roster.ConsumeItem(ctx, actor.ID, item.ID); err != nil {
			return req, err
		}
		req.Item = &item

	default:
		return req, errors.InvalidArgumentf("unknown action %q", input.Action)
	}

	return req, nil
}

// afterRound applies the side effects a committed round produced: combo
// discovery bookkeeping and, on victory, the reward record. Failures here
// are logged, not surfaced; the round itself already committed.
func (o *orchestrator) afterRound(ctx context.Context, s *entities.CombatSession, enemy entities.EnemyTemplate, oc *actionOutcome) {
	if oc.FirstExploit {
		_, err := o.discoveryRepo.RecordUse(ctx, discovery.RecordUseInput{
			UserID:  s.UserID,
			EnemyID: s.EnemyID,
			ComboID: s.WeaknessComboID,
			Won:     oc.Victory,
			Now:     o.clock.Now(),
		})
		if err != nil {
			slog.Error("Failed to record combo use",
				"session_id", s.ID,
				"combo_id", s.WeaknessComboID,
				"error", err,
			)
		}
	} else if oc.Victory && s.WeaknessComboID != "" && s.WeaknessRecorded {
		if _, err := o.discoveryRepo.RecordWin(ctx, s.UserID, s.EnemyID, s.WeaknessComboID); err != nil {
			slog.Error("Failed to record combo win",
				"session_id", s.ID,
				"combo_id", s.WeaknessComboID,
				"error", err,
			)
		}
	}

	if !oc.Victory {
		return
	}

	if s.LatentComboID != "" {
		// Winning with the matching party uncovers the hidden weakness
		// for future encounters
		_, err := o.discoveryRepo.RecordUse(ctx, discovery.RecordUseInput{
			UserID:  s.UserID,
			EnemyID: s.EnemyID,
			ComboID: s.LatentComboID,
			Won:     true,
			Now:     o.clock.Now(),
		})
		if err != nil {
			slog.Error("Failed to record hidden combo discovery",
				"session_id", s.ID,
				"combo_id", s.LatentComboID,
				"error", err,
			)
		}
	}

	o.grantVictoryRewards(ctx, s, enemy)
}

// publishRound emits a round_end event for combat-log subscribers. Publish
// failures are logged; the round already committed.
func (o *orchestrator) publishRound(ctx context.Context, s *entities.CombatSession, source, target core.Entity, oc *actionOutcome) {
	event := events.NewGameEvent(events.EventRoundEnd, source, target)
	event.Context().Set("session_id", s.ID)
	event.Context().Set("roll", oc.Roll)
	event.Context().Set("hit", oc.Hit)
	event.Context().Set("damage", oc.DamageDealt)
	event.Context().Set("status", string(s.Status))

	if err := o.eventBus.Publish(ctx, event); err != nil {
		slog.Error("Failed to publish round event",
			"session_id", s.ID,
			"error", err,
		)
	}
}

// grantVictoryRewards builds the reward record for a won encounter: base
// gold and experience from the enemy template, experience scaled by the
// session's weakness multiplier, plus a drop-chance roll for the enemy's
// item.
func (o *orchestrator) grantVictoryRewards(ctx context.Context, s *entities.CombatSession, enemy entities.EnemyTemplate) {
	lines := []entities.RewardLine{entities.NewGoldLine(enemy.GoldReward)}

	experience := enemy.ExperienceReward
	if s.ExperienceMultiplier > 0 {
		experience = int(math.Round(float64(experience) * s.ExperienceMultiplier))
	}
	lines = append(lines, entities.NewExperienceLine(experience))

	if enemy.DropItemID != "" && enemy.DropChancePercent > 0 {
		chance := float64(enemy.DropChancePercent)
		if s.DropMultiplier > 0 {
			chance *= s.DropMultiplier
		}
		roll, err := o.roller.Roll(content.DropRollSize)
		if err != nil {
			slog.Error("Failed to roll for item drop", "session_id", s.ID, "error", err)
		} else if float64(roll) <= chance {
			lines = append(lines, entities.NewItemLine(enemy.DropItemID, 1))
		}
	}

	out, err := o.rewardService.GrantCombatRewards(ctx, &rewardservice.GrantCombatRewardsInput{
		UserID:  s.UserID,
		HeroID:  s.LastActorHeroID,
		QuestID: s.QuestID,
		EnemyID: s.EnemyID,
		Lines:   lines,
	})
	if err != nil {
		slog.Error("Failed to create combat reward record",
			"session_id", s.ID,
			"error", err,
		)
		return
	}

	updated, err := o.sessionRepo.Mutate(ctx, s.ID, func(stored *entities.CombatSession) error {
		stored.RewardID = out.Record.ID
		return nil
	})
	if err != nil {
		slog.Error("Failed to link reward record to session",
			"session_id", s.ID,
			"reward_id", out.Record.ID,
			"error", err,
		)
		return
	}
	s.RewardID = updated.RewardID
}

// Flee attempts to abandon the encounter
func (o *orchestrator) Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, enemy, heroes, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}
	if err := validateActionable(session); err != nil {
		return nil, err
	}

	roll, err := o.roller.Roll(content.FleeDiceType.Faces())
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll")
	}
	success := roll >= content.FleeSuccessRoll

	enemyRoll := 0
	if !success {
		// A failed flee hands the enemy a free action, rolled up front
		// like any other enemy answer
		enemyRoll, err = o.roller.Roll(content.EnemyDiceType.Faces())
		if err != nil {
			return nil, errors.Wrap(err, "failed to roll")
		}
	}

	now := o.clock.Now()
	oc := &actionOutcome{Roll: roll}
	updated, err := o.sessionRepo.Mutate(ctx, session.ID, func(s *entities.CombatSession) error {
		if err := validateActionable(s); err != nil {
			return err
		}
		if success {
			completeSession(s, entities.CombatFled, now)
			s.LastAction = fmt.Sprintf("The party flees the battle (rolled %d).", roll)
			return nil
		}
		oc = resolveFailedFlee(s, enemy, heroes, roll, enemyRoll, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Flee attempted",
		"session_id", updated.ID,
		"roll", roll,
		"success", success,
		"status", updated.Status,
	)

	return &FleeOutput{Success: success, Summary: buildSummary(updated, enemy, oc)}, nil
}

// GetCombatSession returns the caller's view of a session
func (o *orchestrator) GetCombatSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
	if input.SessionID == "" {
		return nil, errors.InvalidArgument("session ID is required")
	}

	session, enemy, _, err := o.loadSession(ctx, input.SessionID, input.UserID)
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{Summary: buildSummary(session, enemy, nil)}, nil
}

// loadSession fetches the session, checks ownership, and resolves the
// enemy template and party heroes it references.
func (o *orchestrator) loadSession(ctx context.Context, sessionID, userID string) (*entities.CombatSession, entities.EnemyTemplate, map[string]*entities.Hero, error) {
	got, err := o.sessionRepo.Get(ctx, combatsession.GetInput{SessionID: sessionID})
	if err != nil {
		return nil, entities.EnemyTemplate{}, nil, err
	}
	session := got.Session

	if session.UserID != userID {
		return nil, entities.EnemyTemplate{}, nil, errors.PermissionDenied("session belongs to a different user")
	}

	enemy, err := o.catalog.Enemy(session.EnemyID)
	if err != nil {
		return nil, entities.EnemyTemplate{}, nil, err
	}

	heroes := make(map[string]*entities.Hero, len(session.HeroIDs))
	for _, heroID := range session.HeroIDs {
		hero, err := o.roster.GetHero(ctx, heroID)
		if err != nil {
			return nil, entities.EnemyTemplate{}, nil, errors.Wrap(err, "failed to resolve party hero")
		}
		heroes[heroID] = hero
	}

	return session, enemy, heroes, nil
}

// validateActionable rejects actions against terminal sessions and out of
// turn. Terminal statuses are final: no submission un-sets them.
func validateActionable(s *entities.CombatSession) error {
	if s.Status.Terminal() {
		return errors.FailedPreconditionf("combat session is over (%s)", s.Status)
	}
	if s.Status != entities.CombatInProgress {
		return errors.FailedPrecondition("combat session has not started")
	}
	if s.Turn != entities.TurnHero {
		return errors.FailedPrecondition("not the party's turn")
	}
	return nil
}

func buildSummary(s *entities.CombatSession, enemy entities.EnemyTemplate, oc *actionOutcome) *SessionSummary {
	heroHealth := make(map[string]entities.HealthPool, len(s.HeroHealth))
	for heroID, pool := range s.HeroHealth {
		heroHealth[heroID] = *pool
	}

	summary := &SessionSummary{
		SessionID:       s.ID,
		Status:          s.Status,
		Turn:            s.Turn,
		EnemyID:         enemy.ID,
		EnemyName:       enemy.Name,
		HeroHealth:      heroHealth,
		EnemyHealth:     s.EnemyHealth,
		Effects:         append([]entities.StatusEffect(nil), s.Effects...),
		PartyMorale:     s.PartyMorale(),
		LastAction:      s.LastAction,
		WeaknessComboID: s.WeaknessComboID,
		RollReduction:   s.RollReduction,
		RewardID:        s.RewardID,
		CompletedAt:     s.CompletedAt,
	}
	if oc != nil {
		summary.LastRoll = oc.Roll
		summary.LastRollHit = oc.Hit
	}
	return summary
}
