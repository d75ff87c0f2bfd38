// Package reward implements the reward ledger orchestrator: recording
// unclaimed reward bundles for completed encounters and quests, and
// applying them exactly once on claim.
package reward

//go:generate mockgen -destination=mock/mock_service.go -package=rewardmock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/reward Service

import (
	"context"
	"log/slog"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/clients/roster"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/errors"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/orchestrators/dice"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/clock"
	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/pkg/idgen"
	rewardrepo "github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/reward"
)

// Service defines the interface for the reward ledger
type Service interface {
	// GrantCombatRewards records an unclaimed reward bundle for a
	// completed encounter
	GrantCombatRewards(ctx context.Context, input *GrantCombatRewardsInput) (*GrantCombatRewardsOutput, error)

	// GrantQuestRewards records an unclaimed reward bundle for a
	// completed quest
	GrantQuestRewards(ctx context.Context, input *GrantQuestRewardsInput) (*GrantQuestRewardsOutput, error)

	// ListUnclaimed returns a hero's unclaimed reward records
	ListUnclaimed(ctx context.Context, input *ListUnclaimedInput) (*ListUnclaimedOutput, error)

	// Claim applies a record's grants to the owning hero exactly once.
	// The claimed flag flips before any grant is applied, so a retry or
	// concurrent claim can never double-grant.
	Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error)
}

// Config holds the dependencies for the reward orchestrator
type Config struct {
	RewardRepo  rewardrepo.Repository
	Roster      roster.Client
	DiceService dice.Service
	Clock       clock.Clock
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.RewardRepo == nil {
		vb.RequiredField("RewardRepo")
	}
	if c.Roster == nil {
		vb.RequiredField("Roster")
	}
	if c.DiceService == nil {
		vb.RequiredField("DiceService")
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
	rewardRepo  rewardrepo.Repository
	roster      roster.Client
	diceService dice.Service
	clock       clock.Clock
	idGen       idgen.Generator
}

// NewOrchestrator creates a new reward orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		rewardRepo:  cfg.RewardRepo,
		roster:      cfg.Roster,
		diceService: cfg.DiceService,
		clock:       cfg.Clock,
		idGen:       cfg.IDGenerator,
	}, nil
}

// GrantCombatRewards records an unclaimed reward bundle for an encounter
func (o *orchestrator) GrantCombatRewards(ctx context.Context, input *GrantCombatRewardsInput) (*GrantCombatRewardsOutput, error) {
	record, err := o.grant(ctx, &entities.RewardRecord{
		UserID:  input.UserID,
		HeroID:  input.HeroID,
		QuestID: input.QuestID,
		EnemyID: input.EnemyID,
		Source:  entities.RewardSourceCombat,
		Lines:   input.Lines,
	})
	if err != nil {
		return nil, err
	}

	return &GrantCombatRewardsOutput{Record: record}, nil
}

// GrantQuestRewards records an unclaimed reward bundle for a quest
func (o *orchestrator) GrantQuestRewards(ctx context.Context, input *GrantQuestRewardsInput) (*GrantQuestRewardsOutput, error) {
	record, err := o.grant(ctx, &entities.RewardRecord{
		UserID:  input.UserID,
		HeroID:  input.HeroID,
		QuestID: input.QuestID,
		Source:  entities.RewardSourceQuest,
		Lines:   input.Lines,
	})
	if err != nil {
		return nil, err
	}

	return &GrantQuestRewardsOutput{Record: record}, nil
}

func (o *orchestrator) grant(ctx context.Context, record *entities.RewardRecord) (*entities.RewardRecord, error) {
	vb := errors.NewValidationBuilder()
	if record.UserID == "" {
		vb.RequiredField("UserID")
	}
	if record.HeroID == "" {
		vb.RequiredField("HeroID")
	}
	if len(record.Lines) == 0 {
		vb.RequiredField("Lines")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	for _, line := range record.Lines {
		if !line.Validate() {
			return nil, errors.InvalidArgumentf("malformed %s reward line", line.Kind)
		}
	}

	record.ID = o.idGen.Generate()
	record.CreatedAt = o.clock.Now()

	if err := o.rewardRepo.Create(ctx, record); err != nil {
		return nil, errors.Wrap(err, "failed to store reward record")
	}

	slog.Info("Reward record created",
		"reward_id", record.ID,
		"hero_id", record.HeroID,
		"source", record.Source,
		"lines", len(record.Lines),
	)

	return record, nil
}

// ListUnclaimed returns a hero's unclaimed reward records
func (o *orchestrator) ListUnclaimed(ctx context.Context, input *ListUnclaimedInput) (*ListUnclaimedOutput, error) {
	if input.HeroID == "" {
		return nil, errors.InvalidArgument("hero ID is required")
	}

	hero, err := o.roster.GetHero(ctx, input.HeroID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve hero")
	}
	if hero.UserID != input.UserID {
		return nil, errors.PermissionDenied("hero does not belong to caller")
	}

	records, err := o.rewardRepo.ListUnclaimedByHero(ctx, input.HeroID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list rewards")
	}

	return &ListUnclaimedOutput{Records: records}, nil
}

// Claim applies a record's grants to the owning hero exactly once
func (o *orchestrator) Claim(ctx context.Context, input *ClaimInput) (*ClaimOutput, error) {
	vb := errors.NewValidationBuilder()
	if input.RewardID == "" {
		vb.RequiredField("RewardID")
	}
	if input.HeroID == "" {
		vb.RequiredField("HeroID")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	record, err := o.rewardRepo.Get(ctx, input.RewardID)
	if err != nil {
		return nil, err
	}
	if record.UserID != input.UserID || record.HeroID != input.HeroID {
		return nil, errors.PermissionDenied("reward record belongs to a different hero")
	}

	// Flip the claimed flag before applying any grant. A concurrent or
	// retried claim loses the flip and is rejected, so grants are applied
	// at most once.
	record, err = o.rewardRepo.MarkClaimed(ctx, input.RewardID, o.clock.Now())
	if err != nil {
		return nil, err
	}

	if err := o.applyLines(ctx, record); err != nil {
		// The record stays claimed with no applied timestamp, which is
		// how an interrupted payout is found for repair
		slog.Error("Failed to apply claimed reward lines",
			"reward_id", record.ID,
			"hero_id", record.HeroID,
			"error", err,
		)
		return nil, errors.Wrap(err, "failed to apply reward")
	}

	applied, err := o.rewardRepo.MarkApplied(ctx, input.RewardID, o.clock.Now())
	if err != nil {
		// The grants landed; only the applied stamp is missing
		slog.Error("Failed to mark reward record applied",
			"reward_id", record.ID,
			"error", err,
		)
		record.Claimed = true
		applied = record
	}

	slog.Info("Reward claimed",
		"reward_id", applied.ID,
		"hero_id", applied.HeroID,
		"lines", len(applied.Lines),
	)

	return &ClaimOutput{Record: applied}, nil
}

func (o *orchestrator) applyLines(ctx context.Context, record *entities.RewardRecord) error {
	for _, line := range record.Lines {
		switch line.Kind {
		case entities.RewardGold:
			if err := o.roster.AddGold(ctx, record.UserID, line.Gold.Amount); err != nil {
				return errors.Wrap(err, "failed to grant gold")
			}
		case entities.RewardExperience:
			if err := o.roster.AddExperience(ctx, record.HeroID, line.Experience.Amount); err != nil {
				return errors.Wrap(err, "failed to grant experience")
			}
		case entities.RewardItem:
			if err := o.roster.GrantItem(ctx, record.HeroID, line.Item.ItemID, line.Item.Quantity); err != nil {
				return errors.Wrap(err, "failed to grant item")
			}
		case entities.RewardDice:
			_, err := o.diceService.Grant(ctx, &dice.GrantInput{
				UserID:   record.UserID,
				DiceType: line.Dice.Type,
				Quantity: line.Dice.Quantity,
			})
			if err != nil {
				return errors.Wrap(err, "failed to grant dice")
			}
		default:
			return errors.Internalf("unknown reward kind %q", line.Kind)
		}
	}
	return nil
}
