// Package reward provides storage for unclaimed reward records
package reward

//go:generate mockgen -destination=mock/mock_repository.go -package=rewardmock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/reward Repository

import (
	"context"
	"time"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// Repository defines the storage interface for reward records.
//
// MarkClaimed is the at-most-once guard: it flips the claimed flag inside
// an optimistic transaction and fails with AlreadyExists when the record
// was claimed by a concurrent request, so grants are never applied twice.
type Repository interface {
	// Create stores a new unclaimed record and indexes it by hero
	Create(ctx context.Context, record *entities.RewardRecord) error

	// Get retrieves a record by ID
	Get(ctx context.Context, rewardID string) (*entities.RewardRecord, error)

	// ListUnclaimedByHero returns a hero's unclaimed records
	ListUnclaimedByHero(ctx context.Context, heroID string) ([]*entities.RewardRecord, error)

	// MarkClaimed flips the claimed flag exactly once, returning the
	// record as it was before the flip
	MarkClaimed(ctx context.Context, rewardID string, claimedAt time.Time) (*entities.RewardRecord, error)

	// MarkApplied records that a claimed record's grants landed. A
	// claimed record with no applied timestamp is a payout that was
	// interrupted between claim and apply.
	MarkApplied(ctx context.Context, rewardID string, appliedAt time.Time) (*entities.RewardRecord, error)
}
