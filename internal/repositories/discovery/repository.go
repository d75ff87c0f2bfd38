// Package discovery provides storage for combo discovery records
package discovery

//go:generate mockgen -destination=mock/mock_repository.go -package=discoverymock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/discovery Repository

import (
	"context"
	"time"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// RecordUseInput identifies one combo exploitation to record
type RecordUseInput struct {
	UserID  string
	EnemyID string
	ComboID string
	Won     bool
	Now     time.Time
}

// RecordUseOutput reports the updated record and whether this call created
// it (first discovery)
type RecordUseOutput struct {
	Discovery     *entities.ComboDiscovery
	NewlyRecorded bool
}

// Repository defines the storage interface for combo discoveries, unique
// per user/enemy/combo.
type Repository interface {
	// Get retrieves a discovery record, NotFound when the user has never
	// exploited this combo against this enemy
	Get(ctx context.Context, userID, enemyID, comboID string) (*entities.ComboDiscovery, error)

	// RecordUse upserts a discovery: the first call creates the unique
	// record, subsequent calls increment the usage counters
	RecordUse(ctx context.Context, input RecordUseInput) (*RecordUseOutput, error)

	// RecordWin increments the win counter on an existing discovery
	RecordWin(ctx context.Context, userID, enemyID, comboID string) (*entities.ComboDiscovery, error)
}
