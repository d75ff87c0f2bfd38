// Package combatsession provides storage for combat session aggregates
package combatsession

//go:generate mockgen -destination=mock/mock_repository.go -package=combatsessionmock github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/repositories/combatsession Repository

import (
	"context"

	"github.com/NicsDeveloper/rpg-quest-manager-sub001/internal/entities"
)

// CreateInput contains parameters for storing a new session
type CreateInput struct {
	Session *entities.CombatSession
}

// CreateOutput contains the result of storing a new session
type CreateOutput struct {
	Session *entities.CombatSession
}

// GetInput contains parameters for retrieving a session
type GetInput struct {
	SessionID string
}

// GetOutput contains the result of retrieving a session
type GetOutput struct {
	Session *entities.CombatSession
}

// Repository defines the storage interface for combat sessions.
//
// Mutate is the only write path for live sessions: it runs the supplied
// function inside an optimistic read-modify-write so that two concurrent
// actions against the same session cannot interleave and lose health or
// turn-state updates.
type Repository interface {
	// Create stores a new session; the ID must not already exist
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a session by ID
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Mutate atomically applies fn to the stored session and persists the
	// result. fn returning an error aborts without writing.
	Mutate(ctx context.Context, sessionID string, fn func(*entities.CombatSession) error) (*entities.CombatSession, error)
}
