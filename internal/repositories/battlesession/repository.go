// Package battlesession provides short-lived storage for battles in progress
package battlesession

//go:generate mockgen -destination=mock/mock_repository.go -package=battlesessionmock github.com/KirkDiggler/rpg-quest/internal/repositories/battlesession Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-quest/internal/battle"
)

// Repository defines the interface for battle session persistence.
// Sessions expire on their own if a battle is abandoned.
type Repository interface {
	// Save creates or replaces a session and refreshes its TTL
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.Internal for storage failures
	Save(ctx context.Context, input SaveInput) (*SaveOutput, error)

	// Get retrieves a session by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the session doesn't exist or expired
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Delete removes a session. Deleting a missing session is not an error.
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// SaveInput defines the input for saving a session
type SaveInput struct {
	Session *battle.Session
}

// SaveOutput defines the output for saving a session
type SaveOutput struct {
	Session *battle.Session
}

// GetInput defines the input for getting a session
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a session
type GetOutput struct {
	Session *battle.Session
}

// DeleteInput defines the input for deleting a session
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a session
type DeleteOutput struct{}
