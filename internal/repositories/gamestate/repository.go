// Package gamestate provides persistence for saved games
package gamestate

//go:generate mockgen -destination=mock/mock_repository.go -package=gamestatemock github.com/KirkDiggler/rpg-quest/internal/repositories/gamestate Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-quest/internal/entities"
)

// Repository defines the interface for game state persistence
type Repository interface {
	// Create stores a new game
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a game with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a game by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the game doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing game
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the game doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a game
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the game doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating a game
type CreateInput struct {
	Game *entities.GameState
}

// CreateOutput defines the output for creating a game
type CreateOutput struct {
	Game *entities.GameState
}

// GetInput defines the input for getting a game
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a game
type GetOutput struct {
	Game *entities.GameState
}

// UpdateInput defines the input for updating a game
type UpdateInput struct {
	Game *entities.GameState
}

// UpdateOutput defines the output for updating a game
type UpdateOutput struct {
	Game *entities.GameState
}

// DeleteInput defines the input for deleting a game
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a game
type DeleteOutput struct{}
