// Package character provides the interface for character persistence
package character

//go:generate mockgen -destination=mock/mock_repository.go -package=charactermock github.com/KirkDiggler/rpg-battle/internal/repositories/character Repository

import (
	"context"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// Repository defines the interface for character persistence. The game core
// never talks to it; the player service loads, acts and saves.
type Repository interface {
	// Create stores a new character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a character with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces an existing character
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the character doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// ListTopByRating returns the best rated characters, highest first.
	// Equal ratings are ordered by ID, descending.
	// Returns errors.InvalidArgument for a non-positive limit
	ListTopByRating(ctx context.Context, input ListTopByRatingInput) (*ListTopByRatingOutput, error)

	// GetRank returns the 1-based leaderboard position of a character
	// Returns errors.NotFound if the character doesn't exist
	GetRank(ctx context.Context, input GetRankInput) (*GetRankOutput, error)

	// Count returns how many characters exist
	Count(ctx context.Context, input CountInput) (*CountOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// ListTopByRatingInput defines the input for the leaderboard
type ListTopByRatingInput struct {
	Limit int
}

// ListTopByRatingOutput defines the output for the leaderboard
type ListTopByRatingOutput struct {
	Characters []*entities.Character
}

// GetRankInput defines the input for a leaderboard position
type GetRankInput struct {
	ID string
}

// GetRankOutput defines the output for a leaderboard position
type GetRankOutput struct {
	Rank int
}

// CountInput defines the input for counting characters
type CountInput struct{}

// CountOutput defines the output for counting characters
type CountOutput struct {
	Count int64
}

const (
	errCharacterNil     = "character cannot be nil"
	errCharacterIDEmpty = "character ID cannot be empty"
	errLimitInvalid     = "limit must be positive"
)

func validateCharacter(c *entities.Character) error {
	if c == nil {
		return errors.InvalidArgument(errCharacterNil)
	}
	if c.ID == "" {
		return errors.InvalidArgument(errCharacterIDEmpty)
	}
	return nil
}
