package character

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type inMemoryRepository struct {
	mu         sync.RWMutex
	characters map[string]*entities.Character
}

// NewInMemory creates a process-local repository. Stored values are copied
// on the way in and out.
func NewInMemory() Repository {
	return &inMemoryRepository{
		characters: make(map[string]*entities.Character),
	}
}

func (r *inMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[input.Character.ID]; ok {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}
	r.characters[input.Character.ID] = input.Character.Clone()

	return &CreateOutput{Character: input.Character}, nil
}

func (r *inMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.characters[input.ID]
	if !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.ID)
	}
	return &GetOutput{Character: c.Clone()}, nil
}

func (r *inMemoryRepository) Update(_ context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.characters[input.Character.ID]; !ok {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
	}
	r.characters[input.Character.ID] = input.Character.Clone()

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *inMemoryRepository) ListTopByRating(_ context.Context, input ListTopByRatingInput) (*ListTopByRatingOutput, error) {
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument(errLimitInvalid)
	}

	ranked := r.ranked()
	if len(ranked) > input.Limit {
		ranked = ranked[:input.Limit]
	}
	return &ListTopByRatingOutput{Characters: ranked}, nil
}

func (r *inMemoryRepository) GetRank(_ context.Context, input GetRankInput) (*GetRankOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	for i, c := range r.ranked() {
		if c.ID == input.ID {
			return &GetRankOutput{Rank: i + 1}, nil
		}
	}
	return nil, errors.NotFoundf("character with ID %s not found", input.ID)
}

func (r *inMemoryRepository) Count(_ context.Context, _ CountInput) (*CountOutput, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return &CountOutput{Count: int64(len(r.characters))}, nil
}

// ranked orders copies of all characters the way a Redis sorted set
// iterated in reverse would
func (r *inMemoryRepository) ranked() []*entities.Character {
	r.mu.RLock()
	out := make([]*entities.Character, 0, len(r.characters))
	for _, c := range r.characters {
		out = append(out, c.Clone())
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].ID > out[j].ID
	})
	return out
}
