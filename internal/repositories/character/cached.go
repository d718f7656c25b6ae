package character

import (
	"context"

	lru "github.com/hashicorp/golang-lru"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// DefaultCacheSize is the number of characters kept by NewCached when the
// configured size is not positive
const DefaultCacheSize = 1024

type cachedRepository struct {
	next  Repository
	cache *lru.Cache
}

// NewCached puts a read-through LRU cache in front of next. Writes go to next
// first and refresh the cache only when they succeed. Leaderboard reads are
// always delegated.
func NewCached(next Repository, size int) (Repository, error) {
	if next == nil {
		return nil, errors.InvalidArgument("repository cannot be nil")
	}
	if size <= 0 {
		size = DefaultCacheSize
	}

	cache, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character cache")
	}
	return &cachedRepository{next: next, cache: cache}, nil
}

func (r *cachedRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	out, err := r.next.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	r.cache.Add(input.Character.ID, input.Character.Clone())
	return out, nil
}

func (r *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if cached, ok := r.cache.Get(input.ID); ok {
		return &GetOutput{Character: cached.(*entities.Character).Clone()}, nil
	}

	out, err := r.next.Get(ctx, input)
	if err != nil {
		return nil, err
	}
	r.cache.Add(input.ID, out.Character.Clone())
	return out, nil
}

func (r *cachedRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	out, err := r.next.Update(ctx, input)
	if err != nil {
		if input.Character != nil {
			r.cache.Remove(input.Character.ID)
		}
		return nil, err
	}
	r.cache.Add(input.Character.ID, input.Character.Clone())
	return out, nil
}

func (r *cachedRepository) ListTopByRating(ctx context.Context, input ListTopByRatingInput) (*ListTopByRatingOutput, error) {
	return r.next.ListTopByRating(ctx, input)
}

func (r *cachedRepository) GetRank(ctx context.Context, input GetRankInput) (*GetRankOutput, error) {
	return r.next.GetRank(ctx, input)
}

func (r *cachedRepository) Count(ctx context.Context, input CountInput) (*CountOutput, error) {
	return r.next.Count(ctx, input)
}
