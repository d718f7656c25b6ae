package character

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

const (
	characterKeyPrefix = "character:"
	ratingIndexKey     = "character_index:rating"
)

type redisRepository struct {
	client redisclient.Client
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a Redis-backed character repository. Characters are JSON
// strings; a sorted set keyed by rating backs the leaderboard.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
	}, nil
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	key := characterKeyPrefix + input.Character.ID
	created, err := r.client.SetNX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create character")
	}
	if !created {
		return nil, errors.AlreadyExistsf("character with ID %s already exists", input.Character.ID)
	}

	if err := r.indexRating(ctx, input.Character); err != nil {
		return nil, err
	}

	slog.DebugContext(ctx, "character created", "character_id", input.Character.ID)
	return &CreateOutput{Character: input.Character}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	result, err := r.client.Get(ctx, characterKeyPrefix+input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to get character")
	}

	c, err := decode(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: c}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if err := validateCharacter(input.Character); err != nil {
		return nil, err
	}

	data, err := json.Marshal(input.Character)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal character")
	}

	// XX only overwrites a key that already exists
	key := characterKeyPrefix + input.Character.ID
	updated, err := r.client.SetXX(ctx, key, data, 0).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character")
	}
	if !updated {
		return nil, errors.NotFoundf("character with ID %s not found", input.Character.ID)
	}

	if err := r.indexRating(ctx, input.Character); err != nil {
		return nil, err
	}

	return &UpdateOutput{Character: input.Character}, nil
}

func (r *redisRepository) ListTopByRating(ctx context.Context, input ListTopByRatingInput) (*ListTopByRatingOutput, error) {
	if input.Limit <= 0 {
		return nil, errors.InvalidArgument(errLimitInvalid)
	}

	ids, err := r.client.ZRevRange(ctx, ratingIndexKey, 0, int64(input.Limit-1)).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rating index")
	}
	if len(ids) == 0 {
		return &ListTopByRatingOutput{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = characterKeyPrefix + id
	}
	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load ranked characters")
	}

	characters := make([]*entities.Character, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			// index entry without a character; skip it
			slog.WarnContext(ctx, "rating index references missing character", "character_id", ids[i])
			continue
		}
		c, err := decode(raw)
		if err != nil {
			return nil, err
		}
		characters = append(characters, c)
	}

	return &ListTopByRatingOutput{Characters: characters}, nil
}

func (r *redisRepository) GetRank(ctx context.Context, input GetRankInput) (*GetRankOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errCharacterIDEmpty)
	}

	rank, err := r.client.ZRevRank(ctx, ratingIndexKey, input.ID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %s not found", input.ID)
		}
		return nil, errors.Wrapf(err, "failed to read rank")
	}
	return &GetRankOutput{Rank: int(rank) + 1}, nil
}

func (r *redisRepository) Count(ctx context.Context, _ CountInput) (*CountOutput, error) {
	n, err := r.client.ZCard(ctx, ratingIndexKey).Result()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to count characters")
	}
	return &CountOutput{Count: n}, nil
}

func (r *redisRepository) indexRating(ctx context.Context, c *entities.Character) error {
	err := r.client.ZAdd(ctx, ratingIndexKey, redis.Z{
		Score:  float64(c.Rating),
		Member: c.ID,
	}).Err()
	if err != nil {
		return errors.Wrapf(err, "failed to index rating")
	}
	return nil
}

func decode(raw string) (*entities.Character, error) {
	var c entities.Character
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal character")
	}
	if c.Inventory == nil {
		c.Inventory = map[string]int{}
	}
	return &c, nil
}
