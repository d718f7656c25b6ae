package player

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/daily"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	characterrepo "github.com/KirkDiggler/rpg-battle/internal/repositories/character"
	"github.com/KirkDiggler/rpg-battle/internal/rules/levelcurve"
)

// Catalog is the part of the monster catalog a session needs
type Catalog interface {
	Get(id int) (*entities.Monster, error)
	Find(query string) (*entities.Monster, error)
	List() []entities.Monster
	Available(level int) []entities.Monster
}

// Config holds the dependencies for the player session service
type Config struct {
	Repository characterrepo.Repository
	Battle     battle.Service
	Daily      daily.Service
	Catalog    Catalog
	Pool       pool.Pool
	OwnerGuard *pool.OwnerGuard
	Clock      clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Battle == nil {
		vb.RequiredField("Battle")
	}
	if c.Daily == nil {
		vb.RequiredField("Daily")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	if c.OwnerGuard == nil {
		vb.RequiredField("OwnerGuard")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type session struct {
	repo    characterrepo.Repository
	battle  battle.Service
	daily   daily.Service
	catalog Catalog
	pool    pool.Pool
	guard   *pool.OwnerGuard
	clock   clock.Clock

	// one mutex per player ID, never evicted
	locks *xsync.MapOf[string, *sync.Mutex]
}

// NewService creates a player session service with the provided dependencies
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &session{
		repo:    cfg.Repository,
		battle:  cfg.Battle,
		daily:   cfg.Daily,
		catalog: cfg.Catalog,
		pool:    cfg.Pool,
		guard:   cfg.OwnerGuard,
		clock:   cfg.Clock,
		locks:   xsync.NewMapOf[string, *sync.Mutex](),
	}, nil
}

func (s *session) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := s.lock(input.PlayerID)
	defer unlock()

	existing, err := s.repo.Get(ctx, characterrepo.GetInput{ID: input.PlayerID})
	if err == nil {
		return &StartOutput{Character: existing.Character}, nil
	}
	if !errors.IsNotFound(err) {
		return nil, errors.Wrap(err, "failed to load character")
	}

	name := input.Name
	if name == "" {
		name = input.PlayerID
	}
	c := entities.NewCharacter(input.PlayerID, name, s.clock.Now())

	created, err := s.repo.Create(ctx, characterrepo.CreateInput{Character: c})
	if errors.IsAlreadyExists(err) {
		// another process registered the same player first
		existing, err := s.repo.Get(ctx, characterrepo.GetInput{ID: input.PlayerID})
		if err != nil {
			return nil, errors.Wrap(err, "failed to load character")
		}
		return &StartOutput{Character: existing.Character}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "player registered", "player_id", c.ID, "name", c.Name)

	return &StartOutput{Character: created.Character, Created: true}, nil
}

func (s *session) ChooseClass(ctx context.Context, input *ChooseClassInput) (*ChooseClassOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	class, err := entities.ParseClass(input.Class)
	if err != nil {
		return nil, err
	}

	var out *battle.ChooseClassOutput
	c, err := s.act(ctx, input.PlayerID, func(c *entities.Character) error {
		var err error
		out, err = s.battle.ChooseClass(ctx, &battle.ChooseClassInput{Character: c, Class: class})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ChooseClassOutput{Character: c, Bonus: out.Bonus}, nil
}

func (s *session) ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ListMonstersOutput{
		Level:     c.Level,
		Available: s.catalog.Available(c.Level),
		All:       s.catalog.List(),
	}, nil
}

func (s *session) SelectMonster(ctx context.Context, input *SelectMonsterInput) (*SelectMonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	monsterID := input.MonsterID
	if monsterID == 0 {
		m, err := s.catalog.Find(input.MonsterName)
		if err != nil {
			return nil, err
		}
		monsterID = m.ID
	}

	var out *battle.SelectMonsterOutput
	c, err := s.act(ctx, input.PlayerID, func(c *entities.Character) error {
		var err error
		out, err = s.battle.SelectMonster(ctx, &battle.SelectMonsterInput{Character: c, MonsterID: monsterID})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &SelectMonsterOutput{Character: c, Battle: out.Battle}, nil
}

func (s *session) Attack(ctx context.Context, input *AttackInput) (*AttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *battle.AttackOutput
	c, err := s.act(ctx, input.PlayerID, func(c *entities.Character) error {
		var err error
		out, err = s.battle.Attack(ctx, &battle.AttackInput{Character: c})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &AttackOutput{Character: c, Outcome: out.Outcome}, nil
}

func (s *session) Defend(ctx context.Context, input *DefendInput) (*DefendOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *battle.DefendOutput
	c, err := s.act(ctx, input.PlayerID, func(c *entities.Character) error {
		var err error
		out, err = s.battle.Defend(ctx, &battle.DefendInput{Character: c})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &DefendOutput{Character: c, Healed: out.Healed}, nil
}

func (s *session) Flee(ctx context.Context, input *FleeInput) (*FleeOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *battle.FleeOutput
	c, err := s.act(ctx, input.PlayerID, func(c *entities.Character) error {
		var err error
		out, err = s.battle.Flee(ctx, &battle.FleeInput{Character: c})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &FleeOutput{Character: c, Monster: out.Monster}, nil
}

func (s *session) Revive(ctx context.Context, input *ReviveInput) (*ReviveOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *battle.ReviveOutput
	c, err := s.act(ctx, input.PlayerID, func(c *entities.Character) error {
		var err error
		out, err = s.battle.Revive(ctx, &battle.ReviveInput{Character: c})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ReviveOutput{Character: c, Cost: out.Cost}, nil
}

func (s *session) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	var out *daily.ClaimDailyOutput
	c, err := s.act(ctx, input.PlayerID, func(c *entities.Character) error {
		var err error
		out, err = s.daily.ClaimDaily(ctx, &daily.ClaimDailyInput{Character: c})
		return err
	})
	if err != nil {
		return nil, err
	}

	return &ClaimDailyOutput{Character: c, Claim: out}, nil
}

func (s *session) Balance(ctx context.Context, input *BalanceInput) (*BalanceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	status, err := s.pool.Status(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read pool status")
	}

	return &BalanceOutput{Balance: c.Balance, Pool: status}, nil
}

func (s *session) Profile(ctx context.Context, input *ProfileInput) (*ProfileOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	return &ProfileOutput{Character: c, Progress: levelcurve.Level(c.Experience)}, nil
}

func (s *session) Inventory(ctx context.Context, input *InventoryInput) (*InventoryOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c, err := s.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	items := make([]InventoryItem, 0, len(c.Inventory))
	for name, count := range c.Inventory {
		items = append(items, InventoryItem{Name: name, Count: count})
	}
	sort.Slice(items, func(i, j int) bool {
		return items[i].Name < items[j].Name
	})

	return &InventoryOutput{Items: items}, nil
}

func (s *session) Leaderboard(ctx context.Context, input *LeaderboardInput) (*LeaderboardOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if _, err := s.load(ctx, input.PlayerID); err != nil {
		return nil, err
	}

	top, err := s.repo.ListTopByRating(ctx, characterrepo.ListTopByRatingInput{Limit: LeaderboardSize})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list leaderboard")
	}
	rank, err := s.repo.GetRank(ctx, characterrepo.GetRankInput{ID: input.PlayerID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get rank")
	}

	return &LeaderboardOutput{Top: top.Characters, Rank: rank.Rank}, nil
}

func (s *session) OwnerStatus(ctx context.Context, input *OwnerStatusInput) (*OwnerStatusOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	status, err := s.guard.Status(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.Count(ctx, characterrepo.CountInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to count players")
	}

	return &OwnerStatusOutput{Players: count.Count, Pool: status}, nil
}

func (s *session) SetPoolEnabled(ctx context.Context, input *SetPoolEnabledInput) (*SetPoolEnabledOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if err := s.guard.SetEnabled(ctx, input.ActorID, input.Enabled); err != nil {
		return nil, err
	}
	status, err := s.guard.Status(ctx, input.ActorID)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "pool switched", "actor_id", input.ActorID, "enabled", input.Enabled)

	return &SetPoolEnabledOutput{Pool: status}, nil
}

// act runs fn against the player's character under the player's lock and
// saves the character when fn succeeds
func (s *session) act(ctx context.Context, playerID string, fn func(c *entities.Character) error) (*entities.Character, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	unlock := s.lock(playerID)
	defer unlock()

	c, err := s.load(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if err := fn(c); err != nil {
		return nil, err
	}

	c.LastActiveAt = s.clock.Now()
	saved, err := s.repo.Update(ctx, characterrepo.UpdateInput{Character: c})
	if err != nil {
		return nil, errors.Wrap(err, "failed to save character")
	}

	return saved.Character, nil
}

func (s *session) load(ctx context.Context, playerID string) (*entities.Character, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player ID is required")
	}

	out, err := s.repo.Get(ctx, characterrepo.GetInput{ID: playerID})
	if errors.IsNotFound(err) {
		return nil, errors.NotFoundf("player %s has not started", playerID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load character")
	}
	return out.Character, nil
}

func (s *session) lock(playerID string) func() {
	mu, _ := s.locks.LoadOrCompute(playerID, func() *sync.Mutex {
		return &sync.Mutex{}
	})
	mu.Lock()
	return mu.Unlock
}
