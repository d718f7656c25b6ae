package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/catalog"
	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/battle"
	"github.com/KirkDiggler/rpg-battle/internal/orchestrators/daily"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
	characterrepo "github.com/KirkDiggler/rpg-battle/internal/repositories/character"
	"github.com/KirkDiggler/rpg-battle/internal/services/player"
)

// appDeps overrides the production collaborators
type appDeps struct {
	Roller dice.Roller
	Clock  clock.Clock
	Bus    events.EventBus
}

// app is the wired game
type app struct {
	cfg     *config.Config
	players player.Service
	pool    pool.Pool
	bus     events.EventBus
	close   func()
}

func buildApp(ctx context.Context, cfg *config.Config, deps appDeps) (*app, error) {
	if deps.Roller == nil {
		deps.Roller = dice.DefaultRoller
	}
	if deps.Clock == nil {
		deps.Clock = clock.New()
	}
	if deps.Bus == nil {
		deps.Bus = events.NewBus()
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, errors.InvalidArgumentf("invalid time zone %q", cfg.TimeZone)
	}

	poolCfg := pool.Config{
		Total:    cfg.Pool.Total,
		DailyCap: cfg.Pool.DailyCap,
		Enabled:  cfg.Pool.Enabled,
		Clock:    deps.Clock,
		Location: loc,
	}

	var (
		repo      characterrepo.Repository
		rewards   pool.Pool
		closeFunc = func() {}
	)

	switch cfg.Storage.Backend {
	case config.BackendRedis:
		client, err := redisclient.NewClient(cfg.Storage.RedisAddr, &redisclient.Options{DB: cfg.Storage.RedisDB})
		if err != nil {
			return nil, err
		}
		closeFunc = func() {
			_ = client.Close() // nolint:errcheck // safe to ignore on shutdown
		}
		if err := redisclient.Ping(ctx, client); err != nil {
			closeFunc()
			return nil, err
		}

		repo, err = characterrepo.NewRedis(&characterrepo.RedisConfig{Client: client})
		if err != nil {
			closeFunc()
			return nil, err
		}
		rewards, err = pool.NewRedis(ctx, &pool.RedisConfig{Config: poolCfg, Client: client})
		if err != nil {
			closeFunc()
			return nil, err
		}
	default:
		repo = characterrepo.NewInMemory()
		rewards, err = pool.NewMemory(&poolCfg)
		if err != nil {
			return nil, err
		}
	}

	if cfg.Storage.CacheSize > 0 {
		repo, err = characterrepo.NewCached(repo, cfg.Storage.CacheSize)
		if err != nil {
			closeFunc()
			return nil, err
		}
	}

	guard, err := pool.NewOwnerGuard(rewards, cfg.OwnerID)
	if err != nil {
		closeFunc()
		return nil, err
	}

	monsters := catalog.Default()

	battleSvc, err := battle.NewOrchestrator(&battle.Config{
		Catalog:     monsters,
		Pool:        rewards,
		Roller:      deps.Roller,
		Clock:       deps.Clock,
		IDGenerator: idgen.NewUUID("battle"),
		EventBus:    deps.Bus,
	})
	if err != nil {
		closeFunc()
		return nil, err
	}

	dailySvc, err := daily.NewOrchestrator(&daily.Config{
		Pool:     rewards,
		Roller:   deps.Roller,
		Clock:    deps.Clock,
		Location: loc,
		EventBus: deps.Bus,
	})
	if err != nil {
		closeFunc()
		return nil, err
	}

	players, err := player.NewService(&player.Config{
		Repository: repo,
		Battle:     battleSvc,
		Daily:      dailySvc,
		Catalog:    monsters,
		Pool:       rewards,
		OwnerGuard: guard,
		Clock:      deps.Clock,
	})
	if err != nil {
		closeFunc()
		return nil, err
	}

	slog.InfoContext(ctx, "arena ready",
		"backend", cfg.Storage.Backend,
		"cache_size", cfg.Storage.CacheSize,
		"pool_total", cfg.Pool.Total,
		"daily_cap", cfg.Pool.DailyCap,
	)

	return &app{
		cfg:     cfg,
		players: players,
		pool:    rewards,
		bus:     deps.Bus,
		close:   closeFunc,
	}, nil
}
