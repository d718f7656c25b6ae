package pool

import (
	"context"
	"log/slog"
	"sync"
)

type memoryPool struct {
	cfg   *Config
	mu    sync.Mutex
	state state
}

// NewMemory creates an in-process pool. Its mutex is the critical section for
// every check-then-commit, so one value must be shared by all players.
func NewMemory(cfg *Config) (Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &memoryPool{
		cfg: cfg,
		state: state{
			totalRemaining: cfg.Total,
			dailyCap:       cfg.DailyCap,
			lastResetDate:  cfg.today(),
			enabled:        cfg.Enabled,
		},
	}, nil
}

func (p *memoryPool) Status(_ context.Context) (*Status, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.resetIfNewDay(p.cfg.today())
	return p.state.status(), nil
}

func (p *memoryPool) CanEarn(_ context.Context, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.resetIfNewDay(p.cfg.today())
	return p.state.check(amount)
}

func (p *memoryPool) TryEarn(ctx context.Context, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.resetIfNewDay(p.cfg.today())
	if err := p.state.check(amount); err != nil {
		return err
	}
	p.state.commit(amount)

	slog.DebugContext(ctx, "reward pool payout",
		"amount", amount,
		"distributed_today", p.state.distributedToday,
		"total_remaining", p.state.totalRemaining)
	return nil
}

func (p *memoryPool) SetEnabled(ctx context.Context, enabled bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state.enabled = enabled
	slog.InfoContext(ctx, "reward pool toggled", "enabled", enabled)
	return nil
}
