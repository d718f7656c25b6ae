// Package pool is the shared reward ledger every payout in the game goes
// through. It bounds how many coins can ever be issued and how many can be
// issued per calendar day.
package pool

//go:generate mockgen -destination=mock/mock_pool.go -package=poolmock github.com/KirkDiggler/rpg-battle/internal/economy/pool Pool

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
)

// Defaults
const (
	DefaultTotal    int64 = 1_000_000
	DefaultDailyCap int64 = 10_000
)

// Pool is the reward ledger. Implementations reset the daily counter lazily
// the first time any call observes a new calendar day.
type Pool interface {
	// Status returns a snapshot after applying any pending daily reset
	Status(ctx context.Context) (*Status, error)

	// CanEarn reports whether amount could be paid right now.
	// Returns errors with reason PoolDisabled, DailyCapExceeded or
	// PoolExhausted, checked in that order.
	// Returns errors.InvalidArgument for negative amounts
	CanEarn(ctx context.Context, amount int64) error

	// TryEarn checks and commits amount as one indivisible step.
	// It returns the same errors as CanEarn and commits nothing on error.
	TryEarn(ctx context.Context, amount int64) error

	// SetEnabled switches payouts on or off
	SetEnabled(ctx context.Context, enabled bool) error
}

// Status is a point-in-time view of the pool
type Status struct {
	TotalRemaining   int64
	DistributedToday int64
	DailyCap         int64
	RemainingToday   int64
	Enabled          bool
	LastResetDate    clock.Date
	// PercentUsed is the share of today's cap already paid out, 0..100
	PercentUsed float64
}

// Config configures a pool
type Config struct {
	Total    int64
	DailyCap int64
	Enabled  bool
	Clock    clock.Clock
	// Location decides where the calendar day boundary falls. Nil means UTC.
	Location *time.Location
}

// Validate validates the config
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("total", c.Total, vb)
	errors.ValidatePositive("daily_cap", c.DailyCap, vb)
	if c.Clock == nil {
		vb.RequiredField("clock")
	}
	return vb.Build()
}

func (c *Config) today() clock.Date {
	return clock.Today(c.Clock, c.Location)
}

// state is the ledger shared by both implementations' rules
type state struct {
	totalRemaining   int64
	distributedToday int64
	dailyCap         int64
	lastResetDate    clock.Date
	enabled          bool
}

func (s *state) resetIfNewDay(today clock.Date) {
	if s.lastResetDate != today {
		s.distributedToday = 0
		s.lastResetDate = today
	}
}

func (s *state) check(amount int64) error {
	if !s.enabled {
		return errors.PoolDisabled()
	}
	if s.distributedToday+amount > s.dailyCap {
		return errors.DailyCapExceeded(s.dailyCap - s.distributedToday)
	}
	if amount > s.totalRemaining {
		return errors.PoolExhausted(s.totalRemaining)
	}
	return nil
}

func (s *state) commit(amount int64) {
	s.totalRemaining -= amount
	s.distributedToday += amount
}

func (s *state) status() *Status {
	st := &Status{
		TotalRemaining:   s.totalRemaining,
		DistributedToday: s.distributedToday,
		DailyCap:         s.dailyCap,
		RemainingToday:   s.dailyCap - s.distributedToday,
		Enabled:          s.enabled,
		LastResetDate:    s.lastResetDate,
	}
	if s.dailyCap > 0 {
		st.PercentUsed = float64(s.distributedToday) / float64(s.dailyCap) * 100
	}
	return st
}

func validateAmount(amount int64) error {
	if amount < 0 {
		return errors.InvalidArgumentf("amount must not be negative, got %d", amount)
	}
	return nil
}
