// Package daily implements the once-per-calendar-day login bonus with streaks
package daily

//go:generate mockgen -destination=mock/mock_service.go -package=dailymock github.com/KirkDiggler/rpg-battle/internal/orchestrators/daily Service

import (
	"context"
	"log/slog"
	"math"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/entities"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/random"
	"github.com/KirkDiggler/rpg-battle/internal/rules/progression"
)

// Bonus tuning
const (
	BaseCoins      = 50
	BaseExperience = 30
	StreakStep     = 0.1
	MaxStreakBonus = 1.0
	MultiplierLow  = 0.8
	MultiplierHigh = 1.2
)

// Service defines the daily bonus operations
type Service interface {
	// ClaimDaily grants today's bonus. A pool rejection is reported in the
	// output, not as an error.
	// Returns errors with reason AlreadyClaimedToday on a second claim
	ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error)
}

// ClaimDailyInput claims the bonus for a character
type ClaimDailyInput struct {
	Character *entities.Character
	// Today overrides the clock's calendar date when set
	Today clock.Date
}

// ClaimDailyOutput describes the claim
type ClaimDailyOutput struct {
	Streak     int
	Coins      int64
	Experience int64
	Multiplier float64
	// Paid is true when the pool accepted the bonus
	Paid bool
	// PoolRejection holds the pool's reason when the bonus went unpaid
	PoolRejection error
	Progression   *progression.Result
}

// Config holds the dependencies for the daily orchestrator
type Config struct {
	Pool   pool.Pool
	Roller dice.Roller
	Clock  clock.Clock
	// Location decides where the calendar day boundary falls. Nil means UTC.
	Location *time.Location
	// EventBus is optional
	EventBus events.EventBus
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.Pool == nil {
		vb.RequiredField("Pool")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	pool     pool.Pool
	random   *random.Source
	clock    clock.Clock
	location *time.Location
	bus      events.EventBus
}

// NewOrchestrator creates a new daily bonus orchestrator
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		pool:     cfg.Pool,
		random:   random.New(cfg.Roller),
		clock:    cfg.Clock,
		location: cfg.Location,
		bus:      cfg.EventBus,
	}, nil
}

// StreakBonus is the extra share a streak adds on top of the base bonus
func StreakBonus(streak int) float64 {
	return math.Min(float64(streak)*StreakStep, MaxStreakBonus)
}

// NextStreak returns the streak a claim on today results in
func NextStreak(lastClaim, today clock.Date, streak int) int {
	if !lastClaim.IsZero() && lastClaim == today.AddDays(-1) {
		return streak + 1
	}
	return 1
}

func (o *orchestrator) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	c := input.Character
	if c == nil {
		return nil, errors.InvalidArgument("character is required")
	}

	today := input.Today
	if today.IsZero() {
		today = clock.Today(o.clock, o.location)
	}

	if c.LastDailyClaim == today {
		return nil, errors.AlreadyClaimedToday()
	}

	multiplier, err := o.random.Uniform(MultiplierLow, MultiplierHigh)
	if err != nil {
		return nil, errors.Wrap(err, "failed to roll daily multiplier")
	}

	// the streak is recorded even when the pool refuses to pay
	c.DailyStreak = NextStreak(c.LastDailyClaim, today, c.DailyStreak)
	scale := (1 + StreakBonus(c.DailyStreak)) * multiplier

	out := &ClaimDailyOutput{
		Streak:     c.DailyStreak,
		Coins:      int64(math.Floor(BaseCoins * scale)),
		Experience: int64(math.Floor(BaseExperience * scale)),
		Multiplier: multiplier,
	}

	err = o.pool.TryEarn(ctx, out.Coins)
	switch {
	case err == nil:
		out.Paid = true
		out.Progression = progression.ApplyBonus(c, out.Coins, out.Experience)
		c.LastDailyClaim = today
	case errors.IsPoolRejection(err):
		out.PoolRejection = err
	default:
		return nil, errors.Wrap(err, "failed to pay daily bonus")
	}

	slog.InfoContext(ctx, "daily bonus claimed",
		"character_id", c.ID,
		"streak", out.Streak,
		"coins", out.Coins,
		"experience", out.Experience,
		"paid", out.Paid,
	)
	if out.Paid && o.bus != nil {
		if err := o.bus.Publish(ctx, events.NewGameEvent(entities.EventDailyClaimed, c, nil)); err != nil {
			slog.WarnContext(ctx, "failed to publish event", "type", entities.EventDailyClaimed, "error", err)
		}
	}

	return out, nil
}
