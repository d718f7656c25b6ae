package pool

import (
	"context"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
	"github.com/KirkDiggler/rpg-battle/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-battle/internal/redis"
)

// DefaultRedisKey is the hash holding the pool state
const DefaultRedisKey = "reward_pool"

const (
	fieldTotalRemaining   = "total_remaining"
	fieldDistributedToday = "distributed_today"
	fieldDailyCap         = "daily_cap"
	fieldLastReset        = "last_reset"
	fieldEnabled          = "enabled"

	modeStatus = "status"
	modeCheck  = "check"
	modeCommit = "commit"

	codeOK        = 0
	codeDisabled  = 1
	codeDailyCap  = 2
	codeExhausted = 3
)

// ledgerScript applies the lazy daily reset, checks amount and, in commit
// mode, pays it out. Redis runs a script without interleaving other commands,
// which makes the whole check-then-commit atomic across processes.
//
// KEYS[1] pool hash; ARGV[1] today; ARGV[2] amount; ARGV[3] mode.
// Returns {code, total_remaining, distributed_today, daily_cap, enabled, last_reset}.
var ledgerScript = redis.NewScript(`
local key = KEYS[1]
local today = ARGV[1]
local amount = tonumber(ARGV[2])
local mode = ARGV[3]

local h = redis.call('HMGET', key, 'total_remaining', 'distributed_today', 'daily_cap', 'last_reset', 'enabled')
local total = tonumber(h[1]) or 0
local distributed = tonumber(h[2]) or 0
local cap = tonumber(h[3]) or 0
local enabled = h[5] == '1'

if h[4] ~= today then
	distributed = 0
	redis.call('HSET', key, 'distributed_today', 0, 'last_reset', today)
end

local code = 0
if mode ~= 'status' then
	if not enabled then
		code = 1
	elseif distributed + amount > cap then
		code = 2
	elseif amount > total then
		code = 3
	end
	if code == 0 and mode == 'commit' then
		total = total - amount
		distributed = distributed + amount
		redis.call('HSET', key, 'total_remaining', total, 'distributed_today', distributed)
	end
end

local enabledFlag = 0
if enabled then
	enabledFlag = 1
end
return {code, total, distributed, cap, enabledFlag, today}
`)

type redisPool struct {
	cfg    *Config
	client redisclient.Client
	key    string
}

// RedisConfig configures a Redis backed pool
type RedisConfig struct {
	Config
	Client redisclient.Client
	// Key is the hash name. Empty means DefaultRedisKey.
	Key string
}

// Validate validates the config
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return c.Config.Validate()
}

// NewRedis creates a pool stored in a Redis hash so several processes can
// share it. Existing ledger values are kept; the daily cap always follows cfg.
func NewRedis(ctx context.Context, cfg *RedisConfig) (Pool, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	key := cfg.Key
	if key == "" {
		key = DefaultRedisKey
	}

	enabled := "0"
	if cfg.Enabled {
		enabled = "1"
	}

	pipe := cfg.Client.TxPipeline()
	pipe.HSetNX(ctx, key, fieldTotalRemaining, cfg.Total)
	pipe.HSetNX(ctx, key, fieldDistributedToday, 0)
	pipe.HSetNX(ctx, key, fieldLastReset, cfg.today().String())
	pipe.HSetNX(ctx, key, fieldEnabled, enabled)
	pipe.HSet(ctx, key, fieldDailyCap, cfg.DailyCap)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to initialize reward pool")
	}

	return &redisPool{
		cfg:    &cfg.Config,
		client: cfg.Client,
		key:    key,
	}, nil
}

func (p *redisPool) Status(ctx context.Context) (*Status, error) {
	_, s, err := p.run(ctx, 0, modeStatus)
	if err != nil {
		return nil, err
	}
	return s.status(), nil
}

func (p *redisPool) CanEarn(ctx context.Context, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	code, s, err := p.run(ctx, amount, modeCheck)
	if err != nil {
		return err
	}
	return rejection(code, s)
}

func (p *redisPool) TryEarn(ctx context.Context, amount int64) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	code, s, err := p.run(ctx, amount, modeCommit)
	if err != nil {
		return err
	}
	if err := rejection(code, s); err != nil {
		return err
	}

	slog.DebugContext(ctx, "reward pool payout",
		"amount", amount,
		"distributed_today", s.distributedToday,
		"total_remaining", s.totalRemaining)
	return nil
}

func (p *redisPool) SetEnabled(ctx context.Context, enabled bool) error {
	value := "0"
	if enabled {
		value = "1"
	}
	if err := p.client.HSet(ctx, p.key, fieldEnabled, value).Err(); err != nil {
		return errors.Wrap(err, "failed to toggle reward pool")
	}

	slog.InfoContext(ctx, "reward pool toggled", "enabled", enabled)
	return nil
}

func (p *redisPool) run(ctx context.Context, amount int64, mode string) (int64, *state, error) {
	today := p.cfg.today()

	res, err := ledgerScript.Run(ctx, p.client, []string{p.key}, today.String(), amount, mode).Slice()
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to run reward pool script")
	}
	if len(res) != 6 {
		return 0, nil, errors.Internalf("unexpected reward pool reply of %d values", len(res))
	}

	var nums [5]int64
	for i := range nums {
		n, ok := res[i].(int64)
		if !ok {
			return 0, nil, errors.Internalf("unexpected reward pool reply value %v", res[i])
		}
		nums[i] = n
	}
	lastReset, err := clock.ParseDate(toString(res[5]))
	if err != nil {
		return 0, nil, errors.Wrap(err, "failed to parse reward pool reset date")
	}

	return nums[0], &state{
		totalRemaining:   nums[1],
		distributedToday: nums[2],
		dailyCap:         nums[3],
		enabled:          nums[4] == 1,
		lastResetDate:    lastReset,
	}, nil
}

func rejection(code int64, s *state) error {
	switch code {
	case codeOK:
		return nil
	case codeDisabled:
		return errors.PoolDisabled()
	case codeDailyCap:
		return errors.DailyCapExceeded(s.dailyCap - s.distributedToday)
	case codeExhausted:
		return errors.PoolExhausted(s.totalRemaining)
	default:
		return errors.Internalf("unknown reward pool result %d", code)
	}
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}
