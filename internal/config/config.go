// Package config loads arena settings from defaults, an optional TOML file
// and ARENA_* environment variables, in that order.
package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"

	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// EnvPrefix prefixes every environment override
const EnvPrefix = "ARENA_"

// DefaultOwnerID owns the pool unless configured otherwise
const DefaultOwnerID = "admin"

// Storage backends
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
)

// Log formats
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the full arena configuration
type Config struct {
	Log     LogConfig     `toml:"log" envPrefix:"LOG_"`
	Pool    PoolConfig    `toml:"pool" envPrefix:"POOL_"`
	Storage StorageConfig `toml:"storage" envPrefix:"STORAGE_"`

	// OwnerID may read pool status and switch payouts
	OwnerID string `toml:"owner_id" env:"OWNER_ID"`
	// TimeZone places the daily reset, an IANA name
	TimeZone string `toml:"time_zone" env:"TIME_ZONE"`
}

// LogConfig selects the slog handler
type LogConfig struct {
	Level  string `toml:"level" env:"LEVEL"`
	Format string `toml:"format" env:"FORMAT"`
}

// PoolConfig sizes the shared reward pool
type PoolConfig struct {
	Total    int64 `toml:"total" env:"TOTAL"`
	DailyCap int64 `toml:"daily_cap" env:"DAILY_CAP"`
	Enabled  bool  `toml:"enabled" env:"ENABLED"`
}

// StorageConfig picks where characters and the pool live
type StorageConfig struct {
	Backend   string `toml:"backend" env:"BACKEND"`
	RedisAddr string `toml:"redis_addr" env:"REDIS_ADDR"`
	RedisDB   int    `toml:"redis_db" env:"REDIS_DB"`
	// CacheSize keeps characters in process memory. Zero disables it. It is
	// rejected with the redis backend, where other processes write the same
	// characters.
	CacheSize int `toml:"cache_size" env:"CACHE_SIZE"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: FormatText,
		},
		Pool: PoolConfig{
			Total:    pool.DefaultTotal,
			DailyCap: pool.DefaultDailyCap,
			Enabled:  true,
		},
		Storage: StorageConfig{
			Backend:   BackendMemory,
			RedisAddr: "localhost:6379",
		},
		OwnerID:  DefaultOwnerID,
		TimeZone: "UTC",
	}
}

// Load builds the configuration. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			return nil, err
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, errors.Wrap(err, "failed to parse environment")
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "failed to open config %s", path)
	}
	defer file.Close()

	decoder := toml.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(c); err != nil {
		return errors.InvalidArgumentf("failed to decode config %s: %v", path, err)
	}
	return nil
}

// Validate checks every section
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if _, err := c.Log.SlogLevel(); err != nil {
		vb.InvalidField("log.level", err.Error())
	}
	errors.ValidateOneOf("log.format", c.Log.Format, []string{FormatText, FormatJSON}, vb)

	errors.ValidateNonNegative("pool.total", c.Pool.Total, vb)
	errors.ValidatePositive("pool.daily_cap", c.Pool.DailyCap, vb)

	errors.ValidateOneOf("storage.backend", c.Storage.Backend, []string{BackendMemory, BackendRedis}, vb)
	if c.Storage.Backend == BackendRedis {
		errors.ValidateRequired("storage.redis_addr", c.Storage.RedisAddr, vb)
		if c.Storage.CacheSize > 0 {
			vb.Field("storage.cache_size", "must be 0 with the redis backend")
		}
	}
	errors.ValidateNonNegative("storage.cache_size", int64(c.Storage.CacheSize), vb)

	errors.ValidateRequired("owner_id", c.OwnerID, vb)
	if _, err := c.Location(); err != nil {
		vb.InvalidField("time_zone", err.Error())
	}

	return vb.Build()
}

// Location resolves the configured time zone
func (c *Config) Location() (*time.Location, error) {
	if c.TimeZone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.TimeZone)
}

// SlogLevel parses the level name
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
