package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-battle/internal/config"
	"github.com/KirkDiggler/rpg-battle/internal/economy/pool"
	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
	dir string
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) SetupTest() {
	s.dir = s.T().TempDir()
}

func (s *ConfigTestSuite) writeFile(body string) string {
	path := filepath.Join(s.dir, "arena.toml")
	s.Require().NoError(os.WriteFile(path, []byte(body), 0o600))
	return path
}

func (s *ConfigTestSuite) TestDefaults() {
	cfg, err := config.Load("")
	s.Require().NoError(err)

	s.Equal(pool.DefaultTotal, cfg.Pool.Total)
	s.Equal(pool.DefaultDailyCap, cfg.Pool.DailyCap)
	s.True(cfg.Pool.Enabled)
	s.Equal(config.BackendMemory, cfg.Storage.Backend)
	s.Zero(cfg.Storage.CacheSize)
	s.Equal(config.DefaultOwnerID, cfg.OwnerID)

	level, err := cfg.Log.SlogLevel()
	s.Require().NoError(err)
	s.Equal(slog.LevelInfo, level)
}

func (s *ConfigTestSuite) TestFileOverridesDefaults() {
	path := s.writeFile(`
owner_id = "tsar"
time_zone = "UTC"

[log]
level = "debug"
format = "json"

[pool]
daily_cap = 500

[storage]
backend = "redis"
redis_addr = "redis:6379"
`)

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal("tsar", cfg.OwnerID)
	s.Equal(config.FormatJSON, cfg.Log.Format)
	s.Equal(int64(500), cfg.Pool.DailyCap)
	s.Equal(pool.DefaultTotal, cfg.Pool.Total)
	s.Equal(config.BackendRedis, cfg.Storage.Backend)
	s.Equal("redis:6379", cfg.Storage.RedisAddr)

	level, err := cfg.Log.SlogLevel()
	s.Require().NoError(err)
	s.Equal(slog.LevelDebug, level)
}

func (s *ConfigTestSuite) TestEnvOverridesFile() {
	path := s.writeFile(`
[pool]
daily_cap = 500
enabled = true
`)
	s.T().Setenv("ARENA_POOL_DAILY_CAP", "750")
	s.T().Setenv("ARENA_POOL_ENABLED", "false")
	s.T().Setenv("ARENA_OWNER_ID", "boyar")

	cfg, err := config.Load(path)
	s.Require().NoError(err)

	s.Equal(int64(750), cfg.Pool.DailyCap)
	s.False(cfg.Pool.Enabled)
	s.Equal("boyar", cfg.OwnerID)
}

func (s *ConfigTestSuite) TestCacheOnlyWithMemoryBackend() {
	cfg, err := config.Load(s.writeFile(`
[storage]
cache_size = 128
`))
	s.Require().NoError(err)
	s.Equal(128, cfg.Storage.CacheSize)

	_, err = config.Load(s.writeFile(`
[storage]
backend = "redis"
cache_size = 128
`))
	s.True(errors.IsInvalidArgument(err), "got %v", err)
}

func (s *ConfigTestSuite) TestUnknownKeyRejected() {
	path := s.writeFile(`
[pool]
daily_limit = 5
`)

	_, err := config.Load(path)
	s.True(errors.IsInvalidArgument(err))
}

func (s *ConfigTestSuite) TestMissingFile() {
	_, err := config.Load(filepath.Join(s.dir, "missing.toml"))
	s.Error(err)
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name   string
		modify func(*config.Config)
	}{
		{
			name:   "bad log level",
			modify: func(c *config.Config) { c.Log.Level = "chatty" },
		},
		{
			name:   "bad log format",
			modify: func(c *config.Config) { c.Log.Format = "xml" },
		},
		{
			name:   "negative total",
			modify: func(c *config.Config) { c.Pool.Total = -1 },
		},
		{
			name:   "zero daily cap",
			modify: func(c *config.Config) { c.Pool.DailyCap = 0 },
		},
		{
			name:   "unknown backend",
			modify: func(c *config.Config) { c.Storage.Backend = "postgres" },
		},
		{
			name: "redis without address",
			modify: func(c *config.Config) {
				c.Storage.Backend = config.BackendRedis
				c.Storage.RedisAddr = ""
			},
		},
		{
			name: "cache with redis",
			modify: func(c *config.Config) {
				c.Storage.Backend = config.BackendRedis
				c.Storage.CacheSize = 64
			},
		},
		{
			name:   "negative cache size",
			modify: func(c *config.Config) { c.Storage.CacheSize = -1 },
		},
		{
			name:   "no owner",
			modify: func(c *config.Config) { c.OwnerID = " " },
		},
		{
			name:   "unknown time zone",
			modify: func(c *config.Config) { c.TimeZone = "Nowhere/Atlantis" },
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			cfg := config.Default()
			tc.modify(cfg)

			err := cfg.Validate()
			s.True(errors.IsInvalidArgument(err), "got %v", err)
		})
	}
}

func (s *ConfigTestSuite) TestValidateNil() {
	var cfg *config.Config
	s.True(errors.IsInvalidArgument(cfg.Validate()))
}
