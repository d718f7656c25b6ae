// Package testutils provides utilities for testing: Redis test helpers,
// scripted dice and character fixtures.
package testutils

import (
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-battle/internal/redis"
)

// TestRedis is an in-memory Redis server with a client pointed at it
type TestRedis struct {
	Server *miniredis.Miniredis
	Client redis.Client
}

// NewTestRedis starts miniredis and connects a client to it
func NewTestRedis(t testing.TB) *TestRedis {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err, "failed to start miniredis")

	client, err := redis.NewClient(mr.Addr(), &redis.Options{MaxRetries: -1})
	require.NoError(t, err, "failed to create redis client")

	return &TestRedis{Server: mr, Client: client}
}

// Close disconnects the client and stops the server
func (r *TestRedis) Close() {
	_ = r.Client.Close() // nolint:errcheck // test teardown
	r.Server.Close()
}

// Fail makes every following command return msg as a server error
func (r *TestRedis) Fail(msg string) {
	r.Server.SetError(msg)
}
