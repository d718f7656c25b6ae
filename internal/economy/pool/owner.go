package pool

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-battle/internal/errors"
)

// OwnerGuard exposes the administrative side of a pool to its owner only
type OwnerGuard struct {
	pool    Pool
	ownerID string
}

// NewOwnerGuard guards p for ownerID
func NewOwnerGuard(p Pool, ownerID string) (*OwnerGuard, error) {
	if p == nil {
		return nil, errors.InvalidArgument("pool cannot be nil")
	}
	if ownerID == "" {
		return nil, errors.InvalidArgument("owner ID cannot be empty")
	}
	return &OwnerGuard{pool: p, ownerID: ownerID}, nil
}

// IsOwner reports whether actorID owns the pool
func (g *OwnerGuard) IsOwner(actorID string) bool {
	return actorID == g.ownerID
}

// Status returns the pool status to the owner
func (g *OwnerGuard) Status(ctx context.Context, actorID string) (*Status, error) {
	if err := g.authorize(ctx, actorID, "status"); err != nil {
		return nil, err
	}
	return g.pool.Status(ctx)
}

// SetEnabled lets the owner switch payouts on or off
func (g *OwnerGuard) SetEnabled(ctx context.Context, actorID string, enabled bool) error {
	if err := g.authorize(ctx, actorID, "set_enabled"); err != nil {
		return err
	}
	return g.pool.SetEnabled(ctx, enabled)
}

func (g *OwnerGuard) authorize(ctx context.Context, actorID, op string) error {
	if g.IsOwner(actorID) {
		return nil
	}
	slog.WarnContext(ctx, "non-owner tried a pool admin operation", "actor_id", actorID, "operation", op)
	return errors.PermissionDenied("only the pool owner can do this")
}
