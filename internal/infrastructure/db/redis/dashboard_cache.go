package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sustainlite/sustainlite-api/internal/core/domain"
)

const defaultDashboardTTL = time.Minute

// DashboardCache stores computed dashboard stats per owner.
// Key formats:
//
//	dashboard:gen:<owner_id>     generation counter, bumped by Invalidate
//	dashboard:<owner_id>:<gen>   stats computed under that generation
type DashboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewDashboardCache wraps client. ttl <= 0 selects one minute.
func NewDashboardCache(client *redis.Client, ttl time.Duration) *DashboardCache {
	if ttl <= 0 {
		ttl = defaultDashboardTTL
	}
	return &DashboardCache{client: client, ttl: ttl}
}

// Generation returns the owner's current generation; 0 before any invalidation.
func (c *DashboardCache) Generation(ctx context.Context, ownerID int64) (int64, error) {
	gen, err := c.client.Get(ctx, c.genKey(ownerID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("dashboard cache generation: %w", err)
	}
	return gen, nil
}

// Get returns the stats cached under gen and whether they were present.
func (c *DashboardCache) Get(ctx context.Context, ownerID, gen int64) (*domain.DashboardStats, bool, error) {
	raw, err := c.client.Get(ctx, c.key(ownerID, gen)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("dashboard cache get: %w", err)
	}

	var stats domain.DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil, false, fmt.Errorf("dashboard cache decode: %w", err)
	}
	return &stats, true, nil
}

// Set stores stats for ownerID under gen (expires after the configured TTL).
func (c *DashboardCache) Set(ctx context.Context, ownerID, gen int64, stats *domain.DashboardStats) error {
	raw, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("dashboard cache encode: %w", err)
	}
	return c.client.Set(ctx, c.key(ownerID, gen), raw, c.ttl).Err()
}

// Invalidate advances the generation of ownerID. A snapshot computed before
// the bump is written under the old generation and never served.
func (c *DashboardCache) Invalidate(ctx context.Context, ownerID int64) error {
	if err := c.client.Incr(ctx, c.genKey(ownerID)).Err(); err != nil {
		return fmt.Errorf("dashboard cache invalidate: %w", err)
	}
	return nil
}

func (c *DashboardCache) key(ownerID, gen int64) string {
	return fmt.Sprintf("dashboard:%d:%d", ownerID, gen)
}

func (c *DashboardCache) genKey(ownerID int64) string {
	return fmt.Sprintf("dashboard:gen:%d", ownerID)
}
