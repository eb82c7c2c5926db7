package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"

	"github.com/Icer178/traffic-val/internal/domain"
)

// ViolationCache is a per-record read cache keyed by violation id. It caches
// the raw snapshot only; visibility is still evaluated per request by the
// caller, so a cached record never bypasses the authorization check.
type ViolationCache struct {
	client *goredis.Client
	ttl    time.Duration
}

func NewViolationCache(r *Redis, ttl time.Duration) *ViolationCache {
	return &ViolationCache{client: r.Client, ttl: ttl}
}

func (c *ViolationCache) key(id uuid.UUID) string {
	return "violation:" + id.String()
}

// Get returns (nil, nil) on a cache miss.
func (c *ViolationCache) Get(ctx context.Context, id uuid.UUID) (*domain.Violation, error) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var v domain.Violation
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *ViolationCache) Set(ctx context.Context, v *domain.Violation) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key(v.ID), b, c.ttl).Err()
}

func (c *ViolationCache) Invalidate(ctx context.Context, id uuid.UUID) error {
	return c.client.Del(ctx, c.key(id)).Err()
}
