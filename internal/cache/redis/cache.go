package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/dkurganov/microblog/internal/model"
)

// slotKey is the fixed cache key. There is exactly one logical slot
// process-wide; see model.AccessTokenCache for the single-session contract.
const slotKey = "access_token"

var _ model.AccessTokenCache = (*AccessTokenCache)(nil)

// AccessTokenCache is the redis-backed single-slot access token cache.
type AccessTokenCache struct {
	client *goredis.Client
}

// New creates an AccessTokenCache on top of the given redis client.
func New(client *goredis.Client) *AccessTokenCache {
	return &AccessTokenCache{client: client}
}

// Set stores the token under the fixed slot with the given TTL.
func (c *AccessTokenCache) Set(ctx context.Context, token string, ttl time.Duration) error {
	if err := c.client.Set(ctx, slotKey, token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store access token: %w: %w", model.ErrUnavailable, err)
	}
	return nil
}

// Get returns the cached token. An empty slot is model.ErrNotFound; a
// backend failure is model.ErrUnavailable.
func (c *AccessTokenCache) Get(ctx context.Context) (string, error) {
	token, err := c.client.Get(ctx, slotKey).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", model.ErrNotFound
		}
		return "", fmt.Errorf("failed to read access token: %w: %w", model.ErrUnavailable, err)
	}
	return token, nil
}

// Ping probes the redis backend.
func (c *AccessTokenCache) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("failed to ping redis: %w: %w", model.ErrUnavailable, err)
	}
	return nil
}

// Delete clears the slot. A key that did not exist is success because the
// delete always runs speculatively before a replacement write.
func (c *AccessTokenCache) Delete(ctx context.Context) error {
	if err := c.client.Del(ctx, slotKey).Err(); err != nil {
		return fmt.Errorf("failed to delete access token: %w: %w", model.ErrUnavailable, err)
	}
	return nil
}
