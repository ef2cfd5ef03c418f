// Package cache provides the Redis-backed unread message counter cache.
package cache

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"

	"cafemeetup/config"
	"cafemeetup/internal/domain/service"
)

const unreadKeyPrefix = "unread:"

type redisUnreadCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewUnreadCache builds the unread counter cache. Without a Redis section in
// the config it degrades to a no-op and every count hits the database.
func NewUnreadCache(cfg *config.Config) service.UnreadCache {
	if cfg.Redis == nil || cfg.Redis.Addr == "" {
		return &noopUnreadCache{}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	return &redisUnreadCache{client: client, ttl: cfg.Redis.TTL}
}

func (c *redisUnreadCache) GetUnread(ctx context.Context, userID uuid.UUID) (int64, bool, error) {
	count, err := c.client.Get(ctx, unreadKey(userID)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read unread counter")
	}

	return count, true, nil
}

func (c *redisUnreadCache) SetUnread(ctx context.Context, userID uuid.UUID, count int64) error {
	if err := c.client.Set(ctx, unreadKey(userID), count, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to store unread counter")
	}

	return nil
}

func (c *redisUnreadCache) InvalidateUnread(ctx context.Context, userID uuid.UUID) error {
	if err := c.client.Del(ctx, unreadKey(userID)).Err(); err != nil {
		return errors.Wrap(err, "failed to drop unread counter")
	}

	return nil
}

func unreadKey(userID uuid.UUID) string {
	return unreadKeyPrefix + userID.String()
}

// noopUnreadCache reports a miss on every lookup.
type noopUnreadCache struct{}

func (noopUnreadCache) GetUnread(context.Context, uuid.UUID) (int64, bool, error) {
	return 0, false, nil
}

func (noopUnreadCache) SetUnread(context.Context, uuid.UUID, int64) error { return nil }

func (noopUnreadCache) InvalidateUnread(context.Context, uuid.UUID) error { return nil }
