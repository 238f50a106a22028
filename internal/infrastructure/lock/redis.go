// Package lock provides per-key mutual exclusion for order confirmation,
// either across instances through Redis or within a single process.
package lock

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/DanielPopoola/laybuy-gateway/internal/application"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultMaxWait    = 5 * time.Second
	retryInterval     = 50 * time.Millisecond
	releaseTimeout    = 2 * time.Second
	redisKeyNamespace = "lock:"
)

// releaseScript deletes the key only while it still holds our token.
// KEYS[1] = lock key
// ARGV[1] = owner token
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
    return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisLocker implements application.OrderLocker with SET NX PX.
type RedisLocker struct {
	client  *redis.Client
	ttl     time.Duration
	maxWait time.Duration
	logger  *slog.Logger
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, logger *slog.Logger) *RedisLocker {
	return &RedisLocker{
		client:  client,
		ttl:     ttl,
		maxWait: defaultMaxWait,
		logger:  logger,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	key = redisKeyNamespace + key
	owner := uuid.New().String()

	waitCtx, cancel := context.WithTimeout(ctx, l.maxWait)
	defer cancel()

	for {
		acquired, err := l.client.SetNX(waitCtx, key, owner, l.ttl).Result()
		if err != nil && waitCtx.Err() == nil {
			return nil, fmt.Errorf("acquire lock %s: %w", key, err)
		}
		if acquired {
			return func() { l.release(key, owner) }, nil
		}

		select {
		case <-waitCtx.Done():
			return nil, fmt.Errorf("%w: %s", application.ErrLockNotAcquired, key)
		case <-time.After(retryInterval):
		}
	}
}

func (l *RedisLocker) release(key, owner string) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()

	if err := releaseScript.Run(ctx, l.client, []string{key}, owner).Err(); err != nil {
		l.logger.Warn("failed to release lock", "key", key, "error", err)
	}
}
