package channel

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vnykmshr/framesink/pkg/common/errors"
)

// RedisAppender is the subset of redis commands RedisChannel issues.
// redis.UniversalClient satisfies it.
type RedisAppender interface {
	Append(ctx context.Context, key, value string) *redis.IntCmd
	Expire(ctx context.Context, key string, expiration time.Duration) *redis.BoolCmd
}

// RedisConfig holds configuration for a RedisChannel.
type RedisConfig struct {
	// Client is the redis client used for all commands.
	Client RedisAppender

	// Key is the redis string key drained bytes are appended to.
	Key string

	// KeyTTL is the expiry refreshed on every Flush and on Close.
	// Zero leaves the key without an expiry.
	KeyTTL time.Duration
}

// RedisChannel appends drained bytes to a Redis string key.
//
// Redis APPEND is atomic and always consumes the whole payload, so every
// write reports full progress. There is no destination-internal buffering;
// Flush only refreshes the key TTL when one is configured.
type RedisChannel struct {
	config RedisConfig
	closed bool
}

// NewRedis creates a RedisChannel from the given configuration.
func NewRedis(config RedisConfig) (*RedisChannel, error) {
	if config.Client == nil {
		return nil, errors.NewValidationError("channel", "Client", nil, "redis client is required")
	}
	if config.Key == "" {
		return nil, errors.NewValidationError("channel", "Key", config.Key, "cannot be empty").
			WithHint("set the redis key drained bytes are appended to")
	}
	return &RedisChannel{config: config}, nil
}

// Write implements Channel.
func (c *RedisChannel) Write(ctx context.Context, p []byte) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if c.closed {
		return 0, errors.ErrClosed
	}
	if err := c.config.Client.Append(ctx, c.config.Key, string(p)).Err(); err != nil {
		return 0, fmt.Errorf("redis append key=%q: %w", c.config.Key, err)
	}
	return len(p), nil
}

// Flush implements Channel.
func (c *RedisChannel) Flush(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return errors.ErrClosed
	}
	return c.refreshTTL(ctx)
}

// Close implements Channel. Closing twice is not an error.
func (c *RedisChannel) Close(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.closed {
		return nil
	}
	c.closed = true
	return c.refreshTTL(ctx)
}

func (c *RedisChannel) refreshTTL(ctx context.Context) error {
	if c.config.KeyTTL <= 0 {
		return nil
	}
	if err := c.config.Client.Expire(ctx, c.config.Key, c.config.KeyTTL).Err(); err != nil {
		return fmt.Errorf("redis expire key=%q: %w", c.config.Key, err)
	}
	return nil
}
