package redis

import (
	"adsync/internal/config"
	"adsync/internal/observability"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Z aliases the sorted-set member type so callers need not import go-redis.
type Z = redis.Z

// Client wraps the Redis client with observability
type Client struct {
	client *redis.Client
	logger *observability.Logger
}

// NewClient creates a new Redis client
func NewClient(cfg config.RedisConfig, logger *observability.Logger) (*Client, error) {
	if !cfg.Enabled {
		logger.Info(context.Background(), "Redis is disabled, skipping client initialization")
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 2,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info(ctx, "successfully connected to Redis",
		observability.Field{Key: "host", Value: cfg.Host},
		observability.Field{Key: "port", Value: cfg.Port},
		observability.Field{Key: "db", Value: cfg.DB},
	)

	return &Client{
		client: client,
		logger: logger,
	}, nil
}

// Close closes the Redis connection
func (c *Client) Close() error {
	if c == nil || c.client == nil {
		return nil
	}
	return c.client.Close()
}

// IsEnabled returns whether Redis is enabled
func (c *Client) IsEnabled() bool {
	return c != nil && c.client != nil
}

// SlidingWindow trims members scored before windowStart and returns how many remain
// together with the oldest remaining score. oldest is 0 when the set is empty.
func (c *Client) SlidingWindow(ctx context.Context, key string, windowStart time.Time) (count int64, oldest int64, err error) {
	if !c.IsEnabled() {
		return 0, 0, fmt.Errorf("Redis client not initialized")
	}

	pipe := c.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, key, "0", fmt.Sprintf("%d", windowStart.UnixMilli()))
	card := pipe.ZCard(ctx, key)
	first := pipe.ZRangeWithScores(ctx, key, 0, 0)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("failed to read sliding window: %w", err)
	}

	if members := first.Val(); len(members) > 0 {
		oldest = int64(members[0].Score)
	}
	return card.Val(), oldest, nil
}

// ZAddWithExpiry adds a member and refreshes the key's expiration
func (c *Client) ZAddWithExpiry(ctx context.Context, key string, member Z, expiration time.Duration) error {
	if !c.IsEnabled() {
		return fmt.Errorf("Redis client not initialized")
	}

	pipe := c.client.TxPipeline()
	pipe.ZAdd(ctx, key, member)
	pipe.Expire(ctx, key, expiration)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to add window member: %w", err)
	}
	return nil
}
