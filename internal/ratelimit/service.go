package ratelimit

import (
	"adsync/internal/clients/redis"
	"adsync/internal/observability"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const window = time.Minute

// RateLimitResult represents the result of a rate limit check
type RateLimitResult struct {
	Allowed      bool      `json:"allowed"`
	Limit        int       `json:"limit"`
	Remaining    int       `json:"remaining"`
	ResetAt      time.Time `json:"reset_at"`
	RetryAfterMs int       `json:"retry_after_ms,omitempty"`
}

// WindowCounter counts requests per agent key in fixed one-minute windows
type WindowCounter interface {
	IncrementAgentRequests(ctx context.Context, keyID uuid.UUID, windowStart time.Time) (int, error)
}

// Service limits requests per agent API key
type Service struct {
	redis   *redis.Client
	counter WindowCounter
	limit   int
	logger  *observability.Logger
	now     func() time.Time
}

// NewService creates a new rate limiting service allowing limit requests per minute per key
func NewService(redis *redis.Client, counter WindowCounter, limit int, logger *observability.Logger) *Service {
	return &Service{
		redis:   redis,
		counter: counter,
		limit:   limit,
		logger:  logger,
		now:     time.Now,
	}
}

// CheckRateLimit counts one request for the key and reports whether it may proceed.
// Redis gives a sliding window; without it a fixed Postgres window is used.
func (s *Service) CheckRateLimit(ctx context.Context, keyID uuid.UUID) (RateLimitResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "agent_key_id", Value: keyID.String()},
		observability.Field{Key: "rate_limit", Value: s.limit},
	)

	if s.redis.IsEnabled() {
		result, err := s.checkRateLimitRedis(ctx, keyID)
		if err != nil {
			s.logger.WarnWithError(ctx, "Redis rate limit check failed, falling back to PostgreSQL", err)
			return s.checkRateLimitPostgres(ctx, keyID)
		}
		return result, nil
	}

	return s.checkRateLimitPostgres(ctx, keyID)
}

func (s *Service) checkRateLimitRedis(ctx context.Context, keyID uuid.UUID) (RateLimitResult, error) {
	key := fmt.Sprintf("rl:agent:%s", keyID.String())
	now := s.now()

	count, oldestMs, err := s.redis.SlidingWindow(ctx, key, now.Add(-window))
	if err != nil {
		return RateLimitResult{}, err
	}

	if int(count) >= s.limit {
		resetAt := now.Add(window)
		if oldestMs > 0 {
			resetAt = time.UnixMilli(oldestMs).Add(window)
		}
		return s.denied(now, resetAt), nil
	}

	member := redis.Z{Score: float64(now.UnixMilli()), Member: fmt.Sprintf("%d-%s", now.UnixNano(), uuid.NewString()[:8])}
	if err := s.redis.ZAddWithExpiry(ctx, key, member, 2*window); err != nil {
		return RateLimitResult{}, err
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - int(count) - 1,
		ResetAt:   now.Add(window),
	}, nil
}

func (s *Service) checkRateLimitPostgres(ctx context.Context, keyID uuid.UUID) (RateLimitResult, error) {
	now := s.now()
	windowStart := now.Truncate(window)
	windowEnd := windowStart.Add(window)

	count, err := s.counter.IncrementAgentRequests(ctx, keyID, windowStart)
	if err != nil {
		return RateLimitResult{}, fmt.Errorf("failed to count request: %w", err)
	}

	if count > s.limit {
		return s.denied(now, windowEnd), nil
	}

	return RateLimitResult{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit - count,
		ResetAt:   windowEnd,
	}, nil
}

func (s *Service) denied(now, resetAt time.Time) RateLimitResult {
	retryAfter := resetAt.Sub(now)
	if retryAfter < 0 {
		retryAfter = 0
	}
	return RateLimitResult{
		Allowed:      false,
		Limit:        s.limit,
		Remaining:    0,
		ResetAt:      resetAt,
		RetryAfterMs: int(retryAfter.Milliseconds()),
	}
}
