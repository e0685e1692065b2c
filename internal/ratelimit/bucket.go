package ratelimit

import (
	"context"
	"errors"
	"time"

	"golang.org/x/time/rate"
)

var ErrAcquireTimeout = errors.New("rate limiter acquire timed out")

const (
	DefaultBurst         = 10
	DefaultRatePerSecond = 2.0
	DefaultPollInterval  = 100 * time.Millisecond
	DefaultAcquireWait   = 30 * time.Second
)

// TokenBucket gates outbound API calls. Callers that find the bucket empty poll until a
// token frees up or the acquire timeout elapses.
type TokenBucket struct {
	limiter      *rate.Limiter
	pollInterval time.Duration
	maxWait      time.Duration

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// BucketOption customizes a TokenBucket
type BucketOption func(*TokenBucket)

// WithPollInterval sets how often a queued caller re-checks the bucket
func WithPollInterval(d time.Duration) BucketOption {
	return func(b *TokenBucket) { b.pollInterval = d }
}

// WithMaxWait sets how long Acquire waits before failing with ErrAcquireTimeout
func WithMaxWait(d time.Duration) BucketOption {
	return func(b *TokenBucket) { b.maxWait = d }
}

// WithClock replaces the wall clock and the sleep used between polls
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error) BucketOption {
	return func(b *TokenBucket) {
		b.now = now
		b.sleep = sleep
	}
}

// NewTokenBucket creates a full bucket holding burst tokens that refills at perSecond
func NewTokenBucket(burst int, perSecond float64, opts ...BucketOption) *TokenBucket {
	if burst <= 0 {
		burst = DefaultBurst
	}
	if perSecond <= 0 {
		perSecond = DefaultRatePerSecond
	}
	b := &TokenBucket{
		limiter:      rate.NewLimiter(rate.Limit(perSecond), burst),
		pollInterval: DefaultPollInterval,
		maxWait:      DefaultAcquireWait,
		now:          time.Now,
		sleep:        sleepContext,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Acquire consumes one token, waiting for a refill when none is available
func (b *TokenBucket) Acquire(ctx context.Context) error {
	deadline := b.now().Add(b.maxWait)
	for {
		now := b.now()
		if b.limiter.AllowN(now, 1) {
			return nil
		}
		if !now.Before(deadline) {
			return ErrAcquireTimeout
		}
		wait := b.pollInterval
		if remaining := deadline.Sub(now); remaining < wait {
			wait = remaining
		}
		if err := b.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// Available reports the whole tokens currently in the bucket
func (b *TokenBucket) Available() int {
	return int(b.limiter.TokensAt(b.now()))
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
