package amazonads

import (
	"adsync/internal/observability"
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// ExpiryBuffer is subtracted from the advertised token lifetime so refresh happens early
const ExpiryBuffer = 5 * time.Minute

const refreshTimeout = 30 * time.Second

// Token is an OAuth access/refresh pair with its buffered expiry
type Token struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// Refresher exchanges a refresh token for a new access token
type Refresher interface {
	Refresh(ctx context.Context, refreshToken string) (TokenResponse, error)
}

// PersistFunc stores a refreshed token
type PersistFunc func(ctx context.Context, token Token) error

// CalculateExpiresAt returns the buffered expiry for a token issued at now
func CalculateExpiresAt(now time.Time, expiresIn int) time.Time {
	return now.Add(time.Duration(expiresIn)*time.Second - ExpiryBuffer)
}

// TokenManager caches one credential's access token and lets only one refresh run at a time.
// Callers that arrive during a refresh wait for it and share its result.
type TokenManager struct {
	mu    sync.RWMutex
	token Token

	refresher Refresher
	persist   PersistFunc
	group     singleflight.Group
	logger    *observability.Logger
	now       func() time.Time
}

func NewTokenManager(initial Token, refresher Refresher, persist PersistFunc, logger *observability.Logger) *TokenManager {
	return &TokenManager{
		token:     initial,
		refresher: refresher,
		persist:   persist,
		logger:    logger,
		now:       time.Now,
	}
}

// AccessToken returns the cached token while it is valid, refreshing it otherwise
func (m *TokenManager) AccessToken(ctx context.Context) (string, error) {
	if tok, ok := m.valid(); ok {
		return tok, nil
	}

	ch := m.group.DoChan("refresh", func() (interface{}, error) {
		if tok, ok := m.valid(); ok {
			return tok, nil
		}
		// The refresh outlives any single caller's cancellation so waiters still get a token.
		refreshCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
		defer cancel()
		return m.refresh(refreshCtx)
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

// Current returns a copy of the cached token
func (m *TokenManager) Current() Token {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.token
}

func (m *TokenManager) valid() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.token.AccessToken != "" && m.now().Before(m.token.ExpiresAt) {
		return m.token.AccessToken, true
	}
	return "", false
}

func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	m.mu.RLock()
	refreshToken := m.token.RefreshToken
	m.mu.RUnlock()

	if refreshToken == "" {
		return "", fmt.Errorf("%w: no refresh token", ErrTokenRefresh)
	}

	resp, err := m.refresher.Refresh(ctx, refreshToken)
	if err != nil {
		m.logger.Error(ctx, "failed to refresh Amazon access token", err)
		return "", fmt.Errorf("%w: %v", ErrTokenRefresh, err)
	}

	next := Token{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresAt:    CalculateExpiresAt(m.now(), resp.ExpiresIn),
	}
	if next.RefreshToken == "" {
		next.RefreshToken = refreshToken
	}

	m.mu.Lock()
	m.token = next
	m.mu.Unlock()

	if m.persist != nil {
		if err := m.persist(ctx, next); err != nil {
			m.logger.Error(ctx, "failed to persist refreshed Amazon token", err)
		}
	}

	m.logger.Info(ctx, "refreshed Amazon access token",
		observability.Field{Key: "expires_at", Value: next.ExpiresAt.Format(time.RFC3339)},
	)
	return next.AccessToken, nil
}
