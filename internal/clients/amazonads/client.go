package amazonads

import (
	"adsync/internal/observability"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"
)

// Limiter gates every outbound call
type Limiter interface {
	Acquire(ctx context.Context) error
}

// TokenSource hands out a valid access token, refreshing it when needed
type TokenSource interface {
	AccessToken(ctx context.Context) (string, error)
}

// Client talks to the Amazon Ads API on behalf of one advertising profile
type Client struct {
	clientID  string
	profileID string
	baseURL   string

	tokens     TokenSource
	limiter    Limiter
	logger     *observability.Logger
	httpClient *http.Client

	retry      RetryPolicy
	reportPoll ReportPollPolicy
	sleep      func(ctx context.Context, d time.Duration) error
	rand       func() float64
	now        func() time.Time
}

// Option customizes a Client
type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) { c.retry = p }
}

func WithReportPollPolicy(p ReportPollPolicy) Option {
	return func(c *Client) { c.reportPoll = p }
}

// WithClock replaces the wall clock, the sleep used between retries and polls, and the jitter source
func WithClock(now func() time.Time, sleep func(ctx context.Context, d time.Duration) error, rnd func() float64) Option {
	return func(c *Client) {
		c.now = now
		c.sleep = sleep
		c.rand = rnd
	}
}

// NewClient creates a client scoped to profileID. baseURL is usually Region.BaseURL().
func NewClient(clientID, profileID, baseURL string, tokens TokenSource, limiter Limiter, logger *observability.Logger, opts ...Option) *Client {
	c := &Client{
		clientID:   clientID,
		profileID:  profileID,
		baseURL:    baseURL,
		tokens:     tokens,
		limiter:    limiter,
		logger:     logger,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		retry:      DefaultRetryPolicy(),
		reportPoll: DefaultReportPollPolicy(),
		sleep:      sleepContext,
		rand:       rand.Float64,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ProfileID returns the advertising profile the client is scoped to
func (c *Client) ProfileID() string {
	return c.profileID
}

type apiRequest struct {
	method    string
	path      string
	mediaType string
	body      interface{}
}

// do sends req with retries and decodes a 2xx body into out when out is non-nil
func (c *Client) do(ctx context.Context, req apiRequest, out interface{}) error {
	var payload []byte
	if req.body != nil {
		var err error
		payload, err = json.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			delay := c.retry.Delay(attempt-1, c.rand())
			c.logger.Warn(ctx, "retrying Amazon API request",
				observability.Field{Key: "path", Value: req.path},
				observability.Field{Key: "attempt", Value: attempt + 1},
				observability.Field{Key: "delay_ms", Value: delay.Milliseconds()},
				observability.Field{Key: "error", Value: lastErr.Error()},
			)
			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
		}

		body, err := c.send(ctx, req, payload)
		if err == nil {
			if out != nil && len(bytes.TrimSpace(body)) > 0 {
				if err := json.Unmarshal(body, out); err != nil {
					return fmt.Errorf("failed to unmarshal response body: %w", err)
				}
			}
			return nil
		}

		var apiErr *APIError
		var netErr *transportError
		switch {
		case errors.As(err, &apiErr) && apiErr.Retryable():
			lastErr = err
		case errors.As(err, &netErr) && ctx.Err() == nil:
			lastErr = err
		default:
			return err
		}
	}

	c.logger.Error(ctx, "Amazon API request failed after retries", lastErr)
	return lastErr
}

// transportError wraps a failure to get any response at all
type transportError struct{ err error }

func (e *transportError) Error() string { return fmt.Sprintf("failed to make request: %v", e.err) }
func (e *transportError) Unwrap() error { return e.err }

func (c *Client) send(ctx context.Context, req apiRequest, payload []byte) ([]byte, error) {
	if err := c.limiter.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("failed to acquire rate limit token: %w", err)
	}

	token, err := c.tokens.AccessToken(ctx)
	if err != nil {
		return nil, err
	}

	var reader io.Reader
	if payload != nil {
		reader = bytes.NewReader(payload)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Amazon-Advertising-API-ClientId", c.clientID)
	httpReq.Header.Set("Amazon-Advertising-API-Scope", c.profileID)
	httpReq.Header.Set("Authorization", "Bearer "+token)
	if req.mediaType != "" {
		httpReq.Header.Set("Content-Type", req.mediaType)
		httpReq.Header.Set("Accept", req.mediaType)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &transportError{err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &transportError{err: fmt.Errorf("failed to read response body: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return body, nil
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
