package amazonads

import (
	"net/http"
	"time"
)

// RetryPolicy bounds how transient failures are retried
type RetryPolicy struct {
	// Delays are indexed by retry number; the last one repeats
	Delays     []time.Duration
	MaxRetries int
	// Jitter adds up to this fraction of the base delay
	Jitter float64
}

// DefaultRetryPolicy waits 1s, 4s, 10s then 30s between attempts, plus up to 50% jitter
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		Delays:     []time.Duration{time.Second, 4 * time.Second, 10 * time.Second, 30 * time.Second},
		MaxRetries: 4,
		Jitter:     0.5,
	}
}

// Delay returns the wait before retry number retry (0-based). rnd is in [0, 1).
func (p RetryPolicy) Delay(retry int, rnd float64) time.Duration {
	if len(p.Delays) == 0 {
		return 0
	}
	if retry >= len(p.Delays) {
		retry = len(p.Delays) - 1
	}
	if retry < 0 {
		retry = 0
	}
	base := p.Delays[retry]
	return base + time.Duration(float64(base)*p.Jitter*rnd)
}

func isRetryableStatus(code int) bool {
	switch code {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}
