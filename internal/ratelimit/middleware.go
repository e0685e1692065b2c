package ratelimit

import (
	"adsync/internal/apierrors"
	"adsync/internal/observability"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// KeyResolver extracts the authenticated agent key id set by an earlier middleware
type KeyResolver func(c *gin.Context) (uuid.UUID, bool)

// Middleware creates a Gin middleware that limits requests per agent key
func (s *Service) Middleware(resolve KeyResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		keyID, ok := resolve(c)
		if !ok {
			c.Next()
			return
		}

		result, err := s.CheckRateLimit(ctx, keyID)
		if err != nil {
			apierrors.InternalError(c, err)
			return
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", result.Limit))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", result.Remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", result.ResetAt.Unix()))

		if !result.Allowed {
			retryAfter := (result.RetryAfterMs + 999) / 1000
			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			s.logger.Warn(ctx, "agent rate limit exceeded",
				observability.Field{Key: "agent_key_id", Value: keyID.String()},
				observability.Field{Key: "limit", Value: result.Limit},
				observability.Field{Key: "retry_after_ms", Value: result.RetryAfterMs},
			)

			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "Rate limit exceeded",
				"code":        "RATE_LIMIT_EXCEEDED",
				"limit":       result.Limit,
				"retry_after": retryAfter,
				"reset_at":    result.ResetAt.Unix(),
			})
			return
		}

		c.Next()
	}
}
