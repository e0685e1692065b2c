package handler

import (
	"adsync/internal/apierrors"
	"adsync/internal/audit"
	"adsync/internal/auth/processor"
	"adsync/internal/observability"
	"context"
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// TokenValidator validates dashboard bearer tokens
type TokenValidator interface {
	ValidateJWTToken(ctx context.Context, token string) (processor.BaseClaims, error)
}

type Handler struct {
	validator TokenValidator
	logger    *observability.Logger
}

func New(validator TokenValidator, logger *observability.Logger) Handler {
	return Handler{validator: validator, logger: logger}
}

// HandleJWTMiddleware requires a valid bearer token and attributes the request to its subject
func (h *Handler) HandleJWTMiddleware(c *gin.Context) {
	ctx := c.Request.Context()
	tokenHeader := c.GetHeader("Authorization")

	if tokenHeader == "" || !strings.HasPrefix(tokenHeader, "Bearer ") {
		apierrors.Unauthorized(c, "UNAUTHORIZED", "Authorization token is missing or invalid")
		return
	}

	tokenString := strings.TrimPrefix(tokenHeader, "Bearer ")

	claims, err := h.validator.ValidateJWTToken(ctx, tokenString)
	if err != nil {
		if errors.Is(err, processor.ErrExpiredToken) {
			apierrors.Unauthorized(c, "TOKEN_EXPIRED", "Authorization token has expired")
			return
		}
		apierrors.Unauthorized(c, "UNAUTHORIZED", "Authorization token is missing or invalid")
		return
	}

	c.Set(audit.ContextKeyUserID, claims.Subject)
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: claims.Subject},
	))
	c.Next()
}
