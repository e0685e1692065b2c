package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"

	agent "adsync/internal/agent/processor"
	"adsync/internal/apierrors"
	"adsync/internal/audit"
	"adsync/internal/observability"
	"adsync/internal/settings/processor"
	"adsync/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type LimitSettings interface {
	GetSafetyLimits(ctx context.Context) (store.SafetyLimit, error)
	UpdateSafetyLimits(ctx context.Context, actor audit.Actor, params processor.UpdateLimitsParams) (store.SafetyLimit, error)
}

type KeyManager interface {
	CreateKey(ctx context.Context, actor audit.Actor, name string) (agent.CreatedKey, error)
	ListKeys(ctx context.Context) ([]agent.KeyView, error)
	RevokeKey(ctx context.Context, actor audit.Actor, id uuid.UUID) (agent.KeyView, error)
}

type Handler struct {
	limits LimitSettings
	keys   KeyManager
	logger *observability.Logger
}

func New(limits LimitSettings, keys KeyManager, logger *observability.Logger) Handler {
	return Handler{
		limits: limits,
		keys:   keys,
		logger: logger,
	}
}

// RegisterRoutes mounts settings on a user-authenticated group. Agent keys cannot reach these routes.
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	settings := group.Group("/settings")
	settings.GET("/safety-limits", h.HandleGetSafetyLimits)
	settings.PUT("/safety-limits", h.HandleUpdateSafetyLimits)
	settings.GET("/agent-keys", h.HandleListAgentKeys)
	settings.POST("/agent-keys", h.HandleCreateAgentKey)
	settings.DELETE("/agent-keys/:id", h.HandleRevokeAgentKey)
}

type UpdateSafetyLimitsRequest struct {
	MaxBidChangePct    float64  `json:"max_bid_change_pct" binding:"required,gt=0,lte=1000"`
	MaxBudgetChangePct float64  `json:"max_budget_change_pct" binding:"required,gt=0,lte=1000"`
	MinBidFloor        float64  `json:"min_bid_floor" binding:"required,gt=0"`
	MaxBidCeiling      float64  `json:"max_bid_ceiling" binding:"required,gt=0"`
	MaxDailySpend      *float64 `json:"max_daily_spend" binding:"omitempty,gt=0"`
}

type CreateAgentKeyRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

// userActor admits only human users
func (h *Handler) userActor(c *gin.Context) (audit.Actor, bool) {
	if c.GetString(audit.ContextKeyAgentKeyID) != "" {
		apierrors.Forbidden(c, "FORBIDDEN", "Settings are only available to users")
		return audit.Actor{}, false
	}
	id := c.GetString(audit.ContextKeyUserID)
	if id == "" {
		apierrors.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		return audit.Actor{}, false
	}
	return audit.UserActor(id), true
}

func (h *Handler) HandleGetSafetyLimits(c *gin.Context) {
	if _, ok := h.userActor(c); !ok {
		return
	}

	limits, err := h.limits.GetSafetyLimits(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, limits)
}

func (h *Handler) HandleUpdateSafetyLimits(c *gin.Context) {
	actor, ok := h.userActor(c)
	if !ok {
		return
	}

	var req UpdateSafetyLimitsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	limits, err := h.limits.UpdateSafetyLimits(c.Request.Context(), actor, processor.UpdateLimitsParams{
		MaxBidChangePct:    req.MaxBidChangePct,
		MaxBudgetChangePct: req.MaxBudgetChangePct,
		MinBidFloor:        req.MinBidFloor,
		MaxBidCeiling:      req.MaxBidCeiling,
		MaxDailySpend:      req.MaxDailySpend,
	})
	if err != nil {
		if errors.Is(err, processor.ErrInvalidLimits) {
			apierrors.BadRequest(c, "INVALID_LIMITS", err.Error())
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, limits)
}

func (h *Handler) HandleListAgentKeys(c *gin.Context) {
	if _, ok := h.userActor(c); !ok {
		return
	}

	keys, err := h.keys.ListKeys(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"keys": keys})
}

// HandleCreateAgentKey returns the plaintext key. It is not retrievable afterwards.
func (h *Handler) HandleCreateAgentKey(c *gin.Context) {
	actor, ok := h.userActor(c)
	if !ok {
		return
	}

	var req CreateAgentKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	key, err := h.keys.CreateKey(c.Request.Context(), actor, req.Name)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusCreated, key)
}

func (h *Handler) HandleRevokeAgentKey(c *gin.Context) {
	actor, ok := h.userActor(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid key ID")
		return
	}

	key, err := h.keys.RevokeKey(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, agent.ErrKeyNotFound) {
			apierrors.NotFound(c, "Agent key not found")
			return
		}
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, key)
}
