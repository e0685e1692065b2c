package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"

	"adsync/internal/apierrors"
	"adsync/internal/audit"
	"adsync/internal/datasync/processor"
	"adsync/internal/observability"
	"adsync/internal/store"

	"github.com/gin-gonic/gin"
)

type Syncer interface {
	RequestSync(ctx context.Context, actor audit.Actor) error
	ActiveStatus(ctx context.Context) (store.SyncState, error)
}

type Handler struct {
	syncer Syncer
	logger *observability.Logger
}

func New(syncer Syncer, logger *observability.Logger) Handler {
	return Handler{
		syncer: syncer,
		logger: logger,
	}
}

// RegisterRoutes mounts POST /sync and GET /sync/status
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/sync", h.HandleRequestSync)
	group.GET("/sync/status", h.HandleGetStatus)
}

// HandleRequestSync queues a sync pass and returns immediately
func (h *Handler) HandleRequestSync(c *gin.Context) {
	ctx := c.Request.Context()

	actor, ok := audit.ActorFromRequest(c)
	if !ok {
		apierrors.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
		return
	}

	err := h.syncer.RequestSync(ctx, actor)
	if err != nil {
		switch {
		case errors.Is(err, processor.ErrAlreadySyncing):
			apierrors.Conflict(c, "SYNC_IN_PROGRESS", "A sync is already in progress")
		case errors.Is(err, processor.ErrNotConfigured):
			apierrors.BadRequest(c, "AMAZON_NOT_CONFIGURED", "No Amazon profile connected. Please connect and select a profile in Settings.")
		default:
			apierrors.InternalError(c, err)
		}
		return
	}

	h.logger.Info(ctx, "sync queued", observability.Field{Key: "actor_type", Value: actor.Type})
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Sync started"})
}

// HandleGetStatus returns the active profile's sync state
func (h *Handler) HandleGetStatus(c *gin.Context) {
	state, err := h.syncer.ActiveStatus(c.Request.Context())
	if err != nil {
		if errors.Is(err, processor.ErrNotConfigured) {
			apierrors.BadRequest(c, "AMAZON_NOT_CONFIGURED", "No Amazon profile connected. Please connect and select a profile in Settings.")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, state)
}
