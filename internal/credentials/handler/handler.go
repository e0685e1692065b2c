package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"

	"adsync/internal/apierrors"
	"adsync/internal/clients/amazonads"
	"adsync/internal/credentials/processor"
	"adsync/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Connector interface {
	AuthorizationURL(state string) string
	Connect(ctx context.Context, code string) (processor.Status, error)
	ListProfiles(ctx context.Context) ([]amazonads.Profile, error)
	SelectProfile(ctx context.Context, profileID string) (processor.Status, error)
	Status(ctx context.Context) (processor.Status, error)
}

type Handler struct {
	connector Connector
	logger    *observability.Logger
}

func New(connector Connector, logger *observability.Logger) Handler {
	return Handler{
		connector: connector,
		logger:    logger,
	}
}

// RegisterRoutes mounts the Amazon connection endpoints on a user-authenticated group
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	amazon := group.Group("/amazon")
	amazon.GET("/status", h.HandleStatus)
	amazon.GET("/authorize", h.HandleAuthorize)
	amazon.POST("/connect", h.HandleConnect)
	amazon.GET("/profiles", h.HandleListProfiles)
	amazon.POST("/profiles/select", h.HandleSelectProfile)
}

type ConnectRequest struct {
	Code string `json:"code" binding:"required,max=512"`
}

type SelectProfileRequest struct {
	ProfileID string `json:"profileId" binding:"required,max=64"`
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrNotConnected), errors.Is(err, processor.ErrNoProfile):
		apierrors.BadRequest(c, "AMAZON_NOT_CONFIGURED", processor.NotConfiguredMessage)
	case errors.Is(err, processor.ErrProfileNotFound):
		apierrors.NotFound(c, "Profile not found for this Amazon account")
	case errors.Is(err, processor.ErrCodeExchange):
		apierrors.BadRequest(c, "AMAZON_AUTH_FAILED", "Amazon rejected the authorization code")
	case errors.Is(err, amazonads.ErrTokenRefresh):
		apierrors.Unauthorized(c, "AMAZON_TOKEN_EXPIRED", "Amazon authorization expired. Please reconnect in Settings.")
	default:
		apierrors.InternalError(c, err)
	}
}

func (h *Handler) HandleStatus(c *gin.Context) {
	status, err := h.connector.Status(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

// HandleAuthorize returns the Login with Amazon consent URL with a fresh state value
func (h *Handler) HandleAuthorize(c *gin.Context) {
	state := uuid.NewString()
	c.JSON(http.StatusOK, gin.H{
		"url":   h.connector.AuthorizationURL(state),
		"state": state,
	})
}

func (h *Handler) HandleConnect(c *gin.Context) {
	var req ConnectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	status, err := h.connector.Connect(c.Request.Context(), req.Code)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

func (h *Handler) HandleListProfiles(c *gin.Context) {
	profiles, err := h.connector.ListProfiles(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"profiles": profiles})
}

func (h *Handler) HandleSelectProfile(c *gin.Context) {
	var req SelectProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	status, err := h.connector.SelectProfile(c.Request.Context(), req.ProfileID)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}
