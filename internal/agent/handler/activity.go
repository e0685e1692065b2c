package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"adsync/internal/apierrors"
	"adsync/internal/observability"
	"adsync/internal/store"

	"github.com/gin-gonic/gin"
)

const (
	defaultHeartbeatStatus = "active"
	defaultMessageLimit    = 50
	maxMessageLimit        = 100
)

type HeartbeatRequest struct {
	Status string `json:"status" binding:"omitempty,max=64"`
}

type MessagesQuery struct {
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
	Before string `form:"before"`
}

type PostMessageRequest struct {
	Content  string                 `json:"content" binding:"required,max=10000"`
	Metadata map[string]interface{} `json:"metadata"`
}

// HandleHeartbeat records that the calling agent is alive. The body is optional.
func (h *Handler) HandleHeartbeat(c *gin.Context) {
	var req HeartbeatRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		apierrors.ValidationError(c, err)
		return
	}
	keyID, ok := AgentKeyID(c)
	if !ok {
		apierrors.Unauthorized(c, "INVALID_API_KEY", "Invalid or revoked API key")
		return
	}
	if req.Status == "" {
		req.Status = defaultHeartbeatStatus
	}

	hb, err := h.activity.RecordAgentHeartbeat(c.Request.Context(), keyID, req.Status)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"recorded": true, "timestamp": hb.CreatedAt})
}

// HandleListMessages pages backwards through the chat, returning messages oldest first
func (h *Handler) HandleListMessages(c *gin.Context) {
	var q MessagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	limit := q.Limit
	if limit == 0 {
		limit = defaultMessageLimit
	}
	limit = min(limit, maxMessageLimit)

	var before *time.Time
	if q.Before != "" {
		t, err := time.Parse(time.RFC3339, q.Before)
		if err != nil {
			apierrors.BadRequest(c, "INVALID_BEFORE", "before must be an RFC 3339 timestamp")
			return
		}
		before = &t
	}

	messages, err := h.activity.ListAgentMessages(c.Request.Context(), limit, before)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if messages == nil {
		messages = []store.AgentMessage{}
	}
	c.JSON(http.StatusOK, gin.H{"messages": messages, "count": len(messages)})
}

func (h *Handler) HandlePostAgentMessage(c *gin.Context) {
	h.postMessage(c, store.MessageRoleAgent)
}

func (h *Handler) HandlePostUserMessage(c *gin.Context) {
	h.postMessage(c, store.MessageRoleUser)
}

func (h *Handler) postMessage(c *gin.Context, role string) {
	ctx := c.Request.Context()

	var req PostMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	msg, err := h.activity.CreateAgentMessage(ctx, role, req.Content, store.JSONB(req.Metadata))
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	h.logger.Info(ctx, "agent chat message posted", observability.Field{Key: "role", Value: role})
	c.JSON(http.StatusCreated, gin.H{"message": msg})
}
