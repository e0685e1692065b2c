package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"adsync/internal/apierrors"
	"adsync/internal/audit"
	"adsync/internal/observability"
	"adsync/internal/store"

	"github.com/gin-gonic/gin"
)

type Querier interface {
	Query(ctx context.Context, filter store.AuditFilter) (audit.QueryResult, error)
}

type Handler struct {
	querier Querier
	logger  *observability.Logger
}

func New(querier Querier, logger *observability.Logger) Handler {
	return Handler{
		querier: querier,
		logger:  logger,
	}
}

// ListAuditRequest holds the query-string filters
type ListAuditRequest struct {
	ActionType string `form:"actionType" binding:"omitempty,max=64"`
	EntityType string `form:"entityType" binding:"omitempty,oneof=campaign ad_group keyword negative_keyword product_target profile rule safety_limit api_key"`
	EntityID   string `form:"entityId" binding:"omitempty,max=128"`
	ActorType  string `form:"actorType" binding:"omitempty,oneof=user agent rule system"`
	StartDate  string `form:"startDate"`
	EndDate    string `form:"endDate"`
	Limit      int    `form:"limit" binding:"omitempty,min=1"`
	Offset     int    `form:"offset" binding:"omitempty,min=0"`
}

// parseTime accepts RFC 3339 timestamps or bare dates. A bare end date covers the whole day.
func parseTime(value string, endOfDay bool) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", value)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

// HandleListAuditEntries handles GET /api/audit
func (h *Handler) HandleListAuditEntries(c *gin.Context) {
	ctx := c.Request.Context()

	var req ListAuditRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	start, err := parseTime(req.StartDate, false)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", err.Error())
		return
	}
	end, err := parseTime(req.EndDate, true)
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", err.Error())
		return
	}

	result, err := h.querier.Query(ctx, store.AuditFilter{
		ActionType: req.ActionType,
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		ActorType:  req.ActorType,
		StartDate:  start,
		EndDate:    end,
		Limit:      req.Limit,
		Offset:     req.Offset,
	})
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
