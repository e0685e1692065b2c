package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"

	"adsync/internal/apierrors"
	"adsync/internal/audit"
	"adsync/internal/observability"
	"adsync/internal/rules/processor"
	"adsync/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Ruler is the rule engine as seen by the HTTP layer
type Ruler interface {
	CreateRule(ctx context.Context, actor audit.Actor, params processor.CreateRuleParams) (processor.RuleView, error)
	CreateFromTemplate(ctx context.Context, actor audit.Actor, templateID string) (processor.RuleView, error)
	UpdateRule(ctx context.Context, id uuid.UUID, params processor.UpdateRuleParams) (processor.RuleView, error)
	ToggleRule(ctx context.Context, actor audit.Actor, id uuid.UUID) (processor.RuleView, error)
	DeleteRule(ctx context.Context, actor audit.Actor, id uuid.UUID) error
	GetRule(ctx context.Context, id uuid.UUID) (processor.RuleView, error)
	ListRules(ctx context.Context) ([]processor.RuleView, error)
	ListExecutions(ctx context.Context, id uuid.UUID) ([]store.RuleExecution, error)
	RunRule(ctx context.Context, id uuid.UUID) (processor.RunResult, error)
	RunAllRules(ctx context.Context) ([]processor.RunResult, error)
}

type Handler struct {
	ruler  Ruler
	logger *observability.Logger
}

func New(ruler Ruler, logger *observability.Logger) Handler {
	return Handler{
		ruler:  ruler,
		logger: logger,
	}
}

// RegisterRoutes mounts the rule endpoints on a user-authenticated group
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	rules := group.Group("/rules")
	rules.GET("", h.HandleListRules)
	rules.POST("", h.HandleCreateRule)
	rules.GET("/templates", h.HandleListTemplates)
	rules.POST("/templates/:templateId", h.HandleCreateFromTemplate)
	rules.POST("/run", h.HandleRunAllRules)
	rules.GET("/:id", h.HandleGetRule)
	rules.PUT("/:id", h.HandleUpdateRule)
	rules.DELETE("/:id", h.HandleDeleteRule)
	rules.POST("/:id/toggle", h.HandleToggleRule)
	rules.POST("/:id/run", h.HandleRunRule)
	rules.GET("/:id/executions", h.HandleListExecutions)
}

type CreateRuleRequest struct {
	Name            string   `json:"name" binding:"required,max=255"`
	Description     *string  `json:"description" binding:"omitempty,max=1000"`
	ConditionType   string   `json:"condition_type" binding:"required,oneof=acos_above acos_below roas_above roas_below clicks_above impressions_above orders_below spend_above"`
	ConditionValue  *float64 `json:"condition_value" binding:"required,gte=0"`
	ConditionEntity string   `json:"condition_entity" binding:"omitempty,oneof=keyword campaign"`
	ActionType      string   `json:"action_type" binding:"required,oneof=decrease_bid increase_bid pause enable"`
	ActionValue     *float64 `json:"action_value" binding:"omitempty,gt=0,lt=100"`
	CooldownHours   *int     `json:"cooldown_hours" binding:"omitempty,gte=0,max=8760"`
}

type UpdateRuleRequest struct {
	Name           *string  `json:"name" binding:"omitempty,max=255"`
	Description    *string  `json:"description" binding:"omitempty,max=1000"`
	ConditionType  *string  `json:"condition_type" binding:"omitempty,oneof=acos_above acos_below roas_above roas_below clicks_above impressions_above orders_below spend_above"`
	ConditionValue *float64 `json:"condition_value" binding:"omitempty,gte=0"`
	ActionType     *string  `json:"action_type" binding:"omitempty,oneof=decrease_bid increase_bid pause enable"`
	ActionValue    *float64 `json:"action_value" binding:"omitempty,gt=0,lt=100"`
	CooldownHours  *int     `json:"cooldown_hours" binding:"omitempty,gte=0,max=8760"`
	Enabled        *bool    `json:"enabled"`
}

func (h *Handler) actor(c *gin.Context) (audit.Actor, bool) {
	actor, ok := audit.ActorFromRequest(c)
	if !ok {
		apierrors.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
	}
	return actor, ok
}

func (h *Handler) ruleID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "INVALID_INPUT", "Invalid rule ID")
		return uuid.Nil, false
	}
	return id, true
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, processor.ErrRuleNotFound):
		apierrors.NotFound(c, "Rule not found")
	case errors.Is(err, processor.ErrTemplateNotFound):
		apierrors.NotFound(c, "Template not found")
	case errors.Is(err, processor.ErrInvalidRule):
		apierrors.BadRequest(c, "INVALID_RULE", err.Error())
	case errors.Is(err, processor.ErrNotConfigured):
		apierrors.BadRequest(c, "AMAZON_NOT_CONFIGURED", "No Amazon profile connected. Please connect and select a profile in Settings.")
	default:
		apierrors.InternalError(c, err)
	}
}

func (h *Handler) HandleListRules(c *gin.Context) {
	rules, err := h.ruler.ListRules(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"rules": rules})
}

func (h *Handler) HandleCreateRule(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	entity := req.ConditionEntity
	if entity == "" {
		entity = audit.EntityKeyword
	}

	rule, err := h.ruler.CreateRule(c.Request.Context(), actor, processor.CreateRuleParams{
		Name:            req.Name,
		Description:     req.Description,
		ConditionType:   req.ConditionType,
		ConditionValue:  *req.ConditionValue,
		ConditionEntity: entity,
		ActionType:      req.ActionType,
		ActionValue:     req.ActionValue,
		CooldownHours:   req.CooldownHours,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *Handler) HandleListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": processor.Templates()})
}

func (h *Handler) HandleCreateFromTemplate(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	rule, err := h.ruler.CreateFromTemplate(c.Request.Context(), actor, c.Param("templateId"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rule)
}

func (h *Handler) HandleGetRule(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	rule, err := h.ruler.GetRule(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *Handler) HandleUpdateRule(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	var req UpdateRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	rule, err := h.ruler.UpdateRule(c.Request.Context(), id, processor.UpdateRuleParams{
		Name:           req.Name,
		Description:    req.Description,
		ConditionType:  req.ConditionType,
		ConditionValue: req.ConditionValue,
		ActionType:     req.ActionType,
		ActionValue:    req.ActionValue,
		CooldownHours:  req.CooldownHours,
		Enabled:        req.Enabled,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

func (h *Handler) HandleDeleteRule(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	if err := h.ruler.DeleteRule(c.Request.Context(), actor, id); err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) HandleToggleRule(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	rule, err := h.ruler.ToggleRule(c.Request.Context(), actor, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, rule)
}

// HandleRunRule evaluates one rule synchronously and returns what it did
func (h *Handler) HandleRunRule(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	run, err := h.ruler.RunRule(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, run)
}

func (h *Handler) HandleRunAllRules(c *gin.Context) {
	ctx := c.Request.Context()

	runs, err := h.ruler.RunAllRules(ctx)
	if err != nil {
		h.handleError(c, err)
		return
	}

	h.logger.Info(ctx, "rules run requested", observability.Field{Key: "rules", Value: len(runs)})
	c.JSON(http.StatusOK, gin.H{"runs": runs})
}

func (h *Handler) HandleListExecutions(c *gin.Context) {
	id, ok := h.ruleID(c)
	if !ok {
		return
	}

	execs, err := h.ruler.ListExecutions(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"executions": execs})
}
