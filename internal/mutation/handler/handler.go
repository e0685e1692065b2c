package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"

	"adsync/internal/apierrors"
	"adsync/internal/audit"
	"adsync/internal/clients/amazonads"
	"adsync/internal/mutation/processor"
	"adsync/internal/observability"

	"github.com/gin-gonic/gin"
)

// Mutator is the mutation pipeline as seen by the HTTP layer
type Mutator interface {
	ChangeBid(ctx context.Context, actor audit.Actor, req processor.ChangeBidRequest) (processor.Result, error)
	ChangeBudget(ctx context.Context, actor audit.Actor, req processor.ChangeBudgetRequest) (processor.Result, error)
	ChangeState(ctx context.Context, actor audit.Actor, req processor.ChangeStateRequest) (processor.Result, error)
	CreateCampaign(ctx context.Context, actor audit.Actor, req processor.CreateCampaignRequest) (processor.Result, error)
	CreateAdGroup(ctx context.Context, actor audit.Actor, req processor.CreateAdGroupRequest) (processor.Result, error)
	CreateKeywords(ctx context.Context, actor audit.Actor, req processor.CreateKeywordsRequest) (processor.Result, error)
	CreateNegativeKeyword(ctx context.Context, actor audit.Actor, req processor.CreateNegativeKeywordRequest) (processor.Result, error)
	CreateProductTargets(ctx context.Context, actor audit.Actor, req processor.CreateProductTargetsRequest) (processor.Result, error)
	RemoveNegativeKeyword(ctx context.Context, actor audit.Actor, id, reason string) (processor.Result, error)
	RemoveProductTarget(ctx context.Context, actor audit.Actor, id, reason string) (processor.Result, error)
}

type Handler struct {
	mutator Mutator
	logger  *observability.Logger
}

func New(mutator Mutator, logger *observability.Logger) Handler {
	return Handler{
		mutator: mutator,
		logger:  logger,
	}
}

// RegisterRoutes mounts the mutation endpoints on an already-authenticated group
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/actions/bid", h.HandleChangeBid)
	group.POST("/actions/budget", h.HandleChangeBudget)
	group.POST("/actions/state", h.HandleChangeState)
	group.POST("/campaigns", h.HandleCreateCampaign)
	group.POST("/ad-groups", h.HandleCreateAdGroup)
	group.POST("/keywords", h.HandleCreateKeywords)
	group.POST("/negative-keywords", h.HandleCreateNegativeKeyword)
	group.DELETE("/negative-keywords/:id", h.HandleRemoveNegativeKeyword)
	group.POST("/product-targets", h.HandleCreateProductTargets)
	group.DELETE("/product-targets/:id", h.HandleRemoveProductTarget)
}

type ChangeBidRequest struct {
	EntityType string  `json:"entityType" binding:"omitempty,oneof=keyword product_target"`
	EntityID   string  `json:"entityId" binding:"required,max=64"`
	Bid        float64 `json:"bid" binding:"required,gt=0"`
	Reason     string  `json:"reason" binding:"max=500"`
}

type ChangeBudgetRequest struct {
	CampaignID string  `json:"campaignId" binding:"required,max=64"`
	Budget     float64 `json:"budget" binding:"required,gt=0"`
	Reason     string  `json:"reason" binding:"max=500"`
}

type ChangeStateRequest struct {
	EntityType string `json:"entityType" binding:"required,oneof=campaign ad_group keyword negative_keyword product_target"`
	EntityID   string `json:"entityId" binding:"required,max=64"`
	State      string `json:"state" binding:"required,oneof=enabled paused archived"`
	Reason     string `json:"reason" binding:"max=500"`
}

type CreateCampaignRequest struct {
	Type            string  `json:"type" binding:"required,oneof=SP SB SD"`
	Name            string  `json:"name" binding:"required,max=255"`
	Budget          float64 `json:"budget" binding:"required,gt=0"`
	StartDate       string  `json:"startDate" binding:"omitempty,len=8,numeric"`
	EndDate         string  `json:"endDate" binding:"omitempty,len=8,numeric"`
	TargetingType   string  `json:"targetingType" binding:"omitempty,oneof=MANUAL AUTO"`
	BiddingStrategy string  `json:"biddingStrategy" binding:"omitempty,max=64"`
	BrandEntityID   string  `json:"brandEntityId" binding:"omitempty,max=64"`
	Tactic          string  `json:"tactic" binding:"omitempty,oneof=T00020 T00030"`
	CostType        string  `json:"costType" binding:"omitempty,oneof=cpc vcpm"`
	Reason          string  `json:"reason" binding:"max=500"`
}

type CreateAdGroupRequest struct {
	CampaignID      string  `json:"campaignId" binding:"required,max=64"`
	Name            string  `json:"name" binding:"required,max=255"`
	DefaultBid      float64 `json:"defaultBid" binding:"omitempty,gt=0"`
	BidOptimization string  `json:"bidOptimization" binding:"omitempty,oneof=clicks conversions reach"`
	Reason          string  `json:"reason" binding:"max=500"`
}

type KeywordInput struct {
	KeywordText string   `json:"keywordText" binding:"required,max=255"`
	MatchType   string   `json:"matchType" binding:"required,oneof=exact phrase broad"`
	Bid         *float64 `json:"bid" binding:"omitempty,gt=0"`
}

type CreateKeywordsRequest struct {
	AdGroupID string         `json:"adGroupId" binding:"required,max=64"`
	Keywords  []KeywordInput `json:"keywords" binding:"required,min=1,max=100,dive"`
	Reason    string         `json:"reason" binding:"max=500"`
}

type CreateNegativeKeywordRequest struct {
	CampaignID  string `json:"campaignId" binding:"required,max=64"`
	AdGroupID   string `json:"adGroupId" binding:"omitempty,max=64"`
	KeywordText string `json:"keywordText" binding:"required,max=255"`
	MatchType   string `json:"matchType" binding:"required,oneof=negativeExact negativePhrase"`
	Reason      string `json:"reason" binding:"max=500"`
}

type ExpressionInput struct {
	Type  string `json:"type" binding:"required,max=64"`
	Value string `json:"value" binding:"max=255"`
}

type TargetInput struct {
	Expression []ExpressionInput `json:"expression" binding:"required,min=1,dive"`
	Bid        *float64          `json:"bid" binding:"omitempty,gt=0"`
}

type CreateProductTargetsRequest struct {
	AdGroupID string        `json:"adGroupId" binding:"required,max=64"`
	Targets   []TargetInput `json:"targets" binding:"required,min=1,max=100,dive"`
	Reason    string        `json:"reason" binding:"max=500"`
}

// errorResponse keeps the {error, code} shape of apierrors while carrying the structured result
type errorResponse struct {
	processor.Result
	Code string `json:"code"`
}

// actor resolves the caller set by the user or agent-key middleware
func (h *Handler) actor(c *gin.Context) (audit.Actor, bool) {
	actor, ok := audit.ActorFromRequest(c)
	if !ok {
		apierrors.Unauthorized(c, "UNAUTHORIZED", "Unauthorized")
	}
	return actor, ok
}

// respond writes the pipeline result, mapping each failure kind to a status code
func (h *Handler) respond(c *gin.Context, successStatus int, result processor.Result, err error) {
	if err == nil {
		c.JSON(successStatus, result)
		return
	}

	var status int
	var code string
	switch {
	case errors.Is(err, processor.ErrSafetyRejected):
		status, code = http.StatusUnprocessableEntity, "SAFETY_LIMIT_EXCEEDED"
	case errors.Is(err, processor.ErrEntityNotFound):
		status, code = http.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, processor.ErrInvalidInput):
		status, code = http.StatusBadRequest, "INVALID_INPUT"
	case errors.Is(err, processor.ErrUnsupported):
		status, code = http.StatusBadRequest, "UNSUPPORTED_OPERATION"
	case errors.Is(err, processor.ErrNotConfigured):
		status, code = http.StatusBadRequest, "AMAZON_NOT_CONFIGURED"
	case errors.Is(err, processor.ErrRemoteRejected):
		status, code = http.StatusBadGateway, "REMOTE_REJECTED"
	default:
		apierrors.InternalError(c, err)
		return
	}

	h.logger.WarnWithError(c.Request.Context(), "mutation failed", err)
	c.AbortWithStatusJSON(status, errorResponse{Result: result, Code: code})
}

// HandleChangeBid handles POST /actions/bid
func (h *Handler) HandleChangeBid(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req ChangeBidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	if req.EntityType == "" {
		req.EntityType = audit.EntityKeyword
	}

	result, err := h.mutator.ChangeBid(c.Request.Context(), actor, processor.ChangeBidRequest{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		Bid:        req.Bid,
		Reason:     req.Reason,
	})
	h.respond(c, http.StatusOK, result, err)
}

// HandleChangeBudget handles POST /actions/budget
func (h *Handler) HandleChangeBudget(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req ChangeBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.mutator.ChangeBudget(c.Request.Context(), actor, processor.ChangeBudgetRequest{
		CampaignID: req.CampaignID,
		Budget:     req.Budget,
		Reason:     req.Reason,
	})
	h.respond(c, http.StatusOK, result, err)
}

// HandleChangeState handles POST /actions/state
func (h *Handler) HandleChangeState(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req ChangeStateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.mutator.ChangeState(c.Request.Context(), actor, processor.ChangeStateRequest{
		EntityType: req.EntityType,
		EntityID:   req.EntityID,
		State:      req.State,
		Reason:     req.Reason,
	})
	h.respond(c, http.StatusOK, result, err)
}

// HandleCreateCampaign handles POST /campaigns
func (h *Handler) HandleCreateCampaign(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.mutator.CreateCampaign(c.Request.Context(), actor, processor.CreateCampaignRequest{
		Type:            amazonads.CampaignType(req.Type),
		Name:            req.Name,
		Budget:          req.Budget,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TargetingType:   req.TargetingType,
		BiddingStrategy: req.BiddingStrategy,
		BrandEntityID:   req.BrandEntityID,
		Tactic:          req.Tactic,
		CostType:        req.CostType,
		Reason:          req.Reason,
	})
	h.respond(c, http.StatusCreated, result, err)
}

// HandleCreateAdGroup handles POST /ad-groups
func (h *Handler) HandleCreateAdGroup(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateAdGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.mutator.CreateAdGroup(c.Request.Context(), actor, processor.CreateAdGroupRequest{
		CampaignID:      req.CampaignID,
		Name:            req.Name,
		DefaultBid:      req.DefaultBid,
		BidOptimization: req.BidOptimization,
		Reason:          req.Reason,
	})
	h.respond(c, http.StatusCreated, result, err)
}

// HandleCreateKeywords handles POST /keywords
func (h *Handler) HandleCreateKeywords(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateKeywordsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	keywords := make([]processor.KeywordSpec, len(req.Keywords))
	for i, k := range req.Keywords {
		keywords[i] = processor.KeywordSpec{KeywordText: k.KeywordText, MatchType: k.MatchType, Bid: k.Bid}
	}

	result, err := h.mutator.CreateKeywords(c.Request.Context(), actor, processor.CreateKeywordsRequest{
		AdGroupID: req.AdGroupID,
		Keywords:  keywords,
		Reason:    req.Reason,
	})
	h.respond(c, http.StatusCreated, result, err)
}

// HandleCreateNegativeKeyword handles POST /negative-keywords
func (h *Handler) HandleCreateNegativeKeyword(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateNegativeKeywordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	result, err := h.mutator.CreateNegativeKeyword(c.Request.Context(), actor, processor.CreateNegativeKeywordRequest{
		CampaignID:  req.CampaignID,
		AdGroupID:   req.AdGroupID,
		KeywordText: req.KeywordText,
		MatchType:   req.MatchType,
		Reason:      req.Reason,
	})
	h.respond(c, http.StatusCreated, result, err)
}

// HandleRemoveNegativeKeyword handles DELETE /negative-keywords/:id
func (h *Handler) HandleRemoveNegativeKeyword(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	result, err := h.mutator.RemoveNegativeKeyword(c.Request.Context(), actor, c.Param("id"), c.Query("reason"))
	h.respond(c, http.StatusOK, result, err)
}

// HandleCreateProductTargets handles POST /product-targets
func (h *Handler) HandleCreateProductTargets(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateProductTargetsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.ValidationError(c, err)
		return
	}

	targets := make([]processor.TargetSpec, len(req.Targets))
	for i, t := range req.Targets {
		expression := make([]amazonads.TargetExpression, len(t.Expression))
		for j, e := range t.Expression {
			expression[j] = amazonads.TargetExpression{Type: e.Type, Value: e.Value}
		}
		targets[i] = processor.TargetSpec{Expression: expression, Bid: t.Bid}
	}

	result, err := h.mutator.CreateProductTargets(c.Request.Context(), actor, processor.CreateProductTargetsRequest{
		AdGroupID: req.AdGroupID,
		Targets:   targets,
		Reason:    req.Reason,
	})
	h.respond(c, http.StatusCreated, result, err)
}

// HandleRemoveProductTarget handles DELETE /product-targets/:id
func (h *Handler) HandleRemoveProductTarget(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	result, err := h.mutator.RemoveProductTarget(c.Request.Context(), actor, c.Param("id"), c.Query("reason"))
	h.respond(c, http.StatusOK, result, err)
}
