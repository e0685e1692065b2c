package handler

//go:generate go run go.uber.org/mock/mockgen@latest -source=handler.go -destination=mocks_test.go -package=handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"adsync/internal/agent/processor"
	"adsync/internal/apierrors"
	"adsync/internal/audit"
	credentials "adsync/internal/credentials/processor"
	"adsync/internal/observability"
	"adsync/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// HeaderAgentKey carries the agent's API key
const HeaderAgentKey = "X-Agent-Key"

type Authenticator interface {
	Authenticate(ctx context.Context, rawKey string) (store.AgentAPIKey, error)
}

// Reader is the read-only data the agent surface exposes
type Reader interface {
	ListCampaignPerformance(ctx context.Context, filter store.CampaignFilter) ([]store.CampaignPerformance, error)
	ListKeywordPerformance(ctx context.Context, filter store.KeywordFilter) ([]store.KeywordPerformance, error)
	SumCampaignMetrics(ctx context.Context, profileID, from, to string) (store.MetricTotals, error)
	CountCampaigns(ctx context.Context, profileID string) (store.CampaignCounts, error)
	GetSyncState(ctx context.Context, profileID string) (store.SyncState, error)
}

// Activity records agent liveness and the chat between the agent and the dashboard user
type Activity interface {
	RecordAgentHeartbeat(ctx context.Context, keyID uuid.UUID, status string) (store.AgentHeartbeat, error)
	GetLatestAgentHeartbeat(ctx context.Context) (store.AgentHeartbeat, error)
	CreateAgentMessage(ctx context.Context, role, content string, metadata store.JSONB) (store.AgentMessage, error)
	ListAgentMessages(ctx context.Context, limit int, before *time.Time) ([]store.AgentMessage, error)
}

// Connection reports the Amazon connection the agent acts through
type Connection interface {
	Status(ctx context.Context) (credentials.Status, error)
}

type Handler struct {
	auth       Authenticator
	reader     Reader
	activity   Activity
	connection Connection
	logger     *observability.Logger
	now        func() time.Time
}

func New(auth Authenticator, reader Reader, activity Activity, connection Connection, logger *observability.Logger) Handler {
	return Handler{
		auth:       auth,
		reader:     reader,
		activity:   activity,
		connection: connection,
		logger:     logger,
		now:        time.Now,
	}
}

// RequireAgentKey authenticates X-Agent-Key and attributes the request to the key
func (h *Handler) RequireAgentKey(c *gin.Context) {
	ctx := c.Request.Context()

	rawKey := c.GetHeader(HeaderAgentKey)
	if rawKey == "" {
		apierrors.Unauthorized(c, "MISSING_API_KEY", "X-Agent-Key header is required")
		return
	}

	key, err := h.auth.Authenticate(ctx, rawKey)
	if err != nil {
		if errors.Is(err, processor.ErrInvalidKey) {
			h.logger.Warn(ctx, "rejected agent key")
			apierrors.Unauthorized(c, "INVALID_API_KEY", "Invalid or revoked API key")
			return
		}
		apierrors.InternalError(c, err)
		return
	}

	c.Set(audit.ContextKeyAgentKeyID, key.ID.String())
	c.Request = c.Request.WithContext(observability.WithFields(ctx,
		observability.Field{Key: "agent_key_id", Value: key.ID.String()},
	))
	c.Next()
}

// AgentKeyID resolves the key set by RequireAgentKey, for per-key rate limiting
func AgentKeyID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.GetString(audit.ContextKeyAgentKeyID))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// RegisterRoutes mounts the agent endpoints; the group must already run RequireAgentKey
func (h *Handler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/status", h.HandleStatus)
	group.POST("/heartbeat", h.HandleHeartbeat)
	group.GET("/metrics", h.HandleMetrics)
	group.GET("/campaigns", h.HandleListCampaigns)
	group.GET("/keywords", h.HandleListKeywords)
	group.GET("/messages", h.HandleListMessages)
	group.POST("/messages", h.HandlePostAgentMessage)
}

// RegisterDashboardRoutes mounts the user side of the agent chat on a user-authenticated group
func (h *Handler) RegisterDashboardRoutes(group *gin.RouterGroup) {
	group.GET("/messages", h.HandleListMessages)
	group.POST("/messages", h.HandlePostUserMessage)
}

type CampaignQuery struct {
	Type  string `form:"type" binding:"omitempty,oneof=SP SB SD"`
	State string `form:"state" binding:"omitempty,oneof=enabled paused archived"`
	Range string `form:"range" binding:"omitempty,oneof=today 7d 30d 90d lifetime"`
}

type KeywordQuery struct {
	CampaignID string `form:"campaignId" binding:"omitempty,max=64"`
	AdGroupID  string `form:"adGroupId" binding:"omitempty,max=64"`
	Range      string `form:"range" binding:"omitempty,oneof=today 7d 30d 90d lifetime"`
}

type statusResponse struct {
	Amazon credentials.Status `json:"amazon"`
	Sync   *store.SyncState   `json:"sync"`
	Agent  agentStatus        `json:"agent"`
}

type agentStatus struct {
	LastHeartbeat *time.Time `json:"last_heartbeat"`
	LastStatus    *string    `json:"last_status"`
}

var rangeDays = map[string]int{
	"today": 1,
	"7d":    7,
	"30d":   30,
	"90d":   90,
}

// since returns the first day of the range as YYYYMMDD, empty for lifetime
func (h *Handler) since(rangeKey string) string {
	if rangeKey == "" {
		rangeKey = "30d"
	}
	days, ok := rangeDays[rangeKey]
	if !ok {
		return ""
	}
	return h.now().AddDate(0, 0, -days+1).Format("20060102")
}

func (h *Handler) HandleStatus(c *gin.Context) {
	ctx := c.Request.Context()

	conn, err := h.connection.Status(ctx)
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}

	resp := statusResponse{Amazon: conn}
	if conn.ProfileID != nil {
		state, err := h.reader.GetSyncState(ctx, *conn.ProfileID)
		switch {
		case err == nil:
			resp.Sync = &state
		case !errors.Is(err, store.ErrNotFound):
			apierrors.InternalError(c, err)
			return
		}
	}

	hb, err := h.activity.GetLatestAgentHeartbeat(ctx)
	switch {
	case err == nil:
		resp.Agent = agentStatus{LastHeartbeat: &hb.CreatedAt, LastStatus: &hb.Status}
	case !errors.Is(err, store.ErrNotFound):
		apierrors.InternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// profileID resolves the selected profile, writing a 400 when there is none
func (h *Handler) profileID(c *gin.Context) (string, bool) {
	conn, err := h.connection.Status(c.Request.Context())
	if err != nil {
		apierrors.InternalError(c, err)
		return "", false
	}
	if conn.ProfileID == nil {
		apierrors.BadRequest(c, "AMAZON_NOT_CONFIGURED", credentials.NotConfiguredMessage)
		return "", false
	}
	return *conn.ProfileID, true
}

func (h *Handler) HandleListCampaigns(c *gin.Context) {
	var q CampaignQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}

	campaigns, err := h.reader.ListCampaignPerformance(c.Request.Context(), store.CampaignFilter{
		ProfileID:    profileID,
		CampaignType: q.Type,
		State:        q.State,
		Since:        h.since(q.Range),
	})
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if campaigns == nil {
		campaigns = []store.CampaignPerformance{}
	}

	c.JSON(http.StatusOK, gin.H{"campaigns": campaigns, "total": len(campaigns)})
}

func (h *Handler) HandleListKeywords(c *gin.Context) {
	var q KeywordQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		apierrors.ValidationError(c, err)
		return
	}
	profileID, ok := h.profileID(c)
	if !ok {
		return
	}

	keywords, err := h.reader.ListKeywordPerformance(c.Request.Context(), store.KeywordFilter{
		ProfileID:  profileID,
		CampaignID: q.CampaignID,
		AdGroupID:  q.AdGroupID,
		Since:      h.since(q.Range),
	})
	if err != nil {
		apierrors.InternalError(c, err)
		return
	}
	if keywords == nil {
		keywords = []store.KeywordPerformance{}
	}

	c.JSON(http.StatusOK, gin.H{"keywords": keywords, "total": len(keywords)})
}
