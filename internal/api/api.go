package api

import (
	"net/http"

	agentHandler "adsync/internal/agent/handler"
	auditHandler "adsync/internal/audit/handler"
	authHandler "adsync/internal/auth/handler"
	credentialsHandler "adsync/internal/credentials/handler"
	syncHandler "adsync/internal/datasync/handler"
	mutationHandler "adsync/internal/mutation/handler"
	"adsync/internal/ratelimit"
	rulesHandler "adsync/internal/rules/handler"
	settingsHandler "adsync/internal/settings/handler"

	"github.com/gin-gonic/gin"
)

// Handlers groups every HTTP surface the API mounts
type Handlers struct {
	Auth        authHandler.Handler
	Agent       agentHandler.Handler
	Audit       auditHandler.Handler
	Credentials credentialsHandler.Handler
	Mutation    mutationHandler.Handler
	Sync        syncHandler.Handler
	Rules       rulesHandler.Handler
	Settings    settingsHandler.Handler
	// AgentLimiter is optional; without it agent requests are not throttled
	AgentLimiter *ratelimit.Service
}

type API struct {
	router   *gin.RouterGroup
	handlers Handlers
}

func New(router *gin.RouterGroup, handlers Handlers) API {
	return API{
		router:   router,
		handlers: handlers,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	// Agent surface: X-Agent-Key, then per-key rate limiting
	agentMiddleware := []gin.HandlerFunc{a.handlers.Agent.RequireAgentKey}
	if a.handlers.AgentLimiter != nil {
		agentMiddleware = append(agentMiddleware, a.handlers.AgentLimiter.Middleware(agentHandler.AgentKeyID))
	}
	agentGroup := apiGroup.Group("/agent", agentMiddleware...)
	{
		a.handlers.Agent.RegisterRoutes(agentGroup)
		a.handlers.Mutation.RegisterRoutes(agentGroup)
		a.handlers.Sync.RegisterRoutes(agentGroup)
	}

	// Dashboard surface: bearer JWT
	userGroup := apiGroup.Group("", a.handlers.Auth.HandleJWTMiddleware)
	{
		a.handlers.Mutation.RegisterRoutes(userGroup)
		a.handlers.Sync.RegisterRoutes(userGroup)
		a.handlers.Rules.RegisterRoutes(userGroup)
		a.handlers.Credentials.RegisterRoutes(userGroup)
		a.handlers.Settings.RegisterRoutes(userGroup)
		a.handlers.Agent.RegisterDashboardRoutes(userGroup)
		userGroup.GET("/audit", a.handlers.Audit.HandleListAuditEntries)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
