package audit

import (
	"github.com/gin-gonic/gin"
)

// Gin context keys set by the authentication middlewares
const (
	ContextKeyUserID     = "User-ID"
	ContextKeyAgentKeyID = "Agent-Key-ID"
)

// ActorFromRequest attributes a request to the agent key or user that made it.
// Agent keys win when both are present.
func ActorFromRequest(c *gin.Context) (Actor, bool) {
	if id := c.GetString(ContextKeyAgentKeyID); id != "" {
		return AgentActor(id), true
	}
	if id := c.GetString(ContextKeyUserID); id != "" {
		return UserActor(id), true
	}
	return Actor{}, false
}
