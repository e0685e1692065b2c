package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const agentHeartbeatColumns = `id, agent_key_id, status, created_at`

const sqlCreateAgentHeartbeat = `
INSERT INTO agent_heartbeats (agent_key_id, status)
VALUES ($1, $2)
RETURNING ` + agentHeartbeatColumns

// RecordAgentHeartbeat stores a liveness ping from an agent key
func (s *Store) RecordAgentHeartbeat(ctx context.Context, keyID uuid.UUID, status string) (AgentHeartbeat, error) {
	var hb AgentHeartbeat
	if err := s.db.GetContext(ctx, &hb, sqlCreateAgentHeartbeat, keyID, status); err != nil {
		s.logger.Error(ctx, "failed to record agent heartbeat", err)
		return AgentHeartbeat{}, fmt.Errorf("failed to record agent heartbeat: %w", err)
	}
	return hb, nil
}

const sqlGetLatestAgentHeartbeat = `
SELECT ` + agentHeartbeatColumns + `
FROM agent_heartbeats
ORDER BY created_at DESC
LIMIT 1
`

// GetLatestAgentHeartbeat returns the most recent heartbeat from any key
func (s *Store) GetLatestAgentHeartbeat(ctx context.Context) (AgentHeartbeat, error) {
	var hb AgentHeartbeat
	err := s.db.GetContext(ctx, &hb, sqlGetLatestAgentHeartbeat)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AgentHeartbeat{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get agent heartbeat", err)
		return AgentHeartbeat{}, fmt.Errorf("failed to get agent heartbeat: %w", err)
	}
	return hb, nil
}

const agentMessageColumns = `id, role, content, metadata, created_at`

const sqlCreateAgentMessage = `
INSERT INTO agent_messages (role, content, metadata)
VALUES ($1, $2, $3)
RETURNING ` + agentMessageColumns

func (s *Store) CreateAgentMessage(ctx context.Context, role, content string, metadata JSONB) (AgentMessage, error) {
	var msg AgentMessage
	if err := s.db.GetContext(ctx, &msg, sqlCreateAgentMessage, role, content, metadata); err != nil {
		s.logger.Error(ctx, "failed to create agent message", err)
		return AgentMessage{}, fmt.Errorf("failed to create agent message: %w", err)
	}
	return msg, nil
}

const sqlListAgentMessages = `
SELECT ` + agentMessageColumns + `
FROM (
    SELECT ` + agentMessageColumns + `
    FROM agent_messages
    WHERE $1::timestamptz IS NULL OR created_at < $1
    ORDER BY created_at DESC
    LIMIT $2
) recent
ORDER BY created_at ASC
`

// ListAgentMessages returns the newest limit messages older than before, oldest first
func (s *Store) ListAgentMessages(ctx context.Context, limit int, before *time.Time) ([]AgentMessage, error) {
	var messages []AgentMessage
	if err := s.db.SelectContext(ctx, &messages, sqlListAgentMessages, before, limit); err != nil {
		s.logger.Error(ctx, "failed to list agent messages", err)
		return nil, fmt.Errorf("failed to list agent messages: %w", err)
	}
	return messages, nil
}
