package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const agentKeyColumns = `id, name, key_hash, key_suffix, last_used_at, revoked_at, created_at`

const sqlCreateAgentKey = `
INSERT INTO agent_api_keys (name, key_hash, key_suffix)
VALUES ($1, $2, $3)
RETURNING ` + agentKeyColumns

// CreateAgentKey stores the hash of a newly generated agent key
func (s *Store) CreateAgentKey(ctx context.Context, name, keyHash, keySuffix string) (AgentAPIKey, error) {
	var key AgentAPIKey
	if err := s.db.GetContext(ctx, &key, sqlCreateAgentKey, name, keyHash, keySuffix); err != nil {
		s.logger.Error(ctx, "failed to create agent key", err)
		return AgentAPIKey{}, fmt.Errorf("failed to create agent key: %w", err)
	}
	return key, nil
}

const sqlGetActiveAgentKeyByHash = `
SELECT ` + agentKeyColumns + `
FROM agent_api_keys
WHERE key_hash = $1 AND revoked_at IS NULL
`

// GetActiveAgentKeyByHash looks up a non-revoked key by its SHA-256 hash
func (s *Store) GetActiveAgentKeyByHash(ctx context.Context, keyHash string) (AgentAPIKey, error) {
	var key AgentAPIKey
	err := s.db.GetContext(ctx, &key, sqlGetActiveAgentKeyByHash, keyHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AgentAPIKey{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get agent key", err)
		return AgentAPIKey{}, fmt.Errorf("failed to get agent key: %w", err)
	}
	return key, nil
}

const sqlListAgentKeys = `
SELECT ` + agentKeyColumns + `
FROM agent_api_keys
ORDER BY created_at DESC
`

// ListAgentKeys lists every agent key, revoked ones included
func (s *Store) ListAgentKeys(ctx context.Context) ([]AgentAPIKey, error) {
	var keys []AgentAPIKey
	if err := s.db.SelectContext(ctx, &keys, sqlListAgentKeys); err != nil {
		s.logger.Error(ctx, "failed to list agent keys", err)
		return nil, fmt.Errorf("failed to list agent keys: %w", err)
	}
	return keys, nil
}

const sqlRevokeAgentKey = `
UPDATE agent_api_keys
SET revoked_at = NOW()
WHERE id = $1 AND revoked_at IS NULL
RETURNING ` + agentKeyColumns

// RevokeAgentKey marks a key revoked; revoking twice returns ErrNotFound
func (s *Store) RevokeAgentKey(ctx context.Context, id uuid.UUID) (AgentAPIKey, error) {
	var key AgentAPIKey
	err := s.db.GetContext(ctx, &key, sqlRevokeAgentKey, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AgentAPIKey{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to revoke agent key", err)
		return AgentAPIKey{}, fmt.Errorf("failed to revoke agent key: %w", err)
	}
	return key, nil
}

const sqlTouchAgentKey = `UPDATE agent_api_keys SET last_used_at = $2 WHERE id = $1`

// TouchAgentKey records a use of the key
func (s *Store) TouchAgentKey(ctx context.Context, id uuid.UUID, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlTouchAgentKey, id, at); err != nil {
		s.logger.Error(ctx, "failed to update agent key usage", err)
		return fmt.Errorf("failed to update agent key usage: %w", err)
	}
	return nil
}

const sqlIncrementAgentRequests = `
INSERT INTO agent_rate_limits (agent_key_id, window_start, requests_count)
VALUES ($1, $2, 1)
ON CONFLICT (agent_key_id, window_start) DO UPDATE SET
    requests_count = agent_rate_limits.requests_count + 1
RETURNING requests_count
`

// IncrementAgentRequests counts a request in the fixed window starting at windowStart
func (s *Store) IncrementAgentRequests(ctx context.Context, keyID uuid.UUID, windowStart time.Time) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlIncrementAgentRequests, keyID, windowStart); err != nil {
		s.logger.Error(ctx, "failed to count agent request", err)
		return 0, fmt.Errorf("failed to count agent request: %w", err)
	}
	return count, nil
}
