package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const syncStateColumns = `profile_id, last_sync_at, sync_status, error, updated_at`

const sqlGetSyncState = `
SELECT ` + syncStateColumns + `
FROM sync_states
WHERE profile_id = $1
`

// GetSyncState returns the sync state for a profile
func (s *Store) GetSyncState(ctx context.Context, profileID string) (SyncState, error) {
	var state SyncState
	err := s.db.GetContext(ctx, &state, sqlGetSyncState, profileID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SyncState{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get sync state", err)
		return SyncState{}, fmt.Errorf("failed to get sync state: %w", err)
	}
	return state, nil
}

// The conditional DO UPDATE makes check-and-set a single statement: when the row already
// reads syncing (and is not stale) nothing is returned.
const sqlTryStartSync = `
INSERT INTO sync_states (profile_id, sync_status, error, updated_at)
VALUES ($1, 'syncing', NULL, NOW())
ON CONFLICT (profile_id) DO UPDATE SET
    sync_status = 'syncing',
    error       = NULL,
    updated_at  = NOW()
WHERE sync_states.sync_status <> 'syncing' OR sync_states.updated_at < $2
RETURNING profile_id
`

// TryStartSync atomically moves the profile into syncing. It returns false when another
// pass holds the flag and last touched it after staleBefore.
func (s *Store) TryStartSync(ctx context.Context, profileID string, staleBefore time.Time) (bool, error) {
	var id string
	err := s.db.GetContext(ctx, &id, sqlTryStartSync, profileID, staleBefore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		s.logger.Error(ctx, "failed to start sync", err)
		return false, fmt.Errorf("failed to start sync: %w", err)
	}
	return true, nil
}

const sqlCompleteSync = `
UPDATE sync_states
SET sync_status = 'completed', last_sync_at = $2, error = NULL, updated_at = NOW()
WHERE profile_id = $1
`

// CompleteSync records a successful pass
func (s *Store) CompleteSync(ctx context.Context, profileID string, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlCompleteSync, profileID, at); err != nil {
		s.logger.Error(ctx, "failed to complete sync", err)
		return fmt.Errorf("failed to complete sync: %w", err)
	}
	return nil
}

const sqlFailSync = `
UPDATE sync_states
SET sync_status = 'failed', error = $2, updated_at = NOW()
WHERE profile_id = $1
`

// FailSync records a failed pass with its error message
func (s *Store) FailSync(ctx context.Context, profileID, message string) error {
	if _, err := s.db.ExecContext(ctx, sqlFailSync, profileID, message); err != nil {
		s.logger.Error(ctx, "failed to mark sync failed", err)
		return fmt.Errorf("failed to mark sync failed: %w", err)
	}
	return nil
}
