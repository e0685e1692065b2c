package store

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const auditColumns = `id, timestamp, actor_type, actor_id, action_type, entity_type, entity_id, entity_name,
before_state, after_state, reason, success, error_msg`

// CreateAuditEntryParams represents one mutation attempt to record
type CreateAuditEntryParams struct {
	ActorType   string
	ActorID     *string
	ActionType  string
	EntityType  string
	EntityID    string
	EntityName  *string
	BeforeState JSONB
	AfterState  JSONB
	Reason      *string
	Success     bool
	ErrorMsg    *string
}

const sqlCreateAuditEntry = `
INSERT INTO audit_logs (actor_type, actor_id, action_type, entity_type, entity_id, entity_name,
                        before_state, after_state, reason, success, error_msg)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + auditColumns

// CreateAuditEntry appends an audit entry
func (s *Store) CreateAuditEntry(ctx context.Context, params CreateAuditEntryParams) (AuditEntry, error) {
	var entry AuditEntry
	err := s.db.GetContext(ctx, &entry, sqlCreateAuditEntry,
		params.ActorType, params.ActorID, params.ActionType, params.EntityType, params.EntityID, params.EntityName,
		params.BeforeState, params.AfterState, params.Reason, params.Success, params.ErrorMsg)
	if err != nil {
		s.logger.Error(ctx, "failed to create audit entry", err)
		return AuditEntry{}, fmt.Errorf("failed to create audit entry: %w", err)
	}
	return entry, nil
}

// AuditFilter narrows audit queries; zero values are ignored
type AuditFilter struct {
	ActionType string
	EntityType string
	EntityID   string
	ActorType  string
	StartDate  *time.Time
	EndDate    *time.Time
	Limit      int
	Offset     int
}

func (f AuditFilter) where() (string, []interface{}) {
	var conds []string
	var args []interface{}
	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if f.ActionType != "" {
		add("action_type = $%d", f.ActionType)
	}
	if f.EntityType != "" {
		add("entity_type = $%d", f.EntityType)
	}
	if f.EntityID != "" {
		add("entity_id = $%d", f.EntityID)
	}
	if f.ActorType != "" {
		add("actor_type = $%d", f.ActorType)
	}
	if f.StartDate != nil {
		add("timestamp >= $%d", *f.StartDate)
	}
	if f.EndDate != nil {
		add("timestamp <= $%d", *f.EndDate)
	}

	if len(conds) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// ListAuditEntries returns matching entries, newest first
func (s *Store) ListAuditEntries(ctx context.Context, filter AuditFilter) ([]AuditEntry, error) {
	where, args := filter.where()
	args = append(args, filter.Limit, filter.Offset)
	query := fmt.Sprintf(`SELECT %s FROM audit_logs %s ORDER BY timestamp DESC LIMIT $%d OFFSET $%d`,
		auditColumns, where, len(args)-1, len(args))

	var entries []AuditEntry
	if err := s.db.SelectContext(ctx, &entries, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list audit entries", err)
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	return entries, nil
}

// CountAuditEntries counts matching entries, ignoring limit and offset
func (s *Store) CountAuditEntries(ctx context.Context, filter AuditFilter) (int, error) {
	where, args := filter.where()
	query := `SELECT COUNT(*) FROM audit_logs ` + where

	var count int
	if err := s.db.GetContext(ctx, &count, query, args...); err != nil {
		s.logger.Error(ctx, "failed to count audit entries", err)
		return 0, fmt.Errorf("failed to count audit entries: %w", err)
	}
	return count, nil
}
