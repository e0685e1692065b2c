package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const ruleColumns = `id, name, description, condition_type, condition_value, condition_entity, action_type, action_value,
cooldown_hours, enabled, execution_count, last_executed_at, created_at, updated_at`

// CreateRuleParams represents parameters for creating an automation rule
type CreateRuleParams struct {
	Name            string
	Description     *string
	ConditionType   string
	ConditionValue  float64
	ConditionEntity string
	ActionType      string
	ActionValue     *float64
	CooldownHours   int
	Enabled         bool
}

const sqlCreateRule = `
INSERT INTO automation_rules (name, description, condition_type, condition_value, condition_entity, action_type, action_value, cooldown_hours, enabled)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + ruleColumns

// CreateRule creates a new automation rule
func (s *Store) CreateRule(ctx context.Context, params CreateRuleParams) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlCreateRule,
		params.Name, params.Description, params.ConditionType, params.ConditionValue, params.ConditionEntity,
		params.ActionType, params.ActionValue, params.CooldownHours, params.Enabled)
	if err != nil {
		s.logger.Error(ctx, "failed to create rule", err)
		return AutomationRule{}, fmt.Errorf("failed to create rule: %w", err)
	}
	return rule, nil
}

// UpdateRuleParams carries optional replacements; nil fields keep their value
type UpdateRuleParams struct {
	Name           *string
	Description    *string
	ConditionType  *string
	ConditionValue *float64
	ActionType     *string
	ActionValue    *float64
	CooldownHours  *int
	Enabled        *bool
}

const sqlUpdateRule = `
UPDATE automation_rules
SET name            = COALESCE($2, name),
    description     = COALESCE($3, description),
    condition_type  = COALESCE($4, condition_type),
    condition_value = COALESCE($5, condition_value),
    action_type     = COALESCE($6, action_type),
    action_value    = COALESCE($7, action_value),
    cooldown_hours  = COALESCE($8, cooldown_hours),
    enabled         = COALESCE($9, enabled),
    updated_at      = NOW()
WHERE id = $1
RETURNING ` + ruleColumns

// UpdateRule applies a partial update to a rule
func (s *Store) UpdateRule(ctx context.Context, id uuid.UUID, params UpdateRuleParams) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlUpdateRule, id,
		params.Name, params.Description, params.ConditionType, params.ConditionValue,
		params.ActionType, params.ActionValue, params.CooldownHours, params.Enabled)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to update rule", err)
		return AutomationRule{}, fmt.Errorf("failed to update rule: %w", err)
	}
	return rule, nil
}

const sqlToggleRule = `
UPDATE automation_rules
SET enabled = NOT enabled, updated_at = NOW()
WHERE id = $1
RETURNING ` + ruleColumns

// ToggleRule flips a rule's enabled flag
func (s *Store) ToggleRule(ctx context.Context, id uuid.UUID) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlToggleRule, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to toggle rule", err)
		return AutomationRule{}, fmt.Errorf("failed to toggle rule: %w", err)
	}
	return rule, nil
}

const sqlDeleteRule = `DELETE FROM automation_rules WHERE id = $1`

// DeleteRule removes a rule and its execution history
func (s *Store) DeleteRule(ctx context.Context, id uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteRule, id)
	if err != nil {
		s.logger.Error(ctx, "failed to delete rule", err)
		return fmt.Errorf("failed to delete rule: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlGetRuleByID = `
SELECT ` + ruleColumns + `
FROM automation_rules
WHERE id = $1
`

// GetRuleByID retrieves a rule
func (s *Store) GetRuleByID(ctx context.Context, id uuid.UUID) (AutomationRule, error) {
	var rule AutomationRule
	err := s.db.GetContext(ctx, &rule, sqlGetRuleByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AutomationRule{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get rule", err)
		return AutomationRule{}, fmt.Errorf("failed to get rule: %w", err)
	}
	return rule, nil
}

const sqlListRules = `
SELECT ` + ruleColumns + `
FROM automation_rules
ORDER BY created_at DESC
`

// ListRules lists every rule, newest first
func (s *Store) ListRules(ctx context.Context) ([]AutomationRule, error) {
	var rules []AutomationRule
	if err := s.db.SelectContext(ctx, &rules, sqlListRules); err != nil {
		s.logger.Error(ctx, "failed to list rules", err)
		return nil, fmt.Errorf("failed to list rules: %w", err)
	}
	return rules, nil
}

const sqlListEnabledRules = `
SELECT ` + ruleColumns + `
FROM automation_rules
WHERE enabled = TRUE AND condition_entity = $1
ORDER BY created_at
`

// ListEnabledRules lists enabled rules scoped to an entity kind, oldest first
func (s *Store) ListEnabledRules(ctx context.Context, entity string) ([]AutomationRule, error) {
	var rules []AutomationRule
	if err := s.db.SelectContext(ctx, &rules, sqlListEnabledRules, entity); err != nil {
		s.logger.Error(ctx, "failed to list enabled rules", err)
		return nil, fmt.Errorf("failed to list enabled rules: %w", err)
	}
	return rules, nil
}

const sqlRecordRuleExecutions = `
UPDATE automation_rules
SET execution_count = execution_count + $2, last_executed_at = $3
WHERE id = $1
`

// RecordRuleExecutions bumps a rule's counters after a run with successful actions
func (s *Store) RecordRuleExecutions(ctx context.Context, id uuid.UUID, successes int, at time.Time) error {
	if _, err := s.db.ExecContext(ctx, sqlRecordRuleExecutions, id, successes, at); err != nil {
		s.logger.Error(ctx, "failed to record rule executions", err)
		return fmt.Errorf("failed to record rule executions: %w", err)
	}
	return nil
}

// CreateRuleExecutionParams represents one evaluation outcome
type CreateRuleExecutionParams struct {
	RuleID     uuid.UUID
	EntityType string
	EntityID   string
	EntityName *string
	Result     string
	Message    *string
	ExecutedAt time.Time
}

const ruleExecutionColumns = `id, rule_id, entity_type, entity_id, entity_name, result, message, executed_at`

const sqlCreateRuleExecution = `
INSERT INTO rule_executions (rule_id, entity_type, entity_id, entity_name, result, message, executed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + ruleExecutionColumns

// CreateRuleExecution appends an evaluation outcome
func (s *Store) CreateRuleExecution(ctx context.Context, params CreateRuleExecutionParams) (RuleExecution, error) {
	var exec RuleExecution
	err := s.db.GetContext(ctx, &exec, sqlCreateRuleExecution,
		params.RuleID, params.EntityType, params.EntityID, params.EntityName, params.Result, params.Message, params.ExecutedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create rule execution", err)
		return RuleExecution{}, fmt.Errorf("failed to create rule execution: %w", err)
	}
	return exec, nil
}

const sqlHasSuccessfulExecutionSince = `
SELECT EXISTS (
    SELECT 1 FROM rule_executions
    WHERE rule_id = $1 AND entity_id = $2 AND result = 'success' AND executed_at >= $3
)
`

// HasSuccessfulExecutionSince reports whether the rule acted on the entity at or after since
func (s *Store) HasSuccessfulExecutionSince(ctx context.Context, ruleID uuid.UUID, entityID string, since time.Time) (bool, error) {
	var exists bool
	if err := s.db.GetContext(ctx, &exists, sqlHasSuccessfulExecutionSince, ruleID, entityID, since); err != nil {
		s.logger.Error(ctx, "failed to check rule cooldown", err)
		return false, fmt.Errorf("failed to check rule cooldown: %w", err)
	}
	return exists, nil
}

const sqlListRuleExecutions = `
SELECT ` + ruleExecutionColumns + `
FROM rule_executions
WHERE rule_id = $1
ORDER BY executed_at DESC
LIMIT $2
`

// ListRuleExecutions returns the latest executions of a rule
func (s *Store) ListRuleExecutions(ctx context.Context, ruleID uuid.UUID, limit int) ([]RuleExecution, error) {
	var execs []RuleExecution
	if err := s.db.SelectContext(ctx, &execs, sqlListRuleExecutions, ruleID, limit); err != nil {
		s.logger.Error(ctx, "failed to list rule executions", err)
		return nil, fmt.Errorf("failed to list rule executions: %w", err)
	}
	return execs, nil
}
