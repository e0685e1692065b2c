package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"adsync/internal/audit"
	mutation "adsync/internal/mutation/processor"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RuleStore defines the database operations required by RuleProcessor
type RuleStore interface {
	// Rule CRUD
	CreateRule(ctx context.Context, params store.CreateRuleParams) (store.AutomationRule, error)
	UpdateRule(ctx context.Context, id uuid.UUID, params store.UpdateRuleParams) (store.AutomationRule, error)
	ToggleRule(ctx context.Context, id uuid.UUID) (store.AutomationRule, error)
	DeleteRule(ctx context.Context, id uuid.UUID) error
	GetRuleByID(ctx context.Context, id uuid.UUID) (store.AutomationRule, error)
	ListRules(ctx context.Context) ([]store.AutomationRule, error)
	ListEnabledRules(ctx context.Context, entity string) ([]store.AutomationRule, error)

	// Executions
	RecordRuleExecutions(ctx context.Context, id uuid.UUID, successes int, at time.Time) error
	CreateRuleExecution(ctx context.Context, params store.CreateRuleExecutionParams) (store.RuleExecution, error)
	HasSuccessfulExecutionSince(ctx context.Context, ruleID uuid.UUID, entityID string, since time.Time) (bool, error)
	ListRuleExecutions(ctx context.Context, ruleID uuid.UUID, limit int) ([]store.RuleExecution, error)

	// Performance
	ListKeywordPerformance(ctx context.Context, filter store.KeywordFilter) ([]store.KeywordPerformance, error)
	ListCampaignPerformance(ctx context.Context, filter store.CampaignFilter) ([]store.CampaignPerformance, error)
}

// Mutator is the subset of the mutation pipeline rules act through
type Mutator interface {
	ChangeBid(ctx context.Context, actor audit.Actor, req mutation.ChangeBidRequest) (mutation.Result, error)
	ChangeState(ctx context.Context, actor audit.Actor, req mutation.ChangeStateRequest) (mutation.Result, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry) (store.AuditEntry, error)
}

// ProfileSource resolves the selected profile; rules only act on its entities
type ProfileSource interface {
	ProfileID(ctx context.Context) (string, error)
}

var (
	ErrRuleNotFound     = errors.New("rule not found")
	ErrTemplateNotFound = errors.New("rule template not found")
	ErrInvalidRule      = errors.New("invalid rule")
	ErrNotConfigured    = errors.New("amazon ads is not configured")
)

// Condition types
const (
	ConditionACoSAbove        = "acos_above"
	ConditionACoSBelow        = "acos_below"
	ConditionROASAbove        = "roas_above"
	ConditionROASBelow        = "roas_below"
	ConditionClicksAbove      = "clicks_above"
	ConditionImpressionsAbove = "impressions_above"
	ConditionOrdersBelow      = "orders_below"
	ConditionSpendAbove       = "spend_above"
)

// Action types
const (
	ActionDecreaseBid = "decrease_bid"
	ActionIncreaseBid = "increase_bid"
	ActionPause       = "pause"
	ActionEnable      = "enable"
)

const (
	defaultCooldownHours  = 24
	defaultDecreasePct    = 10.0
	defaultIncreasePct    = 5.0
	executionHistoryLimit = 50
	lookbackDays          = 30
	// orders_below only fires once a keyword has had enough traffic to judge
	minClicksForOrders = 100
)

type RuleProcessor struct {
	store    RuleStore
	mutator  Mutator
	profiles ProfileSource
	audit    AuditRecorder
	logger   *observability.Logger
	now      func() time.Time
}

func New(store RuleStore, mutator Mutator, profiles ProfileSource, audit AuditRecorder, logger *observability.Logger) RuleProcessor {
	return RuleProcessor{
		store:    store,
		mutator:  mutator,
		profiles: profiles,
		audit:    audit,
		logger:   logger,
		now:      time.Now,
	}
}

// CreateRuleParams represents parameters for creating a rule
type CreateRuleParams struct {
	Name            string   `json:"name"`
	Description     *string  `json:"description,omitempty"`
	ConditionType   string   `json:"condition_type"`
	ConditionValue  float64  `json:"condition_value"`
	ConditionEntity string   `json:"condition_entity"`
	ActionType      string   `json:"action_type"`
	ActionValue     *float64 `json:"action_value,omitempty"`
	CooldownHours   *int     `json:"cooldown_hours,omitempty"`
}

// UpdateRuleParams carries optional replacements; nil fields are left alone
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

// RuleView is a rule plus its human-readable summary
type RuleView struct {
	store.AutomationRule
	ConditionText string `json:"condition_text"`
	ActionText    string `json:"action_text"`
}

func view(rule store.AutomationRule) RuleView {
	return RuleView{
		AutomationRule: rule,
		ConditionText:  DescribeCondition(rule.ConditionType, rule.ConditionValue),
		ActionText:     DescribeAction(rule.ActionType, rule.ActionValue),
	}
}

func validCondition(t string) bool {
	switch t {
	case ConditionACoSAbove, ConditionACoSBelow, ConditionROASAbove, ConditionROASBelow,
		ConditionClicksAbove, ConditionImpressionsAbove, ConditionOrdersBelow, ConditionSpendAbove:
		return true
	}
	return false
}

func validAction(t string) bool {
	switch t {
	case ActionDecreaseBid, ActionIncreaseBid, ActionPause, ActionEnable:
		return true
	}
	return false
}

func isBidAction(t string) bool {
	return t == ActionDecreaseBid || t == ActionIncreaseBid
}

// validateRule checks a complete rule definition
func validateRule(conditionType string, conditionValue float64, entity, actionType string, actionValue *float64, cooldownHours int) error {
	if !validCondition(conditionType) {
		return fmt.Errorf("%w: unknown condition type %q", ErrInvalidRule, conditionType)
	}
	if conditionValue < 0 {
		return fmt.Errorf("%w: condition value must not be negative", ErrInvalidRule)
	}
	if entity != audit.EntityKeyword && entity != audit.EntityCampaign {
		return fmt.Errorf("%w: rules apply to keywords or campaigns, not %q", ErrInvalidRule, entity)
	}
	if !validAction(actionType) {
		return fmt.Errorf("%w: unknown action type %q", ErrInvalidRule, actionType)
	}
	if isBidAction(actionType) && entity != audit.EntityKeyword {
		return fmt.Errorf("%w: bid actions need a keyword rule", ErrInvalidRule)
	}
	if actionValue != nil && (*actionValue <= 0 || *actionValue >= 100) {
		return fmt.Errorf("%w: action value must be a percentage between 0 and 100", ErrInvalidRule)
	}
	if cooldownHours < 0 {
		return fmt.Errorf("%w: cooldown must not be negative", ErrInvalidRule)
	}
	return nil
}

// CreateRule validates and stores a new enabled rule
func (p *RuleProcessor) CreateRule(ctx context.Context, actor audit.Actor, params CreateRuleParams) (RuleView, error) {
	cooldown := defaultCooldownHours
	if params.CooldownHours != nil {
		cooldown = *params.CooldownHours
	}
	if err := validateRule(params.ConditionType, params.ConditionValue, params.ConditionEntity, params.ActionType, params.ActionValue, cooldown); err != nil {
		return RuleView{}, err
	}

	rule, err := p.store.CreateRule(ctx, store.CreateRuleParams{
		Name:            params.Name,
		Description:     params.Description,
		ConditionType:   params.ConditionType,
		ConditionValue:  params.ConditionValue,
		ConditionEntity: params.ConditionEntity,
		ActionType:      params.ActionType,
		ActionValue:     params.ActionValue,
		CooldownHours:   cooldown,
		Enabled:         true,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create rule", err)
		return RuleView{}, err
	}

	p.recordAudit(ctx, audit.Entry{
		Actor:      actor,
		ActionType: audit.ActionRuleCreate,
		EntityType: audit.EntityRule,
		EntityID:   rule.ID.String(),
		EntityName: rule.Name,
		AfterState: ruleState(rule),
		Success:    true,
	})
	return view(rule), nil
}

// UpdateRule applies a partial update; the merged rule must still be valid
func (p *RuleProcessor) UpdateRule(ctx context.Context, id uuid.UUID, params UpdateRuleParams) (RuleView, error) {
	current, err := p.getRule(ctx, id)
	if err != nil {
		return RuleView{}, err
	}

	merged := current
	if params.ConditionType != nil {
		merged.ConditionType = *params.ConditionType
	}
	if params.ConditionValue != nil {
		merged.ConditionValue = *params.ConditionValue
	}
	if params.ActionType != nil {
		merged.ActionType = *params.ActionType
	}
	if params.ActionValue != nil {
		merged.ActionValue = params.ActionValue
	}
	if params.CooldownHours != nil {
		merged.CooldownHours = *params.CooldownHours
	}
	if err := validateRule(merged.ConditionType, merged.ConditionValue, merged.ConditionEntity, merged.ActionType, merged.ActionValue, merged.CooldownHours); err != nil {
		return RuleView{}, err
	}

	rule, err := p.store.UpdateRule(ctx, id, store.UpdateRuleParams{
		Name:           params.Name,
		Description:    params.Description,
		ConditionType:  params.ConditionType,
		ConditionValue: params.ConditionValue,
		ActionType:     params.ActionType,
		ActionValue:    params.ActionValue,
		CooldownHours:  params.CooldownHours,
		Enabled:        params.Enabled,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RuleView{}, ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to update rule", err)
		return RuleView{}, err
	}
	return view(rule), nil
}

// ToggleRule flips a rule between enabled and disabled
func (p *RuleProcessor) ToggleRule(ctx context.Context, actor audit.Actor, id uuid.UUID) (RuleView, error) {
	rule, err := p.store.ToggleRule(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return RuleView{}, ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to toggle rule", err)
		return RuleView{}, err
	}

	p.recordAudit(ctx, audit.Entry{
		Actor:       actor,
		ActionType:  audit.ActionRuleToggle,
		EntityType:  audit.EntityRule,
		EntityID:    rule.ID.String(),
		EntityName:  rule.Name,
		BeforeState: map[string]interface{}{"enabled": !rule.Enabled},
		AfterState:  map[string]interface{}{"enabled": rule.Enabled},
		Success:     true,
	})
	return view(rule), nil
}

// DeleteRule removes a rule and its execution history
func (p *RuleProcessor) DeleteRule(ctx context.Context, actor audit.Actor, id uuid.UUID) error {
	rule, err := p.getRule(ctx, id)
	if err != nil {
		return err
	}

	if err := p.store.DeleteRule(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to delete rule", err)
		return err
	}

	p.recordAudit(ctx, audit.Entry{
		Actor:       actor,
		ActionType:  audit.ActionRuleDelete,
		EntityType:  audit.EntityRule,
		EntityID:    rule.ID.String(),
		EntityName:  rule.Name,
		BeforeState: ruleState(rule),
		Success:     true,
	})
	return nil
}

// GetRule retrieves a rule by id
func (p *RuleProcessor) GetRule(ctx context.Context, id uuid.UUID) (RuleView, error) {
	rule, err := p.getRule(ctx, id)
	if err != nil {
		return RuleView{}, err
	}
	return view(rule), nil
}

// ListRules lists every rule, newest first
func (p *RuleProcessor) ListRules(ctx context.Context) ([]RuleView, error) {
	rules, err := p.store.ListRules(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list rules", err)
		return nil, err
	}

	views := make([]RuleView, 0, len(rules))
	for _, r := range rules {
		views = append(views, view(r))
	}
	return views, nil
}

// ListExecutions returns the latest executions of a rule
func (p *RuleProcessor) ListExecutions(ctx context.Context, id uuid.UUID) ([]store.RuleExecution, error) {
	if _, err := p.getRule(ctx, id); err != nil {
		return nil, err
	}

	execs, err := p.store.ListRuleExecutions(ctx, id, executionHistoryLimit)
	if err != nil {
		p.logger.Error(ctx, "failed to list rule executions", err)
		return nil, err
	}
	if execs == nil {
		execs = []store.RuleExecution{}
	}
	return execs, nil
}

func (p *RuleProcessor) getRule(ctx context.Context, id uuid.UUID) (store.AutomationRule, error) {
	rule, err := p.store.GetRuleByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.AutomationRule{}, ErrRuleNotFound
		}
		p.logger.Error(ctx, "failed to get rule", err)
		return store.AutomationRule{}, err
	}
	return rule, nil
}

func (p *RuleProcessor) recordAudit(ctx context.Context, entry audit.Entry) {
	if _, err := p.audit.Record(ctx, entry); err != nil {
		p.logger.Error(ctx, "failed to write audit entry for rule", err)
	}
}

func ruleState(rule store.AutomationRule) map[string]interface{} {
	state := map[string]interface{}{
		"name":             rule.Name,
		"condition_type":   rule.ConditionType,
		"condition_value":  rule.ConditionValue,
		"condition_entity": rule.ConditionEntity,
		"action_type":      rule.ActionType,
		"cooldown_hours":   rule.CooldownHours,
		"enabled":          rule.Enabled,
	}
	if rule.ActionValue != nil {
		state["action_value"] = *rule.ActionValue
	}
	return state
}
