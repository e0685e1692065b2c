package audit

//go:generate go run go.uber.org/mock/mockgen@latest -source=audit.go -destination=mocks_test.go -package=audit

import (
	"adsync/internal/clients/kafka"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"fmt"
	"time"
)

// Actor types
const (
	ActorUser   = "user"
	ActorAgent  = "agent"
	ActorRule   = "rule"
	ActorSystem = "system"
)

// Action types
const (
	ActionBidChange         = "bid_change"
	ActionBudgetChange      = "budget_change"
	ActionStatusChange      = "status_change"
	ActionKeywordAdd        = "keyword_add"
	ActionKeywordRemove     = "keyword_remove"
	ActionCampaignCreate    = "campaign_create"
	ActionCampaignDelete    = "campaign_delete"
	ActionAdGroupCreate     = "ad_group_create"
	ActionAdGroupDelete     = "ad_group_delete"
	ActionTargetAdd         = "target_add"
	ActionTargetRemove      = "target_remove"
	ActionSyncTriggered     = "sync_triggered"
	ActionRuleCreate        = "rule_create"
	ActionRuleToggle        = "rule_toggle"
	ActionRuleDelete        = "rule_delete"
	ActionSafetyLimitUpdate = "safety_limit_update"
	ActionAPIKeyCreate      = "api_key_create"
	ActionAPIKeyRevoke      = "api_key_revoke"
)

// Entity types
const (
	EntityCampaign        = "campaign"
	EntityAdGroup         = "ad_group"
	EntityKeyword         = "keyword"
	EntityNegativeKeyword = "negative_keyword"
	EntityProductTarget   = "product_target"
	EntityProfile         = "profile"
	EntityRule            = "rule"
	EntitySafetyLimit     = "safety_limit"
	EntityAPIKey          = "api_key"
)

const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 500
)

const publishTimeout = 2 * time.Second

// Actor identifies who asked for a change
type Actor struct {
	Type string
	ID   *string
}

func UserActor(id string) Actor  { return Actor{Type: ActorUser, ID: &id} }
func AgentActor(id string) Actor { return Actor{Type: ActorAgent, ID: &id} }
func RuleActor(id string) Actor  { return Actor{Type: ActorRule, ID: &id} }
func SystemActor() Actor         { return Actor{Type: ActorSystem} }

// Entry is one attempted change, successful or not
type Entry struct {
	Actor       Actor
	ActionType  string
	EntityType  string
	EntityID    string
	EntityName  string
	BeforeState map[string]interface{}
	AfterState  map[string]interface{}
	Reason      string
	Success     bool
	Error       string
}

type Store interface {
	CreateAuditEntry(ctx context.Context, params store.CreateAuditEntryParams) (store.AuditEntry, error)
	ListAuditEntries(ctx context.Context, filter store.AuditFilter) ([]store.AuditEntry, error)
	CountAuditEntries(ctx context.Context, filter store.AuditFilter) (int, error)
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Logger appends audit entries and mirrors them onto the event stream
type Logger struct {
	store     Store
	publisher EventPublisher
	logger    *observability.Logger
}

// New creates an audit logger. publisher may be nil when Kafka is disabled.
func New(store Store, publisher EventPublisher, logger *observability.Logger) *Logger {
	return &Logger{
		store:     store,
		publisher: publisher,
		logger:    logger,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Record appends an entry. Entries are never updated or removed afterwards.
func (l *Logger) Record(ctx context.Context, entry Entry) (store.AuditEntry, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "audit_action", Value: entry.ActionType},
		observability.Field{Key: "entity_type", Value: entry.EntityType},
		observability.Field{Key: "entity_id", Value: entry.EntityID},
	)

	saved, err := l.store.CreateAuditEntry(ctx, store.CreateAuditEntryParams{
		ActorType:   entry.Actor.Type,
		ActorID:     entry.Actor.ID,
		ActionType:  entry.ActionType,
		EntityType:  entry.EntityType,
		EntityID:    entry.EntityID,
		EntityName:  optional(entry.EntityName),
		BeforeState: entry.BeforeState,
		AfterState:  entry.AfterState,
		Reason:      optional(entry.Reason),
		Success:     entry.Success,
		ErrorMsg:    optional(entry.Error),
	})
	if err != nil {
		l.logger.Error(ctx, "failed to record audit entry", err)
		return store.AuditEntry{}, fmt.Errorf("failed to record audit entry: %w", err)
	}

	l.publish(ctx, saved)
	return saved, nil
}

// publish is best-effort; the database row is the record of truth
func (l *Logger) publish(ctx context.Context, saved store.AuditEntry) {
	if l.publisher == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := kafka.NewEvent(kafka.EventAuditRecorded, "", map[string]interface{}{
		"audit_id":    saved.ID.String(),
		"actor_type":  saved.ActorType,
		"action_type": saved.ActionType,
		"entity_type": saved.EntityType,
		"entity_id":   saved.EntityID,
		"success":     saved.Success,
	})
	event.EntityID = &saved.EntityID

	if err := l.publisher.PublishEvent(ctx, event); err != nil {
		l.logger.WarnWithError(ctx, "failed to publish audit event", err)
	}
}

// QueryResult is one page of audit entries plus the unpaged total
type QueryResult struct {
	Entries []store.AuditEntry `json:"entries"`
	Total   int                `json:"total"`
	Limit   int                `json:"limit"`
	Offset  int                `json:"offset"`
}

// Query returns entries newest first. Limit defaults to 100 and is capped at 500.
func (l *Logger) Query(ctx context.Context, filter store.AuditFilter) (QueryResult, error) {
	if filter.Limit <= 0 {
		filter.Limit = DefaultQueryLimit
	}
	if filter.Limit > MaxQueryLimit {
		filter.Limit = MaxQueryLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	entries, err := l.store.ListAuditEntries(ctx, filter)
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to list audit entries: %w", err)
	}

	total, err := l.store.CountAuditEntries(ctx, filter)
	if err != nil {
		return QueryResult{}, fmt.Errorf("failed to count audit entries: %w", err)
	}

	if entries == nil {
		entries = []store.AuditEntry{}
	}

	return QueryResult{
		Entries: entries,
		Total:   total,
		Limit:   filter.Limit,
		Offset:  filter.Offset,
	}, nil
}
