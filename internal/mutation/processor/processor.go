package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"adsync/internal/audit"
	"adsync/internal/clients/amazonads"
	"adsync/internal/observability"
	"adsync/internal/safety"
	"adsync/internal/store"
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	ErrSafetyRejected = errors.New("change rejected by safety limits")
	ErrRemoteRejected = errors.New("change rejected by Amazon Ads")
	ErrEntityNotFound = errors.New("entity not found")
	ErrUnsupported    = errors.New("operation not supported for this campaign type")
	ErrNotConfigured  = errors.New("amazon ads is not configured")
	ErrInvalidInput   = errors.New("invalid input")
)

const staleCacheWarning = "Change applied in Amazon Ads but the local copy could not be updated; it will refresh on the next sync"

// Outcome distinguishes how far a mutation got
type Outcome string

const (
	OutcomeApplied          Outcome = "applied"
	OutcomePartiallyApplied Outcome = "partially_applied"
	OutcomeSafetyRejected   Outcome = "safety_rejected"
	OutcomeRemoteRejected   Outcome = "remote_rejected"
	OutcomeFailed           Outcome = "failed"
)

// Result is returned for every mutation, successful or not
type Result struct {
	Success    bool                   `json:"success"`
	Outcome    Outcome                `json:"outcome"`
	EntityType string                 `json:"entity_type"`
	EntityID   string                 `json:"entity_id,omitempty"`
	EntityIDs  []string               `json:"entity_ids,omitempty"`
	Previous   map[string]interface{} `json:"previous,omitempty"`
	New        map[string]interface{} `json:"new,omitempty"`
	Warning    string                 `json:"warning,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

type MutationStore interface {
	GetSafetyLimits(ctx context.Context) (store.SafetyLimit, error)
	GetCampaignByID(ctx context.Context, id string) (store.Campaign, error)
	GetAdGroupByID(ctx context.Context, id string) (store.AdGroup, error)
	GetKeywordByID(ctx context.Context, id string) (store.Keyword, error)
	GetNegativeKeywordByID(ctx context.Context, id string) (store.NegativeKeyword, error)
	GetProductTargetByID(ctx context.Context, id string) (store.ProductTarget, error)
	UpdateKeywordBid(ctx context.Context, id string, bid float64, pushedAt time.Time) error
	UpdateKeywordState(ctx context.Context, id, state string, pushedAt time.Time) error
	UpdateProductTargetBid(ctx context.Context, id string, bid float64, pushedAt time.Time) error
	UpdateProductTargetState(ctx context.Context, id, state string, pushedAt time.Time) error
	UpdateCampaignBudget(ctx context.Context, id string, budget float64, pushedAt time.Time) error
	UpdateCampaignState(ctx context.Context, id, state string, pushedAt time.Time) error
	UpdateAdGroupState(ctx context.Context, id, state string, pushedAt time.Time) error
	UpdateNegativeKeywordState(ctx context.Context, id, state string, pushedAt time.Time) error
	CreateCampaign(ctx context.Context, c store.Campaign) (store.Campaign, error)
	CreateAdGroup(ctx context.Context, ag store.AdGroup) (store.AdGroup, error)
	CreateKeywords(ctx context.Context, keywords []store.Keyword) ([]store.Keyword, error)
	CreateNegativeKeyword(ctx context.Context, n store.NegativeKeyword) (store.NegativeKeyword, error)
	CreateProductTargets(ctx context.Context, targets []store.ProductTarget) ([]store.ProductTarget, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry) (store.AuditEntry, error)
}

// Remote is the Amazon Ads write surface
type Remote interface {
	ProfileID() string
	UpdateKeywordBid(ctx context.Context, t amazonads.CampaignType, keywordID string, bid float64) error
	UpdateTargetBid(ctx context.Context, t amazonads.CampaignType, targetID string, bid float64) error
	UpdateCampaignBudget(ctx context.Context, t amazonads.CampaignType, campaignID string, budget float64) error
	UpdateState(ctx context.Context, t amazonads.CampaignType, kind amazonads.EntityKind, id, state string) error
	Archive(ctx context.Context, t amazonads.CampaignType, kind amazonads.EntityKind, id string) error
	CreateCampaign(ctx context.Context, in amazonads.CreateCampaignInput) (string, error)
	CreateAdGroup(ctx context.Context, t amazonads.CampaignType, in amazonads.CreateAdGroupInput) (string, error)
	CreateKeywords(ctx context.Context, t amazonads.CampaignType, in []amazonads.CreateKeywordInput) ([]string, error)
	CreateNegativeKeyword(ctx context.Context, t amazonads.CampaignType, in amazonads.CreateNegativeKeywordInput) (string, error)
	CreateTargets(ctx context.Context, t amazonads.CampaignType, in []amazonads.CreateTargetInput) ([]string, error)
}

// ConnectFunc opens the remote client for the active profile
type ConnectFunc func(ctx context.Context) (Remote, error)

type MutationProcessor struct {
	store   MutationStore
	audit   AuditRecorder
	connect ConnectFunc
	logger  *observability.Logger
	now     func() time.Time
}

func New(store MutationStore, audit AuditRecorder, connect ConnectFunc, logger *observability.Logger) MutationProcessor {
	return MutationProcessor{
		store:   store,
		audit:   audit,
		connect: connect,
		logger:  logger,
		now:     time.Now,
	}
}

// plan is one mutation on its way through validate, push, persist and audit
type plan struct {
	entry        audit.Entry
	campaignType amazonads.CampaignType
	kind         amazonads.EntityKind
	ids          []string
	validate     func(limits safety.Limits) error
	push         func(ctx context.Context, remote Remote) error
	persist      func(ctx context.Context, pushedAt time.Time) error
}

func limitsFrom(l store.SafetyLimit) safety.Limits {
	return safety.Limits{
		MaxBidChangePct:    l.MaxBidChangePct,
		MaxBudgetChangePct: l.MaxBudgetChangePct,
		MinBidFloor:        l.MinBidFloor,
		MaxBidCeiling:      l.MaxBidCeiling,
		MaxDailySpend:      l.MaxDailySpend,
	}
}

// execute runs a plan. Every path through it records exactly one audit entry.
func (p *MutationProcessor) execute(ctx context.Context, pl *plan) (Result, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "action_type", Value: pl.entry.ActionType},
		observability.Field{Key: "entity_type", Value: pl.entry.EntityType},
		observability.Field{Key: "actor_type", Value: pl.entry.Actor.Type},
	)

	if !amazonads.Supports(pl.campaignType, pl.kind) {
		return p.reject(ctx, pl.entry, OutcomeFailed, ErrUnsupported,
			fmt.Errorf("%s campaigns do not support %s changes", pl.campaignType, pl.kind))
	}

	if pl.validate != nil {
		stored, err := p.store.GetSafetyLimits(ctx)
		if err != nil {
			return p.reject(ctx, pl.entry, OutcomeFailed, err, errors.New("failed to load safety limits"))
		}
		if err := pl.validate(limitsFrom(stored)); err != nil {
			return p.reject(ctx, pl.entry, OutcomeSafetyRejected, ErrSafetyRejected, err)
		}
	}

	remote, err := p.connect(ctx)
	if err != nil {
		return p.reject(ctx, pl.entry, OutcomeFailed, ErrNotConfigured, err)
	}

	if err := pl.push(ctx, remote); err != nil {
		if errors.Is(err, amazonads.ErrUnsupportedOperation) {
			return p.reject(ctx, pl.entry, OutcomeFailed, ErrUnsupported, err)
		}
		if errors.Is(err, amazonads.ErrInvalidInput) {
			return p.reject(ctx, pl.entry, OutcomeFailed, ErrInvalidInput, err)
		}
		return p.reject(ctx, pl.entry, OutcomeRemoteRejected, ErrRemoteRejected, err)
	}

	result := Result{
		Success:    true,
		Outcome:    OutcomeApplied,
		EntityType: pl.entry.EntityType,
		EntityID:   pl.entry.EntityID,
		EntityIDs:  pl.ids,
		Previous:   pl.entry.BeforeState,
		New:        pl.entry.AfterState,
	}

	if err := pl.persist(ctx, p.now()); err != nil {
		// Amazon is the source of truth; the next sync repairs the local row
		p.logger.Error(ctx, "change pushed to amazon but local write failed", err)
		result.Outcome = OutcomePartiallyApplied
		result.Warning = staleCacheWarning
	}

	pl.entry.Success = true
	p.record(ctx, pl.entry)

	p.logger.Info(ctx, "mutation applied",
		observability.Field{Key: "entity_id", Value: pl.entry.EntityID},
		observability.Field{Key: "outcome", Value: string(result.Outcome)},
	)
	return result, nil
}

// reject audits a failed mutation and returns cause wrapped in kind
func (p *MutationProcessor) reject(ctx context.Context, entry audit.Entry, outcome Outcome, kind error, cause error) (Result, error) {
	entry.Success = false
	entry.Error = cause.Error()
	p.record(ctx, entry)

	p.logger.Warn(ctx, "mutation rejected",
		observability.Field{Key: "entity_id", Value: entry.EntityID},
		observability.Field{Key: "outcome", Value: string(outcome)},
		observability.Field{Key: "reason", Value: entry.Error},
	)

	return Result{
		Success:    false,
		Outcome:    outcome,
		EntityType: entry.EntityType,
		EntityID:   entry.EntityID,
		Previous:   entry.BeforeState,
		New:        entry.AfterState,
		Error:      entry.Error,
	}, fmt.Errorf("%w: %w", kind, cause)
}

func (p *MutationProcessor) record(ctx context.Context, entry audit.Entry) {
	if _, err := p.audit.Record(ctx, entry); err != nil {
		p.logger.Error(ctx, "failed to write audit entry for mutation", err)
	}
}

// rejectLookup audits a failed entity lookup, keeping not-found distinct from store errors
func (p *MutationProcessor) rejectLookup(ctx context.Context, entry audit.Entry, what, id string, err error) (Result, error) {
	if errors.Is(err, store.ErrNotFound) {
		return p.reject(ctx, entry, OutcomeFailed, ErrEntityNotFound, fmt.Errorf("%s %s not found", what, id))
	}
	return p.reject(ctx, entry, OutcomeFailed, err, fmt.Errorf("failed to load %s %s", what, id))
}

func valueOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
