package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"adsync/internal/audit"
	"adsync/internal/observability"
	"adsync/internal/store"
	"context"
	"errors"
	"fmt"
)

var ErrInvalidLimits = errors.New("invalid safety limits")

type LimitStore interface {
	GetSafetyLimits(ctx context.Context) (store.SafetyLimit, error)
	UpdateSafetyLimits(ctx context.Context, params store.UpdateSafetyLimitsParams) (store.SafetyLimit, error)
}

type AuditRecorder interface {
	Record(ctx context.Context, entry audit.Entry) (store.AuditEntry, error)
}

// SettingsProcessor reads and replaces the safety limits every mutation is checked against
type SettingsProcessor struct {
	store  LimitStore
	audit  AuditRecorder
	logger *observability.Logger
}

func New(store LimitStore, audit AuditRecorder, logger *observability.Logger) SettingsProcessor {
	return SettingsProcessor{
		store:  store,
		audit:  audit,
		logger: logger,
	}
}

// UpdateLimitsParams is a full replacement. A nil MaxDailySpend removes the cap.
type UpdateLimitsParams struct {
	MaxBidChangePct    float64  `json:"max_bid_change_pct"`
	MaxBudgetChangePct float64  `json:"max_budget_change_pct"`
	MinBidFloor        float64  `json:"min_bid_floor"`
	MaxBidCeiling      float64  `json:"max_bid_ceiling"`
	MaxDailySpend      *float64 `json:"max_daily_spend"`
}

func (p UpdateLimitsParams) validate() error {
	switch {
	case p.MaxBidChangePct <= 0:
		return fmt.Errorf("%w: max bid change must be positive", ErrInvalidLimits)
	case p.MaxBudgetChangePct <= 0:
		return fmt.Errorf("%w: max budget change must be positive", ErrInvalidLimits)
	case p.MinBidFloor <= 0:
		return fmt.Errorf("%w: min bid floor must be positive", ErrInvalidLimits)
	case p.MaxBidCeiling <= p.MinBidFloor:
		return fmt.Errorf("%w: max bid ceiling must exceed the floor", ErrInvalidLimits)
	case p.MaxDailySpend != nil && *p.MaxDailySpend <= 0:
		return fmt.Errorf("%w: max daily spend must be positive", ErrInvalidLimits)
	}
	return nil
}

// GetSafetyLimits returns the active limits, defaults on first read
func (p *SettingsProcessor) GetSafetyLimits(ctx context.Context) (store.SafetyLimit, error) {
	limits, err := p.store.GetSafetyLimits(ctx)
	if err != nil {
		return store.SafetyLimit{}, fmt.Errorf("failed to get safety limits: %w", err)
	}
	return limits, nil
}

// UpdateSafetyLimits replaces the limits and audits the before and after values
func (p *SettingsProcessor) UpdateSafetyLimits(ctx context.Context, actor audit.Actor, params UpdateLimitsParams) (store.SafetyLimit, error) {
	if err := params.validate(); err != nil {
		return store.SafetyLimit{}, err
	}

	before, err := p.store.GetSafetyLimits(ctx)
	if err != nil {
		return store.SafetyLimit{}, fmt.Errorf("failed to get safety limits: %w", err)
	}

	entry := audit.Entry{
		Actor:       actor,
		ActionType:  audit.ActionSafetyLimitUpdate,
		EntityType:  audit.EntitySafetyLimit,
		EntityID:    fmt.Sprint(before.ID),
		BeforeState: limitState(before),
	}

	after, err := p.store.UpdateSafetyLimits(ctx, store.UpdateSafetyLimitsParams{
		MaxBidChangePct:    params.MaxBidChangePct,
		MaxBudgetChangePct: params.MaxBudgetChangePct,
		MinBidFloor:        params.MinBidFloor,
		MaxBidCeiling:      params.MaxBidCeiling,
		MaxDailySpend:      params.MaxDailySpend,
	})
	if err != nil {
		entry.Error = err.Error()
		p.recordAudit(ctx, entry)
		return store.SafetyLimit{}, fmt.Errorf("failed to update safety limits: %w", err)
	}

	entry.Success = true
	entry.AfterState = limitState(after)
	p.recordAudit(ctx, entry)

	p.logger.Info(ctx, "safety limits updated")
	return after, nil
}

func (p *SettingsProcessor) recordAudit(ctx context.Context, entry audit.Entry) {
	if _, err := p.audit.Record(ctx, entry); err != nil {
		p.logger.Error(ctx, "failed to write audit entry for safety limits", err)
	}
}

func limitState(l store.SafetyLimit) map[string]interface{} {
	state := map[string]interface{}{
		"max_bid_change_pct":    l.MaxBidChangePct,
		"max_budget_change_pct": l.MaxBudgetChangePct,
		"min_bid_floor":         l.MinBidFloor,
		"max_bid_ceiling":       l.MaxBidCeiling,
		"max_daily_spend":       nil,
	}
	if l.MaxDailySpend != nil {
		state["max_daily_spend"] = *l.MaxDailySpend
	}
	return state
}
