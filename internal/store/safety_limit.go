package store

import (
	"context"
	"fmt"
)

const safetyLimitColumns = `id, max_bid_change_pct, max_budget_change_pct, min_bid_floor, max_bid_ceiling, max_daily_spend, created_at, updated_at`

// The table holds a single row with id 1; the first read creates it with defaults.
const sqlGetOrCreateSafetyLimits = `
WITH ins AS (
    INSERT INTO safety_limits (id) VALUES (1)
    ON CONFLICT (id) DO NOTHING
    RETURNING ` + safetyLimitColumns + `
)
SELECT ` + safetyLimitColumns + ` FROM ins
UNION ALL
SELECT ` + safetyLimitColumns + ` FROM safety_limits WHERE id = 1
LIMIT 1
`

// GetSafetyLimits returns the active limits, creating the default row when absent
func (s *Store) GetSafetyLimits(ctx context.Context) (SafetyLimit, error) {
	var limits SafetyLimit
	if err := s.db.GetContext(ctx, &limits, sqlGetOrCreateSafetyLimits); err != nil {
		s.logger.Error(ctx, "failed to get safety limits", err)
		return SafetyLimit{}, fmt.Errorf("failed to get safety limits: %w", err)
	}
	return limits, nil
}

// UpdateSafetyLimitsParams holds the full replacement set of limits
type UpdateSafetyLimitsParams struct {
	MaxBidChangePct    float64
	MaxBudgetChangePct float64
	MinBidFloor        float64
	MaxBidCeiling      float64
	MaxDailySpend      *float64
}

const sqlUpdateSafetyLimits = `
INSERT INTO safety_limits (id, max_bid_change_pct, max_budget_change_pct, min_bid_floor, max_bid_ceiling, max_daily_spend)
VALUES (1, $1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    max_bid_change_pct    = EXCLUDED.max_bid_change_pct,
    max_budget_change_pct = EXCLUDED.max_budget_change_pct,
    min_bid_floor         = EXCLUDED.min_bid_floor,
    max_bid_ceiling       = EXCLUDED.max_bid_ceiling,
    max_daily_spend       = EXCLUDED.max_daily_spend,
    updated_at            = NOW()
RETURNING ` + safetyLimitColumns

// UpdateSafetyLimits replaces the active limits
func (s *Store) UpdateSafetyLimits(ctx context.Context, params UpdateSafetyLimitsParams) (SafetyLimit, error) {
	var limits SafetyLimit
	err := s.db.GetContext(ctx, &limits, sqlUpdateSafetyLimits,
		params.MaxBidChangePct, params.MaxBudgetChangePct, params.MinBidFloor, params.MaxBidCeiling, params.MaxDailySpend)
	if err != nil {
		s.logger.Error(ctx, "failed to update safety limits", err)
		return SafetyLimit{}, fmt.Errorf("failed to update safety limits: %w", err)
	}
	return limits, nil
}
