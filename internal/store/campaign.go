package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const campaignColumns = `id, profile_id, campaign_type, name, state, budget, budget_type, targeting_type,
start_date, end_date, brand_entity_id, tactic, cost_type, last_pushed_at, synced_at, created_at, updated_at`

const sqlGetCampaignByID = `
SELECT ` + campaignColumns + `
FROM campaigns
WHERE id = $1
`

// GetCampaignByID retrieves a campaign by its remote id
func (s *Store) GetCampaignByID(ctx context.Context, id string) (Campaign, error) {
	var c Campaign
	err := s.db.GetContext(ctx, &c, sqlGetCampaignByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Campaign{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get campaign", err)
		return Campaign{}, fmt.Errorf("failed to get campaign: %w", err)
	}
	return c, nil
}

// CampaignFilter narrows campaign listings
type CampaignFilter struct {
	ProfileID    string
	CampaignType string
	State        string
	Since        string // YYYYMMDD, lower bound for metric totals
}

const sqlListCampaignPerformance = `
SELECT c.id, c.profile_id, c.campaign_type, c.name, c.state, c.budget, c.budget_type, c.targeting_type,
       c.start_date, c.end_date, c.brand_entity_id, c.tactic, c.cost_type, c.last_pushed_at, c.synced_at,
       c.created_at, c.updated_at,
       COALESCE(SUM(m.impressions), 0) AS impressions,
       COALESCE(SUM(m.clicks), 0) AS clicks,
       COALESCE(SUM(m.cost), 0) AS cost,
       COALESCE(SUM(m.orders), 0) AS orders,
       COALESCE(SUM(m.sales), 0) AS sales
FROM campaigns c
LEFT JOIN campaign_metrics m ON m.campaign_id = c.id AND m.date >= $1
WHERE ($2 = '' OR c.campaign_type = $2)
  AND ($3 = '' OR c.state = $3)
  AND ($4 = '' OR c.profile_id = $4)
GROUP BY c.id
ORDER BY c.name
`

// ListCampaignPerformance lists campaigns with metrics summed from filter.Since onwards
func (s *Store) ListCampaignPerformance(ctx context.Context, filter CampaignFilter) ([]CampaignPerformance, error) {
	var campaigns []CampaignPerformance
	err := s.db.SelectContext(ctx, &campaigns, sqlListCampaignPerformance,
		filter.Since, filter.CampaignType, filter.State, filter.ProfileID)
	if err != nil {
		s.logger.Error(ctx, "failed to list campaigns", err)
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	return campaigns, nil
}

const sqlCreateCampaign = `
INSERT INTO campaigns (id, profile_id, campaign_type, name, state, budget, budget_type, targeting_type,
                       start_date, end_date, brand_entity_id, tactic, cost_type, last_pushed_at)
VALUES (:id, :profile_id, :campaign_type, :name, :state, :budget, :budget_type, :targeting_type,
        :start_date, :end_date, :brand_entity_id, :tactic, :cost_type, :last_pushed_at)
RETURNING ` + campaignColumns

// CreateCampaign mirrors a campaign the advertising API has just created
func (s *Store) CreateCampaign(ctx context.Context, c Campaign) (Campaign, error) {
	var created Campaign
	rows, err := s.db.NamedQueryContext(ctx, sqlCreateCampaign, c)
	if err != nil {
		s.logger.Error(ctx, "failed to create campaign", err)
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", err)
	}
	defer rows.Close()
	if !rows.Next() {
		return Campaign{}, fmt.Errorf("failed to create campaign: %w", sql.ErrNoRows)
	}
	if err := rows.StructScan(&created); err != nil {
		return Campaign{}, fmt.Errorf("failed to scan campaign: %w", err)
	}
	return created, nil
}

const sqlUpdateCampaignBudget = `
UPDATE campaigns
SET budget = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateCampaignBudget stores a pushed budget and marks the row as recently pushed
func (s *Store) UpdateCampaignBudget(ctx context.Context, id string, budget float64, pushedAt time.Time) error {
	return s.execPushed(ctx, "campaign budget", sqlUpdateCampaignBudget, id, budget, pushedAt)
}

const sqlUpdateCampaignState = `
UPDATE campaigns
SET state = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateCampaignState stores a pushed state and marks the row as recently pushed
func (s *Store) UpdateCampaignState(ctx context.Context, id, state string, pushedAt time.Time) error {
	return s.execPushed(ctx, "campaign state", sqlUpdateCampaignState, id, state, pushedAt)
}

// execPushed runs a single-row update keyed by id and maps a missing row to ErrNotFound.
func (s *Store) execPushed(ctx context.Context, what, query string, id string, value interface{}, pushedAt time.Time) error {
	res, err := s.db.ExecContext(ctx, query, id, value, pushedAt)
	if err != nil {
		s.logger.Error(ctx, fmt.Sprintf("failed to update %s", what), err)
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update %s: %w", what, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
