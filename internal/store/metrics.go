package store

import (
	"context"
	"fmt"

	"adsync/internal/observability"
)

// MetricUpsertResult reports how many rows were written and how many were dropped
// because their owner entity does not exist locally.
type MetricUpsertResult struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
}

const sqlUpsertCampaignMetric = `
INSERT INTO campaign_metrics (campaign_id, date, impressions, clicks, cost, orders, sales)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (campaign_id, date) DO UPDATE SET
    impressions = EXCLUDED.impressions,
    clicks      = EXCLUDED.clicks,
    cost        = EXCLUDED.cost,
    orders      = EXCLUDED.orders,
    sales       = EXCLUDED.sales
`

const sqlUpsertKeywordMetric = `
INSERT INTO keyword_metrics (keyword_id, date, impressions, clicks, cost, orders, sales)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (keyword_id, date) DO UPDATE SET
    impressions = EXCLUDED.impressions,
    clicks      = EXCLUDED.clicks,
    cost        = EXCLUDED.cost,
    orders      = EXCLUDED.orders,
    sales       = EXCLUDED.sales
`

const sqlUpsertProductTargetMetric = `
INSERT INTO product_target_metrics (product_target_id, date, impressions, clicks, cost, orders, sales)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (product_target_id, date) DO UPDATE SET
    impressions = EXCLUDED.impressions,
    clicks      = EXCLUDED.clicks,
    cost        = EXCLUDED.cost,
    orders      = EXCLUDED.orders,
    sales       = EXCLUDED.sales
`

// UpsertCampaignMetrics inserts or replaces daily campaign metrics
func (s *Store) UpsertCampaignMetrics(ctx context.Context, rows []MetricRow) (MetricUpsertResult, error) {
	return s.upsertMetrics(ctx, "campaign", sqlUpsertCampaignMetric, rows)
}

// UpsertKeywordMetrics inserts or replaces daily keyword metrics
func (s *Store) UpsertKeywordMetrics(ctx context.Context, rows []MetricRow) (MetricUpsertResult, error) {
	return s.upsertMetrics(ctx, "keyword", sqlUpsertKeywordMetric, rows)
}

// UpsertProductTargetMetrics inserts or replaces daily product target metrics
func (s *Store) UpsertProductTargetMetrics(ctx context.Context, rows []MetricRow) (MetricUpsertResult, error) {
	return s.upsertMetrics(ctx, "product_target", sqlUpsertProductTargetMetric, rows)
}

// upsertMetrics writes rows one statement at a time so a missing owner only drops that row.
func (s *Store) upsertMetrics(ctx context.Context, owner, query string, rows []MetricRow) (MetricUpsertResult, error) {
	var result MetricUpsertResult
	for _, r := range rows {
		_, err := s.db.ExecContext(ctx, query, r.OwnerID, r.Date, r.Impressions, r.Clicks, r.Cost, r.Orders, r.Sales)
		if err != nil {
			if isForeignKeyViolation(err) {
				result.Skipped++
				s.logger.Warn(ctx, "skipping metric row for unknown owner",
					observability.Field{Key: "owner_type", Value: owner},
					observability.Field{Key: "owner_id", Value: r.OwnerID},
					observability.Field{Key: "date", Value: r.Date},
				)
				continue
			}
			s.logger.Error(ctx, fmt.Sprintf("failed to upsert %s metric", owner), err)
			return result, fmt.Errorf("failed to upsert %s metric: %w", owner, err)
		}
		result.Written++
	}
	return result, nil
}

const sqlSumKeywordMetrics = `
SELECT COALESCE(SUM(impressions), 0) AS impressions,
       COALESCE(SUM(clicks), 0) AS clicks,
       COALESCE(SUM(cost), 0) AS cost,
       COALESCE(SUM(orders), 0) AS orders,
       COALESCE(SUM(sales), 0) AS sales
FROM keyword_metrics
WHERE keyword_id = $1 AND date >= $2 AND date <= $3
`

// SumKeywordMetrics aggregates one keyword's metrics over an inclusive YYYYMMDD range
func (s *Store) SumKeywordMetrics(ctx context.Context, keywordID, from, to string) (MetricTotals, error) {
	var totals MetricTotals
	if err := s.db.GetContext(ctx, &totals, sqlSumKeywordMetrics, keywordID, from, to); err != nil {
		s.logger.Error(ctx, "failed to sum keyword metrics", err)
		return MetricTotals{}, fmt.Errorf("failed to sum keyword metrics: %w", err)
	}
	return totals, nil
}

const sqlSumCampaignMetrics = `
SELECT COALESCE(SUM(m.impressions), 0) AS impressions,
       COALESCE(SUM(m.clicks), 0) AS clicks,
       COALESCE(SUM(m.cost), 0) AS cost,
       COALESCE(SUM(m.orders), 0) AS orders,
       COALESCE(SUM(m.sales), 0) AS sales
FROM campaign_metrics m
JOIN campaigns c ON c.id = m.campaign_id
WHERE c.profile_id = $1
  AND ($2 = '' OR m.date >= $2)
  AND ($3 = '' OR m.date <= $3)
`

// SumCampaignMetrics totals a profile's daily campaign metrics between from and to
// (YYYYMMDD, inclusive). An empty bound is open.
func (s *Store) SumCampaignMetrics(ctx context.Context, profileID, from, to string) (MetricTotals, error) {
	var totals MetricTotals
	if err := s.db.GetContext(ctx, &totals, sqlSumCampaignMetrics, profileID, from, to); err != nil {
		s.logger.Error(ctx, "failed to sum campaign metrics", err)
		return MetricTotals{}, fmt.Errorf("failed to sum campaign metrics: %w", err)
	}
	return totals, nil
}

const sqlCountCampaigns = `
SELECT COUNT(*) AS total,
       COUNT(*) FILTER (WHERE state = 'enabled') AS enabled,
       COUNT(*) FILTER (WHERE state = 'paused') AS paused
FROM campaigns
WHERE profile_id = $1
`

func (s *Store) CountCampaigns(ctx context.Context, profileID string) (CampaignCounts, error) {
	var counts CampaignCounts
	if err := s.db.GetContext(ctx, &counts, sqlCountCampaigns, profileID); err != nil {
		s.logger.Error(ctx, "failed to count campaigns", err)
		return CampaignCounts{}, fmt.Errorf("failed to count campaigns: %w", err)
	}
	return counts, nil
}
