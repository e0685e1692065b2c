package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

// SyncSnapshot is everything one fetch pass read from the advertising API.
type SyncSnapshot struct {
	ProfileID        string
	Campaigns        []Campaign
	AdGroups         []AdGroup
	Keywords         []Keyword
	NegativeKeywords []NegativeKeyword
	ProductTargets   []ProductTarget
}

// PersistStats counts upserted rows per entity kind. Deferred counts rows whose
// state, bid or budget were kept because a local push landed after the cutoff.
type PersistStats struct {
	Campaigns        int `json:"campaigns"`
	AdGroups         int `json:"ad_groups"`
	Keywords         int `json:"keywords"`
	NegativeKeywords int `json:"negative_keywords"`
	ProductTargets   int `json:"product_targets"`
	Deferred         int `json:"deferred"`
}

// Mutable columns are only overwritten when last_pushed_at is NULL or at/before the cutoff ($N).
// Descriptive columns always follow the fetched value. Each statement returns whether the
// mutable columns were kept.

const sqlUpsertSyncedCampaign = `
INSERT INTO campaigns (id, profile_id, campaign_type, name, state, budget, budget_type, targeting_type,
                       start_date, end_date, brand_entity_id, tactic, cost_type, synced_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
ON CONFLICT (id) DO UPDATE SET
    profile_id      = EXCLUDED.profile_id,
    name            = EXCLUDED.name,
    budget_type     = EXCLUDED.budget_type,
    targeting_type  = EXCLUDED.targeting_type,
    start_date      = EXCLUDED.start_date,
    end_date        = EXCLUDED.end_date,
    brand_entity_id = EXCLUDED.brand_entity_id,
    tactic          = EXCLUDED.tactic,
    cost_type       = EXCLUDED.cost_type,
    state  = CASE WHEN campaigns.last_pushed_at > $15 THEN campaigns.state ELSE EXCLUDED.state END,
    budget = CASE WHEN campaigns.last_pushed_at > $15 THEN campaigns.budget ELSE EXCLUDED.budget END,
    synced_at = EXCLUDED.synced_at
RETURNING COALESCE(last_pushed_at > $15, FALSE)
`

const sqlUpsertSyncedAdGroup = `
INSERT INTO ad_groups (id, campaign_id, campaign_type, name, state, default_bid, synced_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    campaign_id = EXCLUDED.campaign_id,
    name        = EXCLUDED.name,
    state       = CASE WHEN ad_groups.last_pushed_at > $8 THEN ad_groups.state ELSE EXCLUDED.state END,
    default_bid = CASE WHEN ad_groups.last_pushed_at > $8 THEN ad_groups.default_bid ELSE EXCLUDED.default_bid END,
    synced_at   = EXCLUDED.synced_at
RETURNING COALESCE(last_pushed_at > $8, FALSE)
`

const sqlUpsertSyncedKeyword = `
INSERT INTO keywords (id, ad_group_id, campaign_id, campaign_type, keyword_text, match_type, state, bid, synced_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (id) DO UPDATE SET
    ad_group_id  = EXCLUDED.ad_group_id,
    campaign_id  = EXCLUDED.campaign_id,
    keyword_text = EXCLUDED.keyword_text,
    match_type   = EXCLUDED.match_type,
    state = CASE WHEN keywords.last_pushed_at > $10 THEN keywords.state ELSE EXCLUDED.state END,
    bid   = CASE WHEN keywords.last_pushed_at > $10 THEN keywords.bid ELSE EXCLUDED.bid END,
    synced_at = EXCLUDED.synced_at
RETURNING COALESCE(last_pushed_at > $10, FALSE)
`

const sqlUpsertSyncedNegativeKeyword = `
INSERT INTO negative_keywords (id, campaign_id, ad_group_id, campaign_type, keyword_text, match_type, state, synced_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE SET
    campaign_id  = EXCLUDED.campaign_id,
    ad_group_id  = EXCLUDED.ad_group_id,
    keyword_text = EXCLUDED.keyword_text,
    match_type   = EXCLUDED.match_type,
    state = CASE WHEN negative_keywords.last_pushed_at > $9 THEN negative_keywords.state ELSE EXCLUDED.state END,
    synced_at = EXCLUDED.synced_at
RETURNING COALESCE(last_pushed_at > $9, FALSE)
`

const sqlUpsertSyncedProductTarget = `
INSERT INTO product_targets (id, ad_group_id, campaign_id, campaign_type, target_type, expression_type, expression, state, bid, synced_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (id) DO UPDATE SET
    ad_group_id     = EXCLUDED.ad_group_id,
    campaign_id     = EXCLUDED.campaign_id,
    target_type     = EXCLUDED.target_type,
    expression_type = EXCLUDED.expression_type,
    expression      = EXCLUDED.expression,
    state = CASE WHEN product_targets.last_pushed_at > $11 THEN product_targets.state ELSE EXCLUDED.state END,
    bid   = CASE WHEN product_targets.last_pushed_at > $11 THEN product_targets.bid ELSE EXCLUDED.bid END,
    synced_at = EXCLUDED.synced_at
RETURNING COALESCE(last_pushed_at > $11, FALSE)
`

// PersistSyncSnapshot upserts every fetched entity in a single transaction, parents before
// children. Rows pushed locally after cutoff keep their state, bid and budget.
func (s *Store) PersistSyncSnapshot(ctx context.Context, snap SyncSnapshot, syncedAt, cutoff time.Time) (PersistStats, error) {
	var stats PersistStats

	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, c := range snap.Campaigns {
			deferred, err := upsertReturningDeferred(ctx, tx, sqlUpsertSyncedCampaign,
				c.ID, snap.ProfileID, c.CampaignType, c.Name, c.State, c.Budget, c.BudgetType, c.TargetingType,
				c.StartDate, c.EndDate, c.BrandEntityID, c.Tactic, c.CostType, syncedAt, cutoff)
			if err != nil {
				return fmt.Errorf("failed to upsert campaign %s: %w", c.ID, err)
			}
			stats.Campaigns++
			if deferred {
				stats.Deferred++
			}
		}

		for _, ag := range snap.AdGroups {
			deferred, err := upsertReturningDeferred(ctx, tx, sqlUpsertSyncedAdGroup,
				ag.ID, ag.CampaignID, ag.CampaignType, ag.Name, ag.State, ag.DefaultBid, syncedAt, cutoff)
			if err != nil {
				return fmt.Errorf("failed to upsert ad group %s: %w", ag.ID, err)
			}
			stats.AdGroups++
			if deferred {
				stats.Deferred++
			}
		}

		for _, k := range snap.Keywords {
			deferred, err := upsertReturningDeferred(ctx, tx, sqlUpsertSyncedKeyword,
				k.ID, k.AdGroupID, k.CampaignID, k.CampaignType, k.KeywordText, k.MatchType, k.State, k.Bid, syncedAt, cutoff)
			if err != nil {
				return fmt.Errorf("failed to upsert keyword %s: %w", k.ID, err)
			}
			stats.Keywords++
			if deferred {
				stats.Deferred++
			}
		}

		for _, n := range snap.NegativeKeywords {
			deferred, err := upsertReturningDeferred(ctx, tx, sqlUpsertSyncedNegativeKeyword,
				n.ID, n.CampaignID, n.AdGroupID, n.CampaignType, n.KeywordText, n.MatchType, n.State, syncedAt, cutoff)
			if err != nil {
				return fmt.Errorf("failed to upsert negative keyword %s: %w", n.ID, err)
			}
			stats.NegativeKeywords++
			if deferred {
				stats.Deferred++
			}
		}

		for _, pt := range snap.ProductTargets {
			deferred, err := upsertReturningDeferred(ctx, tx, sqlUpsertSyncedProductTarget,
				pt.ID, pt.AdGroupID, pt.CampaignID, pt.CampaignType, pt.TargetType, pt.ExpressionType,
				pt.Expression, pt.State, pt.Bid, syncedAt, cutoff)
			if err != nil {
				return fmt.Errorf("failed to upsert product target %s: %w", pt.ID, err)
			}
			stats.ProductTargets++
			if deferred {
				stats.Deferred++
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to persist sync snapshot", err)
		return PersistStats{}, err
	}
	return stats, nil
}

func upsertReturningDeferred(ctx context.Context, tx *sqlx.Tx, query string, args ...interface{}) (bool, error) {
	var deferred bool
	if err := tx.QueryRowxContext(ctx, query, args...).Scan(&deferred); err != nil {
		return false, err
	}
	return deferred, nil
}
