package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const keywordColumns = `id, ad_group_id, campaign_id, campaign_type, keyword_text, match_type, state, bid,
last_pushed_at, synced_at, created_at, updated_at`

const sqlGetKeywordByID = `
SELECT ` + keywordColumns + `
FROM keywords
WHERE id = $1
`

// GetKeywordByID retrieves a keyword by its remote id
func (s *Store) GetKeywordByID(ctx context.Context, id string) (Keyword, error) {
	var k Keyword
	err := s.db.GetContext(ctx, &k, sqlGetKeywordByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Keyword{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get keyword", err)
		return Keyword{}, fmt.Errorf("failed to get keyword: %w", err)
	}
	return k, nil
}

// KeywordFilter narrows keyword performance listings
type KeywordFilter struct {
	ProfileID  string // matched through the keyword's campaign
	Since      string // YYYYMMDD, lower bound for metric totals
	CampaignID string
	AdGroupID  string
}

const sqlListKeywordPerformance = `
SELECT k.id, k.ad_group_id, k.campaign_id, k.campaign_type, k.keyword_text, k.match_type, k.state, k.bid,
       k.last_pushed_at, k.synced_at, k.created_at, k.updated_at,
       COALESCE(SUM(m.impressions), 0) AS impressions,
       COALESCE(SUM(m.clicks), 0) AS clicks,
       COALESCE(SUM(m.cost), 0) AS cost,
       COALESCE(SUM(m.orders), 0) AS orders,
       COALESCE(SUM(m.sales), 0) AS sales
FROM keywords k
LEFT JOIN campaigns c ON c.id = k.campaign_id
LEFT JOIN keyword_metrics m ON m.keyword_id = k.id AND m.date >= $1
WHERE k.state <> 'archived'
  AND ($2 = '' OR k.campaign_id = $2)
  AND ($3 = '' OR k.ad_group_id = $3)
  AND ($4 = '' OR c.profile_id = $4)
GROUP BY k.id
ORDER BY k.id
`

// ListKeywordPerformance returns every non-archived keyword with metrics summed from filter.Since onwards
func (s *Store) ListKeywordPerformance(ctx context.Context, filter KeywordFilter) ([]KeywordPerformance, error) {
	var keywords []KeywordPerformance
	err := s.db.SelectContext(ctx, &keywords, sqlListKeywordPerformance,
		filter.Since, filter.CampaignID, filter.AdGroupID, filter.ProfileID)
	if err != nil {
		s.logger.Error(ctx, "failed to list keyword performance", err)
		return nil, fmt.Errorf("failed to list keyword performance: %w", err)
	}
	return keywords, nil
}

const sqlCreateKeyword = `
INSERT INTO keywords (id, ad_group_id, campaign_id, campaign_type, keyword_text, match_type, state, bid, last_pushed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + keywordColumns

// CreateKeywords mirrors a batch of newly created keywords in one transaction
func (s *Store) CreateKeywords(ctx context.Context, keywords []Keyword) ([]Keyword, error) {
	created := make([]Keyword, 0, len(keywords))
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, k := range keywords {
			var row Keyword
			err := tx.GetContext(ctx, &row, sqlCreateKeyword,
				k.ID, k.AdGroupID, k.CampaignID, k.CampaignType, k.KeywordText, k.MatchType, k.State, k.Bid, k.LastPushedAt)
			if err != nil {
				return fmt.Errorf("failed to create keyword %s: %w", k.ID, err)
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create keywords", err)
		return nil, err
	}
	return created, nil
}

const sqlUpdateKeywordBid = `
UPDATE keywords
SET bid = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateKeywordBid stores a pushed bid and marks the row as recently pushed
func (s *Store) UpdateKeywordBid(ctx context.Context, id string, bid float64, pushedAt time.Time) error {
	return s.execPushed(ctx, "keyword bid", sqlUpdateKeywordBid, id, bid, pushedAt)
}

const sqlUpdateKeywordState = `
UPDATE keywords
SET state = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateKeywordState stores a pushed state and marks the row as recently pushed
func (s *Store) UpdateKeywordState(ctx context.Context, id, state string, pushedAt time.Time) error {
	return s.execPushed(ctx, "keyword state", sqlUpdateKeywordState, id, state, pushedAt)
}
