package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const negativeKeywordColumns = `id, campaign_id, ad_group_id, campaign_type, keyword_text, match_type, state,
last_pushed_at, synced_at, created_at, updated_at`

const sqlGetNegativeKeywordByID = `
SELECT ` + negativeKeywordColumns + `
FROM negative_keywords
WHERE id = $1
`

// GetNegativeKeywordByID retrieves a negative keyword by its remote id
func (s *Store) GetNegativeKeywordByID(ctx context.Context, id string) (NegativeKeyword, error) {
	var n NegativeKeyword
	err := s.db.GetContext(ctx, &n, sqlGetNegativeKeywordByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return NegativeKeyword{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get negative keyword", err)
		return NegativeKeyword{}, fmt.Errorf("failed to get negative keyword: %w", err)
	}
	return n, nil
}

const sqlListNegativeKeywordsByCampaign = `
SELECT ` + negativeKeywordColumns + `
FROM negative_keywords
WHERE campaign_id = $1 AND state <> 'archived'
ORDER BY keyword_text
`

// ListNegativeKeywordsByCampaign lists live negative keywords at both levels for a campaign
func (s *Store) ListNegativeKeywordsByCampaign(ctx context.Context, campaignID string) ([]NegativeKeyword, error) {
	var negatives []NegativeKeyword
	if err := s.db.SelectContext(ctx, &negatives, sqlListNegativeKeywordsByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list negative keywords", err)
		return nil, fmt.Errorf("failed to list negative keywords: %w", err)
	}
	return negatives, nil
}

const sqlCreateNegativeKeyword = `
INSERT INTO negative_keywords (id, campaign_id, ad_group_id, campaign_type, keyword_text, match_type, state, last_pushed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING ` + negativeKeywordColumns

// CreateNegativeKeyword mirrors a newly created negative keyword
func (s *Store) CreateNegativeKeyword(ctx context.Context, n NegativeKeyword) (NegativeKeyword, error) {
	var created NegativeKeyword
	err := s.db.GetContext(ctx, &created, sqlCreateNegativeKeyword,
		n.ID, n.CampaignID, n.AdGroupID, n.CampaignType, n.KeywordText, n.MatchType, n.State, n.LastPushedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create negative keyword", err)
		return NegativeKeyword{}, fmt.Errorf("failed to create negative keyword: %w", err)
	}
	return created, nil
}

const sqlUpdateNegativeKeywordState = `
UPDATE negative_keywords
SET state = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateNegativeKeywordState stores a pushed state, used for archiving
func (s *Store) UpdateNegativeKeywordState(ctx context.Context, id, state string, pushedAt time.Time) error {
	return s.execPushed(ctx, "negative keyword state", sqlUpdateNegativeKeywordState, id, state, pushedAt)
}
