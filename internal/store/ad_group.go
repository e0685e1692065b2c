package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

const adGroupColumns = `id, campaign_id, campaign_type, name, state, default_bid, last_pushed_at, synced_at, created_at, updated_at`

const sqlGetAdGroupByID = `
SELECT ` + adGroupColumns + `
FROM ad_groups
WHERE id = $1
`

// GetAdGroupByID retrieves an ad group by its remote id
func (s *Store) GetAdGroupByID(ctx context.Context, id string) (AdGroup, error) {
	var ag AdGroup
	err := s.db.GetContext(ctx, &ag, sqlGetAdGroupByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AdGroup{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get ad group", err)
		return AdGroup{}, fmt.Errorf("failed to get ad group: %w", err)
	}
	return ag, nil
}

const sqlListAdGroupsByCampaign = `
SELECT ` + adGroupColumns + `
FROM ad_groups
WHERE campaign_id = $1
ORDER BY name
`

// ListAdGroupsByCampaign lists the ad groups owned by a campaign
func (s *Store) ListAdGroupsByCampaign(ctx context.Context, campaignID string) ([]AdGroup, error) {
	var groups []AdGroup
	if err := s.db.SelectContext(ctx, &groups, sqlListAdGroupsByCampaign, campaignID); err != nil {
		s.logger.Error(ctx, "failed to list ad groups", err)
		return nil, fmt.Errorf("failed to list ad groups: %w", err)
	}
	return groups, nil
}

const sqlCreateAdGroup = `
INSERT INTO ad_groups (id, campaign_id, campaign_type, name, state, default_bid, last_pushed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + adGroupColumns

// CreateAdGroup mirrors an ad group the advertising API has just created
func (s *Store) CreateAdGroup(ctx context.Context, ag AdGroup) (AdGroup, error) {
	var created AdGroup
	err := s.db.GetContext(ctx, &created, sqlCreateAdGroup,
		ag.ID, ag.CampaignID, ag.CampaignType, ag.Name, ag.State, ag.DefaultBid, ag.LastPushedAt)
	if err != nil {
		s.logger.Error(ctx, "failed to create ad group", err)
		return AdGroup{}, fmt.Errorf("failed to create ad group: %w", err)
	}
	return created, nil
}

const sqlUpdateAdGroupState = `
UPDATE ad_groups
SET state = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateAdGroupState stores a pushed state and marks the row as recently pushed
func (s *Store) UpdateAdGroupState(ctx context.Context, id, state string, pushedAt time.Time) error {
	return s.execPushed(ctx, "ad group state", sqlUpdateAdGroupState, id, state, pushedAt)
}
