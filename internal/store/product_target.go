package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

const productTargetColumns = `id, ad_group_id, campaign_id, campaign_type, target_type, expression_type, expression,
state, bid, last_pushed_at, synced_at, created_at, updated_at`

const sqlGetProductTargetByID = `
SELECT ` + productTargetColumns + `
FROM product_targets
WHERE id = $1
`

// GetProductTargetByID retrieves a product target by its remote id
func (s *Store) GetProductTargetByID(ctx context.Context, id string) (ProductTarget, error) {
	var pt ProductTarget
	err := s.db.GetContext(ctx, &pt, sqlGetProductTargetByID, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProductTarget{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get product target", err)
		return ProductTarget{}, fmt.Errorf("failed to get product target: %w", err)
	}
	return pt, nil
}

const sqlCreateProductTarget = `
INSERT INTO product_targets (id, ad_group_id, campaign_id, campaign_type, target_type, expression_type, expression, state, bid, last_pushed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + productTargetColumns

// CreateProductTargets mirrors a batch of newly created targets in one transaction
func (s *Store) CreateProductTargets(ctx context.Context, targets []ProductTarget) ([]ProductTarget, error) {
	created := make([]ProductTarget, 0, len(targets))
	err := s.withTx(ctx, func(tx *sqlx.Tx) error {
		for _, pt := range targets {
			var row ProductTarget
			err := tx.GetContext(ctx, &row, sqlCreateProductTarget,
				pt.ID, pt.AdGroupID, pt.CampaignID, pt.CampaignType, pt.TargetType, pt.ExpressionType,
				pt.Expression, pt.State, pt.Bid, pt.LastPushedAt)
			if err != nil {
				return fmt.Errorf("failed to create product target %s: %w", pt.ID, err)
			}
			created = append(created, row)
		}
		return nil
	})
	if err != nil {
		s.logger.Error(ctx, "failed to create product targets", err)
		return nil, err
	}
	return created, nil
}

const sqlUpdateProductTargetBid = `
UPDATE product_targets
SET bid = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateProductTargetBid stores a pushed bid and marks the row as recently pushed
func (s *Store) UpdateProductTargetBid(ctx context.Context, id string, bid float64, pushedAt time.Time) error {
	return s.execPushed(ctx, "product target bid", sqlUpdateProductTargetBid, id, bid, pushedAt)
}

const sqlUpdateProductTargetState = `
UPDATE product_targets
SET state = $2, last_pushed_at = $3, updated_at = NOW()
WHERE id = $1
`

// UpdateProductTargetState stores a pushed state and marks the row as recently pushed
func (s *Store) UpdateProductTargetState(ctx context.Context, id, state string, pushedAt time.Time) error {
	return s.execPushed(ctx, "product target state", sqlUpdateProductTargetState, id, state, pushedAt)
}
