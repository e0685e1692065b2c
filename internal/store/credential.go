package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const credentialColumns = `id, profile_id, country_code, access_token, refresh_token, expires_at, created_at, updated_at`

const sqlGetActiveCredential = `
SELECT ` + credentialColumns + `
FROM amazon_credentials
ORDER BY updated_at DESC
LIMIT 1
`

// GetActiveCredential returns the single connected Amazon credential
func (s *Store) GetActiveCredential(ctx context.Context) (AmazonCredential, error) {
	var cred AmazonCredential
	err := s.db.GetContext(ctx, &cred, sqlGetActiveCredential)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AmazonCredential{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get amazon credential", err)
		return AmazonCredential{}, fmt.Errorf("failed to get amazon credential: %w", err)
	}
	return cred, nil
}

const sqlDeleteCredentials = `DELETE FROM amazon_credentials`

const sqlInsertCredential = `
INSERT INTO amazon_credentials (access_token, refresh_token, expires_at)
VALUES ($1, $2, $3)
RETURNING ` + credentialColumns

// ReplaceCredential stores a freshly authorized token pair, replacing any previous connection
func (s *Store) ReplaceCredential(ctx context.Context, accessToken, refreshToken string, expiresAt time.Time) (AmazonCredential, error) {
	var cred AmazonCredential
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return AmazonCredential{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, sqlDeleteCredentials); err != nil {
		s.logger.Error(ctx, "failed to clear amazon credentials", err)
		return AmazonCredential{}, fmt.Errorf("failed to clear amazon credentials: %w", err)
	}
	if err := tx.GetContext(ctx, &cred, sqlInsertCredential, accessToken, refreshToken, expiresAt); err != nil {
		s.logger.Error(ctx, "failed to insert amazon credential", err)
		return AmazonCredential{}, fmt.Errorf("failed to insert amazon credential: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return AmazonCredential{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return cred, nil
}

const sqlUpdateCredentialTokens = `
UPDATE amazon_credentials
SET access_token = $2, refresh_token = $3, expires_at = $4, updated_at = NOW()
WHERE id = $1
`

// UpdateCredentialTokens persists a refreshed token pair
func (s *Store) UpdateCredentialTokens(ctx context.Context, id uuid.UUID, accessToken, refreshToken string, expiresAt time.Time) error {
	res, err := s.db.ExecContext(ctx, sqlUpdateCredentialTokens, id, accessToken, refreshToken, expiresAt)
	if err != nil {
		s.logger.Error(ctx, "failed to update amazon tokens", err)
		return fmt.Errorf("failed to update amazon tokens: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

const sqlSetCredentialProfile = `
UPDATE amazon_credentials
SET profile_id = $2, country_code = $3, updated_at = NOW()
WHERE id = $1
RETURNING ` + credentialColumns

// SetCredentialProfile selects the advertising profile used for every remote call
func (s *Store) SetCredentialProfile(ctx context.Context, id uuid.UUID, profileID string, countryCode *string) (AmazonCredential, error) {
	var cred AmazonCredential
	err := s.db.GetContext(ctx, &cred, sqlSetCredentialProfile, id, profileID, countryCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return AmazonCredential{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to set amazon profile", err)
		return AmazonCredential{}, fmt.Errorf("failed to set amazon profile: %w", err)
	}
	return cred, nil
}
