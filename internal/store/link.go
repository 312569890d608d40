package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const linkColumns = `id, workspace_id, domain, key, url, program_id, partner_id, track_conversion, expires_at, expired_url, disabled_at, archived, clicks, leads, sales, sale_amount, last_clicked, created_at, updated_at`

const linkUniqueConstraint = "links_domain_key_unique"

// CreateLinkParams represents parameters for creating a link
type CreateLinkParams struct {
	WorkspaceID     uuid.UUID
	Domain          string
	Key             string
	URL             string
	ProgramID       *uuid.UUID
	PartnerID       *uuid.UUID
	TrackConversion bool
	ExpiresAt       *time.Time
	ExpiredURL      *string
}

// UpdateLinkParams represents parameters for updating a link. Nil fields are left untouched.
type UpdateLinkParams struct {
	Key             *string
	URL             *string
	TrackConversion *bool
	ExpiresAt       *time.Time
	ExpiredURL      *string
	Archived        *bool
}

const sqlCreateLink = `
INSERT INTO links (workspace_id, domain, key, url, program_id, partner_id, track_conversion, expires_at, expired_url)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + linkColumns

// CreateLink creates a new short link
func (s *Store) CreateLink(ctx context.Context, params CreateLinkParams) (Link, error) {
	var link Link
	err := s.db.GetContext(ctx, &link, sqlCreateLink,
		params.WorkspaceID,
		strings.ToLower(params.Domain),
		params.Key,
		params.URL,
		params.ProgramID,
		params.PartnerID,
		params.TrackConversion,
		params.ExpiresAt,
		params.ExpiredURL)
	if err != nil {
		if isUniqueViolation(err, linkUniqueConstraint) {
			return Link{}, ErrLinkKeyExists
		}
		s.logger.Error(ctx, "failed to create link", err)
		return Link{}, fmt.Errorf("failed to create link: %w", err)
	}
	return link, nil
}

const sqlGetLinkByID = `SELECT ` + linkColumns + ` FROM links WHERE id = $1`

// GetLinkByID retrieves a link by ID
func (s *Store) GetLinkByID(ctx context.Context, linkID uuid.UUID) (Link, error) {
	var link Link
	err := s.db.GetContext(ctx, &link, sqlGetLinkByID, linkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Link{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get link by id", err)
		return Link{}, fmt.Errorf("failed to get link by id: %w", err)
	}
	return link, nil
}

const sqlGetLinkByDomainKey = `SELECT ` + linkColumns + ` FROM links WHERE domain = lower($1) AND key = $2`

// GetLinkByDomainKey retrieves a link by its short link pair. The domain is compared lower-cased.
func (s *Store) GetLinkByDomainKey(ctx context.Context, domain, key string) (Link, error) {
	var link Link
	err := s.db.GetContext(ctx, &link, sqlGetLinkByDomainKey, domain, key)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Link{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get link by domain and key", err)
		return Link{}, fmt.Errorf("failed to get link by domain and key: %w", err)
	}
	return link, nil
}

const sqlUpdateLink = `
UPDATE links
SET key = COALESCE($2, key),
    url = COALESCE($3, url),
    track_conversion = COALESCE($4, track_conversion),
    expires_at = COALESCE($5, expires_at),
    expired_url = COALESCE($6, expired_url),
    archived = COALESCE($7, archived),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + linkColumns

// UpdateLink updates the mutable fields of a link
func (s *Store) UpdateLink(ctx context.Context, linkID uuid.UUID, params UpdateLinkParams) (Link, error) {
	var link Link
	err := s.db.GetContext(ctx, &link, sqlUpdateLink,
		linkID,
		params.Key,
		params.URL,
		params.TrackConversion,
		params.ExpiresAt,
		params.ExpiredURL,
		params.Archived)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Link{}, ErrNotFound
		}
		if isUniqueViolation(err, linkUniqueConstraint) {
			return Link{}, ErrLinkKeyExists
		}
		s.logger.Error(ctx, "failed to update link", err)
		return Link{}, fmt.Errorf("failed to update link: %w", err)
	}
	return link, nil
}

const sqlDeleteLink = `DELETE FROM links WHERE id = $1 RETURNING id, domain, key`

// DeleteLink deletes a link and returns the pair that identified it
func (s *Store) DeleteLink(ctx context.Context, linkID uuid.UUID) (LinkRef, error) {
	var ref LinkRef
	err := s.db.GetContext(ctx, &ref, sqlDeleteLink, linkID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LinkRef{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to delete link", err)
		return LinkRef{}, fmt.Errorf("failed to delete link: %w", err)
	}
	return ref, nil
}

const sqlIncrementLinkClicks = `
UPDATE links
SET clicks = clicks + 1,
    last_clicked = GREATEST(COALESCE(last_clicked, $2), $2)
WHERE id = $1
`

// IncrementLinkClicks bumps the click counter of a link
func (s *Store) IncrementLinkClicks(ctx context.Context, linkID uuid.UUID, clickedAt time.Time) error {
	return s.execAffectingOne(ctx, "increment link clicks", sqlIncrementLinkClicks, linkID, clickedAt)
}

const sqlIncrementLinkLeads = `UPDATE links SET leads = leads + 1 WHERE id = $1`

const sqlIncrementLinkSales = `UPDATE links SET sales = sales + 1, sale_amount = sale_amount + $2 WHERE id = $1`

// IncrementLinkSales bumps the sale counter and revenue of a link
func (s *Store) IncrementLinkSales(ctx context.Context, linkID uuid.UUID, amount int64) error {
	return s.execAffectingOne(ctx, "increment link sales", sqlIncrementLinkSales, linkID, amount)
}

func (s *Store) execAffectingOne(ctx context.Context, action, query string, args ...interface{}) error {
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		s.logger.Error(ctx, "failed to "+action, err)
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to %s: %w", action, err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
