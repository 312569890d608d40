package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const fraudEventColumns = `id, program_id, partner_id, customer_id, type, status, details, resolved_at, created_at`

// CreateFraudEventParams represents parameters for raising a fraud event
type CreateFraudEventParams struct {
	ProgramID  uuid.UUID
	PartnerID  uuid.UUID
	CustomerID *uuid.UUID
	Type       string
	Details    JSONB
}

const sqlCreateFraudEvent = `
INSERT INTO fraud_events (program_id, partner_id, customer_id, type, details)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT DO NOTHING
RETURNING ` + fraudEventColumns

// CreateFraudEvent raises a pending fraud event. An identical pending event returns
// ErrDuplicateFraudEvent.
func (s *Store) CreateFraudEvent(ctx context.Context, params CreateFraudEventParams) (FraudEvent, error) {
	var event FraudEvent
	err := s.db.GetContext(ctx, &event, sqlCreateFraudEvent,
		params.ProgramID,
		params.PartnerID,
		params.CustomerID,
		params.Type,
		params.Details)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FraudEvent{}, ErrDuplicateFraudEvent
		}
		s.logger.Error(ctx, "failed to create fraud event", err)
		return FraudEvent{}, fmt.Errorf("failed to create fraud event: %w", err)
	}
	return event, nil
}

const sqlGetFraudEventByID = `SELECT ` + fraudEventColumns + ` FROM fraud_events WHERE id = $1`

// GetFraudEventByID retrieves a fraud event by ID
func (s *Store) GetFraudEventByID(ctx context.Context, eventID uuid.UUID) (FraudEvent, error) {
	var event FraudEvent
	err := s.db.GetContext(ctx, &event, sqlGetFraudEventByID, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return FraudEvent{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get fraud event by id", err)
		return FraudEvent{}, fmt.Errorf("failed to get fraud event by id: %w", err)
	}
	return event, nil
}

const sqlListFraudEvents = `
SELECT ` + fraudEventColumns + `
FROM fraud_events
WHERE program_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id
`

// ListFraudEvents returns a program's fraud events, optionally filtered by status
func (s *Store) ListFraudEvents(ctx context.Context, programID uuid.UUID, status *string) ([]FraudEvent, error) {
	events := []FraudEvent{}
	if err := s.db.SelectContext(ctx, &events, sqlListFraudEvents, programID, status); err != nil {
		s.logger.Error(ctx, "failed to list fraud events", err)
		return nil, fmt.Errorf("failed to list fraud events: %w", err)
	}
	return events, nil
}

const sqlResolveFraudEvent = `
UPDATE fraud_events
SET status = $2, resolved_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'pending'
RETURNING ` + fraudEventColumns

// ResolveFraudEvent settles a pending fraud event. Events that are already settled return
// ErrFraudEventResolved.
func (s *Store) ResolveFraudEvent(ctx context.Context, eventID uuid.UUID, status string) (FraudEvent, error) {
	var event FraudEvent
	err := s.db.GetContext(ctx, &event, sqlResolveFraudEvent, eventID, status)
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to resolve fraud event", err)
		return FraudEvent{}, fmt.Errorf("failed to resolve fraud event: %w", err)
	}

	if _, err := s.GetFraudEventByID(ctx, eventID); err != nil {
		return FraudEvent{}, err
	}
	return FraudEvent{}, ErrFraudEventResolved
}
