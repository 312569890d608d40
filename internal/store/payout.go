package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const payoutColumns = `id, program_id, partner_id, amount, currency, status, period_start, period_end, description, stripe_transfer_id, failure_reason, paid_at, created_at, updated_at`

// AggregatePayoutsParams scopes one aggregation run
type AggregatePayoutsParams struct {
	ProgramID uuid.UUID
	Currency  string
	// Cutoff is the newest created_at a commission may have to be payable
	Cutoff time.Time
}

// ListPayoutsParams filters payouts of a program
type ListPayoutsParams struct {
	ProgramID uuid.UUID
	Status    *string
	Limit     int
	Offset    int
}

type partnerBatch struct {
	PartnerID     uuid.UUID
	CommissionIDs []string
	Total         int64
	PeriodStart   time.Time
	PeriodEnd     time.Time
}

// groupCommissionsByPartner folds commissions into one batch per partner, ordered by partner id
// so concurrent aggregations lock payouts in the same order.
func groupCommissionsByPartner(commissions []Commission) []partnerBatch {
	byPartner := make(map[uuid.UUID]*partnerBatch)
	for _, c := range commissions {
		b, ok := byPartner[c.PartnerID]
		if !ok {
			b = &partnerBatch{PartnerID: c.PartnerID, PeriodStart: c.CreatedAt, PeriodEnd: c.CreatedAt}
			byPartner[c.PartnerID] = b
		}
		b.CommissionIDs = append(b.CommissionIDs, c.ID.String())
		b.Total += c.Earnings
		if c.CreatedAt.Before(b.PeriodStart) {
			b.PeriodStart = c.CreatedAt
		}
		if c.CreatedAt.After(b.PeriodEnd) {
			b.PeriodEnd = c.CreatedAt
		}
	}

	batches := make([]partnerBatch, 0, len(byPartner))
	for _, b := range byPartner {
		batches = append(batches, *b)
	}
	sort.Slice(batches, func(i, j int) bool {
		return batches[i].PartnerID.String() < batches[j].PartnerID.String()
	})
	return batches
}

const sqlSelectPayableCommissions = `
SELECT c.id, c.program_id, c.partner_id, c.link_id, c.customer_id, c.payout_id, c.type, c.event_id, c.invoice_id,
       c.amount, c.quantity, c.earnings, c.currency, c.status, c.created_at, c.updated_at
FROM commissions c
JOIN program_enrollments e ON e.program_id = c.program_id AND e.partner_id = c.partner_id
WHERE c.program_id = $1
  AND c.status = 'pending'
  AND c.payout_id IS NULL
  AND c.created_at <= $2
  AND e.status <> 'banned'
ORDER BY c.partner_id, c.created_at
FOR UPDATE OF c SKIP LOCKED
FOR SHARE OF e
`

const sqlLockPendingPayout = `
SELECT ` + payoutColumns + `
FROM payouts
WHERE program_id = $1 AND partner_id = $2 AND status = 'pending'
FOR UPDATE
`

const sqlCreatePendingPayout = `
INSERT INTO payouts (program_id, partner_id, amount, currency, status, period_start, period_end)
VALUES ($1, $2, 0, $3, 'pending', $4, $5)
RETURNING ` + payoutColumns

const sqlAttachCommissions = `
UPDATE commissions
SET payout_id = $1, status = 'processed', updated_at = CURRENT_TIMESTAMP
WHERE id = ANY($2)
`

const sqlExtendPayout = `
UPDATE payouts
SET amount = amount + $2,
    period_start = LEAST(COALESCE(period_start, $3), $3),
    period_end = GREATEST(COALESCE(period_end, $4), $4),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + payoutColumns

// AggregatePayouts attaches every payable commission of a program to its partner's pending
// payout, creating the payout when none is open. Everything happens in one transaction;
// commissions locked by a concurrent run are skipped and picked up next time.
func (s *Store) AggregatePayouts(ctx context.Context, params AggregatePayoutsParams) ([]Payout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var commissions []Commission
	if err := tx.SelectContext(ctx, &commissions, sqlSelectPayableCommissions, params.ProgramID, params.Cutoff); err != nil {
		s.logger.Error(ctx, "failed to select payable commissions", err)
		return nil, fmt.Errorf("failed to select payable commissions: %w", err)
	}
	if len(commissions) == 0 {
		return []Payout{}, nil
	}

	payouts := make([]Payout, 0)
	for _, batch := range groupCommissionsByPartner(commissions) {
		var payout Payout
		err := tx.GetContext(ctx, &payout, sqlLockPendingPayout, params.ProgramID, batch.PartnerID)
		if errors.Is(err, sql.ErrNoRows) {
			err = tx.GetContext(ctx, &payout, sqlCreatePendingPayout,
				params.ProgramID, batch.PartnerID, params.Currency, batch.PeriodStart, batch.PeriodEnd)
		}
		if err != nil {
			s.logger.Error(ctx, "failed to get or create pending payout", err)
			return nil, fmt.Errorf("failed to get or create pending payout: %w", err)
		}

		if _, err := tx.ExecContext(ctx, sqlAttachCommissions, payout.ID, pq.Array(batch.CommissionIDs)); err != nil {
			s.logger.Error(ctx, "failed to attach commissions to payout", err)
			return nil, fmt.Errorf("failed to attach commissions to payout: %w", err)
		}

		if err := tx.GetContext(ctx, &payout, sqlExtendPayout, payout.ID, batch.Total, batch.PeriodStart, batch.PeriodEnd); err != nil {
			s.logger.Error(ctx, "failed to update payout amount", err)
			return nil, fmt.Errorf("failed to update payout amount: %w", err)
		}
		payouts = append(payouts, payout)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payouts, nil
}

const sqlGetPayoutByID = `SELECT ` + payoutColumns + ` FROM payouts WHERE id = $1`

// GetPayoutByID retrieves a payout by ID
func (s *Store) GetPayoutByID(ctx context.Context, payoutID uuid.UUID) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlGetPayoutByID, payoutID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payout{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get payout by id", err)
		return Payout{}, fmt.Errorf("failed to get payout by id: %w", err)
	}
	return payout, nil
}

const sqlListPayouts = `
SELECT ` + payoutColumns + `
FROM payouts
WHERE program_id = $1 AND ($2::text IS NULL OR status = $2)
ORDER BY created_at DESC, id
LIMIT $3 OFFSET $4
`

// ListPayouts returns a page of a program's payouts, newest first
func (s *Store) ListPayouts(ctx context.Context, params ListPayoutsParams) ([]Payout, error) {
	payouts := []Payout{}
	err := s.db.SelectContext(ctx, &payouts, sqlListPayouts, params.ProgramID, params.Status, params.Limit, params.Offset)
	if err != nil {
		s.logger.Error(ctx, "failed to list payouts", err)
		return nil, fmt.Errorf("failed to list payouts: %w", err)
	}
	return payouts, nil
}

const sqlGetPayoutsReadyToSend = `
SELECT p.id, p.program_id, p.partner_id, p.amount, p.currency, p.status, p.period_start, p.period_end, p.description,
       p.stripe_transfer_id, p.failure_reason, p.paid_at, p.created_at, p.updated_at,
       pa.email AS partner_email, pa.stripe_connect_id
FROM payouts p
JOIN partners pa ON pa.id = p.partner_id
WHERE p.program_id = $1
  AND (p.status IN ('pending', 'failed') OR (p.status = 'processing' AND p.updated_at < $3))
  AND p.amount > 0
  AND p.amount >= $2
  AND pa.stripe_connect_id IS NOT NULL
ORDER BY p.created_at
`

// GetPayoutsReadyToSend returns pending or previously failed payouts that meet the program
// minimum and whose partner can receive transfers. Payouts left processing since before
// staleBefore are included so an interrupted send is driven to completion.
func (s *Store) GetPayoutsReadyToSend(ctx context.Context, programID uuid.UUID, minAmount int64, staleBefore time.Time) ([]PayoutWithPartner, error) {
	payouts := []PayoutWithPartner{}
	if err := s.db.SelectContext(ctx, &payouts, sqlGetPayoutsReadyToSend, programID, minAmount, staleBefore); err != nil {
		s.logger.Error(ctx, "failed to get payouts ready to send", err)
		return nil, fmt.Errorf("failed to get payouts ready to send: %w", err)
	}
	return payouts, nil
}

const sqlMarkPayoutProcessing = `
UPDATE payouts
SET status = 'processing', updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND (status IN ('pending', 'failed') OR (status = 'processing' AND updated_at < $2))
RETURNING ` + payoutColumns

// MarkPayoutProcessing claims a payout for sending. A payout that is no longer pending or
// failed, and was not left processing since before staleBefore, returns ErrPayoutNotSendable.
func (s *Store) MarkPayoutProcessing(ctx context.Context, payoutID uuid.UUID, staleBefore time.Time) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlMarkPayoutProcessing, payoutID, staleBefore)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payout{}, ErrPayoutNotSendable
		}
		s.logger.Error(ctx, "failed to mark payout processing", err)
		return Payout{}, fmt.Errorf("failed to mark payout processing: %w", err)
	}
	return payout, nil
}

const sqlCompletePayout = `
UPDATE payouts
SET status = 'completed', stripe_transfer_id = $2, failure_reason = NULL, paid_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
RETURNING ` + payoutColumns

const sqlMarkPayoutCommissionsPaid = `
UPDATE commissions
SET status = 'paid', updated_at = CURRENT_TIMESTAMP
WHERE payout_id = $1 AND status = 'processed'
`

// CompletePayout records a successful transfer and marks the payout's commissions paid
func (s *Store) CompletePayout(ctx context.Context, payoutID uuid.UUID, transferID string) (Payout, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Payout{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var payout Payout
	if err := tx.GetContext(ctx, &payout, sqlCompletePayout, payoutID, transferID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payout{}, ErrPayoutNotSendable
		}
		s.logger.Error(ctx, "failed to complete payout", err)
		return Payout{}, fmt.Errorf("failed to complete payout: %w", err)
	}

	if _, err := tx.ExecContext(ctx, sqlMarkPayoutCommissionsPaid, payoutID); err != nil {
		s.logger.Error(ctx, "failed to mark commissions paid", err)
		return Payout{}, fmt.Errorf("failed to mark commissions paid: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Payout{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return payout, nil
}

const sqlFailPayout = `
UPDATE payouts
SET status = 'failed', failure_reason = $2, updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND status = 'processing'
RETURNING ` + payoutColumns

// FailPayout records a failed transfer. Failed payouts are retried by the next send.
func (s *Store) FailPayout(ctx context.Context, payoutID uuid.UUID, reason string) (Payout, error) {
	var payout Payout
	err := s.db.GetContext(ctx, &payout, sqlFailPayout, payoutID, reason)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Payout{}, ErrPayoutNotSendable
		}
		s.logger.Error(ctx, "failed to mark payout failed", err)
		return Payout{}, fmt.Errorf("failed to mark payout failed: %w", err)
	}
	return payout, nil
}
