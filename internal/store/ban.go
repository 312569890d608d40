package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// BanPartnerParams represents parameters for banning a partner from a program
type BanPartnerParams struct {
	ProgramID uuid.UUID
	PartnerID uuid.UUID
	Reason    string
}

// BanResult reports what a ban changed
type BanResult struct {
	Enrollment          ProgramEnrollment
	DisabledLinks       []LinkRef
	CanceledCommissions int64
	CanceledPayouts     int64
	ResolvedFraudEvents int64
}

// UnbanResult reports what lifting a ban changed
type UnbanResult struct {
	Enrollment   ProgramEnrollment
	EnabledLinks []LinkRef
}

const sqlBanEnrollment = `
UPDATE program_enrollments
SET status = 'banned', banned_at = CURRENT_TIMESTAMP, banned_reason = $3, updated_at = CURRENT_TIMESTAMP
WHERE program_id = $1 AND partner_id = $2
RETURNING id, program_id, partner_id, status, banned_at, banned_reason, created_at, updated_at
`

const sqlDisablePartnerLinks = `
UPDATE links
SET disabled_at = CURRENT_TIMESTAMP, updated_at = CURRENT_TIMESTAMP
WHERE program_id = $1 AND partner_id = $2 AND disabled_at IS NULL
RETURNING id, domain, key
`

const sqlCancelOpenPayouts = `
UPDATE payouts
SET status = 'canceled', updated_at = CURRENT_TIMESTAMP
WHERE program_id = $1 AND partner_id = $2 AND status IN ('pending', 'failed')
RETURNING id
`

// Commissions not yet in a payout, or sitting in one of the payouts just canceled, are unpaid.
const sqlCancelUnpaidCommissions = `
UPDATE commissions
SET status = 'canceled', payout_id = NULL, updated_at = CURRENT_TIMESTAMP
WHERE program_id = $1 AND partner_id = $2
  AND status IN ('pending', 'processed')
  AND (payout_id IS NULL OR payout_id = ANY($3))
`

const sqlSettlePendingFraudEvents = `
UPDATE fraud_events
SET status = 'banned', resolved_at = CURRENT_TIMESTAMP
WHERE program_id = $1 AND partner_id = $2 AND status = 'pending'
`

// BanPartner bans a partner from a program. In a single transaction the enrollment is
// banned, the partner's program links are disabled, unpaid commissions and open payouts are
// canceled and pending fraud events are settled as banned.
func (s *Store) BanPartner(ctx context.Context, params BanPartnerParams) (BanResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return BanResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var result BanResult
	if err := tx.GetContext(ctx, &result.Enrollment, sqlBanEnrollment, params.ProgramID, params.PartnerID, params.Reason); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BanResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to ban enrollment", err)
		return BanResult{}, fmt.Errorf("failed to ban enrollment: %w", err)
	}

	result.DisabledLinks = []LinkRef{}
	if err := tx.SelectContext(ctx, &result.DisabledLinks, sqlDisablePartnerLinks, params.ProgramID, params.PartnerID); err != nil {
		s.logger.Error(ctx, "failed to disable partner links", err)
		return BanResult{}, fmt.Errorf("failed to disable partner links: %w", err)
	}

	// Payouts go first so the commission update below runs on a snapshot that includes
	// every payout an aggregation attached before the enrollment lock was taken.
	var canceledPayouts []string
	if err := tx.SelectContext(ctx, &canceledPayouts, sqlCancelOpenPayouts, params.ProgramID, params.PartnerID); err != nil {
		s.logger.Error(ctx, "failed to cancel payouts", err)
		return BanResult{}, fmt.Errorf("failed to cancel payouts: %w", err)
	}
	result.CanceledPayouts = int64(len(canceledPayouts))

	res, err := tx.ExecContext(ctx, sqlCancelUnpaidCommissions, params.ProgramID, params.PartnerID, pq.Array(canceledPayouts))
	if err != nil {
		s.logger.Error(ctx, "failed to cancel commissions", err)
		return BanResult{}, fmt.Errorf("failed to cancel commissions: %w", err)
	}
	result.CanceledCommissions, _ = res.RowsAffected()

	res, err = tx.ExecContext(ctx, sqlSettlePendingFraudEvents, params.ProgramID, params.PartnerID)
	if err != nil {
		s.logger.Error(ctx, "failed to settle fraud events", err)
		return BanResult{}, fmt.Errorf("failed to settle fraud events: %w", err)
	}
	result.ResolvedFraudEvents, _ = res.RowsAffected()

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return BanResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}

const sqlUnbanEnrollment = `
UPDATE program_enrollments
SET status = 'approved', banned_at = NULL, banned_reason = NULL, updated_at = CURRENT_TIMESTAMP
WHERE program_id = $1 AND partner_id = $2
RETURNING id, program_id, partner_id, status, banned_at, banned_reason, created_at, updated_at
`

const sqlEnablePartnerLinks = `
UPDATE links
SET disabled_at = NULL, updated_at = CURRENT_TIMESTAMP
WHERE program_id = $1 AND partner_id = $2 AND disabled_at IS NOT NULL
RETURNING id, domain, key
`

// UnbanPartner approves a banned partner again and re-enables their program links.
// Canceled commissions and payouts stay canceled.
func (s *Store) UnbanPartner(ctx context.Context, programID, partnerID uuid.UUID) (UnbanResult, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return UnbanResult{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var result UnbanResult
	if err := tx.GetContext(ctx, &result.Enrollment, sqlUnbanEnrollment, programID, partnerID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return UnbanResult{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to unban enrollment", err)
		return UnbanResult{}, fmt.Errorf("failed to unban enrollment: %w", err)
	}

	result.EnabledLinks = []LinkRef{}
	if err := tx.SelectContext(ctx, &result.EnabledLinks, sqlEnablePartnerLinks, programID, partnerID); err != nil {
		s.logger.Error(ctx, "failed to enable partner links", err)
		return UnbanResult{}, fmt.Errorf("failed to enable partner links: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return UnbanResult{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return result, nil
}
