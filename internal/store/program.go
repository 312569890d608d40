package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const sqlGetProgramByID = `
SELECT id, workspace_id, name, holding_period_days, min_payout_amount, currency, created_at, updated_at
FROM programs
WHERE id = $1
`

// GetProgramByID retrieves a program by ID
func (s *Store) GetProgramByID(ctx context.Context, programID uuid.UUID) (Program, error) {
	var program Program
	err := s.db.GetContext(ctx, &program, sqlGetProgramByID, programID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Program{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get program by id", err)
		return Program{}, fmt.Errorf("failed to get program by id: %w", err)
	}
	return program, nil
}

const sqlListPrograms = `
SELECT id, workspace_id, name, holding_period_days, min_payout_amount, currency, created_at, updated_at
FROM programs
ORDER BY created_at
`

// ListPrograms returns every program
func (s *Store) ListPrograms(ctx context.Context) ([]Program, error) {
	var programs []Program
	if err := s.db.SelectContext(ctx, &programs, sqlListPrograms); err != nil {
		s.logger.Error(ctx, "failed to list programs", err)
		return nil, fmt.Errorf("failed to list programs: %w", err)
	}
	return programs, nil
}

const sqlGetRewardForEvent = `
SELECT id, program_id, event, type, amount, max_duration_months, created_at
FROM rewards
WHERE program_id = $1 AND event = $2
`

// GetRewardForEvent retrieves the reward a program pays for an event type
func (s *Store) GetRewardForEvent(ctx context.Context, programID uuid.UUID, event string) (Reward, error) {
	var reward Reward
	err := s.db.GetContext(ctx, &reward, sqlGetRewardForEvent, programID, event)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Reward{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get reward for event", err)
		return Reward{}, fmt.Errorf("failed to get reward for event: %w", err)
	}
	return reward, nil
}

const sqlGetProgramEnrollment = `
SELECT id, program_id, partner_id, status, banned_at, banned_reason, created_at, updated_at
FROM program_enrollments
WHERE program_id = $1 AND partner_id = $2
`

// GetProgramEnrollment retrieves a partner's enrollment in a program
func (s *Store) GetProgramEnrollment(ctx context.Context, programID, partnerID uuid.UUID) (ProgramEnrollment, error) {
	var enrollment ProgramEnrollment
	err := s.db.GetContext(ctx, &enrollment, sqlGetProgramEnrollment, programID, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ProgramEnrollment{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get program enrollment", err)
		return ProgramEnrollment{}, fmt.Errorf("failed to get program enrollment: %w", err)
	}
	return enrollment, nil
}

const sqlGetPartnerByID = `SELECT id, name, email, stripe_connect_id, created_at FROM partners WHERE id = $1`

// GetPartnerByID retrieves a partner by ID
func (s *Store) GetPartnerByID(ctx context.Context, partnerID uuid.UUID) (Partner, error) {
	var partner Partner
	err := s.db.GetContext(ctx, &partner, sqlGetPartnerByID, partnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Partner{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get partner by id", err)
		return Partner{}, fmt.Errorf("failed to get partner by id: %w", err)
	}
	return partner, nil
}

const sqlCountBannedEnrollmentsForPartner = `
SELECT COUNT(*)
FROM program_enrollments
WHERE partner_id = $1 AND program_id <> $2 AND status = 'banned'
`

// CountBannedEnrollmentsForPartner counts the programs other than excludeProgramID that banned the partner
func (s *Store) CountBannedEnrollmentsForPartner(ctx context.Context, partnerID, excludeProgramID uuid.UUID) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, sqlCountBannedEnrollmentsForPartner, partnerID, excludeProgramID)
	if err != nil {
		s.logger.Error(ctx, "failed to count banned enrollments", err)
		return 0, fmt.Errorf("failed to count banned enrollments: %w", err)
	}
	return count, nil
}
