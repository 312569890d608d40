package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const commissionColumns = `id, program_id, partner_id, link_id, customer_id, payout_id, type, event_id, invoice_id, amount, quantity, earnings, currency, status, created_at, updated_at`

// CreateCommissionParams represents parameters for creating a commission
type CreateCommissionParams struct {
	ProgramID  uuid.UUID
	PartnerID  uuid.UUID
	LinkID     *uuid.UUID
	CustomerID *uuid.UUID
	Type       string
	EventID    *string
	InvoiceID  *string
	Amount     int64
	Quantity   int
	Earnings   int64
	Currency   string
}

// ListCommissionsParams filters commissions of a program
type ListCommissionsParams struct {
	ProgramID uuid.UUID
	PartnerID *uuid.UUID
	Status    *string
	Limit     int
	Offset    int
}

const sqlCreateCommission = `
INSERT INTO commissions (program_id, partner_id, link_id, customer_id, type, event_id, invoice_id, amount, quantity, earnings, currency)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
RETURNING ` + commissionColumns

// CreateCommission creates a pending commission. A second commission for the same
// event or invoice returns ErrDuplicateCommission.
func (s *Store) CreateCommission(ctx context.Context, params CreateCommissionParams) (Commission, error) {
	quantity := params.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	var commission Commission
	err := s.db.GetContext(ctx, &commission, sqlCreateCommission,
		params.ProgramID,
		params.PartnerID,
		params.LinkID,
		params.CustomerID,
		params.Type,
		params.EventID,
		params.InvoiceID,
		params.Amount,
		quantity,
		params.Earnings,
		params.Currency)
	if err != nil {
		if isUniqueViolation(err, "") {
			return Commission{}, ErrDuplicateCommission
		}
		s.logger.Error(ctx, "failed to create commission", err)
		return Commission{}, fmt.Errorf("failed to create commission: %w", err)
	}
	return commission, nil
}

const sqlGetCommissionByID = `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1`

// GetCommissionByID retrieves a commission by ID
func (s *Store) GetCommissionByID(ctx context.Context, commissionID uuid.UUID) (Commission, error) {
	var commission Commission
	err := s.db.GetContext(ctx, &commission, sqlGetCommissionByID, commissionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Commission{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get commission by id", err)
		return Commission{}, fmt.Errorf("failed to get commission by id: %w", err)
	}
	return commission, nil
}

// ListCommissions returns a page of a program's commissions, newest first, and the total count
func (s *Store) ListCommissions(ctx context.Context, params ListCommissionsParams) ([]Commission, int, error) {
	where := []string{"program_id = $1"}
	args := []interface{}{params.ProgramID}

	if params.PartnerID != nil {
		args = append(args, *params.PartnerID)
		where = append(where, fmt.Sprintf("partner_id = $%d", len(args)))
	}
	if params.Status != nil {
		args = append(args, *params.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM commissions WHERE " + whereClause
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		s.logger.Error(ctx, "failed to count commissions", err)
		return nil, 0, fmt.Errorf("failed to count commissions: %w", err)
	}

	args = append(args, params.Limit, params.Offset)
	query := fmt.Sprintf("SELECT %s FROM commissions WHERE %s ORDER BY created_at DESC, id LIMIT $%d OFFSET $%d",
		commissionColumns, whereClause, len(args)-1, len(args))

	commissions := []Commission{}
	if err := s.db.SelectContext(ctx, &commissions, query, args...); err != nil {
		s.logger.Error(ctx, "failed to list commissions", err)
		return nil, 0, fmt.Errorf("failed to list commissions: %w", err)
	}
	return commissions, total, nil
}

const sqlGetSaleCommissionsByInvoice = `
SELECT c.id, c.program_id, c.partner_id, c.link_id, c.customer_id, c.payout_id, c.type, c.event_id, c.invoice_id,
       c.amount, c.quantity, c.earnings, c.currency, c.status, c.created_at, c.updated_at
FROM commissions c
JOIN programs p ON p.id = c.program_id
WHERE p.workspace_id = $1 AND c.invoice_id = $2 AND c.type = 'sale'
ORDER BY c.created_at
`

// GetSaleCommissionsByInvoice returns the sale commissions a workspace recorded for an invoice
func (s *Store) GetSaleCommissionsByInvoice(ctx context.Context, workspaceID uuid.UUID, invoiceID string) ([]Commission, error) {
	commissions := []Commission{}
	if err := s.db.SelectContext(ctx, &commissions, sqlGetSaleCommissionsByInvoice, workspaceID, invoiceID); err != nil {
		s.logger.Error(ctx, "failed to get sale commissions by invoice", err)
		return nil, fmt.Errorf("failed to get sale commissions by invoice: %w", err)
	}
	return commissions, nil
}

const sqlLockCommission = `SELECT ` + commissionColumns + ` FROM commissions WHERE id = $1 FOR UPDATE`

const sqlLockPayoutStatus = `SELECT status FROM payouts WHERE id = $1 FOR UPDATE`

const sqlMarkCommissionRefunded = `
UPDATE commissions
SET status = 'refunded', payout_id = NULL, updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + commissionColumns

// A payout is only canceled once the refunded commission was the last one attached to it.
// Otherwise it stays pending and later aggregations carry the balance forward.
const sqlDeductFromPayout = `
UPDATE payouts
SET amount = amount - $2,
    status = CASE
        WHEN amount - $2 <= 0 AND NOT EXISTS (
            SELECT 1 FROM commissions WHERE payout_id = $1 AND id <> $3
        ) THEN 'canceled'
        ELSE status
    END,
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
`

// RefundCommission marks an unpaid commission as refunded and takes its earnings back out of
// the pending payout it was aggregated into. Commissions whose payout already left the pending
// state return ErrCommissionPaid. Refunded or canceled commissions are returned unchanged.
func (s *Store) RefundCommission(ctx context.Context, commissionID uuid.UUID) (Commission, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return Commission{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var commission Commission
	if err := tx.GetContext(ctx, &commission, sqlLockCommission, commissionID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Commission{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to lock commission", err)
		return Commission{}, fmt.Errorf("failed to lock commission: %w", err)
	}

	switch commission.Status {
	case CommissionStatusRefunded, CommissionStatusCanceled:
		return commission, nil
	case CommissionStatusPaid:
		return commission, ErrCommissionPaid
	}

	if commission.PayoutID != nil {
		var payoutStatus string
		if err := tx.GetContext(ctx, &payoutStatus, sqlLockPayoutStatus, *commission.PayoutID); err != nil {
			s.logger.Error(ctx, "failed to lock payout", err)
			return Commission{}, fmt.Errorf("failed to lock payout: %w", err)
		}
		if payoutStatus != PayoutStatusPending {
			return commission, ErrCommissionPaid
		}
		if _, err := tx.ExecContext(ctx, sqlDeductFromPayout, *commission.PayoutID, commission.Earnings, commission.ID); err != nil {
			s.logger.Error(ctx, "failed to deduct commission from payout", err)
			return Commission{}, fmt.Errorf("failed to deduct commission from payout: %w", err)
		}
	}

	var refunded Commission
	if err := tx.GetContext(ctx, &refunded, sqlMarkCommissionRefunded, commissionID); err != nil {
		s.logger.Error(ctx, "failed to mark commission refunded", err)
		return Commission{}, fmt.Errorf("failed to mark commission refunded: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return Commission{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return refunded, nil
}

const sqlCountCustomerSaleCommissions = `
SELECT COUNT(*) FROM commissions
WHERE program_id = $1 AND customer_id = $2 AND type = 'sale' AND status <> 'canceled'
`

// CountCustomerSaleCommissions counts the sale commissions a program recorded for a customer
func (s *Store) CountCustomerSaleCommissions(ctx context.Context, programID, customerID uuid.UUID) (int, error) {
	var count int
	if err := s.db.GetContext(ctx, &count, sqlCountCustomerSaleCommissions, programID, customerID); err != nil {
		s.logger.Error(ctx, "failed to count customer sale commissions", err)
		return 0, fmt.Errorf("failed to count customer sale commissions: %w", err)
	}
	return count, nil
}
