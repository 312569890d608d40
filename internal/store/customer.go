package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const customerColumns = `id, workspace_id, external_id, name, email, link_id, click_id, country, stripe_customer_id, lead_recorded_at, created_at`

// CreateCustomerParams represents parameters for creating a customer
type CreateCustomerParams struct {
	WorkspaceID      uuid.UUID
	ExternalID       string
	Name             *string
	Email            *string
	LinkID           *uuid.UUID
	ClickID          *string
	Country          *string
	StripeCustomerID *string
}

const sqlCreateCustomer = `
INSERT INTO customers (workspace_id, external_id, name, email, link_id, click_id, country, stripe_customer_id)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (workspace_id, external_id) DO NOTHING
RETURNING ` + customerColumns

// CreateCustomer creates a customer. When the external id is already known the existing
// customer is returned with created set to false.
func (s *Store) CreateCustomer(ctx context.Context, params CreateCustomerParams) (customer Customer, created bool, err error) {
	err = s.db.GetContext(ctx, &customer, sqlCreateCustomer,
		params.WorkspaceID,
		params.ExternalID,
		params.Name,
		params.Email,
		params.LinkID,
		params.ClickID,
		params.Country,
		params.StripeCustomerID)
	if err == nil {
		return customer, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		s.logger.Error(ctx, "failed to create customer", err)
		return Customer{}, false, fmt.Errorf("failed to create customer: %w", err)
	}

	customer, err = s.GetCustomerByExternalID(ctx, params.WorkspaceID, params.ExternalID)
	if err != nil {
		return Customer{}, false, err
	}
	return customer, false, nil
}

const sqlGetCustomerByExternalID = `SELECT ` + customerColumns + ` FROM customers WHERE workspace_id = $1 AND external_id = $2`

// GetCustomerByExternalID retrieves a customer by the workspace's own identifier
func (s *Store) GetCustomerByExternalID(ctx context.Context, workspaceID uuid.UUID, externalID string) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByExternalID, workspaceID, externalID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get customer by external id", err)
		return Customer{}, fmt.Errorf("failed to get customer by external id: %w", err)
	}
	return customer, nil
}

const sqlGetCustomerByStripeCustomerID = `SELECT ` + customerColumns + ` FROM customers WHERE stripe_customer_id = $1`

// GetCustomerByStripeCustomerID retrieves a customer by Stripe customer id
func (s *Store) GetCustomerByStripeCustomerID(ctx context.Context, stripeCustomerID string) (Customer, error) {
	var customer Customer
	err := s.db.GetContext(ctx, &customer, sqlGetCustomerByStripeCustomerID, stripeCustomerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Customer{}, ErrNotFound
		}
		s.logger.Error(ctx, "failed to get customer by stripe customer id", err)
		return Customer{}, fmt.Errorf("failed to get customer by stripe customer id: %w", err)
	}
	return customer, nil
}

const sqlMarkLeadRecorded = `
UPDATE customers SET lead_recorded_at = CURRENT_TIMESTAMP
WHERE id = $1 AND lead_recorded_at IS NULL
`

// RecordLead marks the customer's lead as recorded and bumps the link's lead counter in one
// transaction. It reports false when the lead had already been recorded.
func (s *Store) RecordLead(ctx context.Context, customerID, linkID uuid.UUID) (bool, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		s.logger.Error(ctx, "failed to begin transaction", err)
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, sqlMarkLeadRecorded, customerID)
	if err != nil {
		s.logger.Error(ctx, "failed to mark lead recorded", err)
		return false, fmt.Errorf("failed to mark lead recorded: %w", err)
	}
	if rows, _ := res.RowsAffected(); rows == 0 {
		return false, nil
	}

	// A link deleted since the click leaves nothing to count.
	if _, err := tx.ExecContext(ctx, sqlIncrementLinkLeads, linkID); err != nil {
		s.logger.Error(ctx, "failed to increment link leads", err)
		return false, fmt.Errorf("failed to increment link leads: %w", err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error(ctx, "failed to commit transaction", err)
		return false, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return true, nil
}
