//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"

	commissionProcessor "dub-server/internal/commissions/processor"
	conversionProcessor "dub-server/internal/conversions/processor"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

// CustomerStore resolves Stripe customers to workspace customers
type CustomerStore interface {
	GetCustomerByStripeCustomerID(ctx context.Context, stripeCustomerID string) (store.Customer, error)
}

// SaleTracker records paid invoices as sales
type SaleTracker interface {
	TrackStripeInvoicePaid(ctx context.Context, stripeCustomerID, invoiceID string, amount int64, currency string) (conversionProcessor.TrackSaleResult, error)
}

// SaleReverser reverses the commissions of a refunded invoice
type SaleReverser interface {
	ReverseSale(ctx context.Context, workspaceID uuid.UUID, invoiceID, reason string) (commissionProcessor.ReversalResult, error)
}
