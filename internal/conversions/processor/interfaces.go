//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"
	"time"

	"dub-server/internal/clients/tinybird"
	commissionProcessor "dub-server/internal/commissions/processor"
	fraudProcessor "dub-server/internal/fraud/processor"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

// ConversionStore defines the database operations required by ConversionProcessor
type ConversionStore interface {
	GetLinkByID(ctx context.Context, linkID uuid.UUID) (store.Link, error)
	CreateCustomer(ctx context.Context, params store.CreateCustomerParams) (store.Customer, bool, error)
	GetCustomerByExternalID(ctx context.Context, workspaceID uuid.UUID, externalID string) (store.Customer, error)
	GetCustomerByStripeCustomerID(ctx context.Context, stripeCustomerID string) (store.Customer, error)
	RecordLead(ctx context.Context, customerID, linkID uuid.UUID) (bool, error)
	IncrementLinkSales(ctx context.Context, linkID uuid.UUID, amount int64) error
}

// RedisClient reads cached clicks and guards sale idempotency
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Del(ctx context.Context, keys ...string) error
}

// Analytics is the append-only event store
type Analytics interface {
	Ingest(ctx context.Context, datasource string, rows ...interface{}) error
	GetClickEvent(ctx context.Context, clickID string) (tinybird.ClickEvent, error)
}

// CommissionCreator rewards partners for attributed conversions
type CommissionCreator interface {
	CreateForEvent(ctx context.Context, params commissionProcessor.EventCommissionParams) (*store.Commission, error)
}

// FraudEvaluator runs the fraud rules on a conversion
type FraudEvaluator interface {
	Evaluate(ctx context.Context, params fraudProcessor.EvaluateParams) ([]store.FraudEvent, error)
}
