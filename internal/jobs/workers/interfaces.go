//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=workers

package workers

import (
	"context"

	payoutProcessor "dub-server/internal/payouts/processor"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

// LinkCache evicts redirect cache entries
type LinkCache interface {
	DeleteMany(ctx context.Context, links []store.LinkRef) error
}

// Payouts aggregates and sends partner payouts
type Payouts interface {
	AggregateDuePayouts(ctx context.Context) ([]store.Payout, error)
	AggregateProgramPayouts(ctx context.Context, programID uuid.UUID) ([]store.Payout, error)
	SendPayouts(ctx context.Context, programID uuid.UUID) (payoutProcessor.SendResult, error)
}
