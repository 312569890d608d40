//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=clicksink

package clicksink

import (
	"context"
	"time"

	commissionProcessor "dub-server/internal/commissions/processor"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

// LinkStore defines the link counters updated by the sink
type LinkStore interface {
	GetLinkByID(ctx context.Context, linkID uuid.UUID) (store.Link, error)
	IncrementLinkClicks(ctx context.Context, linkID uuid.UUID, clickedAt time.Time) error
}

// RedisClient records how far each click got so redeliveries do not write it twice
type RedisClient interface {
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
}

// Analytics is the append-only event store
type Analytics interface {
	Ingest(ctx context.Context, datasource string, rows ...interface{}) error
}

// CommissionCreator rewards partners for clicks
type CommissionCreator interface {
	CreateForEvent(ctx context.Context, params commissionProcessor.EventCommissionParams) (*store.Commission, error)
}
