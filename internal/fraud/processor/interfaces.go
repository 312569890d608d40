//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"

	"dub-server/internal/clients/kafka"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

// FraudStore defines the database operations required by FraudProcessor
type FraudStore interface {
	GetPartnerByID(ctx context.Context, partnerID uuid.UUID) (store.Partner, error)
	CountBannedEnrollmentsForPartner(ctx context.Context, partnerID, excludeProgramID uuid.UUID) (int, error)
	CreateFraudEvent(ctx context.Context, params store.CreateFraudEventParams) (store.FraudEvent, error)
	GetFraudEventByID(ctx context.Context, eventID uuid.UUID) (store.FraudEvent, error)
	ListFraudEvents(ctx context.Context, programID uuid.UUID, status *string) ([]store.FraudEvent, error)
	ResolveFraudEvent(ctx context.Context, eventID uuid.UUID, status string) (store.FraudEvent, error)
	BanPartner(ctx context.Context, params store.BanPartnerParams) (store.BanResult, error)
	UnbanPartner(ctx context.Context, programID, partnerID uuid.UUID) (store.UnbanResult, error)
}

// CacheInvalidator schedules the eviction of links from the redirect cache
type CacheInvalidator interface {
	EnqueueLinkCacheInvalidation(ctx context.Context, links []store.LinkRef) error
}

// EventPublisher announces bans to downstream consumers
type EventPublisher interface {
	Publish(ctx context.Context, event kafka.EventMessage) error
}
