//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"

	clickProcessor "dub-server/internal/clicks/processor"
	"dub-server/internal/store"
)

// LinkStore defines the database operations required by RedirectProcessor
type LinkStore interface {
	GetLinkByDomainKey(ctx context.Context, domain, key string) (store.Link, error)
}

// LinkCache is the Redis copy of links keyed by domain and key
type LinkCache interface {
	Get(ctx context.Context, domain, key string) (*store.Link, error)
	Set(ctx context.Context, link store.Link) error
}

// ClickRecorder records a visit and returns its click id
type ClickRecorder interface {
	Record(ctx context.Context, input clickProcessor.ClickInput) (string, bool)
}
