//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"
	"time"

	"dub-server/internal/clients/kafka"
)

// RedisClient holds the dedupe keys and the short-lived click cache
type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error)
}

// Dispatcher hands events to the background worker pool without blocking
type Dispatcher interface {
	TrySubmit(event kafka.EventMessage) error
}

// Publisher publishes an event inline when the pool cannot take it
type Publisher interface {
	Publish(ctx context.Context, event kafka.EventMessage) error
}
