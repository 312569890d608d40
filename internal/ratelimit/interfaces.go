//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=ratelimit
package ratelimit

import (
	"context"
	"time"
)

// Counter increments a windowed counter and returns its new value
type Counter interface {
	IncrWindow(ctx context.Context, key string, window time.Duration) (int64, error)
}
