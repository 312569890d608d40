//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=events

package events

import (
	"context"

	"dub-server/internal/buffer"
	"dub-server/internal/clients/kafka"
)

// Producer writes events to Kafka
type Producer interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// Buffer persists events locally while Kafka is unavailable
type Buffer interface {
	Enqueue(item buffer.Item) error
}
