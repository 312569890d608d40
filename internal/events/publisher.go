package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"dub-server/internal/buffer"
	"dub-server/internal/clients/kafka"
	"dub-server/internal/observability"
)

// Publisher sends events to Kafka and falls back to the local buffer when Kafka rejects them.
// It is also the processor of the click worker pool.
type Publisher struct {
	producer Producer
	buffer   Buffer
	logger   *observability.Logger
}

// NewPublisher creates a new event publisher. buf may be nil, in which case
// Kafka failures are returned to the caller.
func NewPublisher(producer Producer, buf Buffer, logger *observability.Logger) *Publisher {
	return &Publisher{
		producer: producer,
		buffer:   buf,
		logger:   logger,
	}
}

// Publish writes an event to Kafka, buffering it locally on failure
func (p *Publisher) Publish(ctx context.Context, event kafka.EventMessage) error {
	err := p.producer.PublishEvent(ctx, event)
	if err == nil {
		return nil
	}
	if p.buffer == nil {
		return err
	}

	data, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		return errors.Join(err, marshalErr)
	}
	if bufErr := p.buffer.Enqueue(buffer.Item{ID: event.ID, Type: event.Type, Data: data}); bufErr != nil {
		p.logger.Error(ctx, "failed to buffer event", bufErr)
		return fmt.Errorf("failed to publish or buffer event: %w", errors.Join(err, bufErr))
	}

	observability.ClicksBuffered.Inc()
	p.logger.Warn(ctx, "kafka unavailable, event buffered locally")
	return nil
}

// Process implements workers.EventProcessor
func (p *Publisher) Process(ctx context.Context, event kafka.EventMessage) error {
	return p.Publish(ctx, event)
}

// Name implements workers.EventProcessor
func (p *Publisher) Name() string {
	return "event-publisher"
}
