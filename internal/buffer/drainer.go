package buffer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dub-server/internal/clients/kafka"
	"dub-server/internal/observability"

	"github.com/robfig/cron/v3"
)

// Publisher republishes buffered events
type Publisher interface {
	PublishEvent(ctx context.Context, event kafka.EventMessage) error
}

// DrainerConfig controls how often the buffer is drained
type DrainerConfig struct {
	Interval  time.Duration
	BatchSize int
	// MaxRetries bounds how often an event Kafka rejects as invalid is retried.
	// Broker outages never count against it.
	MaxRetries int
	// MaxAge drops items that could not be delivered for this long
	MaxAge time.Duration
}

// Drainer replays buffered events to Kafka on a cron schedule
type Drainer struct {
	store     *Store
	publisher Publisher
	logger    *observability.Logger
	cron      *cron.Cron
	cfg       DrainerConfig
}

// NewDrainer creates a drainer. Call Start to schedule it.
func NewDrainer(store *Store, publisher Publisher, cfg DrainerConfig, logger *observability.Logger) *Drainer {
	if cfg.Interval < time.Second {
		cfg.Interval = 30 * time.Second
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 5
	}
	if cfg.MaxAge <= 0 {
		cfg.MaxAge = 72 * time.Hour
	}

	d := &Drainer{
		store:     store,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
		cron:      cron.New(cron.WithSeconds()),
	}

	schedule := fmt.Sprintf("@every %ds", int(cfg.Interval.Seconds()))
	_, _ = d.cron.AddFunc(schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Interval)
		defer cancel()
		if _, err := d.Drain(ctx); err != nil {
			d.logger.Error(ctx, "event buffer drain failed", err)
		}
	})

	return d
}

// Start launches the cron scheduler
func (d *Drainer) Start() {
	d.cron.Start()
	d.logger.Info(context.Background(), "event buffer drainer started")
}

// Stop waits for a running drain to finish or ctx to expire
func (d *Drainer) Stop(ctx context.Context) {
	stopCtx := d.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	d.logger.Info(ctx, "event buffer drainer stopped")
}

// Drain republishes one batch in order and returns how many events were delivered.
// A broker failure stops the batch and leaves the event where it is for the next tick.
func (d *Drainer) Drain(ctx context.Context) (int, error) {
	if dropped, err := d.store.Cleanup(time.Now().Add(-d.cfg.MaxAge)); err != nil {
		d.logger.Error(ctx, "failed to clean up event buffer", err)
	} else if dropped > 0 {
		d.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "dropped", Value: dropped}),
			"dropped expired events from buffer")
	}

	items, err := d.store.GetBatch(d.cfg.BatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to read event buffer: %w", err)
	}

	delivered := 0
	for _, item := range items {
		itemCtx := observability.WithFields(ctx,
			observability.Field{Key: "event_id", Value: item.ID},
			observability.Field{Key: "event_type", Value: item.Type},
		)

		var event kafka.EventMessage
		if err := json.Unmarshal(item.Data, &event); err != nil {
			d.logger.Error(itemCtx, "dropping undecodable buffered event", err)
			_ = d.store.Remove(item)
			continue
		}

		if err := d.publisher.PublishEvent(itemCtx, event); err != nil {
			if !errors.Is(err, kafka.ErrInvalidMessage) {
				d.logger.Warn(itemCtx, "kafka still unavailable, keeping buffered events")
				break
			}
			item.Retries++
			if item.Retries >= d.cfg.MaxRetries {
				d.logger.Error(itemCtx, "dropping buffered event after max retries", err)
				_ = d.store.Remove(item)
			} else if err := d.store.Update(item); err != nil {
				d.logger.Error(itemCtx, "failed to record buffered event retry", err)
			}
			continue
		}

		if err := d.store.Remove(item); err != nil {
			d.logger.Error(itemCtx, "failed to remove delivered event from buffer", err)
		}
		delivered++
	}

	if size, err := d.store.Size(); err == nil {
		observability.BufferSize.Set(float64(size))
	}
	if delivered > 0 {
		d.logger.Info(observability.WithFields(ctx, observability.Field{Key: "delivered", Value: delivered}),
			"replayed buffered events")
	}
	return delivered, nil
}
