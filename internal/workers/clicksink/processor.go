package clicksink

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dub-server/internal/clients/redis"
	"dub-server/internal/clients/tinybird"
	commissionProcessor "dub-server/internal/commissions/processor"
	"dub-server/internal/events"
	"dub-server/internal/observability"
	"dub-server/internal/store"
	"dub-server/internal/workers"

	"github.com/google/uuid"
)

// ProcessedTTL is how long a click id is remembered after it was written
const ProcessedTTL = 24 * time.Hour

// ProcessedKey returns the Redis key holding how far the sink got with a click
func ProcessedKey(clickID string) string {
	return "clickSink:" + clickID
}

// Progress stages stored under ProcessedKey. A redelivered click resumes
// after the last completed stage so analytics rows and link counters are
// written once. Commissions are deduplicated by event id in the store.
const (
	StageClaimed  = "claimed"
	StageIngested = "ingested"
	StageCounted  = "counted"
	StageDone     = "done"
)

// Processor writes recorded clicks from Kafka to the analytics store and the link counters
type Processor struct {
	store       LinkStore
	redis       RedisClient
	analytics   Analytics
	commissions CommissionCreator
	logger      *observability.Logger
}

// NewProcessor creates a new click sink processor
func NewProcessor(store LinkStore, redis RedisClient, analytics Analytics, commissions CommissionCreator, logger *observability.Logger) *Processor {
	return &Processor{
		store:       store,
		redis:       redis,
		analytics:   analytics,
		commissions: commissions,
		logger:      logger,
	}
}

// Process handles click.recorded events. Other event types on the topic are skipped.
func (p *Processor) Process(ctx context.Context, event workers.EventMessage) error {
	if event.Type != events.EventClickRecorded {
		return nil
	}

	var click tinybird.ClickEvent
	if err := events.DecodeData(event, &click); err != nil {
		// Malformed events are skipped; retrying cannot fix them.
		p.logger.Error(ctx, "failed to decode click event", err)
		return nil
	}
	linkID, err := uuid.Parse(click.LinkID)
	if err != nil || click.ClickID == "" {
		p.logger.Error(ctx, "click event missing ids", fmt.Errorf("invalid click_id %q or link_id %q", click.ClickID, click.LinkID))
		return nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "click_id", Value: click.ClickID},
		observability.Field{Key: "link_id", Value: click.LinkID},
	)

	key := ProcessedKey(click.ClickID)
	stage, err := p.claim(ctx, key)
	if err != nil {
		return err
	}
	if stage == StageDone {
		p.logger.Debug(ctx, "click already processed")
		return nil
	}
	if stage != StageClaimed {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "stage", Value: stage}), "resuming partially written click")
	}

	// The marker is kept on failure so the consumer's retry resumes from stage.
	if err := p.write(ctx, key, stage, linkID, click); err != nil {
		return err
	}

	p.logger.Debug(ctx, "click written")
	return nil
}

// claim marks the click as seen and returns the stage a previous attempt reached
func (p *Processor) claim(ctx context.Context, key string) (string, error) {
	first, err := p.redis.SetNX(ctx, key, StageClaimed, ProcessedTTL)
	if err != nil {
		p.logger.Error(ctx, "failed to mark click as processed", err)
		return "", fmt.Errorf("failed to mark click as processed: %w", err)
	}
	if first {
		return StageClaimed, nil
	}

	stage, err := p.redis.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return StageClaimed, nil
		}
		p.logger.Error(ctx, "failed to read click marker", err)
		return "", fmt.Errorf("failed to read click marker: %w", err)
	}
	switch stage {
	case StageIngested, StageCounted, StageDone:
		return stage, nil
	default:
		return StageClaimed, nil
	}
}

func (p *Processor) advance(ctx context.Context, key, stage string) error {
	if err := p.redis.Set(ctx, key, stage, ProcessedTTL); err != nil {
		p.logger.Error(ctx, "failed to record click progress", err)
		return fmt.Errorf("failed to record click progress: %w", err)
	}
	return nil
}

func (p *Processor) write(ctx context.Context, key, stage string, linkID uuid.UUID, click tinybird.ClickEvent) error {
	if stage == StageClaimed {
		if err := p.analytics.Ingest(ctx, tinybird.DatasourceClickEvents, click); err != nil && !errors.Is(err, tinybird.ErrDisabled) {
			return fmt.Errorf("failed to ingest click: %w", err)
		}
		if err := p.advance(ctx, key, StageIngested); err != nil {
			return err
		}
		stage = StageIngested
	}

	if stage == StageIngested {
		clickedAt, err := time.Parse(time.RFC3339Nano, click.Timestamp)
		if err != nil {
			clickedAt = time.Now().UTC()
		}

		if err := p.store.IncrementLinkClicks(ctx, linkID, clickedAt); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				p.logger.Warn(ctx, "link deleted before its click was written")
				return p.advance(ctx, key, StageDone)
			}
			p.logger.Error(ctx, "failed to increment link clicks", err)
			return fmt.Errorf("failed to increment link clicks: %w", err)
		}
		if err := p.advance(ctx, key, StageCounted); err != nil {
			return err
		}
	}

	if err := p.rewardClick(ctx, linkID, click.ClickID); err != nil {
		return err
	}
	return p.advance(ctx, key, StageDone)
}

func (p *Processor) rewardClick(ctx context.Context, linkID uuid.UUID, clickID string) error {
	link, err := p.store.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("failed to get link: %w", err)
	}
	if !link.IsPartnerLink() {
		return nil
	}

	if _, err := p.commissions.CreateForEvent(ctx, commissionProcessor.EventCommissionParams{
		ProgramID: *link.ProgramID,
		PartnerID: *link.PartnerID,
		LinkID:    link.ID,
		Event:     store.RewardEventClick,
		EventID:   &clickID,
		Quantity:  1,
	}); err != nil {
		return fmt.Errorf("failed to create click commission: %w", err)
	}
	return nil
}

// Name returns the processor name for logging
func (p *Processor) Name() string {
	return "click-sink"
}
