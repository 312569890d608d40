package jobs

import (
	"context"
	"fmt"

	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Client handles enqueueing background jobs
type Client struct {
	client *asynq.Client
	logger *observability.Logger
}

// NewClient creates a new job client
func NewClient(redisOpt asynq.RedisClientOpt, logger *observability.Logger) *Client {
	return &Client{
		client: asynq.NewClient(redisOpt),
		logger: logger,
	}
}

// Close closes the client connection
func (c *Client) Close() error {
	return c.client.Close()
}

// EnqueueLinkCacheInvalidation enqueues the eviction of the given links from the redirect cache
func (c *Client) EnqueueLinkCacheInvalidation(ctx context.Context, links []store.LinkRef) error {
	if len(links) == 0 {
		return nil
	}

	task, err := NewLinkCacheInvalidateTask(LinkCacheInvalidatePayload{Links: links})
	if err != nil {
		c.logger.Error(ctx, "failed to create link cache invalidation task", err)
		return fmt.Errorf("failed to create link cache invalidation task: %w", err)
	}
	return c.enqueue(ctx, task)
}

// EnqueuePayoutsSend enqueues the transfer of a program's ready payouts
func (c *Client) EnqueuePayoutsSend(ctx context.Context, programID uuid.UUID) error {
	task, err := NewPayoutsSendTask(PayoutsSendPayload{ProgramID: programID})
	if err != nil {
		c.logger.Error(ctx, "failed to create payout send task", err)
		return fmt.Errorf("failed to create payout send task: %w", err)
	}
	return c.enqueue(ctx, task)
}

func (c *Client) enqueue(ctx context.Context, task *asynq.Task) error {
	info, err := c.client.EnqueueContext(ctx, task)
	if err != nil {
		c.logger.Error(ctx, fmt.Sprintf("failed to enqueue %s task", task.Type()), err)
		return fmt.Errorf("failed to enqueue %s task: %w", task.Type(), err)
	}

	c.logger.Info(ctx, fmt.Sprintf("enqueued %s task: %s (queue: %s)", task.Type(), info.ID, info.Queue))
	return nil
}
