package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"dub-server/internal/jobs"
	"dub-server/internal/observability"

	"github.com/hibiken/asynq"
)

// LinkCacheWorker handles link cache invalidation jobs
type LinkCacheWorker struct {
	cache  LinkCache
	logger *observability.Logger
}

// NewLinkCacheWorker creates a new link cache worker
func NewLinkCacheWorker(cache LinkCache, logger *observability.Logger) *LinkCacheWorker {
	return &LinkCacheWorker{
		cache:  cache,
		logger: logger,
	}
}

// ProcessLinkCacheInvalidateTask drops the cache entries of the links in the payload.
// Redis errors are returned so asynq retries the task.
func (w *LinkCacheWorker) ProcessLinkCacheInvalidateTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.LinkCacheInvalidatePayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal link cache invalidation payload", err)
		return fmt.Errorf("failed to unmarshal link cache invalidation payload: %w: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "links", Value: len(payload.Links)})

	if err := w.cache.DeleteMany(ctx, payload.Links); err != nil {
		w.logger.Error(ctx, "failed to invalidate link cache", err)
		return fmt.Errorf("failed to invalidate link cache: %w", err)
	}

	w.logger.Info(ctx, "invalidated link cache")
	return nil
}
