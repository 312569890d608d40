package jobs

import (
	"encoding/json"

	"dub-server/internal/store"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

// Job type constants
const (
	// High priority queue
	TypeLinkCacheInvalidate = "links:invalidate-cache"

	// Medium priority queue
	TypePayoutsAggregate = "payouts:aggregate"

	// Low priority queue
	TypePayoutsSend = "payouts:send"
)

// Queue names
const (
	QueueHigh   = "high"
	QueueMedium = "medium"
	QueueLow    = "low"
)

// Queues maps queue names to their asynq weights
var Queues = map[string]int{
	QueueHigh:   6,
	QueueMedium: 3,
	QueueLow:    1,
}

// LinkCacheInvalidatePayload lists the links whose cache entries must be dropped
type LinkCacheInvalidatePayload struct {
	Links []store.LinkRef `json:"links"`
}

// NewLinkCacheInvalidateTask creates a new cache invalidation task
func NewLinkCacheInvalidateTask(payload LinkCacheInvalidatePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeLinkCacheInvalidate, data, asynq.Queue(QueueHigh), asynq.MaxRetry(10)), nil
}

// PayoutsAggregatePayload selects the program to aggregate. A nil program means all programs.
type PayoutsAggregatePayload struct {
	ProgramID *uuid.UUID `json:"program_id,omitempty"`
}

// NewPayoutsAggregateTask creates a new payout aggregation task
func NewPayoutsAggregateTask(payload PayoutsAggregatePayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePayoutsAggregate, data, asynq.Queue(QueueMedium), asynq.MaxRetry(3)), nil
}

// PayoutsSendPayload selects the program whose ready payouts are transferred
type PayoutsSendPayload struct {
	ProgramID uuid.UUID `json:"program_id"`
}

// NewPayoutsSendTask creates a new payout transfer task
func NewPayoutsSendTask(payload PayoutsSendPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	// A failed transfer marks the payout failed; the next run retries it.
	return asynq.NewTask(TypePayoutsSend, data, asynq.Queue(QueueLow), asynq.MaxRetry(1)), nil
}
