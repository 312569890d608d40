package workers

import (
	"context"
	"encoding/json"
	"fmt"

	"dub-server/internal/jobs"
	"dub-server/internal/observability"

	"github.com/hibiken/asynq"
)

// PayoutWorker handles payout aggregation and transfer jobs
type PayoutWorker struct {
	payouts Payouts
	logger  *observability.Logger
}

// NewPayoutWorker creates a new payout worker
func NewPayoutWorker(payouts Payouts, logger *observability.Logger) *PayoutWorker {
	return &PayoutWorker{
		payouts: payouts,
		logger:  logger,
	}
}

// ProcessPayoutsAggregateTask aggregates one program, or every program when none is given
func (w *PayoutWorker) ProcessPayoutsAggregateTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.PayoutsAggregatePayload
	if len(task.Payload()) > 0 {
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			w.logger.Error(ctx, "failed to unmarshal payout aggregation payload", err)
			return fmt.Errorf("failed to unmarshal payout aggregation payload: %w: %w", err, asynq.SkipRetry)
		}
	}

	if payload.ProgramID != nil {
		_, err := w.payouts.AggregateProgramPayouts(ctx, *payload.ProgramID)
		return err
	}
	_, err := w.payouts.AggregateDuePayouts(ctx)
	return err
}

// ProcessPayoutsSendTask transfers the ready payouts of a program
func (w *PayoutWorker) ProcessPayoutsSendTask(ctx context.Context, task *asynq.Task) error {
	var payload jobs.PayoutsSendPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		w.logger.Error(ctx, "failed to unmarshal payout send payload", err)
		return fmt.Errorf("failed to unmarshal payout send payload: %w: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: payload.ProgramID.String()})

	result, err := w.payouts.SendPayouts(ctx, payload.ProgramID)
	if err != nil {
		return err
	}
	if len(result.Failed) > 0 {
		w.logger.Warn(observability.WithFields(ctx, observability.Field{Key: "failed", Value: len(result.Failed)}),
			"some payout transfers failed and will be retried on the next run")
	}
	return nil
}
