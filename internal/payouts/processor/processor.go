package processor

import (
	"context"
	"errors"
	"fmt"
	"time"

	"dub-server/internal/clients/stripe"
	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrInvalidStatus   = errors.New("invalid payout status")
)

// StaleProcessingAfter is how long a payout may sit in processing before a send run
// assumes the run that claimed it died and takes it over
const StaleProcessingAfter = time.Hour

type PayoutProcessor struct {
	store     PayoutStore
	transfers TransferClient
	scheduler SendScheduler
	logger    *observability.Logger
	now       func() time.Time
}

func New(store PayoutStore, transfers TransferClient, scheduler SendScheduler, logger *observability.Logger) PayoutProcessor {
	return PayoutProcessor{
		store:     store,
		transfers: transfers,
		scheduler: scheduler,
		logger:    logger,
		now:       time.Now,
	}
}

// ListPayoutsParams filters the payouts of a program
type ListPayoutsParams struct {
	Status *string
	Page   int
	Limit  int
}

// ListPayoutsResult is one page of payouts
type ListPayoutsResult struct {
	Payouts []store.Payout `json:"payouts"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
}

// SendResult lists the payouts a send run completed and failed
type SendResult struct {
	Completed []store.Payout `json:"completed"`
	Failed    []store.Payout `json:"failed"`
}

// AggregateDuePayouts aggregates the payable commissions of every program and queues
// the transfer of each program's payouts. A failing program does not stop the others.
func (p *PayoutProcessor) AggregateDuePayouts(ctx context.Context) ([]store.Payout, error) {
	programs, err := p.store.ListPrograms(ctx)
	if err != nil {
		p.logger.Error(ctx, "failed to list programs", err)
		return nil, err
	}

	var errs []error
	payouts := make([]store.Payout, 0)
	for _, program := range programs {
		programCtx := observability.WithFields(ctx, observability.Field{Key: "program_id", Value: program.ID.String()})

		aggregated, err := p.aggregate(programCtx, program)
		if err != nil {
			errs = append(errs, fmt.Errorf("program %s: %w", program.ID, err))
			continue
		}
		payouts = append(payouts, aggregated...)

		if err := p.scheduler.EnqueuePayoutsSend(programCtx, program.ID); err != nil {
			errs = append(errs, fmt.Errorf("program %s: %w", program.ID, err))
		}
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "programs", Value: len(programs)},
		observability.Field{Key: "payouts", Value: len(payouts)},
	), "aggregated due payouts")
	return payouts, errors.Join(errs...)
}

// AggregateProgramPayouts aggregates the payable commissions of one program
func (p *PayoutProcessor) AggregateProgramPayouts(ctx context.Context, programID uuid.UUID) ([]store.Payout, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: programID.String()})

	program, err := p.getProgram(ctx, programID)
	if err != nil {
		return nil, err
	}
	return p.aggregate(ctx, program)
}

// aggregate attaches commissions older than the program's holding period to pending payouts
func (p *PayoutProcessor) aggregate(ctx context.Context, program store.Program) ([]store.Payout, error) {
	cutoff := p.now().UTC().AddDate(0, 0, -program.HoldingPeriodDays)

	payouts, err := p.store.AggregatePayouts(ctx, store.AggregatePayoutsParams{
		ProgramID: program.ID,
		Currency:  program.Currency,
		Cutoff:    cutoff,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to aggregate payouts", err)
		return nil, err
	}

	observability.PayoutsAggregated.Add(float64(len(payouts)))
	if len(payouts) > 0 {
		p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "payouts", Value: len(payouts)}), "aggregated program payouts")
	}
	return payouts, nil
}

// SendPayouts transfers every ready payout of a program. A failed transfer marks its payout
// failed and the run continues with the next one.
func (p *PayoutProcessor) SendPayouts(ctx context.Context, programID uuid.UUID) (SendResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: programID.String()})

	program, err := p.getProgram(ctx, programID)
	if err != nil {
		return SendResult{}, err
	}

	ready, err := p.store.GetPayoutsReadyToSend(ctx, program.ID, program.MinPayoutAmount, p.now().Add(-StaleProcessingAfter))
	if err != nil {
		p.logger.Error(ctx, "failed to get payouts ready to send", err)
		return SendResult{}, err
	}

	result := SendResult{Completed: []store.Payout{}, Failed: []store.Payout{}}
	for _, payout := range ready {
		payoutCtx := observability.WithFields(ctx,
			observability.Field{Key: "payout_id", Value: payout.ID.String()},
			observability.Field{Key: "partner_id", Value: payout.PartnerID.String()},
		)

		sent, err := p.send(payoutCtx, program, payout)
		if err != nil {
			if errors.Is(err, store.ErrPayoutNotSendable) {
				p.logger.Info(payoutCtx, "payout claimed by another run, skipping")
				continue
			}
			return result, err
		}
		if sent.Status == store.PayoutStatusCompleted {
			result.Completed = append(result.Completed, sent)
		} else {
			result.Failed = append(result.Failed, sent)
		}
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "completed", Value: len(result.Completed)},
		observability.Field{Key: "failed", Value: len(result.Failed)},
	), "sent payouts")
	return result, nil
}

func (p *PayoutProcessor) send(ctx context.Context, program store.Program, payout store.PayoutWithPartner) (store.Payout, error) {
	claimed, err := p.store.MarkPayoutProcessing(ctx, payout.ID, p.now().Add(-StaleProcessingAfter))
	if err != nil {
		return store.Payout{}, err
	}

	if payout.Status == store.PayoutStatusProcessing {
		p.logger.Warn(ctx, "resuming payout left in processing")
		transferID, err := p.transfers.FindTransfer(ctx, claimed.ID)
		if err != nil {
			return store.Payout{}, err
		}
		if transferID != "" {
			return p.complete(ctx, claimed.ID, transferID)
		}
	}

	transferID, err := p.transfers.CreateTransfer(ctx, stripe.TransferParams{
		PayoutID:    claimed.ID,
		Destination: *payout.StripeConnectID,
		Amount:      claimed.Amount,
		Currency:    claimed.Currency,
		Description: fmt.Sprintf("%s payout", program.Name),
	})
	if err != nil {
		observability.PayoutsSent.WithLabelValues("failed").Inc()
		failed, failErr := p.store.FailPayout(ctx, claimed.ID, err.Error())
		if failErr != nil {
			p.logger.Error(ctx, "failed to mark payout failed", failErr)
			return store.Payout{}, errors.Join(err, failErr)
		}
		return failed, nil
	}

	return p.complete(ctx, claimed.ID, transferID)
}

func (p *PayoutProcessor) complete(ctx context.Context, payoutID uuid.UUID, transferID string) (store.Payout, error) {
	completed, err := p.store.CompletePayout(ctx, payoutID, transferID)
	if err != nil {
		// The transfer went through. The payout stays processing and a later run finds the transfer.
		p.logger.Error(observability.WithFields(ctx, observability.Field{Key: "transfer_id", Value: transferID}),
			"failed to complete payout after transfer", err)
		return store.Payout{}, err
	}
	observability.PayoutsSent.WithLabelValues("completed").Inc()
	return completed, nil
}

// ScheduleSend queues the transfer of a program's ready payouts
func (p *PayoutProcessor) ScheduleSend(ctx context.Context, programID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: programID.String()})

	if _, err := p.getProgram(ctx, programID); err != nil {
		return err
	}
	return p.scheduler.EnqueuePayoutsSend(ctx, programID)
}

// ListPayouts returns a page of a program's payouts, newest first
func (p *PayoutProcessor) ListPayouts(ctx context.Context, programID uuid.UUID, params ListPayoutsParams) (ListPayoutsResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: programID.String()})

	if params.Status != nil && !store.IsValidPayoutStatus(*params.Status) {
		return ListPayoutsResult{}, ErrInvalidStatus
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	if _, err := p.getProgram(ctx, programID); err != nil {
		return ListPayoutsResult{}, err
	}

	payouts, err := p.store.ListPayouts(ctx, store.ListPayoutsParams{
		ProgramID: programID,
		Status:    params.Status,
		Limit:     params.Limit,
		Offset:    (params.Page - 1) * params.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list payouts", err)
		return ListPayoutsResult{}, err
	}

	return ListPayoutsResult{Payouts: payouts, Page: params.Page, Limit: params.Limit}, nil
}

func (p *PayoutProcessor) getProgram(ctx context.Context, programID uuid.UUID) (store.Program, error) {
	program, err := p.store.GetProgramByID(ctx, programID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Program{}, ErrProgramNotFound
		}
		p.logger.Error(ctx, "failed to get program", err)
		return store.Program{}, err
	}
	return program, nil
}
