//go:generate go run go.uber.org/mock/mockgen@latest -source=interfaces.go -destination=mocks_test.go -package=processor

package processor

import (
	"context"
	"time"

	"dub-server/internal/clients/stripe"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

// PayoutStore defines the database operations required by PayoutProcessor
type PayoutStore interface {
	GetProgramByID(ctx context.Context, programID uuid.UUID) (store.Program, error)
	ListPrograms(ctx context.Context) ([]store.Program, error)
	AggregatePayouts(ctx context.Context, params store.AggregatePayoutsParams) ([]store.Payout, error)
	ListPayouts(ctx context.Context, params store.ListPayoutsParams) ([]store.Payout, error)
	GetPayoutsReadyToSend(ctx context.Context, programID uuid.UUID, minAmount int64, staleBefore time.Time) ([]store.PayoutWithPartner, error)
	MarkPayoutProcessing(ctx context.Context, payoutID uuid.UUID, staleBefore time.Time) (store.Payout, error)
	CompletePayout(ctx context.Context, payoutID uuid.UUID, transferID string) (store.Payout, error)
	FailPayout(ctx context.Context, payoutID uuid.UUID, reason string) (store.Payout, error)
}

// TransferClient moves money to a partner's connected account
type TransferClient interface {
	CreateTransfer(ctx context.Context, params stripe.TransferParams) (string, error)
	FindTransfer(ctx context.Context, payoutID uuid.UUID) (string, error)
}

// SendScheduler queues the transfer of a program's payouts
type SendScheduler interface {
	EnqueuePayoutsSend(ctx context.Context, programID uuid.UUID) error
}
