package stripe

import (
	"context"
	"errors"
	"fmt"

	"dub-server/internal/observability"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/transfer"
)

var ErrTransferFailed = errors.New("stripe transfer failed")

// TransferParams describes a payout transfer to a connected account
type TransferParams struct {
	PayoutID    uuid.UUID
	Destination string
	Amount      int64
	Currency    string
	Description string
}

// TransferClient sends payouts over Stripe Connect transfers
type TransferClient struct {
	logger *observability.Logger
}

// NewTransferClient configures the Stripe key and returns a transfer client
func NewTransferClient(secretKey string, logger *observability.Logger) *TransferClient {
	stripe.Key = secretKey
	return &TransferClient{logger: logger}
}

// CreateTransfer creates a transfer and returns its id. The payout id is the idempotency key,
// so retrying a payout never moves money twice.
func (c *TransferClient) CreateTransfer(ctx context.Context, params TransferParams) (string, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "payout_id", Value: params.PayoutID},
		observability.Field{Key: "destination", Value: params.Destination},
		observability.Field{Key: "amount", Value: params.Amount},
	)

	transferParams := &stripe.TransferParams{
		Amount:        stripe.Int64(params.Amount),
		Currency:      stripe.String(params.Currency),
		Destination:   stripe.String(params.Destination),
		TransferGroup: stripe.String(params.PayoutID.String()),
	}
	if params.Description != "" {
		transferParams.Description = stripe.String(params.Description)
	}
	transferParams.Context = ctx
	transferParams.SetIdempotencyKey(params.PayoutID.String())
	transferParams.AddMetadata("payout_id", params.PayoutID.String())

	t, err := transfer.New(transferParams)
	if err != nil {
		c.logger.Error(ctx, "failed to create stripe transfer", err)
		return "", fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}

	c.logger.Info(observability.WithFields(ctx, observability.Field{Key: "transfer_id", Value: t.ID}), "created stripe transfer")
	return t.ID, nil
}

// FindTransfer returns the id of a transfer already created for a payout, or an empty string.
// Idempotency keys expire after a day, so sends resumed later look the transfer up first.
func (c *TransferClient) FindTransfer(ctx context.Context, payoutID uuid.UUID) (string, error) {
	params := &stripe.TransferListParams{
		TransferGroup: stripe.String(payoutID.String()),
	}
	params.Context = ctx
	params.Limit = stripe.Int64(1)

	iter := transfer.List(params)
	if iter.Next() {
		return iter.Transfer().ID, nil
	}
	if err := iter.Err(); err != nil {
		c.logger.Error(observability.WithFields(ctx, observability.Field{Key: "payout_id", Value: payoutID}),
			"failed to list stripe transfers", err)
		return "", fmt.Errorf("%w: %v", ErrTransferFailed, err)
	}
	return "", nil
}
