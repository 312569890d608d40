package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	conversionProcessor "dub-server/internal/conversions/processor"
	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/stripe/stripe-go/v79"
)

// RefundReason is recorded on commissions reversed by a Stripe refund
const RefundReason = "refund"

type WebhookProcessor struct {
	WebhookSecret string
	store         CustomerStore
	sales         SaleTracker
	reversals     SaleReverser
	logger        *observability.Logger
}

func New(webhookSecret string, store CustomerStore, sales SaleTracker, reversals SaleReverser, logger *observability.Logger) WebhookProcessor {
	return WebhookProcessor{
		WebhookSecret: webhookSecret,
		store:         store,
		sales:         sales,
		reversals:     reversals,
		logger:        logger,
	}
}

// HandleWebhook dispatches a verified Stripe event. Events about customers that were never
// attributed to a link are acknowledged and ignored.
func (p *WebhookProcessor) HandleWebhook(ctx context.Context, event stripe.Event) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "stripe_event_id", Value: event.ID},
		observability.Field{Key: "stripe_event_type", Value: string(event.Type)},
	)

	switch event.Type {
	case "invoice.paid":
		var invoice stripe.Invoice
		if err := json.Unmarshal(event.Data.Raw, &invoice); err != nil {
			p.logger.Error(ctx, "failed to unmarshal invoice", err)
			return err
		}
		return p.invoicePaid(ctx, invoice)

	case "charge.refunded":
		var charge stripe.Charge
		if err := json.Unmarshal(event.Data.Raw, &charge); err != nil {
			p.logger.Error(ctx, "failed to unmarshal charge", err)
			return err
		}
		return p.chargeRefunded(ctx, charge)

	default:
		p.logger.Warn(ctx, fmt.Sprintf("Unhandled event type: %s", event.Type))
	}
	return nil
}

func (p *WebhookProcessor) invoicePaid(ctx context.Context, invoice stripe.Invoice) error {
	if invoice.Customer == nil || invoice.AmountPaid <= 0 {
		p.logger.Info(ctx, "invoice has no customer or nothing was paid, skipping")
		return nil
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "invoice_id", Value: invoice.ID})

	_, err := p.sales.TrackStripeInvoicePaid(ctx, invoice.Customer.ID, invoice.ID, invoice.AmountPaid, string(invoice.Currency))
	if errors.Is(err, conversionProcessor.ErrCustomerNotFound) {
		p.logger.Info(ctx, "invoice customer is not a tracked customer, skipping")
		return nil
	}
	return err
}

// chargeRefunded reverses the commissions of the refunded invoice. Partial refunds keep
// the commissions.
func (p *WebhookProcessor) chargeRefunded(ctx context.Context, charge stripe.Charge) error {
	if !charge.Refunded || charge.Invoice == nil || charge.Customer == nil {
		p.logger.Info(ctx, "charge is partially refunded or has no invoice, skipping")
		return nil
	}
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "charge_id", Value: charge.ID},
		observability.Field{Key: "invoice_id", Value: charge.Invoice.ID},
	)

	customer, err := p.store.GetCustomerByStripeCustomerID(ctx, charge.Customer.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Info(ctx, "refunded customer is not a tracked customer, skipping")
			return nil
		}
		p.logger.Error(ctx, "failed to get customer by stripe id", err)
		return err
	}

	result, err := p.reversals.ReverseSale(ctx, customer.WorkspaceID, charge.Invoice.ID, RefundReason)
	if err != nil {
		return err
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "refunded", Value: len(result.Refunded)},
		observability.Field{Key: "clawbacks", Value: len(result.Clawbacks)},
	), "reversed refunded sale")
	return nil
}
