package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	clickProcessor "dub-server/internal/clicks/processor"
	"dub-server/internal/clients/redis"
	"dub-server/internal/clients/tinybird"
	commissionProcessor "dub-server/internal/commissions/processor"
	fraudProcessor "dub-server/internal/fraud/processor"
	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrClickNotFound    = errors.New("click not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidAmount    = errors.New("invalid amount")
)

const (
	// SaleDedupeWindow is how long an invoice id is remembered per workspace
	SaleDedupeWindow = 7 * 24 * time.Hour

	defaultLeadEventName = "Sign up"
	defaultSaleEventName = "Purchase"
	defaultCurrency      = "usd"
)

// LeadEventID returns the event id of a customer's lead
func LeadEventID(customerID uuid.UUID) string {
	return uuid.NewSHA1(customerID, []byte(store.RewardEventLead)).String()
}

// SaleDedupeKey returns the Redis key that records a tracked invoice
func SaleDedupeKey(workspaceID uuid.UUID, invoiceID string) string {
	return fmt.Sprintf("trackSale:%s:%s", workspaceID, invoiceID)
}

type ConversionProcessor struct {
	store       ConversionStore
	redis       RedisClient
	analytics   Analytics
	commissions CommissionCreator
	fraud       FraudEvaluator
	logger      *observability.Logger
}

func New(store ConversionStore, redis RedisClient, analytics Analytics, commissions CommissionCreator, fraud FraudEvaluator, logger *observability.Logger) ConversionProcessor {
	return ConversionProcessor{
		store:       store,
		redis:       redis,
		analytics:   analytics,
		commissions: commissions,
		fraud:       fraud,
		logger:      logger,
	}
}

// TrackLeadParams represents a lead reported by a workspace
type TrackLeadParams struct {
	ClickID          string
	EventName        string
	ExternalID       string
	CustomerName     *string
	CustomerEmail    *string
	StripeCustomerID *string
}

// TrackLeadResult is the outcome of a lead
type TrackLeadResult struct {
	ClickID    string            `json:"click_id"`
	Customer   store.Customer    `json:"customer"`
	Commission *store.Commission `json:"commission,omitempty"`
	// Duplicate is set when the customer already had a lead
	Duplicate bool `json:"duplicate"`
}

// TrackSaleParams represents a sale reported by a workspace. Amount is in minor units.
type TrackSaleParams struct {
	ExternalID       string
	Amount           int64
	Currency         string
	EventName        string
	InvoiceID        string
	PaymentProcessor string
}

// TrackSaleResult is the outcome of a sale
type TrackSaleResult struct {
	EventID    string            `json:"event_id,omitempty"`
	Customer   *store.Customer   `json:"customer,omitempty"`
	Commission *store.Commission `json:"commission,omitempty"`
	// Duplicate is set when the invoice was already tracked
	Duplicate bool `json:"duplicate"`
}

// TrackLead attributes a new customer to the click that brought them
func (p *ConversionProcessor) TrackLead(ctx context.Context, workspaceID uuid.UUID, params TrackLeadParams) (TrackLeadResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID.String()},
		observability.Field{Key: "click_id", Value: params.ClickID},
		observability.Field{Key: "external_id", Value: params.ExternalID},
	)

	click, err := p.lookupClick(ctx, params.ClickID)
	if err != nil {
		return TrackLeadResult{}, err
	}
	if click.WorkspaceID != workspaceID.String() {
		return TrackLeadResult{}, ErrClickNotFound
	}

	link, err := p.linkForClick(ctx, click)
	if err != nil {
		return TrackLeadResult{}, err
	}

	clickID := click.ClickID
	country := click.Country
	customer, created, err := p.store.CreateCustomer(ctx, store.CreateCustomerParams{
		WorkspaceID:      workspaceID,
		ExternalID:       params.ExternalID,
		Name:             params.CustomerName,
		Email:            params.CustomerEmail,
		LinkID:           &link.ID,
		ClickID:          &clickID,
		Country:          &country,
		StripeCustomerID: params.StripeCustomerID,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create customer", err)
		return TrackLeadResult{}, err
	}

	result := TrackLeadResult{ClickID: clickID, Customer: customer}
	if customer.LeadRecordedAt != nil {
		p.logger.Info(ctx, "customer already has a lead")
		result.Duplicate = true
		return result, nil
	}
	if !created {
		p.logger.Info(ctx, "resuming unfinished lead")
	}

	// The event id is derived from the customer so a resumed lead hits the commission's
	// unique event id instead of rewarding the partner twice.
	eventID := LeadEventID(customer.ID)
	if link.IsPartnerLink() {
		commission, err := p.commissions.CreateForEvent(ctx, commissionProcessor.EventCommissionParams{
			ProgramID:         *link.ProgramID,
			PartnerID:         *link.PartnerID,
			LinkID:            link.ID,
			CustomerID:        &customer.ID,
			CustomerCreatedAt: &customer.CreatedAt,
			Event:             store.RewardEventLead,
			EventID:           &eventID,
			Quantity:          1,
		})
		if err != nil {
			return result, err
		}
		result.Commission = commission
	}

	recorded, err := p.store.RecordLead(ctx, customer.ID, link.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to record lead", err)
		return result, err
	}
	if !recorded {
		// A concurrent request finished the same lead.
		result.Duplicate = true
		return result, nil
	}

	eventName := params.EventName
	if eventName == "" {
		eventName = defaultLeadEventName
	}
	lead := tinybird.LeadEvent{
		ClickEvent: click,
		EventID:    eventID,
		EventName:  eventName,
		CustomerID: customer.ID.String(),
	}
	lead.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	if err := p.analytics.Ingest(ctx, tinybird.DatasourceLeadEvents, lead); err != nil && !errors.Is(err, tinybird.ErrDisabled) {
		p.logger.Error(ctx, "failed to ingest lead event", err)
	}

	if link.IsPartnerLink() {
		p.evaluateFraud(ctx, link, customer)
	}

	p.logger.Info(ctx, "lead tracked")
	return result, nil
}

// TrackSale records a purchase by a known customer and rewards the referring partner.
// An invoice is tracked at most once per workspace.
func (p *ConversionProcessor) TrackSale(ctx context.Context, workspaceID uuid.UUID, params TrackSaleParams) (result TrackSaleResult, err error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID.String()},
		observability.Field{Key: "external_id", Value: params.ExternalID},
		observability.Field{Key: "invoice_id", Value: params.InvoiceID},
	)

	if params.Amount <= 0 {
		return TrackSaleResult{}, ErrInvalidAmount
	}

	if params.InvoiceID != "" {
		dedupeKey := SaleDedupeKey(workspaceID, params.InvoiceID)
		first, err := p.redis.SetNX(ctx, dedupeKey, params.ExternalID, SaleDedupeWindow)
		switch {
		case err != nil:
			// Commissions stay unique per invoice in the database.
			p.logger.Error(ctx, "failed to check sale dedupe key", err)
		case !first:
			p.logger.Info(ctx, "invoice already tracked")
			return TrackSaleResult{Duplicate: true}, nil
		default:
			// Let the caller retry a sale that did not go through.
			defer func() {
				if err != nil {
					if delErr := p.redis.Del(ctx, dedupeKey); delErr != nil {
						p.logger.Error(ctx, "failed to release sale dedupe key", delErr)
					}
				}
			}()
		}
	}

	customer, err := p.store.GetCustomerByExternalID(ctx, workspaceID, params.ExternalID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackSaleResult{}, ErrCustomerNotFound
		}
		p.logger.Error(ctx, "failed to get customer", err)
		return TrackSaleResult{}, err
	}
	result.Customer = &customer

	if customer.LinkID == nil {
		p.logger.Info(ctx, "customer has no attributed link, sale not recorded")
		return result, nil
	}

	link, err := p.store.GetLinkByID(ctx, *customer.LinkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "attributed link no longer exists, sale not recorded")
			return result, nil
		}
		p.logger.Error(ctx, "failed to get link", err)
		return result, err
	}

	click := p.clickForCustomer(ctx, customer, link)

	currency := strings.ToLower(params.Currency)
	if currency == "" {
		currency = defaultCurrency
	}
	eventName := params.EventName
	if eventName == "" {
		eventName = defaultSaleEventName
	}
	paymentProcessor := params.PaymentProcessor
	if paymentProcessor == "" {
		paymentProcessor = "custom"
	}

	result.EventID = uuid.New().String()
	sale := tinybird.SaleEvent{
		ClickEvent:       click,
		EventID:          result.EventID,
		EventName:        eventName,
		CustomerID:       customer.ID.String(),
		InvoiceID:        params.InvoiceID,
		PaymentProcessor: paymentProcessor,
		Amount:           params.Amount,
		Currency:         currency,
	}
	sale.Timestamp = time.Now().UTC().Format(time.RFC3339Nano)
	if err := p.analytics.Ingest(ctx, tinybird.DatasourceSaleEvents, sale); err != nil && !errors.Is(err, tinybird.ErrDisabled) {
		p.logger.Error(ctx, "failed to ingest sale event", err)
	}

	if err := p.store.IncrementLinkSales(ctx, link.ID, params.Amount); err != nil {
		p.logger.Error(ctx, "failed to increment link sales", err)
		return result, err
	}

	if link.IsPartnerLink() {
		var invoiceID *string
		if params.InvoiceID != "" {
			invoiceID = &params.InvoiceID
		}
		commission, err := p.commissions.CreateForEvent(ctx, commissionProcessor.EventCommissionParams{
			ProgramID:         *link.ProgramID,
			PartnerID:         *link.PartnerID,
			LinkID:            link.ID,
			CustomerID:        &customer.ID,
			CustomerCreatedAt: &customer.CreatedAt,
			Event:             store.RewardEventSale,
			EventID:           &result.EventID,
			InvoiceID:         invoiceID,
			Amount:            params.Amount,
			Quantity:          1,
			Currency:          currency,
		})
		if err != nil {
			return result, err
		}
		result.Commission = commission
		p.evaluateFraud(ctx, link, customer)
	}

	p.logger.Info(observability.WithFields(ctx, observability.Field{Key: "amount", Value: params.Amount}), "sale tracked")
	return result, nil
}

// TrackStripeInvoicePaid tracks a paid Stripe invoice as a sale of the customer it belongs to
func (p *ConversionProcessor) TrackStripeInvoicePaid(ctx context.Context, stripeCustomerID, invoiceID string, amount int64, currency string) (TrackSaleResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "stripe_customer_id", Value: stripeCustomerID})

	customer, err := p.store.GetCustomerByStripeCustomerID(ctx, stripeCustomerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TrackSaleResult{}, ErrCustomerNotFound
		}
		p.logger.Error(ctx, "failed to get customer by stripe id", err)
		return TrackSaleResult{}, err
	}

	return p.TrackSale(ctx, customer.WorkspaceID, TrackSaleParams{
		ExternalID:       customer.ExternalID,
		Amount:           amount,
		Currency:         currency,
		EventName:        "Invoice paid",
		InvoiceID:        invoiceID,
		PaymentProcessor: "stripe",
	})
}

// lookupClick reads a click from the short-lived Redis cache, then from the analytics store
func (p *ConversionProcessor) lookupClick(ctx context.Context, clickID string) (tinybird.ClickEvent, error) {
	if clickID == "" {
		return tinybird.ClickEvent{}, ErrClickNotFound
	}

	raw, err := p.redis.Get(ctx, clickProcessor.ClickCacheKey(clickID))
	switch {
	case err == nil:
		var click tinybird.ClickEvent
		if err := json.Unmarshal([]byte(raw), &click); err == nil {
			return click, nil
		}
		p.logger.Warn(ctx, "cached click is corrupt, reading analytics store")
	case !errors.Is(err, redis.ErrNil):
		p.logger.Error(ctx, "failed to read click cache", err)
	}

	click, err := p.analytics.GetClickEvent(ctx, clickID)
	if err != nil {
		if errors.Is(err, tinybird.ErrClickNotFound) || errors.Is(err, tinybird.ErrDisabled) {
			return tinybird.ClickEvent{}, ErrClickNotFound
		}
		p.logger.Error(ctx, "failed to read click from analytics store", err)
		return tinybird.ClickEvent{}, err
	}
	return click, nil
}

func (p *ConversionProcessor) linkForClick(ctx context.Context, click tinybird.ClickEvent) (store.Link, error) {
	linkID, err := uuid.Parse(click.LinkID)
	if err != nil {
		return store.Link{}, ErrClickNotFound
	}
	link, err := p.store.GetLinkByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.Link{}, ErrClickNotFound
		}
		p.logger.Error(ctx, "failed to get link", err)
		return store.Link{}, err
	}
	return link, nil
}

// clickForCustomer returns the click that produced the customer's lead. When it has aged out
// of both stores the sale is attributed to the link alone.
func (p *ConversionProcessor) clickForCustomer(ctx context.Context, customer store.Customer, link store.Link) tinybird.ClickEvent {
	if customer.ClickID != nil {
		if click, err := p.lookupClick(ctx, *customer.ClickID); err == nil {
			return click
		}
	}
	click := tinybird.ClickEvent{
		WorkspaceID: link.WorkspaceID.String(),
		LinkID:      link.ID.String(),
		Domain:      link.Domain,
		Key:         link.Key,
		URL:         link.URL,
	}
	if customer.ClickID != nil {
		click.ClickID = *customer.ClickID
	}
	if customer.Country != nil {
		click.Country = *customer.Country
	}
	return click
}

func (p *ConversionProcessor) evaluateFraud(ctx context.Context, link store.Link, customer store.Customer) {
	if _, err := p.fraud.Evaluate(ctx, fraudProcessor.EvaluateParams{
		ProgramID: *link.ProgramID,
		PartnerID: *link.PartnerID,
		Customer:  customer,
	}); err != nil {
		p.logger.Error(ctx, "failed to evaluate fraud rules", err)
	}
}
