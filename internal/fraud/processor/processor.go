package processor

import (
	"context"
	"errors"
	"strings"

	"dub-server/internal/events"
	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrEnrollmentNotFound = errors.New("enrollment not found")
	ErrFraudEventNotFound = errors.New("fraud event not found")
	ErrFraudEventResolved = errors.New("fraud event already resolved")
	ErrInvalidResolution  = errors.New("invalid fraud event resolution")
	ErrInvalidStatus      = errors.New("invalid fraud event status")
)

// DefaultBanReason is recorded when a ban gives no reason
const DefaultBanReason = "fraud"

type FraudProcessor struct {
	store       FraudStore
	invalidator CacheInvalidator
	publisher   EventPublisher
	logger      *observability.Logger
}

func New(store FraudStore, invalidator CacheInvalidator, publisher EventPublisher, logger *observability.Logger) FraudProcessor {
	return FraudProcessor{
		store:       store,
		invalidator: invalidator,
		publisher:   publisher,
		logger:      logger,
	}
}

// EvaluateParams is a conversion attributed to a partner
type EvaluateParams struct {
	ProgramID uuid.UUID
	PartnerID uuid.UUID
	Customer  store.Customer
}

// Evaluate runs the fraud rules against a conversion and raises a pending fraud event per hit.
// A rule that already has a pending event for the same customer is not raised again.
func (p *FraudProcessor) Evaluate(ctx context.Context, params EvaluateParams) ([]store.FraudEvent, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "program_id", Value: params.ProgramID.String()},
		observability.Field{Key: "partner_id", Value: params.PartnerID.String()},
		observability.Field{Key: "customer_id", Value: params.Customer.ID.String()},
	)

	partner, err := p.store.GetPartnerByID(ctx, params.PartnerID)
	if err != nil {
		p.logger.Error(ctx, "failed to get partner", err)
		return nil, err
	}
	bannedElsewhere, err := p.store.CountBannedEnrollmentsForPartner(ctx, params.PartnerID, params.ProgramID)
	if err != nil {
		p.logger.Error(ctx, "failed to count partner bans", err)
		return nil, err
	}

	customerEmail := ""
	if params.Customer.Email != nil {
		customerEmail = *params.Customer.Email
	}

	var checks []*Check
	checks = append(checks,
		checkEmailMatch(customerEmail, partner.Email),
		checkSuspiciousDomain(customerEmail),
		checkCrossProgramBan(bannedElsewhere),
	)

	var customerID *uuid.UUID
	if params.Customer.ID != uuid.Nil {
		id := params.Customer.ID
		customerID = &id
	}

	raised := []store.FraudEvent{}
	for _, check := range checks {
		if check == nil {
			continue
		}
		event, err := p.store.CreateFraudEvent(ctx, store.CreateFraudEventParams{
			ProgramID:  params.ProgramID,
			PartnerID:  params.PartnerID,
			CustomerID: customerID,
			Type:       check.Type,
			Details:    check.Details,
		})
		if errors.Is(err, store.ErrDuplicateFraudEvent) {
			continue
		}
		if err != nil {
			p.logger.Error(ctx, "failed to create fraud event", err)
			return raised, err
		}
		p.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "fraud_event_id", Value: event.ID.String()},
			observability.Field{Key: "fraud_type", Value: event.Type},
		), "fraud event raised")
		raised = append(raised, event)
	}
	return raised, nil
}

// BanPartner bans a partner from a program. The database changes commit together; the cache
// eviction and the partner.banned event follow once they have.
func (p *FraudProcessor) BanPartner(ctx context.Context, programID, partnerID uuid.UUID, reason string) (store.BanResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "program_id", Value: programID.String()},
		observability.Field{Key: "partner_id", Value: partnerID.String()},
	)

	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = DefaultBanReason
	}

	result, err := p.store.BanPartner(ctx, store.BanPartnerParams{
		ProgramID: programID,
		PartnerID: partnerID,
		Reason:    reason,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.BanResult{}, ErrEnrollmentNotFound
		}
		p.logger.Error(ctx, "failed to ban partner", err)
		return store.BanResult{}, err
	}

	observability.PartnersBanned.Inc()
	p.afterEnrollmentChange(ctx, events.EventPartnerBanned, programID, partnerID, reason, result.DisabledLinks)

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "disabled_links", Value: len(result.DisabledLinks)},
		observability.Field{Key: "canceled_commissions", Value: result.CanceledCommissions},
		observability.Field{Key: "canceled_payouts", Value: result.CanceledPayouts},
		observability.Field{Key: "resolved_fraud_events", Value: result.ResolvedFraudEvents},
	), "partner banned")
	return result, nil
}

// UnbanPartner lifts a ban and re-enables the partner's links. Canceled commissions stay canceled.
func (p *FraudProcessor) UnbanPartner(ctx context.Context, programID, partnerID uuid.UUID) (store.UnbanResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "program_id", Value: programID.String()},
		observability.Field{Key: "partner_id", Value: partnerID.String()},
	)

	result, err := p.store.UnbanPartner(ctx, programID, partnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.UnbanResult{}, ErrEnrollmentNotFound
		}
		p.logger.Error(ctx, "failed to unban partner", err)
		return store.UnbanResult{}, err
	}

	p.afterEnrollmentChange(ctx, events.EventPartnerUnbanned, programID, partnerID, "", result.EnabledLinks)

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "enabled_links", Value: len(result.EnabledLinks)},
	), "partner unbanned")
	return result, nil
}

// afterEnrollmentChange evicts the affected links and publishes the change. Failures are
// logged only: the ban itself is already committed and cache entries expire on their own.
func (p *FraudProcessor) afterEnrollmentChange(ctx context.Context, eventType string, programID, partnerID uuid.UUID, reason string, links []store.LinkRef) {
	if err := p.invalidator.EnqueueLinkCacheInvalidation(ctx, links); err != nil {
		p.logger.Error(ctx, "failed to enqueue link cache invalidation", err)
	}

	linkIDs := make([]string, 0, len(links))
	for _, l := range links {
		linkIDs = append(linkIDs, l.ID.String())
	}
	event, err := events.NewEvent(eventType, "", partnerID.String(), events.PartnerBannedData{
		ProgramID: programID,
		PartnerID: partnerID,
		Reason:    reason,
		LinkIDs:   linkIDs,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to build enrollment event", err)
		return
	}
	if err := p.publisher.Publish(ctx, event); err != nil {
		p.logger.Error(ctx, "failed to publish enrollment event", err)
	}
}

// ResolveFraudEvent settles a pending fraud event. Resolving as banned bans the partner, which
// settles every pending event of the partner in the program.
func (p *FraudProcessor) ResolveFraudEvent(ctx context.Context, eventID uuid.UUID, status string) (store.FraudEvent, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "fraud_event_id", Value: eventID.String()},
		observability.Field{Key: "resolution", Value: status},
	)

	switch status {
	case store.FraudEventStatusSafe:
		event, err := p.store.ResolveFraudEvent(ctx, eventID, status)
		if err != nil {
			return store.FraudEvent{}, p.mapFraudEventError(ctx, err)
		}
		p.logger.Info(ctx, "fraud event marked safe")
		return event, nil

	case store.FraudEventStatusBanned:
		event, err := p.store.GetFraudEventByID(ctx, eventID)
		if err != nil {
			return store.FraudEvent{}, p.mapFraudEventError(ctx, err)
		}
		if event.Status != store.FraudEventStatusPending {
			return store.FraudEvent{}, ErrFraudEventResolved
		}
		if _, err := p.BanPartner(ctx, event.ProgramID, event.PartnerID, event.Type); err != nil {
			return store.FraudEvent{}, err
		}
		event, err = p.store.GetFraudEventByID(ctx, eventID)
		if err != nil {
			return store.FraudEvent{}, p.mapFraudEventError(ctx, err)
		}
		return event, nil
	}

	return store.FraudEvent{}, ErrInvalidResolution
}

// ListFraudEvents returns a program's fraud events, optionally filtered by status
func (p *FraudProcessor) ListFraudEvents(ctx context.Context, programID uuid.UUID, status *string) ([]store.FraudEvent, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: programID.String()})

	if status != nil {
		switch *status {
		case store.FraudEventStatusPending, store.FraudEventStatusSafe, store.FraudEventStatusBanned:
		default:
			return nil, ErrInvalidStatus
		}
	}

	fraudEvents, err := p.store.ListFraudEvents(ctx, programID, status)
	if err != nil {
		p.logger.Error(ctx, "failed to list fraud events", err)
		return nil, err
	}
	return fraudEvents, nil
}

func (p *FraudProcessor) mapFraudEventError(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return ErrFraudEventNotFound
	case errors.Is(err, store.ErrFraudEventResolved):
		return ErrFraudEventResolved
	}
	p.logger.Error(ctx, "failed to resolve fraud event", err)
	return err
}
