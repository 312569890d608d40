package processor

import (
	"context"
	"errors"
	"time"

	"dub-server/internal/observability"
	"dub-server/internal/store"

	"github.com/google/uuid"
)

var (
	ErrProgramNotFound = errors.New("program not found")
	ErrInvalidStatus   = errors.New("invalid commission status")
)

type CommissionProcessor struct {
	store  CommissionStore
	logger *observability.Logger
	now    func() time.Time
}

func New(store CommissionStore, logger *observability.Logger) CommissionProcessor {
	return CommissionProcessor{
		store:  store,
		logger: logger,
		now:    time.Now,
	}
}

// EventCommissionParams describes a click, lead or sale attributed to a partner link
type EventCommissionParams struct {
	ProgramID         uuid.UUID
	PartnerID         uuid.UUID
	LinkID            uuid.UUID
	CustomerID        *uuid.UUID
	CustomerCreatedAt *time.Time
	Event             string
	EventID           *string
	InvoiceID         *string
	Amount            int64
	Quantity          int
	Currency          string
}

// ListCommissionsParams filters the commissions of a program
type ListCommissionsParams struct {
	PartnerID *uuid.UUID
	Status    *string
	Page      int
	Limit     int
}

// ListCommissionsResult is one page of commissions
type ListCommissionsResult struct {
	Commissions []store.Commission `json:"commissions"`
	TotalCount  int                `json:"total_count"`
	Page        int                `json:"page"`
	Limit       int                `json:"limit"`
	TotalPages  int                `json:"total_pages"`
}

// ReversalResult lists what a sale reversal changed
type ReversalResult struct {
	Refunded  []store.Commission `json:"refunded"`
	Clawbacks []store.Commission `json:"clawbacks"`
}

// CreateForEvent creates the commission an event earns. It returns nil without error when the
// partner is not approved, the program has no reward for the event, the reward no longer
// applies to the customer, or the event was already rewarded.
func (p *CommissionProcessor) CreateForEvent(ctx context.Context, params EventCommissionParams) (*store.Commission, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "program_id", Value: params.ProgramID.String()},
		observability.Field{Key: "partner_id", Value: params.PartnerID.String()},
		observability.Field{Key: "link_id", Value: params.LinkID.String()},
		observability.Field{Key: "event", Value: params.Event},
	)

	enrollment, err := p.store.GetProgramEnrollment(ctx, params.ProgramID, params.PartnerID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Debug(ctx, "partner not enrolled, no commission")
			return nil, nil
		}
		p.logger.Error(ctx, "failed to get program enrollment", err)
		return nil, err
	}
	if enrollment.Status != store.EnrollmentStatusApproved {
		p.logger.Debug(ctx, "partner not approved, no commission")
		return nil, nil
	}

	reward, err := p.store.GetRewardForEvent(ctx, params.ProgramID, params.Event)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil
		}
		p.logger.Error(ctx, "failed to get reward", err)
		return nil, err
	}

	priorSales := 0
	if params.Event == store.RewardEventSale && params.CustomerID != nil &&
		reward.MaxDurationMonths != nil && *reward.MaxDurationMonths == 0 {
		priorSales, err = p.store.CountCustomerSaleCommissions(ctx, params.ProgramID, *params.CustomerID)
		if err != nil {
			p.logger.Error(ctx, "failed to count prior sales", err)
			return nil, err
		}
	}
	if !RewardApplies(reward, params.CustomerCreatedAt, priorSales, p.now()) {
		p.logger.Debug(ctx, "reward duration elapsed, no commission")
		return nil, nil
	}

	earnings := CalculateEarnings(reward, params.Amount, params.Quantity)
	if earnings <= 0 {
		return nil, nil
	}

	linkID := params.LinkID
	commission, err := p.store.CreateCommission(ctx, store.CreateCommissionParams{
		ProgramID:  params.ProgramID,
		PartnerID:  params.PartnerID,
		LinkID:     &linkID,
		CustomerID: params.CustomerID,
		Type:       params.Event,
		EventID:    params.EventID,
		InvoiceID:  params.InvoiceID,
		Amount:     params.Amount,
		Quantity:   params.Quantity,
		Earnings:   earnings,
		Currency:   params.Currency,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCommission) {
			p.logger.Info(ctx, "event already rewarded")
			return nil, nil
		}
		p.logger.Error(ctx, "failed to create commission", err)
		return nil, err
	}

	observability.CommissionsCreated.WithLabelValues(commission.Type).Inc()
	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "commission_id", Value: commission.ID.String()},
		observability.Field{Key: "earnings", Value: commission.Earnings},
	), "commission created")
	return &commission, nil
}

// ReverseSale undoes the sale commissions of a refunded invoice. Unpaid commissions are
// refunded and leave their payout. Paid ones are offset by a negative clawback commission
// that the next payout nets out.
func (p *CommissionProcessor) ReverseSale(ctx context.Context, workspaceID uuid.UUID, invoiceID, reason string) (ReversalResult, error) {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "workspace_id", Value: workspaceID.String()},
		observability.Field{Key: "invoice_id", Value: invoiceID},
		observability.Field{Key: "reason", Value: reason},
	)

	commissions, err := p.store.GetSaleCommissionsByInvoice(ctx, workspaceID, invoiceID)
	if err != nil {
		p.logger.Error(ctx, "failed to get sale commissions", err)
		return ReversalResult{}, err
	}

	result := ReversalResult{Refunded: []store.Commission{}, Clawbacks: []store.Commission{}}
	for _, commission := range commissions {
		cctx := observability.WithFields(ctx, observability.Field{Key: "commission_id", Value: commission.ID.String()})

		switch commission.Status {
		case store.CommissionStatusRefunded, store.CommissionStatusCanceled:
			continue
		case store.CommissionStatusPaid:
			clawback, err := p.clawback(cctx, commission)
			if err != nil {
				return result, err
			}
			if clawback != nil {
				result.Clawbacks = append(result.Clawbacks, *clawback)
			}
			continue
		}

		refunded, err := p.store.RefundCommission(cctx, commission.ID)
		if errors.Is(err, store.ErrCommissionPaid) {
			clawback, err := p.clawback(cctx, commission)
			if err != nil {
				return result, err
			}
			if clawback != nil {
				result.Clawbacks = append(result.Clawbacks, *clawback)
			}
			continue
		}
		if err != nil {
			p.logger.Error(cctx, "failed to refund commission", err)
			return result, err
		}
		result.Refunded = append(result.Refunded, refunded)
	}

	p.logger.Info(observability.WithFields(ctx,
		observability.Field{Key: "refunded", Value: len(result.Refunded)},
		observability.Field{Key: "clawbacks", Value: len(result.Clawbacks)},
	), "sale reversed")
	return result, nil
}

func (p *CommissionProcessor) clawback(ctx context.Context, paid store.Commission) (*store.Commission, error) {
	clawback, err := p.store.CreateCommission(ctx, store.CreateCommissionParams{
		ProgramID:  paid.ProgramID,
		PartnerID:  paid.PartnerID,
		LinkID:     paid.LinkID,
		CustomerID: paid.CustomerID,
		Type:       store.CommissionTypeCustom,
		InvoiceID:  paid.InvoiceID,
		Amount:     -paid.Amount,
		Quantity:   paid.Quantity,
		Earnings:   -paid.Earnings,
		Currency:   paid.Currency,
	})
	if err != nil {
		if errors.Is(err, store.ErrDuplicateCommission) {
			return nil, nil
		}
		p.logger.Error(ctx, "failed to create clawback commission", err)
		return nil, err
	}
	observability.CommissionsCreated.WithLabelValues(clawback.Type).Inc()
	return &clawback, nil
}

// ListCommissions returns a page of a program's commissions
func (p *CommissionProcessor) ListCommissions(ctx context.Context, programID uuid.UUID, params ListCommissionsParams) (ListCommissionsResult, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "program_id", Value: programID.String()})

	if params.Status != nil && !store.IsValidCommissionStatus(*params.Status) {
		return ListCommissionsResult{}, ErrInvalidStatus
	}
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 || params.Limit > 100 {
		params.Limit = 20
	}

	if _, err := p.store.GetProgramByID(ctx, programID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ListCommissionsResult{}, ErrProgramNotFound
		}
		p.logger.Error(ctx, "failed to get program", err)
		return ListCommissionsResult{}, err
	}

	commissions, total, err := p.store.ListCommissions(ctx, store.ListCommissionsParams{
		ProgramID: programID,
		PartnerID: params.PartnerID,
		Status:    params.Status,
		Limit:     params.Limit,
		Offset:    (params.Page - 1) * params.Limit,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to list commissions", err)
		return ListCommissionsResult{}, err
	}

	return ListCommissionsResult{
		Commissions: commissions,
		TotalCount:  total,
		Page:        params.Page,
		Limit:       params.Limit,
		TotalPages:  (total + params.Limit - 1) / params.Limit,
	}, nil
}
