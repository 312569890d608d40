package handler

import (
	"net/http"

	"dub-server/internal/apierrors"
	"dub-server/internal/conversions/processor"
	"dub-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// WorkspaceHeader carries the workspace a conversion belongs to
const WorkspaceHeader = "X-Workspace-ID"

type Handler struct {
	processor processor.ConversionProcessor
	logger    *observability.Logger
}

func New(processor processor.ConversionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// TrackLeadRequest represents the HTTP request for tracking a lead
type TrackLeadRequest struct {
	ClickID          string  `json:"click_id" binding:"required"`
	EventName        string  `json:"event_name" binding:"omitempty,max=255"`
	ExternalID       string  `json:"external_id" binding:"required,max=255"`
	CustomerName     *string `json:"customer_name,omitempty"`
	CustomerEmail    *string `json:"customer_email,omitempty" binding:"omitempty,email"`
	StripeCustomerID *string `json:"stripe_customer_id,omitempty"`
}

// TrackSaleRequest represents the HTTP request for tracking a sale. Amount is in minor units.
type TrackSaleRequest struct {
	ExternalID       string `json:"external_id" binding:"required,max=255"`
	Amount           int64  `json:"amount" binding:"required,gt=0"`
	Currency         string `json:"currency" binding:"omitempty,len=3"`
	EventName        string `json:"event_name" binding:"omitempty,max=255"`
	InvoiceID        string `json:"invoice_id" binding:"omitempty,max=255"`
	PaymentProcessor string `json:"payment_processor" binding:"omitempty,oneof=stripe shopify paddle custom"`
}

// HandleTrackLead records a lead for a click
func (h *Handler) HandleTrackLead(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := getWorkspaceID(c)
	if !ok {
		return
	}

	var req TrackLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.TrackLead(ctx, workspaceID, processor.TrackLeadParams{
		ClickID:          req.ClickID,
		EventName:        req.EventName,
		ExternalID:       req.ExternalID,
		CustomerName:     req.CustomerName,
		CustomerEmail:    req.CustomerEmail,
		StripeCustomerID: req.StripeCustomerID,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// HandleTrackSale records a sale for a known customer
func (h *Handler) HandleTrackSale(c *gin.Context) {
	ctx := c.Request.Context()

	workspaceID, ok := getWorkspaceID(c)
	if !ok {
		return
	}

	var req TrackSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	result, err := h.processor.TrackSale(ctx, workspaceID, processor.TrackSaleParams{
		ExternalID:       req.ExternalID,
		Amount:           req.Amount,
		Currency:         req.Currency,
		EventName:        req.EventName,
		InvoiceID:        req.InvoiceID,
		PaymentProcessor: req.PaymentProcessor,
	})
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func getWorkspaceID(c *gin.Context) (uuid.UUID, bool) {
	workspaceID, err := uuid.Parse(c.GetHeader(WorkspaceHeader))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "X-Workspace-ID header must be a valid UUID")
		return uuid.Nil, false
	}
	return workspaceID, true
}
