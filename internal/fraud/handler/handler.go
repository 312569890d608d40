package handler

import (
	"net/http"

	"dub-server/internal/apierrors"
	"dub-server/internal/fraud/processor"
	"dub-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.FraudProcessor
	logger    *observability.Logger
}

func New(processor processor.FraudProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// BanPartnerRequest represents the HTTP request for banning a partner
type BanPartnerRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}

// ResolveFraudEventRequest represents the HTTP request for settling a fraud event
type ResolveFraudEventRequest struct {
	Status string `json:"status" binding:"required,oneof=safe banned"`
}

// HandleBanPartner bans a partner from a program
func (h *Handler) HandleBanPartner(c *gin.Context) {
	ctx := c.Request.Context()

	programID, partnerID, ok := h.getEnrollmentIDs(c)
	if !ok {
		return
	}

	var req BanPartnerRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			apierrors.RespondWithValidationError(c, err)
			return
		}
	}

	result, err := h.processor.BanPartner(ctx, programID, partnerID, req.Reason)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enrollment":            result.Enrollment,
		"disabled_links":        len(result.DisabledLinks),
		"canceled_commissions":  result.CanceledCommissions,
		"canceled_payouts":      result.CanceledPayouts,
		"resolved_fraud_events": result.ResolvedFraudEvents,
	})
}

// HandleUnbanPartner lifts a partner's ban
func (h *Handler) HandleUnbanPartner(c *gin.Context) {
	ctx := c.Request.Context()

	programID, partnerID, ok := h.getEnrollmentIDs(c)
	if !ok {
		return
	}

	result, err := h.processor.UnbanPartner(ctx, programID, partnerID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"enrollment":    result.Enrollment,
		"enabled_links": len(result.EnabledLinks),
	})
}

// HandleListFraudEvents lists a program's fraud events
func (h *Handler) HandleListFraudEvents(c *gin.Context) {
	ctx := c.Request.Context()

	programID, err := uuid.Parse(c.Param("program_id"))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid program ID")
		return
	}

	var status *string
	if s := c.Query("status"); s != "" {
		status = &s
	}

	fraudEvents, err := h.processor.ListFraudEvents(ctx, programID, status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"fraud_events": fraudEvents})
}

// HandleResolveFraudEvent settles a pending fraud event as safe or banned
func (h *Handler) HandleResolveFraudEvent(c *gin.Context) {
	ctx := c.Request.Context()

	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid fraud event ID")
		return
	}

	var req ResolveFraudEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.RespondWithValidationError(c, err)
		return
	}

	event, err := h.processor.ResolveFraudEvent(ctx, eventID, req.Status)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, event)
}

func (h *Handler) getEnrollmentIDs(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	programID, err := uuid.Parse(c.Param("program_id"))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid program ID")
		return uuid.Nil, uuid.Nil, false
	}
	partnerID, err := uuid.Parse(c.Param("partner_id"))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid partner ID")
		return uuid.Nil, uuid.Nil, false
	}
	return programID, partnerID, true
}
