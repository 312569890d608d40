package handler

import (
	"net/http"
	"strconv"

	"dub-server/internal/apierrors"
	"dub-server/internal/observability"
	"dub-server/internal/payouts/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.PayoutProcessor
	logger    *observability.Logger
}

func New(processor processor.PayoutProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleAggregatePayouts aggregates a program's payable commissions now
func (h *Handler) HandleAggregatePayouts(c *gin.Context) {
	ctx := c.Request.Context()

	programID, ok := getProgramID(c)
	if !ok {
		return
	}

	payouts, err := h.processor.AggregateProgramPayouts(ctx, programID)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"payouts": payouts})
}

// HandleSendPayouts queues the transfer of a program's ready payouts
func (h *Handler) HandleSendPayouts(c *gin.Context) {
	ctx := c.Request.Context()

	programID, ok := getProgramID(c)
	if !ok {
		return
	}

	if err := h.processor.ScheduleSend(ctx, programID); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
}

// HandleListPayouts lists a program's payouts
func (h *Handler) HandleListPayouts(c *gin.Context) {
	ctx := c.Request.Context()

	programID, ok := getProgramID(c)
	if !ok {
		return
	}

	params := processor.ListPayoutsParams{}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	params.Page, _ = strconv.Atoi(c.Query("page"))
	params.Limit, _ = strconv.Atoi(c.Query("limit"))

	result, err := h.processor.ListPayouts(ctx, programID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func getProgramID(c *gin.Context) (uuid.UUID, bool) {
	programID, err := uuid.Parse(c.Param("program_id"))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid program ID")
		return uuid.Nil, false
	}
	return programID, true
}
