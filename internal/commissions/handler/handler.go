package handler

import (
	"net/http"
	"strconv"

	"dub-server/internal/apierrors"
	"dub-server/internal/commissions/processor"
	"dub-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.CommissionProcessor
	logger    *observability.Logger
}

func New(processor processor.CommissionProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleListCommissions lists a program's commissions, filtered by partner and status
func (h *Handler) HandleListCommissions(c *gin.Context) {
	ctx := c.Request.Context()

	programID, err := uuid.Parse(c.Param("program_id"))
	if err != nil {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid program ID")
		return
	}

	params := processor.ListCommissionsParams{}
	if partner := c.Query("partner_id"); partner != "" {
		partnerID, err := uuid.Parse(partner)
		if err != nil {
			apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "Invalid partner ID")
			return
		}
		params.PartnerID = &partnerID
	}
	if status := c.Query("status"); status != "" {
		params.Status = &status
	}
	params.Page, _ = strconv.Atoi(c.Query("page"))
	params.Limit, _ = strconv.Atoi(c.Query("limit"))

	result, err := h.processor.ListCommissions(ctx, programID, params)
	if err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
