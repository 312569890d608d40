package handler

import (
	"errors"
	"io"
	"net/http"

	"dub-server/internal/apierrors"
	"dub-server/internal/integrations/stripe/processor"
	"dub-server/internal/observability"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v79/webhook"
)

// maxBodyBytes bounds the webhook payload read into memory. Larger payloads are rejected
// rather than cut short, since a truncated body can never match its signature.
const maxBodyBytes = int64(65536)

type Handler struct {
	processor processor.WebhookProcessor
	logger    *observability.Logger
}

func New(processor processor.WebhookProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// HandleWebhook verifies and dispatches a Stripe webhook event
func (h *Handler) HandleWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			h.logger.Warn(ctx, "stripe webhook payload too large")
			apierrors.RespondWithError(c, apierrors.PayloadTooLarge("webhook payload too large"))
			return
		}
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "failed to read request body")
		return
	}

	signatureHeader := c.GetHeader("Stripe-Signature")
	if signatureHeader == "" {
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "missing Stripe-Signature header")
		return
	}
	event, err := webhook.ConstructEvent(payload, signatureHeader, h.processor.WebhookSecret)
	if err != nil {
		h.logger.Warn(ctx, "invalid stripe webhook signature")
		apierrors.RespondBadRequest(c, apierrors.CodeInvalidInput, "invalid webhook signature")
		return
	}

	if err := h.processor.HandleWebhook(ctx, event); err != nil {
		apierrors.RespondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success"})
}
