package apierrors

import (
	"errors"
	"strings"

	commissionProcessor "dub-server/internal/commissions/processor"
	conversionProcessor "dub-server/internal/conversions/processor"
	fraudProcessor "dub-server/internal/fraud/processor"
	linkProcessor "dub-server/internal/links/processor"
	payoutProcessor "dub-server/internal/payouts/processor"
	redirectProcessor "dub-server/internal/redirect/processor"
	"dub-server/internal/store"
)

// MapError converts domain/processor errors to APIErrors.
//
// If the error is already an APIError, it returns it as-is.
// If the error is a known domain error, it maps it to an appropriate APIError.
// If the error is unknown, it returns a sanitized InternalError (500).
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	switch {
	// Redirects
	case errors.Is(err, redirectProcessor.ErrLinkNotFound):
		return NotFound(CodeLinkNotFound, "Link not found")
	case errors.Is(err, redirectProcessor.ErrLinkDisabled):
		return NotFound(CodeLinkDisabled, "Link not found")
	case errors.Is(err, redirectProcessor.ErrLinkExpired):
		return Gone(CodeLinkExpired, "This link has expired")

	// Links
	case errors.Is(err, linkProcessor.ErrLinkNotFound):
		return NotFound(CodeLinkNotFound, "Link not found")
	case errors.Is(err, linkProcessor.ErrKeyExists):
		return Conflict(CodeLinkKeyExists, "A link with this key already exists on this domain")
	case errors.Is(err, linkProcessor.ErrInvalidURL):
		return BadRequest(CodeInvalidURL, "Destination URL must be an absolute http or https URL")
	case errors.Is(err, linkProcessor.ErrInvalidDomain):
		return BadRequest(CodeInvalidDomain, "Invalid domain")
	case errors.Is(err, linkProcessor.ErrInvalidKey):
		return BadRequest(CodeInvalidKey, "Invalid link key")

	// Conversions
	case errors.Is(err, conversionProcessor.ErrClickNotFound):
		return NotFound(CodeClickNotFound, "Click not found")
	case errors.Is(err, conversionProcessor.ErrCustomerNotFound):
		return NotFound(CodeCustomerNotFound, "Customer not found")
	case errors.Is(err, conversionProcessor.ErrInvalidAmount):
		return BadRequest(CodeInvalidAmount, "Amount must be a positive integer in minor units")

	// Commissions
	case errors.Is(err, commissionProcessor.ErrProgramNotFound):
		return NotFound(CodeProgramNotFound, "Program not found")
	case errors.Is(err, commissionProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid commission status")

	// Payouts
	case errors.Is(err, payoutProcessor.ErrProgramNotFound):
		return NotFound(CodeProgramNotFound, "Program not found")
	case errors.Is(err, payoutProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid payout status")

	// Fraud
	case errors.Is(err, fraudProcessor.ErrEnrollmentNotFound):
		return NotFound(CodeEnrollmentNotFound, "Partner is not enrolled in this program")
	case errors.Is(err, fraudProcessor.ErrFraudEventNotFound):
		return NotFound(CodeFraudEventNotFound, "Fraud event not found")
	case errors.Is(err, fraudProcessor.ErrFraudEventResolved):
		return Conflict(CodeFraudEventResolved, "Fraud event is already resolved")
	case errors.Is(err, fraudProcessor.ErrInvalidResolution):
		return BadRequest(CodeInvalidStatus, "Resolution must be one of: safe, banned")
	case errors.Is(err, fraudProcessor.ErrInvalidStatus):
		return BadRequest(CodeInvalidStatus, "Invalid fraud event status")

	case errors.Is(err, store.ErrNotFound):
		return NotFound(CodeNotFound, "Resource not found")

	default:
		return mapExternalServiceError(err)
	}
}

// mapExternalServiceError attempts to identify external service errors
// and map them to appropriate service-specific error responses.
func mapExternalServiceError(err error) *APIError {
	errMsg := strings.ToLower(err.Error())

	if strings.Contains(errMsg, "stripe") || strings.Contains(errMsg, "transfer") {
		return ServiceUnavailable(
			CodePaymentProviderError,
			"Payment provider is temporarily unavailable. Please try again later.",
			err,
		)
	}

	if strings.Contains(errMsg, "tinybird") {
		return ServiceUnavailable(
			CodeAnalyticsError,
			"Analytics service is temporarily unavailable. Please try again later.",
			err,
		)
	}

	return InternalError(err)
}
