package store

// Reward ENUMs
const (
	RewardEventClick = "click"
	RewardEventLead  = "lead"
	RewardEventSale  = "sale"
)

const (
	RewardTypeFlat       = "flat"
	RewardTypePercentage = "percentage"
)

// Program Enrollment ENUMs
const (
	EnrollmentStatusPending  = "pending"
	EnrollmentStatusApproved = "approved"
	EnrollmentStatusBanned   = "banned"
	EnrollmentStatusArchived = "archived"
)

// Commission ENUMs
const (
	CommissionTypeClick  = "click"
	CommissionTypeLead   = "lead"
	CommissionTypeSale   = "sale"
	CommissionTypeCustom = "custom"
)

const (
	CommissionStatusPending   = "pending"
	CommissionStatusProcessed = "processed"
	CommissionStatusPaid      = "paid"
	CommissionStatusRefunded  = "refunded"
	CommissionStatusCanceled  = "canceled"
)

// Payout ENUMs
const (
	PayoutStatusPending    = "pending"
	PayoutStatusProcessing = "processing"
	PayoutStatusCompleted  = "completed"
	PayoutStatusFailed     = "failed"
	PayoutStatusCanceled   = "canceled"
)

// Fraud Event ENUMs
const (
	FraudEventStatusPending = "pending"
	FraudEventStatusSafe    = "safe"
	FraudEventStatusBanned  = "banned"
)

const (
	FraudTypeCustomerEmailMatch      = "customer_email_match"
	FraudTypeCustomerEmailSuspicious = "customer_email_suspicious_domain"
	FraudTypeCrossProgramBan         = "cross_program_ban"
)

// IsValidCommissionStatus reports whether s is a known commission status
func IsValidCommissionStatus(s string) bool {
	switch s {
	case CommissionStatusPending, CommissionStatusProcessed, CommissionStatusPaid,
		CommissionStatusRefunded, CommissionStatusCanceled:
		return true
	}
	return false
}

// IsValidPayoutStatus reports whether s is a known payout status
func IsValidPayoutStatus(s string) bool {
	switch s {
	case PayoutStatusPending, PayoutStatusProcessing, PayoutStatusCompleted,
		PayoutStatusFailed, PayoutStatusCanceled:
		return true
	}
	return false
}
