package store

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// JSONB is a custom type for JSONB fields
type JSONB map[string]interface{}

// Value implements the driver.Valuer interface for JSONB
func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(j)
}

// Scan implements the sql.Scanner interface for JSONB
func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("incompatible type for JSONB")
	}

	if len(bytes) == 0 || string(bytes) == "null" {
		*j = make(JSONB)
		return nil
	}

	result := make(JSONB)
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*j = result
	return nil
}

// Link is a short link. (Domain, Key) is globally unique.
type Link struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	WorkspaceID     uuid.UUID  `db:"workspace_id" json:"workspace_id"`
	Domain          string     `db:"domain" json:"domain"`
	Key             string     `db:"key" json:"key"`
	URL             string     `db:"url" json:"url"`
	ProgramID       *uuid.UUID `db:"program_id" json:"program_id,omitempty"`
	PartnerID       *uuid.UUID `db:"partner_id" json:"partner_id,omitempty"`
	TrackConversion bool       `db:"track_conversion" json:"track_conversion"`
	ExpiresAt       *time.Time `db:"expires_at" json:"expires_at,omitempty"`
	ExpiredURL      *string    `db:"expired_url" json:"expired_url,omitempty"`
	DisabledAt      *time.Time `db:"disabled_at" json:"disabled_at,omitempty"`
	Archived        bool       `db:"archived" json:"archived"`
	Clicks          int64      `db:"clicks" json:"clicks"`
	Leads           int64      `db:"leads" json:"leads"`
	Sales           int64      `db:"sales" json:"sales"`
	SaleAmount      int64      `db:"sale_amount" json:"sale_amount"`
	LastClicked     *time.Time `db:"last_clicked" json:"last_clicked,omitempty"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time  `db:"updated_at" json:"updated_at"`
}

// IsPartnerLink reports whether clicks on the link can earn commissions
func (l Link) IsPartnerLink() bool {
	return l.ProgramID != nil && l.PartnerID != nil
}

// LinkRef identifies a link in the cache
type LinkRef struct {
	ID     uuid.UUID `db:"id" json:"id"`
	Domain string    `db:"domain" json:"domain"`
	Key    string    `db:"key" json:"key"`
}

// Program is a partner program owned by a workspace
type Program struct {
	ID                uuid.UUID `db:"id" json:"id"`
	WorkspaceID       uuid.UUID `db:"workspace_id" json:"workspace_id"`
	Name              string    `db:"name" json:"name"`
	HoldingPeriodDays int       `db:"holding_period_days" json:"holding_period_days"`
	MinPayoutAmount   int64     `db:"min_payout_amount" json:"min_payout_amount"`
	Currency          string    `db:"currency" json:"currency"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time `db:"updated_at" json:"updated_at"`
}

// Reward describes what a partner earns for one event type
type Reward struct {
	ID                uuid.UUID `db:"id" json:"id"`
	ProgramID         uuid.UUID `db:"program_id" json:"program_id"`
	Event             string    `db:"event" json:"event"`
	Type              string    `db:"type" json:"type"`
	Amount            int64     `db:"amount" json:"amount"`
	MaxDurationMonths *int      `db:"max_duration_months" json:"max_duration_months,omitempty"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Partner is an affiliate that can enroll in programs
type Partner struct {
	ID              uuid.UUID `db:"id" json:"id"`
	Name            string    `db:"name" json:"name"`
	Email           string    `db:"email" json:"email"`
	StripeConnectID *string   `db:"stripe_connect_id" json:"stripe_connect_id,omitempty"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
}

// ProgramEnrollment is a partner's membership in a program
type ProgramEnrollment struct {
	ID           uuid.UUID  `db:"id" json:"id"`
	ProgramID    uuid.UUID  `db:"program_id" json:"program_id"`
	PartnerID    uuid.UUID  `db:"partner_id" json:"partner_id"`
	Status       string     `db:"status" json:"status"`
	BannedAt     *time.Time `db:"banned_at" json:"banned_at,omitempty"`
	BannedReason *string    `db:"banned_reason" json:"banned_reason,omitempty"`
	CreatedAt    time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at" json:"updated_at"`
}

// Customer is an end user attributed to a click through a lead event
type Customer struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	WorkspaceID      uuid.UUID  `db:"workspace_id" json:"workspace_id"`
	ExternalID       string     `db:"external_id" json:"external_id"`
	Name             *string    `db:"name" json:"name,omitempty"`
	Email            *string    `db:"email" json:"email,omitempty"`
	LinkID           *uuid.UUID `db:"link_id" json:"link_id,omitempty"`
	ClickID          *string    `db:"click_id" json:"click_id,omitempty"`
	Country          *string    `db:"country" json:"country,omitempty"`
	StripeCustomerID *string    `db:"stripe_customer_id" json:"stripe_customer_id,omitempty"`
	LeadRecordedAt   *time.Time `db:"lead_recorded_at" json:"lead_recorded_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
}

// Commission is money owed to a partner for one event. Amounts are minor units.
type Commission struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	ProgramID  uuid.UUID  `db:"program_id" json:"program_id"`
	PartnerID  uuid.UUID  `db:"partner_id" json:"partner_id"`
	LinkID     *uuid.UUID `db:"link_id" json:"link_id,omitempty"`
	CustomerID *uuid.UUID `db:"customer_id" json:"customer_id,omitempty"`
	PayoutID   *uuid.UUID `db:"payout_id" json:"payout_id,omitempty"`
	Type       string     `db:"type" json:"type"`
	EventID    *string    `db:"event_id" json:"event_id,omitempty"`
	InvoiceID  *string    `db:"invoice_id" json:"invoice_id,omitempty"`
	Amount     int64      `db:"amount" json:"amount"`
	Quantity   int        `db:"quantity" json:"quantity"`
	Earnings   int64      `db:"earnings" json:"earnings"`
	Currency   string     `db:"currency" json:"currency"`
	Status     string     `db:"status" json:"status"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time  `db:"updated_at" json:"updated_at"`
}

// Payout batches a partner's commissions for one program
type Payout struct {
	ID               uuid.UUID  `db:"id" json:"id"`
	ProgramID        uuid.UUID  `db:"program_id" json:"program_id"`
	PartnerID        uuid.UUID  `db:"partner_id" json:"partner_id"`
	Amount           int64      `db:"amount" json:"amount"`
	Currency         string     `db:"currency" json:"currency"`
	Status           string     `db:"status" json:"status"`
	PeriodStart      *time.Time `db:"period_start" json:"period_start,omitempty"`
	PeriodEnd        *time.Time `db:"period_end" json:"period_end,omitempty"`
	Description      *string    `db:"description" json:"description,omitempty"`
	StripeTransferID *string    `db:"stripe_transfer_id" json:"stripe_transfer_id,omitempty"`
	FailureReason    *string    `db:"failure_reason" json:"failure_reason,omitempty"`
	PaidAt           *time.Time `db:"paid_at" json:"paid_at,omitempty"`
	CreatedAt        time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at" json:"updated_at"`
}

// PayoutWithPartner carries the transfer destination alongside a payout
type PayoutWithPartner struct {
	Payout
	PartnerEmail    string  `db:"partner_email" json:"partner_email"`
	StripeConnectID *string `db:"stripe_connect_id" json:"stripe_connect_id,omitempty"`
}

// FraudEvent is a suspicious signal raised against a partner
type FraudEvent struct {
	ID         uuid.UUID  `db:"id" json:"id"`
	ProgramID  uuid.UUID  `db:"program_id" json:"program_id"`
	PartnerID  uuid.UUID  `db:"partner_id" json:"partner_id"`
	CustomerID *uuid.UUID `db:"customer_id" json:"customer_id,omitempty"`
	Type       string     `db:"type" json:"type"`
	Status     string     `db:"status" json:"status"`
	Details    JSONB      `db:"details" json:"details"`
	ResolvedAt *time.Time `db:"resolved_at" json:"resolved_at,omitempty"`
	CreatedAt  time.Time  `db:"created_at" json:"created_at"`
}
