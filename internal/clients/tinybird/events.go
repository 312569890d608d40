package tinybird

// ClickEvent is a row of dub_click_events
type ClickEvent struct {
	Timestamp   string   `json:"timestamp"`
	ClickID     string   `json:"click_id"`
	WorkspaceID string   `json:"workspace_id"`
	LinkID      string   `json:"link_id"`
	Domain      string   `json:"domain"`
	Key         string   `json:"key"`
	URL         string   `json:"url"`
	IP          string   `json:"ip"`
	Country     string   `json:"country"`
	Region      string   `json:"region"`
	City        string   `json:"city"`
	Continent   string   `json:"continent"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	Device      string   `json:"device"`
	OS          string   `json:"os"`
	Browser     string   `json:"browser"`
	UA          string   `json:"ua"`
	Referer     string   `json:"referer"`
	RefererURL  string   `json:"referer_url"`
	QR          bool     `json:"qr"`
}

// LeadEvent is a row of dub_lead_events
type LeadEvent struct {
	ClickEvent
	EventID    string `json:"event_id"`
	EventName  string `json:"event_name"`
	CustomerID string `json:"customer_id"`
}

// SaleEvent is a row of dub_sale_events. Amount is in minor units.
type SaleEvent struct {
	ClickEvent
	EventID          string `json:"event_id"`
	EventName        string `json:"event_name"`
	CustomerID       string `json:"customer_id"`
	InvoiceID        string `json:"invoice_id"`
	PaymentProcessor string `json:"payment_processor"`
	Amount           int64  `json:"amount"`
	Currency         string `json:"currency"`
}
