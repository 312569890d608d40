package tinybird

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"dub-server/internal/config"
	"dub-server/internal/observability"
)

// Datasources written by the click pipeline
const (
	DatasourceClickEvents = "dub_click_events"
	DatasourceLeadEvents  = "dub_lead_events"
	DatasourceSaleEvents  = "dub_sale_events"
)

const pipeGetClickEvent = "get_click_event"

var (
	// ErrDisabled is returned when no token is configured
	ErrDisabled = errors.New("tinybird is disabled")

	// ErrClickNotFound is returned when the click pipe has no row for the click id
	ErrClickNotFound = errors.New("click not found in analytics store")
)

// Client writes events to Tinybird datasources and reads from its pipes
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *observability.Logger
}

// NewClient creates a new Tinybird client
func NewClient(cfg config.TinybirdConfig, logger *observability.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     logger,
	}
}

// IsEnabled reports whether a token is configured
func (c *Client) IsEnabled() bool {
	return c != nil && c.token != ""
}

type ingestResponse struct {
	SuccessfulRows  int `json:"successful_rows"`
	QuarantinedRows int `json:"quarantined_rows"`
}

// Ingest appends rows to a datasource through the Events API using NDJSON
func (c *Client) Ingest(ctx context.Context, datasource string, rows ...interface{}) error {
	if !c.IsEnabled() {
		return ErrDisabled
	}
	if len(rows) == 0 {
		return nil
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "datasource", Value: datasource},
		observability.Field{Key: "rows", Value: len(rows)},
	)

	var body bytes.Buffer
	enc := json.NewEncoder(&body)
	for _, row := range rows {
		if err := enc.Encode(row); err != nil {
			c.logger.Error(ctx, "failed to encode tinybird row", err)
			return fmt.Errorf("failed to encode tinybird row: %w", err)
		}
	}

	endpoint := fmt.Sprintf("%s/v0/events?name=%s", c.baseURL, url.QueryEscape(datasource))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &body)
	if err != nil {
		return fmt.Errorf("failed to build tinybird request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/x-ndjson")

	var resp ingestResponse
	if err := c.do(req, &resp); err != nil {
		c.logger.Error(ctx, "failed to ingest tinybird events", err)
		return err
	}
	if resp.QuarantinedRows > 0 {
		c.logger.Warn(observability.WithFields(ctx,
			observability.Field{Key: "quarantined_rows", Value: resp.QuarantinedRows},
		), "tinybird quarantined rows")
	}
	return nil
}

type pipeResponse struct {
	Data []ClickEvent `json:"data"`
}

// GetClickEvent reads a recorded click back from the analytics store
func (c *Client) GetClickEvent(ctx context.Context, clickID string) (ClickEvent, error) {
	if !c.IsEnabled() {
		return ClickEvent{}, ErrDisabled
	}

	endpoint := fmt.Sprintf("%s/v0/pipes/%s.json?clickId=%s", c.baseURL, pipeGetClickEvent, url.QueryEscape(clickID))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return ClickEvent{}, fmt.Errorf("failed to build tinybird request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	var resp pipeResponse
	if err := c.do(req, &resp); err != nil {
		c.logger.Error(observability.WithFields(ctx, observability.Field{Key: "click_id", Value: clickID}),
			"failed to query tinybird pipe", err)
		return ClickEvent{}, err
	}
	if len(resp.Data) == 0 {
		return ClickEvent{}, ErrClickNotFound
	}
	return resp.Data[0], nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tinybird request failed: %w", err)
	}
	defer res.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read tinybird response: %w", err)
	}
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("tinybird returned status %d: %s", res.StatusCode, strings.TrimSpace(string(payload)))
	}
	if out == nil || len(payload) == 0 {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode tinybird response: %w", err)
	}
	return nil
}
