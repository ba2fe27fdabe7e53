// Package booking creates bookings in the scheduling service when a
// customer accepts an outreach offer. Booking writes are never cached and
// never retried here; the scheduling service deduplicates on source_ref.
package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

// Request describes the booking to create.
type Request struct {
	CustomerID string    `json:"customer_id"`
	StaffID    string    `json:"staff_id"`
	ServiceID  string    `json:"service_id,omitempty"`
	StartTime  time.Time `json:"start_time"`
	EndTime    time.Time `json:"end_time"`
	Source     string    `json:"source"`
	SourceRef  string    `json:"source_ref"`
}

// Booking is the scheduling service's view of the created booking.
type Booking struct {
	ID     string `json:"booking_id"`
	Amount int64  `json:"amount"`
	Status string `json:"status"`
}

// Client creates bookings over HTTP with bearer auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// NewClient creates a booking client. token may be empty when the
// scheduling service sits on a trusted internal network.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		token:      token,
		logger:     logger,
	}
}

// Create posts the booking and returns the scheduling service's record.
func (c *Client) Create(ctx context.Context, tenantID string, req Request) (Booking, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return Booking{}, fmt.Errorf("encode booking request: %w", err)
	}

	reqURL := fmt.Sprintf("%s/api/v1/tenants/%s/bookings",
		c.baseURL, url.PathEscape(tenantID))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return Booking{}, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Booking{}, fmt.Errorf("create booking for %s: %w", req.CustomerID, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return Booking{}, fmt.Errorf("scheduling service returned HTTP %d", resp.StatusCode)
	}

	var b Booking
	if err := json.NewDecoder(resp.Body).Decode(&b); err != nil {
		return Booking{}, fmt.Errorf("decode booking response: %w", err)
	}
	if b.ID == "" {
		return Booking{}, fmt.Errorf("scheduling service returned no booking id")
	}
	return b, nil
}
