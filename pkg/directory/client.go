// Package directory looks up customer contact details from the booking
// platform's customer service. Contacts change rarely, so responses are
// cached in-process with a short TTL.
package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

const defaultCacheTTL = 10 * time.Minute

// Contact is the slice of a customer record the control plane needs.
type Contact struct {
	CustomerID string `json:"customer_id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
}

// Client fetches contacts over HTTP with bearer auth.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      *contactCache
	logger     *slog.Logger
}

// NewClient creates a directory client. token may be empty when the
// customer service sits on a trusted internal network.
func NewClient(baseURL, token string, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		token:      token,
		cache:      newContactCache(defaultCacheTTL),
		logger:     logger,
	}
}

// Contact returns a customer's contact details, from cache when fresh.
func (c *Client) Contact(ctx context.Context, tenantID, customerID string) (Contact, error) {
	key := tenantID + "/" + customerID
	if contact, ok := c.cache.get(key); ok {
		return contact, nil
	}

	reqURL := fmt.Sprintf("%s/api/v1/tenants/%s/customers/%s",
		c.baseURL, url.PathEscape(tenantID), url.PathEscape(customerID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Contact{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Contact{}, fmt.Errorf("fetch customer %s: %w", customerID, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return Contact{}, fmt.Errorf("customer %s not found", customerID)
	default:
		return Contact{}, fmt.Errorf("customer service returned HTTP %d for %s", resp.StatusCode, customerID)
	}

	var contact Contact
	if err := json.NewDecoder(resp.Body).Decode(&contact); err != nil {
		return Contact{}, fmt.Errorf("decode customer response: %w", err)
	}
	if contact.CustomerID == "" {
		contact.CustomerID = customerID
	}

	c.cache.set(key, contact)
	return contact, nil
}

// Static is a fixed in-memory directory for development and tests.
type Static map[string]Contact

// Contact implements the same lookup against the fixed map, keyed by
// "tenantID/customerID".
func (s Static) Contact(_ context.Context, tenantID, customerID string) (Contact, error) {
	contact, ok := s[tenantID+"/"+customerID]
	if !ok {
		return Contact{}, fmt.Errorf("customer %s not found", customerID)
	}
	return contact, nil
}
