package ttp

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	BaseURL        = "https://ttp.cbp.dhs.gov/schedulerapi"
	UserAgent      = "ttp-appointments-cli/1.0 (github.com/pfrederiksen/ttp-appointments)"
	DefaultTimeout = 30 * time.Second
)

// Client is a client for the TTP scheduler API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new scheduler API client
func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: BaseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// NewClientWithBaseURL creates a client against a non-default base URL.
// Used by tests to point the client at a local server.
func NewClientWithBaseURL(baseURL string, timeout time.Duration) *Client {
	client := NewClient(timeout)
	client.baseURL = baseURL
	return client
}

// FetchLocations fetches all operational, non-temporary, non-invite-only
// enrollment centers offering the named service
func (c *Client) FetchLocations(ctx context.Context, serviceName string) ([]Location, error) {
	params := url.Values{}
	params.Set("temporary", "false")
	params.Set("inviteOnly", "false")
	params.Set("operational", "true")
	params.Set("serviceName", serviceName)

	reqURL := fmt.Sprintf("%s/locations/?%s", c.baseURL, params.Encode())

	var locations []Location
	if err := c.getJSON(ctx, reqURL, &locations); err != nil {
		return nil, fmt.Errorf("fetching locations: %w", err)
	}

	return locations, nil
}

// FetchSlots fetches up to limit of the soonest open slots at one location
func (c *Client) FetchSlots(ctx context.Context, locationID, limit int) ([]Slot, error) {
	params := url.Values{}
	params.Set("orderBy", "soonest")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("locationId", strconv.Itoa(locationID))
	params.Set("minimum", "1")

	reqURL := fmt.Sprintf("%s/slots?%s", c.baseURL, params.Encode())

	var slots []Slot
	if err := c.getJSON(ctx, reqURL, &slots); err != nil {
		return nil, fmt.Errorf("fetching slots for location %d: %w", locationID, err)
	}

	return slots, nil
}

// getJSON performs a GET request and decodes the JSON response into out
func (c *Client) getJSON(ctx context.Context, reqURL string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}

	return nil
}
