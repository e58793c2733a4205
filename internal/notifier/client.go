package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
)

// genericSendError is shown when the endpoint fails without a decodable
// error body.
const genericSendError = "failed to send order email"

// Client posts order notifications to the notification endpoint.
type Client struct {
	endpointURL string
	httpClient  *http.Client
}

// NewClient creates a notification client for the given endpoint URL.
func NewClient(endpointURL string) *Client {
	return &Client{
		endpointURL: endpointURL,
		httpClient:  &http.Client{},
	}
}

// Notify sends the order fields to the notification endpoint as a JSON
// POST. A non-2xx response is an error carrying the endpoint's message
// when one can be extracted from the body. One attempt, no retry.
func (c *Client) Notify(ctx context.Context, n Notification) error {
	body, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to marshal notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpointURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Error("Failed to close notification response body", "error", err)
		}
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		var errResp struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("%s", errResp.Error)
		}

		return fmt.Errorf("%s", genericSendError)
	}

	return nil
}
