package simsched

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SumOfBesties/besties-layout/internal/domain/model"
)

// HTTPClient wraps http.Client with timeout
type HTTPClient struct {
	client  *http.Client
	baseURL string
}

// newHTTPClient creates a new HTTP client with timeout
func newHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client:  &http.Client{Timeout: timeout},
		baseURL: baseURL,
	}
}

// TriggerImport posts an import request for the slug. A false return means
// the service rejected the request (backpressure).
func (c *HTTPClient) TriggerImport(ctx context.Context, slug string, forceNew bool) (bool, error) {
	body, err := json.Marshal(map[string]any{"slug": slug, "forceNew": forceNew})
	if err != nil {
		return false, fmt.Errorf("failed to marshal import request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/import", bytes.NewReader(body))
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return false, fmt.Errorf("import request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	switch resp.StatusCode {
	case http.StatusAccepted:
		return true, nil
	case http.StatusTooManyRequests:
		return false, nil
	default:
		return false, fmt.Errorf("unexpected import status: %s", resp.Status)
	}
}

// FetchSchedule retrieves the current schedule snapshot.
func (c *HTTPClient) FetchSchedule(ctx context.Context) (model.Schedule, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/schedule", nil)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return model.Schedule{}, fmt.Errorf("schedule request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return model.Schedule{}, fmt.Errorf("unexpected schedule status: %s", resp.Status)
	}

	var schedule model.Schedule
	if err := json.NewDecoder(resp.Body).Decode(&schedule); err != nil {
		return model.Schedule{}, fmt.Errorf("failed to decode schedule: %w", err)
	}
	return schedule, nil
}
