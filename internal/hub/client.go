// Path: internal/hub/client.go
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"hf-datasets/internal/config"
	"hf-datasets/internal/domain"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://huggingface.co"

// Client is a rate-limited HTTP client for the Hugging Face datasets API.
type Client struct {
	baseURL string
	client  *http.Client
	limiter *rate.Limiter
}

// NewClient creates and configures a new hub client.
func NewClient(cfg config.HubConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 5
	}
	burst := cfg.BurstLimit
	if burst <= 0 {
		burst = 10
	}
	return &Client{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: timeout,
		},
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// ListDatasets fetches a single batch of up to count dataset entries,
// ordered by downloads. Entries are returned undecoded; Normalize turns
// them into records one at a time so a single bad entry cannot poison the
// batch.
func (c *Client) ListDatasets(ctx context.Context, count int) ([]json.RawMessage, error) {
	listURL := fmt.Sprintf("%s/api/datasets?sort=downloads&direction=-1&limit=%d&full=true", c.baseURL, count)

	body, err := c.get(ctx, listURL)
	if err != nil {
		return nil, err
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json response: %w", err)
	}
	return entries, nil
}

// GetDataset fetches a single dataset entry by its id. It returns
// domain.ErrNotFound when the hub does not know the id.
func (c *Client) GetDataset(ctx context.Context, id string) (json.RawMessage, error) {
	// Ids contain at most one slash (namespace/name) and map directly onto
	// the API path.
	detailURL := fmt.Sprintf("%s/api/datasets/%s", c.baseURL, id)

	body, err := c.get(ctx, detailURL)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(body), nil
}

// get performs one rate-limited GET against the hub API.
func (c *Client) get(ctx context.Context, requestURL string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, nil
}
