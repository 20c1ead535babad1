package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// FetchError reports a failed feed fetch. It is fatal for the run: no
// calendar access happens after a fetch failure.
type FetchError struct {
	URL string
	Err error
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("feed fetch %s: %v", e.URL, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Client fetches the fixture list over HTTP.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// NewClient creates a feed client based on the configuration.
func NewClient(cfg Config) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &Client{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(timeout) * time.Second,
		},
	}
}

// FetchMatches performs one GET against the fixture endpoint and decodes the
// response body as a JSON array of raw match records. The endpoint returns
// the full relevant set in one response; there is no pagination.
func (c *Client) FetchMatches(ctx context.Context) ([]RawMatch, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.URL, nil)
	if err != nil {
		return nil, &FetchError{URL: c.cfg.URL, Err: err}
	}

	req.Header.Set("User-Agent", c.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &FetchError{URL: c.cfg.URL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &FetchError{URL: c.cfg.URL, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{URL: c.cfg.URL, Err: fmt.Errorf("read body: %w", err)}
	}

	var matches []RawMatch
	if err := json.Unmarshal(body, &matches); err != nil {
		return nil, &FetchError{URL: c.cfg.URL, Err: fmt.Errorf("decode body: %w", err)}
	}

	return matches, nil
}
