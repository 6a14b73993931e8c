package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"member-qa/domain/qa"
	"member-qa/errors"
)

// Client retrieves the member-message feed over HTTP. It performs no
// retries and substitutes no stale data; both policies belong to the
// snapshot provider above it.
type Client struct {
	http *http.Client
	url  string
	log  *slog.Logger
}

type feedEnvelope struct {
	Items []qa.RawRecord `json:"items"`
}

// NewClient builds a feed client with a bounded timeout. The endpoint URL
// is normalized with a trailing slash: the upstream answers the bare path
// with a 307 redirect.
func NewClient(url string, timeout time.Duration, log *slog.Logger) *Client {
	if !strings.HasSuffix(url, "/") {
		url += "/"
	}
	return &Client{
		http: &http.Client{Timeout: timeout},
		url:  url,
		log:  log,
	}
}

// Fetch returns the current raw record collection. Every failure mode
// (network, non-2xx status, invalid shape) maps to ErrFeedUnavailable.
func (c *Client) Fetch(ctx context.Context) ([]qa.RawRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", errors.ErrFeedUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, fmt.Errorf("%w: unexpected status %d", errors.ErrFeedUnavailable, resp.StatusCode)
	}

	var envelope feedEnvelope
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %v", errors.ErrFeedUnavailable, err)
	}

	c.log.Debug("Feed fetched",
		"records", len(envelope.Items),
		"latency_ms", time.Since(start).Milliseconds())
	return envelope.Items, nil
}
