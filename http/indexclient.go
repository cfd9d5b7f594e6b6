// Package http provides the HTTP implementations of the web-archive
// index client and the page fetchers used for probing.
package http

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/portsift"
)

// DefaultIndexURL is the full-text index endpoint queried for
// candidate URLs, pinned to the current stable collection.
const DefaultIndexURL = "http://index.commoncrawl.org/CC-MAIN-2026-04-index"

// DefaultIndexTimeout is the per-request timeout for index queries.
const DefaultIndexTimeout = 20 * time.Second

// Ensure IndexClient implements portsift.IndexClient at compile time.
var _ portsift.IndexClient = (*IndexClient)(nil)

// IndexClient queries a web-archive full-text index over HTTP. A
// result page is newline-delimited JSON records each carrying a "url"
// field; HTTP 404 signals pagination exhaustion.
type IndexClient struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
}

// IndexOption configures an IndexClient.
type IndexOption func(*IndexClient)

// WithIndexURL overrides DefaultIndexURL.
func WithIndexURL(u string) IndexOption {
	return func(c *IndexClient) {
		c.baseURL = u
	}
}

// WithIndexTimeout overrides DefaultIndexTimeout.
func WithIndexTimeout(d time.Duration) IndexOption {
	return func(c *IndexClient) {
		c.timeout = d
	}
}

// NewIndexClient creates a new IndexClient.
func NewIndexClient(opts ...IndexOption) *IndexClient {
	c := &IndexClient{
		baseURL: DefaultIndexURL,
		timeout: DefaultIndexTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// Search returns the candidate URLs on one result page for the
// pattern. Malformed records are skipped. Returns ENOTFOUND on
// exhaustion, EUNAVAILABLE on other non-success statuses, and the
// transport error as-is on connection failures.
func (c *IndexClient) Search(ctx context.Context, pattern portsift.Query, page int) ([]string, error) {
	params := url.Values{}
	params.Set("url", string(pattern))
	params.Set("output", "json")
	params.Set("fl", "url")
	params.Set("page", strconv.Itoa(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, portsift.Errorf(portsift.ENOTFOUND, "no more index pages for %q", pattern)
	case resp.StatusCode != http.StatusOK:
		return nil, portsift.Errorf(portsift.EUNAVAILABLE, "index returned HTTP %d", resp.StatusCode)
	}

	var urls []string
	scanner := bufio.NewScanner(resp.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var record struct {
			URL string `json:"url"`
		}
		if err := json.Unmarshal(line, &record); err != nil {
			continue
		}
		if record.URL == "" {
			continue
		}
		urls = append(urls, record.URL)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return urls, nil
}
