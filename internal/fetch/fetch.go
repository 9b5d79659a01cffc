// Package fetch is the data-acquisition collaborator: it pulls the complete
// flat menu dataset from a paginated JSON endpoint before the core ever
// sees it. Network failures, bad status codes, and undecodable payloads all
// surface here as errors; the core's contract is that it never receives a
// partially fetched or malformed collection.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/vk/menulint/internal/ctxlog"
	"github.com/vk/menulint/internal/menu"
)

// page is the decoded shape of one API response page.
type page struct {
	Menus      []menu.Node `json:"menus"`
	Pagination *pagination `json:"pagination"`
}

// pagination is reported by the challenge endpoint but not load-bearing:
// the terminating condition is an empty menus list, not the total count.
type pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	Total       int `json:"total"`
}

// Client fetches the full menu dataset from a paginated JSON endpoint.
type Client struct {
	http *http.Client
}

// New constructs a fetch client. The timeout bounds each individual page
// request; the transport keeps idle connections around since consecutive
// pages hit the same host.
func New(timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// FetchAll requests successive pages of the dataset, starting at page 1,
// until the server returns an empty menus list, and returns the accumulated
// flat node list.
func (c *Client) FetchAll(ctx context.Context, rawURL string) ([]menu.Node, error) {
	logger := ctxlog.FromContext(ctx)

	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid source url %q: %w", rawURL, err)
	}

	var nodes []menu.Node
	for pageNum := 1; ; pageNum++ {
		p, err := c.fetchPage(ctx, base, pageNum)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNum, err)
		}
		if len(p.Menus) == 0 {
			break
		}
		nodes = append(nodes, p.Menus...)
		logger.Debug("Fetched page.", "page", pageNum, "menus", len(p.Menus))
	}

	logger.Info("Dataset fetched.", "nodes", len(nodes))
	return nodes, nil
}

// fetchPage issues one GET with the page number set as a query parameter.
func (c *Client) fetchPage(ctx context.Context, base *url.URL, pageNum int) (*page, error) {
	u := *base
	q := u.Query()
	q.Set("page", strconv.Itoa(pageNum))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var p page
	if err := json.NewDecoder(resp.Body).Decode(&p); err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}
	return &p, nil
}
