// Package upstream is the client for The Odds API, the third-party
// provider behind the odds table proxy.
package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Event is one event in The Odds API odds response. Team names may be
// absent from the feed.
type Event struct {
	ID           string      `json:"id"`
	HomeTeam     *string     `json:"home_team"`
	AwayTeam     *string     `json:"away_team"`
	CommenceTime string      `json:"commence_time"`
	Bookmakers   []Bookmaker `json:"bookmakers"`
}

// Bookmaker is one bookmaker entry within an upstream event
type Bookmaker struct {
	Key     string   `json:"key"`
	Title   string   `json:"title"`
	Markets []Market `json:"markets"`
}

// Market is one market within a bookmaker entry
type Market struct {
	Key      string    `json:"key"`
	Outcomes []Outcome `json:"outcomes"`
}

// Outcome is one quoted outcome. Fields missing from the feed stay nil;
// the formatter decides what to do with partial outcomes.
type Outcome struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
	Point *float64 `json:"point"`
}

// OddsQuery holds the parameters forwarded to the provider
type OddsQuery struct {
	Sport      string
	Regions    []string
	Markets    []string
	OddsFormat string
	DateFormat string
}

// Response carries the provider's status and raw body so non-success
// responses can be passed through to the caller verbatim.
type Response struct {
	StatusCode int
	Body       []byte
}

// OK reports whether the provider returned success
func (r *Response) OK() bool {
	return r.StatusCode == http.StatusOK
}

// Client calls The Odds API
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a provider client with a bounded request timeout
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// FetchOdds requests the odds listing for one sport. A non-success status
// is not an error here; the caller inspects Response.StatusCode and
// propagates the body unchanged.
func (c *Client) FetchOdds(ctx context.Context, q OddsQuery) (*Response, error) {
	endpoint := fmt.Sprintf("%s/sports/%s/odds", c.baseURL, url.PathEscape(q.Sport))

	params := url.Values{}
	params.Set("apiKey", c.apiKey)
	params.Set("regions", strings.Join(q.Regions, ","))
	params.Set("markets", strings.Join(q.Markets, ","))
	params.Set("oddsFormat", q.OddsFormat)
	params.Set("dateFormat", q.DateFormat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("create odds request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch odds: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read odds response: %w", err)
	}

	return &Response{StatusCode: resp.StatusCode, Body: body}, nil
}
