// README: Parse REST client for country and city lookups.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// cityQueryLimit caps one city query; country lists are small enough without one.
const cityQueryLimit = "2000"

// Fetcher is the lookup boundary; the cache depends on it rather than on the
// concrete client so tests can count underlying fetches.
type Fetcher interface {
	FetchCountries(ctx context.Context) ([]Country, error)
	FetchCities(ctx context.Context, countryCode string) ([]City, error)
}

// Client queries Parse classes Country and City.
type Client struct {
	baseURL string
	appID   string
	restKey string
	client  *http.Client
}

func NewClient(baseURL, appID, restKey string) *Client {
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		appID:   appID,
		restKey: restKey,
		client:  &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) FetchCountries(ctx context.Context) ([]Country, error) {
	var out struct {
		Results []Country `json:"results"`
	}
	if err := c.get(ctx, c.baseURL+"/classes/Country", &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) FetchCities(ctx context.Context, countryCode string) ([]City, error) {
	where, err := json.Marshal(map[string]string{"countryCode": countryCode})
	if err != nil {
		return nil, fmt.Errorf("geo: marshal where clause: %w", err)
	}
	q := url.Values{}
	q.Set("where", string(where))
	q.Set("limit", cityQueryLimit)

	var out struct {
		Results []City `json:"results"`
	}
	if err := c.get(ctx, c.baseURL+"/classes/City?"+q.Encode(), &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) get(ctx context.Context, rawURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return fmt.Errorf("geo: build request: %w", err)
	}
	req.Header.Set("X-Parse-Application-Id", c.appID)
	req.Header.Set("X-Parse-REST-API-Key", c.restKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("geo: do request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("geo: read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("geo: server error %d: %s", resp.StatusCode, body)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("geo: unmarshal response: %w", err)
	}
	return nil
}
