package scryfall

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"
)

// Client talks to the Scryfall REST API. Scryfall asks integrators to send a
// descriptive User-Agent and stay under ~10 requests per second.
type Client struct {
	httpClient *http.Client
	userAgent  string
	baseURL    string
	limiter    *rate.Limiter
	maxRetries int
}

func NewClient(userAgent string, rps int, maxRetries int) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		userAgent:  userAgent,
		baseURL:    "https://api.scryfall.com",
		limiter:    rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
		maxRetries: maxRetries,
	}
}

// Card matches the raw Scryfall card object, restricted to the fields the
// cleaner keeps.
type Card struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	ReleasedAt      string `json:"released_at"`
	SetName         string `json:"set_name"`
	CollectorNumber string `json:"collector_number"`
	Rarity          string `json:"rarity"`
	TypeLine        string `json:"type_line"`
	Prices          struct {
		USD     string `json:"usd"`
		USDFoil string `json:"usd_foil"`
	} `json:"prices"`
	ImageURIs *struct {
		Normal string `json:"normal"`
	} `json:"image_uris"`
	ScryfallURI string `json:"scryfall_uri"`
}

// bulkDataResponse matches /bulk-data
type bulkDataResponse struct {
	Data []struct {
		Type        string `json:"type"`
		DownloadURI string `json:"download_uri"`
	} `json:"data"`
}

// searchResponse matches /cards/search
type searchResponse struct {
	TotalCards int    `json:"total_cards"`
	HasMore    bool   `json:"has_more"`
	NextPage   string `json:"next_page"`
	Data       []Card `json:"data"`
}

// OracleBulkURI returns the download URI of the oracle_cards bulk file.
func (c *Client) OracleBulkURI(ctx context.Context) (string, error) {
	var res bulkDataResponse
	if err := c.get(ctx, c.baseURL+"/bulk-data", &res); err != nil {
		return "", err
	}
	for _, item := range res.Data {
		if item.Type == "oracle_cards" {
			return item.DownloadURI, nil
		}
	}
	return "", fmt.Errorf("oracle_cards bulk file not listed")
}

// DownloadBulk fetches the full bulk card array from a bulk-data URI.
func (c *Client) DownloadBulk(ctx context.Context, downloadURI string) ([]Card, error) {
	var cards []Card
	if err := c.get(ctx, downloadURI, &cards); err != nil {
		return nil, err
	}
	return cards, nil
}

// SearchCards runs a Scryfall search query (e.g. "type:artifact
// rarity:mythic") and follows pagination to the end.
func (c *Client) SearchCards(ctx context.Context, query string) ([]Card, error) {
	u := fmt.Sprintf("%s/cards/search?q=%s", c.baseURL, url.QueryEscape(query))

	var cards []Card
	for u != "" {
		var res searchResponse
		if err := c.get(ctx, u, &res); err != nil {
			return nil, err
		}
		cards = append(cards, res.Data...)

		u = ""
		if res.HasMore {
			u = res.NextPage
		}
	}
	return cards, nil
}

func (c *Client) get(ctx context.Context, url string, target interface{}) error {
	var lastErr error
	for i := 0; i <= c.maxRetries; i++ {
		if i > 0 {
			// Backoff: 1s, 2s, 4s...
			backoff := time.Duration(1<<uint(i-1)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}

		req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
		if err != nil {
			return err
		}
		req.Header.Set("User-Agent", c.userAgent)
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			if resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500 {
				lastErr = fmt.Errorf("unexpected status code: %d", resp.StatusCode)
				continue
			}
			return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}

		err = json.NewDecoder(resp.Body).Decode(target)
		resp.Body.Close()
		return err
	}
	return fmt.Errorf("after %d retries: %w", c.maxRetries, lastErr)
}
