// internal/places/client.go
package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place/findplacefromtext/json"

// Client resolves restaurants against the Google Places "find place from
// text" endpoint. A client with no API key is permanently disabled and every
// lookup reports not-found, which callers turn into the search fallback link.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	log     *zap.SugaredLogger
}

func New(apiKey string, log *zap.SugaredLogger) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
		log:     log,
	}
}

func (c *Client) Enabled() bool {
	return c != nil && c.apiKey != ""
}

// Result is one resolved place. OpenNow is nil when the response carried no
// live opening information.
type Result struct {
	PlaceID string
	OpenNow *bool
}

type findPlaceResponse struct {
	Status     string      `json:"status"`
	Candidates []candidate `json:"candidates"`
}

type candidate struct {
	PlaceID      string        `json:"place_id"`
	OpeningHours *openingHours `json:"opening_hours"`
}

type openingHours struct {
	OpenNow *bool `json:"open_now"`
}

// Find issues a single lookup for "name address city". Every failure mode
// (network, non-200, bad payload, zero candidates) reports not-found; the
// recommendation flow must not stall on enrichment.
func (c *Client) Find(ctx context.Context, name, address, city string) (Result, bool) {
	if !c.Enabled() {
		return Result{}, false
	}

	q := url.Values{}
	q.Set("input", strings.TrimSpace(name+" "+address+" "+city))
	q.Set("inputtype", "textquery")
	q.Set("fields", "place_id,opening_hours")
	q.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Result{}, false
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnf("[places] lookup failed for %q: %v", name, err)
		return Result{}, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warnf("[places] lookup for %q returned status %d", name, resp.StatusCode)
		return Result{}, false
	}

	var body findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.log.Warnf("[places] decoding response for %q: %v", name, err)
		return Result{}, false
	}
	if body.Status != "OK" || len(body.Candidates) == 0 {
		return Result{}, false
	}

	cand := body.Candidates[0]
	if cand.PlaceID == "" {
		return Result{}, false
	}
	res := Result{PlaceID: cand.PlaceID}
	if cand.OpeningHours != nil {
		res.OpenNow = cand.OpeningHours.OpenNow
	}
	return res, true
}

// PlaceLink is the canonical maps link for a resolved place ID.
func PlaceLink(placeID string) string {
	return "https://www.google.com/maps/place/?q=place_id:" + placeID
}

// SearchLink is the query-based maps link used when no place ID resolved.
func SearchLink(name, city string) string {
	return "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(name+" "+city)
}
