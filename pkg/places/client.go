// Package places is a client for the Google Places API (legacy Nearby Search
// and Place Details endpoints).
package places

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/bizgen/internal/resilience"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Client performs Places API operations.
type Client interface {
	NearbySearch(ctx context.Context, req NearbySearchRequest) (*NearbySearchResponse, error)
	Details(ctx context.Context, placeID string) (*PlaceDetails, error)
}

// NearbySearchRequest specifies one Nearby Search page. When PageToken is
// set, the other fields are ignored (the token encodes the original query).
type NearbySearchRequest struct {
	Location  string // "lat,lng"
	Radius    int    // meters
	PlaceType string
	PageToken string
}

// NearbySearchResponse is one page of Nearby Search results.
type NearbySearchResponse struct {
	Results       []Place `json:"results"`
	Status        string  `json:"status"`
	NextPageToken string  `json:"next_page_token"`
}

// Place is one search result.
type Place struct {
	PlaceID  string   `json:"place_id"`
	Name     string   `json:"name"`
	Vicinity string   `json:"vicinity"`
	Rating   float64  `json:"rating"`
	Types    []string `json:"types"`
}

// PlaceDetails holds the detail fields requested for a place.
type PlaceDetails struct {
	Name                 string   `json:"name"`
	FormattedPhoneNumber string   `json:"formatted_phone_number"`
	FormattedAddress     string   `json:"formatted_address"`
	Website              string   `json:"website"`
	Rating               float64  `json:"rating"`
	Types                []string `json:"types"`
}

type detailsResponse struct {
	Result *PlaceDetails `json:"result"`
	Status string        `json:"status"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default API base URL.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

// NewClient creates a Places API client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) NearbySearch(ctx context.Context, req NearbySearchRequest) (*NearbySearchResponse, error) {
	params := url.Values{}
	if req.PageToken != "" {
		params.Set("pagetoken", req.PageToken)
	} else {
		params.Set("location", req.Location)
		params.Set("radius", strconv.Itoa(req.Radius))
		params.Set("type", req.PlaceType)
	}

	var result NearbySearchResponse
	if err := c.get(ctx, "/nearbysearch/json", params, &result); err != nil {
		return nil, err
	}
	if err := checkStatus(result.Status); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *httpClient) Details(ctx context.Context, placeID string) (*PlaceDetails, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_phone_number,formatted_address,website,rating,types")

	var result detailsResponse
	if err := c.get(ctx, "/details/json", params, &result); err != nil {
		return nil, err
	}
	if err := checkStatus(result.Status); err != nil {
		return nil, err
	}
	if result.Result == nil {
		return &PlaceDetails{}, nil
	}
	return result.Result, nil
}

func (c *httpClient) get(ctx context.Context, path string, params url.Values, out any) error {
	params.Set("key", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return eris.Wrap(err, "places: create request")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return eris.Wrap(err, "places: send request")
	}
	defer resp.Body.Close() //nolint:errcheck

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return eris.Wrap(err, "places: read response")
	}

	if resp.StatusCode != http.StatusOK {
		err := eris.Errorf("places: unexpected status %d: %s", resp.StatusCode, string(body))
		if resilience.IsTransientHTTPStatus(resp.StatusCode) {
			return resilience.NewTransientError(err, resp.StatusCode)
		}
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return eris.Wrap(err, "places: unmarshal response")
	}
	return nil
}

// checkStatus maps the API's status field to errors. ZERO_RESULTS is not an
// error; OVER_QUERY_LIMIT is transient so callers may retry after a delay.
func checkStatus(status string) error {
	switch status {
	case "OK", "ZERO_RESULTS":
		return nil
	case "OVER_QUERY_LIMIT":
		return resilience.NewTransientError(eris.Errorf("places: api status %s", status), http.StatusTooManyRequests)
	default:
		return eris.Errorf("places: api status %s", status)
	}
}
