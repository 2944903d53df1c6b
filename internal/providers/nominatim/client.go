package nominatim

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://nominatim.org/release-docs/develop/api/Reverse/
// Sample request: https://nominatim.openstreetmap.org/reverse?lat=29.55&lon=-95.09&zoom=3&format=json
const (
	baseURL = "https://nominatim.openstreetmap.org/reverse"

	// countryZoom resolves the point to country granularity, which is all a
	// nadir point a few hundred kilometres below an orbit can support.
	countryZoom = "3"
)

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewClient(logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{},
		baseURL:    baseURL,
		logger:     logger.With("component", "nominatim-client"),
	}
}

// NewClientWithBaseURL overrides the API base URL. Used against local test
// servers and self-hosted Nominatim instances.
func NewClientWithBaseURL(logger *slog.Logger, baseURL string) *Client {
	c := NewClient(logger)
	c.baseURL = baseURL
	return c
}

// ReverseLookup resolves the country under the given nadir point. Over open
// ocean Nominatim reports "Unable to geocode"; that comes back as an empty
// response, not an error.
func (c *Client) ReverseLookup(latitude, longitude float64) (*ReverseAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	q := u.Query()
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("zoom", countryZoom)
	q.Set("format", "json")
	u.RawQuery = q.Encode()

	c.logger.Debug("reverse geocoding nadir point",
		"latitude", latitude,
		"longitude", longitude,
		"url", u.String(),
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to reverse geocode nadir point",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Nominatim API returned error",
			"status_code", resp.StatusCode,
			"latitude", latitude,
			"longitude", longitude,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp ReverseAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode Nominatim response",
			"latitude", latitude,
			"longitude", longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully reverse geocoded nadir point",
		"latitude", latitude,
		"longitude", longitude,
		"display_name", apiResp.DisplayName,
	)

	return &apiResp, nil
}

// OverLand reports whether the response resolved to a place at all.
func (r *ReverseAPIResponse) OverLand() bool {
	return r.Error == "" && r.DisplayName != ""
}
