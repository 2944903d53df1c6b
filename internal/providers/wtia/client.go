package wtia

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
)

// API Docs: https://wheretheiss.at/w/developer
// Sample request: https://api.wheretheiss.at/v1/satellites/25544
const (
	baseURL = "https://api.wheretheiss.at"
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
		logger:     logger.With("component", "wtia-client"),
	}
}

// NewClientWithBaseURL overrides the API base URL. Used against local test
// servers and alternative deployments.
func NewClientWithBaseURL(logger *slog.Logger, baseURL string) *Client {
	c := NewClient(logger)
	c.baseURL = baseURL
	return c
}

// GetSatellitePosition fetches the current position of the satellite with the
// given NORAD catalog number. Units are kilometers.
func (c *Client) GetSatellitePosition(satelliteId int) (*SatellitePositionAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/v1/satellites/%d", satelliteId)
	q := u.Query()
	q.Set("units", "kilometers")
	u.RawQuery = q.Encode()

	c.logger.Debug("fetching satellite position",
		"satellite_id", satelliteId,
		"url", u.String(),
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch satellite position",
			"satellite_id", satelliteId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("position API returned error",
			"status_code", resp.StatusCode,
			"satellite_id", satelliteId,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp SatellitePositionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode position response",
			"satellite_id", satelliteId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched satellite position",
		"satellite_id", satelliteId,
		"latitude", apiResp.Latitude,
		"longitude", apiResp.Longitude,
		"altitude_km", apiResp.Altitude,
	)

	return &apiResp, nil
}

// GetTLE fetches the most recent two-line element set for the satellite with
// the given NORAD catalog number.
func (c *Client) GetTLE(satelliteId int) (*TLEAPIResponse, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}

	u.Path = fmt.Sprintf("/v1/satellites/%d/tles", satelliteId)

	c.logger.Debug("fetching satellite TLE",
		"satellite_id", satelliteId,
		"url", u.String(),
	)

	resp, err := c.httpClient.Get(u.String())
	if err != nil {
		c.logger.Error("failed to fetch satellite TLE",
			"satellite_id", satelliteId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("TLE API returned error",
			"status_code", resp.StatusCode,
			"satellite_id", satelliteId,
			"response_body", string(body),
		)
		return nil, fmt.Errorf("fetch returned status %d: %s", resp.StatusCode, string(body))
	}

	var apiResp TLEAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		c.logger.Error("failed to decode TLE response",
			"satellite_id", satelliteId,
			"error", err,
		)
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	c.logger.Debug("successfully fetched satellite TLE",
		"satellite_id", satelliteId,
		"tle_timestamp", apiResp.TleTimestamp,
	)

	return &apiResp, nil
}
