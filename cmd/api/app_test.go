package main

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"iss-tracker/internal/config"
)

// fakeUpstream serves a fixed position and no TLE, standing in for the
// wheretheiss.at API.
func fakeUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/satellites/25544", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		// Nadir over Houston, so the timezone lookup is deterministic
		_, _ = w.Write([]byte(`{
			"name": "iss",
			"id": 25544,
			"latitude": 29.5593,
			"longitude": -95.0900,
			"altitude": 417.312,
			"velocity": 27571.14,
			"visibility": "daylight",
			"timestamp": 1764069476,
			"units": "kilometers"
		}`))
	})
	mux.HandleFunc("/v1/satellites/25544/tles", func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"unavailable"}`, http.StatusServiceUnavailable)
	})
	mux.HandleFunc("/reverse", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"display_name": "United States",
			"addresstype": "country",
			"address": {"country": "United States", "country_code": "us"}
		}`))
	})
	return httptest.NewServer(mux)
}

func newTestApp(t *testing.T, upstreamURL string) *App {
	t.Helper()

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "127.0.0.1", Port: 8080, GinMode: "test"},
		Log:    config.LogConfig{Level: "error", Format: "text"},
		Tracker: config.TrackerConfig{
			BaseURL:         upstreamURL,
			SatelliteID:     25544,
			PollInterval:    15 * time.Second,
			TrackCapacity:   500,
			GeocoderBaseURL: upstreamURL + "/reverse",
		},
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))

	app, err := NewApp(cfg, logger)
	if err != nil {
		t.Fatalf("NewApp() error = %v", err)
	}
	return app
}

func doRequest(app *App, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	app.router.ServeHTTP(w, req)
	return w
}

func TestHandlePing(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	app := newTestApp(t, upstream.URL)

	w := doRequest(app, http.MethodGet, "/ping")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /ping status = %d, want 200", w.Code)
	}

	var resp PingResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "pong" {
		t.Errorf("Message = %q, want pong", resp.Message)
	}
	if resp.TrackedSatellite != 25544 {
		t.Errorf("TrackedSatellite = %d, want 25544", resp.TrackedSatellite)
	}
}

func TestHandleGetPosition(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	app := newTestApp(t, upstream.URL)

	// Before the first poll there is nothing to return
	w := doRequest(app, http.MethodGet, "/api/v1/position")
	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /api/v1/position before first poll status = %d, want 404", w.Code)
	}

	app.trackerService.Poll()

	w = doRequest(app, http.MethodGet, "/api/v1/position")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/position status = %d, want 200", w.Code)
	}

	var resp PositionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Position.Latitude != 29.5593 {
		t.Errorf("Latitude = %v, want 29.5593", resp.Position.Latitude)
	}
	if resp.Position.Altitude.Meters != 417312 {
		t.Errorf("Altitude.Meters = %v, want 417312", resp.Position.Altitude.Meters)
	}
	if resp.NadirTimezone != "America/Chicago" {
		t.Errorf("NadirTimezone = %q, want America/Chicago", resp.NadirTimezone)
	}
	if resp.NadirPlace != "United States" {
		t.Errorf("NadirPlace = %q, want United States", resp.NadirPlace)
	}
	if resp.Label == "" {
		t.Error("Label should not be empty")
	}
}

func TestHandleGetTrack(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	app := newTestApp(t, upstream.URL)

	app.trackerService.Poll()
	app.trackerService.Poll()

	w := doRequest(app, http.MethodGet, "/api/v1/track")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/track status = %d, want 200", w.Code)
	}

	var resp TrackResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Count != 2 {
		t.Errorf("Count = %d, want 2", resp.Count)
	}
	if resp.Capacity != 500 {
		t.Errorf("Capacity = %d, want 500", resp.Capacity)
	}
	if len(resp.Points) != 2 {
		t.Errorf("Points length = %d, want 2", len(resp.Points))
	}
}

func TestHandleGetTrackGeoJSON(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	app := newTestApp(t, upstream.URL)

	app.trackerService.Poll()

	w := doRequest(app, http.MethodGet, "/api/v1/track.geojson")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/track.geojson status = %d, want 200", w.Code)
	}

	var resp struct {
		Type     string            `json:"type"`
		Features []json.RawMessage `json:"features"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Type != "FeatureCollection" {
		t.Errorf("type = %q, want FeatureCollection", resp.Type)
	}
	if len(resp.Features) != 2 {
		t.Errorf("features length = %d, want 2", len(resp.Features))
	}
}

func TestHandleGetScene(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	app := newTestApp(t, upstream.URL)

	app.trackerService.Poll()

	w := doRequest(app, http.MethodGet, "/api/v1/scene")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /api/v1/scene status = %d, want 200", w.Code)
	}

	var resp struct {
		Marker *struct {
			Label string `json:"label"`
		} `json:"marker"`
		Track     []json.RawMessage `json:"track"`
		Predicted []json.RawMessage `json:"predicted"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Marker == nil {
		t.Fatal("marker missing from scene")
	}
	if resp.Marker.Label == "" {
		t.Error("marker label should not be empty")
	}
	if len(resp.Track) != 1 {
		t.Errorf("track length = %d, want 1", len(resp.Track))
	}
	// The TLE endpoint is down, so the scene ships without a predicted path
	if len(resp.Predicted) != 0 {
		t.Errorf("predicted length = %d, want 0", len(resp.Predicted))
	}
}

func TestHandleGetPrediction(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	app := newTestApp(t, upstream.URL)

	// Invalid query parameter
	w := doRequest(app, http.MethodGet, "/api/v1/prediction?minutes=-5")
	if w.Code != http.StatusBadRequest {
		t.Errorf("GET /api/v1/prediction?minutes=-5 status = %d, want 400", w.Code)
	}

	// No element set available
	w = doRequest(app, http.MethodGet, "/api/v1/prediction")
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("GET /api/v1/prediction status = %d, want 503", w.Code)
	}
}

func TestHandleMetrics(t *testing.T) {
	upstream := fakeUpstream(t)
	defer upstream.Close()
	app := newTestApp(t, upstream.URL)

	app.trackerService.Poll()

	w := doRequest(app, http.MethodGet, "/metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("GET /metrics status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "iss_tracker_fetches_total") {
		t.Error("metrics output missing iss_tracker_fetches_total")
	}
	if !strings.Contains(body, "iss_tracker_track_size") {
		t.Error("metrics output missing iss_tracker_track_size")
	}
}
