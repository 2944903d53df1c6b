package nominatim

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestReverseLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("zoom"); got != "3" {
			t.Errorf("zoom = %q, want 3", got)
		}
		if got := r.URL.Query().Get("format"); got != "json" {
			t.Errorf("format = %q, want json", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"place_id": 47061,
			"display_name": "United States",
			"addresstype": "country",
			"name": "United States",
			"address": {
				"country": "United States",
				"country_code": "us"
			}
		}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(testLogger(), srv.URL)

	resp, err := client.ReverseLookup(29.5593, -95.09)
	if err != nil {
		t.Fatalf("ReverseLookup() error = %v", err)
	}

	if resp.Address.Country != "United States" {
		t.Errorf("Country = %q, want United States", resp.Address.Country)
	}
	if !resp.OverLand() {
		t.Error("OverLand() = false, want true")
	}
}

func TestReverseLookupOverOcean(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error": "Unable to geocode"}`))
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(testLogger(), srv.URL)

	resp, err := client.ReverseLookup(-48.8767, -123.3933)
	if err != nil {
		t.Fatalf("ReverseLookup() error = %v", err)
	}
	if resp.OverLand() {
		t.Error("OverLand() = true over open ocean, want false")
	}
}

func TestReverseLookupServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client := NewClientWithBaseURL(testLogger(), srv.URL)

	if _, err := client.ReverseLookup(1, 2); err == nil {
		t.Error("ReverseLookup() expected error, got nil")
	}
}
