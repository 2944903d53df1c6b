package timezone

import (
	"testing"
)

func TestService_GetTimezone(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	tests := []struct {
		name      string
		latitude  float64
		longitude float64
		want      string
	}{
		{
			name:      "nadir over Houston mission control",
			latitude:  29.5593,
			longitude: -95.0900,
			want:      "America/Chicago",
		},
		{
			name:      "nadir over Moscow",
			latitude:  55.7558,
			longitude: 37.6173,
			want:      "Europe/Moscow",
		},
		{
			name:      "nadir over Tokyo",
			latitude:  35.6762,
			longitude: 139.6503,
			want:      "Asia/Tokyo",
		},
		{
			name:      "nadir over Cape Canaveral",
			latitude:  28.3922,
			longitude: -80.6077,
			want:      "America/New_York",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.GetTimezone(tt.latitude, tt.longitude)
			if err != nil {
				t.Errorf("GetTimezone() error = %v", err)
				return
			}
			if got != tt.want {
				t.Errorf("GetTimezone() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestService_GetTimezoneOverOcean(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	// Middle of the South Pacific, far from any land timezone polygon
	got, err := svc.GetTimezone(-48.8767, -123.3933)
	if err != nil {
		t.Fatalf("GetTimezone() error = %v", err)
	}
	if got != "" {
		t.Errorf("GetTimezone() over open ocean = %q, want empty", got)
	}
}

func TestService_GetTimezoneOutOfRange(t *testing.T) {
	svc, err := NewService()
	if err != nil {
		t.Fatalf("Failed to create service: %v", err)
	}

	if _, err := svc.GetTimezone(91, 0); err == nil {
		t.Error("GetTimezone(91, 0) expected error for latitude out of range")
	}
	if _, err := svc.GetTimezone(0, 181); err == nil {
		t.Error("GetTimezone(0, 181) expected error for longitude out of range")
	}
}
