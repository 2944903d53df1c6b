// Package timezone resolves the IANA timezone under a geographic point. The
// tracker uses it to report which timezone the satellite's nadir point is
// currently over.
package timezone

import (
	"fmt"

	"github.com/ringsaturn/tzf"
)

type Service struct {
	finder tzf.F
}

// NewService builds a Service backed by the embedded timezone shape data.
func NewService() (*Service, error) {
	finder, err := tzf.NewDefaultFinder()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone finder: %w", err)
	}
	return &Service{finder: finder}, nil
}

// GetTimezone returns the IANA timezone name containing the given point, or
// an empty string when the point is over open ocean.
func (s *Service) GetTimezone(latitude, longitude float64) (string, error) {
	if latitude < -90 || latitude > 90 {
		return "", fmt.Errorf("latitude out of range: %f", latitude)
	}
	if longitude < -180 || longitude > 180 {
		return "", fmt.Errorf("longitude out of range: %f", longitude)
	}

	return s.finder.GetTimezoneName(longitude, latitude), nil
}
