package types

import "time"

// Position is a single geographic fix of the tracked satellite.
type Position struct {
	Latitude  float64   `json:"latitude" example:"45.1563"`   // Latitude in decimal degrees
	Longitude float64   `json:"longitude" example:"-107.658"` // Longitude in decimal degrees
	Altitude  Altitude  `json:"altitude"`
	Timestamp time.Time `json:"timestamp"` // Time the fix was taken
}

// NewPosition builds a Position from the raw degree/kilometre values the
// upstream API reports.
func NewPosition(latitude, longitude, altitudeKm float64, timestamp time.Time) Position {
	return Position{
		Latitude:  latitude,
		Longitude: longitude,
		Altitude:  NewAltitudeFromKilometers(altitudeKm),
		Timestamp: timestamp,
	}
}

// IsZero reports whether the position carries no fix at all. A failed fetch
// is recorded as the zero position, so callers can tell the two apart.
func (p Position) IsZero() bool {
	return p.Latitude == 0 && p.Longitude == 0 && p.Altitude.Meters == 0
}
