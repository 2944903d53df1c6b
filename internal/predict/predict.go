// Package predict propagates a two-line element set forward with SGP4 to
// produce the expected ground track ahead of the latest fix.
package predict

import (
	"fmt"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"

	"iss-tracker/internal/types"
)

// tleLineLength is the fixed line length of a two-line element set.
const tleLineLength = 69

// GroundTrack propagates the orbit described by the TLE from start onwards,
// sampling every step for the given duration. go-satellite works in
// kilometres; positions are converted through the usual km→m types.
func GroundTrack(line1, line2 string, start time.Time, duration, step time.Duration) ([]types.Position, error) {
	if len(line1) < tleLineLength || len(line2) < tleLineLength {
		return nil, fmt.Errorf("malformed TLE: lines must be at least %d characters", tleLineLength)
	}
	if step <= 0 {
		return nil, fmt.Errorf("invalid step: %s", step)
	}
	if duration < 0 {
		return nil, fmt.Errorf("invalid duration: %s", duration)
	}

	sat := satellite.TLEToSat(line1, line2, satellite.GravityWGS72)

	n := int(duration/step) + 1
	points := make([]types.Position, 0, n)

	for i := 0; i < n; i++ {
		t := start.Add(time.Duration(i) * step).UTC()
		points = append(points, positionAt(sat, t))
	}

	return points, nil
}

// positionAt propagates the satellite to t and converts the ECI state vector
// to geodetic coordinates.
func positionAt(sat satellite.Satellite, t time.Time) types.Position {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, _ := satellite.Propagate(sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)

	altitudeKm, _, llRad := satellite.ECIToLLA(posECI, gmst)
	llDeg := satellite.LatLongDeg(llRad)

	return types.NewPosition(llDeg.Latitude, llDeg.Longitude, altitudeKm, t)
}
