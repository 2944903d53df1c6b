// Package scene builds the render payload the globe page draws: the marker at
// the latest fix and the trailing ground track with its gradient colors.
package scene

import (
	"fmt"
	"time"

	"iss-tracker/internal/types"
)

// Color is an RGBA color with components in [0, 1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// TrailColors are distributed evenly along the ground track, oldest segment
// first, to give the trail a gradient.
var TrailColors = []Color{
	{R: 1, G: 0, B: 0, A: 0.5}, // red
	{R: 1, G: 1, B: 0, A: 0.5}, // yellow
	{R: 0, G: 1, B: 0, A: 0.5}, // green
}

// Marker is the satellite pushpin at the latest fix.
type Marker struct {
	Position types.Position `json:"position"`
	Label    string         `json:"label"`
}

// TrackPoint is one ground-track vertex with its assigned trail color.
type TrackPoint struct {
	Position types.Position `json:"position"`
	Color    Color          `json:"color"`
}

// Scene is the full payload the globe page polls for.
type Scene struct {
	Marker      *Marker          `json:"marker,omitempty"`
	Track       []TrackPoint     `json:"track"`
	Predicted   []types.Position `json:"predicted,omitempty"`
	GeneratedAt time.Time        `json:"generated_at"`
}

// ColorIndex buckets a track ordinal into one of numColors color slots,
// proportionally to its position along a path of pathLength points. Ordinal 0
// always maps to the first color and the last ordinal to the last color
// whenever pathLength >= numColors.
func ColorIndex(numColors, ordinal, pathLength int) int {
	if pathLength <= 0 || ordinal < 0 {
		return 0
	}
	index := numColors * ordinal / pathLength
	if index >= numColors {
		index = numColors - 1
	}
	return index
}

// MarkerLabel formats the pushpin label for a fix, with the update time in
// brackets and the altitude shown in kilometres.
func MarkerLabel(p types.Position, updatedAt time.Time) string {
	timestamp := fmt.Sprintf("[%s]", updatedAt.Format("01-02-2006 15:04:05"))

	return fmt.Sprintf("ISS - %s LAT: %.4f° LON: %.4f° ALT: %.3f km",
		timestamp,
		p.Latitude,
		p.Longitude,
		p.Altitude.Meters*types.MetersToKilometers)
}

// Build assembles the scene from the current ground track and an optional
// predicted forward track.
func Build(track []types.Position, predicted []types.Position, now time.Time) Scene {
	s := Scene{
		Track:       make([]TrackPoint, 0, len(track)),
		Predicted:   predicted,
		GeneratedAt: now,
	}

	for ordinal, p := range track {
		s.Track = append(s.Track, TrackPoint{
			Position: p,
			Color:    TrailColors[ColorIndex(len(TrailColors), ordinal, len(track))],
		})
	}

	if len(track) > 0 {
		latest := track[len(track)-1]
		s.Marker = &Marker{
			Position: latest,
			Label:    MarkerLabel(latest, now),
		}
	}

	return s
}
