package scene

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"iss-tracker/internal/types"
)

// TrackFeatureCollection exports the ground track as a GeoJSON
// FeatureCollection: one LineString for the track and one Point for the
// latest fix. Coordinates follow GeoJSON order, longitude first.
func TrackFeatureCollection(points []types.Position) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	line := make(orb.LineString, 0, len(points))
	for _, p := range points {
		line = append(line, orb.Point{p.Longitude, p.Latitude})
	}

	track := geojson.NewFeature(line)
	track.Properties["name"] = "ground-track"
	track.Properties["point_count"] = len(points)
	fc.Append(track)

	if len(points) > 0 {
		latest := points[len(points)-1]
		marker := geojson.NewFeature(orb.Point{latest.Longitude, latest.Latitude})
		marker.Properties["name"] = "iss"
		marker.Properties["altitude_m"] = latest.Altitude.Meters
		marker.Properties["timestamp"] = latest.Timestamp
		fc.Append(marker)
	}

	return fc
}
