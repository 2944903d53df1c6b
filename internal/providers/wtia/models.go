package wtia

// SatellitePositionAPIResponse mirrors the wheretheiss.at satellite position
// payload. Altitude, velocity and footprint are reported in the requested
// units (kilometers by default).
type SatellitePositionAPIResponse struct {
	Name       string  `json:"name"`
	Id         int     `json:"id"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Altitude   float64 `json:"altitude"`
	Velocity   float64 `json:"velocity"`
	Visibility string  `json:"visibility"`
	Footprint  float64 `json:"footprint"`
	Timestamp  int64   `json:"timestamp"`
	Daynum     float64 `json:"daynum"`
	SolarLat   float64 `json:"solar_lat"`
	SolarLon   float64 `json:"solar_lon"`
	Units      string  `json:"units"`
}

// TLEAPIResponse mirrors the wheretheiss.at TLE payload for a satellite.
type TLEAPIResponse struct {
	RequestedTimestamp int64  `json:"requested_timestamp"`
	TleTimestamp       int64  `json:"tle_timestamp"`
	Id                 int    `json:"id"`
	Name               string `json:"name"`
	Header             string `json:"header"`
	Line1              string `json:"line1"`
	Line2              string `json:"line2"`
}
