package types

import "math"

// Heading is the direction of travel along the ground track.
type Heading struct {
	Degrees  float64 `json:"degrees" example:"51.2"` // Clockwise from true north
	Cardinal string  `json:"cardinal" example:"NE"`  // 16-wind compass point
}

func NewHeading(degrees float64) Heading {
	if degrees < 0 || degrees >= 360 {
		return Heading{
			Degrees:  -1,
			Cardinal: "Unknown",
		}
	}

	direction := (degrees / 22.5) + .5 // .5 for rounding
	var cardinalMap = make(map[int]string)
	cardinalMap[0] = "N"
	cardinalMap[1] = "NNE"
	cardinalMap[2] = "NE"
	cardinalMap[3] = "ENE"
	cardinalMap[4] = "E"
	cardinalMap[5] = "ESE"
	cardinalMap[6] = "SE"
	cardinalMap[7] = "SSE"
	cardinalMap[8] = "S"
	cardinalMap[9] = "SSW"
	cardinalMap[10] = "SW"
	cardinalMap[11] = "WSW"
	cardinalMap[12] = "W"
	cardinalMap[13] = "WNW"
	cardinalMap[14] = "NW"
	cardinalMap[15] = "NNW"

	index := int(direction) % 16

	return Heading{
		Degrees:  degrees,
		Cardinal: cardinalMap[index],
	}
}

// NewHeadingBetween computes the initial great-circle bearing from one fix to
// the next and wraps it in a Heading.
func NewHeadingBetween(from, to Position) Heading {
	lat1 := from.Latitude * math.Pi / 180
	lat2 := to.Latitude * math.Pi / 180
	dLon := (to.Longitude - from.Longitude) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	bearing := math.Atan2(y, x) * 180 / math.Pi
	bearing = math.Mod(bearing+360, 360)

	return NewHeading(bearing)
}
