package types

type Altitude struct {
	Kilometers float64 `json:"kilometers" example:"417.312"` // Altitude above mean sea level in km
	Meters     float64 `json:"meters" example:"417312"`      // Altitude above mean sea level in m
}

// NewAltitudeFromKilometers builds an Altitude from the kilometre value the
// upstream API reports.
func NewAltitudeFromKilometers(amountInKm float64) Altitude {
	return Altitude{
		Kilometers: amountInKm,
		Meters:     amountInKm * KilometersToMeters,
	}
}
