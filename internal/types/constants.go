package types

const (
	// KilometersToMeters converts kilometres to metres.
	KilometersToMeters = 1000.0

	// MetersToKilometers converts metres to kilometres.
	MetersToKilometers = 1.0 / 1000.0
)
