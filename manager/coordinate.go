package manager

// DefaultCoordinate is the Bangkok city centre.
var DefaultCoordinate = Coordinate{Latitude: 13.7563, Longitude: 100.5018}

// Resolve fills each missing field from defaults independently.
// An explicit zero is a valid coordinate and is kept. No bounds checks are made.
func Resolve(lat, long *float64, defaults Coordinate) Coordinate {
	coordinate := defaults
	if lat != nil {
		coordinate.Latitude = *lat
	}
	if long != nil {
		coordinate.Longitude = *long
	}

	return coordinate
}
