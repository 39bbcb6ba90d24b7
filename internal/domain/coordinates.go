package domain

import "math"

// Mean Earth radius in kilometers.
const earthRadiusKm = 6371.0

// Immutable geographic coordinate (latitude, longitude in decimal degrees).
type Coordinate struct {
	Lat float64
	Lng float64
}

// Valid reports whether the coordinate lies within the WGS84 value range.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// DistanceKm returns the great-circle distance between two coordinates in
// kilometers using the haversine formula. Callers must pre-validate the
// coordinate ranges; the function itself has no error paths.
func DistanceKm(a, b Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lng1 := toRadians(a.Lng)
	lat2 := toRadians(b.Lat)
	lng2 := toRadians(b.Lng)

	dLat := lat2 - lat1
	dLng := lng2 - lng1

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}
