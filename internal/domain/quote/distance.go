package quote

import "math"

const earthRadiusKm = 6371.0

// Coordinates is a latitude/longitude pair in degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Distance returns the great-circle distance between two points in
// kilometers, computed with the haversine formula.
func Distance(origin, destination Coordinates) float64 {
	lat1 := origin.Latitude * math.Pi / 180
	lat2 := destination.Latitude * math.Pi / 180
	lon1 := origin.Longitude * math.Pi / 180
	lon2 := destination.Longitude * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}
