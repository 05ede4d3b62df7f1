package geo

import "math"

const (
	earthRadiusKm = 6371

	// RoadFactor converts straight-line distance into an approximate road
	// distance: Turkish intercity roads run about 1.3× the great circle.
	RoadFactor = 1.3
)

// Distance returns the haversine distance between two cities in km.
// If either city is unknown it returns +Inf: the sentinel makes every
// downstream feasibility and detour check fail, so the affected candidate
// is excluded instead of crashing.
func Distance(a, b string) float64 {
	ca, okA := Coordinates(a)
	cb, okB := Coordinates(b)
	if !okA || !okB {
		return math.Inf(1)
	}

	dLat := (cb.Lat - ca.Lat) * math.Pi / 180
	dLon := (cb.Lon - ca.Lon) * math.Pi / 180
	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(ca.Lat*math.Pi/180)*math.Cos(cb.Lat*math.Pi/180)*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// RoadDistance is Distance scaled by RoadFactor. +Inf propagates.
func RoadDistance(a, b string) float64 {
	return Distance(a, b) * RoadFactor
}
