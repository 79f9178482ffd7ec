package geo

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle
// distances.
const EarthRadiusKm = 6371.0

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180.0
}

// Haversine returns the great-circle distance between two points in
// kilometers. At city scale a flat-plane approximation drifts by more
// than ranking can tolerate, so the full formula it is.
func Haversine(p1, p2 Point) float64 {
	phi1 := degreesToRadians(p1.Lat)
	phi2 := degreesToRadians(p2.Lat)
	deltaPhi := degreesToRadians(p2.Lat - p1.Lat)
	deltaLambda := degreesToRadians(p2.Lon - p1.Lon)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusKm * c
}
