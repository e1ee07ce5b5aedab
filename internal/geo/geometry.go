// Package geo provides the pure geometry primitives used by the geoportal:
// shoelace polygon area, haversine great-circle distance and bounding-box
// containment, plus the fixed West Lombok region constants.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

// EarthRadiusKm is the mean Earth radius used by the haversine formula.
const EarthRadiusKm = 6371.0

// PolygonArea computes the area of a polygon with the shoelace formula over
// the cyclic point sequence. Fewer than three points yield 0.
//
// Coordinates are treated as planar (x, y) pairs. This is not geodesically
// correct for large polygons; it is a known approximation valid only for
// small regions where curvature is negligible.
func PolygonArea(points []orb.Point) float64 {
	if len(points) < 3 {
		return 0
	}

	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X() * points[j].Y()
		area -= points[j].X() * points[i].Y()
	}
	return math.Abs(area) / 2
}

// GreatCircleDistance returns the haversine distance in kilometers between
// two (lat, lon) coordinates given in degrees. Identical points yield 0.
func GreatCircleDistance(lat1, lon1, lat2, lon2 float64) float64 {
	rlat1 := lat1 * math.Pi / 180
	rlon1 := lon1 * math.Pi / 180
	rlat2 := lat2 * math.Pi / 180
	rlon2 := lon2 * math.Pi / 180

	dlat := rlat2 - rlat1
	dlon := rlon2 - rlon1

	a := math.Pow(math.Sin(dlat/2), 2) +
		math.Cos(rlat1)*math.Cos(rlat2)*math.Pow(math.Sin(dlon/2), 2)
	c := 2 * math.Asin(math.Sqrt(a))

	return c * EarthRadiusKm
}

// BoundingBoxContains reports whether (lat, lon) lies within the box,
// inclusive on all four bounds. Ordering (south < north, west < east) is a
// caller contract: an inverted box silently contains nothing.
func BoundingBoxContains(south, west, north, east, lat, lon float64) bool {
	return south <= lat && lat <= north && west <= lon && lon <= east
}
