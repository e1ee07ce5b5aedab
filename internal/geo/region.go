package geo

import "github.com/paulmach/orb"

// Bounds is a rectangular region expressed as south/west/north/east limits.
type Bounds struct {
	South float64 `json:"south"`
	West  float64 `json:"west"`
	North float64 `json:"north"`
	East  float64 `json:"east"`
}

// Bound converts to an orb bound (min = south-west, max = north-east).
func (b Bounds) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.West, b.South},
		Max: orb.Point{b.East, b.North},
	}
}

// Contains reports whether (lat, lon) lies within the bounds, inclusive.
func (b Bounds) Contains(lat, lon float64) bool {
	return BoundingBoxContains(b.South, b.West, b.North, b.East, lat, lon)
}

// RegionBounds returns the bounding box of West Lombok Regency.
func RegionBounds() Bounds {
	return Bounds{South: -8.8, West: 115.9, North: -8.3, East: 116.4}
}

// DefaultCenter returns the approximate center of West Lombok as (lat, lon).
func DefaultCenter() (float64, float64) {
	return -8.55, 116.15
}

// ValidateInRegion reports whether the coordinate falls inside the West
// Lombok region bounds.
func ValidateInRegion(lat, lon float64) bool {
	return RegionBounds().Contains(lat, lon)
}
