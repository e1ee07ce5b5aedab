package geo

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestPolygonArea_TooFewPoints(t *testing.T) {
	tests := []struct {
		name   string
		points []orb.Point
	}{
		{name: "empty", points: nil},
		{name: "single point", points: []orb.Point{{0, 0}}},
		{name: "two points", points: []orb.Point{{0, 0}, {1, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, PolygonArea(tt.points))
		})
	}
}

func TestPolygonArea_KnownShapes(t *testing.T) {
	triangle := []orb.Point{{0, 0}, {1, 0}, {0, 1}}
	assert.InDelta(t, 0.5, PolygonArea(triangle), 1e-12)

	square := []orb.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.InDelta(t, 4.0, PolygonArea(square), 1e-12)
}

func TestPolygonArea_OrientationIndependent(t *testing.T) {
	cw := []orb.Point{{0, 0}, {0, 2}, {2, 2}, {2, 0}}
	ccw := []orb.Point{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	assert.Equal(t, PolygonArea(ccw), PolygonArea(cw))
}

func TestGreatCircleDistance_SamePoint(t *testing.T) {
	assert.InDelta(t, 0.0, GreatCircleDistance(-8.55, 116.15, -8.55, 116.15), 1e-9)
	assert.InDelta(t, 0.0, GreatCircleDistance(0, 0, 0, 0), 1e-9)
}

func TestGreatCircleDistance_OneDegreeLongitude(t *testing.T) {
	// One degree of longitude near latitude -8 is roughly 110 km.
	d := GreatCircleDistance(-8.0, 116.0, -8.0, 117.0)
	assert.Greater(t, d, 100.0)
	assert.Less(t, d, 115.0)
}

func TestGreatCircleDistance_Symmetric(t *testing.T) {
	a := GreatCircleDistance(-8.6, 116.1, -8.3, 116.4)
	b := GreatCircleDistance(-8.3, 116.4, -8.6, 116.1)
	assert.InDelta(t, a, b, 1e-12)
}

func TestBoundingBoxContains_InclusiveEdges(t *testing.T) {
	south, west, north, east := -8.8, 115.9, -8.3, 116.4

	tests := []struct {
		name     string
		lat, lon float64
		want     bool
	}{
		{"inside", -8.55, 116.15, true},
		{"south edge", -8.8, 116.15, true},
		{"north edge", -8.3, 116.15, true},
		{"west edge", -8.55, 115.9, true},
		{"east edge", -8.55, 116.4, true},
		{"south-west corner", -8.8, 115.9, true},
		{"north-east corner", -8.3, 116.4, true},
		{"north of box", -8.2, 116.15, false},
		{"east of box", -8.55, 116.5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BoundingBoxContains(south, west, north, east, tt.lat, tt.lon)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBoundingBoxContains_InvertedBox(t *testing.T) {
	// Inverted ordering is not validated; it simply matches nothing.
	assert.False(t, BoundingBoxContains(-8.3, 116.4, -8.8, 115.9, -8.55, 116.15))
}
