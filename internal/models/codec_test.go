package models

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeGeometry_NilBecomesEmptyCollection(t *testing.T) {
	data, err := EncodeGeometry(nil)
	require.NoError(t, err)

	fc, err := DecodeGeometry(data)
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestDecodeGeometry_EmptyInput(t *testing.T) {
	fc, err := DecodeGeometry(nil)
	require.NoError(t, err)
	require.NotNil(t, fc)
	assert.Empty(t, fc.Features)
}

func TestGeometryRoundTrip_KeepsExtraMembers(t *testing.T) {
	fc := geojson.NewFeatureCollection()
	fc.Append(geojson.NewFeature(orb.Point{116.15, -8.55}))
	fc.ExtraMembers = map[string]interface{}{
		"metadata": map[string]interface{}{"source_file": "a.kml"},
	}

	data, err := EncodeGeometry(fc)
	require.NoError(t, err)

	got, err := DecodeGeometry(data)
	require.NoError(t, err)
	require.Len(t, got.Features, 1)

	meta, ok := got.ExtraMembers["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "a.kml", meta["source_file"])
}

func TestStyleRoundTrip_LeafletKeys(t *testing.T) {
	s := Style{StrokeColor: "#ff7800", StrokeWeight: 3, StrokeOpacity: 0.8, FillColor: "#ff7800", FillOpacity: 0.2}

	data, err := EncodeStyle(s)
	require.NoError(t, err)
	assert.JSONEq(t, `{"color":"#ff7800","weight":3,"opacity":0.8,"fillColor":"#ff7800","fillOpacity":0.2}`, string(data))

	got, err := DecodeStyle(data)
	require.NoError(t, err)
	assert.Equal(t, s, got)
}
