package models

import (
	"encoding/json"
	"fmt"

	"github.com/paulmach/orb/geojson"
)

// EmptyFeatureCollection returns the placeholder geometry stored until real
// data is loaded. Layer geometry is never nil.
func EmptyFeatureCollection() *geojson.FeatureCollection {
	return geojson.NewFeatureCollection()
}

// EncodeGeometry serializes a feature collection for storage. Nil is encoded
// as an empty collection to uphold the never-null invariant.
func EncodeGeometry(fc *geojson.FeatureCollection) ([]byte, error) {
	if fc == nil {
		fc = EmptyFeatureCollection()
	}
	data, err := fc.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode geometry: %w", err)
	}
	return data, nil
}

// DecodeGeometry deserializes stored geometry. Empty input decodes to an
// empty collection.
func DecodeGeometry(data []byte) (*geojson.FeatureCollection, error) {
	if len(data) == 0 {
		return EmptyFeatureCollection(), nil
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("decode geometry: %w", err)
	}
	return fc, nil
}

// EncodeStyle serializes style properties for storage.
func EncodeStyle(s Style) ([]byte, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode style: %w", err)
	}
	return data, nil
}

// DecodeStyle deserializes stored style properties.
func DecodeStyle(data []byte) (Style, error) {
	var s Style
	if len(data) == 0 {
		return s, nil
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("decode style: %w", err)
	}
	return s, nil
}
