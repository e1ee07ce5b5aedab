// Package models defines the persisted entities of the geoportal core:
// infrastructure layers, citizen complaints and their photo attachments.
package models

import (
	"time"

	"github.com/paulmach/orb/geojson"
)

// LayerType classifies an infrastructure layer.
type LayerType string

const (
	LayerRiceFields        LayerType = "rice_fields"
	LayerIrrigation        LayerType = "irrigation"
	LayerRegencyRoads      LayerType = "regency_roads"
	LayerRegencyBoundaries LayerType = "regency_boundaries"
	LayerVillageBoundaries LayerType = "village_boundaries"
	LayerUserUploaded      LayerType = "user_uploaded"
)

// FileType is a supported geospatial upload format.
type FileType string

const (
	FileKML FileType = "kml"
	FileKMZ FileType = "kmz"
	FileSHP FileType = "shp"
)

// Style holds map styling properties for a layer. The JSON keys follow the
// Leaflet path-style convention used by the map frontend.
type Style struct {
	StrokeColor   string  `json:"color"`
	StrokeWeight  int     `json:"weight"`
	StrokeOpacity float64 `json:"opacity"`
	FillColor     string  `json:"fillColor,omitempty"`
	FillOpacity   float64 `json:"fillOpacity,omitempty"`
}

// StaticLayer is a curated infrastructure layer. Geometry is never nil: an
// empty feature collection is stored until real data is loaded.
type StaticLayer struct {
	ID           int64
	Name         string
	LayerType    LayerType
	Description  string
	Source       string
	Geometry     *geojson.FeatureCollection
	Style        Style
	IsActive     bool
	DisplayOrder int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// StaticLayerUpdate is a partial update for the administrative path. Nil
// fields are left unchanged.
type StaticLayerUpdate struct {
	Name         *string
	Description  *string
	Geometry     *geojson.FeatureCollection
	Style        *Style
	IsActive     *bool
	DisplayOrder *int
}

// UserLayer is a geometry layer uploaded by an end user. Immutable after
// creation except for the active/public flags.
type UserLayer struct {
	ID               int64
	Name             string
	Description      string
	FileType         FileType
	OriginalFilename string
	FilePath         string
	FileSize         int64
	Geometry         *geojson.FeatureCollection
	Style            Style
	IsPublic         bool
	IsActive         bool
	UploadIP         string
	CreatedAt        time.Time
}

// LayerView is the unified read model returned by layer listings, covering
// both static and user layers.
type LayerView struct {
	ID          int64
	Name        string
	Description string
	LayerType   LayerType
	IsActive    bool
	Geometry    *geojson.FeatureCollection
	Style       Style
	CreatedAt   time.Time
}

// View projects a static layer into the listing read model.
func (l *StaticLayer) View() LayerView {
	return LayerView{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		LayerType:   l.LayerType,
		IsActive:    l.IsActive,
		Geometry:    l.Geometry,
		Style:       l.Style,
		CreatedAt:   l.CreatedAt,
	}
}

// View projects a user layer into the listing read model.
func (l *UserLayer) View() LayerView {
	return LayerView{
		ID:          l.ID,
		Name:        l.Name,
		Description: l.Description,
		LayerType:   LayerUserUploaded,
		IsActive:    l.IsActive,
		Geometry:    l.Geometry,
		Style:       l.Style,
		CreatedAt:   l.CreatedAt,
	}
}
