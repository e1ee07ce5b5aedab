// Package styles resolves default map styling for uploaded layers.
package styles

import "github.com/lombokbarat/geoportal/internal/models"

// defaults is the fixed style table keyed by upload format. Each format gets
// a distinct color so stacked uploads stay distinguishable on the map.
var defaults = map[models.FileType]models.Style{
	models.FileKML: {StrokeColor: "#3388ff", StrokeWeight: 3, StrokeOpacity: 0.8, FillColor: "#3388ff", FillOpacity: 0.2},
	models.FileKMZ: {StrokeColor: "#ff7800", StrokeWeight: 3, StrokeOpacity: 0.8, FillColor: "#ff7800", FillOpacity: 0.2},
	models.FileSHP: {StrokeColor: "#ff3333", StrokeWeight: 3, StrokeOpacity: 0.8, FillColor: "#ff3333", FillOpacity: 0.2},
}

// ForFileType returns the default style for an upload format. An unrecognized
// format falls back to the KML entry; this is a default-case policy, not an
// error path.
func ForFileType(ft models.FileType) models.Style {
	if s, ok := defaults[ft]; ok {
		return s
	}
	return defaults[models.FileKML]
}
