package services

import "github.com/lombokbarat/geoportal/internal/models"

// SeedLayer describes one default static layer. The catalog is plain data
// passed to SeedDefaults, so tests can seed alternate catalogs.
type SeedLayer struct {
	Name         string
	LayerType    models.LayerType
	Description  string
	DisplayOrder int
	Style        models.Style
}

// DefaultCatalog returns the five default West Lombok infrastructure layers.
// Geometry starts as an empty feature collection; the real BIG datasets are
// loaded by a separate process.
func DefaultCatalog() []SeedLayer {
	return []SeedLayer{
		{
			Name:         "Sawah (Rice Fields)",
			LayerType:    models.LayerRiceFields,
			Description:  "Peta sebaran lahan sawah di Kabupaten Lombok Barat",
			DisplayOrder: 1,
			Style: models.Style{
				StrokeColor: "#4CAF50", StrokeWeight: 2, StrokeOpacity: 0.8,
				FillColor: "#81C784", FillOpacity: 0.6,
			},
		},
		{
			Name:         "Irigasi (Irrigation)",
			LayerType:    models.LayerIrrigation,
			Description:  "Jaringan sistem irigasi di Kabupaten Lombok Barat",
			DisplayOrder: 2,
			Style: models.Style{
				StrokeColor: "#2196F3", StrokeWeight: 3, StrokeOpacity: 0.9,
				FillColor: "#64B5F6", FillOpacity: 0.4,
			},
		},
		{
			Name:         "Jalan Kabupaten (Regency Roads)",
			LayerType:    models.LayerRegencyRoads,
			Description:  "Jaringan jalan kabupaten di Lombok Barat",
			DisplayOrder: 3,
			Style: models.Style{
				StrokeColor: "#FF9800", StrokeWeight: 4, StrokeOpacity: 1.0,
			},
		},
		{
			Name:         "Batas Kabupaten (Regency Boundaries)",
			LayerType:    models.LayerRegencyBoundaries,
			Description:  "Batas administrasi Kabupaten Lombok Barat",
			DisplayOrder: 4,
			Style: models.Style{
				StrokeColor: "#9C27B0", StrokeWeight: 3, StrokeOpacity: 1.0,
				FillColor: "#CE93D8", FillOpacity: 0.1,
			},
		},
		{
			Name:         "Batas Desa (Village Boundaries)",
			LayerType:    models.LayerVillageBoundaries,
			Description:  "Batas administrasi desa di Kabupaten Lombok Barat",
			DisplayOrder: 5,
			Style: models.Style{
				StrokeColor: "#607D8B", StrokeWeight: 2, StrokeOpacity: 0.8,
				FillColor: "#90A4AE", FillOpacity: 0.2,
			},
		},
	}
}
