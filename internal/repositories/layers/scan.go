package layers

import (
	"github.com/paulmach/orb/geojson"

	"github.com/lombokbarat/geoportal/internal/models"
)

const selectStatic = `
	SELECT id, name, layer_type, description, source, geom_data,
		style_properties, is_active, display_order, created_at, updated_at
	FROM static_layers`

const selectUser = `
	SELECT id, name, description, file_type, original_filename, file_path,
		file_size, geom_data, style_properties, is_public, is_active,
		upload_ip, created_at
	FROM user_layers`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func encodeLayer(fc *geojson.FeatureCollection, s models.Style) ([]byte, []byte, error) {
	geom, err := models.EncodeGeometry(fc)
	if err != nil {
		return nil, nil, err
	}
	style, err := models.EncodeStyle(s)
	if err != nil {
		return nil, nil, err
	}
	return geom, style, nil
}

func scanStatic(row rowScanner) (*models.StaticLayer, error) {
	var (
		l           models.StaticLayer
		geom, style []byte
		layerType   string
	)
	if err := row.Scan(&l.ID, &l.Name, &layerType, &l.Description, &l.Source,
		&geom, &style, &l.IsActive, &l.DisplayOrder, &l.CreatedAt, &l.UpdatedAt); err != nil {
		return nil, err
	}
	l.LayerType = models.LayerType(layerType)

	var err error
	if l.Geometry, err = models.DecodeGeometry(geom); err != nil {
		return nil, err
	}
	if l.Style, err = models.DecodeStyle(style); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanUser(row rowScanner) (*models.UserLayer, error) {
	var (
		l           models.UserLayer
		geom, style []byte
		fileType    string
	)
	if err := row.Scan(&l.ID, &l.Name, &l.Description, &fileType, &l.OriginalFilename,
		&l.FilePath, &l.FileSize, &geom, &style, &l.IsPublic, &l.IsActive,
		&l.UploadIP, &l.CreatedAt); err != nil {
		return nil, err
	}
	l.FileType = models.FileType(fileType)

	var err error
	if l.Geometry, err = models.DecodeGeometry(geom); err != nil {
		return nil, err
	}
	if l.Style, err = models.DecodeStyle(style); err != nil {
		return nil, err
	}
	return &l, nil
}
