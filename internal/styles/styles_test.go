package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lombokbarat/geoportal/internal/models"
)

func TestForFileType_DistinctColors(t *testing.T) {
	kml := ForFileType(models.FileKML)
	kmz := ForFileType(models.FileKMZ)
	shp := ForFileType(models.FileSHP)

	assert.NotEqual(t, kml.StrokeColor, kmz.StrokeColor)
	assert.NotEqual(t, kml.StrokeColor, shp.StrokeColor)
	assert.NotEqual(t, kmz.StrokeColor, shp.StrokeColor)
}

func TestForFileType_UnknownFallsBackToKML(t *testing.T) {
	assert.Equal(t, ForFileType(models.FileKML), ForFileType(models.FileType("geojson")))
	assert.Equal(t, ForFileType(models.FileKML), ForFileType(models.FileType("")))
}
