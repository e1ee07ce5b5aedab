// Package ingest normalizes uploaded geospatial files (KML, KMZ, Shapefile)
// into GeoJSON feature collections.
//
// Placemark/geometry extraction from KML and Shapefile binary decoding are
// stubbed: each path yields an empty, format-tagged collection. The dispatch,
// the KMZ unpacking and the normalized output shape are the stable contract;
// a real extractor plugs into extractKML / extractSHP without touching
// callers.
package ingest

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/lombokbarat/geoportal/internal/common"
	"github.com/lombokbarat/geoportal/internal/geo"
	"github.com/lombokbarat/geoportal/internal/models"
)

// Ingest converts raw file bytes into a normalized feature collection. The
// declared type selects the handler; an unrecognized type fails with
// common.ErrUnsupportedFormat before any decoding happens.
func Ingest(data []byte, filename string, ft models.FileType) (*geojson.FeatureCollection, error) {
	switch ft {
	case models.FileKML:
		return ingestKML(data, filename)
	case models.FileKMZ:
		return ingestKMZ(data)
	case models.FileSHP:
		return ingestSHP(data, filename)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedFormat, ft)
	}
}

func ingestKML(data []byte, filename string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	fc.Features = extractKML(data)
	pruneDegenerate(fc)
	tag(fc, filename, "kml")
	return fc, nil
}

// ingestKMZ unpacks a zip archive and delegates the first .kml entry to the
// KML path, using the entry's own name for metadata. Additional KML entries
// are ignored (single-document assumption).
func ingestKMZ(data []byte) (*geojson.FeatureCollection, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: not a zip archive", common.ErrCorruptArchive)
	}

	for _, entry := range zr.File {
		if !strings.HasSuffix(entry.Name, ".kml") {
			continue
		}
		rc, err := entry.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable entry %s", common.ErrCorruptArchive, entry.Name)
		}
		kml, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: unreadable entry %s", common.ErrCorruptArchive, entry.Name)
		}
		return ingestKML(kml, entry.Name)
	}

	return nil, common.ErrCorruptArchive
}

func ingestSHP(data []byte, filename string) (*geojson.FeatureCollection, error) {
	fc := geojson.NewFeatureCollection()
	fc.Features = extractSHP(data)
	pruneDegenerate(fc)
	tag(fc, filename, "shapefile")
	return fc, nil
}

// extractKML would parse placemarks and geometries out of a KML document.
// Extraction is currently stubbed to an empty feature list.
func extractKML(data []byte) []*geojson.Feature {
	_ = data
	return nil
}

// extractSHP would decode the shp/dbf/shx triplet. Stubbed like extractKML.
func extractSHP(data []byte) []*geojson.Feature {
	_ = data
	return nil
}

// tag annotates the collection with its source file and format.
func tag(fc *geojson.FeatureCollection, filename, format string) {
	fc.ExtraMembers = map[string]interface{}{
		"metadata": map[string]interface{}{
			"source_file": filename,
			"processed":   true,
			"format":      format,
		},
	}
}

// pruneDegenerate drops polygon features whose outer ring has zero shoelace
// area. Lines and points pass through untouched.
func pruneDegenerate(fc *geojson.FeatureCollection) {
	kept := fc.Features[:0]
	for _, f := range fc.Features {
		if poly, ok := f.Geometry.(orb.Polygon); ok && len(poly) > 0 {
			if geo.PolygonArea([]orb.Point(poly[0])) == 0 {
				continue
			}
		}
		kept = append(kept, f)
	}
	fc.Features = kept
}

// SourceMetadata reads back the metadata annotation from a normalized
// collection. Missing members yield zero values.
func SourceMetadata(fc *geojson.FeatureCollection) (sourceFile, format string) {
	meta, ok := fc.ExtraMembers["metadata"].(map[string]interface{})
	if !ok {
		return "", ""
	}
	sourceFile, _ = meta["source_file"].(string)
	format, _ = meta["format"].(string)
	return sourceFile, format
}
