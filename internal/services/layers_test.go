package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lombokbarat/geoportal/internal/common"
	"github.com/lombokbarat/geoportal/internal/models"
)

func TestSeedDefaults_PopulatesCatalogOnce(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx, DefaultCatalog()))

	n, err := env.manager.Layers().CountStatic(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)

	// A second run must not duplicate the catalog.
	require.NoError(t, svc.SeedDefaults(ctx, DefaultCatalog()))
	n, err = env.manager.Layers().CountStatic(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestSeedDefaults_SkipsWhenAnyStaticExists(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()
	ctx := context.Background()

	_, err := svc.CreateStaticLayer(ctx, CreateStaticLayerParams{
		Name:      "Manual",
		LayerType: models.LayerIrrigation,
	})
	require.NoError(t, err)

	// Even one pre-existing layer disables seeding entirely.
	require.NoError(t, svc.SeedDefaults(ctx, DefaultCatalog()))

	n, err := env.manager.Layers().CountStatic(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestListActiveLayers_StaticThenUserOrdering(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()
	ctx := context.Background()

	require.NoError(t, svc.SeedDefaults(ctx, DefaultCatalog()))

	uploaded, err := svc.SaveUserLayer(ctx, SaveUserLayerParams{
		Data:     []byte("<kml></kml>"),
		Filename: "garden.kml",
		FileType: models.FileKML,
		Name:     "Kebun",
		IsPublic: true,
	})
	require.NoError(t, err)

	views, err := svc.ListActiveLayers(ctx)
	require.NoError(t, err)
	require.Len(t, views, 6)

	// Static layers come first in display order, then the user layer.
	assert.Equal(t, "Sawah (Rice Fields)", views[0].Name)
	assert.Equal(t, "Batas Desa (Village Boundaries)", views[4].Name)
	assert.Equal(t, uploaded.ID, views[5].ID)
	assert.Equal(t, models.LayerUserUploaded, views[5].LayerType)
}

func TestListActiveLayers_ExcludesPrivateUserLayers(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()
	ctx := context.Background()

	_, err := svc.SaveUserLayer(ctx, SaveUserLayerParams{
		Data:     []byte("<kml></kml>"),
		Filename: "private.kml",
		FileType: models.FileKML,
		Name:     "Private",
		IsPublic: false,
	})
	require.NoError(t, err)

	views, err := svc.ListActiveLayers(ctx)
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestSaveUserLayer_StoresFileAndDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()
	ctx := context.Background()

	layer, err := svc.SaveUserLayer(ctx, SaveUserLayerParams{
		Data:        []byte("<kml></kml>"),
		Filename:    "fields.kml",
		FileType:    models.FileKML,
		Name:        "My Fields",
		Description: "uploaded",
		IsPublic:    true,
		UploadIP:    "10.0.0.1",
	})
	require.NoError(t, err)
	assert.NotZero(t, layer.ID)
	assert.True(t, layer.IsActive)
	assert.Equal(t, int64(len("<kml></kml>")), layer.FileSize)
	assert.Equal(t, "#3388ff", layer.Style.StrokeColor)

	// The stored key resolves to a real file on disk.
	data, err := os.ReadFile(filepath.Join(env.store.Root(), filepath.FromSlash(layer.FilePath)))
	require.NoError(t, err)
	assert.Equal(t, []byte("<kml></kml>"), data)
}

func TestSaveUserLayer_RejectsUnsupportedFormat(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()

	_, err := svc.SaveUserLayer(context.Background(), SaveUserLayerParams{
		Data:     []byte("data"),
		Filename: "layer.gpx",
		FileType: models.FileType("gpx"),
		Name:     "GPX",
	})
	assert.True(t, errors.Is(err, common.ErrUnsupportedFormat))
}

func TestUpdateStaticLayer_AppliesPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()
	ctx := context.Background()

	layer, err := svc.CreateStaticLayer(ctx, CreateStaticLayerParams{
		Name:         "Irigasi",
		LayerType:    models.LayerIrrigation,
		Description:  "before",
		DisplayOrder: 2,
	})
	require.NoError(t, err)

	name := "Irigasi Utama"
	inactive := false
	updated, err := svc.UpdateStaticLayer(ctx, layer.ID, models.StaticLayerUpdate{
		Name:     &name,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "Irigasi Utama", updated.Name)
	assert.False(t, updated.IsActive)
	// Untouched fields survive the patch.
	assert.Equal(t, "before", updated.Description)
	assert.Equal(t, 2, updated.DisplayOrder)

	_, err = svc.UpdateStaticLayer(ctx, layer.ID+100, models.StaticLayerUpdate{Name: &name})
	assert.True(t, errors.Is(err, common.ErrNotFound))
}

func TestDeactivateUserLayer_RemovesStoredFile(t *testing.T) {
	env := newTestEnv(t)
	svc := env.layers()
	ctx := context.Background()

	layer, err := svc.SaveUserLayer(ctx, SaveUserLayerParams{
		Data:     []byte("<kml></kml>"),
		Filename: "gone.kml",
		FileType: models.FileKML,
		Name:     "Gone",
		IsPublic: true,
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateUserLayer(ctx, layer.ID))

	got, err := env.manager.Layers().GetUserByID(ctx, layer.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = os.Stat(filepath.Join(env.store.Root(), filepath.FromSlash(layer.FilePath)))
	assert.True(t, os.IsNotExist(err))
}

func TestRegionHelpers(t *testing.T) {
	svc := newTestEnv(t).layers()

	lat, lon := svc.DefaultCenter()
	assert.InDelta(t, -8.55, lat, 1e-9)
	assert.InDelta(t, 116.15, lon, 1e-9)

	assert.True(t, svc.ValidateInRegion(-8.55, 116.15))
	assert.False(t, svc.ValidateInRegion(-6.2, 106.8))
}
