// Package services contains the business operations of the geoportal core:
// layer management, seeding, and complaint handling.
package services

import (
	"context"
	"fmt"
	"time"

	"github.com/paulmach/orb/geojson"

	"github.com/lombokbarat/geoportal/internal/blob"
	"github.com/lombokbarat/geoportal/internal/dbx"
	"github.com/lombokbarat/geoportal/internal/geo"
	"github.com/lombokbarat/geoportal/internal/ingest"
	"github.com/lombokbarat/geoportal/internal/logging"
	"github.com/lombokbarat/geoportal/internal/models"
	"github.com/lombokbarat/geoportal/internal/storage"
	"github.com/lombokbarat/geoportal/internal/styles"
)

// DefaultLayerSource is the attribution recorded on seeded static layers.
const DefaultLayerSource = "BIG"

// LayerService manages static and user-uploaded layers.
type LayerService struct {
	manager storage.Manager
	store   blob.Store
	log     logging.Logger
	now     func() time.Time
}

func NewLayerService(manager storage.Manager, store blob.Store, log logging.Logger) *LayerService {
	return &LayerService{
		manager: manager,
		store:   store,
		log:     log,
		now:     time.Now,
	}
}

// ListActiveLayers returns the map display list: active static layers ordered
// by display order, followed by active public user layers ordered by recency.
// The two groups are concatenated, not interleaved.
func (s *LayerService) ListActiveLayers(ctx context.Context) ([]models.LayerView, error) {
	repo := s.manager.Layers()

	static, err := repo.ListActiveStatic(ctx)
	if err != nil {
		return nil, fmt.Errorf("list static layers: %w", err)
	}
	user, err := repo.ListPublicUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("list user layers: %w", err)
	}

	views := make([]models.LayerView, 0, len(static)+len(user))
	for _, l := range static {
		views = append(views, l.View())
	}
	for _, l := range user {
		views = append(views, l.View())
	}
	return views, nil
}

// SaveUserLayerParams carries an upload into SaveUserLayer.
type SaveUserLayerParams struct {
	Data        []byte
	Filename    string
	FileType    models.FileType
	Name        string
	Description string
	IsPublic    bool
	UploadIP    string
}

// SaveUserLayer ingests an uploaded file, stores its bytes, and persists the
// layer record. Nothing is written to storage unless ingestion succeeds; if
// the database insert fails the stored file is removed again.
func (s *LayerService) SaveUserLayer(ctx context.Context, p SaveUserLayerParams) (*models.UserLayer, error) {
	fc, err := ingest.Ingest(p.Data, p.Filename, p.FileType)
	if err != nil {
		return nil, err
	}

	key := blob.UserLayerKey(p.Filename, p.Data)
	location, err := s.store.Write(ctx, key, p.Data)
	if err != nil {
		return nil, fmt.Errorf("store layer file: %w", err)
	}

	layer := &models.UserLayer{
		Name:             p.Name,
		Description:      p.Description,
		FileType:         p.FileType,
		OriginalFilename: p.Filename,
		FilePath:         key,
		FileSize:         int64(len(p.Data)),
		Geometry:         fc,
		Style:            styles.ForFileType(p.FileType),
		IsPublic:         p.IsPublic,
		IsActive:         true,
		UploadIP:         p.UploadIP,
		CreatedAt:        s.now().UTC(),
	}

	if err := s.manager.Layers().CreateUser(ctx, layer); err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.log.Warn(ctx, "orphaned layer file after failed insert", "key", key, "error", rmErr)
		}
		return nil, fmt.Errorf("save user layer: %w", err)
	}

	s.log.Info(ctx, "user layer saved",
		"layer_id", layer.ID, "file_type", string(p.FileType), "location", location, "size", layer.FileSize)
	return layer, nil
}

// SeedDefaults populates the static layer catalog on first run. If any static
// layer already exists it is a no-op. The existence check plus insert runs in
// one transaction; under concurrent startup of multiple instances this is
// best-effort idempotence, not exactly-once.
func (s *LayerService) SeedDefaults(ctx context.Context, catalog []SeedLayer) error {
	err := dbx.WithTx(ctx, s.manager.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.manager.LayersWith(tx)

		n, err := repo.CountStatic(ctx)
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}

		now := s.now().UTC()
		for _, seed := range catalog {
			layer := &models.StaticLayer{
				Name:         seed.Name,
				LayerType:    seed.LayerType,
				Description:  seed.Description,
				Source:       DefaultLayerSource,
				Geometry:     models.EmptyFeatureCollection(),
				Style:        seed.Style,
				IsActive:     true,
				DisplayOrder: seed.DisplayOrder,
				CreatedAt:    now,
				UpdatedAt:    now,
			}
			if err := repo.CreateStatic(ctx, layer); err != nil {
				return err
			}
		}
		s.log.Info(ctx, "seeded default layers", "count", len(catalog))
		return nil
	})
	if err != nil {
		return fmt.Errorf("seed defaults: %w", err)
	}
	return nil
}

// CreateStaticLayerParams carries an administrative static-layer creation.
type CreateStaticLayerParams struct {
	Name         string
	LayerType    models.LayerType
	Description  string
	Source       string
	Geometry     *geojson.FeatureCollection
	Style        models.Style
	DisplayOrder int
}

// UpdateStaticLayer applies a partial update to a static layer inside a
// transaction. Returns the updated layer, or common.ErrNotFound.
func (s *LayerService) UpdateStaticLayer(ctx context.Context, id int64, patch models.StaticLayerUpdate) (*models.StaticLayer, error) {
	var updated *models.StaticLayer

	err := dbx.WithTx(ctx, s.manager.Conn(), nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.manager.LayersWith(tx)

		layer, err := repo.GetStaticByID(ctx, id)
		if err != nil {
			return err
		}
		if patch.Name != nil {
			layer.Name = *patch.Name
		}
		if patch.Description != nil {
			layer.Description = *patch.Description
		}
		if patch.Geometry != nil {
			layer.Geometry = patch.Geometry
		}
		if patch.Style != nil {
			layer.Style = *patch.Style
		}
		if patch.IsActive != nil {
			layer.IsActive = *patch.IsActive
		}
		if patch.DisplayOrder != nil {
			layer.DisplayOrder = *patch.DisplayOrder
		}
		layer.UpdatedAt = s.now().UTC()

		if err := repo.UpdateStatic(ctx, layer); err != nil {
			return err
		}
		updated = layer
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// CreateStaticLayer inserts a curated layer through the administrative path.
func (s *LayerService) CreateStaticLayer(ctx context.Context, p CreateStaticLayerParams) (*models.StaticLayer, error) {
	now := s.now().UTC()
	source := p.Source
	if source == "" {
		source = DefaultLayerSource
	}
	geom := p.Geometry
	if geom == nil {
		geom = models.EmptyFeatureCollection()
	}

	layer := &models.StaticLayer{
		Name:         p.Name,
		LayerType:    p.LayerType,
		Description:  p.Description,
		Source:       source,
		Geometry:     geom,
		Style:        p.Style,
		IsActive:     true,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.manager.Layers().CreateStatic(ctx, layer); err != nil {
		return nil, fmt.Errorf("create static layer: %w", err)
	}
	return layer, nil
}

// DeactivateUserLayer hides a user layer and removes its stored file, so
// deactivated records do not accumulate orphaned blobs.
func (s *LayerService) DeactivateUserLayer(ctx context.Context, id int64) error {
	repo := s.manager.Layers()

	layer, err := repo.GetUserByID(ctx, id)
	if err != nil {
		return err
	}
	if err := repo.SetUserFlags(ctx, id, false, layer.IsPublic); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, layer.FilePath); err != nil {
		s.log.Warn(ctx, "could not remove layer file", "key", layer.FilePath, "error", err)
	}
	return nil
}

// RegionBounds returns the fixed West Lombok bounding box.
func (s *LayerService) RegionBounds() geo.Bounds { return geo.RegionBounds() }

// DefaultCenter returns the default map center as (lat, lon).
func (s *LayerService) DefaultCenter() (float64, float64) { return geo.DefaultCenter() }

// ValidateInRegion reports whether a coordinate lies within the region.
func (s *LayerService) ValidateInRegion(lat, lon float64) bool {
	return geo.ValidateInRegion(lat, lon)
}
