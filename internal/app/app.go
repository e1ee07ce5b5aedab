// Package app initializes the geoportal: it opens the database (running
// migrations), selects the blob backend, builds the services, and seeds the
// default layer catalog on first run.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lombokbarat/geoportal/internal/blob"
	"github.com/lombokbarat/geoportal/internal/config"
	"github.com/lombokbarat/geoportal/internal/logging"
	"github.com/lombokbarat/geoportal/internal/services"
	"github.com/lombokbarat/geoportal/internal/storage"
)

type App struct {
	config           *config.Config
	logger           logging.Logger
	manager          storage.Manager
	layerService     *services.LayerService
	complaintService *services.ComplaintService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	manager, err := storage.NewManager(ctx, cfg.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	store, err := newBlobStore(ctx, cfg)
	if err != nil {
		_ = manager.Close()
		return nil, err
	}

	return &App{
		config:           cfg,
		logger:           logger,
		manager:          manager,
		layerService:     services.NewLayerService(manager, store, logger),
		complaintService: services.NewComplaintService(manager, store, logger),
	}, nil
}

func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.BlobBackend {
	case config.BlobBackendS3:
		return blob.NewS3Store(ctx, blob.S3Options{
			AccessKey:    cfg.S3AccessKey,
			SecretKey:    cfg.S3SecretKey,
			Bucket:       cfg.S3Bucket,
			Region:       cfg.S3Region,
			BaseEndpoint: cfg.S3BaseEndpoint,
		})
	case config.BlobBackendDisk:
		return blob.NewDiskStore(cfg.UploadDir)
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.BlobBackend)
	}
}

// Layers exposes the layer service to transport adapters.
func (a *App) Layers() *services.LayerService { return a.layerService }

// Complaints exposes the complaint service to transport adapters.
func (a *App) Complaints() *services.ComplaintService { return a.complaintService }

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

// Run seeds the default catalog and blocks until the context is cancelled or
// an interrupt arrives.
func (a *App) Run(ctx context.Context) error {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	a.initSignalHandler(cancelFunc)

	a.logger.Info(ctx, "starting geoportal",
		"backend", a.config.BlobBackend, "dsn", a.config.DatabaseDSN)

	if err := a.layerService.SeedDefaults(ctx, services.DefaultCatalog()); err != nil {
		return err
	}

	bounds := a.layerService.RegionBounds()
	a.logger.Info(ctx, "serving region",
		"south", bounds.South, "west", bounds.West,
		"north", bounds.North, "east", bounds.East)

	<-ctx.Done()

	a.logger.Info(ctx, "shutting down")
	return a.manager.Close()
}
