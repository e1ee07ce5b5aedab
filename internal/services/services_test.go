package services

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lombokbarat/geoportal/internal/blob"
	"github.com/lombokbarat/geoportal/internal/logging"
	"github.com/lombokbarat/geoportal/internal/storage"
)

// testEnv wires real components against a throwaway SQLite database and a
// temp-dir blob store.
type testEnv struct {
	manager storage.Manager
	store   *blob.DiskStore
	log     logging.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	m, err := storage.NewManager(context.Background(), filepath.Join(t.TempDir(), "geoportal.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })

	store, err := blob.NewDiskStore(t.TempDir())
	require.NoError(t, err)

	return &testEnv{
		manager: m,
		store:   store,
		log:     logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	}
}

func (e *testEnv) layers() *LayerService {
	return NewLayerService(e.manager, e.store, e.log)
}

func (e *testEnv) complaints() *ComplaintService {
	return NewComplaintService(e.manager, e.store, e.log)
}
