package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/lombokbarat/geoportal/internal/dbx"
	"github.com/lombokbarat/geoportal/internal/repositories/complaints"
	"github.com/lombokbarat/geoportal/internal/repositories/layers"
	"github.com/lombokbarat/geoportal/internal/storage/migrations"
)

// SQLiteManager is the default single-file backend.
type SQLiteManager struct {
	db         *sql.DB
	layers     *layers.SQLiteRepository
	complaints *complaints.SQLiteRepository
}

func NewSQLiteManager(ctx context.Context, dsn string) (*SQLiteManager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	m := &SQLiteManager{
		db:         db,
		layers:     layers.NewSQLiteRepository(db),
		complaints: complaints.NewSQLiteRepository(db),
	}
	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite: %w", err)
	}
	return m, nil
}

func (m *SQLiteManager) Conn() *sql.DB { return m.db }

func (m *SQLiteManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, "sqlite")
}

func (m *SQLiteManager) Layers() layers.Repository         { return m.layers }
func (m *SQLiteManager) Complaints() complaints.Repository { return m.complaints }

func (m *SQLiteManager) LayersWith(db dbx.DBTX) layers.Repository {
	return layers.NewSQLiteRepository(db)
}

func (m *SQLiteManager) ComplaintsWith(db dbx.DBTX) complaints.Repository {
	return complaints.NewSQLiteRepository(db)
}

func (m *SQLiteManager) Close() error { return m.db.Close() }
