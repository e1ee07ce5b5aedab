package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/lombokbarat/geoportal/internal/dbx"
	"github.com/lombokbarat/geoportal/internal/repositories/complaints"
	"github.com/lombokbarat/geoportal/internal/repositories/layers"
	"github.com/lombokbarat/geoportal/internal/storage/migrations"
)

// PostgresManager backs the portal with PostgreSQL for multi-instance
// deployments.
type PostgresManager struct {
	db         *sql.DB
	layers     *layers.PostgresRepository
	complaints *complaints.PostgresRepository
}

func NewPostgresManager(ctx context.Context, dsn string) (*PostgresManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	m := &PostgresManager{
		db:         db,
		layers:     layers.NewPostgresRepository(db),
		complaints: complaints.NewPostgresRepository(db),
	}
	if err := m.RunMigrations(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate postgres: %w", err)
	}
	return m, nil
}

func (m *PostgresManager) Conn() *sql.DB { return m.db }

func (m *PostgresManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.UpContext(ctx, m.db, "postgres")
}

func (m *PostgresManager) Layers() layers.Repository         { return m.layers }
func (m *PostgresManager) Complaints() complaints.Repository { return m.complaints }

func (m *PostgresManager) LayersWith(db dbx.DBTX) layers.Repository {
	return layers.NewPostgresRepository(db)
}

func (m *PostgresManager) ComplaintsWith(db dbx.DBTX) complaints.Repository {
	return complaints.NewPostgresRepository(db)
}

func (m *PostgresManager) Close() error { return m.db.Close() }
