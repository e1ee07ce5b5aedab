// Package storage wires database connections, schema migrations and the
// repositories into a single manager, selected by DSN.
package storage

import (
	"context"
	"database/sql"
	"strings"

	"github.com/lombokbarat/geoportal/internal/dbx"
	"github.com/lombokbarat/geoportal/internal/repositories/complaints"
	"github.com/lombokbarat/geoportal/internal/repositories/layers"
)

// Manager owns the database handle and hands out repositories bound to it.
// The *With variants bind a repository to an explicit handle, typically a
// transaction started with dbx.WithTx.
type Manager interface {
	Conn() *sql.DB
	RunMigrations(ctx context.Context) error
	Layers() layers.Repository
	LayersWith(db dbx.DBTX) layers.Repository
	Complaints() complaints.Repository
	ComplaintsWith(db dbx.DBTX) complaints.Repository
	Close() error
}

// NewManager opens the backend matching the DSN and runs migrations. A
// postgres:// or postgresql:// DSN selects PostgreSQL; anything else is
// treated as an SQLite path or URI.
func NewManager(ctx context.Context, dsn string) (Manager, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return NewPostgresManager(ctx, dsn)
	}
	return NewSQLiteManager(ctx, dsn)
}
