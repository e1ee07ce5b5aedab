package layers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lombokbarat/geoportal/internal/common"
	"github.com/lombokbarat/geoportal/internal/dbx"
	"github.com/lombokbarat/geoportal/internal/models"
)

// PostgresRepository implements Repository over a dbx.DBTX bound to a
// PostgreSQL connection.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CreateStatic(ctx context.Context, l *models.StaticLayer) error {
	geom, style, err := encodeLayer(l.Geometry, l.Style)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO static_layers
			(name, layer_type, description, source, geom_data, style_properties,
			 is_active, display_order, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query,
		l.Name, string(l.LayerType), l.Description, l.Source, geom, style,
		l.IsActive, l.DisplayOrder, l.CreatedAt, l.UpdatedAt).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert static layer: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetStaticByID(ctx context.Context, id int64) (*models.StaticLayer, error) {
	query := selectStatic + ` WHERE id = $1`
	l, err := scanStatic(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return l, err
}

func (r *PostgresRepository) UpdateStatic(ctx context.Context, l *models.StaticLayer) error {
	geom, style, err := encodeLayer(l.Geometry, l.Style)
	if err != nil {
		return err
	}

	query := `
		UPDATE static_layers
		SET name = $1, description = $2, geom_data = $3, style_properties = $4,
			is_active = $5, display_order = $6, updated_at = $7
		WHERE id = $8
	`
	res, err := r.db.ExecContext(ctx, query,
		l.Name, l.Description, geom, style, l.IsActive, l.DisplayOrder, l.UpdatedAt, l.ID)
	if err != nil {
		return fmt.Errorf("update static layer: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository) CountStatic(ctx context.Context) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM static_layers`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count static layers: %w", err)
	}
	return n, nil
}

func (r *PostgresRepository) ListActiveStatic(ctx context.Context) ([]*models.StaticLayer, error) {
	query := selectStatic + ` WHERE is_active ORDER BY display_order ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select static layers: %w", err)
	}
	defer rows.Close()

	var result []*models.StaticLayer
	for rows.Next() {
		l, err := scanStatic(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) CreateUser(ctx context.Context, l *models.UserLayer) error {
	geom, style, err := encodeLayer(l.Geometry, l.Style)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO user_layers
			(name, description, file_type, original_filename, file_path, file_size,
			 geom_data, style_properties, is_public, is_active, upload_ip, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err = r.db.QueryRowContext(ctx, query,
		l.Name, l.Description, string(l.FileType), l.OriginalFilename, l.FilePath, l.FileSize,
		geom, style, l.IsPublic, l.IsActive, l.UploadIP, l.CreatedAt).Scan(&l.ID)
	if err != nil {
		return fmt.Errorf("insert user layer: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetUserByID(ctx context.Context, id int64) (*models.UserLayer, error) {
	query := selectUser + ` WHERE id = $1`
	l, err := scanUser(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return l, err
}

func (r *PostgresRepository) ListPublicUser(ctx context.Context) ([]*models.UserLayer, error) {
	query := selectUser + ` WHERE is_active AND is_public ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("select user layers: %w", err)
	}
	defer rows.Close()

	var result []*models.UserLayer
	for rows.Next() {
		l, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) SetUserFlags(ctx context.Context, id int64, isActive, isPublic bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_layers SET is_active = $1, is_public = $2 WHERE id = $3`,
		isActive, isPublic, id)
	if err != nil {
		return fmt.Errorf("update user layer flags: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return common.ErrNotFound
	}
	return nil
}
