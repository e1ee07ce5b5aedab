package complaints

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

func (r *PostgresRepository) Create(ctx context.Context, c *models.Complaint) error {
	query := `
		INSERT INTO complaints
			(title, description, latitude, longitude, location_description,
			 submitter_name, submitter_email, submitter_phone, status, submit_ip,
			 facebook_redirected, lapor_redirected, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		c.Title, c.Description, c.Latitude.String(), c.Longitude.String(),
		c.LocationDescription, c.SubmitterName, c.SubmitterEmail, c.SubmitterPhone,
		string(c.Status), c.SubmitIP, c.FacebookRedirected, c.LaporRedirected, c.CreatedAt).Scan(&c.ID)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	query := selectComplaint + ` WHERE id = $1`
	c, err := scanComplaint(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return c, err
}

func (r *PostgresRepository) ListRecent(ctx context.Context, limit int) ([]*models.Complaint, error) {
	query := selectComplaint + ` ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT $1`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("select complaints: %w", err)
	}
	defer rows.Close()

	var result []*models.Complaint
	for rows.Next() {
		c, err := scanComplaint(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, rows.Err()
}

func (r *PostgresRepository) SetRedirectFlags(ctx context.Context, id int64, facebook, lapor bool, status models.ComplaintStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE complaints SET facebook_redirected = $1, lapor_redirected = $2, status = $3 WHERE id = $4`,
		facebook, lapor, string(status), id)
	if err != nil {
		return fmt.Errorf("update redirect flags: %w", err)
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

func (r *PostgresRepository) AddPhoto(ctx context.Context, p *models.ComplaintPhoto) error {
	query := `
		INSERT INTO complaint_photos
			(complaint_id, filename, file_path, file_size, mime_type, caption,
			 display_order, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	err := r.db.QueryRowContext(ctx, query,
		p.ComplaintID, p.Filename, p.FilePath, p.FileSize, p.MimeType,
		p.Caption, p.DisplayOrder, p.CreatedAt).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert complaint photo: %w", err)
	}
	return nil
}

func (r *PostgresRepository) PhotosByComplaint(ctx context.Context, complaintID int64) ([]models.ComplaintPhoto, error) {
	query := selectPhoto + ` WHERE complaint_id = $1 ORDER BY display_order ASC, created_at ASC, id ASC`
	rows, err := r.db.QueryContext(ctx, query, complaintID)
	if err != nil {
		return nil, fmt.Errorf("select complaint photos: %w", err)
	}
	defer rows.Close()

	var result []models.ComplaintPhoto
	for rows.Next() {
		p, err := scanPhoto(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, rows.Err()
}
