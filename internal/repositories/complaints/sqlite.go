// Package complaints provides SQL-backed repositories for complaint and
// photo persistence.
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

// SQLiteRepository implements Repository over a dbx.DBTX (*sql.DB or *sql.Tx).
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Complaint) error {
	query := `
		INSERT INTO complaints
			(title, description, latitude, longitude, location_description,
			 submitter_name, submitter_email, submitter_phone, status, submit_ip,
			 facebook_redirected, lapor_redirected, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		c.Title, c.Description, c.Latitude.String(), c.Longitude.String(),
		c.LocationDescription, c.SubmitterName, c.SubmitterEmail, c.SubmitterPhone,
		string(c.Status), c.SubmitIP, c.FacebookRedirected, c.LaporRedirected, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert complaint: %w", err)
	}
	c.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	query := selectComplaint + ` WHERE id = ?`
	c, err := scanComplaint(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	return c, err
}

func (r *SQLiteRepository) ListRecent(ctx context.Context, limit int) ([]*models.Complaint, error) {
	query := selectComplaint + ` ORDER BY created_at DESC, id DESC`
	args := []any{}
	if limit > 0 {
		query += ` LIMIT ?`
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

func (r *SQLiteRepository) SetRedirectFlags(ctx context.Context, id int64, facebook, lapor bool, status models.ComplaintStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE complaints SET facebook_redirected = ?, lapor_redirected = ?, status = ? WHERE id = ?`,
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

func (r *SQLiteRepository) AddPhoto(ctx context.Context, p *models.ComplaintPhoto) error {
	query := `
		INSERT INTO complaint_photos
			(complaint_id, filename, file_path, file_size, mime_type, caption,
			 display_order, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	res, err := r.db.ExecContext(ctx, query,
		p.ComplaintID, p.Filename, p.FilePath, p.FileSize, p.MimeType,
		p.Caption, p.DisplayOrder, p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert complaint photo: %w", err)
	}
	p.ID, err = res.LastInsertId()
	if err != nil {
		return fmt.Errorf("last insert id: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) PhotosByComplaint(ctx context.Context, complaintID int64) ([]models.ComplaintPhoto, error) {
	query := selectPhoto + ` WHERE complaint_id = ? ORDER BY display_order ASC, created_at ASC, id ASC`
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
