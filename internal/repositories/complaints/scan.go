package complaints

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/lombokbarat/geoportal/internal/models"
)

const selectComplaint = `
	SELECT id, title, description, latitude, longitude, location_description,
		submitter_name, submitter_email, submitter_phone, status, submit_ip,
		facebook_redirected, lapor_redirected, created_at
	FROM complaints`

const selectPhoto = `
	SELECT id, complaint_id, filename, file_path, file_size, mime_type,
		caption, display_order, created_at
	FROM complaint_photos`

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanComplaint(row rowScanner) (*models.Complaint, error) {
	var (
		c        models.Complaint
		lat, lon string
		status   string
	)
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &lat, &lon,
		&c.LocationDescription, &c.SubmitterName, &c.SubmitterEmail, &c.SubmitterPhone,
		&status, &c.SubmitIP, &c.FacebookRedirected, &c.LaporRedirected, &c.CreatedAt); err != nil {
		return nil, err
	}
	c.Status = models.ComplaintStatus(status)

	var err error
	if c.Latitude, err = decimal.NewFromString(lat); err != nil {
		return nil, fmt.Errorf("parse latitude %q: %w", lat, err)
	}
	if c.Longitude, err = decimal.NewFromString(lon); err != nil {
		return nil, fmt.Errorf("parse longitude %q: %w", lon, err)
	}
	return &c, nil
}

func scanPhoto(row rowScanner) (models.ComplaintPhoto, error) {
	var p models.ComplaintPhoto
	err := row.Scan(&p.ID, &p.ComplaintID, &p.Filename, &p.FilePath, &p.FileSize,
		&p.MimeType, &p.Caption, &p.DisplayOrder, &p.CreatedAt)
	return p, err
}
