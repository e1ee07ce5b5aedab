package complaints

import (
	"context"

	"github.com/lombokbarat/geoportal/internal/models"
)

// Repository persists complaints and their photo attachments.
type Repository interface {
	// Create inserts a complaint and fills in its ID.
	Create(ctx context.Context, c *models.Complaint) error

	// GetByID returns a complaint (without photos) or common.ErrNotFound.
	GetByID(ctx context.Context, id int64) (*models.Complaint, error)

	// ListRecent returns complaints ordered by creation time descending.
	// limit <= 0 means no limit.
	ListRecent(ctx context.Context, limit int) ([]*models.Complaint, error)

	// SetRedirectFlags overwrites both redirect flags and the derived
	// status. Returns common.ErrNotFound when the complaint is missing.
	SetRedirectFlags(ctx context.Context, id int64, facebook, lapor bool, status models.ComplaintStatus) error

	// AddPhoto inserts a photo record and fills in its ID.
	AddPhoto(ctx context.Context, p *models.ComplaintPhoto) error

	// PhotosByComplaint returns a complaint's photos ordered by display
	// order, then creation time.
	PhotosByComplaint(ctx context.Context, complaintID int64) ([]models.ComplaintPhoto, error)
}
