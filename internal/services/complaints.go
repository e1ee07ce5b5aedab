package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/lombokbarat/geoportal/internal/blob"
	"github.com/lombokbarat/geoportal/internal/common"
	"github.com/lombokbarat/geoportal/internal/logging"
	"github.com/lombokbarat/geoportal/internal/models"
	"github.com/lombokbarat/geoportal/internal/storage"
)

// DefaultRecentLimit bounds ListRecent when the caller passes no limit.
const DefaultRecentLimit = 50

// ComplaintService manages citizen complaints and their photos.
type ComplaintService struct {
	manager storage.Manager
	store   blob.Store
	log     logging.Logger
	now     func() time.Time
}

func NewComplaintService(manager storage.Manager, store blob.Store, log logging.Logger) *ComplaintService {
	return &ComplaintService{
		manager: manager,
		store:   store,
		log:     log,
		now:     time.Now,
	}
}

// CreateComplaintParams carries a new complaint submission.
type CreateComplaintParams struct {
	Title               string
	Description         string
	Latitude            decimal.Decimal
	Longitude           decimal.Decimal
	LocationDescription string
	SubmitterName       string
	SubmitterEmail      string
	SubmitterPhone      string
	SubmitIP            string
}

// Create records a complaint with status submitted. Coordinates are not
// validated against the region bounds: out-of-region complaints are accepted
// and simply invisible to region-scoped queries.
func (s *ComplaintService) Create(ctx context.Context, p CreateComplaintParams) (*models.Complaint, error) {
	c := &models.Complaint{
		Title:               p.Title,
		Description:         p.Description,
		Latitude:            p.Latitude,
		Longitude:           p.Longitude,
		LocationDescription: p.LocationDescription,
		SubmitterName:       p.SubmitterName,
		SubmitterEmail:      p.SubmitterEmail,
		SubmitterPhone:      p.SubmitterPhone,
		Status:              models.StatusSubmitted,
		SubmitIP:            p.SubmitIP,
		CreatedAt:           s.now().UTC(),
	}
	if err := s.manager.Complaints().Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create complaint: %w", err)
	}
	s.log.Info(ctx, "complaint created", "complaint_id", c.ID)
	return c, nil
}

// AttachPhotoParams carries a photo upload for an existing complaint.
type AttachPhotoParams struct {
	ComplaintID  int64
	Data         []byte
	Filename     string
	MimeType     string
	Caption      string
	DisplayOrder int
}

// AttachPhoto validates and stores a photo for a complaint. The file is
// written before the database record; if the insert fails the file is removed
// again so no row ever references a missing blob.
func (s *ComplaintService) AttachPhoto(ctx context.Context, p AttachPhotoParams) (*models.ComplaintPhoto, error) {
	if _, ok := models.AllowedPhotoTypes[p.MimeType]; !ok {
		return nil, fmt.Errorf("%w: %s", common.ErrUnsupportedMediaType, p.MimeType)
	}
	if int64(len(p.Data)) > models.MaxPhotoSize {
		return nil, fmt.Errorf("%w: %d bytes", common.ErrPayloadTooLarge, len(p.Data))
	}

	repo := s.manager.Complaints()
	if _, err := repo.GetByID(ctx, p.ComplaintID); err != nil {
		return nil, err
	}

	key := blob.ComplaintPhotoKey(p.ComplaintID, p.Filename, p.Data)
	if _, err := s.store.Write(ctx, key, p.Data); err != nil {
		return nil, fmt.Errorf("store photo: %w", err)
	}

	photo := &models.ComplaintPhoto{
		ComplaintID:  p.ComplaintID,
		Filename:     p.Filename,
		FilePath:     key,
		FileSize:     int64(len(p.Data)),
		MimeType:     p.MimeType,
		Caption:      p.Caption,
		DisplayOrder: p.DisplayOrder,
		CreatedAt:    s.now().UTC(),
	}
	if err := repo.AddPhoto(ctx, photo); err != nil {
		if rmErr := s.store.Remove(ctx, key); rmErr != nil {
			s.log.Warn(ctx, "orphaned photo after failed insert", "key", key, "error", rmErr)
		}
		return nil, fmt.Errorf("attach photo: %w", err)
	}

	s.log.Info(ctx, "photo attached", "complaint_id", p.ComplaintID, "photo_id", photo.ID)
	return photo, nil
}

// MarkRedirected flags a complaint as forwarded to an external platform and
// recomputes its status from the two flags. Returns false without error when
// the complaint does not exist. Re-marking the same platform is idempotent.
func (s *ComplaintService) MarkRedirected(ctx context.Context, id int64, platform string) (bool, error) {
	name, ok := models.NormalizePlatform(platform)
	if !ok {
		return false, fmt.Errorf("%w: %q", common.ErrUnknownPlatform, platform)
	}

	repo := s.manager.Complaints()
	c, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return false, nil
		}
		return false, err
	}

	facebook, lapor := c.FacebookRedirected, c.LaporRedirected
	switch name {
	case models.PlatformFacebook:
		facebook = true
	case models.PlatformLapor:
		lapor = true
	}

	status := models.StatusFromFlags(facebook, lapor)
	if err := repo.SetRedirectFlags(ctx, id, facebook, lapor, status); err != nil {
		return false, err
	}

	s.log.Info(ctx, "complaint redirected",
		"complaint_id", id, "platform", name, "status", string(status))
	return true, nil
}

// GetByID returns a complaint with its photos, or common.ErrNotFound.
func (s *ComplaintService) GetByID(ctx context.Context, id int64) (*models.Complaint, error) {
	repo := s.manager.Complaints()

	c, err := repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if c.Photos, err = repo.PhotosByComplaint(ctx, id); err != nil {
		return nil, err
	}
	return c, nil
}

// ListRecent returns the newest complaints with their photos. A non-positive
// limit falls back to DefaultRecentLimit.
func (s *ComplaintService) ListRecent(ctx context.Context, limit int) ([]*models.Complaint, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	repo := s.manager.Complaints()
	list, err := repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err := s.loadPhotos(ctx, list); err != nil {
		return nil, err
	}
	return list, nil
}

// ListInArea returns complaints inside the bounding box, newest first. The
// box ordering (south < north, west < east) is the caller's contract. The
// comparison runs on the stored decimals, so repeated queries at the region
// edge stay exact.
func (s *ComplaintService) ListInArea(ctx context.Context, south, west, north, east float64) ([]*models.Complaint, error) {
	all, err := s.manager.Complaints().ListRecent(ctx, 0)
	if err != nil {
		return nil, err
	}

	dSouth := decimal.NewFromFloat(south)
	dWest := decimal.NewFromFloat(west)
	dNorth := decimal.NewFromFloat(north)
	dEast := decimal.NewFromFloat(east)

	var inside []*models.Complaint
	for _, c := range all {
		if c.Latitude.Cmp(dSouth) >= 0 && c.Latitude.Cmp(dNorth) <= 0 &&
			c.Longitude.Cmp(dWest) >= 0 && c.Longitude.Cmp(dEast) <= 0 {
			inside = append(inside, c)
		}
	}
	if err := s.loadPhotos(ctx, inside); err != nil {
		return nil, err
	}
	return inside, nil
}

func (s *ComplaintService) loadPhotos(ctx context.Context, list []*models.Complaint) error {
	repo := s.manager.Complaints()
	for _, c := range list {
		photos, err := repo.PhotosByComplaint(ctx, c.ID)
		if err != nil {
			return err
		}
		c.Photos = photos
	}
	return nil
}
