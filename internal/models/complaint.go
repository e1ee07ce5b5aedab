package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ComplaintStatus tracks the lifecycle of a public complaint.
type ComplaintStatus string

const (
	StatusSubmitted  ComplaintStatus = "submitted"
	StatusRedirected ComplaintStatus = "redirected"
	StatusCompleted  ComplaintStatus = "completed"
)

// External platforms a complaint can be forwarded to.
const (
	PlatformFacebook = "facebook"
	PlatformLapor    = "lapor"
)

// Photo attachment limits.
const MaxPhotoSize = 5 * 1024 * 1024

// AllowedPhotoTypes is the set of accepted photo MIME types.
var AllowedPhotoTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
	"image/gif":  {},
	"image/webp": {},
}

// StatusFromFlags derives the complaint status from the two redirect flags.
// Status is always recomputed from the flags, never incremented, so
// re-marking the same platform is idempotent.
func StatusFromFlags(facebook, lapor bool) ComplaintStatus {
	switch {
	case facebook && lapor:
		return StatusCompleted
	case facebook || lapor:
		return StatusRedirected
	default:
		return StatusSubmitted
	}
}

// NormalizePlatform lowercases a platform name and reports whether it is one
// of the known redirect targets.
func NormalizePlatform(platform string) (string, bool) {
	p := strings.ToLower(strings.TrimSpace(platform))
	switch p {
	case PlatformFacebook, PlatformLapor:
		return p, true
	}
	return p, false
}

// Complaint is a citizen complaint pinned to a coordinate. Coordinates are
// kept as fixed-precision decimals (8 fractional digits) so repeated
// bounding-box comparisons do not drift the way binary floats would.
type Complaint struct {
	ID                  int64
	Title               string
	Description         string
	Latitude            decimal.Decimal
	Longitude           decimal.Decimal
	LocationDescription string
	SubmitterName       string
	SubmitterEmail      string
	SubmitterPhone      string
	Status              ComplaintStatus
	SubmitIP            string
	FacebookRedirected  bool
	LaporRedirected     bool
	CreatedAt           time.Time

	// Photos is populated by read operations, ordered by display order
	// then creation time.
	Photos []ComplaintPhoto
}

// ComplaintPhoto is a photo attached to a complaint. Display order is
// caller-supplied, not auto-incremented; concurrent callers supplying the same
// order value is a caller error.
type ComplaintPhoto struct {
	ID           int64
	ComplaintID  int64
	Filename     string
	FilePath     string
	FileSize     int64
	MimeType     string
	Caption      string
	DisplayOrder int
	CreatedAt    time.Time
}
