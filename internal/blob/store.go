// Package blob abstracts where uploaded files land: a local directory in the
// default setup, or an S3-compatible bucket.
package blob

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Store writes and removes uploaded file content under slash-separated keys.
// Write returns the stored location (a filesystem path or object URL) that is
// persisted with the owning record.
type Store interface {
	Write(ctx context.Context, key string, data []byte) (string, error)
	Remove(ctx context.Context, key string) error
}

// shortHash returns an 8-hex-char digest of the content plus filename, making
// storage keys content-dependent.
func shortHash(filename string, content []byte) string {
	h := sha256.New()
	h.Write([]byte(filename))
	h.Write(content)
	return fmt.Sprintf("%x", h.Sum(nil)[:4])
}

// UserLayerKey builds a unique storage key for an uploaded layer file. The
// content hash ties the key to the payload; the UUID makes collisions between
// concurrent same-named uploads practically impossible.
func UserLayerKey(filename string, content []byte) string {
	return fmt.Sprintf("user_layers/%s-%s-%s", shortHash(filename, content), uuid.New(), filename)
}

// ComplaintPhotoKey builds a unique storage key for a complaint photo,
// keeping the original file extension.
func ComplaintPhotoKey(complaintID int64, filename string, content []byte) string {
	ext := "jpg"
	if i := strings.LastIndex(filename, "."); i >= 0 && i < len(filename)-1 {
		ext = filename[i+1:]
	}
	return fmt.Sprintf("complaint_photos/complaint_%d_%s-%s.%s",
		complaintID, shortHash(filename, content), uuid.New(), ext)
}
