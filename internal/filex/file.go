// Package filex contains filesystem helpers for the upload directories.
package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and parents) if it does not exist and returns it.
// A file already occupying the path is an error.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
