// Package storage keeps uploaded X-ray images on local disk or in an
// S3-compatible bucket.
package storage

import (
	"errors"
	"path/filepath"
	"strings"
)

var (
	ErrNotFound   = errors.New("stored file not found")
	ErrInvalidKey = errors.New("invalid storage key")
)

// validateKey accepts flat file names only.
func validateKey(key string) error {
	if key == "" || key == "." || key == ".." ||
		strings.ContainsAny(key, `/\`) || filepath.Base(key) != key {
		return ErrInvalidKey
	}
	return nil
}
