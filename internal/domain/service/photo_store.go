package service

import (
	"context"
	"io"
)

// PhotoStore defines the interface for profile photo blob storage.
// Keys derive deterministically from the owner's email, so re-uploading
// replaces the previous photo.
type PhotoStore interface {
	// Upload stores a photo and returns its public URL.
	Upload(ctx context.Context, email string, contentType string, body io.Reader) (string, error)

	// Download reads a stored photo back.
	Download(ctx context.Context, email string) ([]byte, error)

	// Delete removes a stored photo.
	Delete(ctx context.Context, email string) error
}
