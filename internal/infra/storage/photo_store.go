// Package storage persists profile photos in a blob bucket.
package storage

import (
	"context"
	"io"
	"strings"

	"github.com/pkg/errors"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/gcsblob"
	_ "gocloud.dev/blob/memblob"

	"cafemeetup/config"
	"cafemeetup/internal/domain/service"
)

type photoStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
}

// NewPhotoStore opens the configured bucket. The bucket URL scheme selects
// the backend, e.g. "file://", "gs://" or "mem://".
func NewPhotoStore(ctx context.Context, cfg *config.Config) (service.PhotoStore, error) {
	if cfg.PhotoStorage == nil || cfg.PhotoStorage.BucketURL == "" {
		return nil, errors.New("photo storage bucket is not configured")
	}

	bucket, err := blob.OpenBucket(ctx, cfg.PhotoStorage.BucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open photo bucket")
	}

	return &photoStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PhotoStorage.PublicBaseURL, "/"),
	}, nil
}

// Upload writes the photo under a key derived from the user's email and
// returns the public URL to store on the profile. Re-uploading replaces the
// previous photo.
func (s *photoStore) Upload(ctx context.Context, email string, contentType string, body io.Reader) (string, error) {
	key := photoKey(email)

	writer, err := s.bucket.NewWriter(ctx, key, &blob.WriterOptions{ContentType: contentType})
	if err != nil {
		return "", errors.Wrap(err, "failed to open photo writer")
	}
	if _, err := io.Copy(writer, body); err != nil {
		_ = writer.Close()

		return "", errors.Wrap(err, "failed to write photo")
	}
	if err := writer.Close(); err != nil {
		return "", errors.Wrap(err, "failed to finish photo upload")
	}

	return s.publicBaseURL + "/" + key, nil
}

// Download reads the stored photo back.
func (s *photoStore) Download(ctx context.Context, email string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, photoKey(email))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read photo")
	}

	return data, nil
}

// Delete removes the stored photo.
func (s *photoStore) Delete(ctx context.Context, email string) error {
	if err := s.bucket.Delete(ctx, photoKey(email)); err != nil {
		return errors.Wrap(err, "failed to delete photo")
	}

	return nil
}

// Close releases the bucket handle.
func (s *photoStore) Close() error {
	return s.bucket.Close()
}

var keySanitizer = strings.NewReplacer("@", "_", ".", "_")

func photoKey(email string) string {
	return "profile/" + keySanitizer.Replace(strings.ToLower(email)) + ".jpg"
}
