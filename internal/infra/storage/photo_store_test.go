package storage

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cafemeetup/config"
)

func newTestPhotoStore(t *testing.T) *photoStore {
	t.Helper()

	cfg := &config.Config{
		PhotoStorage: &config.PhotoStorageConfig{
			BucketURL:     "mem://",
			PublicBaseURL: "https://cdn.cafemeetup.test/",
		},
	}

	store, err := NewPhotoStore(t.Context(), cfg)
	require.NoError(t, err)

	ps, ok := store.(*photoStore)
	require.True(t, ok)
	t.Cleanup(func() { _ = ps.Close() })

	return ps
}

func TestPhotoStore_UploadAndDownload(t *testing.T) {
	t.Parallel()

	store := newTestPhotoStore(t)

	url, err := store.Upload(t.Context(), "Jamie@Example.com", "image/jpeg", strings.NewReader("jpeg-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.cafemeetup.test/profile/jamie_example_com.jpg", url)

	data, err := store.Download(t.Context(), "jamie@example.com")
	require.NoError(t, err)
	assert.Equal(t, "jpeg-bytes", string(data))
}

func TestPhotoStore_UploadReplacesExisting(t *testing.T) {
	t.Parallel()

	store := newTestPhotoStore(t)

	_, err := store.Upload(t.Context(), "sam@example.com", "image/jpeg", strings.NewReader("old"))
	require.NoError(t, err)
	_, err = store.Upload(t.Context(), "sam@example.com", "image/jpeg", strings.NewReader("new"))
	require.NoError(t, err)

	data, err := store.Download(t.Context(), "sam@example.com")
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}

func TestPhotoStore_Delete(t *testing.T) {
	t.Parallel()

	store := newTestPhotoStore(t)

	_, err := store.Upload(t.Context(), "sam@example.com", "image/jpeg", strings.NewReader("bytes"))
	require.NoError(t, err)
	require.NoError(t, store.Delete(t.Context(), "sam@example.com"))

	_, err = store.Download(t.Context(), "sam@example.com")
	assert.Error(t, err)
}

func TestNewPhotoStore_RequiresBucketURL(t *testing.T) {
	t.Parallel()

	_, err := NewPhotoStore(t.Context(), &config.Config{})
	assert.Error(t, err)
}
