package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadAndDelete(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir(), "/images")
	require.NoError(t, err)

	url, err := store.Upload([]byte("jpeg bytes"), "user-1", "entry-1")
	require.NoError(t, err)
	assert.Equal(t, "/images/user-1/entry-1.jpg", url)

	data, err := os.ReadFile(filepath.Join(store.Dir(), "user-1", "entry-1.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("jpeg bytes"), data)

	require.NoError(t, store.Delete(url))
	_, err = os.Stat(filepath.Join(store.Dir(), "user-1", "entry-1.jpg"))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteIgnoresForeignURLs(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir(), "/images")
	require.NoError(t, err)

	assert.NoError(t, store.Delete("https://cdn.example.com/some/photo.jpg"))
}

func TestDeleteMissingFileIsNoError(t *testing.T) {
	store, err := NewPhotoStore(t.TempDir(), "/images")
	require.NoError(t, err)

	assert.NoError(t, store.Delete("/images/user-1/gone.jpg"))
}

func TestDeleteRejectsPathEscape(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPhotoStore(filepath.Join(dir, "photos"), "/images")
	require.NoError(t, err)

	outside := filepath.Join(dir, "secret.txt")
	require.NoError(t, os.WriteFile(outside, []byte("x"), 0o644))

	require.NoError(t, store.Delete("/images/../secret.txt"))
	_, err = os.Stat(outside)
	assert.NoError(t, err)
}
