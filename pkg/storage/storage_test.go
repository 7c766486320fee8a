package storage_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saurav-S-Mehta-07/RetailEdge/config"
	"github.com/Saurav-S-Mehta-07/RetailEdge/pkg/storage"
)

func connectLocal(t *testing.T) {
	t.Helper()
	config.Set("STORAGE_DISK", "local")
	config.Set("STORAGE_LOCAL_ROOT", t.TempDir())
	config.Set("STORAGE_URL", "http://localhost:8080/storage")
	storage.Connect()
}

func TestLocalDiskRoundTrip(t *testing.T) {
	connectLocal(t)

	require.NoError(t, storage.Put("listings/photo.jpg", []byte("image-bytes")))
	assert.True(t, storage.Exists("listings/photo.jpg"))

	data, err := storage.Get("listings/photo.jpg")
	require.NoError(t, err)
	assert.Equal(t, []byte("image-bytes"), data)

	require.NoError(t, storage.Delete("listings/photo.jpg"))
	assert.False(t, storage.Exists("listings/photo.jpg"))
}

func TestLocalDiskStream(t *testing.T) {
	connectLocal(t)

	require.NoError(t, storage.PutStream("listings/upload.png", bytes.NewReader([]byte("streamed"))))

	rc, err := storage.GetStream("listings/upload.png")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "streamed", string(data))
}

func TestLocalDiskURL(t *testing.T) {
	connectLocal(t)
	assert.Equal(t, "http://localhost:8080/storage/listings/photo.jpg", storage.URL("listings/photo.jpg"))
}

func TestDeleteMissingIsNoError(t *testing.T) {
	connectLocal(t)
	assert.NoError(t, storage.Delete("listings/nope.jpg"))
}

func TestGetMissing(t *testing.T) {
	connectLocal(t)
	_, err := storage.Get("listings/nope.jpg")
	assert.Error(t, err)
}
