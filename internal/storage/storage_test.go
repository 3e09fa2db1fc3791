package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_SaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "http://localhost:8080/files/"})
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, s.Save(ctx, "avatars/u1/a.png", strings.NewReader("png"), "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "avatars", "u1", "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "png", string(data))

	url, err := s.GetURL(ctx, "avatars/u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/files/avatars/u1/a.png", url)

	require.NoError(t, s.Delete(ctx, "avatars/u1/a.png"))
	require.NoError(t, s.Delete(ctx, "avatars/u1/a.png"), "deleting a missing file is not an error")
}

func TestLocalStorage_PathStaysInsideBase(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(Config{BasePath: dir})
	require.NoError(t, err)

	require.NoError(t, s.Save(context.Background(), "../../escape.txt", strings.NewReader("x"), "text/plain"))
	_, err = os.Stat(filepath.Join(dir, "escape.txt"))
	assert.NoError(t, err)

	assert.Error(t, s.Save(context.Background(), "", strings.NewReader("x"), "text/plain"))
}

func TestLocalStorage_DefaultURL(t *testing.T) {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "/avatars/x.jpg")
	require.NoError(t, err)
	assert.Equal(t, "/files/avatars/x.jpg", url)
}

func TestNewStorage_UnknownType(t *testing.T) {
	_, err := NewStorage(context.Background(), Config{Type: "ftp"})
	assert.EqualError(t, err, "unsupported storage type: ftp")
}

func TestPublicBaseURL(t *testing.T) {
	assert.Equal(t, "https://cdn.example.com", publicBaseURL(Config{BaseURL: "https://cdn.example.com/"}, "auto"))
	assert.Equal(t, "http://minio:9000/avatars", publicBaseURL(Config{Endpoint: "http://minio:9000", Bucket: "avatars"}, "auto"))
	assert.Equal(t, "https://b.s3.eu-west-1.amazonaws.com", publicBaseURL(Config{Bucket: "b"}, "eu-west-1"))
}
