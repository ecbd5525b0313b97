package utils

import (
	"bytes"
	"image"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtils_ShouldDownloadImage(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 8, 8))))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/sample.png":
			w.Write(buf.Bytes())
		case "/readme.txt":
			w.Write([]byte("plain text, no pixels here"))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	t.Run("image", func(t *testing.T) {
		name, err := DownloadImage(srv.URL + "/sample.png")
		require.NoError(t, err)
		defer os.Remove(name)

		assert.Equal(t, ".png", filepath.Ext(name))
		assert.True(t, strings.HasPrefix(filepath.Base(name), "facedetect-"))
	})
	t.Run("not an image", func(t *testing.T) {
		_, err := DownloadImage(srv.URL + "/readme.txt")
		assert.Error(t, err)
	})
	t.Run("missing", func(t *testing.T) {
		_, err := DownloadImage(srv.URL + "/missing.png")
		assert.Error(t, err)
	})
}

func TestUtils_ShouldBeValidUrl(t *testing.T) {
	assert.True(t, IsValidUrl("https://github.com/esimov/facedetect/"))
	assert.True(t, IsValidUrl("http://localhost:8080/face.jpg"))
	assert.False(t, IsValidUrl("testdata/face.jpg"))
	assert.False(t, IsValidUrl("/tmp/face.jpg"))
	assert.False(t, IsValidUrl("ftp://example.com/face.jpg"))
}

func TestUtils_ShouldDetectValidFileType(t *testing.T) {
	dir := t.TempDir()
	sampleImg := filepath.Join(dir, "sample.png")

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4))))
	require.NoError(t, os.WriteFile(sampleImg, buf.Bytes(), 0644))

	ftype, err := DetectContentType(sampleImg)
	require.NoError(t, err)
	assert.Equal(t, "image/png", ftype)
}
