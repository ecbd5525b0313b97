package facedetect

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptions_ParseMode(t *testing.T) {
	for _, m := range Modes {
		got, err := ParseMode(string(m))
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}

	for _, s := range []string{"", "Webcam", "camera", "images"} {
		_, err := ParseMode(s)
		assert.ErrorIs(t, err, ErrInvalidMode, s)
	}
}

func TestOptions_RequiresPath(t *testing.T) {
	assert.True(t, Image.RequiresPath())
	assert.True(t, Video.RequiresPath())
	assert.False(t, Webcam.RequiresPath())
}

func TestOptions_CascadePath(t *testing.T) {
	assert.Equal(t, DefaultHaarCascade, Options{}.CascadePath())
	assert.Equal(t, DefaultHaarCascade, Options{Detector: Haar}.CascadePath())
	assert.Equal(t, DefaultPigoCascade, Options{Detector: Pigo}.CascadePath())
	assert.Equal(t, "custom.xml", Options{Detector: Pigo, Cascade: "custom.xml"}.CascadePath())
}

func TestOptions_WindowTitle(t *testing.T) {
	tests := []struct {
		mode Mode
		path string
		want string
	}{
		{Webcam, "", "webcam"},
		{Webcam, "ignored.jpg", "webcam"},
		{Image, "photos/family.jpg", "family"},
		{Image, "/tmp/archive.tar.gz", "archive"},
		{Video, "clips/.hidden", ".hidden"},
		{Video, "talk", "talk"},
		{Video, "", "video"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WindowTitle(tt.mode, tt.path), "%s %s", tt.mode, tt.path)
	}
}

func TestOptions_VerifyPath(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "face.jpg")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0644))

	assert.NoError(t, VerifyPath(file))
	assert.ErrorIs(t, VerifyPath(filepath.Join(dir, "none.jpg")), ErrBadPath)
	assert.ErrorIs(t, VerifyPath(dir), ErrBadPath)
}

func TestErrors_ExitCode(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{nil, ExitOK},
		{ErrInvalidMode, ExitMode},
		{ErrMissingPath, ExitNoPath},
		{ErrBadPath, ExitBadPath},
		{ErrDecode, ExitDecode},
		{ErrCapability, ExitCapability},
		{fmt.Errorf("wrapped: %w", ErrDecode), ExitDecode},
		{errors.New("unexpected"), ExitCapability},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExitCode(tt.err), "%v", tt.err)
	}
}
