package facedetect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Mode selects the source the faces are detected in.
type Mode string

const (
	Webcam Mode = "webcam"
	Image  Mode = "image"
	Video  Mode = "video"
)

// Modes lists the recognized modes in the order they are shown to the user.
var Modes = []Mode{Webcam, Image, Video}

// DetectorKind selects the face detection backend.
type DetectorKind string

const (
	Haar DetectorKind = "haar"
	Pigo DetectorKind = "pigo"
)

// Default option values.
const (
	DefaultMaxWidth    = 800
	DefaultMaxHeight   = 600
	DefaultHaarCascade = "data/haarcascade_frontalface_default.xml"
	DefaultPigoCascade = "data/facefinder"
)

// Options holds the user provided run configuration.
type Options struct {
	Mode      string
	Path      string
	Device    int
	MaxWidth  int
	MaxHeight int
	Detector  DetectorKind
	Cascade   string
	Verbose   bool
}

// ParseMode validates the mode string.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if string(m) == s {
			return m, nil
		}
	}
	return "", fmt.Errorf("%w %q: options: %v", ErrInvalidMode, s, Modes)
}

// RequiresPath reports whether the mode reads from a file.
func (m Mode) RequiresPath() bool {
	return m == Image || m == Video
}

// CascadePath returns the classifier resource to load, falling back to
// the default location of the selected backend.
func (o Options) CascadePath() string {
	if o.Cascade != "" {
		return o.Cascade
	}
	if o.Detector == Pigo {
		return DefaultPigoCascade
	}
	return DefaultHaarCascade
}

// VerifyPath checks that the path exists and can be opened for reading.
func VerifyPath(path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s", ErrBadPath, path)
	}
	if fi.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrBadPath, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", ErrBadPath, path, err)
	}
	return f.Close()
}

// WindowTitle returns the display window title: the file name without
// directory and extension for file based modes, the mode name otherwise.
func WindowTitle(m Mode, path string) string {
	if !m.RequiresPath() || path == "" {
		return string(m)
	}
	base := filepath.Base(path)
	if i := strings.Index(base, "."); i > 0 {
		base = base[:i]
	}
	return base
}
