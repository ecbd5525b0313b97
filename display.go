package facedetect

import (
	"errors"
	"image"
	"time"
)

// ErrDisplayClosed is returned by WaitKey once the window has been closed by the user.
var ErrDisplayClosed = errors.New("display closed")

// Display shows frames in a window and reports key presses.
type Display interface {
	// Show replaces the displayed frame.
	Show(frame image.Image) error
	// WaitKey waits up to d for a key press and returns the key name, or an
	// empty string when none arrived in time. A non-positive d waits forever.
	WaitKey(d time.Duration) (string, error)
	Close() error
}
