package cv

import (
	"image"
	"time"

	"github.com/esimov/facedetect"
	"github.com/esimov/facedetect/utils"
	"gocv.io/x/gocv"
)

// Window is a display backed by an OpenCV highgui window.
type Window struct {
	win *gocv.Window
}

// NewWindow opens a highgui window with the given title.
func NewWindow(title string) *Window {
	return &Window{win: gocv.NewWindow(title)}
}

// Show displays the frame.
func (w *Window) Show(frame image.Image) error {
	mat, err := toMat(frame)
	if err != nil {
		return err
	}
	defer mat.Close()

	w.win.IMShow(mat)
	return nil
}

// WaitKey waits up to d for a key press. A non-positive d waits forever.
// It returns facedetect.ErrDisplayClosed once the window has been closed.
func (w *Window) WaitKey(d time.Duration) (string, error) {
	delay := 0
	if d > 0 {
		delay = utils.Max(int(d.Milliseconds()), 1)
	}
	key := w.win.WaitKey(delay)
	if !w.win.IsOpen() {
		return "", facedetect.ErrDisplayClosed
	}
	return keyName(key), nil
}

// Close destroys the window.
func (w *Window) Close() error {
	return w.win.Close()
}

// keyName converts a highgui key code to its printable name.
func keyName(code int) string {
	if code < 0 {
		return ""
	}
	return string(rune(code & 0xff))
}
