// Package gui implements the Gio window used to display the annotated frames.
package gui

import (
	"image"
	"sync"
	"time"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"github.com/esimov/facedetect"
)

const (
	maxScreenX = 1366
	maxScreenY = 768
)

// closeTimeout bounds the wait for the window to be destroyed on Close.
const closeTimeout = 2 * time.Second

// Window is a Gio window receiving the frames to show through a channel.
// The Gio event loop runs in its own goroutine; app.Main must be called
// from the main goroutine of the program.
type Window struct {
	win    *app.Window
	frames chan image.Image
	keys   chan string
	done   chan struct{}
	once   sync.Once
}

// NewWindow creates a window sized for width x height frames, scaled down
// to fit the screen if needed.
func NewWindow(title string, width, height int) *Window {
	w, h := windowSize(width, height)
	gw := &Window{
		win: app.NewWindow(
			app.Title(title),
			app.Size(unit.Dp(w), unit.Dp(h)),
		),
		frames: make(chan image.Image),
		keys:   make(chan string, 16),
		done:   make(chan struct{}),
	}
	go gw.run()

	return gw
}

// windowSize returns the window dimension maintaining the aspect ratio in
// case the frame is larger than the predefined screen.
func windowSize(width, height int) (int, int) {
	return facedetect.FitBounds(width, height, maxScreenX, maxScreenY)
}

// Show hands the frame over to the event loop and schedules a redraw.
func (w *Window) Show(frame image.Image) error {
	select {
	case w.frames <- frame:
		return nil
	case <-w.done:
		return facedetect.ErrDisplayClosed
	}
}

// WaitKey waits up to d for a key press. A non-positive d waits forever.
func (w *Window) WaitKey(d time.Duration) (string, error) {
	var timeout <-chan time.Time
	if d > 0 {
		t := time.NewTimer(d)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case k := <-w.keys:
		return k, nil
	case <-w.done:
		return "", facedetect.ErrDisplayClosed
	case <-timeout:
		return "", nil
	}
}

// Close asks the window to close and waits until it is destroyed.
func (w *Window) Close() error {
	w.once.Do(func() {
		w.win.Perform(system.ActionClose)
	})
	select {
	case <-w.done:
	case <-time.After(closeTimeout):
	}
	return nil
}

// run the Gio event loop until a DestroyEvent is captured.
func (w *Window) run() {
	defer close(w.done)

	var (
		ops op.Ops
		src paint.ImageOp
		img image.Image
	)
	events := w.win.Events()

	for {
		select {
		case e := <-events:
			switch e := e.(type) {
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				for _, ev := range gtx.Events(w) {
					if ke, ok := ev.(key.Event); ok {
						w.keyPressed(ke)
					}
				}
				// Register as the top-most key handler, this way every
				// key press not consumed by Gio itself is delivered to us.
				key.InputOp{Tag: w}.Add(gtx.Ops)

				if img != nil {
					widget.Image{
						Src:   src,
						Fit:   widget.Contain,
						Scale: 1 / gtx.Metric.PxPerDp,
					}.Layout(gtx)
				}
				e.Frame(gtx.Ops)
			case key.Event:
				w.keyPressed(e)
			case system.DestroyEvent:
				return
			}
		case img = <-w.frames:
			src = paint.NewImageOp(img)
			w.win.Invalidate()
		}
	}
}

// keyPressed queues the key name, dropping it if nobody is reading.
func (w *Window) keyPressed(e key.Event) {
	if e.State != key.Press {
		return
	}
	select {
	case w.keys <- e.Name:
	default:
	}
}
