package cv

import (
	"errors"
	"fmt"
	"image"
	"io"

	"gocv.io/x/gocv"
)

// Capture is a frame source backed by an OpenCV video capture: either a
// video file or a camera device.
type Capture struct {
	vc   *gocv.VideoCapture
	mat  gocv.Mat
	name string
}

// OpenVideo opens a video file for reading.
func OpenVideo(path string) (*Capture, error) {
	vc, err := gocv.VideoCaptureFile(path)
	if err != nil {
		return nil, fmt.Errorf("error opening video file %s: %w", path, err)
	}
	return newCapture(vc, path)
}

// OpenCamera opens the camera with the given device id.
func OpenCamera(device int) (*Capture, error) {
	vc, err := gocv.VideoCaptureDevice(device)
	if err != nil {
		return nil, fmt.Errorf("error opening camera device %d: %w", device, err)
	}
	return newCapture(vc, fmt.Sprintf("device %d", device))
}

// newCapture checks the opened status explicitly, constructing the
// capture handle succeeds even for files OpenCV cannot read.
func newCapture(vc *gocv.VideoCapture, name string) (*Capture, error) {
	if !vc.IsOpened() {
		vc.Close()
		return nil, fmt.Errorf("capture %s could not be opened", name)
	}
	return &Capture{vc: vc, mat: gocv.NewMat(), name: name}, nil
}

// Read grabs the next frame. It returns io.EOF when no frame is available.
func (c *Capture) Read() (image.Image, error) {
	if c.vc == nil {
		return nil, io.EOF
	}
	if ok := c.vc.Read(&c.mat); !ok || c.mat.Empty() {
		return nil, io.EOF
	}
	img, err := c.mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("could not convert the frame of %s: %w", c.name, err)
	}
	return img, nil
}

// FrameCount returns the number of frames reported by the container,
// or zero when unknown (cameras, streams).
func (c *Capture) FrameCount() int {
	if c.vc == nil {
		return 0
	}
	n := int(c.vc.Get(gocv.VideoCaptureFrameCount))
	if n < 0 {
		return 0
	}
	return n
}

// Close releases the capture device and the frame buffer.
func (c *Capture) Close() error {
	if c.vc == nil {
		return nil
	}
	err := errors.Join(c.mat.Close(), c.vc.Close())
	c.vc = nil
	return err
}
