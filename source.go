package facedetect

import (
	"image"
	"io"
)

// FrameSource yields successive frames. Read returns io.EOF once the
// source is exhausted; any other read error ends a continuous run the
// same way.
type FrameSource interface {
	Read() (image.Image, error)
	Close() error
}

// ImageSource is a FrameSource holding a single decoded still image.
type ImageSource struct {
	img  *image.NRGBA
	read bool
}

// OpenImage decodes the image file at path. The returned error wraps
// ErrDecode when the file is not a decodable image.
func OpenImage(path string) (*ImageSource, error) {
	img, err := decodeFrame(path)
	if err != nil {
		return nil, err
	}
	return &ImageSource{img: img}, nil
}

// Read returns the image on the first call and io.EOF afterwards.
func (s *ImageSource) Read() (image.Image, error) {
	if s.read || s.img == nil {
		return nil, io.EOF
	}
	s.read = true
	return s.img, nil
}

// Close releases the decoded image.
func (s *ImageSource) Close() error {
	s.img = nil
	return nil
}
