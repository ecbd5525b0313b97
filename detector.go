package facedetect

import "image"

// FaceDetector returns the face rectangles found in a frame, in the
// coordinate space of that frame. Implementations are stateless per call.
type FaceDetector interface {
	Detect(frame image.Image) ([]image.Rectangle, error)
	Close() error
}

// DetectorParams holds the tunables shared by the detection backends.
type DetectorParams struct {
	// ScaleFactor is the ratio the search window changes by between passes.
	ScaleFactor float64
	// MinNeighbors is the number of overlapping candidates needed to accept a face.
	MinNeighbors int
}

// DefaultDetectorParams are the detection parameters used by every mode.
var DefaultDetectorParams = DetectorParams{
	ScaleFactor:  1.05,
	MinNeighbors: 5,
}
