package cv

import (
	"fmt"
	"image"
	"os"

	"gocv.io/x/gocv"
)

// HaarDetector detects faces with an OpenCV Haar cascade classifier.
type HaarDetector struct {
	classifier   gocv.CascadeClassifier
	scaleFactor  float64
	minNeighbors int
}

// NewHaarDetector loads the cascade definition found at path.
func NewHaarDetector(path string, scaleFactor float64, minNeighbors int) (*HaarDetector, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("cascade file %q not found: %w", path, err)
	}
	classifier := gocv.NewCascadeClassifier()
	if !classifier.Load(path) {
		classifier.Close()
		return nil, fmt.Errorf("error loading cascade file %q", path)
	}
	return &HaarDetector{
		classifier:   classifier,
		scaleFactor:  scaleFactor,
		minNeighbors: minNeighbors,
	}, nil
}

// Detect returns the faces found in the frame.
func (d *HaarDetector) Detect(frame image.Image) ([]image.Rectangle, error) {
	mat, err := toMat(frame)
	if err != nil {
		return nil, err
	}
	defer mat.Close()

	return d.classifier.DetectMultiScaleWithParams(
		mat,
		d.scaleFactor, d.minNeighbors, 0,
		image.Point{}, image.Point{},
	), nil
}

// Close releases the classifier.
func (d *HaarDetector) Close() error {
	return d.classifier.Close()
}

// toMat converts a frame into a BGR or single channel matrix.
func toMat(frame image.Image) (gocv.Mat, error) {
	var (
		mat gocv.Mat
		err error
	)
	if gray, ok := frame.(*image.Gray); ok {
		mat, err = gocv.ImageGrayToMatGray(gray)
	} else {
		mat, err = gocv.ImageToMatRGB(frame)
	}
	if err != nil {
		return mat, fmt.Errorf("could not convert the frame: %w", err)
	}
	return mat, nil
}
