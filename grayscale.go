package facedetect

import (
	"image"

	pigo "github.com/esimov/pigo/core"
)

// Grayscale converts the frame to a single channel image with its
// min-point at (0, 0). Gray frames already anchored at the origin are
// returned as they are.
func Grayscale(src image.Image) *image.Gray {
	if g, ok := src.(*image.Gray); ok && g.Rect.Min == (image.Point{}) {
		return g
	}
	img := toNRGBA(src)
	dx, dy := img.Bounds().Dx(), img.Bounds().Dy()

	return &image.Gray{
		Pix:    pigo.RgbToGrayscale(img),
		Stride: dx,
		Rect:   image.Rect(0, 0, dx, dy),
	}
}

// grayPixels returns the luminance values of the frame as a one
// dimensional array, the layout expected by the pigo classifier.
func grayPixels(src image.Image) []uint8 {
	return Grayscale(src).Pix
}
