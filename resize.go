package facedetect

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/esimov/facedetect/utils"
)

// FitBounds computes the dimensions of a width x height frame scaled down to
// fit inside maxWidth x maxHeight while keeping its aspect ratio.
// The height is checked before the width on every pass and the loop
// converges in at most two passes.
func FitBounds(width, height, maxWidth, maxHeight int) (int, int) {
	for height > maxHeight || width > maxWidth {
		if height > maxHeight {
			width = scaleDim(width, maxHeight, height)
			height = maxHeight
			continue
		}
		height = scaleDim(height, maxWidth, width)
		width = maxWidth
	}
	return width, height
}

// scaleDim returns round(dim * bound / current), never less than one pixel.
func scaleDim(dim, bound, current int) int {
	v := math.Round(float64(dim) * float64(bound) / float64(current))
	return utils.Max(int(v), 1)
}

// ResizeToBounds returns the source image unchanged if it already fits the
// bounds, otherwise a Lanczos resampled copy fitting inside them.
func ResizeToBounds(src image.Image, maxWidth, maxHeight int) image.Image {
	dx, dy := src.Bounds().Dx(), src.Bounds().Dy()
	w, h := FitBounds(dx, dy, maxWidth, maxHeight)
	if w == dx && h == dy {
		return src
	}
	return imaging.Resize(src, w, h, imaging.Lanczos)
}
