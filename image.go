package facedetect

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/facedetect/utils"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// decodeFrame decodes an image file into a frame anchored at the origin.
// The EXIF orientation tag is applied, so photos taken in portrait mode are
// shown upright.
func decodeFrame(path string) (*image.NRGBA, error) {
	ctype, err := utils.DetectContentType(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if !strings.Contains(ctype, "image") {
		return nil, fmt.Errorf("%w: %s is not an image file (%s)", ErrDecode, path, ctype)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	return toNRGBA(img), nil
}

// toNRGBA converts any image type to *image.NRGBA with min-point at (0, 0).
// NRGBA images already anchored at the origin are returned as they are.
func toNRGBA(img image.Image) *image.NRGBA {
	if src, ok := img.(*image.NRGBA); ok && src.Rect.Min == (image.Point{}) {
		return src
	}
	return imaging.Clone(img)
}
