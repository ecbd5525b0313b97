package facedetect

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

const ImgWidth = 10
const ImgHeight = 10

func TestGrayscale(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, ImgWidth, ImgHeight))
	for i := 0; i < img.Bounds().Dx(); i++ {
		for j := 0; j < img.Bounds().Dy(); j++ {
			img.Set(i, j, color.NRGBA{177, 177, 177, 255})
		}
	}

	gray := Grayscale(img)
	assert.Equal(t, img.Bounds(), gray.Bounds())
	assert.Len(t, gray.Pix, ImgWidth*ImgHeight)

	for i := 0; i < gray.Bounds().Dx(); i++ {
		for j := 0; j < gray.Bounds().Dy(); j++ {
			y := gray.GrayAt(i, j).Y
			assert.InDelta(t, 177, int(y), 1, "pixel (%d,%d)", i, j)
		}
	}
}

func TestGrayscale_KeepsGrayFrames(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, ImgWidth, ImgHeight))
	assert.Same(t, src, Grayscale(src))
}

func TestGrayscale_ShiftedBounds(t *testing.T) {
	src := image.NewGray(image.Rect(5, 5, 5+ImgWidth, 5+ImgHeight))
	src.SetGray(5, 5, color.Gray{Y: 200})

	gray := Grayscale(src)
	assert.Equal(t, image.Rect(0, 0, ImgWidth, ImgHeight), gray.Bounds())
	assert.Equal(t, uint8(200), gray.GrayAt(0, 0).Y)
}
