package facedetect

import (
	"image"
	"image/color"
	"image/draw"
)

// Stroke describes how the face rectangles are drawn.
type Stroke struct {
	Color     color.Color
	Thickness int
}

// Strokes used for each mode.
var (
	ImageStroke  = Stroke{Color: color.Black, Thickness: 2}
	VideoStroke  = Stroke{Color: color.White, Thickness: 2}
	WebcamStroke = Stroke{Color: color.RGBA{R: 0, G: 255, B: 0, A: 255}, Thickness: 2}
)

// Annotate draws the border of every rectangle onto dst in place and returns it.
// The border grows inwards from the rectangle edges by the stroke thickness
// and is clipped to the image bounds.
func Annotate(dst draw.Image, rects []image.Rectangle, s Stroke) draw.Image {
	t := s.Thickness
	if t < 1 {
		t = 1
	}
	src := image.NewUniform(s.Color)
	for _, r := range rects {
		r = r.Canon()
		if r.Empty() {
			continue
		}
		for _, edge := range borderEdges(r, t) {
			edge = edge.Intersect(dst.Bounds())
			if edge.Empty() {
				continue
			}
			draw.Draw(dst, edge, src, image.Point{}, draw.Src)
		}
	}
	return dst
}

// borderEdges splits the border band of r into four non overlapping strips:
// top, bottom, left and right.
func borderEdges(r image.Rectangle, t int) []image.Rectangle {
	if 2*t >= r.Dx() || 2*t >= r.Dy() {
		return []image.Rectangle{r}
	}
	return []image.Rectangle{
		image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+t),
		image.Rect(r.Min.X, r.Max.Y-t, r.Max.X, r.Max.Y),
		image.Rect(r.Min.X, r.Min.Y+t, r.Min.X+t, r.Max.Y-t),
		image.Rect(r.Max.X-t, r.Min.Y+t, r.Max.X, r.Max.Y-t),
	}
}
