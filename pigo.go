package facedetect

import (
	"encoding/binary"
	"fmt"
	"image"
	"math"
	"os"

	"github.com/esimov/facedetect/utils"
	pigo "github.com/esimov/pigo/core"
)

const (
	pigoMinSize      = 20
	pigoMaxSize      = 1000
	pigoShiftFactor  = 0.1
	pigoIoUThreshold = 0.2

	cascadeHeaderSize = 16
	cascadeMaxDepth   = 16
)

// PigoDetector detects faces with the pigo pixel intensity comparison cascade.
type PigoDetector struct {
	classifier *pigo.Pigo
	params     DetectorParams
}

// NewPigoDetector unpacks the binary cascade file found at cascadePath.
// Any failure wraps ErrCapability.
func NewPigoDetector(cascadePath string, params DetectorParams) (*PigoDetector, error) {
	cascadeFile, err := os.ReadFile(cascadePath)
	if err != nil {
		return nil, fmt.Errorf("%w: could not read the cascade file: %v", ErrCapability, err)
	}
	if err := checkCascade(cascadeFile); err != nil {
		return nil, fmt.Errorf("%w: %s is not a pigo cascade file: %v", ErrCapability, cascadePath, err)
	}

	// Unpack the binary file. This will return the number of cascade trees,
	// the tree depth, the threshold and the prediction from tree's leaf nodes.
	classifier, err := pigo.NewPigo().Unpack(cascadeFile)
	if err != nil {
		return nil, fmt.Errorf("%w: error unpacking the cascade file: %v", ErrCapability, err)
	}
	return &PigoDetector{classifier: classifier, params: params}, nil
}

// Detect runs the cascade over the frame and returns the clustered detections
// confirmed by at least MinNeighbors raw candidates.
func (d *PigoDetector) Detect(frame image.Image) ([]image.Rectangle, error) {
	cols, rows := frame.Bounds().Dx(), frame.Bounds().Dy()

	cParams := pigo.CascadeParams{
		MinSize:     pigoMinSize,
		MaxSize:     utils.Min(pigoMaxSize, utils.Max(cols, rows)),
		ShiftFactor: pigoShiftFactor,
		ScaleFactor: d.params.ScaleFactor,
		ImageParams: pigo.ImageParams{
			Pixels: grayPixels(frame),
			Rows:   rows,
			Cols:   cols,
			Dim:    cols,
		},
	}

	candidates := d.classifier.RunCascade(cParams, 0.0)
	clusters := d.classifier.ClusterDetections(append([]pigo.Detection(nil), candidates...), pigoIoUThreshold)

	rects := make([]image.Rectangle, 0, len(clusters))
	for _, c := range clusters {
		if neighbors(c, candidates) < d.params.MinNeighbors {
			continue
		}
		rects = append(rects, detectionRect(c))
	}
	return rects, nil
}

// Close is a no-op, the classifier holds no external resources.
func (d *PigoDetector) Close() error { return nil }

// checkCascade validates the cascade header against the file length.
// After an 8 byte preamble the file stores the tree depth and the number of
// trees as little endian uint32 values, followed by the trees. Each tree
// holds 4*2^depth-4 bytes of node codes, 2^depth float32 leaf predictions
// and a float32 threshold, that is 8*2^depth bytes.
func checkCascade(data []byte) error {
	if len(data) < cascadeHeaderSize {
		return fmt.Errorf("file too short (%d bytes)", len(data))
	}
	depth := binary.LittleEndian.Uint32(data[8:])
	trees := binary.LittleEndian.Uint32(data[12:])
	if depth == 0 || depth > cascadeMaxDepth {
		return fmt.Errorf("invalid tree depth %d", depth)
	}
	want := uint64(cascadeHeaderSize) + uint64(trees)*(8<<depth)
	if want != uint64(len(data)) {
		return fmt.Errorf("%d trees of depth %d need %d bytes, got %d", trees, depth, want, len(data))
	}
	return nil
}

// detectionRect converts the detection center and size into a rectangle.
func detectionRect(det pigo.Detection) image.Rectangle {
	half := det.Scale / 2
	return image.Rect(det.Col-half, det.Row-half, det.Col-half+det.Scale, det.Row-half+det.Scale)
}

// neighbors counts the raw candidates overlapping the cluster.
func neighbors(cluster pigo.Detection, candidates []pigo.Detection) int {
	n := 0
	for _, c := range candidates {
		if iou(cluster, c) > pigoIoUThreshold {
			n++
		}
	}
	return n
}

// iou returns the intersection over union of two square detections.
func iou(a, b pigo.Detection) float64 {
	r1, c1, s1 := float64(a.Row), float64(a.Col), float64(a.Scale)
	r2, c2, s2 := float64(b.Row), float64(b.Col), float64(b.Scale)

	overRow := math.Max(0, math.Min(r1+s1/2, r2+s2/2)-math.Max(r1-s1/2, r2-s2/2))
	overCol := math.Max(0, math.Min(c1+s1/2, c2+s2/2)-math.Max(c1-s1/2, c2-s2/2))

	union := s1*s1 + s2*s2 - overRow*overCol
	if union <= 0 {
		return 0
	}
	return overRow * overCol / union
}
