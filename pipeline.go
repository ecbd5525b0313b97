package facedetect

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io"
	"log"
	"time"
)

// State is the lifecycle state of a Pipeline.
type State int

const (
	Starting State = iota
	Running
	Stopped
)

func (s State) String() string {
	switch s {
	case Starting:
		return "starting"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// StopKey is the key name which stops a continuous run.
const StopKey = "0"

// DefaultPollInterval is how long a continuous run waits for a key press after each frame.
const DefaultPollInterval = time.Millisecond

// Config holds the construction time settings of a Pipeline.
type Config struct {
	MaxWidth  int
	MaxHeight int
	Stroke    Stroke
	// Grayscale converts every frame to a single channel before detection.
	Grayscale    bool
	PollInterval time.Duration
	StopKey      string
	// OnFrame, if set, is called after every displayed frame with the
	// number of frames shown so far and the detected faces.
	OnFrame func(n int, faces []image.Rectangle)
}

// ConfigFor returns the pipeline configuration used for the given mode.
func ConfigFor(m Mode, maxWidth, maxHeight int) Config {
	cfg := Config{
		MaxWidth:     maxWidth,
		MaxHeight:    maxHeight,
		PollInterval: DefaultPollInterval,
		StopKey:      StopKey,
	}
	switch m {
	case Image:
		cfg.Stroke = ImageStroke
	case Video:
		cfg.Stroke = VideoStroke
		cfg.Grayscale = true
	default:
		cfg.Stroke = WebcamStroke
	}
	return cfg
}

// Validate checks the bounds and fills in unset defaults.
func (c *Config) Validate() error {
	if c.MaxWidth <= 0 || c.MaxHeight <= 0 {
		return fmt.Errorf("%w: bounds must be positive, got %dx%d", ErrInvalidMode, c.MaxWidth, c.MaxHeight)
	}
	if c.PollInterval <= 0 {
		c.PollInterval = DefaultPollInterval
	}
	if c.StopKey == "" {
		c.StopKey = StopKey
	}
	if c.Stroke.Color == nil {
		c.Stroke = WebcamStroke
	}
	return nil
}

// Pipeline reads frames from a source, fits them to the configured bounds,
// detects the faces, draws them and shows the result. It takes ownership of
// the source and the display and releases both when it stops.
type Pipeline struct {
	cfg  Config
	src  FrameSource
	det  FaceDetector
	disp Display

	state    State
	frames   int
	released bool
}

// NewPipeline creates a pipeline in the Starting state.
func NewPipeline(cfg Config, src FrameSource, det FaceDetector, disp Display) (*Pipeline, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if src == nil || det == nil || disp == nil {
		return nil, errors.New("pipeline requires a frame source, a detector and a display")
	}
	return &Pipeline{
		cfg:   cfg,
		src:   src,
		det:   det,
		disp:  disp,
		state: Starting,
	}, nil
}

// State returns the current lifecycle state.
func (p *Pipeline) State() State { return p.state }

// Frames returns the number of frames displayed so far.
func (p *Pipeline) Frames() int { return p.frames }

// RunOnce processes a single frame, shows it and blocks until a key is
// pressed or the window is closed.
func (p *Pipeline) RunOnce() error {
	defer p.stop()

	frame, err := p.src.Read()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	p.state = Running

	if err := p.process(frame); err != nil {
		if errors.Is(err, ErrDisplayClosed) {
			return nil
		}
		return err
	}
	if _, err := p.disp.WaitKey(0); err != nil && !errors.Is(err, ErrDisplayClosed) {
		return err
	}
	return nil
}

// RunLoop processes frames until the source is exhausted, the stop key is
// pressed, the window is closed or ctx is cancelled. Cancellation is
// checked once per frame.
func (p *Pipeline) RunLoop(ctx context.Context) error {
	defer p.stop()
	p.state = Running

	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		frame, err := p.src.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("frame source stopped: %v", err)
			}
			return nil
		}
		if err := p.process(frame); err != nil {
			if errors.Is(err, ErrDisplayClosed) {
				return nil
			}
			return err
		}

		key, err := p.disp.WaitKey(p.cfg.PollInterval)
		if errors.Is(err, ErrDisplayClosed) {
			return nil
		}
		if err != nil {
			return err
		}
		if key == p.cfg.StopKey {
			return nil
		}
	}
}

// process runs one resize, detect, annotate and display cycle.
func (p *Pipeline) process(frame image.Image) error {
	resized := ResizeToBounds(frame, p.cfg.MaxWidth, p.cfg.MaxHeight)

	var canvas draw.Image
	if p.cfg.Grayscale {
		canvas = Grayscale(resized)
	} else {
		canvas = toNRGBA(resized)
	}

	faces, err := p.det.Detect(canvas)
	if err != nil {
		return fmt.Errorf("face detection failed: %w", err)
	}
	Annotate(canvas, faces, p.cfg.Stroke)

	if err := p.disp.Show(canvas); err != nil {
		return fmt.Errorf("could not display the frame: %w", err)
	}
	p.frames++

	if p.cfg.OnFrame != nil {
		p.cfg.OnFrame(p.frames, faces)
	}
	return nil
}

// stop releases the source and the display exactly once.
func (p *Pipeline) stop() {
	p.state = Stopped
	if p.released {
		return
	}
	p.released = true

	if err := p.src.Close(); err != nil {
		log.Printf("could not release the frame source: %v", err)
	}
	if err := p.disp.Close(); err != nil {
		log.Printf("could not close the display: %v", err)
	}
}
