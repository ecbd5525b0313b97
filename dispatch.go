package facedetect

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"os"

	"github.com/esimov/facedetect/utils"
)

// Env provides the external collaborators used by Dispatch. Every
// constructor may fail; the returned errors are mapped to exit codes.
type Env struct {
	LoadDetector func(o Options) (FaceDetector, error)
	OpenImage    func(path string) (FrameSource, error)
	OpenVideo    func(path string) (FrameSource, error)
	OpenCamera   func(device int) (FrameSource, error)
	NewDisplay   func(title string, width, height int) (Display, error)
	// Observe optionally returns a callback invoked after every displayed frame.
	Observe func(m Mode, src FrameSource) func(n int, faces []image.Rectangle)
}

// Dispatch validates the options, acquires the frame source, the detector
// and the display for the requested mode, then runs the pipeline until it
// stops. The returned error can be converted with ExitCode.
func Dispatch(ctx context.Context, opts Options, env Env) error {
	mode, err := ParseMode(opts.Mode)
	if err != nil {
		return err
	}

	path := opts.Path
	if mode.RequiresPath() {
		if path == "" {
			return fmt.Errorf("%w: please provide a path for image or video when mode is set to [image, video]", ErrMissingPath)
		}
		if mode == Image && utils.IsValidUrl(path) {
			tmp, err := utils.DownloadImage(path)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrBadPath, err)
			}
			defer os.Remove(tmp)
			path = tmp
		}
		if err := VerifyPath(path); err != nil {
			return err
		}
	}

	cfg := ConfigFor(mode, opts.MaxWidth, opts.MaxHeight)
	if err := cfg.Validate(); err != nil {
		return err
	}

	det, err := env.LoadDetector(opts)
	if err != nil {
		return wrapErr(ErrCapability, "could not load the face detector", err)
	}
	defer func() {
		if err := det.Close(); err != nil {
			log.Printf("could not release the face detector: %v", err)
		}
	}()

	src, err := openSource(mode, path, opts.Device, env)
	if err != nil {
		return err
	}

	disp, err := env.NewDisplay(WindowTitle(mode, opts.Path), cfg.MaxWidth, cfg.MaxHeight)
	if err != nil {
		src.Close()
		return wrapErr(ErrCapability, "could not open the display", err)
	}

	if env.Observe != nil {
		cfg.OnFrame = env.Observe(mode, src)
	}

	p, err := NewPipeline(cfg, src, det, disp)
	if err != nil {
		src.Close()
		disp.Close()
		return err
	}

	if mode == Image {
		return p.RunOnce()
	}
	return p.RunLoop(ctx)
}

// openSource opens the frame source of the mode. File sources which fail
// to open are reported as decode errors, an unavailable camera as a
// missing capability.
func openSource(mode Mode, path string, device int, env Env) (FrameSource, error) {
	switch mode {
	case Image:
		src, err := env.OpenImage(path)
		if err != nil {
			return nil, wrapErr(ErrDecode, "could not decode "+path, err)
		}
		return src, nil
	case Video:
		src, err := env.OpenVideo(path)
		if err != nil {
			return nil, wrapErr(ErrDecode, "could not open "+path, err)
		}
		return src, nil
	default:
		src, err := env.OpenCamera(device)
		if err != nil {
			return nil, wrapErr(ErrCapability, fmt.Sprintf("could not open camera device %d", device), err)
		}
		return src, nil
	}
}

// wrapErr attaches the sentinel to err unless err already carries it.
func wrapErr(sentinel error, msg string, err error) error {
	if errors.Is(err, sentinel) {
		return fmt.Errorf("%s: %w", msg, err)
	}
	return fmt.Errorf("%w: %s: %v", sentinel, msg, err)
}
