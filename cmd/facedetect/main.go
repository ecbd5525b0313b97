package main

import (
	"context"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gioui.org/app"
	"github.com/esimov/facedetect"
	"github.com/esimov/facedetect/cv"
	"github.com/esimov/facedetect/gui"
	"github.com/esimov/facedetect/utils"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌─┐┌┬┐┌─┐┌┬┐┌─┐┌─┐┌┬┐
├┤ ├─┤│  ├┤  ││├┤  │ ├┤ │   │
└  ┴ ┴└─┘└─┘─┴┘└─┘ ┴ └─┘└─┘ ┴

Face detection in images, video files and webcam streams.
    Version: %s

`

// cascadeEnv names the environment variable overriding the default classifier location.
const cascadeEnv = "FACEDETECT_CASCADE"

// Supported display backends.
const (
	displayGio     = "gio"
	displayHighGUI = "highgui"
)

// Version indicates the current build version.
var Version = "dev"

func main() {
	log.SetFlags(0)

	// The Gio event loop must own the main goroutine, the
	// command runs next to it and terminates the process.
	go func() {
		os.Exit(run())
	}()
	app.Main()
}

// run executes the root command and returns the process exit code.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, utils.DecorateText(err.Error(), utils.ErrorMessage))
	}
	return facedetect.ExitCode(err)
}

func newRootCmd() *cobra.Command {
	var (
		opts     facedetect.Options
		detector string
		display  string
	)

	cmd := &cobra.Command{
		Use:           "facedetect",
		Short:         "Detect faces in images, video files and webcam streams",
		Long:          fmt.Sprintf(HelpBanner, Version),
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return fmt.Errorf("%w: unexpected arguments %v", facedetect.ErrInvalidMode, args)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch facedetect.DetectorKind(detector) {
			case facedetect.Haar, facedetect.Pigo:
				opts.Detector = facedetect.DetectorKind(detector)
			default:
				return fmt.Errorf("%w: unknown detector %q, options: [haar, pigo]", facedetect.ErrInvalidMode, detector)
			}
			if display != displayGio && display != displayHighGUI {
				return fmt.Errorf("%w: unknown display %q, options: [gio, highgui]", facedetect.ErrInvalidMode, display)
			}
			if opts.Cascade == "" {
				opts.Cascade = os.Getenv(cascadeEnv)
			}

			now := time.Now()
			err := facedetect.Dispatch(cmd.Context(), opts, newEnv(display, opts.Verbose))
			if err == nil && opts.Verbose {
				fmt.Fprintf(os.Stderr, "\nExecution time: %s\n",
					utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage))
			}
			return err
		},
	}
	cmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", facedetect.ErrInvalidMode, err)
	})

	flags := cmd.Flags()
	flags.StringVarP(&opts.Mode, "mode", "m", string(facedetect.Webcam), "Source mode: webcam, image or video")
	flags.StringVarP(&opts.Path, "path", "p", "", "Image or video file, or image URL")
	flags.IntVar(&opts.Device, "device", 0, "Camera device index used in webcam mode")
	flags.IntVar(&opts.MaxWidth, "max-width", facedetect.DefaultMaxWidth, "Maximum width of the displayed frame")
	flags.IntVar(&opts.MaxHeight, "max-height", facedetect.DefaultMaxHeight, "Maximum height of the displayed frame")
	flags.StringVar(&detector, "detector", string(facedetect.Haar), "Face detector: haar or pigo")
	flags.StringVar(&opts.Cascade, "cascade", "", "Cascade classifier file (default depends on the detector, or $"+cascadeEnv+")")
	flags.StringVar(&display, "display", displayGio, "Display backend: gio or highgui")
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "Log the detected faces of every frame")

	return cmd
}

// newEnv binds the pipeline collaborators to their concrete implementations.
func newEnv(display string, verbose bool) facedetect.Env {
	return facedetect.Env{
		LoadDetector: loadDetector,
		OpenImage: func(path string) (facedetect.FrameSource, error) {
			src, err := facedetect.OpenImage(path)
			if err != nil {
				return nil, err
			}
			return src, nil
		},
		OpenVideo: func(path string) (facedetect.FrameSource, error) {
			src, err := cv.OpenVideo(path)
			if err != nil {
				return nil, err
			}
			return src, nil
		},
		OpenCamera: func(device int) (facedetect.FrameSource, error) {
			src, err := cv.OpenCamera(device)
			if err != nil {
				return nil, err
			}
			return src, nil
		},
		NewDisplay: func(title string, width, height int) (facedetect.Display, error) {
			if display == displayHighGUI {
				return cv.NewWindow(title), nil
			}
			return gui.NewWindow(title, width, height), nil
		},
		Observe: func(m facedetect.Mode, src facedetect.FrameSource) func(int, []image.Rectangle) {
			return observer(m, src, verbose)
		},
	}
}

// loadDetector loads the cascade classifier of the selected backend,
// showing a spinner while it is being read.
func loadDetector(o facedetect.Options) (facedetect.FaceDetector, error) {
	if utils.IsTerminal(os.Stderr) {
		spinner := utils.NewSpinner(fmt.Sprintf("%s %s",
			utils.DecorateText("⚡ FACEDETECT", utils.StatusMessage),
			utils.DecorateText("is loading the cascade classifier...", utils.DefaultMessage)),
			time.Millisecond*100, true)
		spinner.StopMsg = fmt.Sprintf("%s %s\n",
			utils.DecorateText("⚡ FACEDETECT", utils.StatusMessage),
			utils.DecorateText("is loading the cascade classifier... ✔", utils.DefaultMessage))
		spinner.Start()
		defer spinner.Stop()
	}

	params := facedetect.DefaultDetectorParams
	if o.Detector == facedetect.Pigo {
		det, err := facedetect.NewPigoDetector(o.CascadePath(), params)
		if err != nil {
			return nil, err
		}
		return det, nil
	}
	det, err := cv.NewHaarDetector(o.CascadePath(), params.ScaleFactor, params.MinNeighbors)
	if err != nil {
		return nil, err
	}
	return det, nil
}

// observer returns the per frame callback: a progress bar for video files
// with a known length and, in verbose mode, a log line per frame.
func observer(m facedetect.Mode, src facedetect.FrameSource, verbose bool) func(int, []image.Rectangle) {
	var bar *progressbar.ProgressBar
	if m == facedetect.Video && !verbose && utils.IsTerminal(os.Stderr) {
		if c, ok := src.(interface{ FrameCount() int }); ok && c.FrameCount() > 0 {
			bar = progressbar.NewOptions(c.FrameCount(),
				progressbar.OptionSetDescription("🔍 Detecting faces"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
			)
		}
	}
	if bar == nil && !verbose {
		return nil
	}

	return func(n int, faces []image.Rectangle) {
		if bar != nil {
			bar.Add(1)
		}
		if verbose {
			log.Printf("frame %d: %d face(s) %v", n, len(faces), faces)
		}
	}
}
