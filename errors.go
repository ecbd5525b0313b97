package facedetect

import "errors"

// Exit codes reported by the command line tool.
const (
	ExitOK         = 0
	ExitCapability = 1
	ExitMode       = 2
	ExitNoPath     = 3
	ExitBadPath    = 4
	ExitDecode     = 404
)

var (
	// ErrCapability signals that a required external capability
	// (classifier resource, capture backend) is not available.
	ErrCapability = errors.New("required capability unavailable")
	// ErrInvalidMode is returned for an unrecognized mode or an invalid run option.
	ErrInvalidMode = errors.New("invalid mode")
	// ErrMissingPath is returned when a file based mode is invoked without a path.
	ErrMissingPath = errors.New("missing path")
	// ErrBadPath is returned when the path does not exist or cannot be read.
	ErrBadPath = errors.New("invalid path")
	// ErrDecode is returned when the frame source cannot decode or open the file.
	ErrDecode = errors.New("could not decode source")
)

// ExitCode maps an error returned by Dispatch to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrInvalidMode):
		return ExitMode
	case errors.Is(err, ErrMissingPath):
		return ExitNoPath
	case errors.Is(err, ErrBadPath):
		return ExitBadPath
	case errors.Is(err, ErrDecode):
		return ExitDecode
	default:
		return ExitCapability
	}
}
