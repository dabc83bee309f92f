package editor

import "errors"

var (
	// ErrStartupIO is returned when the content source cannot be read
	// before the loop starts.
	ErrStartupIO = errors.New("startup I/O error")
	// ErrRenderIO is returned when a frame cannot be written.
	ErrRenderIO = errors.New("render I/O error")
	// ErrInputIO is returned when the next event cannot be read.
	ErrInputIO = errors.New("input I/O error")
)
