package logwriter

import "errors"

var (
	// ErrInvalidArgument is returned by New when the logger or level is unusable.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrClosed is returned by writes after Close.
	ErrClosed = errors.New("the stream has been closed")
)
