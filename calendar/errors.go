package calendar

import "errors"

var (
	// ErrDuplicateEvent is returned when an event with the same subject, start
	// and end is already stored.
	ErrDuplicateEvent = errors.New("duplicate event")
	// ErrUnsupportedCommand is returned by Apply for commands a single store
	// cannot carry out, such as calendar registry and copy commands.
	ErrUnsupportedCommand = errors.New("unsupported command")
)
