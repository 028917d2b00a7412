package cpu

import "errors"

var (
	// ErrUnknownArch is returned when no driver is registered for the
	// requested architecture.
	ErrUnknownArch = errors.New("unknown CPU architecture")

	// ErrUnknownHostModel is returned when an operation needs host CPU data
	// and none was supplied. This is a configuration problem for the caller
	// to fix, not a transient condition.
	ErrUnknownHostModel = errors.New("unknown host CPU model")

	// ErrNotSupported is returned for operations an architecture does not
	// define at all, as opposed to operations that merely failed.
	ErrNotSupported = errors.New("operation not supported by this architecture")
)
