package sw64

import "errors"

var (
	// ErrDuplicateModel indicates the capability database declares the same
	// model name twice. The database is defective; the whole map build is
	// abandoned.
	ErrDuplicateModel = errors.New("CPU model already defined")

	// ErrMalformedCPUInfo indicates a "cpu variation" line in the host
	// information source is missing its value or carries an invalid one.
	ErrMalformedCPUInfo = errors.New("missing or invalid CPU variation")
)
