package cpu

import (
	"context"
	"fmt"

	"github.com/vk/cpucaps/internal/cpudef"
)

// CompareResult is the outcome of comparing a guest CPU request against a
// host CPU definition.
type CompareResult int

const (
	// CompareIncompatible means the guest cannot run on the host.
	CompareIncompatible CompareResult = iota
	// CompareIdentical means the two definitions describe the same CPU.
	CompareIdentical
	// CompareSuperset means the host offers strictly more than the guest asks.
	CompareSuperset
)

var compareNames = map[CompareResult]string{
	CompareIncompatible: "incompatible",
	CompareIdentical:    "identical",
	CompareSuperset:     "superset",
}

func (r CompareResult) String() string {
	if name, ok := compareNames[r]; ok {
		return name
	}
	return fmt.Sprintf("compare(%d)", int(r))
}

// Driver is the operation set an architecture-specific CPU capability
// provider implements.
//
// Architectures that define no feature-level semantics report
// ErrNotSupported from Decode, Encode, and Baseline; callers must treat
// that as "architecturally absent", not as "unimplemented so far".
type Driver interface {
	// Name returns the architecture this driver serves.
	Name() string

	// GetHost detects the CPU model of the physical host and writes it into
	// the supplied definition. The definition mutation is the primary
	// result; fields the architecture cannot determine are left unset.
	GetHost(ctx context.Context, def *cpudef.CPUDef) error

	// Compare decides whether the guest request can run on the host CPU.
	Compare(ctx context.Context, host, guest *cpudef.CPUDef) (CompareResult, error)

	// Update rewrites a guest definition that inherits from the host into a
	// concrete specification. It mutates guest in place on success and
	// leaves it untouched on failure.
	Update(ctx context.Context, guest *cpudef.CPUDef, host *cpudef.CPUDef, relative bool) error

	// Models lists the model names declared for this architecture, in
	// declaration order.
	Models(ctx context.Context) ([]string, error)

	// Decode derives a CPU definition from raw architecture-specific
	// capability data.
	Decode(ctx context.Context, def *cpudef.CPUDef, data []byte) error

	// Encode serializes a CPU definition into raw architecture-specific
	// capability data.
	Encode(ctx context.Context, def *cpudef.CPUDef) ([]byte, error)

	// Baseline computes a CPU definition every supplied host can run.
	Baseline(ctx context.Context, defs []*cpudef.CPUDef) (*cpudef.CPUDef, error)
}
