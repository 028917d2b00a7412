package sw64

import (
	"context"
	"fmt"

	"github.com/vk/cpucaps/internal/cpu"
	"github.com/vk/cpucaps/internal/cpudef"
	"github.com/vk/cpucaps/internal/ctxlog"
)

const (
	archName = "sw64"

	// defaultCPUInfoPath is where the kernel exposes the processor
	// description this provider parses.
	defaultCPUInfoPath = "/proc/cpuinfo"

	// defaultMapDir is where the capability database is installed.
	defaultMapDir = "/usr/share/cpucaps/cpumap"
)

// Driver implements cpu.Driver for SW64. It holds no mutable state; the
// model map is rebuilt from the capability database on each operation that
// needs it, so callers wanting a cache must hold one themselves.
type Driver struct {
	cpuinfoPath string
	mapDir      string
}

// Option adjusts a Driver, primarily so tests can point it at fixture files.
type Option func(*Driver)

// WithCPUInfoPath overrides the host information source.
func WithCPUInfoPath(path string) Option {
	return func(d *Driver) { d.cpuinfoPath = path }
}

// WithMapDir overrides the capability database directory.
func WithMapDir(dir string) Option {
	return func(d *Driver) { d.mapDir = dir }
}

// New creates the SW64 provider.
func New(opts ...Option) *Driver {
	d := &Driver{
		cpuinfoPath: defaultCPUInfoPath,
		mapDir:      defaultMapDir,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name returns the architecture this driver serves.
func (d *Driver) Name() string {
	return archName
}

// GetHost resolves the host's model from its variation code and writes it
// into def. An unknown or absent variation code leaves the model unset and
// still succeeds; only an unreadable source or a malformed variation line
// fails.
func (d *Driver) GetHost(ctx context.Context, def *cpudef.CPUDef) error {
	logger := ctxlog.FromContext(ctx)

	name, err := detectHostModel(d.cpuinfoPath)
	if err != nil {
		return err
	}
	if name == "" {
		logger.Debug("Host variation code does not identify a known model.", "source", d.cpuinfoPath)
		return nil
	}

	def.Model = name
	return nil
}

// Compare always reports identical. SW64 defines whole-model identity only,
// with no per-feature negotiation that could make two CPU requests
// incompatible, so this is the complete contract rather than a placeholder.
func (d *Driver) Compare(ctx context.Context, host, guest *cpudef.CPUDef) (cpu.CompareResult, error) {
	return cpu.CompareIdentical, nil
}

// Update resolves host-model inheritance: a guest in host-model mode is
// rewritten, during a relative update, into a custom definition pinned
// exactly to the host's model. Every other mode/relative combination is a
// successful no-op. On failure the guest is left untouched.
func (d *Driver) Update(ctx context.Context, guest *cpudef.CPUDef, host *cpudef.CPUDef, relative bool) error {
	if !relative || guest.Mode != cpudef.ModeHostModel {
		return nil
	}

	if host == nil {
		return cpu.ErrUnknownHostModel
	}

	updated := guest.CopyWithoutModel()
	updated.Mode = cpudef.ModeCustom
	updated.CopyModel(host)

	guest.StealModel(updated)
	guest.Mode = cpudef.ModeCustom
	guest.Match = cpudef.MatchExact

	return nil
}

// Models lists the declared model names in declaration order. A failed map
// build yields no names and the build error, never a truncated list.
func (d *Driver) Models(ctx context.Context) ([]string, error) {
	m, err := loadMap(ctx, d.mapDir)
	if err != nil {
		return nil, err
	}
	return m.names(), nil
}

// Decode is architecturally unsupported: SW64 has no feature-level
// capability data to decode from.
func (d *Driver) Decode(ctx context.Context, def *cpudef.CPUDef, data []byte) error {
	return fmt.Errorf("cannot decode CPU data for %s: %w", archName, cpu.ErrNotSupported)
}

// Encode is architecturally unsupported: SW64 has no feature-level
// capability data to encode to.
func (d *Driver) Encode(ctx context.Context, def *cpudef.CPUDef) ([]byte, error) {
	return nil, fmt.Errorf("cannot encode CPU definition for %s: %w", archName, cpu.ErrNotSupported)
}

// Baseline is architecturally unsupported: with whole-model identity only
// there is no feature intersection to compute.
func (d *Driver) Baseline(ctx context.Context, defs []*cpudef.CPUDef) (*cpudef.CPUDef, error) {
	return nil, fmt.Errorf("cannot compute CPU baseline for %s: %w", archName, cpu.ErrNotSupported)
}
