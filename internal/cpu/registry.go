package cpu

import (
	"context"
	"fmt"

	"github.com/vk/cpucaps/internal/cpudef"
	"github.com/vk/cpucaps/internal/ctxlog"
	"github.com/vk/cpucaps/internal/hostinfo"
)

// Registry maps architecture names to their capability providers. It is
// populated explicitly at process start and read-only afterwards; it
// performs no internal locking.
type Registry struct {
	drivers map[string]Driver
	order   []string
}

// NewRegistry creates an empty driver registry.
func NewRegistry() *Registry {
	return &Registry{
		drivers: make(map[string]Driver),
	}
}

// Register adds a driver under its architecture name. Registering the same
// architecture twice is a programmer error and panics.
func (r *Registry) Register(d Driver) {
	arch := d.Name()
	if _, exists := r.drivers[arch]; exists {
		panic(fmt.Sprintf("CPU driver for architecture '%s' already registered", arch))
	}
	r.drivers[arch] = d
	r.order = append(r.order, arch)
}

// Driver returns the provider registered for arch.
func (r *Registry) Driver(arch string) (Driver, error) {
	d, ok := r.drivers[arch]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownArch, arch)
	}
	return d, nil
}

// Arches lists the registered architectures in registration order.
func (r *Registry) Arches() []string {
	arches := make([]string, len(r.order))
	copy(arches, r.order)
	return arches
}

// GetHost detects the host CPU for arch. The returned definition carries the
// architecture name, the model resolved by the driver, and a best-effort
// processor topology; topology collection failures are logged and ignored
// because model detection alone is a usable result.
func (r *Registry) GetHost(ctx context.Context, arch string) (*cpudef.CPUDef, error) {
	logger := ctxlog.FromContext(ctx)

	d, err := r.Driver(arch)
	if err != nil {
		return nil, err
	}

	def := &cpudef.CPUDef{Arch: arch}
	if err := d.GetHost(ctx, def); err != nil {
		return nil, err
	}

	if info, err := hostinfo.Collect(ctx); err != nil {
		logger.Debug("Could not collect host processor summary.", "error", err)
	} else {
		def.Topology = info.Topology()
	}

	logger.Debug("Detected host CPU.", "arch", arch, "model", def.Model)
	return def, nil
}

// Compare delegates the host/guest compatibility decision to the driver for
// the guest's architecture.
func (r *Registry) Compare(ctx context.Context, host, guest *cpudef.CPUDef) (CompareResult, error) {
	d, err := r.Driver(guest.Arch)
	if err != nil {
		return CompareIncompatible, err
	}
	return d.Compare(ctx, host, guest)
}

// Update delegates host-model inheritance resolution to the driver for the
// guest's architecture, mutating guest in place.
func (r *Registry) Update(ctx context.Context, guest *cpudef.CPUDef, host *cpudef.CPUDef, relative bool) error {
	d, err := r.Driver(guest.Arch)
	if err != nil {
		return err
	}
	return d.Update(ctx, guest, host, relative)
}

// Models lists the model names known for arch, in declaration order.
func (r *Registry) Models(ctx context.Context, arch string) ([]string, error) {
	d, err := r.Driver(arch)
	if err != nil {
		return nil, err
	}
	return d.Models(ctx)
}
