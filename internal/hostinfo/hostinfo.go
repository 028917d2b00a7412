// Package hostinfo summarizes the physical processor of the machine the
// process runs on. It complements the architecture providers: they resolve
// the named CPU model, hostinfo supplies the generic layout and identity
// strings the OS reports.
package hostinfo

import (
	"context"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"

	"github.com/vk/cpucaps/internal/ctxlog"
	"github.com/vk/cpucaps/internal/cpudef"
)

// Info is a snapshot of the host processor as the OS reports it.
type Info struct {
	Arch      string
	ModelName string
	VendorID  string
	MHz       float64
	Logical   int
	Physical  int
}

// Collect gathers the host processor summary. Per-field failures degrade to
// zero values with a debug log entry; only a total failure to enumerate
// processors is returned as an error.
func Collect(ctx context.Context) (*Info, error) {
	logger := ctxlog.FromContext(ctx)

	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}

	info := &Info{Arch: runtime.GOARCH}
	if len(infos) > 0 {
		info.ModelName = infos[0].ModelName
		info.VendorID = infos[0].VendorID
		info.MHz = infos[0].Mhz
	}

	if logical, err := cpu.CountsWithContext(ctx, true); err != nil {
		logger.Debug("Could not count logical processors.", "error", err)
	} else {
		info.Logical = logical
	}
	if physical, err := cpu.CountsWithContext(ctx, false); err != nil {
		logger.Debug("Could not count physical cores.", "error", err)
	} else {
		info.Physical = physical
	}

	return info, nil
}

// Topology derives a CPU definition topology from the collected counts.
// Sockets are reported as a single package; threads are the ratio of logical
// processors to physical cores. Unknown counts produce a zero topology.
func (i *Info) Topology() cpudef.Topology {
	if i.Physical <= 0 {
		return cpudef.Topology{}
	}
	threads := 1
	if i.Logical > i.Physical {
		threads = i.Logical / i.Physical
	}
	return cpudef.Topology{
		Sockets: 1,
		Cores:   i.Physical,
		Threads: threads,
	}
}
