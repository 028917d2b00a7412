// Package app wires the CPU capability library into the executable: it
// builds the logger, registers the architecture drivers, and executes the
// command the CLI selected.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/vk/cpucaps/internal/cpu"
	"github.com/vk/cpucaps/internal/cpudef"
	"github.com/vk/cpucaps/internal/ctxlog"
	"github.com/vk/cpucaps/internal/hostinfo"
	"github.com/vk/cpucaps/internal/sw64"
)

// App executes one capability command against the driver registry.
type App struct {
	out      io.Writer
	cfg      *Config
	registry *cpu.Registry
}

// NewApp creates an App with all built-in architecture drivers registered.
// The registry is populated here, once, and treated as read-only afterwards.
func NewApp(out io.Writer, cfg *Config) *App {
	opts := []sw64.Option{sw64.WithMapDir(cfg.MapDir)}
	if cfg.CPUInfoPath != "" {
		opts = append(opts, sw64.WithCPUInfoPath(cfg.CPUInfoPath))
	}

	registry := cpu.NewRegistry()
	registry.Register(sw64.New(opts...))

	return &App{out: out, cfg: cfg, registry: registry}
}

// Run executes the configured command.
func (a *App) Run(ctx context.Context) error {
	logger := newLogger(a.cfg.LogLevel, a.cfg.LogFormat, os.Stderr)
	ctx = ctxlog.WithLogger(ctx, logger)

	switch a.cfg.Command {
	case CommandModels:
		return a.runModels(ctx)
	case CommandHost:
		return a.runHost(ctx)
	case CommandResolve:
		return a.runResolve(ctx)
	case CommandCompare:
		return a.runCompare(ctx)
	default:
		return fmt.Errorf("unknown command %q", a.cfg.Command)
	}
}

func (a *App) runModels(ctx context.Context) error {
	names, err := a.registry.Models(ctx, a.cfg.Arch)
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Fprintln(a.out, name)
	}
	return nil
}

func (a *App) runHost(ctx context.Context) error {
	def, err := a.registry.GetHost(ctx, a.cfg.Arch)
	if err != nil {
		return err
	}

	model := def.Model
	if model == "" {
		model = "(unknown)"
	}
	fmt.Fprintf(a.out, "arch:  %s\n", def.Arch)
	fmt.Fprintf(a.out, "model: %s\n", model)
	if def.Topology != (cpudef.Topology{}) {
		fmt.Fprintf(a.out, "topology: sockets=%d cores=%d threads=%d\n",
			def.Topology.Sockets, def.Topology.Cores, def.Topology.Threads)
	}

	if info, err := hostinfo.Collect(ctx); err == nil && info.ModelName != "" {
		fmt.Fprintf(a.out, "os reports: %s", info.ModelName)
		if info.MHz > 0 {
			fmt.Fprintf(a.out, " @ %.0f MHz", info.MHz)
		}
		fmt.Fprintln(a.out)
	}
	return nil
}

func (a *App) runResolve(ctx context.Context) error {
	guest, err := cpudef.ParseFile(a.cfg.CPUFile)
	if err != nil {
		return err
	}
	guest.Arch = a.cfg.Arch

	host, err := a.registry.GetHost(ctx, a.cfg.Arch)
	if err != nil {
		return err
	}

	if err := a.registry.Update(ctx, guest, host, true); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "mode:  %s\n", guest.Mode)
	fmt.Fprintf(a.out, "match: %s\n", guest.Match)
	fmt.Fprintf(a.out, "model: %s\n", guest.Model)
	return nil
}

func (a *App) runCompare(ctx context.Context) error {
	guest, err := cpudef.ParseFile(a.cfg.CPUFile)
	if err != nil {
		return err
	}
	guest.Arch = a.cfg.Arch

	host, err := a.registry.GetHost(ctx, a.cfg.Arch)
	if err != nil {
		return err
	}

	result, err := a.registry.Compare(ctx, host, guest)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, result)
	return nil
}
