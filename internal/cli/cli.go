// Package cli turns command-line arguments into a validated app.Config.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/vk/cpucaps/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const usageText = `cpucaps - CPU capability inspection for virtualization hosts.

Usage:
  cpucaps [options] COMMAND

Commands:
  models    List the CPU models declared for the architecture.
  host      Detect the CPU model of this host.
  resolve   Resolve host-model inheritance in a guest CPU definition.
  compare   Compare a guest CPU definition against this host.

Options:
`

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	flagSet := pflag.NewFlagSet("cpucaps", pflag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, usageText)
		flagSet.PrintDefaults()
	}

	archFlag := flagSet.String("arch", "sw64", "Architecture to operate on.")
	mapDirFlag := flagSet.String("cpu-map", "cpumap", "Path to the capability database directory.")
	cpuinfoFlag := flagSet.String("cpuinfo", "", "Host information source override (default /proc/cpuinfo).")
	cpuFileFlag := flagSet.String("cpu", "", "Guest CPU definition file (resolve, compare).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	if flagSet.NArg() == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	command := flagSet.Arg(0)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	config, err := app.NewConfig(app.Config{
		Command:     command,
		Arch:        *archFlag,
		MapDir:      *mapDirFlag,
		CPUInfoPath: *cpuinfoFlag,
		CPUFile:     *cpuFileFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return config, false, nil
}
