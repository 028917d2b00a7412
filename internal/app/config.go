package app

import (
	"errors"
	"fmt"
)

// Valid command names, in the order they are documented.
const (
	CommandModels  = "models"
	CommandHost    = "host"
	CommandResolve = "resolve"
	CommandCompare = "compare"
)

// Config holds everything an App needs to execute one command.
type Config struct {
	Command string

	Arch        string // architecture to operate on
	MapDir      string // capability database directory
	CPUInfoPath string // host information source override
	CPUFile     string // guest CPU definition file (resolve, compare)

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandModels, CommandHost:
	case CommandResolve, CommandCompare:
		if cfg.CPUFile == "" {
			return nil, fmt.Errorf("command %q requires --cpu with a guest definition file", cfg.Command)
		}
	case "":
		return nil, errors.New("no command given")
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	if cfg.Arch == "" {
		return nil, errors.New("Arch is a required configuration field and cannot be empty")
	}
	if cfg.MapDir == "" {
		return nil, errors.New("MapDir is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
