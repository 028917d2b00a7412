package cpumap

import (
	"context"
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/vk/cpucaps/internal/ctxlog"
	"github.com/vk/cpucaps/internal/fsutil"
)

// ErrLoadFailed indicates the capability database for an architecture could
// not be loaded.
var ErrLoadFailed = errors.New("failed to load CPU map")

// ModelAttrs carries the optional attributes declared on a model block.
type ModelAttrs struct {
	Vendor string
}

// ModelFunc is invoked once per declared model, in declaration order. A
// non-nil error aborts the load.
type ModelFunc func(name string, attrs ModelAttrs) error

// modelSchema mirrors a single `model` block in a map data file.
type modelSchema struct {
	Name   string         `hcl:"name,label"`
	Vendor hcl.Expression `hcl:"vendor,optional"`
}

// mapSchema mirrors the top-level structure of a map data file.
type mapSchema struct {
	Models []*modelSchema `hcl:"model,block"`
}

// Load discovers the map data files for arch under dir and replays every
// model declaration through fn. Files are visited in sorted path order and
// models within a file in declaration order, so callbacks observe a stable
// sequence. A missing database, an unparseable file, or a callback failure
// aborts the whole load.
func Load(ctx context.Context, dir, arch string, fn ModelFunc) error {
	logger := ctxlog.FromContext(ctx)

	files, err := fsutil.FindDataFiles(dir, arch, ".hcl")
	if err != nil {
		return fmt.Errorf("%w for %s: %w", ErrLoadFailed, arch, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w for %s: no map files in %s", ErrLoadFailed, arch, dir)
	}
	logger.Debug("Found CPU map data files.", "arch", arch, "files", files)

	parser := hclparse.NewParser()
	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return fmt.Errorf("%w: failed to parse %s: %w", ErrLoadFailed, path, diags)
		}

		var raw mapSchema
		if diags := gohcl.DecodeBody(file.Body, nil, &raw); diags.HasErrors() {
			return fmt.Errorf("%w: failed to decode %s: %w", ErrLoadFailed, path, diags)
		}

		for _, m := range raw.Models {
			attrs, err := translateModel(m)
			if err != nil {
				return fmt.Errorf("%w: model %q in %s: %w", ErrLoadFailed, m.Name, path, err)
			}
			if err := fn(m.Name, attrs); err != nil {
				return err
			}
		}
		logger.Debug("Loaded model declarations from map file.", "file", path, "models", len(raw.Models))
	}

	return nil
}

// translateModel evaluates the attribute expressions of a model block.
func translateModel(m *modelSchema) (ModelAttrs, error) {
	var attrs ModelAttrs

	if m.Vendor != nil {
		val, diags := m.Vendor.Value(nil)
		if diags.HasErrors() {
			return attrs, fmt.Errorf("invalid vendor expression: %w", diags)
		}
		if !val.IsNull() {
			if !val.Type().Equals(cty.String) {
				return attrs, fmt.Errorf("vendor must be a string, got %s", val.Type().FriendlyName())
			}
			attrs.Vendor = val.AsString()
		}
	}

	return attrs, nil
}
