package sw64

import (
	"context"
	"fmt"

	"github.com/vk/cpucaps/internal/cpumap"
)

// model is one named whole-CPU capability profile. Immutable once built;
// owned exclusively by the map that created it.
type model struct {
	name   string
	vendor string
}

// cpuMap is the in-memory registry of models declared for this
// architecture. Declaration order is preserved but carries no meaning;
// lookups are by name.
type cpuMap struct {
	models []*model
}

// find returns the model with the exact (case-sensitive) name, or nil.
// Absence is an expected outcome, not an error; duplicate detection during
// the build relies on it.
func (m *cpuMap) find(name string) *model {
	for _, mod := range m.models {
		if mod.name == name {
			return mod
		}
	}
	return nil
}

// names returns all model names in declaration order.
func (m *cpuMap) names() []string {
	names := make([]string, len(m.models))
	for i, mod := range m.models {
		names[i] = mod.name
	}
	return names
}

// loadMap builds a fresh model map by replaying the capability database
// through the loader callback. Any declaration error leaves the caller with
// no map at all, never a partially populated one.
func loadMap(ctx context.Context, mapDir string) (*cpuMap, error) {
	m := &cpuMap{}

	err := cpumap.Load(ctx, mapDir, archName, func(name string, attrs cpumap.ModelAttrs) error {
		if m.find(name) != nil {
			return fmt.Errorf("%w: %s", ErrDuplicateModel, name)
		}
		m.models = append(m.models, &model{name: name, vendor: attrs.Vendor})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return m, nil
}
