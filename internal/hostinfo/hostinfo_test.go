package hostinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vk/cpucaps/internal/cpudef"
)

func TestTopology(t *testing.T) {
	testCases := []struct {
		name     string
		info     Info
		expected cpudef.Topology
	}{
		{
			name:     "hyperthreaded",
			info:     Info{Logical: 16, Physical: 8},
			expected: cpudef.Topology{Sockets: 1, Cores: 8, Threads: 2},
		},
		{
			name:     "one thread per core",
			info:     Info{Logical: 8, Physical: 8},
			expected: cpudef.Topology{Sockets: 1, Cores: 8, Threads: 1},
		},
		{
			name:     "unknown physical count",
			info:     Info{Logical: 8},
			expected: cpudef.Topology{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.info.Topology())
		})
	}
}
