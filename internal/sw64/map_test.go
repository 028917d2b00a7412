package sw64

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vk/cpucaps/internal/cpumap"
)

// writeMapDir writes a capability database with the given sw64.hcl content
// and returns the directory.
func writeMapDir(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sw64.hcl"), []byte(content), 0o644))
	return dir
}

func TestLoadMapPreservesDeclarationOrder(t *testing.T) {
	dir := writeMapDir(t, `
model "core3" {}
model "core4" {}
model "core5" {}
`)

	m, err := loadMap(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"core3", "core4", "core5"}, m.names())
}

func TestLoadMapDuplicateModelAborts(t *testing.T) {
	dir := writeMapDir(t, `
model "core3" {}
model "core4" {}
model "core3" {}
`)

	m, err := loadMap(context.Background(), dir)
	require.ErrorIs(t, err, ErrDuplicateModel)
	assert.Contains(t, err.Error(), "core3")
	assert.Nil(t, m, "a failed build must not yield a partial map")
}

func TestLoadMapMissingDatabase(t *testing.T) {
	_, err := loadMap(context.Background(), t.TempDir())
	require.ErrorIs(t, err, cpumap.ErrLoadFailed)
}

func TestLoadMapReadsVendor(t *testing.T) {
	dir := writeMapDir(t, `
model "core3" {
  vendor = "sunway"
}
`)

	m, err := loadMap(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, m.models, 1)
	assert.Equal(t, "sunway", m.models[0].vendor)
}

func TestFindIsCaseSensitive(t *testing.T) {
	m := &cpuMap{models: []*model{{name: "core3"}}}

	assert.NotNil(t, m.find("core3"))
	assert.Nil(t, m.find("Core3"))
	assert.Nil(t, m.find("core4"))

	// Repeated lookups observe the same result.
	assert.NotNil(t, m.find("core3"))
}
