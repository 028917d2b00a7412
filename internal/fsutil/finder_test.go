package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o644))
}

func TestFindDataFiles(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "sw64.hcl"))
	touch(t, filepath.Join(dir, "sw64-extra.hcl"))
	touch(t, filepath.Join(dir, "x86.hcl"))
	touch(t, filepath.Join(dir, "sw64.txt"))
	touch(t, filepath.Join(dir, "nested", "sw64-nested.hcl"))

	files, err := FindDataFiles(dir, "sw64", ".hcl")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(dir, "nested", "sw64-nested.hcl"),
		filepath.Join(dir, "sw64-extra.hcl"),
		filepath.Join(dir, "sw64.hcl"),
	}, files)
}

func TestFindDataFilesEmptyPrefixMatchesAll(t *testing.T) {
	dir := t.TempDir()
	touch(t, filepath.Join(dir, "a.hcl"))
	touch(t, filepath.Join(dir, "b.hcl"))

	files, err := FindDataFiles(dir, "", ".hcl")
	require.NoError(t, err)
	assert.Len(t, files, 2)
}

func TestFindDataFilesMissingRoot(t *testing.T) {
	_, err := FindDataFiles(filepath.Join(t.TempDir(), "missing"), "sw64", ".hcl")
	require.Error(t, err)
}

func TestFindDataFilesPanicsOnEmptyExtension(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindDataFiles(t.TempDir(), "sw64", "")
	})
}
