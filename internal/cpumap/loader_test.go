package cpumap

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// collect records every callback invocation in order.
func collect(names *[]string, attrs *[]ModelAttrs) ModelFunc {
	return func(name string, a ModelAttrs) error {
		if names != nil {
			*names = append(*names, name)
		}
		if attrs != nil {
			*attrs = append(*attrs, a)
		}
		return nil
	}
}

func TestLoadReplaysModelsInOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sw64.hcl", `
model "core3" {}
model "core4" {}
`)

	var names []string
	require.NoError(t, Load(context.Background(), dir, "sw64", collect(&names, nil)))
	assert.Equal(t, []string{"core3", "core4"}, names)
}

func TestLoadVisitsExtensionFilesInSortedOrder(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sw64.hcl", `model "core3" {}`)
	writeFile(t, dir, "sw64-extra.hcl", `model "core9" {}`)

	var names []string
	require.NoError(t, Load(context.Background(), dir, "sw64", collect(&names, nil)))
	// sw64-extra.hcl sorts before sw64.hcl.
	assert.Equal(t, []string{"core9", "core3"}, names)
}

func TestLoadIgnoresOtherArchitectures(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sw64.hcl", `model "core3" {}`)
	writeFile(t, dir, "x86.hcl", `model "qemu64" {}`)

	var names []string
	require.NoError(t, Load(context.Background(), dir, "sw64", collect(&names, nil)))
	assert.Equal(t, []string{"core3"}, names)
}

func TestLoadEvaluatesAttributes(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sw64.hcl", `
model "core3" {
  vendor = "sunway"
}
model "core4" {}
`)

	var names []string
	var attrs []ModelAttrs
	require.NoError(t, Load(context.Background(), dir, "sw64", collect(&names, &attrs)))
	require.Len(t, attrs, 2)
	assert.Equal(t, "sunway", attrs[0].Vendor)
	assert.Empty(t, attrs[1].Vendor)
}

func TestLoadMissingDatabase(t *testing.T) {
	err := Load(context.Background(), t.TempDir(), "sw64", collect(nil, nil))
	require.ErrorIs(t, err, ErrLoadFailed)
	assert.Contains(t, err.Error(), "sw64")
}

func TestLoadRejectsInvalidHCL(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sw64.hcl", `model "core3" {`)

	err := Load(context.Background(), dir, "sw64", collect(nil, nil))
	require.ErrorIs(t, err, ErrLoadFailed)
}

func TestLoadRejectsNonStringVendor(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sw64.hcl", `
model "core3" {
  vendor = 42
}
`)

	err := Load(context.Background(), dir, "sw64", collect(nil, nil))
	require.ErrorIs(t, err, ErrLoadFailed)
	assert.Contains(t, err.Error(), "core3")
}

func TestLoadPropagatesCallbackError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "sw64.hcl", `
model "core3" {}
model "core4" {}
`)

	sentinel := errors.New("stop")
	var seen []string
	err := Load(context.Background(), dir, "sw64", func(name string, _ ModelAttrs) error {
		seen = append(seen, name)
		if name == "core3" {
			return sentinel
		}
		return nil
	})
	require.ErrorIs(t, err, sentinel)
	assert.Equal(t, []string{"core3"}, seen, "load must stop at the failing declaration")
}
