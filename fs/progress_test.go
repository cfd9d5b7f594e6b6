package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/portsift/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressFile_MissingFileIsEmpty(t *testing.T) {
	t.Parallel()

	p := fs.OpenProgressFile(filepath.Join(t.TempDir(), "recon_state.json"))
	assert.Zero(t, p.Page("*.edu/*"))
}

func TestProgressFile_PersistsAcrossOpens(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "recon_state.json")

	p := fs.OpenProgressFile(path)
	require.NoError(t, p.SetPage("*.edu/*", 7))
	require.NoError(t, p.SetPage("*.org/admin*", 2))

	reopened := fs.OpenProgressFile(path)
	assert.Equal(t, 7, reopened.Page("*.edu/*"))
	assert.Equal(t, 2, reopened.Page("*.org/admin*"))
	assert.Zero(t, reopened.Page("*.gov/*"))
}

func TestProgressFile_CorruptFileDegradesToEmpty(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "recon_state.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	p := fs.OpenProgressFile(path)
	assert.Zero(t, p.Page("*.edu/*"))

	// A corrupt file is recoverable: the next update rewrites it.
	require.NoError(t, p.SetPage("*.edu/*", 1))
	assert.Equal(t, 1, fs.OpenProgressFile(path).Page("*.edu/*"))
}

func TestProgressFile_LeavesNoTempFileBehind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "recon_state.json")

	p := fs.OpenProgressFile(path)
	require.NoError(t, p.SetPage("*.edu/*", 3))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "recon_state.json", entries[0].Name())
}
