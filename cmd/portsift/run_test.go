package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	main "github.com/fwojciec/portsift/cmd/portsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdRun_SeedsMissingTargetsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	targets := filepath.Join(dir, "targets.txt")

	m := main.NewMain()
	m.DBPath = filepath.Join(dir, "test.db")

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	err := m.Run(context.Background(), []string{
		"--data-dir", dir,
		"run", "--targets", targets,
	}, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Created "+targets)

	seeded, err := os.ReadFile(targets)
	require.NoError(t, err)
	assert.Contains(t, string(seeded), "*.edu/*")
}
