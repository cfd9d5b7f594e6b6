package main_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/fwojciec/portsift"
	main "github.com/fwojciec/portsift/cmd/portsift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdResults(t *testing.T) {
	t.Parallel()

	t.Run("empty archive", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"results"}, stdout, stderr)
		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "No archived results match.")
	})

	t.Run("rejects unknown classification", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"results", "--class", "DEAD"}, stdout, stderr)
		require.Error(t, err)
		assert.Equal(t, portsift.EINVALID, portsift.ErrorCode(err))
	})
}

func TestCmdHosts(t *testing.T) {
	t.Parallel()

	t.Run("empty archive prints nothing", func(t *testing.T) {
		t.Parallel()

		m := main.NewMain()
		m.DBPath = filepath.Join(t.TempDir(), "test.db")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := m.Run(context.Background(), []string{"hosts", "*.edu/*"}, stdout, stderr)
		require.NoError(t, err)
		assert.Empty(t, stdout.String())
	})
}
