package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Dir(t *testing.T) {
	t.Parallel()

	s := fs.NewStore("/data")
	assert.Equal(t, filepath.Join("/data", "recon_edu"), s.Dir("*.edu/*"))
	assert.Equal(t, filepath.Join("/data", "recon_org_admin"), s.Dir("*.org/admin*"))
}

func TestStore_CorpusRoundTrip(t *testing.T) {
	t.Parallel()

	s := fs.NewStore(t.TempDir())

	// Missing corpus is empty, not an error.
	urls, err := s.Corpus("*.edu/*")
	require.NoError(t, err)
	assert.Empty(t, urls)

	corpus, err := s.OpenCorpus("*.edu/*")
	require.NoError(t, err)
	require.NoError(t, corpus.Append("https://x.edu/login"))
	require.NoError(t, corpus.Append("https://y.edu/admin"))
	require.NoError(t, corpus.Close())

	// Appends across separate opens accumulate.
	corpus, err = s.OpenCorpus("*.edu/*")
	require.NoError(t, err)
	require.NoError(t, corpus.Append("https://z.edu/portal"))
	require.NoError(t, corpus.Close())

	urls, err = s.Corpus("*.edu/*")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"https://x.edu/login",
		"https://y.edu/admin",
		"https://z.edu/portal",
	}, urls)
}

func TestStore_History(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := fs.NewStore(dir)

	// Missing history is empty.
	history, err := s.History("*.edu/*")
	require.NoError(t, err)
	assert.Empty(t, history)

	queryDir := filepath.Join(dir, "recon_edu")
	require.NoError(t, os.MkdirAll(queryDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(queryDir, "scan_history.txt"), []byte(
		"PORTAL | https://x.edu/login\n"+
			"LIVE | https://y.edu/about\n"+
			"garbage line without separator\n"+
			"\n",
	), 0644))

	history, err = s.History("*.edu/*")
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{
		"https://x.edu/login": true,
		"https://y.edu/about": true,
	}, history)
}

func TestResultLog_Record(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	s := fs.NewStore(dir)

	logs, err := s.OpenResults("*.edu/*")
	require.NoError(t, err)

	portal := portsift.Outcome{Classification: portsift.ClassPortal, Live: true}
	live := portsift.Outcome{Classification: portsift.ClassLive, Live: true}
	dead := portsift.Outcome{Classification: portsift.ClassDead}

	require.NoError(t, logs.Record("https://x.edu/login", portal))
	require.NoError(t, logs.Record("https://x.edu/portal/dashboard", live))
	require.NoError(t, logs.Record("https://y.edu/admin", dead))
	require.NoError(t, logs.Close())

	queryDir := filepath.Join(dir, "recon_edu")
	read := func(name string) string {
		data, err := os.ReadFile(filepath.Join(queryDir, name))
		require.NoError(t, err)
		return string(data)
	}

	// Dead outcomes leave no trace; the host appears once per run.
	assert.Equal(t, "PORTAL | https://x.edu/login\nLIVE | https://x.edu/portal/dashboard\n", read("scan_history.txt"))
	assert.Equal(t, "https://x.edu/login\n", read("portals_found.txt"))
	assert.Equal(t, "x.edu\n", read("active_hosts.txt"))
}

func TestResultLog_FeedsHistoryOnNextRun(t *testing.T) {
	t.Parallel()

	s := fs.NewStore(t.TempDir())

	logs, err := s.OpenResults("*.edu/*")
	require.NoError(t, err)
	require.NoError(t, logs.Record("https://x.edu/login", portsift.Outcome{Classification: portsift.ClassPortal, Live: true}))
	require.NoError(t, logs.Close())

	history, err := s.History("*.edu/*")
	require.NoError(t, err)
	assert.True(t, history["https://x.edu/login"])
}
