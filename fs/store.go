package fs

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/portsift"
)

// Per-query file names.
const (
	corpusFile  = "discovered_urls.txt"
	historyFile = "scan_history.txt"
	portalsFile = "portals_found.txt"
	hostsFile   = "active_hosts.txt"
)

// Ensure Store implements portsift.Store at compile time.
var _ portsift.Store = (*Store)(nil)

// Store keeps each query's files under its own directory,
// <baseDir>/recon_<slug>/. All files are append-only.
type Store struct {
	baseDir string
}

// NewStore creates a Store rooted at baseDir.
func NewStore(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// Dir returns the query's data directory.
func (s *Store) Dir(query portsift.Query) string {
	return filepath.Join(s.baseDir, "recon_"+query.Slug())
}

// Corpus returns all previously discovered URLs for the query.
// A missing corpus returns no URLs.
func (s *Store) Corpus(query portsift.Query) ([]string, error) {
	f, err := os.Open(filepath.Join(s.Dir(query), corpusFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var urls []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			urls = append(urls, line)
		}
	}
	return urls, scanner.Err()
}

// OpenCorpus opens the query's corpus for appending, creating the
// query directory as needed.
func (s *Store) OpenCorpus(query portsift.Query) (portsift.LineAppender, error) {
	dir := s.Dir(query)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return openAppender(filepath.Join(dir, corpusFile))
}

// History returns the set of URLs already probed in prior runs,
// parsed from the "TAG | url" lines of the classification log.
func (s *Store) History(query portsift.Query) (map[string]bool, error) {
	history := make(map[string]bool)

	f, err := os.Open(filepath.Join(s.Dir(query), historyFile))
	if os.IsNotExist(err) {
		return history, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		_, url, found := strings.Cut(scanner.Text(), "|")
		if !found {
			continue
		}
		url = strings.TrimSpace(url)
		if url != "" {
			history[url] = true
		}
	}
	return history, scanner.Err()
}

// OpenResults opens the three output streams for one validation run.
func (s *Store) OpenResults(query portsift.Query) (portsift.ResultLog, error) {
	dir := s.Dir(query)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}

	history, err := openAppender(filepath.Join(dir, historyFile))
	if err != nil {
		return nil, err
	}
	portals, err := openAppender(filepath.Join(dir, portalsFile))
	if err != nil {
		history.Close()
		return nil, err
	}
	hosts, err := openAppender(filepath.Join(dir, hostsFile))
	if err != nil {
		history.Close()
		portals.Close()
		return nil, err
	}

	return &resultLog{
		history:   history,
		portals:   portals,
		hosts:     hosts,
		seenHosts: make(map[string]bool),
	}, nil
}

// appender appends lines to a file, syncing after every write so a
// crash can only lose the line being written.
type appender struct {
	f *os.File
}

func openAppender(path string) (*appender, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	return &appender{f: f}, nil
}

// Append writes one line and syncs.
func (a *appender) Append(line string) error {
	if _, err := a.f.WriteString(line + "\n"); err != nil {
		return err
	}
	return a.f.Sync()
}

func (a *appender) Close() error {
	return a.f.Close()
}

// Ensure resultLog implements portsift.ResultLog at compile time.
var _ portsift.ResultLog = (*resultLog)(nil)

// resultLog writes one validation run's output streams. It is driven
// by the run's single collector goroutine, so no locking is needed.
type resultLog struct {
	history   *appender
	portals   *appender
	hosts     *appender
	seenHosts map[string]bool
}

// Record appends a live outcome: "TAG | url" to the classification
// log, the host to the active-host log on first sighting this run,
// and the URL to the portal log for portals. Dead outcomes are
// ignored. A crash after the classification append can at worst
// duplicate a host line on a later run, never lose data.
func (l *resultLog) Record(rawURL string, outcome portsift.Outcome) error {
	if !outcome.Live {
		return nil
	}

	if err := l.history.Append(string(outcome.Classification) + " | " + rawURL); err != nil {
		return err
	}

	if host := portsift.Host(rawURL); host != "" && !l.seenHosts[host] {
		l.seenHosts[host] = true
		if err := l.hosts.Append(host); err != nil {
			return err
		}
	}

	if outcome.Classification == portsift.ClassPortal {
		if err := l.portals.Append(rawURL); err != nil {
			return err
		}
	}

	return nil
}

func (l *resultLog) Close() error {
	var firstErr error
	for _, a := range []*appender{l.history, l.portals, l.hosts} {
		if err := a.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
