// Package fs provides file-based persistence: per-query corpora, the
// validation output streams, and the global pagination progress file.
package fs

import (
	"encoding/json"
	"os"

	"github.com/fwojciec/portsift"
)

// DefaultProgressFile is the global progress file name.
const DefaultProgressFile = "recon_state.json"

// Ensure ProgressFile implements portsift.ProgressStore at compile time.
var _ portsift.ProgressStore = (*ProgressFile)(nil)

// ProgressFile persists the query→next-page mapping as a JSON file,
// overwritten atomically (write temp, rename) after every update.
type ProgressFile struct {
	path  string
	pages map[string]int
}

// OpenProgressFile loads the progress file at path. A missing or
// unparseable file degrades to an empty state rather than failing;
// corrupt progress must never stop a run.
func OpenProgressFile(path string) *ProgressFile {
	p := &ProgressFile{
		path:  path,
		pages: make(map[string]int),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return p
	}
	var pages map[string]int
	if err := json.Unmarshal(data, &pages); err != nil || pages == nil {
		return p
	}
	p.pages = pages

	return p
}

// Page returns the next page to fetch for the query (0 if the query
// has never been seen).
func (p *ProgressFile) Page(query portsift.Query) int {
	return p.pages[string(query)]
}

// SetPage records the next page and rewrites the file atomically.
func (p *ProgressFile) SetPage(query portsift.Query, page int) error {
	p.pages[string(query)] = page

	data, err := json.Marshal(p.pages)
	if err != nil {
		return err
	}

	tmp := p.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, p.path)
}
