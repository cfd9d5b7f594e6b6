package portsift

// ProgressStore persists per-query pagination progress across runs.
// Pages are monotonically non-decreasing per query; a run resumes from
// the recorded page instead of restarting at zero.
type ProgressStore interface {
	// Page returns the next page to fetch for the query (0 if the
	// query has never been seen).
	Page(query Query) int

	// SetPage records the next page to fetch and persists it
	// immediately, so a crash mid-run loses at most one page.
	SetPage(query Query, page int) error
}

// LineAppender appends single lines to an underlying append-only
// stream. Each Append is flushed before it returns.
type LineAppender interface {
	Append(line string) error
	Close() error
}

// Store persists per-query discovery corpora, probe history, and the
// validation output streams. All files are append-only; no line is
// ever removed or rewritten.
type Store interface {
	// Corpus returns all previously discovered URLs for the query.
	// A missing corpus is not an error and returns no URLs.
	Corpus(query Query) ([]string, error)

	// OpenCorpus opens the query's corpus file for appending.
	OpenCorpus(query Query) (LineAppender, error)

	// History returns the set of URLs already probed in prior runs
	// for the query, parsed from the classification log.
	History(query Query) (map[string]bool, error)

	// OpenResults opens the output streams for one validation run.
	OpenResults(query Query) (ResultLog, error)
}

// ResultLog persists one validation run's output streams: the
// classification history log, the portal-only log, and the
// unique-active-host log. Record must be called from a single
// goroutine (the run's collector).
type ResultLog interface {
	// Record appends a live outcome to the streams. Dead outcomes are
	// ignored. Any write error is fatal to the run.
	Record(rawURL string, outcome Outcome) error

	Close() error
}
