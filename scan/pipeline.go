package scan

import (
	"context"
	"time"

	"github.com/fwojciec/portsift"
)

// Pipeline drives discovery then validation for each query, in order.
// Queries run sequentially, which also guarantees one discovery run
// per query at a time.
type Pipeline struct {
	Discoverer *Discoverer
	Validator  *Validator

	// RecordLimit caps new corpus entries per query and run
	// (<= 0 means unbounded).
	RecordLimit int

	// Report, if set, receives a summary after each query completes.
	Report func(QueryReport)
}

// QueryReport summarizes one query's discovery and validation.
type QueryReport struct {
	Query    portsift.Query
	Discover *DiscoverResult
	Validate *ValidateResult
}

// Summary accumulates totals across a pipeline run.
type Summary struct {
	Queries  int
	Saved    int
	Live     int
	Portals  int
	Duration time.Duration
}

// Run processes each query end to end. The progress callback receives
// validation events as work completes.
func (p *Pipeline) Run(ctx context.Context, queries []portsift.Query, progress ProgressFunc) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}

	for _, query := range queries {
		discovered, err := p.Discoverer.Discover(ctx, query, p.RecordLimit)
		if err != nil {
			return nil, err
		}

		validated, err := p.Validator.Validate(ctx, query, progress)
		if err != nil {
			return nil, err
		}

		summary.Queries++
		summary.Saved += discovered.Saved
		summary.Live += validated.Live
		summary.Portals += validated.Portals

		if p.Report != nil {
			p.Report(QueryReport{Query: query, Discover: discovered, Validate: validated})
		}
	}

	summary.Duration = time.Since(start)
	return summary, nil
}
