package scan

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/portsift"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the validation worker pool width.
const DefaultConcurrency = 20

// Validator probes every pending URL for a query through a fixed-size
// worker pool. Results flow through a single collector goroutine,
// which is the only writer to the output streams and the archive, so
// the streams never see interleaved writes.
type Validator struct {
	Prober portsift.Prober
	Store  portsift.Store

	// Archive, when set, additionally records live results in the
	// queryable scan archive.
	Archive portsift.ArchiveService

	// Filter supplies the noise patterns; nil means defaults.
	Filter *portsift.CandidateFilter

	// Concurrency is the worker pool width (DefaultConcurrency if
	// unset).
	Concurrency int
}

// ValidateResult summarizes one validation run.
type ValidateResult struct {
	Pending int
	Live    int
	Portals int
	Dead    int
}

// Validate probes all pending URLs for the query exactly once and
// persists the output streams.
//
// Pending = corpus − history − noise. An empty pending set is a clean
// no-op with zero writes. A single URL's probe failure never aborts
// the run; a write failure aborts it, since output integrity is the
// job's entire product.
func (v *Validator) Validate(ctx context.Context, query portsift.Query, progress ProgressFunc) (*ValidateResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	history, err := v.Store.History(query)
	if err != nil {
		return nil, err
	}

	corpus, err := v.Store.Corpus(query)
	if err != nil {
		return nil, err
	}

	// Exact-string dedup on top of the corpus's signature dedup:
	// separate discovery runs can leave textual variants behind.
	seen := make(map[string]bool, len(corpus))
	var pending []string
	for _, u := range corpus {
		u = strings.TrimSpace(u)
		if u == "" || seen[u] {
			continue
		}
		seen[u] = true
		if history[u] || v.filter().Noise(u) {
			continue
		}
		pending = append(pending, u)
	}

	result := &ValidateResult{Pending: len(pending)}
	if len(pending) == 0 {
		return result, nil
	}

	logs, err := v.Store.OpenResults(query)
	if err != nil {
		return nil, err
	}
	defer logs.Close()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Query: query, Total: len(pending)})
	}

	concurrency := v.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	type probeResult struct {
		url     string
		outcome portsift.Outcome
	}
	resultCh := make(chan probeResult, concurrency)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range pending {
			u := u
			g.Go(func() error {
				resultCh <- probeResult{url: u, outcome: v.Prober.Probe(gctx, u)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Unblocks in-flight workers when a fatal write ends the run early.
	drain := func() {
		go func() {
			for range resultCh {
			}
		}()
	}

	completed := 0
	for res := range resultCh {
		completed++

		if res.outcome.Live {
			result.Live++
			if res.outcome.Classification == portsift.ClassPortal {
				result.Portals++
			}
			if err := logs.Record(res.url, res.outcome); err != nil {
				drain()
				return nil, err
			}
			if v.Archive != nil {
				rec := &portsift.ScanRecord{
					Query:          string(query),
					URL:            res.url,
					Host:           portsift.Host(res.url),
					Classification: res.outcome.Classification,
					Title:          res.outcome.Title,
					ContentHash:    res.outcome.ContentHash,
					ProbedAt:       time.Now().UTC(),
				}
				if err := v.Archive.CreateScanRecord(ctx, rec); err != nil {
					drain()
					return nil, err
				}
			}
		} else {
			result.Dead++
		}

		if progress != nil {
			progress(ProgressEvent{
				Type:           ProgressCompleted,
				Query:          query,
				Completed:      completed,
				Total:          len(pending),
				URL:            res.url,
				Classification: res.outcome.Classification,
				Err:            res.outcome.Err,
			})
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Query: query, Completed: completed, Total: len(pending)})
	}

	return result, nil
}

func (v *Validator) filter() *portsift.CandidateFilter {
	if v.Filter != nil {
		return v.Filter
	}
	return portsift.NewCandidateFilter()
}
