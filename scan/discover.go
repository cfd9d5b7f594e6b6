package scan

import (
	"context"
	"strings"
	"time"

	"github.com/fwojciec/portsift"
)

// Default pacing for index pagination.
const (
	// DefaultPoliteDelay is the pause between result pages.
	DefaultPoliteDelay = 1 * time.Second
	// DefaultRetryDelay is the back-off after a transient index error
	// before the same page is requested again.
	DefaultRetryDelay = 5 * time.Second
)

// Discoverer pages through the web-archive index for a query, filters
// matching candidates, de-duplicates them by URL signature, and
// appends survivors to the query's corpus.
//
// Discovery is strictly sequential: one in-flight index request at a
// time, with the next page persisted after every processed page so a
// later run resumes instead of restarting. Concurrent discovery of the
// same query is not supported.
type Discoverer struct {
	Index    portsift.IndexClient
	Store    portsift.Store
	Progress portsift.ProgressStore
	Filter   *portsift.CandidateFilter

	// PoliteDelay and RetryDelay override the default pacing.
	// Tests set them to zero to run without real waits.
	PoliteDelay time.Duration
	RetryDelay  time.Duration
}

// DiscoverResult summarizes one discovery run.
type DiscoverResult struct {
	// Saved is the number of new URLs appended to the corpus.
	Saved int

	// Pages is the number of result pages processed this run.
	Pages int

	// NextPage is the persisted resume point for the next run.
	NextPage int

	// Exhausted is true when the index reported no more pages.
	Exhausted bool

	// Err holds the transport failure that ended the run early, if
	// any. It is diagnostic: the run stays resumable and the caller's
	// exit status is unaffected.
	Err error
}

// Discover runs discovery for the query until the index is exhausted,
// recordLimit new URLs have been saved (recordLimit <= 0 means
// unbounded), or a transport failure ends the run.
//
// Only corpus and progress-file I/O errors are returned; everything
// upstream degrades per the error taxonomy.
func (d *Discoverer) Discover(ctx context.Context, query portsift.Query, recordLimit int) (*DiscoverResult, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	// Rebuild the signature set from the existing corpus so re-runs
	// add nothing the corpus already holds.
	existing, err := d.Store.Corpus(query)
	if err != nil {
		return nil, err
	}
	seen := newSignatureSet(len(existing))
	for _, u := range existing {
		seen.Add(portsift.Signature(u))
	}

	corpus, err := d.Store.OpenCorpus(query)
	if err != nil {
		return nil, err
	}
	defer corpus.Close()

	page := d.Progress.Page(query)
	result := &DiscoverResult{NextPage: page}

	for {
		if recordLimit > 0 && result.Saved >= recordLimit {
			return result, nil
		}
		if err := ctx.Err(); err != nil {
			return result, err
		}

		urls, err := d.Index.Search(ctx, query, page)
		if err != nil {
			switch portsift.ErrorCode(err) {
			case portsift.ENOTFOUND:
				// End of index: normal completion.
				result.Exhausted = true
				return result, nil
			case portsift.EUNAVAILABLE:
				// Transient upstream error: back off and retry the
				// same page.
				if !sleep(ctx, d.retryDelay()) {
					return result, ctx.Err()
				}
				continue
			default:
				// Transport failure ends this run; the persisted
				// progress makes it resumable later.
				result.Err = err
				return result, nil
			}
		}

		// A page is always processed in full, so the persisted page
		// count never points past unsaved matches; the limit check
		// runs between pages and may overshoot slightly.
		for _, raw := range urls {
			u := strings.ToLower(strings.TrimSpace(raw))
			if u == "" || !d.filter().Keep(u) {
				continue
			}
			sig := portsift.Signature(u)
			if seen.Contains(sig) {
				continue
			}
			if err := corpus.Append(u); err != nil {
				return nil, err
			}
			seen.Add(sig)
			result.Saved++
		}

		page++
		result.Pages++
		result.NextPage = page
		if err := d.Progress.SetPage(query, page); err != nil {
			return nil, err
		}

		if recordLimit > 0 && result.Saved >= recordLimit {
			return result, nil
		}
		if !sleep(ctx, d.politeDelay()) {
			return result, ctx.Err()
		}
	}
}

func (d *Discoverer) filter() *portsift.CandidateFilter {
	if d.Filter != nil {
		return d.Filter
	}
	return portsift.NewCandidateFilter()
}

func (d *Discoverer) politeDelay() time.Duration {
	if d.PoliteDelay > 0 {
		return d.PoliteDelay
	}
	return DefaultPoliteDelay
}

func (d *Discoverer) retryDelay() time.Duration {
	if d.RetryDelay > 0 {
		return d.RetryDelay
	}
	return DefaultRetryDelay
}
