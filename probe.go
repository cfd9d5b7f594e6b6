package portsift

import "context"

// Classification is the outcome class of a liveness probe.
type Classification string

// Probe outcome classes. ClassPortal supersedes ClassLive whenever a
// password-type input control is present in a successful response.
const (
	ClassDead   Classification = "DEAD"
	ClassLive   Classification = "LIVE"
	ClassPortal Classification = "PORTAL"
)

// Outcome is the result of probing a single URL.
//
// Err carries the last attempt's failure for diagnostics only; it
// never signals a fatal condition. Every probe failure degrades to
// ClassDead with Live=false.
type Outcome struct {
	Classification Classification
	Live           bool

	// Title and ContentHash describe the fetched page body for live
	// results; both are empty for dead targets.
	Title       string
	ContentHash string

	Err error
}

// PageProfile describes the classification-relevant features of a
// fetched page.
type PageProfile struct {
	// HasPasswordInput is true when the page contains an input control
	// with type="password".
	HasPasswordInput bool

	// Title is the page's <title> text, if any.
	Title string
}

// Classify maps the profile to a classification for a page that
// responded successfully.
func (p *PageProfile) Classify() Classification {
	if p.HasPasswordInput {
		return ClassPortal
	}
	return ClassLive
}

// Prober classifies a candidate URL as dead, live, or a login portal.
type Prober interface {
	// Probe fetches the URL and classifies the response. It never
	// fails past this boundary; unreachable targets come back as
	// ClassDead outcomes.
	Probe(ctx context.Context, rawURL string) Outcome
}

// PageFetcher retrieves the body of a single page.
type PageFetcher interface {
	// Fetch issues a GET for the URL and returns the response body.
	// A non-success status is an error.
	Fetch(ctx context.Context, rawURL string) (body string, err error)
}

// PageInspector extracts classification-relevant features from HTML.
type PageInspector interface {
	Inspect(html string) (*PageProfile, error)
}

// DomainLimiter provides per-domain rate limiting shared by all
// concurrent probe workers.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
