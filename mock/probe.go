package mock

import (
	"context"

	"github.com/fwojciec/portsift"
)

var _ portsift.PageFetcher = (*PageFetcher)(nil)

// PageFetcher is a mock implementation of portsift.PageFetcher.
type PageFetcher struct {
	FetchFn func(ctx context.Context, rawURL string) (string, error)
}

func (f *PageFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	return f.FetchFn(ctx, rawURL)
}

var _ portsift.PageInspector = (*PageInspector)(nil)

// PageInspector is a mock implementation of portsift.PageInspector.
type PageInspector struct {
	InspectFn func(html string) (*portsift.PageProfile, error)
}

func (i *PageInspector) Inspect(html string) (*portsift.PageProfile, error) {
	return i.InspectFn(html)
}

var _ portsift.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter is a mock implementation of portsift.DomainLimiter.
type DomainLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}

var _ portsift.Prober = (*Prober)(nil)

// Prober is a mock implementation of portsift.Prober.
type Prober struct {
	ProbeFn func(ctx context.Context, rawURL string) portsift.Outcome
}

func (p *Prober) Probe(ctx context.Context, rawURL string) portsift.Outcome {
	return p.ProbeFn(ctx, rawURL)
}
