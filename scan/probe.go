package scan

import (
	"context"
	"math/rand/v2"

	"github.com/fwojciec/portsift"
)

// DefaultProxyAttempts bounds the proxy fallback retries per URL.
const DefaultProxyAttempts = 2

var _ portsift.Prober = (*Prober)(nil)

// Prober performs the liveness/classification fetch for one URL: a
// rate-gated direct attempt followed by bounded proxy retries. Direct
// first keeps proxy load down; the retry bound keeps the latency tail
// bounded without backoff.
type Prober struct {
	// Direct issues requests straight to the target.
	Direct portsift.PageFetcher

	// Proxies is the optional fallback pool. Each retry picks one
	// uniformly at random with replacement; the same proxy may be
	// retried. No health tracking.
	Proxies []portsift.PageFetcher

	Inspector portsift.PageInspector
	Limiter   portsift.DomainLimiter

	// ProxyAttempts overrides DefaultProxyAttempts.
	ProxyAttempts int
}

// Probe fetches and classifies a single URL. It never fails past this
// boundary: every failure degrades to a ClassDead outcome carrying the
// last attempt's error for diagnostics.
func (p *Prober) Probe(ctx context.Context, rawURL string) portsift.Outcome {
	// The rate gate is the sole suspension point and applies
	// uniformly regardless of which attempt path follows.
	if p.Limiter != nil {
		if err := p.Limiter.Wait(ctx, portsift.Host(rawURL)); err != nil {
			return portsift.Outcome{Classification: portsift.ClassDead, Err: err}
		}
	}

	body, err := p.Direct.Fetch(ctx, rawURL)
	if err == nil {
		return p.classify(body)
	}
	lastErr := err

	// Fallback triggers whenever the direct attempt did not return a
	// classifiable success, non-200 statuses included.
	if len(p.Proxies) > 0 {
		attempts := p.ProxyAttempts
		if attempts <= 0 {
			attempts = DefaultProxyAttempts
		}
		for i := 0; i < attempts; i++ {
			if ctx.Err() != nil {
				break
			}
			proxy := p.Proxies[rand.IntN(len(p.Proxies))]
			body, err := proxy.Fetch(ctx, rawURL)
			if err != nil {
				lastErr = err
				continue
			}
			return p.classify(body)
		}
	}

	return portsift.Outcome{Classification: portsift.ClassDead, Err: lastErr}
}

// classify maps a successful response body to an outcome.
func (p *Prober) classify(body string) portsift.Outcome {
	profile, err := p.Inspector.Inspect(body)
	if err != nil {
		// A response we cannot parse still proves liveness.
		return portsift.Outcome{
			Classification: portsift.ClassLive,
			Live:           true,
			ContentHash:    computeHash(body),
			Err:            err,
		}
	}
	return portsift.Outcome{
		Classification: profile.Classify(),
		Live:           true,
		Title:          profile.Title,
		ContentHash:    computeHash(body),
	}
}
