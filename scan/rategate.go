package scan

import (
	"context"
	"sync"
	"time"

	"github.com/fwojciec/portsift"
	"golang.org/x/time/rate"
)

var _ portsift.DomainLimiter = (*RateGate)(nil)

// RateGate enforces a minimum interval between requests to the same
// host, shared across all concurrent probe workers. Each host gets its
// own limiter with a burst of 1, so two near-simultaneous waits for
// the same host serialize while workers for other hosts proceed.
type RateGate struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	interval time.Duration
}

// NewRateGate creates a RateGate with the given minimum inter-request
// interval per host. A non-positive interval disables throttling.
func NewRateGate(interval time.Duration) *RateGate {
	return &RateGate{
		limiters: make(map[string]*rate.Limiter),
		interval: interval,
	}
}

// Wait blocks until the rate limit allows a request to the host.
// Returns an error if the context is canceled before the wait
// completes.
func (g *RateGate) Wait(ctx context.Context, host string) error {
	g.mu.Lock()
	limiter, ok := g.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Every(g.interval), 1)
		g.limiters[host] = limiter
	}
	g.mu.Unlock()

	return limiter.Wait(ctx)
}
