// Package scan provides the discovery and validation pipeline.
// It coordinates web-archive index pagination, candidate filtering and
// de-duplication, rate-gated liveness probing, and persistence of the
// output streams.
package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/portsift"
)

// ProgressEvent reports progress during a validation run.
type ProgressEvent struct {
	Type           ProgressType
	Query          portsift.Query
	Completed      int
	Total          int
	URL            string
	Classification portsift.Classification
	Err            error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFinished
)

// ProgressFunc is a callback for reporting validation progress.
// Completion order is non-deterministic across workers.
type ProgressFunc func(event ProgressEvent)

// computeHash computes a hash of the content using xxhash.
func computeHash(content string) string {
	h := xxhash.Sum64String(content)
	return fmt.Sprintf("%x", h)
}

// sleep pauses for d unless the context is canceled first.
// Returns false if the context was canceled.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
