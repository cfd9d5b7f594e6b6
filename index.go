package portsift

import "context"

// IndexClient queries an external full-text web-archive index one
// result page at a time.
type IndexClient interface {
	// Search returns the candidate URLs on one result page for the
	// pattern. Malformed records are skipped, not fatal.
	//
	// Returns ENOTFOUND when the index has no more pages for the
	// pattern (normal termination, not a failure) and EUNAVAILABLE
	// for transient upstream errors that should be retried.
	Search(ctx context.Context, pattern Query, page int) ([]string, error)
}
