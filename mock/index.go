// Package mock provides function-field mocks of the portsift
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/portsift"
)

var _ portsift.IndexClient = (*IndexClient)(nil)

// IndexClient is a mock implementation of portsift.IndexClient.
type IndexClient struct {
	SearchFn func(ctx context.Context, pattern portsift.Query, page int) ([]string, error)
}

func (c *IndexClient) Search(ctx context.Context, pattern portsift.Query, page int) ([]string, error) {
	return c.SearchFn(ctx, pattern, page)
}
