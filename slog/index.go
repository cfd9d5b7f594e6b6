package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/portsift"
)

// Ensure LoggingIndexClient implements portsift.IndexClient.
var _ portsift.IndexClient = (*LoggingIndexClient)(nil)

// LoggingIndexClient wraps an IndexClient with logging of every page
// request. Exhaustion and transient upstream errors log at low
// severity; they are part of normal operation.
type LoggingIndexClient struct {
	next   portsift.IndexClient
	logger *slog.Logger
}

// NewLoggingIndexClient creates a new LoggingIndexClient.
func NewLoggingIndexClient(next portsift.IndexClient, logger *slog.Logger) *LoggingIndexClient {
	return &LoggingIndexClient{next: next, logger: logger}
}

// Search delegates to the wrapped client and logs the result.
func (c *LoggingIndexClient) Search(ctx context.Context, pattern portsift.Query, page int) ([]string, error) {
	begin := time.Now()
	urls, err := c.next.Search(ctx, pattern, page)
	if err != nil {
		c.logger.Debug("index search",
			"pattern", string(pattern),
			"page", page,
			"duration", time.Since(begin),
			"code", portsift.ErrorCode(err),
			"err", err.Error(),
		)
		return nil, err
	}
	c.logger.Info("index search",
		"pattern", string(pattern),
		"page", page,
		"urls", len(urls),
		"duration", time.Since(begin),
	)
	return urls, nil
}
