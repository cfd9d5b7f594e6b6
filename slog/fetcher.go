// Package slog provides logging decorators around the portsift
// interfaces using the standard library's structured logger.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/portsift"
)

// Ensure LoggingFetcher implements portsift.PageFetcher.
var _ portsift.PageFetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a PageFetcher with debug logging of every
// attempt.
type LoggingFetcher struct {
	next   portsift.PageFetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next portsift.PageFetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the result.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	begin := time.Now()
	body, err := f.next.Fetch(ctx, rawURL)
	if err != nil {
		f.logger.Debug("fetch",
			"url", rawURL,
			"duration", time.Since(begin),
			"err", err.Error(),
		)
		return "", err
	}
	f.logger.Debug("fetch",
		"url", rawURL,
		"bytes", len(body),
		"duration", time.Since(begin),
	)
	return body, nil
}
