package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/portsift"
)

// Ensure LoggingProber implements portsift.Prober.
var _ portsift.Prober = (*LoggingProber)(nil)

// LoggingProber wraps a Prober with logging of every classification.
type LoggingProber struct {
	next   portsift.Prober
	logger *slog.Logger
}

// NewLoggingProber creates a new LoggingProber.
func NewLoggingProber(next portsift.Prober, logger *slog.Logger) *LoggingProber {
	return &LoggingProber{next: next, logger: logger}
}

// Probe delegates to the wrapped prober and logs the outcome. Dead
// targets log at debug level; they are expected in bulk.
func (p *LoggingProber) Probe(ctx context.Context, rawURL string) portsift.Outcome {
	begin := time.Now()
	outcome := p.next.Probe(ctx, rawURL)

	attrs := []any{
		"url", rawURL,
		"classification", string(outcome.Classification),
		"duration", time.Since(begin),
	}
	if outcome.Err != nil {
		attrs = append(attrs, "err", outcome.Err.Error())
	}

	if outcome.Live {
		p.logger.Info("probe", attrs...)
	} else {
		p.logger.Debug("probe", attrs...)
	}
	return outcome
}
