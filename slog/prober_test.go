package slog_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/mock"
	siftslog "github.com/fwojciec/portsift/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingProber_Probe(t *testing.T) {
	t.Parallel()

	t.Run("live results log at info", func(t *testing.T) {
		t.Parallel()

		logger, buf := debugLogger()
		inner := &mock.Prober{
			ProbeFn: func(ctx context.Context, rawURL string) portsift.Outcome {
				return portsift.Outcome{Classification: portsift.ClassPortal, Live: true}
			},
		}

		outcome := siftslog.NewLoggingProber(inner, logger).Probe(context.Background(), "https://x.edu/login")

		assert.Equal(t, portsift.ClassPortal, outcome.Classification)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "probe")
		assert.Contains(t, output, "classification=PORTAL")
	})

	t.Run("dead results log at debug with error", func(t *testing.T) {
		t.Parallel()

		logger, buf := debugLogger()
		inner := &mock.Prober{
			ProbeFn: func(ctx context.Context, rawURL string) portsift.Outcome {
				return portsift.Outcome{Classification: portsift.ClassDead, Err: errors.New("timeout")}
			},
		}

		siftslog.NewLoggingProber(inner, logger).Probe(context.Background(), "https://y.edu/admin")

		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "classification=DEAD")
		assert.Contains(t, output, "err=timeout")
	})
}

func TestLoggingIndexClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs page result at info", func(t *testing.T) {
		t.Parallel()

		logger, buf := debugLogger()
		inner := &mock.IndexClient{
			SearchFn: func(ctx context.Context, pattern portsift.Query, page int) ([]string, error) {
				return []string{"https://x.edu/login", "https://y.edu/admin"}, nil
			},
		}

		urls, err := siftslog.NewLoggingIndexClient(inner, logger).Search(context.Background(), "*.edu/*", 4)

		assert.NoError(t, err)
		assert.Len(t, urls, 2)
		output := buf.String()
		assert.Contains(t, output, "index search")
		assert.Contains(t, output, "pattern=*.edu/*")
		assert.Contains(t, output, "page=4")
		assert.Contains(t, output, "urls=2")
	})

	t.Run("logs exhaustion at debug with code", func(t *testing.T) {
		t.Parallel()

		logger, buf := debugLogger()
		inner := &mock.IndexClient{
			SearchFn: func(ctx context.Context, pattern portsift.Query, page int) ([]string, error) {
				return nil, portsift.Errorf(portsift.ENOTFOUND, "no more index pages for %q", pattern)
			},
		}

		_, err := siftslog.NewLoggingIndexClient(inner, logger).Search(context.Background(), "*.edu/*", 12)

		assert.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=DEBUG")
		assert.Contains(t, output, "code=not_found")
	})
}
