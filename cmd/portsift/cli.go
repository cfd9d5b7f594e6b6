package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/fs"
	"github.com/fwojciec/portsift/goquery"
	sifthttp "github.com/fwojciec/portsift/http"
	"github.com/fwojciec/portsift/scan"
	siftslog "github.com/fwojciec/portsift/slog"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Store    *fs.Store
	Progress *fs.ProgressFile
	Index    portsift.IndexClient
	Archive  portsift.ArchiveService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DataDir  string `help:"Directory for per-query data files" default:"." env:"PORTSIFT_DATA"`
	IndexURL string `help:"Web-archive index endpoint (defaults to the pinned collection)" env:"PORTSIFT_INDEX"`
	Verbose  bool   `short:"v" help:"Enable debug logging"`

	Run      RunCmd      `cmd:"" help:"Discover and validate every target pattern"`
	Discover DiscoverCmd `cmd:"" help:"Mine the index for candidate URLs matching a pattern"`
	Validate ValidateCmd `cmd:"" help:"Probe a pattern's discovered URLs and log live portals"`
	Results  ResultsCmd  `cmd:"" help:"Query the scan archive"`
	Hosts    HostsCmd    `cmd:"" help:"List active hosts recorded for a pattern"`
}

// FilterFlags are the candidate filter knobs shared by the scanning
// commands. Empty lists fall back to the built-in defaults.
type FilterFlags struct {
	Keyword  []string `help:"Keyword a candidate URL must contain (repeatable)"`
	BlockExt []string `help:"Blocked file extension (repeatable)"`
	Noise    []string `help:"Noise substring excluded from probing (repeatable)"`
}

// Filter builds the candidate filter from the flags.
func (f *FilterFlags) Filter() *portsift.CandidateFilter {
	filter := portsift.NewCandidateFilter()
	if len(f.Keyword) > 0 {
		filter.Keywords = f.Keyword
	}
	if len(f.BlockExt) > 0 {
		filter.BlockedExtensions = f.BlockExt
	}
	if len(f.Noise) > 0 {
		filter.NoisePatterns = f.Noise
	}
	return filter
}

// ProbeFlags are the probe transport knobs shared by the scanning
// commands.
type ProbeFlags struct {
	Proxy    []string      `help:"Proxy URL for fallback retries (repeatable; http, https, socks5, socks5h)"`
	Interval time.Duration `default:"1s" help:"Minimum interval between requests to one host"`
}

// Prober builds the probe engine from the flags.
func (f *ProbeFlags) Prober(deps *Dependencies) (portsift.Prober, error) {
	pool := make([]portsift.PageFetcher, 0, len(f.Proxy))
	for _, p := range f.Proxy {
		fetcher, err := sifthttp.NewProxyFetcher(p)
		if err != nil {
			return nil, err
		}
		pool = append(pool, siftslog.NewLoggingFetcher(fetcher, deps.Logger))
	}

	prober := &scan.Prober{
		Direct:    siftslog.NewLoggingFetcher(sifthttp.NewFetcher(), deps.Logger),
		Proxies:   pool,
		Inspector: goquery.NewInspector(),
		Limiter:   scan.NewRateGate(f.Interval),
	}
	return siftslog.NewLoggingProber(prober, deps.Logger), nil
}

// progressPrinter reports validation progress as work completes.
// Completion order is non-deterministic across workers.
func progressPrinter(deps *Dependencies) scan.ProgressFunc {
	return func(event scan.ProgressEvent) {
		switch event.Type {
		case scan.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scanning %s: %d pending\n", event.Query, event.Total)
		case scan.ProgressCompleted:
			if event.Classification == portsift.ClassPortal {
				fmt.Fprintf(deps.Stdout, "  PORTAL %s\n", event.URL)
			}
		case scan.ProgressFinished:
			fmt.Fprintf(deps.Stdout, "Scanned %s: %d checked\n", event.Query, event.Completed)
		}
	}
}
