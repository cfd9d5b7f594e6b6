package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/scan"
)

// RunCmd is the "run" subcommand.
type RunCmd struct {
	FilterFlags
	ProbeFlags

	Pattern     []string `arg:"" optional:"" help:"Target patterns (defaults to the targets file)"`
	Targets     string   `default:"targets.txt" help:"Targets file, one pattern per line"`
	Limit       int      `default:"200" help:"New corpus entries per pattern and run (0 = unbounded)"`
	Concurrency int      `short:"c" default:"25" help:"Validation worker count"`
}

// Run executes the run command.
func (c *RunCmd) Run(deps *Dependencies) error {
	queries, err := c.queries(deps)
	if err != nil || len(queries) == 0 {
		return err
	}

	prober, err := c.Prober(deps)
	if err != nil {
		return err
	}

	filter := c.Filter()
	pipeline := &scan.Pipeline{
		Discoverer: &scan.Discoverer{
			Index:    deps.Index,
			Store:    deps.Store,
			Progress: deps.Progress,
			Filter:   filter,
		},
		Validator: &scan.Validator{
			Prober:      prober,
			Store:       deps.Store,
			Archive:     deps.Archive,
			Filter:      filter,
			Concurrency: c.Concurrency,
		},
		RecordLimit: c.Limit,
		Report: func(r scan.QueryReport) {
			fmt.Fprintf(deps.Stdout, "%s: %d discovered, %d probed, %d live, %d portals\n",
				r.Query, r.Discover.Saved, r.Validate.Pending, r.Validate.Live, r.Validate.Portals)
			if r.Discover.Err != nil {
				fmt.Fprintf(deps.Stderr, "  discovery interrupted: %v\n", r.Discover.Err)
			}
		},
	}

	summary, err := pipeline.Run(deps.Ctx, queries, progressPrinter(deps))
	if err != nil {
		return err
	}

	fmt.Fprintf(deps.Stdout, "Mission complete in %s. Portals harvested: %d\n",
		summary.Duration.Round(time.Second), summary.Portals)
	return nil
}

// queries returns the patterns to process: command arguments if given,
// otherwise the targets file. A missing targets file is seeded with a
// template so there is something to edit.
func (c *RunCmd) queries(deps *Dependencies) ([]portsift.Query, error) {
	if len(c.Pattern) > 0 {
		queries := make([]portsift.Query, 0, len(c.Pattern))
		for _, p := range c.Pattern {
			queries = append(queries, portsift.Query(p))
		}
		return queries, nil
	}

	f, err := os.Open(c.Targets)
	if os.IsNotExist(err) {
		if err := os.WriteFile(c.Targets, []byte("*.edu/*\n*.org/admin*\n"), 0644); err != nil {
			return nil, err
		}
		fmt.Fprintf(deps.Stdout, "Created %s. Add your target patterns and rerun.\n", c.Targets)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var queries []portsift.Query
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		queries = append(queries, portsift.Query(line))
	}
	return queries, scanner.Err()
}
