package main

import (
	"fmt"

	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/scan"
)

// DiscoverCmd is the "discover" subcommand.
type DiscoverCmd struct {
	FilterFlags

	Pattern string `arg:"" help:"Target pattern (e.g. '*.edu/*')"`
	Limit   int    `default:"500" help:"New corpus entries this run (0 = unbounded)"`
}

// Run executes the discover command.
func (c *DiscoverCmd) Run(deps *Dependencies) error {
	query := portsift.Query(c.Pattern)

	discoverer := &scan.Discoverer{
		Index:    deps.Index,
		Store:    deps.Store,
		Progress: deps.Progress,
		Filter:   c.Filter(),
	}

	fmt.Fprintf(deps.Stdout, "Mining %s from page %d\n", query, deps.Progress.Page(query))

	result, err := discoverer.Discover(deps.Ctx, query, c.Limit)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", portsift.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved %d new URLs over %d pages (next page %d)\n",
		result.Saved, result.Pages, result.NextPage)
	if result.Exhausted {
		fmt.Fprintln(deps.Stdout, "Index exhausted for this pattern.")
	}
	if result.Err != nil {
		fmt.Fprintf(deps.Stderr, "discovery interrupted (resumable): %v\n", result.Err)
	}
	return nil
}
