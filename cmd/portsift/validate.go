package main

import (
	"fmt"

	"github.com/fwojciec/portsift"
	"github.com/fwojciec/portsift/scan"
)

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	FilterFlags
	ProbeFlags

	Pattern     string `arg:"" help:"Target pattern whose corpus should be probed"`
	Concurrency int    `short:"c" default:"20" help:"Validation worker count"`
}

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	query := portsift.Query(c.Pattern)

	prober, err := c.Prober(deps)
	if err != nil {
		return err
	}

	validator := &scan.Validator{
		Prober:      prober,
		Store:       deps.Store,
		Archive:     deps.Archive,
		Filter:      c.Filter(),
		Concurrency: c.Concurrency,
	}

	result, err := validator.Validate(deps.Ctx, query, progressPrinter(deps))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", portsift.ErrorMessage(err))
		return err
	}

	if result.Pending == 0 {
		fmt.Fprintf(deps.Stdout, "Nothing pending for %s\n", query)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "%d probed: %d live, %d portals, %d dead\n",
		result.Pending, result.Live, result.Portals, result.Dead)
	return nil
}
