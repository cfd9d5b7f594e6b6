package main

import (
	"fmt"

	"github.com/fwojciec/portsift"
)

// ResultsCmd is the "results" subcommand.
type ResultsCmd struct {
	Pattern string `help:"Filter by target pattern"`
	Host    string `help:"Filter by host"`
	Class   string `help:"Filter by classification (LIVE or PORTAL)"`
	Limit   int    `default:"50" help:"Maximum records to show (0 = all)"`
}

// Run executes the results command.
func (c *ResultsCmd) Run(deps *Dependencies) error {
	filter := portsift.ScanRecordFilter{Limit: c.Limit}
	if c.Pattern != "" {
		filter.Query = &c.Pattern
	}
	if c.Host != "" {
		filter.Host = &c.Host
	}
	if c.Class != "" {
		class := portsift.Classification(c.Class)
		if class != portsift.ClassLive && class != portsift.ClassPortal {
			return portsift.Errorf(portsift.EINVALID, "classification must be LIVE or PORTAL")
		}
		filter.Classification = &class
	}

	records, err := deps.Archive.FindScanRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", portsift.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No archived results match.")
		return nil
	}

	for _, rec := range records {
		line := fmt.Sprintf("%s  %-6s %s", rec.ProbedAt.Format("2006-01-02 15:04"), rec.Classification, rec.URL)
		if rec.Title != "" {
			line += fmt.Sprintf("  (%s)", rec.Title)
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}
