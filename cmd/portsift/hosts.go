package main

import (
	"fmt"

	"github.com/fwojciec/portsift"
)

// HostsCmd is the "hosts" subcommand.
type HostsCmd struct {
	Pattern string `arg:"" help:"Target pattern"`
}

// Run executes the hosts command.
func (c *HostsCmd) Run(deps *Dependencies) error {
	hosts, err := deps.Archive.ActiveHosts(deps.Ctx, c.Pattern)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", portsift.ErrorMessage(err))
		return err
	}

	for _, host := range hosts {
		fmt.Fprintln(deps.Stdout, host)
	}
	return nil
}
