package main

import (
	"fmt"

	"github.com/tkarwowski/regcheck"
)

// Run executes the ingest command.
func (c *IngestCmd) Run(deps *Dependencies) error {
	fmt.Fprintln(deps.Stderr, "Preparing rule index...")

	if err := deps.Indexer.EnsureIndexed(deps.Ctx); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regcheck.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, "Rule index ready.")
	return nil
}
