package main

import "fmt"

// Run executes the types command.
func (c *TypesCmd) Run(deps *Dependencies) error {
	for _, t := range deps.Mapping.Types() {
		fmt.Fprintln(deps.Stdout, t)
	}
	return nil
}
