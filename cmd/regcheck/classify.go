package main

import (
	"fmt"

	"github.com/tkarwowski/regcheck"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	text, err := deps.Extractor.ExtractText(deps.Ctx, c.File)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regcheck.ErrorMessage(err))
		return err
	}

	cls, err := deps.Classifier.Classify(deps.Ctx, text, deps.Mapping.Types())
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regcheck.ErrorMessage(err))
		return err
	}

	if cls.Matched {
		fmt.Fprintln(deps.Stdout, cls.Label)
	} else {
		fmt.Fprintf(deps.Stdout, "%s (no exact match)\n", cls.Type())
	}

	return nil
}
