package main

import (
	"encoding/json"
	"fmt"

	"github.com/tkarwowski/regcheck"
	"github.com/tkarwowski/regcheck/review"
)

// stageLabels are the progress lines shown as each stage starts.
var stageLabels = map[review.Stage]string{
	review.StageExtract:   "Extracting document text...",
	review.StageClassify:  "Classifying document...",
	review.StageChecklist: "Locating official checklists...",
	review.StageCompare:   "Comparing against checklist...",
	review.StageIndex:     "Preparing rule index...",
	review.StageRetrieve:  "Retrieving relevant rules...",
	review.StageDetect:    "Checking for red flags...",
	review.StageReport:    "Writing reports...",
	review.StageAnnotate:  "Annotating document...",
}

// Run executes the review command.
func (c *ReviewCmd) Run(deps *Dependencies) error {
	progress := func(event review.ProgressEvent) {
		if label, ok := stageLabels[event.Stage]; ok {
			fmt.Fprintln(deps.Stderr, label)
		}
	}

	result, err := deps.Pipeline.Run(deps.Ctx, c.File, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", regcheck.ErrorMessage(err))
		return err
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(deps.Stdout, string(out))

	return nil
}
