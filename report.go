package regcheck

import "context"

// ReportWriter persists the red-flag report for one pipeline run: a JSON
// report of {summary, red_flags[]} and a tab-separated file of
// (snippet, issue, law_reference) triples for downstream consumption.
type ReportWriter interface {
	WriteReport(ctx context.Context, report *Report) (jsonPath string, tsvPath string, err error)
}

// Annotator produces an annotated copy of the original document, marking
// the snippets flagged by the red-flag stage.
type Annotator interface {
	Annotate(ctx context.Context, srcPath string, flags []RedFlag, dstPath string) error
}
