// Package review orchestrates the document compliance review: text
// extraction, classification, checklist discovery, missing-item
// comparison, rule retrieval, red-flag detection, and report output.
package review

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tkarwowski/regcheck"
)

// Stage identifies a pipeline stage in errors and progress events.
type Stage string

// Pipeline stages, in execution order.
const (
	StageExtract   Stage = "extract"
	StageClassify  Stage = "classify"
	StageChecklist Stage = "checklist"
	StageCompare   Stage = "compare"
	StageIndex     Stage = "index"
	StageRetrieve  Stage = "retrieve"
	StageDetect    Stage = "detect"
	StageReport    Stage = "report"
	StageAnnotate  Stage = "annotate"
)

// StageError wraps a failure with the stage it occurred in, so the
// presentation layer can report where a run halted.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// ProgressEvent reports that a stage has started.
type ProgressEvent struct {
	Stage Stage
}

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// Pipeline runs the review stages sequentially; the first stage failure
// halts the run.
type Pipeline struct {
	Extractor  regcheck.TextExtractor
	Classifier regcheck.Classifier
	Mapping    regcheck.Mapping
	Checklists regcheck.ChecklistFinder
	Comparator regcheck.MissingComparator
	Indexer    regcheck.RuleIndexer
	Retriever  regcheck.RuleRetriever
	Detector   regcheck.RedFlagDetector
	Reports    regcheck.ReportWriter
	Annotator  regcheck.Annotator
}

// Run reviews the document at path and returns the aggregated result.
// The progress callback, if provided, is invoked as each stage starts.
func (p *Pipeline) Run(ctx context.Context, path string, progress ProgressFunc) (*regcheck.Result, error) {
	notify := func(stage Stage) {
		if progress != nil {
			progress(ProgressEvent{Stage: stage})
		}
	}

	notify(StageExtract)
	text, err := p.Extractor.ExtractText(ctx, path)
	if err != nil {
		return nil, &StageError{Stage: StageExtract, Err: err}
	}

	notify(StageClassify)
	cls, err := p.Classifier.Classify(ctx, text, p.Mapping.Types())
	if err != nil {
		return nil, &StageError{Stage: StageClassify, Err: err}
	}

	result := &regcheck.Result{
		DocumentType: cls.Type(),
		Matched:      cls.Matched,
		MissingItems: []string{},
	}

	notify(StageChecklist)
	checklists, err := p.Checklists.FindChecklists(ctx, cls, text)
	if err != nil {
		return nil, &StageError{Stage: StageChecklist, Err: err}
	}
	result.OfficialURL = checklists.OfficialURL
	result.Checklists = checklists.Documents

	// Without a mapped checklist source there is nothing to compare
	// against; the rule-based stages still run.
	if checklists.OfficialURL != nil {
		notify(StageCompare)
		missing, err := p.Comparator.MissingItems(ctx, *checklists.OfficialURL, text)
		if err != nil {
			return nil, &StageError{Stage: StageCompare, Err: err}
		}
		if missing != nil {
			result.MissingItems = missing
		}
	}

	notify(StageIndex)
	if err := p.Indexer.EnsureIndexed(ctx); err != nil {
		return nil, &StageError{Stage: StageIndex, Err: err}
	}

	notify(StageRetrieve)
	rules, err := p.Retriever.RetrieveRules(ctx, text)
	if err != nil {
		return nil, &StageError{Stage: StageRetrieve, Err: err}
	}

	notify(StageDetect)
	report, err := p.Detector.Detect(ctx, rules, text)
	if err != nil {
		return nil, &StageError{Stage: StageDetect, Err: err}
	}
	result.Summary = report.Summary
	result.RedFlags = report.RedFlags

	notify(StageReport)
	jsonPath, tsvPath, err := p.Reports.WriteReport(ctx, report)
	if err != nil {
		return nil, &StageError{Stage: StageReport, Err: err}
	}
	result.ReportPath = jsonPath
	result.TSVPath = tsvPath

	// Only word-processing documents can carry review comments.
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		notify(StageAnnotate)
		annotated := filepath.Join(filepath.Dir(jsonPath), "annotated_"+filepath.Base(path))
		if err := p.Annotator.Annotate(ctx, path, report.RedFlags, annotated); err != nil {
			return nil, &StageError{Stage: StageAnnotate, Err: err}
		}
		result.AnnotatedPath = annotated
	}

	return result, nil
}
