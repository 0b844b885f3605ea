package mock

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.ChecklistFinder = (*ChecklistFinder)(nil)

// ChecklistFinder is a mock implementation of regcheck.ChecklistFinder.
type ChecklistFinder struct {
	FindChecklistsFn func(ctx context.Context, cls regcheck.Classification, docText string) (*regcheck.ChecklistResult, error)
}

func (f *ChecklistFinder) FindChecklists(ctx context.Context, cls regcheck.Classification, docText string) (*regcheck.ChecklistResult, error) {
	return f.FindChecklistsFn(ctx, cls, docText)
}

var _ regcheck.CandidateFilter = (*CandidateFilter)(nil)

// CandidateFilter is a mock implementation of regcheck.CandidateFilter.
type CandidateFilter struct {
	FilterCandidatesFn func(ctx context.Context, candidates []regcheck.Candidate, docText string) ([]regcheck.Candidate, error)
}

func (f *CandidateFilter) FilterCandidates(ctx context.Context, candidates []regcheck.Candidate, docText string) ([]regcheck.Candidate, error) {
	return f.FilterCandidatesFn(ctx, candidates, docText)
}

var _ regcheck.MissingComparator = (*MissingComparator)(nil)

// MissingComparator is a mock implementation of regcheck.MissingComparator.
type MissingComparator struct {
	MissingItemsFn func(ctx context.Context, checklistSource string, docText string) ([]string, error)
}

func (c *MissingComparator) MissingItems(ctx context.Context, checklistSource string, docText string) ([]string, error) {
	return c.MissingItemsFn(ctx, checklistSource, docText)
}

var _ regcheck.RuleIndexer = (*RuleIndexer)(nil)

// RuleIndexer is a mock implementation of regcheck.RuleIndexer.
type RuleIndexer struct {
	EnsureIndexedFn func(ctx context.Context) error
}

func (i *RuleIndexer) EnsureIndexed(ctx context.Context) error {
	return i.EnsureIndexedFn(ctx)
}

var _ regcheck.RuleRetriever = (*RuleRetriever)(nil)

// RuleRetriever is a mock implementation of regcheck.RuleRetriever.
type RuleRetriever struct {
	RetrieveRulesFn func(ctx context.Context, query string) (string, error)
}

func (r *RuleRetriever) RetrieveRules(ctx context.Context, query string) (string, error) {
	return r.RetrieveRulesFn(ctx, query)
}

var _ regcheck.RedFlagDetector = (*RedFlagDetector)(nil)

// RedFlagDetector is a mock implementation of regcheck.RedFlagDetector.
type RedFlagDetector struct {
	DetectFn func(ctx context.Context, rules string, docText string) (*regcheck.Report, error)
}

func (d *RedFlagDetector) Detect(ctx context.Context, rules string, docText string) (*regcheck.Report, error) {
	return d.DetectFn(ctx, rules, docText)
}
