package regcheck

import "context"

// ChecklistFinder locates the official checklist documents for a
// classified document. An unmapped type yields a ChecklistResult with a
// nil OfficialURL and no documents, not an error.
type ChecklistFinder interface {
	FindChecklists(ctx context.Context, cls Classification, docText string) (*ChecklistResult, error)
}

// CandidateFilter is the LLM-based binary relevance filter over crawled
// candidate documents. Candidates whose include/exclude decision cannot
// be parsed are excluded; the stage never fails on a single candidate.
type CandidateFilter interface {
	FilterCandidates(ctx context.Context, candidates []Candidate, docText string) ([]Candidate, error)
}

// MissingComparator compares checklist text with the uploaded document
// text and reports the checklist items the document is missing. A model
// response without the expected missing-items section yields an empty
// list, not an error.
type MissingComparator interface {
	MissingItems(ctx context.Context, checklistSource string, docText string) ([]string, error)
}

// RuleIndexer makes sure the rule vector store is populated. Ingestion is
// idempotent: a store that already holds records is left untouched.
type RuleIndexer interface {
	EnsureIndexed(ctx context.Context) error
}

// RuleRetriever performs semantic search over the indexed rule chunks and
// returns the retrieved texts concatenated in rank order.
type RuleRetriever interface {
	RetrieveRules(ctx context.Context, query string) (string, error)
}

// RedFlagDetector asks the language model to review the document against
// the retrieved rules and returns the structured report. A malformed
// model response is an error that halts the pipeline.
type RedFlagDetector interface {
	Detect(ctx context.Context, rules string, docText string) (*Report, error)
}
