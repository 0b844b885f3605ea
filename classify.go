package regcheck

import "context"

// Classification is the tagged result of the two-stage type resolver.
// When the model's free-text answer fuzzy-matches a known label, Matched
// is true and Label holds that label. Otherwise Matched is false and Raw
// holds the model output verbatim, so downstream code cannot silently
// treat a low-confidence guess as a confirmed type.
type Classification struct {
	Label   DocumentType
	Matched bool
	Raw     string
}

// Type returns the effective document type: the matched label when one
// exists, the raw model output otherwise.
func (c Classification) Type() DocumentType {
	if c.Matched {
		return c.Label
	}
	return DocumentType(c.Raw)
}

// Classifier assigns a document type to extracted document text given a
// closed vocabulary of candidate labels.
type Classifier interface {
	Classify(ctx context.Context, text string, labels []DocumentType) (Classification, error)
}

// LabelResolver maps a free-text model answer onto a known label by
// string similarity. It returns an unmatched Classification when no
// candidate clears the similarity threshold.
type LabelResolver interface {
	Resolve(raw string, labels []DocumentType) Classification
}
