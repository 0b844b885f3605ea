package mock

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.Classifier = (*Classifier)(nil)

// Classifier is a mock implementation of regcheck.Classifier.
type Classifier struct {
	ClassifyFn func(ctx context.Context, text string, labels []regcheck.DocumentType) (regcheck.Classification, error)
}

func (c *Classifier) Classify(ctx context.Context, text string, labels []regcheck.DocumentType) (regcheck.Classification, error) {
	return c.ClassifyFn(ctx, text, labels)
}

var _ regcheck.LabelResolver = (*LabelResolver)(nil)

// LabelResolver is a mock implementation of regcheck.LabelResolver.
type LabelResolver struct {
	ResolveFn func(raw string, labels []regcheck.DocumentType) regcheck.Classification
}

func (r *LabelResolver) Resolve(raw string, labels []regcheck.DocumentType) regcheck.Classification {
	return r.ResolveFn(raw, labels)
}
