// Package classify assigns a document type to extracted document text
// using a single closed-choice language model call.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/tkarwowski/regcheck"
)

// maxPromptChars bounds how much document text goes into the
// classification prompt. The opening of a legal document is enough to
// type it.
const maxPromptChars = 4000

// Ensure Classifier implements regcheck.Classifier at compile time.
var _ regcheck.Classifier = (*Classifier)(nil)

// Classifier asks the model to pick one label from a closed vocabulary
// and resolves the free-text answer onto a known label by fuzzy match.
type Classifier struct {
	generator regcheck.Generator
	resolver  regcheck.LabelResolver
}

// NewClassifier creates a Classifier.
func NewClassifier(generator regcheck.Generator, resolver regcheck.LabelResolver) *Classifier {
	return &Classifier{
		generator: generator,
		resolver:  resolver,
	}
}

// Classify returns the document's type. The result is Matched only when
// the model's answer resolves onto one of the given labels; otherwise
// the raw answer is preserved so callers can see what the model said.
func (c *Classifier) Classify(ctx context.Context, text string, labels []regcheck.DocumentType) (regcheck.Classification, error) {
	if strings.TrimSpace(text) == "" {
		return regcheck.Classification{}, regcheck.Errorf(regcheck.EINVALID, "document text required")
	}
	if len(labels) == 0 {
		return regcheck.Classification{}, regcheck.Errorf(regcheck.EINVALID, "at least one label required")
	}

	raw, err := c.generator.Generate(ctx, buildPrompt(text, labels))
	if err != nil {
		return regcheck.Classification{}, err
	}

	return c.resolver.Resolve(raw, labels), nil
}

func buildPrompt(text string, labels []regcheck.DocumentType) string {
	names := make([]string, len(labels))
	for i, label := range labels {
		names[i] = string(label)
	}

	text = regcheck.Truncate(text, maxPromptChars)

	return fmt.Sprintf(`You are a legal document classifier.

Classify the document below as exactly one of the following types:
%s

Answer with the type name only, nothing else.

Document:
%s`, "- "+strings.Join(names, "\n- "), text)
}
