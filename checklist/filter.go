package checklist

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tkarwowski/regcheck"
)

// maxFilterDocChars bounds how much of the uploaded document goes into
// each relevance prompt.
const maxFilterDocChars = 3000

// Ensure Filter implements regcheck.CandidateFilter at compile time.
var _ regcheck.CandidateFilter = (*Filter)(nil)

// Filter asks the model, per candidate, whether the document could help
// verify or prepare the uploaded document. A candidate whose answer
// cannot be parsed, or whose call fails, is excluded; one bad candidate
// never fails the stage.
type Filter struct {
	generator regcheck.Generator
}

// NewFilter creates a Filter.
func NewFilter(generator regcheck.Generator) *Filter {
	return &Filter{generator: generator}
}

// filterDecision is the model's answer for one candidate.
type filterDecision struct {
	Decision string `json:"decision"`
	Summary  string `json:"summary"`
}

// FilterCandidates returns the candidates the model decided to include,
// each carrying the model's summary.
func (f *Filter) FilterCandidates(ctx context.Context, candidates []regcheck.Candidate, docText string) ([]regcheck.Candidate, error) {
	var included []regcheck.Candidate
	for _, cand := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := f.generator.Generate(ctx, buildFilterPrompt(cand, docText))
		if err != nil {
			continue
		}

		var decision filterDecision
		if err := json.Unmarshal([]byte(stripCodeFences(raw)), &decision); err != nil {
			continue
		}

		if decision.Decision == "include" {
			cand.Summary = decision.Summary
			included = append(included, cand)
		}
	}
	return included, nil
}

func buildFilterPrompt(cand regcheck.Candidate, docText string) string {
	docText = regcheck.Truncate(docText, maxFilterDocChars)

	return fmt.Sprintf(`You are selecting official documents useful for verifying or preparing the uploaded document.

These may include:
- Checklists
- Lists of required documents
- Guidelines
- Instructions
- Procedural manuals

Uploaded document:
%s

Candidate document:
Title: %s
URL: %s

If you think this could be even partially helpful for verification, include it.

Respond in JSON:
{
"decision": "include" or "exclude",
"summary": "short reason if included"
}`, docText, cand.Title, cand.URL)
}

// stripCodeFences removes a surrounding markdown code fence, with or
// without a language tag, from a model response.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	s = strings.TrimPrefix(s, "```")
	if i := strings.Index(s, "\n"); i != -1 {
		s = s[i+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
