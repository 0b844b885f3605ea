// Package redflag reviews a document against retrieved regulatory rules
// and produces the structured red-flag report.
package redflag

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tkarwowski/regcheck"
)

// Ensure Detector implements regcheck.RedFlagDetector at compile time.
var _ regcheck.RedFlagDetector = (*Detector)(nil)

// Detector asks the model for compliance issues and parses its strict
// JSON answer. Unlike the checklist filter, a malformed answer here is
// an error: a half-parsed compliance report is worse than no report.
type Detector struct {
	generator regcheck.Generator
}

// NewDetector creates a Detector.
func NewDetector(generator regcheck.Generator) *Detector {
	return &Detector{generator: generator}
}

// Detect returns the red-flag report for the document given the
// retrieved rules. A response that does not parse as the expected JSON
// shape fails with EINTERNAL and halts the run.
func (d *Detector) Detect(ctx context.Context, rules string, docText string) (*regcheck.Report, error) {
	if strings.TrimSpace(docText) == "" {
		return nil, regcheck.Errorf(regcheck.EINVALID, "document text required")
	}

	raw, err := d.generator.Generate(ctx, buildDetectPrompt(rules, docText))
	if err != nil {
		return nil, err
	}

	var report regcheck.Report
	if err := json.Unmarshal([]byte(CleanOutput(raw)), &report); err != nil {
		return nil, regcheck.Errorf(regcheck.EINTERNAL, "model returned malformed red-flag JSON: %v", err)
	}

	if report.RedFlags == nil {
		report.RedFlags = []regcheck.RedFlag{}
	}
	return &report, nil
}

func buildDetectPrompt(rules, docText string) string {
	return fmt.Sprintf(`You are a compliance review assistant for ADGM registration.

ADGM Rules:
---
%s
---

Document:
---
%s
---

TASK:
Check ONLY for:
1. Invalid or missing clauses
2. Incorrect jurisdiction
3. Ambiguous or non-binding language
4. Missing signatory sections or improper formatting
5. Non-compliance with ADGM templates

OUTPUT STRICTLY IN JSON:
{
"summary": "...",
"red_flags":[
{"issue":"...", "law_reference":"...", "snippet":"..."}
]
}`, rules, docText)
}

// CleanOutput removes a surrounding markdown code fence, with or
// without a language tag, from a model response.
func CleanOutput(s string) string {
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
