// Package compare checks an uploaded document against its official
// checklist and reports the checklist items the document is missing.
package compare

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tkarwowski/regcheck"
)

// Ensure Comparator implements regcheck.MissingComparator at compile time.
var _ regcheck.MissingComparator = (*Comparator)(nil)

// Comparator loads the checklist text, asks the model to compare it
// with the uploaded document, and parses the missing items out of the
// answer. Checklist sources may be local files, direct document URLs,
// or http(s) pages.
type Comparator struct {
	extractor regcheck.TextExtractor
	fetcher   regcheck.Fetcher
	content   regcheck.Extractor
	converter regcheck.Converter
	generator regcheck.Generator
}

// NewComparator creates a Comparator. The extractor handles local
// checklist files and downloaded direct documents; fetcher, content
// extractor, and converter handle web-hosted checklist pages.
func NewComparator(
	extractor regcheck.TextExtractor,
	fetcher regcheck.Fetcher,
	content regcheck.Extractor,
	converter regcheck.Converter,
	generator regcheck.Generator,
) *Comparator {
	return &Comparator{
		extractor: extractor,
		fetcher:   fetcher,
		content:   content,
		converter: converter,
		generator: generator,
	}
}

// MissingItems returns the checklist items absent from the document. A
// model answer without the missing-documents section yields an empty
// list.
func (c *Comparator) MissingItems(ctx context.Context, checklistSource string, docText string) ([]string, error) {
	checklistText, err := c.loadChecklist(ctx, checklistSource)
	if err != nil {
		return nil, err
	}

	answer, err := c.generator.Generate(ctx, buildComparePrompt(checklistText, docText))
	if err != nil {
		return nil, err
	}

	return ParseMissingItems(answer), nil
}

// loadChecklist resolves the checklist source to plain text. Local
// paths and direct document URLs go through the text extractor; only
// regular web pages go through content extraction and markdown
// conversion.
func (c *Comparator) loadChecklist(ctx context.Context, source string) (string, error) {
	if !isWebSource(source) {
		return c.extractor.ExtractText(ctx, source)
	}
	if regcheck.IsDirectDocument(source) {
		return c.loadRemoteDocument(ctx, source)
	}

	html, err := c.fetcher.Fetch(ctx, source)
	if err != nil {
		return "", err
	}

	extracted, err := c.content.Extract(html)
	if err != nil {
		return "", err
	}

	return c.converter.Convert(extracted.ContentHTML)
}

// loadRemoteDocument downloads a direct document URL to a temporary
// file and extracts its text with the format reader for its extension.
// DOCX and PDF checklists are binary, so their bytes must never reach
// the prompt unparsed.
func (c *Comparator) loadRemoteDocument(ctx context.Context, source string) (string, error) {
	body, err := c.fetcher.Fetch(ctx, source)
	if err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(regcheck.DocumentBasename(source)))
	f, err := os.CreateTemp("", "checklist-*"+ext)
	if err != nil {
		return "", regcheck.Errorf(regcheck.EINTERNAL, "failed to create checklist file: %v", err)
	}
	defer os.Remove(f.Name())

	if _, err := f.WriteString(body); err != nil {
		f.Close()
		return "", regcheck.Errorf(regcheck.EINTERNAL, "failed to write checklist file: %v", err)
	}
	if err := f.Close(); err != nil {
		return "", regcheck.Errorf(regcheck.EINTERNAL, "failed to write checklist file: %v", err)
	}

	return c.extractor.ExtractText(ctx, f.Name())
}

func isWebSource(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func buildComparePrompt(checklistText, docText string) string {
	return fmt.Sprintf(`You are a compliance assistant. Compare the REQUIRED DOCUMENT CHECKLIST
to the UPLOADED DOCUMENT content.

TASK:
1. Identify all required documents/items mentioned in the checklist.
2. Check if each required item is present in the uploaded document.
3. List each missing item clearly under "MISSING DOCUMENTS".

Return your answer strictly in this format:
SUMMARY:
MISSING DOCUMENTS:

- ...

--- CHECKLIST CONTENT ---
%s

--- UPLOADED DOCUMENT CONTENT ---
%s`, checklistText, docText)
}

// ParseMissingItems scans a model answer for the MISSING DOCUMENTS
// section and returns its bullet items. An answer without the section
// produces an empty list.
func ParseMissingItems(answer string) []string {
	items := []string{}
	capture := false
	for _, line := range strings.Split(answer, "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(strings.ToUpper(trimmed), "MISSING DOCUMENTS") {
			capture = true
			continue
		}
		if capture && strings.HasPrefix(trimmed, "-") {
			if item := strings.TrimSpace(strings.TrimLeft(trimmed, "- ")); item != "" {
				items = append(items, item)
			}
		}
	}
	return items
}
