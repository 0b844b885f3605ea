// Package docx reads and annotates Office Open XML word-processing
// documents. The reader extracts paragraph text for the review
// pipeline; the annotator writes a copy with review comments attached
// to the flagged passages.
package docx

import (
	"archive/zip"
	"context"
	"strings"

	"github.com/beevik/etree"

	"github.com/tkarwowski/regcheck"
)

const documentPart = "word/document.xml"

// Ensure Reader implements regcheck.TextExtractor at compile time.
var _ regcheck.TextExtractor = (*Reader)(nil)

// Reader extracts plain text from .docx files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ExtractText returns the document's paragraph text, one paragraph per
// line, with runs of blank lines collapsed.
func (r *Reader) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		return "", regcheck.Errorf(regcheck.EINVALID, "not a valid docx file: %s", path)
	}
	defer zr.Close()

	doc, err := readPart(&zr.Reader, documentPart)
	if err != nil {
		return "", err
	}

	paragraphs := findDescendants(doc.Root(), "p")
	lines := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		lines = append(lines, paragraphText(p))
	}

	return regcheck.CollapseBlankLines(strings.Join(lines, "\n")), nil
}

// readPart parses one archive entry as XML.
func readPart(zr *zip.Reader, name string) (*etree.Document, error) {
	for _, file := range zr.File {
		if file.Name != name {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return nil, regcheck.Errorf(regcheck.EINVALID, "failed to open %s: %v", name, err)
		}
		defer rc.Close()

		doc := etree.NewDocument()
		if _, err := doc.ReadFrom(rc); err != nil {
			return nil, regcheck.Errorf(regcheck.EINVALID, "failed to parse %s: %v", name, err)
		}
		return doc, nil
	}
	return nil, regcheck.Errorf(regcheck.EINVALID, "docx archive has no %s", name)
}

// findDescendants collects all elements with the given local tag,
// ignoring namespace prefixes, in document order.
func findDescendants(root *etree.Element, tag string) []*etree.Element {
	if root == nil {
		return nil
	}

	var found []*etree.Element
	var walk func(e *etree.Element)
	walk = func(e *etree.Element) {
		for _, child := range e.ChildElements() {
			if child.Tag == tag {
				found = append(found, child)
			}
			walk(child)
		}
	}
	walk(root)
	return found
}

// paragraphText concatenates the text runs of a paragraph.
func paragraphText(p *etree.Element) string {
	var sb strings.Builder
	for _, t := range findDescendants(p, "t") {
		sb.WriteString(t.Text())
	}
	return strings.TrimSpace(sb.String())
}
