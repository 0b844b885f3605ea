package docx

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"

	"github.com/tkarwowski/regcheck"
)

const (
	commentsPart        = "word/comments.xml"
	documentRelsPart    = "word/_rels/document.xml.rels"
	contentTypesPart    = "[Content_Types].xml"
	wordprocessingmlNS  = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
	relationshipsNS     = "http://schemas.openxmlformats.org/package/2006/relationships"
	commentsRelType     = "http://schemas.openxmlformats.org/officeDocument/2006/relationships/comments"
	commentsContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.comments+xml"

	commentAuthor = "Compliance Review"

	// snippetAnchorLen bounds how much of a flagged snippet is used to
	// locate its paragraph. Model snippets often paraphrase tails, so
	// only the head is trusted for matching.
	snippetAnchorLen = 60
)

// Ensure Annotator implements regcheck.Annotator at compile time.
var _ regcheck.Annotator = (*Annotator)(nil)

// Annotator writes a copy of a .docx document with each red flag
// attached as a Word comment on the paragraph containing its snippet.
// Flags whose snippet cannot be located are anchored to the first
// paragraph so no finding is silently dropped.
type Annotator struct{}

// NewAnnotator creates a new Annotator.
func NewAnnotator() *Annotator {
	return &Annotator{}
}

// Annotate copies srcPath to dstPath with the flags added as comments.
func (a *Annotator) Annotate(ctx context.Context, srcPath string, flags []regcheck.RedFlag, dstPath string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	zr, err := zip.OpenReader(srcPath)
	if err != nil {
		return regcheck.Errorf(regcheck.EINVALID, "not a valid docx file: %s", srcPath)
	}
	defer zr.Close()

	doc, err := readPart(&zr.Reader, documentPart)
	if err != nil {
		return err
	}

	attachCommentMarks(doc, flags)

	documentXML, err := doc.WriteToBytes()
	if err != nil {
		return regcheck.Errorf(regcheck.EINTERNAL, "failed to serialize document: %v", err)
	}

	commentsXML, err := buildCommentsPart(flags)
	if err != nil {
		return err
	}

	relsXML, err := buildDocumentRels(&zr.Reader)
	if err != nil {
		return err
	}

	typesXML, err := buildContentTypes(&zr.Reader)
	if err != nil {
		return err
	}

	replaced := map[string][]byte{
		documentPart:     documentXML,
		commentsPart:     commentsXML,
		documentRelsPart: relsXML,
		contentTypesPart: typesXML,
	}

	return writeArchive(&zr.Reader, dstPath, replaced)
}

// attachCommentMarks inserts comment range markers into the paragraphs
// holding the flagged snippets. Comment ids follow flag order.
func attachCommentMarks(doc *etree.Document, flags []regcheck.RedFlag) {
	paragraphs := findDescendants(doc.Root(), "p")
	if len(paragraphs) == 0 {
		return
	}

	for i, flag := range flags {
		target := paragraphs[0]
		if anchor := snippetAnchor(flag.Snippet); anchor != "" {
			for _, p := range paragraphs {
				if strings.Contains(normalizeForMatch(paragraphText(p)), anchor) {
					target = p
					break
				}
			}
		}
		markParagraph(target, i)
	}
}

// markParagraph wraps the paragraph content in a comment range.
func markParagraph(p *etree.Element, id int) {
	idStr := strconv.Itoa(id)

	start := etree.NewElement("w:commentRangeStart")
	start.CreateAttr("w:id", idStr)
	p.InsertChildAt(0, start)

	end := p.CreateElement("w:commentRangeEnd")
	end.CreateAttr("w:id", idStr)

	ref := p.CreateElement("w:r").CreateElement("w:commentReference")
	ref.CreateAttr("w:id", idStr)
}

// buildCommentsPart produces word/comments.xml with one comment per
// flag, carrying the issue and its law reference.
func buildCommentsPart(flags []regcheck.RedFlag) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	comments := doc.CreateElement("w:comments")
	comments.CreateAttr("xmlns:w", wordprocessingmlNS)

	now := time.Now().UTC().Format("2006-01-02T15:04:05Z")
	for i, flag := range flags {
		comment := comments.CreateElement("w:comment")
		comment.CreateAttr("w:id", strconv.Itoa(i))
		comment.CreateAttr("w:author", commentAuthor)
		comment.CreateAttr("w:date", now)

		text := comment.CreateElement("w:p").CreateElement("w:r").CreateElement("w:t")
		text.SetText(fmt.Sprintf("%s (Reference: %s)", flag.Issue, flag.LawReference))
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, regcheck.Errorf(regcheck.EINTERNAL, "failed to serialize comments: %v", err)
	}
	return out, nil
}

// buildDocumentRels returns the document relationships part with the
// comments relationship added. A missing part is created from scratch.
func buildDocumentRels(zr *zip.Reader) ([]byte, error) {
	doc, err := readPart(zr, documentRelsPart)
	if err != nil {
		doc = etree.NewDocument()
		doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
		doc.CreateElement("Relationships").CreateAttr("xmlns", relationshipsNS)
	}

	rels := doc.Root()
	maxID := 0
	hasComments := false
	for _, rel := range rels.ChildElements() {
		if rel.SelectAttrValue("Type", "") == commentsRelType {
			hasComments = true
		}
		id := rel.SelectAttrValue("Id", "")
		if n, err := strconv.Atoi(strings.TrimPrefix(id, "rId")); err == nil && n > maxID {
			maxID = n
		}
	}

	if !hasComments {
		rel := rels.CreateElement("Relationship")
		rel.CreateAttr("Id", "rId"+strconv.Itoa(maxID+1))
		rel.CreateAttr("Type", commentsRelType)
		rel.CreateAttr("Target", "comments.xml")
	}

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, regcheck.Errorf(regcheck.EINTERNAL, "failed to serialize relationships: %v", err)
	}
	return out, nil
}

// buildContentTypes returns [Content_Types].xml with the comments part
// override added.
func buildContentTypes(zr *zip.Reader) ([]byte, error) {
	doc, err := readPart(zr, contentTypesPart)
	if err != nil {
		return nil, err
	}

	types := doc.Root()
	for _, override := range types.ChildElements() {
		if override.SelectAttrValue("PartName", "") == "/"+commentsPart {
			out, werr := doc.WriteToBytes()
			if werr != nil {
				return nil, regcheck.Errorf(regcheck.EINTERNAL, "failed to serialize content types: %v", werr)
			}
			return out, nil
		}
	}

	override := types.CreateElement("Override")
	override.CreateAttr("PartName", "/"+commentsPart)
	override.CreateAttr("ContentType", commentsContentType)

	out, err := doc.WriteToBytes()
	if err != nil {
		return nil, regcheck.Errorf(regcheck.EINTERNAL, "failed to serialize content types: %v", err)
	}
	return out, nil
}

// writeArchive writes the annotated archive, copying untouched entries
// verbatim and substituting the replaced parts.
func writeArchive(zr *zip.Reader, dstPath string, replaced map[string][]byte) error {
	dst, err := os.Create(dstPath)
	if err != nil {
		return err
	}
	defer dst.Close()

	zw := zip.NewWriter(dst)

	written := make(map[string]bool)
	for _, file := range zr.File {
		w, err := zw.Create(file.Name)
		if err != nil {
			return err
		}

		if content, ok := replaced[file.Name]; ok {
			if _, err := w.Write(content); err != nil {
				return err
			}
			written[file.Name] = true
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return err
		}
		_, err = io.Copy(w, rc)
		rc.Close()
		if err != nil {
			return err
		}
	}

	// Parts the source archive lacked, such as a fresh comments.xml.
	for _, name := range []string{commentsPart, documentRelsPart} {
		if written[name] {
			continue
		}
		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		if _, err := w.Write(replaced[name]); err != nil {
			return err
		}
	}

	if err := zw.Close(); err != nil {
		return err
	}
	return dst.Close()
}

// snippetAnchor returns the normalized head of a snippet used to find
// its paragraph.
func snippetAnchor(snippet string) string {
	anchor := normalizeForMatch(snippet)
	if len(anchor) > snippetAnchorLen {
		anchor = anchor[:snippetAnchorLen]
	}
	return anchor
}

// normalizeForMatch lowercases and collapses whitespace so snippet
// matching tolerates formatting differences.
func normalizeForMatch(s string) string {
	return strings.ToLower(regcheck.NormalizeText(s))
}
