package regcheck

import (
	"net/url"
	"path"
	"sort"
	"strings"
)

// DocumentExtensions is the fixed set of file extensions treated as
// downloadable documents by the crawler and the checklist locator.
var DocumentExtensions = []string{".pdf", ".doc", ".docx"}

// Mapping associates document types with their official checklist source:
// either a direct document URL/file path, or the root of a site to crawl
// for checklist-like documents.
type Mapping map[DocumentType]string

// Lookup returns the checklist source for a document type.
func (m Mapping) Lookup(t DocumentType) (string, bool) {
	source, ok := m[t]
	return source, ok
}

// Types returns all known document types in sorted order, suitable for
// use as a closed classification vocabulary.
func (m Mapping) Types() []DocumentType {
	types := make([]DocumentType, 0, len(m))
	for t := range m {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}

// IsDirectDocument reports whether a checklist source points directly at
// a document file rather than a site to crawl.
func IsDirectDocument(source string) bool {
	lower := strings.ToLower(source)
	if i := strings.IndexAny(lower, "?#"); i != -1 {
		lower = lower[:i]
	}
	for _, ext := range DocumentExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// DocumentBasename returns the file name portion of a document URL or
// path with any query string stripped. Used as the candidate title for
// direct checklist mappings.
func DocumentBasename(source string) string {
	s := source
	if i := strings.IndexAny(s, "?#"); i != -1 {
		s = s[:i]
	}
	if u, err := url.Parse(s); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(s)
}
