package regcheck

import (
	"context"
	"path/filepath"
	"strings"
)

// TextExtractor converts a document file into normalized plain text.
type TextExtractor interface {
	// ExtractText reads the file at path and returns its text content
	// with whitespace normalized. Returns EINVALID for file formats the
	// extractor does not support.
	ExtractText(ctx context.Context, path string) (string, error)
}

// Ensure ExtensionExtractor implements TextExtractor at compile time.
var _ TextExtractor = (*ExtensionExtractor)(nil)

// ExtensionExtractor dispatches text extraction to per-format extractors
// keyed by lowercase file extension (including the dot).
type ExtensionExtractor struct {
	readers map[string]TextExtractor
}

// NewExtensionExtractor creates an empty ExtensionExtractor. Register
// format readers before use.
func NewExtensionExtractor() *ExtensionExtractor {
	return &ExtensionExtractor{readers: make(map[string]TextExtractor)}
}

// Register associates a file extension with a format reader.
func (e *ExtensionExtractor) Register(ext string, reader TextExtractor) {
	e.readers[strings.ToLower(ext)] = reader
}

// ExtractText dispatches to the reader registered for the file's
// extension. Returns EINVALID when no reader is registered.
func (e *ExtensionExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	ext := strings.ToLower(filepath.Ext(path))
	reader, ok := e.readers[ext]
	if !ok {
		return "", Errorf(EINVALID, "unsupported file type: %s", ext)
	}
	return reader.ExtractText(ctx, path)
}
