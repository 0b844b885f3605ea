package mock

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of regcheck.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, path string) (string, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, path string) (string, error) {
	return e.ExtractTextFn(ctx, path)
}

var _ regcheck.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of regcheck.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*regcheck.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*regcheck.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ regcheck.Converter = (*Converter)(nil)

// Converter is a mock implementation of regcheck.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
