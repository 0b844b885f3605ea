package compare_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkarwowski/regcheck"
	"github.com/tkarwowski/regcheck/compare"
	"github.com/tkarwowski/regcheck/mock"
)

func TestComparator_MissingItems_LocalChecklistFile(t *testing.T) {
	t.Parallel()

	extractor := &mock.TextExtractor{
		ExtractTextFn: func(_ context.Context, path string) (string, error) {
			assert.Equal(t, "/data/checklist.docx", path)
			return "Required: board resolution, registered office confirmation", nil
		},
	}
	generator := &mock.Generator{
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "CHECKLIST CONTENT")
			assert.Contains(t, prompt, "board resolution")
			return "SUMMARY:\nThe document covers most items.\nMISSING DOCUMENTS:\n\n- Registered office confirmation\n- UBO declaration\n", nil
		},
	}

	c := compare.NewComparator(extractor, &mock.Fetcher{}, &mock.Extractor{}, &mock.Converter{}, generator)

	got, err := c.MissingItems(context.Background(), "/data/checklist.docx", "uploaded document text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Registered office confirmation", "UBO declaration"}, got)
}

func TestComparator_MissingItems_DirectDocumentURLIsExtractedNotScraped(t *testing.T) {
	t.Parallel()

	payload := "PK\x03\x04\x14\x00\x08\x00binary docx bytes"

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			assert.Equal(t, "https://www.example.gov/templates/contract.docx?v=2", url)
			return payload, nil
		},
	}
	extractor := &mock.TextExtractor{
		ExtractTextFn: func(_ context.Context, path string) (string, error) {
			assert.Equal(t, ".docx", filepath.Ext(path))
			written, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Equal(t, payload, string(written))
			return "Required: term sheet, board resolution", nil
		},
	}
	generator := &mock.Generator{
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "Required: term sheet, board resolution")
			assert.NotContains(t, prompt, "PK\x03\x04")
			return "SUMMARY:\nok\nMISSING DOCUMENTS:\n- Term sheet\n", nil
		},
	}

	// Content extractor and converter have nil fn fields: touching the
	// web-page path would panic.
	c := compare.NewComparator(extractor, fetcher, &mock.Extractor{}, &mock.Converter{}, generator)

	got, err := c.MissingItems(context.Background(), "https://www.example.gov/templates/contract.docx?v=2", "doc text")

	require.NoError(t, err)
	assert.Equal(t, []string{"Term sheet"}, got)
}

func TestComparator_MissingItems_WebChecklist(t *testing.T) {
	t.Parallel()

	fetcher := &mock.Fetcher{
		FetchFn: func(_ context.Context, url string) (string, error) {
			assert.Equal(t, "https://www.example.gov/checklist", url)
			return "<html><body><ul><li>Item A</li></ul></body></html>", nil
		},
	}
	content := &mock.Extractor{
		ExtractFn: func(html string) (*regcheck.ExtractResult, error) {
			return &regcheck.ExtractResult{Title: "Checklist", ContentHTML: "<ul><li>Item A</li></ul>"}, nil
		},
	}
	converter := &mock.Converter{
		ConvertFn: func(html string) (string, error) {
			return "- Item A", nil
		},
	}
	generator := &mock.Generator{
		GenerateFn: func(_ context.Context, prompt string) (string, error) {
			assert.Contains(t, prompt, "- Item A")
			return "SUMMARY:\nAll fine.\nMISSING DOCUMENTS:\n", nil
		},
	}

	c := compare.NewComparator(&mock.TextExtractor{}, fetcher, content, converter, generator)

	got, err := c.MissingItems(context.Background(), "https://www.example.gov/checklist", "doc text")

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComparator_MissingItems_GeneratorErrorPropagates(t *testing.T) {
	t.Parallel()

	extractor := &mock.TextExtractor{
		ExtractTextFn: func(_ context.Context, _ string) (string, error) {
			return "checklist", nil
		},
	}
	generator := &mock.Generator{
		GenerateFn: func(_ context.Context, _ string) (string, error) {
			return "", regcheck.Errorf(regcheck.EINTERNAL, "api unavailable")
		},
	}

	c := compare.NewComparator(extractor, &mock.Fetcher{}, &mock.Extractor{}, &mock.Converter{}, generator)

	_, err := c.MissingItems(context.Background(), "/data/checklist.docx", "doc text")

	require.Error(t, err)
}

func TestParseMissingItems(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		answer string
		want   []string
	}{
		{
			name:   "bullets after marker",
			answer: "SUMMARY:\nok\nMISSING DOCUMENTS:\n- Item one\n- Item two",
			want:   []string{"Item one", "Item two"},
		},
		{
			name:   "marker is case insensitive",
			answer: "missing documents:\n- Item one",
			want:   []string{"Item one"},
		},
		{
			name:   "no marker yields empty list",
			answer: "Everything looks complete.",
			want:   []string{},
		},
		{
			name:   "bullets before marker are ignored",
			answer: "- not an item\nMISSING DOCUMENTS:\n- Item one",
			want:   []string{"Item one"},
		},
		{
			name:   "blank bullets are skipped",
			answer: "MISSING DOCUMENTS:\n- \n- Item one",
			want:   []string{"Item one"},
		},
		{
			name:   "non-bullet lines after marker are ignored",
			answer: "MISSING DOCUMENTS:\nNone detected.",
			want:   []string{},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, compare.ParseMissingItems(tc.answer))
		})
	}
}
