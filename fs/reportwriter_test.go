package fs_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkarwowski/regcheck"
	"github.com/tkarwowski/regcheck/fs"
)

func TestReportWriter_WriteReport(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	w := fs.NewReportWriter(base)

	report := &regcheck.Report{
		Summary: "One issue found.",
		RedFlags: []regcheck.RedFlag{{
			Issue:        "Missing jurisdiction clause",
			LawReference: "Companies Regulations Art. 7",
			Snippet:      "This agreement is governed by mutual understanding.",
		}},
	}

	jsonPath, tsvPath, err := w.WriteReport(context.Background(), report)
	require.NoError(t, err)

	// Both artifacts land in the same run directory under base.
	assert.Equal(t, filepath.Dir(jsonPath), filepath.Dir(tsvPath))
	assert.Equal(t, base, filepath.Dir(filepath.Dir(jsonPath)))

	data, err := os.ReadFile(jsonPath)
	require.NoError(t, err)

	var decoded regcheck.Report
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, report.Summary, decoded.Summary)
	require.Len(t, decoded.RedFlags, 1)
	assert.Equal(t, "Missing jurisdiction clause", decoded.RedFlags[0].Issue)

	tsv, err := os.ReadFile(tsvPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(tsv), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "snippet\tissue\tlaw_reference", lines[0])
	assert.Equal(t,
		"This agreement is governed by mutual understanding.\tMissing jurisdiction clause\tCompanies Regulations Art. 7",
		lines[1])
}

func TestReportWriter_WriteReport_SanitizesTabsAndNewlines(t *testing.T) {
	t.Parallel()

	w := fs.NewReportWriter(t.TempDir())

	report := &regcheck.Report{
		Summary: "ok",
		RedFlags: []regcheck.RedFlag{{
			Issue:        "Broken\tfield",
			LawReference: "Art.\n9",
			Snippet:      "line one\r\nline two",
		}},
	}

	_, tsvPath, err := w.WriteReport(context.Background(), report)
	require.NoError(t, err)

	tsv, err := os.ReadFile(tsvPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(tsv), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, 2, strings.Count(lines[1], "\t"))
}

func TestReportWriter_WriteReport_EachRunGetsOwnDirectory(t *testing.T) {
	t.Parallel()

	w := fs.NewReportWriter(t.TempDir())
	report := &regcheck.Report{Summary: "ok"}

	first, _, err := w.WriteReport(context.Background(), report)
	require.NoError(t, err)
	second, _, err := w.WriteReport(context.Background(), report)
	require.NoError(t, err)

	assert.NotEqual(t, filepath.Dir(first), filepath.Dir(second))
}

func TestReportWriter_WriteReport_NilReport(t *testing.T) {
	t.Parallel()

	w := fs.NewReportWriter(t.TempDir())

	_, _, err := w.WriteReport(context.Background(), nil)

	require.Error(t, err)
	assert.Equal(t, regcheck.EINVALID, regcheck.ErrorCode(err))
}
