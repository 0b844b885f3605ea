// Package fs persists review artifacts to the local filesystem.
package fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/tkarwowski/regcheck"
)

// Artifact file names inside a run directory.
const (
	reportFileName = "report.json"
	tsvFileName    = "redflags.tsv"
)

// Ensure ReportWriter implements regcheck.ReportWriter at compile time.
var _ regcheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter writes each run's report under its own directory:
// <base>/<run-id>/report.json and <base>/<run-id>/redflags.tsv.
type ReportWriter struct {
	baseDir string
}

// NewReportWriter creates a ReportWriter rooted at baseDir. The
// directory is created on first write.
func NewReportWriter(baseDir string) *ReportWriter {
	return &ReportWriter{baseDir: baseDir}
}

// WriteReport persists the report and returns the paths of the JSON
// and TSV artifacts.
func (w *ReportWriter) WriteReport(ctx context.Context, report *regcheck.Report) (string, string, error) {
	if report == nil {
		return "", "", regcheck.Errorf(regcheck.EINVALID, "report required")
	}
	if err := ctx.Err(); err != nil {
		return "", "", err
	}

	runDir := filepath.Join(w.baseDir, uuid.New().String())
	if err := os.MkdirAll(runDir, 0o755); err != nil {
		return "", "", err
	}

	jsonPath := filepath.Join(runDir, reportFileName)
	if err := writeJSON(jsonPath, report); err != nil {
		return "", "", err
	}

	tsvPath := filepath.Join(runDir, tsvFileName)
	if err := writeTSV(tsvPath, report.RedFlags); err != nil {
		return "", "", err
	}

	return jsonPath, tsvPath, nil
}

func writeJSON(path string, report *regcheck.Report) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

func writeTSV(path string, flags []regcheck.RedFlag) error {
	var sb strings.Builder
	sb.WriteString("snippet\tissue\tlaw_reference\n")
	for _, flag := range flags {
		sb.WriteString(sanitizeField(flag.Snippet))
		sb.WriteByte('\t')
		sb.WriteString(sanitizeField(flag.Issue))
		sb.WriteByte('\t')
		sb.WriteString(sanitizeField(flag.LawReference))
		sb.WriteByte('\n')
	}
	return os.WriteFile(path, []byte(sb.String()), 0o644)
}

// sanitizeField keeps TSV rows one line each: embedded tabs and
// newlines become single spaces.
func sanitizeField(s string) string {
	replacer := strings.NewReplacer("\t", " ", "\n", " ", "\r", " ")
	return replacer.Replace(s)
}
