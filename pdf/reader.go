// Package pdf extracts plain text from PDF documents by shelling out
// to the poppler pdftotext utility.
package pdf

import (
	"context"
	"os"
	"os/exec"

	"github.com/tkarwowski/regcheck"
)

// CommandRunner executes an external command and returns its stdout.
// It exists so tests can run without a pdftotext binary installed.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands through os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Ensure Reader implements regcheck.TextExtractor at compile time.
var _ regcheck.TextExtractor = (*Reader)(nil)

// Reader extracts text from .pdf files via pdftotext.
type Reader struct {
	runner CommandRunner
}

// NewReader creates a Reader that invokes the pdftotext binary on PATH.
func NewReader() *Reader {
	return &Reader{runner: execRunner{}}
}

// NewReaderWithRunner creates a Reader with a custom command runner.
func NewReaderWithRunner(runner CommandRunner) *Reader {
	return &Reader{runner: runner}
}

// ExtractText converts the PDF at path to plain text, preserving layout
// line structure and collapsing runs of blank lines.
func (r *Reader) ExtractText(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", regcheck.Errorf(regcheck.ENOTFOUND, "file not found: %s", path)
	}

	// "-" writes the extracted text to stdout.
	out, err := r.runner.Run(ctx, "pdftotext", "-layout", path, "-")
	if err != nil {
		return "", regcheck.Errorf(regcheck.EUNPROCESSABLE, "pdftotext failed for %s: %v", path, err)
	}

	return regcheck.CollapseBlankLines(string(out)), nil
}
