package mock

import (
	"context"

	"github.com/tkarwowski/regcheck"
)

var _ regcheck.ReportWriter = (*ReportWriter)(nil)

// ReportWriter is a mock implementation of regcheck.ReportWriter.
type ReportWriter struct {
	WriteReportFn func(ctx context.Context, report *regcheck.Report) (string, string, error)
}

func (w *ReportWriter) WriteReport(ctx context.Context, report *regcheck.Report) (string, string, error) {
	return w.WriteReportFn(ctx, report)
}

var _ regcheck.Annotator = (*Annotator)(nil)

// Annotator is a mock implementation of regcheck.Annotator.
type Annotator struct {
	AnnotateFn func(ctx context.Context, srcPath string, flags []regcheck.RedFlag, dstPath string) error
}

func (a *Annotator) Annotate(ctx context.Context, srcPath string, flags []regcheck.RedFlag, dstPath string) error {
	return a.AnnotateFn(ctx, srcPath, flags, dstPath)
}
