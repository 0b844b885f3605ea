package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/tkarwowski/regcheck"
)

// Ensure LoggingGenerator implements regcheck.Generator.
var _ regcheck.Generator = (*LoggingGenerator)(nil)

// LoggingGenerator wraps a Generator with logging. Prompts and
// responses are logged by size only; their content may hold the
// uploaded document.
type LoggingGenerator struct {
	next   regcheck.Generator
	logger *slog.Logger
}

// NewLoggingGenerator creates a new LoggingGenerator.
func NewLoggingGenerator(next regcheck.Generator, logger *slog.Logger) *LoggingGenerator {
	return &LoggingGenerator{next: next, logger: logger}
}

// Generate delegates to the wrapped generator and logs the operation.
func (g *LoggingGenerator) Generate(ctx context.Context, prompt string) (response string, err error) {
	defer func(begin time.Time) {
		g.logger.Info("generate",
			"prompt_bytes", len(prompt),
			"response_bytes", len(response),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return g.next.Generate(ctx, prompt)
}

// Ensure LoggingEmbedder implements regcheck.Embedder.
var _ regcheck.Embedder = (*LoggingEmbedder)(nil)

// LoggingEmbedder wraps an Embedder with logging.
type LoggingEmbedder struct {
	next   regcheck.Embedder
	logger *slog.Logger
}

// NewLoggingEmbedder creates a new LoggingEmbedder.
func NewLoggingEmbedder(next regcheck.Embedder, logger *slog.Logger) *LoggingEmbedder {
	return &LoggingEmbedder{next: next, logger: logger}
}

// EmbedBatch delegates to the wrapped embedder and logs the operation.
func (e *LoggingEmbedder) EmbedBatch(ctx context.Context, texts []string) (embeddings [][]float32, err error) {
	defer func(begin time.Time) {
		e.logger.Info("embed batch",
			"texts", len(texts),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.EmbedBatch(ctx, texts)
}
