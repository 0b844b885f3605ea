// Package gemini implements the language model and embedding
// collaborators using the Google Gemini API.
package gemini

import (
	"context"

	"github.com/tkarwowski/regcheck"
	"google.golang.org/genai"
)

// Model names used by the pipeline.
const (
	DefaultModel          = "gemini-2.5-flash"
	DefaultEmbeddingModel = "text-embedding-004"
)

// DefaultBatchSize is the number of texts embedded per API call.
const DefaultBatchSize = 50

// Ensure Client implements the LLM collaborators at compile time.
var (
	_ regcheck.Generator = (*Client)(nil)
	_ regcheck.Embedder  = (*Client)(nil)
)

// Client wraps a Gemini API client as a Generator and Embedder.
type Client struct {
	client         *genai.Client
	model          string
	embeddingModel string
	batchSize      int
}

// Option configures a Client.
type Option func(*Client)

// WithModel overrides the generation model.
func WithModel(model string) Option {
	return func(c *Client) {
		c.model = model
	}
}

// WithEmbeddingModel overrides the embedding model.
func WithEmbeddingModel(model string) Option {
	return func(c *Client) {
		c.embeddingModel = model
	}
}

// WithBatchSize overrides the embedding batch size.
func WithBatchSize(n int) Option {
	return func(c *Client) {
		c.batchSize = n
	}
}

// NewClient creates a new Client.
func NewClient(client *genai.Client, opts ...Option) *Client {
	c := &Client{
		client:         client,
		model:          DefaultModel,
		embeddingModel: DefaultEmbeddingModel,
		batchSize:      DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Generate sends a single prompt and returns the raw response text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", regcheck.Errorf(regcheck.EINVALID, "prompt required")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", regcheck.Errorf(regcheck.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// EmbedBatch embeds texts in batches to respect API limits. The returned
// vectors are in input order.
func (c *Client) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	batchSize := c.batchSize
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}

	vectors := make([][]float32, 0, len(texts))
	for start := 0; start < len(texts); start += batchSize {
		end := start + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		contents := make([]*genai.Content, 0, end-start)
		for _, text := range texts[start:end] {
			contents = append(contents, &genai.Content{
				Parts: []*genai.Part{{Text: text}},
			})
		}

		result, err := c.client.Models.EmbedContent(ctx, c.embeddingModel, contents, nil)
		if err != nil {
			return nil, err
		}
		if result == nil || len(result.Embeddings) != len(contents) {
			return nil, regcheck.Errorf(regcheck.EINTERNAL,
				"gemini returned %d embeddings for %d inputs", embeddingCount(result), len(contents))
		}

		for _, emb := range result.Embeddings {
			vectors = append(vectors, emb.Values)
		}
	}

	return vectors, nil
}

func embeddingCount(r *genai.EmbedContentResponse) int {
	if r == nil {
		return 0
	}
	return len(r.Embeddings)
}
