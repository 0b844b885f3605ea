package gemini_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkarwowski/regcheck"
	"github.com/tkarwowski/regcheck/gemini"
)

func TestClient_Generate_ReturnsErrorWhenPromptEmpty(t *testing.T) {
	t.Parallel()

	c := gemini.NewClient(nil) // nil API client ok for this test

	_, err := c.Generate(context.Background(), "")

	require.Error(t, err)
	assert.Equal(t, regcheck.EINVALID, regcheck.ErrorCode(err))
	assert.Contains(t, regcheck.ErrorMessage(err), "prompt required")
}

func TestClient_EmbedBatch_EmptyInput(t *testing.T) {
	t.Parallel()

	c := gemini.NewClient(nil)

	vectors, err := c.EmbedBatch(context.Background(), nil)

	require.NoError(t, err)
	assert.Nil(t, vectors)
}
