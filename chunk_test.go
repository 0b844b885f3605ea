package regcheck_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkarwowski/regcheck"
)

func words(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(parts, " ")
}

func TestChunkWords_SplitsWithOverlap(t *testing.T) {
	t.Parallel()

	chunks, err := regcheck.ChunkWords(words(1200), 500, 50)
	require.NoError(t, err)

	// Stride is 450 words: chunks start at 0, 450, 900.
	require.Len(t, chunks, 3)
	assert.Equal(t, "rule_0", chunks[0].ID)
	assert.Equal(t, "rule_1", chunks[1].ID)
	assert.Equal(t, "rule_2", chunks[2].ID)

	assert.True(t, strings.HasPrefix(chunks[0].Text, "w0 "))
	assert.True(t, strings.HasPrefix(chunks[1].Text, "w450 "))
	assert.True(t, strings.HasPrefix(chunks[2].Text, "w900 "))
	assert.True(t, strings.HasSuffix(chunks[2].Text, "w1199"))

	// Consecutive chunks share the overlap region.
	assert.Contains(t, chunks[0].Text, "w450")
	assert.Contains(t, chunks[0].Text, "w499")
	assert.NotContains(t, chunks[0].Text+" ", "w500 ")
}

func TestChunkWords_Deterministic(t *testing.T) {
	t.Parallel()

	text := words(3333)

	a, err := regcheck.ChunkWords(text, 500, 50)
	require.NoError(t, err)
	b, err := regcheck.ChunkWords(text, 500, 50)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestChunkWords_ShortInputYieldsSingleChunk(t *testing.T) {
	t.Parallel()

	chunks, err := regcheck.ChunkWords("just a few words", 500, 50)
	require.NoError(t, err)

	require.Len(t, chunks, 1)
	assert.Equal(t, "just a few words", chunks[0].Text)
}

func TestChunkWords_EmptyInput(t *testing.T) {
	t.Parallel()

	chunks, err := regcheck.ChunkWords("   \n\t ", 500, 50)
	require.NoError(t, err)
	assert.Empty(t, chunks)
}

func TestChunkWords_InvalidParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		overlap int
	}{
		{"zero size", 0, 0},
		{"negative overlap", 100, -1},
		{"overlap equals size", 100, 100},
		{"overlap exceeds size", 100, 150},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := regcheck.ChunkWords("some text", tt.size, tt.overlap)
			require.Error(t, err)
			assert.Equal(t, regcheck.EINVALID, regcheck.ErrorCode(err))
		})
	}
}
