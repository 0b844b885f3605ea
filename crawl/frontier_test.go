package crawl_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tkarwowski/regcheck/crawl"
)

func TestFrontier_PushPop_FIFO(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.True(t, f.Push("https://www.example.gov/a", 0))
	assert.True(t, f.Push("https://www.example.gov/b", 1))

	first, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://www.example.gov/a", first.URL)
	assert.Equal(t, 0, first.Depth)

	second, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://www.example.gov/b", second.URL)
	assert.Equal(t, 1, second.Depth)

	_, ok = f.Pop()
	assert.False(t, ok)
}

func TestFrontier_Push_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.True(t, f.Push("https://www.example.gov/a", 0))
	assert.False(t, f.Push("https://www.example.gov/a", 1))
	assert.Equal(t, 1, f.Len())
}

func TestFrontier_Push_StripsFragments(t *testing.T) {
	t.Parallel()

	f := crawl.NewFrontier(100, 0.01)

	assert.True(t, f.Push("https://www.example.gov/a#top", 0))
	assert.False(t, f.Push("https://www.example.gov/a#bottom", 0))
	assert.True(t, f.Seen("https://www.example.gov/a"))

	page, ok := f.Pop()
	require.True(t, ok)
	assert.Equal(t, "https://www.example.gov/a", page.URL)
}

func TestDomainLimiter_Wait_Throttles(t *testing.T) {
	t.Parallel()

	l := crawl.NewDomainLimiter(50)
	ctx := context.Background()

	start := time.Now()
	for range 3 {
		require.NoError(t, l.Wait(ctx, "www.example.gov"))
	}
	// 50 rps with burst 1 means two 20ms waits after the first token.
	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
}

func TestDomainLimiter_Wait_DomainsAreIndependent(t *testing.T) {
	t.Parallel()

	l := crawl.NewDomainLimiter(1)
	ctx := context.Background()

	start := time.Now()
	require.NoError(t, l.Wait(ctx, "a.example.gov"))
	require.NoError(t, l.Wait(ctx, "b.example.gov"))
	assert.Less(t, time.Since(start), 500*time.Millisecond)
}
