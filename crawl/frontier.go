// Package crawl implements breadth-first discovery of checklist
// documents on official registry sites.
package crawl

import (
	"strings"
	"sync"

	"github.com/tkarwowski/regcheck/bloom"
)

// pageRef is a URL queued for crawling together with its distance from
// the start URL.
type pageRef struct {
	URL   string
	Depth int
}

// Frontier is a FIFO crawl queue with Bloom-filter deduplication. URLs
// differing only by fragment are considered duplicates. It is safe for
// concurrent use.
type Frontier struct {
	mu    sync.Mutex
	seen  *bloom.SeenSet
	queue []pageRef
}

// NewFrontier creates a Frontier sized for n expected URLs with the
// given false positive rate.
func NewFrontier(n uint, fpRate float64) *Frontier {
	return &Frontier{seen: bloom.NewSeenSet(n, fpRate)}
}

// Push queues a URL at the given depth. Returns false if the URL has
// already been queued or visited.
func (f *Frontier) Push(url string, depth int) bool {
	url = stripFragment(url)

	f.mu.Lock()
	defer f.mu.Unlock()

	if !f.seen.MarkIfNew(url) {
		return false
	}
	f.queue = append(f.queue, pageRef{URL: url, Depth: depth})
	return true
}

// Pop dequeues the next URL in breadth-first order. The bool result is
// false if the frontier is empty.
func (f *Frontier) Pop() (pageRef, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return pageRef{}, false
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next, true
}

// Len returns the number of queued URLs.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen reports whether the URL has been queued or visited.
func (f *Frontier) Seen(url string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.seen.Seen(stripFragment(url))
}

// stripFragment removes the URL fragment so anchors on the same page
// dedupe to one visit.
func stripFragment(url string) string {
	if idx := strings.Index(url, "#"); idx != -1 {
		return url[:idx]
	}
	return url
}
