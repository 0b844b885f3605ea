// Package bloom provides the probabilistic visited-URL set used by the
// checklist crawler.
package bloom

import "github.com/bits-and-blooms/bloom/v3"

// SeenSet tracks URLs the crawler has already enqueued. False positives
// are possible, which at worst skips a page; false negatives are not,
// so no page is ever visited twice.
type SeenSet struct {
	f *bloom.BloomFilter
}

// NewSeenSet creates a SeenSet sized for n expected URLs with the given
// false positive rate.
func NewSeenSet(n uint, fpRate float64) *SeenSet {
	return &SeenSet{f: bloom.NewWithEstimates(n, fpRate)}
}

// MarkIfNew records the URL and reports whether it was new. Returns
// false for URLs that were (probably) already seen.
func (s *SeenSet) MarkIfNew(url string) bool {
	return !s.f.TestOrAddString(url)
}

// Seen reports whether the URL has (probably) been recorded.
func (s *SeenSet) Seen(url string) bool {
	return s.f.TestString(url)
}

// ApproxLen returns the approximate number of recorded URLs.
func (s *SeenSet) ApproxLen() uint {
	return uint(s.f.ApproximatedSize())
}
