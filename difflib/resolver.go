// Package difflib resolves free-text model answers onto a closed label
// vocabulary using sequence-matcher string similarity.
package difflib

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"github.com/tkarwowski/regcheck"
)

// DefaultCutoff is the minimum similarity ratio for a label match.
const DefaultCutoff = 0.5

// Ensure Resolver implements regcheck.LabelResolver at compile time.
var _ regcheck.LabelResolver = (*Resolver)(nil)

// Resolver fuzzy-matches a raw model answer against known labels. The
// single best candidate wins if its ratio clears the cutoff; otherwise
// the raw answer is carried through unmatched.
type Resolver struct {
	cutoff float64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithCutoff sets the minimum similarity ratio. Defaults to DefaultCutoff.
func WithCutoff(cutoff float64) Option {
	return func(r *Resolver) {
		r.cutoff = cutoff
	}
}

// NewResolver creates a new Resolver.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{cutoff: DefaultCutoff}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve maps raw onto the closest label. An exact match short-circuits;
// otherwise the best char-level similarity ratio decides. No candidate
// above the cutoff yields an unmatched Classification carrying raw.
func (r *Resolver) Resolve(raw string, labels []regcheck.DocumentType) regcheck.Classification {
	trimmed := strings.TrimSpace(raw)

	var best regcheck.DocumentType
	bestRatio := -1.0
	for _, label := range labels {
		if string(label) == trimmed {
			return regcheck.Classification{Label: label, Matched: true, Raw: raw}
		}
		if ratio := Ratio(trimmed, string(label)); ratio > bestRatio {
			best = label
			bestRatio = ratio
		}
	}

	if bestRatio >= r.cutoff && best != "" {
		return regcheck.Classification{Label: best, Matched: true, Raw: raw}
	}
	return regcheck.Classification{Matched: false, Raw: trimmed}
}

// Ratio returns the char-level similarity of two strings in [0, 1].
func Ratio(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	m := difflib.NewMatcher(strings.Split(a, ""), strings.Split(b, ""))
	return m.Ratio()
}
