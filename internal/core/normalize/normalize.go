// Package normalize cleans payload text before it reaches a classification backend
// Pipeline order
// 1 drop control characters and invalid bytes
// 2 Unicode NFKC normalization
// 3 strip format characters (ZWJ ZWNJ BOM soft hyphen)
// 4 width fold fullwidth and halfwidth forms
// 5 collapse whitespace runs and trim
//
// Case and diacritics are kept: both carry language signal
package normalize

import (
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Normalizer is safe for concurrent use
type Normalizer struct{}

// transform chains carry state, so each call borrows its own
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			norm.NFKC,
			runes.Remove(runes.In(unicode.Cf)),
			width.Fold,
		)
	},
}

// New constructs a Normalizer
func New() *Normalizer { return &Normalizer{} }

// Normalize returns the cleaned form of s
func (n *Normalizer) Normalize(s string) string {
	if s == "" {
		return ""
	}

	s = Sanitize(s)

	tr := chainPool.Get().(transform.Transformer)
	defer chainPool.Put(tr)
	tr.Reset()
	if out, _, err := transform.String(tr, s); err == nil {
		s = out
	}
	return collapseSpaces(s)
}

// collapseSpaces folds each whitespace run into a single separator: a newline when the run
// held a line break, otherwise one ASCII space. Edges are trimmed
func collapseSpaces(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	var sep rune
	for _, r := range s {
		switch {
		case r == '\n' || r == '\r':
			sep = '\n'
		case unicode.IsSpace(r):
			if sep == 0 {
				sep = ' '
			}
		default:
			if sep != 0 && b.Len() > 0 {
				b.WriteRune(sep)
			}
			sep = 0
			b.WriteRune(r)
		}
	}
	return b.String()
}
