package normalize

import (
	"strings"
	"unicode/utf8"
)

// Sanitize drops runes that never help identification:
// NUL and ASCII controls other than '\n', '\r', '\t', DEL, C1 controls U+0080..U+009F,
// and invalid UTF-8 bytes.
// Clean input is returned unchanged without allocating
func Sanitize(s string) string {
	n := len(s)
	i := 0
	for i < n {
		c := s[i]
		if c < utf8.RuneSelf {
			if dropASCII(c) {
				break
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if (r == utf8.RuneError && size == 1) || isC1(r) {
			break
		}
		i += size
	}
	if i == n {
		return s
	}

	var b strings.Builder
	b.Grow(n)
	b.WriteString(s[:i])
	for i < n {
		c := s[i]
		if c < utf8.RuneSelf {
			if !dropASCII(c) {
				b.WriteByte(c)
			}
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if !(r == utf8.RuneError && size == 1) && !isC1(r) {
			b.WriteString(s[i : i+size])
		}
		i += size
	}
	return b.String()
}

func dropASCII(c byte) bool {
	if c == '\n' || c == '\r' || c == '\t' {
		return false
	}
	return c < 0x20 || c == 0x7F
}

func isC1(r rune) bool { return r >= 0x80 && r <= 0x9F }
