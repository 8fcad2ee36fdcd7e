package frame

import "unicode/utf8"

// validPrefix reports how many leading bytes of b form complete, valid UTF-8.
// ok is false only for a genuinely invalid sequence; a trailing sequence that
// is merely incomplete stops the count with ok=true so the next read can finish it
func validPrefix(b []byte) (n int, ok bool) {
	for n < len(b) {
		if b[n] < utf8.RuneSelf {
			n++
			continue
		}
		r, size := utf8.DecodeRune(b[n:])
		if r == utf8.RuneError && size <= 1 {
			if !utf8.FullRune(b[n:]) {
				return n, true
			}
			return n, false
		}
		n += size
	}
	return n, true
}
