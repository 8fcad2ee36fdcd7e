// Package langhint canonicalises client language hints and profiles the script of a payload
package langhint

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
)

// Canonical reduces a client hint to its ISO 639 base language
// "de-DE", "DE" and "deu" all become "de". ok is false for empty or unparseable hints
// and for tags whose language subtag is undetermined ("und", "und-DE"); x/text would
// otherwise guess a base from the region or script
func Canonical(hint string) (base string, ok bool) {
	hint = strings.TrimSpace(hint)
	if hint == "" {
		return "", false
	}
	tag, err := language.Parse(hint)
	if err != nil {
		return "", false
	}
	b, conf := tag.Base()
	if conf != language.Exact {
		return "", false
	}
	return b.String(), true
}

// Profile summarises the letters of a payload
type Profile struct {
	// Script is the predominant script name, "" when there are no letters
	Script string
	// Letters counts letter runes
	Letters int
	// LetterBytes counts the UTF-8 bytes of letter runes
	LetterBytes int
	// Lang is a best-effort code for scripts that map to a single language, else ""
	Lang string
}

// scripts in tie-break order: specific scripts beat Latin
var scripts = []struct {
	name  string
	table *unicode.RangeTable
	lang  string // set only when the script is low-ambiguity
}{
	{"Hiragana", unicode.Hiragana, "ja"},
	{"Katakana", unicode.Katakana, "ja"},
	{"Hangul", unicode.Hangul, "ko"},
	{"Han", unicode.Han, ""},
	{"Arabic", unicode.Arabic, "ar"},
	{"Hebrew", unicode.Hebrew, "he"},
	{"Thai", unicode.Thai, "th"},
	{"Greek", unicode.Greek, "el"},
	{"Cyrillic", unicode.Cyrillic, ""},
	{"Georgian", unicode.Georgian, "ka"},
	{"Armenian", unicode.Armenian, "hy"},
	{"Devanagari", unicode.Devanagari, ""},
	{"Latin", unicode.Latin, ""},
}

// minLangLetters is the letter count below which Lang stays empty
const minLangLetters = 20

// Detect profiles s in one pass
func Detect(s string) Profile {
	var (
		p      Profile
		counts = make([]int, len(scripts))
	)
	for _, r := range s {
		if !unicode.IsLetter(r) {
			continue
		}
		p.Letters++
		p.LetterBytes += utf8.RuneLen(r)
		for i, sc := range scripts {
			if unicode.Is(sc.table, r) {
				counts[i]++
				break
			}
		}
	}

	best := -1
	for i, c := range counts {
		if c > 0 && (best < 0 || c > counts[best]) {
			best = i
		}
	}
	if best < 0 {
		return p
	}
	p.Script = scripts[best].name

	if p.Letters >= minLangLetters {
		// kana anywhere means Japanese even when Han dominates
		if counts[0] > 0 || counts[1] > 0 {
			p.Lang = "ja"
		} else {
			p.Lang = scripts[best].lang
		}
	}
	return p
}
