// Package transform implements the plain string-to-string text operations.
//
// Every function here is total: it accepts any string, including invalid
// UTF-8, and never returns an error.
package transform

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Lowercase maps every character to its lowercase form using the
// language-neutral Unicode case mapping.
func Lowercase(s string) string {
	// A Caser keeps state between calls, so each call gets a fresh one.
	return cases.Lower(language.Und).String(s)
}

// Uppercase maps every character to its uppercase form using the
// language-neutral Unicode case mapping. Full mappings apply, so "ß"
// becomes "SS".
func Uppercase(s string) string {
	return cases.Upper(language.Und).String(s)
}

// NoSpaces removes every ASCII space. Tabs, newlines and non-ASCII spaces
// are kept.
func NoSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}

// Slugify converts s to a URL-safe slug: lowercase ASCII letters and digits
// separated by single hyphens, with no leading or trailing hyphen.
// Non-ASCII text is transliterated, so "Привет мир" becomes "privet-mir" and
// "北京" becomes "bei-jing". Symbols such as "€" become their own word.
func Slugify(s string) string {
	folded := stripMarks(strings.ToValidUTF8(s, " "))

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	put := func(c byte) {
		switch {
		case c >= 'A' && c <= 'Z':
			c += 'a' - 'A'
		case c >= 'a' && c <= 'z', c >= '0' && c <= '9':
		default:
			pendingSep = true
			return
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteByte(c)
	}

	for _, r := range folded {
		if r < utf8.RuneSelf {
			put(byte(r))
			continue
		}
		ascii := unidecode.Unidecode(string(r))
		if unicode.IsSymbol(r) {
			pendingSep = true
		}
		for i := 0; i < len(ascii); i++ {
			put(ascii[i])
		}
		if unicode.IsSymbol(r) {
			pendingSep = true
		}
	}
	return b.String()
}

// stripMarks decomposes s (compatibility form, so "ﬁ" becomes "fi") and drops
// the nonspacing marks left behind by the decomposition.
func stripMarks(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}
