// Package slug turns report titles into portable file names.
package slug

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugifier replaces everything but letters and digits of a string.
type Slugifier struct {
	replacement        rune
	repetitionRE       *regexp.Regexp
	unicodeTransformer transform.Transformer
}

// NewSlugifier returns a Slugifier using replacement as separator.
func NewSlugifier(replacement rune) *Slugifier {
	keep := runes.Predicate(func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})

	return &Slugifier{
		replacement:  replacement,
		repetitionRE: regexp.MustCompile(`(` + regexp.QuoteMeta(string(replacement)) + `{2,})`),
		// NFKD decomposes characters, e.g. ê becomes e and a combining circumflex, which is dropped afterwards.
		unicodeTransformer: transform.Chain(
			norm.NFKD,
			runes.Remove(runes.In(unicode.Mark)),
			runes.Map(func(r rune) rune {
				if keep.Contains(r) {
					return r
				}
				return replacement
			}),
		),
	}
}

// Slugify returns a lower-case version of s that is safe to use as a file name.
func (sl *Slugifier) Slugify(s string) string {
	s, _, err := transform.String(sl.unicodeTransformer, strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		// The transformers never fail on valid or invalid UTF-8.
		panic(err)
	}

	s = sl.repetitionRE.ReplaceAllString(s, string(sl.replacement))

	return strings.Trim(s, string(sl.replacement))
}
