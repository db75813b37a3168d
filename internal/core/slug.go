// AngelaMos | 2026
// slug.go

package core

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify lowercases s, folds accents and collapses every run of characters
// outside [a-z0-9] into one hyphen. Leading and trailing hyphens are kept so
// existing article URLs stay stable.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}

	return slugSeparators.ReplaceAllString(strings.ToLower(folded), "-")
}
