package textutil

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

var diacriticsStripper = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// StripDiacritics turns "José" into "Jose". If the transform fails for
// some reason the input is returned untouched.
func StripDiacritics(s string) string {
	out, _, err := transform.String(diacriticsStripper, s)
	if err != nil {
		return s
	}
	return out
}

func isPunctuation(r rune) bool {
	return unicode.IsPunct(r) || r == '\''
}

// StripPunctuation removes apostrophes, hyphens, periods and the like.
// "D'Aunoy-Smith Jr." becomes "DAunoySmith Jr"
func StripPunctuation(s string) string {
	return strings.Map(func(r rune) rune {
		if isPunctuation(r) {
			return -1
		}
		return r
	}, s)
}

// HasPunctuation reports whether any rune in the string is punctuation.
func HasPunctuation(s string) bool {
	return strings.ContainsFunc(s, isPunctuation)
}

// NormalizeName produces the canonical comparison form of a person's
// name: case-folded, diacritics and punctuation stripped, whitespace
// removed. the scraped source is wildly inconsistent about all four.
func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = StripDiacritics(name)
	name = StripPunctuation(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

// Tokens splits a name into its normalized word parts, so
// "Mary Jane  O'Neil" yields ["mary", "jane", "oneil"].
func Tokens(name string) []string {
	name = strings.ToLower(name)
	name = StripDiacritics(name)
	name = StripPunctuation(name)
	fields := strings.Fields(name)
	return fields
}

var slugUnsafeRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify produces a lowercase dash-separated identifier fragment.
func Slugify(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(StripDiacritics(p))
		p = slugUnsafeRegex.ReplaceAllString(p, "-")
		p = strings.Trim(p, "-")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return strings.Join(cleaned, "-")
}
