package reconciler

import (
	"xcresults-backend/lib/textutil"
	"xcresults-backend/services/results"

	"github.com/antzucaro/matchr"
)

// Variant classifies how an incoming name differs from the athlete it
// was matched against.
type Variant string

const (
	VariantCapitalization Variant = "capitalization_difference"
	VariantPunctuation    Variant = "punctuation_difference"
	VariantMiddleName     Variant = "middle_name_difference"
	VariantOther          Variant = "other"
)

// findVariant searches a school's athletes for a non-exact match:
// either the normalized names are equal, or the last names normalize
// equal and the grade-derived grad year lands on the same athlete.
// When several candidates qualify the most similar name wins.
func findVariant(row Row, gradYear int64, candidates []results.Athlete) (results.Athlete, Variant, bool) {
	normFull := textutil.NormalizeName(row.FullName)
	normLast := textutil.NormalizeName(row.LastName)

	var matched []results.Athlete
	for _, c := range candidates {
		if textutil.NormalizeName(c.FullName) == normFull {
			matched = append(matched, c)
			continue
		}
		if normLast != "" &&
			textutil.NormalizeName(c.LastName) == normLast &&
			c.GradYear == gradYear {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return results.Athlete{}, "", false
	}

	best := matched[0]
	if len(matched) > 1 {
		bestSimilarity := -1.0
		for _, c := range matched {
			similarity := matchr.JaroWinkler(normFull, textutil.NormalizeName(c.FullName), false)
			if similarity > bestSimilarity {
				bestSimilarity = similarity
				best = c
			}
		}
	}

	return best, classifyVariant(row.FullName, best.FullName), true
}

// classifyVariant assumes the two names already matched one of the
// variant rules. Case differences around punctuation ("D'Aunoy" vs
// "D'aunoy") count as punctuation, the scraped source mangles those
// two together.
func classifyVariant(incoming, existing string) Variant {
	if textutil.NormalizeName(incoming) == textutil.NormalizeName(existing) &&
		incoming != existing {
		if textutil.HasPunctuation(incoming) || textutil.HasPunctuation(existing) {
			return VariantPunctuation
		}
		return VariantCapitalization
	}

	if tokensSubset(textutil.Tokens(incoming), textutil.Tokens(existing)) ||
		tokensSubset(textutil.Tokens(existing), textutil.Tokens(incoming)) {
		return VariantMiddleName
	}

	return VariantOther
}

// tokensSubset reports whether a is a strict subset of b, in order.
// ["cameron", "daunoy"] is a subset of ["cameron", "james", "daunoy"].
func tokensSubset(a, b []string) bool {
	if len(a) >= len(b) {
		return false
	}
	i := 0
	for _, tok := range b {
		if i < len(a) && a[i] == tok {
			i++
		}
	}
	return i == len(a)
}
