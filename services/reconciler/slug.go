package reconciler

import (
	"fmt"
	"strconv"
	"xcresults-backend/lib/textutil"
)

// AthleteSlug derives the human-readable unique identifier for an
// athlete, e.g. "jane-doe-central-2028".
func AthleteSlug(firstName, lastName, schoolKey string, gradYear int64) string {
	return textutil.Slugify(firstName, lastName, schoolKey, strconv.FormatInt(gradYear, 10))
}

func disambiguatedSlug(base string, attempt int) string {
	return fmt.Sprintf("%s-%d", base, attempt)
}
