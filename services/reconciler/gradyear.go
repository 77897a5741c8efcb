package reconciler

import "time"

// The fall season runs August through November, so a meet in the first
// half of the academic year and a meet the following spring must land
// on the same graduation year.
const seasonCutover = time.August

// SeasonYear maps a meet date to the calendar year its fall season
// started in.
func SeasonYear(meetDate time.Time) int64 {
	year := int64(meetDate.Year())
	if meetDate.Month() < seasonCutover {
		year--
	}
	return year
}

// GradYear derives the expected graduation year from an observed grade
// (9-13, 13 covers post-grads) and the meet date. A 9th grader seen in
// fall 2024 graduates in 2028, and so does one seen in spring 2025.
func GradYear(grade int64, meetDate time.Time) int64 {
	return SeasonYear(meetDate) + (12 - grade) + 1
}
