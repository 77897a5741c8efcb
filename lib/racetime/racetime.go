// Package racetime handles race times as integer centiseconds.
// floating point seconds drift when summed or compared, so times are
// parsed into hundredths once at the boundary and stay integers after.
package racetime

import (
	"fmt"
	"regexp"
	"strconv"
)

// Centiseconds per unit.
const (
	Second = int64(100)
	Minute = 60 * Second
	Hour   = 60 * Minute
)

var timeRegex = regexp.MustCompile(`^(?:(\d+):)?(?:(\d{1,2}):)?(\d{1,2})(?:\.(\d{1,2}))?$`)

// Parse reads a scraped race time like "17:32.4", "1:02:15.07" or
// "58.3" into centiseconds. A lone fraction digit means tenths.
func Parse(s string) (int64, error) {
	m := timeRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("unparseable race time: %q", s)
	}

	first, second, secs, frac := m[1], m[2], m[3], m[4]

	var hours, minutes int64
	switch {
	case first != "" && second != "":
		hours, _ = strconv.ParseInt(first, 10, 64)
		minutes, _ = strconv.ParseInt(second, 10, 64)
	case first != "":
		minutes, _ = strconv.ParseInt(first, 10, 64)
	}

	seconds, _ := strconv.ParseInt(secs, 10, 64)
	if minutes > 0 && seconds > 59 {
		return 0, fmt.Errorf("unparseable race time: %q", s)
	}

	var cs int64
	switch len(frac) {
	case 0:
	case 1:
		cs, _ = strconv.ParseInt(frac, 10, 64)
		cs *= 10
	case 2:
		cs, _ = strconv.ParseInt(frac, 10, 64)
	}

	total := hours*Hour + minutes*Minute + seconds*Second + cs
	if total <= 0 {
		return 0, fmt.Errorf("race time must be positive: %q", s)
	}
	return total, nil
}

// Format renders centiseconds the way meet results print them,
// "17:32.40" or "1:02:15.07" once past the hour.
func Format(cs int64) string {
	if cs < 0 {
		return "-" + Format(-cs)
	}
	hours := cs / Hour
	cs %= Hour
	minutes := cs / Minute
	cs %= Minute
	seconds := cs / Second
	frac := cs % Second

	if hours > 0 {
		return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, frac)
	}
	return fmt.Sprintf("%d:%02d.%02d", minutes, seconds, frac)
}
