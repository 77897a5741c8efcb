package reconciler

import (
	"testing"
	"time"
	"xcresults-backend/lib/timezone"

	"github.com/stretchr/testify/require"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 9, 0, 0, 0, timezone.Location)
}

func TestSeasonYear(t *testing.T) {
	require.Equal(t, int64(2024), SeasonYear(date(2024, time.September, 21)))
	require.Equal(t, int64(2024), SeasonYear(date(2024, time.August, 1)))
	// spring meets belong to the previous fall's season
	require.Equal(t, int64(2024), SeasonYear(date(2025, time.May, 3)))
	require.Equal(t, int64(2025), SeasonYear(date(2025, time.August, 30)))
}

func TestGradYear(t *testing.T) {
	cases := []struct {
		name     string
		grade    int64
		meetDate time.Time
		expected int64
	}{
		{"freshman in the fall", 9, date(2024, time.September, 21), 2028},
		{"same freshman the following spring", 9, date(2025, time.May, 3), 2028},
		{"senior", 12, date(2024, time.October, 12), 2025},
		{"post-grad year", 13, date(2024, time.October, 12), 2024},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			require.Equal(t, c.expected, GradYear(c.grade, c.meetDate))
		})
	}
}
