package normalizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	// 20:00.00 on a three mile course rated 1.05
	got, err := Normalize(120000, 4828.03, 1.05)
	require.NoError(t, err)
	require.Equal(t, int64(38095), got)
}

func TestNormalizeIdentity(t *testing.T) {
	// one mile at difficulty 1.0 normalizes to itself
	got, err := Normalize(30000, MetersPerMile, 1.0)
	require.NoError(t, err)
	require.Equal(t, int64(30000), got)
}

func TestNormalizeDeterministic(t *testing.T) {
	a, err := Normalize(105240, 5000, 1.02)
	require.NoError(t, err)
	b, err := Normalize(105240, 5000, 1.02)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

func TestNormalizeMonotonic(t *testing.T) {
	prev := int64(0)
	for timeCs := int64(90000); timeCs <= 150000; timeCs += 5000 {
		got, err := Normalize(timeCs, 4828.03, 1.05)
		require.NoError(t, err)
		require.Greater(t, got, prev)
		prev = got
	}
}

func TestNormalizeHarderCourseIsFaster(t *testing.T) {
	easy, err := Normalize(120000, 4828.03, 1.0)
	require.NoError(t, err)
	hard, err := Normalize(120000, 4828.03, 1.1)
	require.NoError(t, err)
	require.Less(t, hard, easy)
}

func TestNormalizeInvalidInput(t *testing.T) {
	cases := []struct {
		name       string
		timeCs     int64
		distance   float64
		difficulty float64
	}{
		{"zero time", 0, 4828.03, 1.05},
		{"negative time", -100, 4828.03, 1.05},
		{"zero distance", 120000, 0, 1.05},
		{"zero difficulty", 120000, 4828.03, 0},
		{"negative difficulty", 120000, 4828.03, -1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Normalize(c.timeCs, c.distance, c.difficulty)
			var invalid InvalidInputError
			require.ErrorAs(t, err, &invalid)
		})
	}
}

func TestPredictTimeRoundTrip(t *testing.T) {
	const distance = 4828.03
	const difficulty = 1.05

	normalized, err := Normalize(120000, distance, difficulty)
	require.NoError(t, err)
	predicted, err := PredictTime(normalized, distance/MetersPerMile, difficulty)
	require.NoError(t, err)

	// rounding the intermediate pace costs at most a couple of
	// centiseconds over three miles
	require.InDelta(t, 120000, predicted, 2)
}

func TestPredictTimeInvalidInput(t *testing.T) {
	_, err := PredictTime(0, 3.0, 1.05)
	var invalid InvalidInputError
	require.ErrorAs(t, err, &invalid)

	_, err = PredictTime(38095, -1, 1.05)
	require.ErrorAs(t, err, &invalid)
}

func TestRecalibrate(t *testing.T) {
	// odd count takes the middle ratio
	rating, err := Recalibrate([]Performance{
		{BaselineCs: 30000, ObservedCs: 33000},
		{BaselineCs: 30000, ObservedCs: 31500},
		{BaselineCs: 30000, ObservedCs: 30000},
	})
	require.NoError(t, err)
	require.InDelta(t, 1.05, rating, 1e-9)

	// even count averages the middle two
	rating, err = Recalibrate([]Performance{
		{BaselineCs: 30000, ObservedCs: 30000},
		{BaselineCs: 30000, ObservedCs: 33000},
	})
	require.NoError(t, err)
	require.InDelta(t, 1.05, rating, 1e-9)
}

func TestRecalibrateRejects(t *testing.T) {
	_, err := Recalibrate(nil)
	require.Error(t, err)

	_, err = Recalibrate([]Performance{{BaselineCs: 0, ObservedCs: 30000}})
	require.Error(t, err)
}
