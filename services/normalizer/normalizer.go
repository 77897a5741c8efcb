// Package normalizer converts raw race times into standard-mile paces
// so performances on different courses can be ranked against each other.
package normalizer

import (
	"fmt"
	"math"
	"sort"
)

const MetersPerMile = 1609.344

// InvalidInputError means a normalization was attempted with incomplete
// course data. The caller decides what to do about an unrated course,
// this package never substitutes a default rating.
type InvalidInputError struct {
	Field string
	Value float64
}

func (e InvalidInputError) Error() string {
	return fmt.Sprintf("cannot normalize with %s = %v", e.Field, e.Value)
}

// Normalize converts a raw time on a course into the equivalent pace,
// in centiseconds, over one mile on a difficulty 1.0 course. A rating
// above 1.0 marks a harder course, so the same raw time normalizes to
// a faster pace there.
//
// The value is only meaningful for ranking, it is never shown as a
// literal race time.
func Normalize(timeCs int64, distanceMeters, difficultyRating float64) (int64, error) {
	if timeCs <= 0 {
		return 0, InvalidInputError{Field: "time_cs", Value: float64(timeCs)}
	}
	if distanceMeters <= 0 {
		return 0, InvalidInputError{Field: "distance_meters", Value: distanceMeters}
	}
	if difficultyRating <= 0 {
		return 0, InvalidInputError{Field: "difficulty_rating", Value: difficultyRating}
	}

	pacePerMile := float64(timeCs) / distanceMeters * MetersPerMile
	return int64(math.Round(pacePerMile / difficultyRating)), nil
}

// PredictTime inverts Normalize: given a standard-mile pace it predicts
// a race time, in centiseconds, on a hypothetical course.
func PredictTime(normalizedCs int64, targetMiles, targetDifficulty float64) (int64, error) {
	if normalizedCs <= 0 {
		return 0, InvalidInputError{Field: "normalized_cs", Value: float64(normalizedCs)}
	}
	if targetMiles <= 0 {
		return 0, InvalidInputError{Field: "target_miles", Value: targetMiles}
	}
	if targetDifficulty <= 0 {
		return 0, InvalidInputError{Field: "target_difficulty", Value: targetDifficulty}
	}

	return int64(math.Round(float64(normalizedCs) * targetDifficulty * targetMiles)), nil
}

// Performance pairs an athlete's established standard-mile pace with
// the raw per-mile pace the same athlete ran on the course being rated.
type Performance struct {
	BaselineCs int64
	ObservedCs int64
}

// Recalibrate proposes a difficulty rating for a course from paired
// performances. Each pair votes observed/baseline and the median wins,
// which keeps one athlete's bad day from skewing the rating.
func Recalibrate(perfs []Performance) (float64, error) {
	if len(perfs) == 0 {
		return 0, fmt.Errorf("cannot recalibrate with no performances")
	}

	ratios := make([]float64, 0, len(perfs))
	for _, p := range perfs {
		if p.BaselineCs <= 0 || p.ObservedCs <= 0 {
			return 0, fmt.Errorf("performance times must be positive: %+v", p)
		}
		ratios = append(ratios, float64(p.ObservedCs)/float64(p.BaselineCs))
	}
	sort.Float64s(ratios)

	mid := len(ratios) / 2
	if len(ratios)%2 == 1 {
		return ratios[mid], nil
	}
	return (ratios[mid-1] + ratios[mid]) / 2, nil
}
