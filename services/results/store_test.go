package results

import (
	"context"
	"testing"
	"time"
	"xcresults-backend/lib/testutil"
	"xcresults-backend/lib/timezone"
	"xcresults-backend/services/results/db"

	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) Store {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/results",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)
	return NewStore(res.DB)
}

func TestFindSchool(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	_, err := store.FindSchool(ctx, "central")
	require.ErrorIs(t, err, ErrUnknownSchool)

	id, err := store.CreateSchool(ctx, "central", "Central High")
	require.NoError(t, err)

	school, err := store.FindSchool(ctx, "central")
	require.NoError(t, err)
	require.Equal(t, id, school.ID)
	require.Equal(t, "Central High", school.Name)
}

func TestFindRace(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	_, err := store.FindRace(ctx, "county-2024-vb")
	require.ErrorIs(t, err, ErrUnknownRace)

	courseID, err := store.CreateCourse(ctx, "Crystal Springs", 4828.03, 1.05, true)
	require.NoError(t, err)
	meetDate := time.Date(2024, time.September, 21, 9, 0, 0, 0, timezone.Location)
	meetID, err := store.CreateMeet(ctx, "county-2024", "County Championships", meetDate, 2024)
	require.NoError(t, err)
	_, err = store.CreateRace(ctx, "county-2024-vb", meetID, courseID, "M", "varsity")
	require.NoError(t, err)

	race, err := store.FindRace(ctx, "county-2024-vb")
	require.NoError(t, err)
	require.Equal(t, meetDate.Unix(), race.MeetDate.Unix())
	require.Equal(t, int64(2024), race.Season)
	require.True(t, race.Course.Rated)
	require.InDelta(t, 1.05, race.Course.DifficultyRating, 1e-9)
	require.InDelta(t, 4828.03, race.Course.DistanceMeters, 1e-9)
}

func TestCreateAthleteSlugCollision(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	schoolID, err := store.CreateSchool(ctx, "central", "Central High")
	require.NoError(t, err)

	athlete := Athlete{
		SchoolID:  schoolID,
		FullName:  "Jane Doe",
		FirstName: "Jane",
		LastName:  "Doe",
		Gender:    "F",
		GradYear:  2028,
		Slug:      "jane-doe-central-2028",
	}
	_, err = store.CreateAthlete(ctx, athlete)
	require.NoError(t, err)

	_, err = store.CreateAthlete(ctx, athlete)
	var collision SlugCollisionError
	require.ErrorAs(t, err, &collision)
	require.Equal(t, "jane-doe-central-2028", collision.Slug)
}

func TestUnratedCourse(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	courseID, err := store.CreateCourse(ctx, "New Park", 5000, 0, false)
	require.NoError(t, err)

	course, err := store.Course(ctx, courseID)
	require.NoError(t, err)
	require.False(t, course.Rated)

	err = store.SetCourseRating(ctx, courseID, 1.08)
	require.NoError(t, err)

	course, err = store.Course(ctx, courseID)
	require.NoError(t, err)
	require.True(t, course.Rated)
	require.InDelta(t, 1.08, course.DifficultyRating, 1e-9)
}

func TestMergeAthletes(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	schoolID, err := store.CreateSchool(ctx, "central", "Central High")
	require.NoError(t, err)
	courseID, err := store.CreateCourse(ctx, "Crystal Springs", 4828.03, 1.05, true)
	require.NoError(t, err)
	meetDate := time.Date(2024, time.September, 21, 9, 0, 0, 0, timezone.Location)
	meetID, err := store.CreateMeet(ctx, "county-2024", "County Championships", meetDate, 2024)
	require.NoError(t, err)
	raceID, err := store.CreateRace(ctx, "county-2024-vb", meetID, courseID, "M", "varsity")
	require.NoError(t, err)

	keepID, err := store.CreateAthlete(ctx, Athlete{
		SchoolID: schoolID, FullName: "John Smith", FirstName: "John",
		LastName: "Smith", Gender: "M", GradYear: 2028,
		Slug: "john-smith-central-2028",
	})
	require.NoError(t, err)
	dupID, err := store.CreateAthlete(ctx, Athlete{
		SchoolID: schoolID, FullName: "John Smith", FirstName: "John",
		LastName: "Smith", Gender: "M", GradYear: 2028,
		Slug: "john-smith-central-2028-2",
	})
	require.NoError(t, err)

	_, err = store.CreateResult(ctx, Result{
		AthleteID: dupID, RaceID: raceID, TimeCs: 105240,
	})
	require.NoError(t, err)

	err = store.MergeAthletes(ctx, keepID, dupID)
	require.NoError(t, err)

	_, err = store.Athlete(ctx, dupID)
	require.Error(t, err)

	stored, err := store.ResultsFor(ctx, keepID, raceID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, int64(105240), stored[0].TimeCs)
}

func TestResultsMissingNormalized(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	schoolID, err := store.CreateSchool(ctx, "central", "Central High")
	require.NoError(t, err)
	courseID, err := store.CreateCourse(ctx, "New Park", 5000, 0, false)
	require.NoError(t, err)
	meetDate := time.Date(2024, time.September, 21, 9, 0, 0, 0, timezone.Location)
	meetID, err := store.CreateMeet(ctx, "invite-2024", "Fall Invite", meetDate, 2024)
	require.NoError(t, err)
	raceID, err := store.CreateRace(ctx, "invite-2024-vb", meetID, courseID, "M", "varsity")
	require.NoError(t, err)

	athleteID, err := store.CreateAthlete(ctx, Athlete{
		SchoolID: schoolID, FullName: "John Smith", FirstName: "John",
		LastName: "Smith", Gender: "M", GradYear: 2028,
		Slug: "john-smith-central-2028",
	})
	require.NoError(t, err)
	resultID, err := store.CreateResult(ctx, Result{
		AthleteID: athleteID, RaceID: raceID, TimeCs: 105240,
	})
	require.NoError(t, err)

	missing, err := store.ResultsMissingNormalized(ctx, courseID)
	require.NoError(t, err)
	require.Len(t, missing, 1)
	require.Equal(t, resultID, missing[0].ID)

	err = store.SetResultNormalized(ctx, resultID, 32381)
	require.NoError(t, err)

	missing, err = store.ResultsMissingNormalized(ctx, courseID)
	require.NoError(t, err)
	require.Empty(t, missing)

	stored, err := store.Result(ctx, resultID)
	require.NoError(t, err)
	require.True(t, stored.Normalized)
	require.Equal(t, int64(32381), stored.NormalizedCs)
}

func TestConflictLifecycle(t *testing.T) {
	store := setup(t)
	ctx := context.Background()

	id, err := store.CreateConflict(ctx, NewConflict{
		Kind:             ConflictDifferentTimes,
		LeftRef:          1,
		RightRef:         2,
		Detail:           "105240 vs 105840 cs",
		RawRow:           `{"full_name":"John Smith"}`,
		TimeDifferenceCs: 600,
	})
	require.NoError(t, err)

	conflict, err := store.Conflict(ctx, id)
	require.NoError(t, err)
	require.Equal(t, ConflictPending, conflict.Status)
	require.Equal(t, int64(600), conflict.TimeDifferenceCs)
	require.False(t, conflict.CreatedAt.IsZero())

	pending, err := store.PendingConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)

	err = store.SetConflictStatus(ctx, id, ConflictResolved)
	require.NoError(t, err)

	pending, err = store.PendingConflicts(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)
}
