package review

import (
	"context"
	"testing"
	"time"
	"xcresults-backend/lib/testutil"
	"xcresults-backend/lib/timezone"
	"xcresults-backend/services/reconciler"
	"xcresults-backend/services/results"
	"xcresults-backend/services/results/db"

	"github.com/stretchr/testify/require"
)

type fixture struct {
	store results.Store
	rec   reconciler.Reconciler
}

func setup(t *testing.T) fixture {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/review",
		DbSchema: db.Schema,
	})
	t.Cleanup(cleanup)

	ctx := context.Background()
	store := results.NewStore(res.DB)

	_, err := store.CreateSchool(ctx, "central", "Central High")
	require.NoError(t, err)
	courseID, err := store.CreateCourse(ctx, "Crystal Springs", 4828.03, 1.05, true)
	require.NoError(t, err)

	meetDate := time.Date(2024, time.September, 21, 9, 0, 0, 0, timezone.Location)
	meetID, err := store.CreateMeet(ctx, "county-2024", "County Championships", meetDate, 2024)
	require.NoError(t, err)
	_, err = store.CreateRace(ctx, "county-2024-vb", meetID, courseID, "M", "varsity")
	require.NoError(t, err)

	return fixture{store: store, rec: reconciler.New(store)}
}

func row(fullName, firstName, lastName string, timeCs int64) reconciler.Row {
	return reconciler.Row{
		SchoolKey: "central",
		FullName:  fullName,
		FirstName: firstName,
		LastName:  lastName,
		Grade:     9,
		Gender:    "M",
		RaceKey:   "county-2024-vb",
		TimeCs:    timeCs,
	}
}

func TestListPending(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	pending, err := service.ListPending(ctx)
	require.NoError(t, err)
	require.Empty(t, pending)

	_, err = f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105240))
	require.NoError(t, err)
	_, err = f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105840))
	require.NoError(t, err)

	pending, err = service.ListPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	require.Equal(t, results.ConflictDifferentTimes, pending[0].Kind)
}

func TestResolveReject(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	first, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105240))
	require.NoError(t, err)
	second, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105840))
	require.NoError(t, err)

	err = service.Resolve(ctx, second.ReviewIDs[0], ActionReject)
	require.NoError(t, err)

	conflict, err := f.store.Conflict(ctx, second.ReviewIDs[0])
	require.NoError(t, err)
	require.Equal(t, results.ConflictRejected, conflict.Status)

	// both results stand
	race, err := f.store.FindRace(ctx, "county-2024-vb")
	require.NoError(t, err)
	stored, err := f.store.ResultsFor(ctx, first.AthleteID, race.ID)
	require.NoError(t, err)
	require.Len(t, stored, 2)

	// a closed conflict cannot be resolved again
	err = service.Resolve(ctx, second.ReviewIDs[0], ActionKeepLeft)
	require.Error(t, err)
}

func TestResolveKeepLeft(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	first, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105240))
	require.NoError(t, err)
	second, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105840))
	require.NoError(t, err)

	err = service.Resolve(ctx, second.ReviewIDs[0], ActionKeepLeft)
	require.NoError(t, err)

	race, err := f.store.FindRace(ctx, "county-2024-vb")
	require.NoError(t, err)
	stored, err := f.store.ResultsFor(ctx, first.AthleteID, race.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, first.ResultID, stored[0].ID)

	conflict, err := f.store.Conflict(ctx, second.ReviewIDs[0])
	require.NoError(t, err)
	require.Equal(t, results.ConflictResolved, conflict.Status)
}

func TestResolveKeepRight(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	first, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105240))
	require.NoError(t, err)
	second, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105840))
	require.NoError(t, err)

	err = service.Resolve(ctx, second.ReviewIDs[0], ActionKeepRight)
	require.NoError(t, err)

	race, err := f.store.FindRace(ctx, "county-2024-vb")
	require.NoError(t, err)
	stored, err := f.store.ResultsFor(ctx, first.AthleteID, race.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, second.ResultID, stored[0].ID)
}

func TestResolveVariantMerge(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	_, err := f.rec.Reconcile(ctx, row("Cameron D'Aunoy", "Cameron", "D'Aunoy", 105240))
	require.NoError(t, err)
	variant, err := f.rec.Reconcile(ctx, row("Cameron D'aunoy", "Cameron", "D'aunoy", 105840))
	require.NoError(t, err)
	require.Equal(t, reconciler.MatchNameVariant, variant.Match)

	// the variant's review id is the name flag, the time flag comes after
	err = service.Resolve(ctx, variant.ReviewIDs[0], ActionMerge)
	require.NoError(t, err)

	conflict, err := f.store.Conflict(ctx, variant.ReviewIDs[0])
	require.NoError(t, err)
	require.Equal(t, results.ConflictResolved, conflict.Status)
}

func TestResolveVariantCreateNew(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	established, err := f.rec.Reconcile(ctx, row("Jane Doe", "Jane", "Doe", 100000))
	require.NoError(t, err)
	variant, err := f.rec.Reconcile(ctx, row("Jane R Doe", "Jane", "Doe", 105240))
	require.NoError(t, err)
	require.Equal(t, reconciler.MatchNameVariant, variant.Match)
	require.Equal(t, established.AthleteID, variant.AthleteID)

	err = service.Resolve(ctx, variant.ReviewIDs[0], ActionCreateNew)
	require.NoError(t, err)

	race, err := f.store.FindRace(ctx, "county-2024-vb")
	require.NoError(t, err)

	// the variant's result moved off the established athlete
	stored, err := f.store.ResultsFor(ctx, established.AthleteID, race.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, int64(100000), stored[0].TimeCs)

	// onto a new athlete with a disambiguated slug
	school, err := f.store.FindSchool(ctx, "central")
	require.NoError(t, err)
	split, found, err := f.store.FindAthleteExact(ctx, school.ID, "Jane R Doe", 2028)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "jane-doe-central-2028-2", split.Slug)

	moved, err := f.store.ResultsFor(ctx, split.ID, race.ID)
	require.NoError(t, err)
	require.Len(t, moved, 1)
	require.Equal(t, int64(105240), moved[0].TimeCs)

	conflict, err := f.store.Conflict(ctx, variant.ReviewIDs[0])
	require.NoError(t, err)
	require.Equal(t, results.ConflictResolved, conflict.Status)
}

func TestResolveSlugCollisionMerge(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	school, err := f.store.FindSchool(ctx, "central")
	require.NoError(t, err)
	importedID, err := f.store.CreateAthlete(ctx, results.Athlete{
		SchoolID:  school.ID,
		FullName:  "Jon Roe",
		FirstName: "Jon",
		LastName:  "Roe",
		Gender:    "M",
		GradYear:  2029,
		Slug:      "john-roe-central-2028",
	})
	require.NoError(t, err)

	outcome, err := f.rec.Reconcile(ctx, row("John Roe", "John", "Roe", 105240))
	require.NoError(t, err)
	require.Len(t, outcome.ReviewIDs, 1)

	err = service.Resolve(ctx, outcome.ReviewIDs[0], ActionMerge)
	require.NoError(t, err)

	// the freshly created duplicate folded into the imported athlete
	_, err = f.store.Athlete(ctx, outcome.AthleteID)
	require.Error(t, err)

	race, err := f.store.FindRace(ctx, "county-2024-vb")
	require.NoError(t, err)
	stored, err := f.store.ResultsFor(ctx, importedID, race.ID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
}

func TestResolveRejectsMismatchedAction(t *testing.T) {
	f := setup(t)
	ctx := context.Background()
	service := NewService(f.store)

	_, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105240))
	require.NoError(t, err)
	second, err := f.rec.Reconcile(ctx, row("John Smith", "John", "Smith", 105840))
	require.NoError(t, err)

	err = service.Resolve(ctx, second.ReviewIDs[0], ActionCreateNew)
	require.Error(t, err)

	// the conflict stays pending
	conflict, err := f.store.Conflict(ctx, second.ReviewIDs[0])
	require.NoError(t, err)
	require.Equal(t, results.ConflictPending, conflict.Status)
}
