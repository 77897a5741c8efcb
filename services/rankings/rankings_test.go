package rankings

import (
	"context"
	"testing"
	"time"
	"xcresults-backend/lib/testutil"
	"xcresults-backend/lib/timezone"
	"xcresults-backend/services/reconciler"
	"xcresults-backend/services/results"
	"xcresults-backend/services/results/db"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) results.Store {
	res, cleanup := testutil.SetupService(t, testutil.ServiceParams{
		Name:     "services/rankings",
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
	_, err = store.CreateRace(ctx, "county-2024-vg", meetID, courseID, "F", "varsity")
	require.NoError(t, err)

	rec := reconciler.New(store)
	rows := []reconciler.Row{
		{SchoolKey: "central", FullName: "John Smith", FirstName: "John", LastName: "Smith",
			Grade: 9, Gender: "M", RaceKey: "county-2024-vb", TimeCs: 105240},
		{SchoolKey: "central", FullName: "Mark Rowe", FirstName: "Mark", LastName: "Rowe",
			Grade: 10, Gender: "M", RaceKey: "county-2024-vb", TimeCs: 102000},
		{SchoolKey: "central", FullName: "Jane Doe", FirstName: "Jane", LastName: "Doe",
			Grade: 9, Gender: "F", RaceKey: "county-2024-vg", TimeCs: 110500},
	}
	report := rec.RunBatch(ctx, rows)
	require.Equal(t, 0, report.Failed)

	return store
}

func TestRecompute(t *testing.T) {
	store := setup(t)
	ctx := context.Background()
	service := NewService(store)

	err := service.Recompute(ctx, Scope{})
	require.NoError(t, err)

	board, err := service.SeasonLeaderboard(ctx, 2024)
	require.NoError(t, err)
	require.Len(t, board, 3)
	// fastest normalized pace first
	require.Equal(t, "Mark Rowe", board[0].FullName)
	require.Equal(t, "John Smith", board[1].FullName)
	require.Equal(t, "Jane Doe", board[2].FullName)

	records, err := service.CourseRecords(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "F", records[0].Gender)
	require.Equal(t, int64(110500), records[0].TimeCs)
	require.Equal(t, "M", records[1].Gender)
	require.Equal(t, int64(102000), records[1].TimeCs)
}

func TestRecomputeIsIdempotent(t *testing.T) {
	store := setup(t)
	ctx := context.Background()
	service := NewService(store)

	err := service.Recompute(ctx, Scope{})
	require.NoError(t, err)
	before, err := service.SeasonLeaderboard(ctx, 2024)
	require.NoError(t, err)

	err = service.Recompute(ctx, Scope{})
	require.NoError(t, err)
	after, err := service.SeasonLeaderboard(ctx, 2024)
	require.NoError(t, err)

	require.Empty(t, cmp.Diff(before, after))
}

func TestRecomputeScoped(t *testing.T) {
	store := setup(t)
	ctx := context.Background()
	service := NewService(store)

	err := service.Recompute(ctx, Scope{})
	require.NoError(t, err)

	// a scoped pass over one athlete must not disturb the others
	board, err := service.SeasonLeaderboard(ctx, 2024)
	require.NoError(t, err)
	scoped := Scope{AthleteIDs: []int64{board[0].AthleteID}}

	err = service.Recompute(ctx, scoped)
	require.NoError(t, err)

	after, err := service.SeasonLeaderboard(ctx, 2024)
	require.NoError(t, err)
	require.Empty(t, cmp.Diff(board, after))
}
