// Package rankings maintains the derived best-times and course-records
// tables. Raw result writes never touch these, a batch first lands its
// results and then asks for a recomputation, which is pure over the
// stored data and safe to re-run any number of times.
package rankings

import (
	"context"
	"xcresults-backend/lib/telemetry"
	"xcresults-backend/services/results"
	"xcresults-backend/services/results/db"

	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("xcresults.services.rankings")

type Service struct {
	store results.Store
}

func NewService(store results.Store) Service {
	return Service{store: store}
}

// Scope limits a recomputation to the athletes and courses a batch
// actually touched. The zero value recomputes everything.
type Scope struct {
	AthleteIDs []int64
	CourseIDs  []int64
}

func (s Scope) all() bool {
	return len(s.AthleteIDs) == 0 && len(s.CourseIDs) == 0
}

// Recompute rebuilds the derived aggregates inside one transaction:
// delete the affected rows, then reinsert from the results table.
func (s Service) Recompute(ctx context.Context, scope Scope) error {
	ctx, span := tracer.Start(ctx, "Recompute")
	defer span.End()

	err := s.store.InTx(ctx, func(tx results.Store) error {
		err := recomputeBestTimes(ctx, tx.Queries(), scope)
		if err != nil {
			return err
		}
		return recomputeCourseRecords(ctx, tx.Queries(), scope)
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func recomputeBestTimes(ctx context.Context, qry *db.Queries, scope Scope) error {
	var rows []db.ListSeasonBestsRow
	if scope.all() {
		err := qry.DeleteAllBestTimes(ctx)
		if err != nil {
			return err
		}
		rows, err = qry.ListSeasonBests(ctx)
		if err != nil {
			return err
		}
	} else if len(scope.AthleteIDs) > 0 {
		err := qry.DeleteBestTimesForAthletes(ctx, scope.AthleteIDs)
		if err != nil {
			return err
		}
		scoped, err := qry.ListSeasonBestsForAthletes(ctx, scope.AthleteIDs)
		if err != nil {
			return err
		}
		for _, r := range scoped {
			rows = append(rows, db.ListSeasonBestsRow(r))
		}
	}

	for _, r := range rows {
		err := qry.ReplaceBestTime(ctx, db.ReplaceBestTimeParams{
			AthleteID:    r.AthleteID,
			SeasonYear:   r.SeasonYear,
			ResultID:     r.ResultID,
			NormalizedCs: r.NormalizedCs,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func recomputeCourseRecords(ctx context.Context, qry *db.Queries, scope Scope) error {
	var rows []db.ListCourseBestsRow
	if scope.all() {
		err := qry.DeleteAllCourseRecords(ctx)
		if err != nil {
			return err
		}
		rows, err = qry.ListCourseBests(ctx)
		if err != nil {
			return err
		}
	} else if len(scope.CourseIDs) > 0 {
		err := qry.DeleteCourseRecordsForCourses(ctx, scope.CourseIDs)
		if err != nil {
			return err
		}
		scoped, err := qry.ListCourseBestsForCourses(ctx, scope.CourseIDs)
		if err != nil {
			return err
		}
		for _, r := range scoped {
			rows = append(rows, db.ListCourseBestsRow(r))
		}
	}

	for _, r := range rows {
		err := qry.ReplaceCourseRecord(ctx, db.ReplaceCourseRecordParams{
			CourseID: r.CourseID,
			Gender:   r.Gender,
			ResultID: r.ResultID,
			TimeCs:   r.TimeCs,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

// SeasonLeaderboard lists a season's best normalized times, fastest
// first.
func (s Service) SeasonLeaderboard(ctx context.Context, season int64) ([]db.ListBestTimesBySeasonRow, error) {
	return s.store.Queries().ListBestTimesBySeason(ctx, season)
}

// CourseRecords lists the standing record on every course by gender.
func (s Service) CourseRecords(ctx context.Context) ([]db.ListCourseRecordsRow, error) {
	return s.store.Queries().ListCourseRecords(ctx)
}
