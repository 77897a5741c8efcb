package results

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"xcresults-backend/lib/timezone"
	"xcresults-backend/services/results/db"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
	_ "modernc.org/sqlite"
)

// Store is the persistence collaborator the reconciler, rankings and
// review services talk to. It wraps the sqlc query layer with domain
// types and the row-level error taxonomy.
type Store struct {
	db  *sql.DB
	qry *db.Queries
}

func NewStore(database *sql.DB) Store {
	return Store{
		db:  database,
		qry: db.New(database),
	}
}

func (s Store) WithTx(tx *sql.Tx) Store {
	return Store{
		db:  s.db,
		qry: s.qry.WithTx(tx),
	}
}

// InTx runs fn against a transactional copy of the store.
func (s Store) InTx(ctx context.Context, fn func(Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = fn(s.WithTx(tx))
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (s Store) FindSchool(ctx context.Context, key string) (School, error) {
	row, err := s.qry.GetSchoolByKey(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return School{}, fmt.Errorf("%w: %q", ErrUnknownSchool, key)
	}
	if err != nil {
		return School{}, err
	}
	return School{ID: row.ID, Key: row.Key, Name: row.Name}, nil
}

func (s Store) CreateSchool(ctx context.Context, key, name string) (int64, error) {
	return s.qry.CreateSchool(ctx, db.CreateSchoolParams{Key: key, Name: name})
}

func (s Store) FindRace(ctx context.Context, key string) (Race, error) {
	row, err := s.qry.GetRaceByKey(ctx, key)
	if errors.Is(err, sql.ErrNoRows) {
		return Race{}, fmt.Errorf("%w: %q", ErrUnknownRace, key)
	}
	if err != nil {
		return Race{}, err
	}
	return Race{
		ID:       row.ID,
		Key:      row.Key,
		MeetID:   row.MeetID,
		CourseID: row.CourseID,
		Gender:   row.Gender,
		Division: row.Division,
		MeetDate: time.Unix(row.MeetDate, 0).In(timezone.Location),
		Season:   row.Season,
		Course: Course{
			ID:               row.CourseID,
			DistanceMeters:   row.DistanceMeters,
			DifficultyRating: row.DifficultyRating.Float64,
			Rated:            row.DifficultyRating.Valid,
		},
	}, nil
}

func athleteFromRow(row db.Athlete) Athlete {
	return Athlete{
		ID:        row.ID,
		SchoolID:  row.SchoolID,
		FullName:  row.FullName,
		FirstName: row.FirstName,
		LastName:  row.LastName,
		Gender:    row.Gender,
		GradYear:  row.GradYear,
		Slug:      row.Slug,
	}
}

func (s Store) Athlete(ctx context.Context, id int64) (Athlete, error) {
	row, err := s.qry.GetAthlete(ctx, id)
	if err != nil {
		return Athlete{}, err
	}
	return athleteFromRow(row), nil
}

// FindAthleteExact looks for a case-sensitive (name, grad year) match
// at a school. The bool reports whether one was found.
func (s Store) FindAthleteExact(ctx context.Context, schoolID int64, fullName string, gradYear int64) (Athlete, bool, error) {
	row, err := s.qry.GetAthleteExact(ctx, db.GetAthleteExactParams{
		SchoolID: schoolID,
		FullName: fullName,
		GradYear: gradYear,
	})
	if errors.Is(err, sql.ErrNoRows) {
		return Athlete{}, false, nil
	}
	if err != nil {
		return Athlete{}, false, err
	}
	return athleteFromRow(row), true, nil
}

func (s Store) AthletesBySchool(ctx context.Context, schoolID int64) ([]Athlete, error) {
	rows, err := s.qry.ListAthletesBySchool(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	athletes := make([]Athlete, len(rows))
	for i, row := range rows {
		athletes[i] = athleteFromRow(row)
	}
	return athletes, nil
}

func (s Store) CreateAthlete(ctx context.Context, a Athlete) (int64, error) {
	id, err := s.qry.CreateAthlete(ctx, db.CreateAthleteParams{
		SchoolID:  a.SchoolID,
		FullName:  a.FullName,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Gender:    a.Gender,
		GradYear:  a.GradYear,
		Slug:      a.Slug,
	})
	if err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed: athletes.slug") {
		return 0, SlugCollisionError{Slug: a.Slug}
	}
	return id, err
}

// MergeAthletes repoints every result owned by dupID onto keepID and
// deletes the duplicate identity, all in one transaction.
func (s Store) MergeAthletes(ctx context.Context, keepID, dupID int64) error {
	return s.InTx(ctx, func(tx Store) error {
		err := tx.qry.RepointResults(ctx, db.RepointResultsParams{
			AthleteID:   keepID,
			AthleteID_2: dupID,
		})
		if err != nil {
			return err
		}
		err = tx.qry.DeleteBestTimesForAthletes(ctx, []int64{dupID})
		if err != nil {
			return err
		}
		return tx.qry.DeleteAthlete(ctx, dupID)
	})
}

func resultFromRow(row db.Result) Result {
	return Result{
		ID:           row.ID,
		AthleteID:    row.AthleteID,
		RaceID:       row.RaceID,
		TimeCs:       row.TimeCs,
		Place:        row.Place.Int64,
		Source:       row.Source,
		NormalizedCs: row.NormalizedCs.Int64,
		Normalized:   row.NormalizedCs.Valid,
	}
}

func (s Store) Result(ctx context.Context, id int64) (Result, error) {
	row, err := s.qry.GetResult(ctx, id)
	if err != nil {
		return Result{}, err
	}
	return resultFromRow(row), nil
}

func (s Store) ResultsFor(ctx context.Context, athleteID, raceID int64) ([]Result, error) {
	rows, err := s.qry.ListResultsForAthleteRace(ctx, db.ListResultsForAthleteRaceParams{
		AthleteID: athleteID,
		RaceID:    raceID,
	})
	if err != nil {
		return nil, err
	}
	out := make([]Result, len(rows))
	for i, row := range rows {
		out[i] = resultFromRow(row)
	}
	return out, nil
}

func (s Store) CreateResult(ctx context.Context, r Result) (int64, error) {
	return s.qry.CreateResult(ctx, db.CreateResultParams{
		AthleteID:    r.AthleteID,
		RaceID:       r.RaceID,
		TimeCs:       r.TimeCs,
		Place:        sql.NullInt64{Int64: r.Place, Valid: r.Place > 0},
		Source:       r.Source,
		NormalizedCs: sql.NullInt64{Int64: r.NormalizedCs, Valid: r.Normalized},
	})
}

func (s Store) SetResultNormalized(ctx context.Context, resultID, normalizedCs int64) error {
	return s.qry.SetResultNormalized(ctx, db.SetResultNormalizedParams{
		NormalizedCs: sql.NullInt64{Int64: normalizedCs, Valid: true},
		ID:           resultID,
	})
}

func (s Store) DeleteResult(ctx context.Context, id int64) error {
	return s.qry.DeleteResult(ctx, id)
}

// ResultsMissingNormalized lists results on a course that were stored
// before the course had a difficulty rating.
func (s Store) ResultsMissingNormalized(ctx context.Context, courseID int64) ([]Result, error) {
	rows, err := s.qry.ListResultsMissingNormalized(ctx, courseID)
	if err != nil {
		return nil, err
	}
	out := make([]Result, len(rows))
	for i, row := range rows {
		out[i] = resultFromRow(row)
	}
	return out, nil
}

func conflictFromRow(row db.PotentialDuplicate) Conflict {
	return Conflict{
		ID:               row.ID,
		Kind:             ConflictKind(row.Kind),
		Status:           ConflictStatus(row.Status),
		LeftRef:          row.LeftRef,
		RightRef:         row.RightRef,
		Detail:           row.Detail,
		RawRow:           row.RawRow,
		TimeDifferenceCs: row.TimeDifferenceCs.Int64,
		CreatedAt:        time.Unix(row.CreatedAt, 0).In(timezone.Location),
	}
}

func (s Store) CreateConflict(ctx context.Context, c NewConflict) (int64, error) {
	return s.qry.CreatePotentialDuplicate(ctx, db.CreatePotentialDuplicateParams{
		Kind:     string(c.Kind),
		LeftRef:  c.LeftRef,
		RightRef: c.RightRef,
		Detail:   c.Detail,
		RawRow:   c.RawRow,
		TimeDifferenceCs: sql.NullInt64{
			Int64: c.TimeDifferenceCs,
			Valid: c.Kind == ConflictDifferentTimes,
		},
		CreatedAt: timezone.Now().Unix(),
	})
}

func (s Store) Conflict(ctx context.Context, id int64) (Conflict, error) {
	row, err := s.qry.GetPotentialDuplicate(ctx, id)
	if err != nil {
		return Conflict{}, err
	}
	return conflictFromRow(row), nil
}

func (s Store) PendingConflicts(ctx context.Context) ([]Conflict, error) {
	rows, err := s.qry.ListPendingDuplicates(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Conflict, len(rows))
	for i, row := range rows {
		out[i] = conflictFromRow(row)
	}
	return out, nil
}

func (s Store) SetConflictStatus(ctx context.Context, id int64, status ConflictStatus) error {
	return s.qry.SetPotentialDuplicateStatus(ctx, db.SetPotentialDuplicateStatusParams{
		Status: string(status),
		ID:     id,
	})
}

func (s Store) Course(ctx context.Context, id int64) (Course, error) {
	row, err := s.qry.GetCourse(ctx, id)
	if err != nil {
		return Course{}, err
	}
	return Course{
		ID:               row.ID,
		Name:             row.Name,
		DistanceMeters:   row.DistanceMeters,
		DifficultyRating: row.DifficultyRating.Float64,
		Rated:            row.DifficultyRating.Valid,
	}, nil
}

func (s Store) Courses(ctx context.Context) ([]Course, error) {
	rows, err := s.qry.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Course, len(rows))
	for i, row := range rows {
		out[i] = Course{
			ID:               row.ID,
			Name:             row.Name,
			DistanceMeters:   row.DistanceMeters,
			DifficultyRating: row.DifficultyRating.Float64,
			Rated:            row.DifficultyRating.Valid,
		}
	}
	return out, nil
}

// CreateCourse registers a venue/distance pair. Pass rated=false for a
// course nobody has rated yet, the rating column stays NULL.
func (s Store) CreateCourse(ctx context.Context, name string, distanceMeters float64, difficultyRating float64, rated bool) (int64, error) {
	return s.qry.CreateCourse(ctx, db.CreateCourseParams{
		Name:             name,
		DistanceMeters:   distanceMeters,
		DifficultyRating: sql.NullFloat64{Float64: difficultyRating, Valid: rated},
	})
}

func (s Store) SetCourseRating(ctx context.Context, courseID int64, rating float64) error {
	return s.qry.SetCourseRating(ctx, db.SetCourseRatingParams{
		DifficultyRating: sql.NullFloat64{Float64: rating, Valid: true},
		ID:               courseID,
	})
}

func (s Store) CreateMeet(ctx context.Context, key, name string, date time.Time, season int64) (int64, error) {
	return s.qry.CreateMeet(ctx, db.CreateMeetParams{
		Key:    key,
		Name:   name,
		Date:   date.Unix(),
		Season: season,
	})
}

func (s Store) CreateRace(ctx context.Context, key string, meetID, courseID int64, gender, division string) (int64, error) {
	return s.qry.CreateRace(ctx, db.CreateRaceParams{
		Key:      key,
		MeetID:   meetID,
		CourseID: courseID,
		Gender:   gender,
		Division: division,
	})
}

// Queries exposes the generated query layer for the rankings service,
// which works in bulk against the derived tables.
func (s Store) Queries() *db.Queries {
	return s.qry
}
