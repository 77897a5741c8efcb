// Package reconciler decides how scraped result rows map onto the
// athlete/result data model: exact match, tolerated name variant, or a
// brand new athlete. Anything ambiguous becomes a review-queue conflict
// instead of a hard failure, a bad row must never block the rest of a
// meet's worth of data.
package reconciler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"xcresults-backend/lib/telemetry"
	"xcresults-backend/services/normalizer"
	"xcresults-backend/services/results"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("xcresults.services.reconciler")

// Row is one scraped result line, already split into fields by the
// ingestion side.
type Row struct {
	SchoolKey string `json:"school_key"`
	FullName  string `json:"full_name"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Grade     int64  `json:"grade"`
	Gender    string `json:"gender"`
	RaceKey   string `json:"race_key"`
	TimeCs    int64  `json:"time_cs"`
	Place     int64  `json:"place,omitempty"`
	Source    string `json:"source,omitempty"`
}

// Store is the slice of the results store the reconciler needs. It
// never creates schools, races or meets, those must already exist.
type Store interface {
	FindSchool(ctx context.Context, key string) (results.School, error)
	FindRace(ctx context.Context, key string) (results.Race, error)
	FindAthleteExact(ctx context.Context, schoolID int64, fullName string, gradYear int64) (results.Athlete, bool, error)
	AthletesBySchool(ctx context.Context, schoolID int64) ([]results.Athlete, error)
	CreateAthlete(ctx context.Context, a results.Athlete) (int64, error)
	ResultsFor(ctx context.Context, athleteID, raceID int64) ([]results.Result, error)
	CreateResult(ctx context.Context, r results.Result) (int64, error)
	CreateConflict(ctx context.Context, c results.NewConflict) (int64, error)
}

type Match string

const (
	MatchExact       Match = "exact"
	MatchNameVariant Match = "name_variant"
	MatchNone        Match = "none"
)

type Status string

const (
	StatusResultInserted Status = "result_inserted"
	StatusAthleteCreated Status = "athlete_created"
	// a second result with a different time was stored and flagged
	StatusDuplicateFlagged Status = "duplicate_flagged"
	// an identical row already existed, nothing was written
	StatusDuplicateDiscarded Status = "duplicate_discarded"
)

type Outcome struct {
	Status    Status
	Match     Match
	AthleteID int64
	ResultID  int64
	// review records raised while resolving this row
	ReviewIDs []int64
	// set when Match == MatchNameVariant
	Variant Variant
}

type Reconciler struct {
	store Store
}

func New(store Store) Reconciler {
	return Reconciler{store: store}
}

// maximum attempts at disambiguating a colliding slug before the row
// is given up on
const maxSlugAttempts = 10

// Reconcile resolves one scraped row against the store. School and
// race must resolve or the row fails, identity ambiguity never fails:
// it degrades to a conflict record plus a best-effort insert.
func (r Reconciler) Reconcile(ctx context.Context, row Row) (Outcome, error) {
	ctx, span := tracer.Start(ctx, "Reconcile")
	defer span.End()
	span.SetAttributes(
		attribute.String("school", row.SchoolKey),
		attribute.String("race", row.RaceKey),
	)

	outcome, err := r.reconcile(ctx, row)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return Outcome{}, err
	}
	return outcome, nil
}

func (r Reconciler) reconcile(ctx context.Context, row Row) (Outcome, error) {
	if row.TimeCs <= 0 {
		return Outcome{}, fmt.Errorf("raw time must be positive, got %d", row.TimeCs)
	}

	school, err := r.store.FindSchool(ctx, row.SchoolKey)
	if err != nil {
		return Outcome{}, err
	}
	race, err := r.store.FindRace(ctx, row.RaceKey)
	if err != nil {
		return Outcome{}, err
	}

	gradYear := GradYear(row.Grade, race.MeetDate)

	outcome := Outcome{Match: MatchExact}

	athlete, found, err := r.store.FindAthleteExact(ctx, school.ID, row.FullName, gradYear)
	if err != nil {
		return Outcome{}, err
	}
	if found {
		outcome.AthleteID = athlete.ID
	} else {
		candidates, err := r.store.AthletesBySchool(ctx, school.ID)
		if err != nil {
			return Outcome{}, err
		}

		variantAthlete, variant, matched := findVariant(row, gradYear, candidates)
		if matched {
			// optimistic merge: attribute the result to the
			// established identity, leave the name discrepancy
			// for a human
			outcome.Match = MatchNameVariant
			outcome.Variant = variant
			outcome.AthleteID = variantAthlete.ID

			reviewID, err := r.store.CreateConflict(ctx, results.NewConflict{
				Kind:    results.ConflictNameVariant,
				LeftRef: variantAthlete.ID,
				Detail:  string(variant),
				RawRow:  marshalRow(row),
			})
			if err != nil {
				return Outcome{}, err
			}
			outcome.ReviewIDs = append(outcome.ReviewIDs, reviewID)
		} else {
			outcome.Match = MatchNone
			created, reviewIDs, err := r.createAthlete(ctx, row, school, gradYear, candidates)
			if err != nil {
				return Outcome{}, err
			}
			outcome.AthleteID = created
			outcome.ReviewIDs = append(outcome.ReviewIDs, reviewIDs...)
			outcome.Status = StatusAthleteCreated
		}
	}

	return r.insertResult(ctx, row, race, outcome)
}

// createAthlete inserts a new athlete, retrying with a numbered slug
// when the derived slug is already taken. A collision is flagged for
// admin merge but never crashes the batch.
func (r Reconciler) createAthlete(ctx context.Context, row Row, school results.School, gradYear int64, candidates []results.Athlete) (int64, []int64, error) {
	base := AthleteSlug(row.FirstName, row.LastName, school.Key, gradYear)

	slug := base
	for attempt := 2; ; attempt++ {
		id, err := r.store.CreateAthlete(ctx, results.Athlete{
			SchoolID:  school.ID,
			FullName:  row.FullName,
			FirstName: row.FirstName,
			LastName:  row.LastName,
			Gender:    row.Gender,
			GradYear:  gradYear,
			Slug:      slug,
		})

		var collision results.SlugCollisionError
		if errors.As(err, &collision) {
			if attempt > maxSlugAttempts {
				return 0, nil, fmt.Errorf("could not disambiguate slug %q: %w", base, err)
			}
			slug = disambiguatedSlug(base, attempt)
			continue
		}
		if err != nil {
			return 0, nil, err
		}

		var reviewIDs []int64
		if slug != base {
			reviewID, err := r.store.CreateConflict(ctx, results.NewConflict{
				Kind:     results.ConflictSlugCollision,
				LeftRef:  id,
				RightRef: slugOwner(base, candidates),
				Detail:   base,
				RawRow:   marshalRow(row),
			})
			if err != nil {
				return 0, nil, err
			}
			reviewIDs = append(reviewIDs, reviewID)
			slog.WarnContext(ctx, "athlete slug collision",
				"slug", base, "athlete", id)
		}
		return id, reviewIDs, nil
	}
}

func slugOwner(slug string, candidates []results.Athlete) int64 {
	for _, c := range candidates {
		if c.Slug == slug {
			return c.ID
		}
	}
	return 0
}

// insertResult performs result-level conflict detection after an
// athlete identity is attached. A same-time row is a re-scrape and is
// discarded, a different-time row is stored alongside the old one and
// flagged, no information is ever overwritten.
func (r Reconciler) insertResult(ctx context.Context, row Row, race results.Race, outcome Outcome) (Outcome, error) {
	existing, err := r.store.ResultsFor(ctx, outcome.AthleteID, race.ID)
	if err != nil {
		return Outcome{}, err
	}

	for _, e := range existing {
		if e.TimeCs == row.TimeCs {
			outcome.Status = StatusDuplicateDiscarded
			outcome.ResultID = e.ID
			return outcome, nil
		}
	}

	newResult := results.Result{
		AthleteID: outcome.AthleteID,
		RaceID:    race.ID,
		TimeCs:    row.TimeCs,
		Place:     row.Place,
		Source:    row.Source,
	}
	if race.Course.Rated {
		normalized, err := normalizer.Normalize(
			row.TimeCs,
			race.Course.DistanceMeters,
			race.Course.DifficultyRating,
		)
		if err != nil {
			return Outcome{}, err
		}
		newResult.NormalizedCs = normalized
		newResult.Normalized = true
	}

	resultID, err := r.store.CreateResult(ctx, newResult)
	if err != nil {
		return Outcome{}, err
	}
	outcome.ResultID = resultID

	if len(existing) > 0 {
		diff := existing[0].TimeCs - row.TimeCs
		if diff < 0 {
			diff = -diff
		}
		reviewID, err := r.store.CreateConflict(ctx, results.NewConflict{
			Kind:             results.ConflictDifferentTimes,
			LeftRef:          existing[0].ID,
			RightRef:         resultID,
			Detail:           fmt.Sprintf("%d vs %d cs", existing[0].TimeCs, row.TimeCs),
			RawRow:           marshalRow(row),
			TimeDifferenceCs: diff,
		})
		if err != nil {
			return Outcome{}, err
		}
		outcome.ReviewIDs = append(outcome.ReviewIDs, reviewID)
		outcome.Status = StatusDuplicateFlagged
		return outcome, nil
	}

	if outcome.Status != StatusAthleteCreated {
		outcome.Status = StatusResultInserted
	}
	return outcome, nil
}

func marshalRow(row Row) string {
	raw, err := json.Marshal(row)
	if err != nil {
		return fmt.Sprintf("%+v", row)
	}
	return string(raw)
}
