// Package review is the single supported override path for identity
// and time conflicts. Every conflict the reconciler flags lands in one
// queue, an admin lists it and applies a resolution, nothing else in
// the system mutates established identities.
package review

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"xcresults-backend/lib/telemetry"
	"xcresults-backend/services/reconciler"
	"xcresults-backend/services/results"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = telemetry.Tracer("xcresults.services.review")

type Action string

const (
	// identity conflicts: fold the duplicate identity into the
	// established one
	ActionMerge Action = "merge"
	// the flag was a false positive, both sides stand
	ActionReject Action = "reject"
	// name-variant conflicts: the variant really is a different
	// person, split them apart
	ActionCreateNew Action = "create_new"
	// time conflicts: pick the surviving result
	ActionKeepLeft  Action = "keep_left"
	ActionKeepRight Action = "keep_right"
)

type Service struct {
	store results.Store
}

func NewService(store results.Store) Service {
	return Service{store: store}
}

func (s Service) ListPending(ctx context.Context) ([]results.Conflict, error) {
	return s.store.PendingConflicts(ctx)
}

// Resolve applies an admin decision to a pending conflict. Actions are
// gated by conflict kind, an invalid pairing is an error and leaves
// the conflict pending.
func (s Service) Resolve(ctx context.Context, id int64, action Action) error {
	ctx, span := tracer.Start(ctx, "Resolve")
	defer span.End()
	span.SetAttributes(
		attribute.Int64("conflict", id),
		attribute.String("action", string(action)),
	)

	err := s.resolve(ctx, id, action)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

func (s Service) resolve(ctx context.Context, id int64, action Action) error {
	conflict, err := s.store.Conflict(ctx, id)
	if err != nil {
		return err
	}
	if conflict.Status != results.ConflictPending {
		return fmt.Errorf("conflict %d is already %s", id, conflict.Status)
	}

	if action == ActionReject {
		return s.store.SetConflictStatus(ctx, id, results.ConflictRejected)
	}

	switch conflict.Kind {
	case results.ConflictNameVariant:
		switch action {
		case ActionMerge:
			// the result was already attributed to the
			// established athlete, accepting the variant is
			// just closing the flag
		case ActionCreateNew:
			err := s.splitVariant(ctx, conflict)
			if err != nil {
				return err
			}
		default:
			return fmt.Errorf("action %q does not apply to %s", action, conflict.Kind)
		}

	case results.ConflictSlugCollision:
		if action != ActionMerge {
			return fmt.Errorf("action %q does not apply to %s", action, conflict.Kind)
		}
		if conflict.RightRef == 0 {
			return fmt.Errorf("conflict %d has no known collision owner to merge into", id)
		}
		err := s.store.MergeAthletes(ctx, conflict.RightRef, conflict.LeftRef)
		if err != nil {
			return err
		}

	case results.ConflictDifferentTimes:
		var doomed int64
		switch action {
		case ActionKeepLeft:
			doomed = conflict.RightRef
		case ActionKeepRight:
			doomed = conflict.LeftRef
		default:
			return fmt.Errorf("action %q does not apply to %s", action, conflict.Kind)
		}
		err := s.store.DeleteResult(ctx, doomed)
		if err != nil {
			return err
		}

	default:
		return fmt.Errorf("unknown conflict kind %q", conflict.Kind)
	}

	return s.store.SetConflictStatus(ctx, id, results.ConflictResolved)
}

// splitVariant undoes an optimistic merge: the flagged name variant is
// actually a different person, so a new athlete is created from the
// retained raw row and the row's result is moved onto them.
func (s Service) splitVariant(ctx context.Context, conflict results.Conflict) error {
	var row reconciler.Row
	err := json.Unmarshal([]byte(conflict.RawRow), &row)
	if err != nil {
		return fmt.Errorf("conflict %d has unusable raw row: %w", conflict.ID, err)
	}

	school, err := s.store.FindSchool(ctx, row.SchoolKey)
	if err != nil {
		return err
	}
	race, err := s.store.FindRace(ctx, row.RaceKey)
	if err != nil {
		return err
	}
	gradYear := reconciler.GradYear(row.Grade, race.MeetDate)

	// the split-off athlete usually shares first and last name with the
	// one it was flagged against, so the derived slug is expected to
	// collide and needs disambiguating
	base := reconciler.AthleteSlug(row.FirstName, row.LastName, school.Key, gradYear)
	slug := base
	var athleteID int64
	for attempt := 2; ; attempt++ {
		athleteID, err = s.store.CreateAthlete(ctx, results.Athlete{
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
			if attempt > 10 {
				return fmt.Errorf("could not disambiguate slug %q: %w", base, err)
			}
			slug = fmt.Sprintf("%s-%d", base, attempt)
			continue
		}
		if err != nil {
			return err
		}
		break
	}

	// move the row's result off the athlete it was optimistically
	// attributed to
	attributed, err := s.store.ResultsFor(ctx, conflict.LeftRef, race.ID)
	if err != nil {
		return err
	}
	for _, res := range attributed {
		if res.TimeCs != row.TimeCs {
			continue
		}
		err = s.store.DeleteResult(ctx, res.ID)
		if err != nil {
			return err
		}
		res.ID = 0
		res.AthleteID = athleteID
		_, err = s.store.CreateResult(ctx, res)
		if err != nil {
			return err
		}
		break
	}

	return nil
}
