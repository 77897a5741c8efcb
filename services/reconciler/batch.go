package reconciler

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// keep the batch report readable, failures past this many are counted
// but not retained
const maxFailureExamples = 10

type RowFailure struct {
	Row    Row
	Reason string
}

// Report summarizes one ingestion batch. Row failures accumulate here
// instead of aborting the batch, one malformed row in a thousand-row
// meet must not block the other 999.
type Report struct {
	BatchID           string
	Processed         int
	ResultsInserted   int
	AthletesCreated   int
	DuplicatesFlagged int
	Discarded         int
	Failed            int
	Failures          []RowFailure
}

// RunBatch reconciles rows sequentially. The context is only checked
// between rows, there is no meaningful mid-row cancellation point.
// Store errors fail the row and are never retried, the creation paths
// are not idempotent enough to risk duplicate side effects.
func (r Reconciler) RunBatch(ctx context.Context, rows []Row) Report {
	report := Report{BatchID: uuid.NewString()}

	for _, row := range rows {
		if ctx.Err() != nil {
			slog.WarnContext(ctx, "batch aborted",
				"batch", report.BatchID,
				"processed", report.Processed,
				"remaining", len(rows)-report.Processed)
			break
		}
		report.Processed++

		outcome, err := r.Reconcile(ctx, row)
		if err != nil {
			report.Failed++
			if len(report.Failures) < maxFailureExamples {
				report.Failures = append(report.Failures, RowFailure{
					Row:    row,
					Reason: err.Error(),
				})
			}
			slog.WarnContext(ctx, "row failed",
				"batch", report.BatchID,
				"school", row.SchoolKey,
				"race", row.RaceKey,
				"athlete", row.FullName,
				"err", err.Error())
			continue
		}

		switch outcome.Status {
		case StatusResultInserted:
			report.ResultsInserted++
		case StatusAthleteCreated:
			report.AthletesCreated++
			report.ResultsInserted++
		case StatusDuplicateFlagged:
			report.DuplicatesFlagged++
			report.ResultsInserted++
		case StatusDuplicateDiscarded:
			report.Discarded++
		}
	}

	slog.InfoContext(ctx, "batch complete",
		"batch", report.BatchID,
		"processed", report.Processed,
		"inserted", report.ResultsInserted,
		"created", report.AthletesCreated,
		"flagged", report.DuplicatesFlagged,
		"discarded", report.Discarded,
		"failed", report.Failed)

	return report
}
