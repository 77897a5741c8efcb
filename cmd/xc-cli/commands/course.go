package commands

import (
	"strconv"
	"xcresults-backend/lib/serviceutil"
	"xcresults-backend/services/normalizer"
	"xcresults-backend/services/rankings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	courseCmd.AddCommand(courseListCmd)
	courseCmd.AddCommand(courseRateCmd)
	rootCmd.AddCommand(courseCmd)
}

var courseCmd = &cobra.Command{
	Use:   "course",
	Short: "Inspect and rate courses.",
}

var courseListCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the known courses.",
	Run: func(cmd *cobra.Command, args []string) {
		store, database := openStore()
		defer database.Close()

		courses, err := store.Courses(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list courses", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Name", "Distance (m)", "Difficulty"})
		for _, c := range courses {
			rating := "unrated"
			if c.Rated {
				rating = strconv.FormatFloat(c.DifficultyRating, 'f', -1, 64)
			}
			t.AppendRow(table.Row{c.ID, c.Name, c.DistanceMeters, rating})
		}
		t.Render()
	},
}

var courseRateCmd = &cobra.Command{
	Use:   "rate <course id> <difficulty>",
	Short: "Sets a course's difficulty rating and normalizes any results stored before it was rated.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		courseID, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}
		rating, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}

		store, database := openStore()
		defer database.Close()
		ctx := cmd.Context()

		err = store.SetCourseRating(ctx, courseID, rating)
		if err != nil {
			return err
		}
		course, err := store.Course(ctx, courseID)
		if err != nil {
			return err
		}

		missing, err := store.ResultsMissingNormalized(ctx, courseID)
		if err != nil {
			return err
		}
		athleteIDs := make([]int64, 0, len(missing))
		for _, res := range missing {
			normalized, err := normalizer.Normalize(res.TimeCs, course.DistanceMeters, rating)
			if err != nil {
				return err
			}
			err = store.SetResultNormalized(ctx, res.ID, normalized)
			if err != nil {
				return err
			}
			athleteIDs = append(athleteIDs, res.AthleteID)
		}

		return rankings.NewService(store).Recompute(ctx, rankings.Scope{
			AthleteIDs: athleteIDs,
			CourseIDs:  []int64{courseID},
		})
	},
}
