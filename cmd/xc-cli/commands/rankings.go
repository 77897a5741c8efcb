package commands

import (
	"strconv"
	"xcresults-backend/lib/racetime"
	"xcresults-backend/lib/serviceutil"
	"xcresults-backend/services/rankings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rankingsCmd.AddCommand(rankingsRecomputeCmd)
	rankingsCmd.AddCommand(leaderboardCmd)
	rankingsCmd.AddCommand(recordsCmd)
	rootCmd.AddCommand(rankingsCmd)
}

var rankingsCmd = &cobra.Command{
	Use:   "rankings",
	Short: "Recompute and inspect derived rankings.",
}

var rankingsRecomputeCmd = &cobra.Command{
	Use:   "recompute",
	Short: "Rebuilds season bests and course records from stored results.",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, database := openStore()
		defer database.Close()

		return rankings.NewService(store).Recompute(cmd.Context(), rankings.Scope{})
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard <season>",
	Short: "Prints a season's best normalized times, fastest first.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		season, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			serviceutil.Fatal("bad season", err)
		}

		store, database := openStore()
		defer database.Close()

		rows, err := rankings.NewService(store).SeasonLeaderboard(cmd.Context(), season)
		if err != nil {
			serviceutil.Fatal("failed to list season bests", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"#", "Athlete", "School", "Class", "Normalized"})
		for i, r := range rows {
			t.AppendRow(table.Row{
				i + 1, r.FullName, r.SchoolKey, r.GradYear,
				racetime.Format(r.NormalizedCs),
			})
		}
		t.Render()
	},
}

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Prints the standing record on every course by gender.",
	Run: func(cmd *cobra.Command, args []string) {
		store, database := openStore()
		defer database.Close()

		rows, err := rankings.NewService(store).CourseRecords(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list course records", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"Course", "Distance (m)", "Gender", "Time"})
		for _, r := range rows {
			t.AppendRow(table.Row{
				r.CourseName, r.DistanceMeters, r.Gender,
				racetime.Format(r.TimeCs),
			})
		}
		t.Render()
	},
}
