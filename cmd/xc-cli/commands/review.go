package commands

import (
	"strconv"
	"xcresults-backend/lib/serviceutil"
	"xcresults-backend/services/review"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	reviewCmd.AddCommand(reviewListCmd)
	reviewCmd.AddCommand(reviewResolveCmd)
	rootCmd.AddCommand(reviewCmd)
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Inspect and resolve flagged conflicts.",
}

var reviewListCmd = &cobra.Command{
	Use:   "list",
	Short: "Prints the pending review queue.",
	Run: func(cmd *cobra.Command, args []string) {
		store, database := openStore()
		defer database.Close()

		pending, err := review.NewService(store).ListPending(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to list conflicts", err)
		}

		t := newTable()
		t.AppendHeader(table.Row{"ID", "Kind", "Left", "Right", "Detail", "Created"})
		for _, c := range pending {
			t.AppendRow(table.Row{
				c.ID, c.Kind, c.LeftRef, c.RightRef, c.Detail,
				c.CreatedAt.Format("2006-01-02 15:04"),
			})
		}
		t.Render()
	},
}

var reviewResolveCmd = &cobra.Command{
	Use:   "resolve <id> <merge|reject|create_new|keep_left|keep_right>",
	Short: "Applies a resolution to a pending conflict.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return err
		}

		store, database := openStore()
		defer database.Close()

		return review.NewService(store).Resolve(cmd.Context(), id, review.Action(args[1]))
	},
}
