package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"xcresults-backend/lib/racetime"
	"xcresults-backend/lib/serviceutil"
	"xcresults-backend/services/rankings"
	"xcresults-backend/services/reconciler"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var skipRecompute *bool

func init() {
	skipRecompute = ingestCmd.Flags().Bool("skip-recompute", false, "Do not recompute rankings after the batch.")
	rootCmd.AddCommand(ingestCmd)
}

// csv columns: school_key, full_name, first_name, last_name, grade,
// gender, race_key, time, place, source. place and source may be empty.
func readRows(path string) ([]reconciler.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read csv header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[name] = i
	}
	for _, required := range []string{
		"school_key", "full_name", "first_name", "last_name",
		"grade", "gender", "race_key", "time",
	} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("csv is missing the %q column", required)
		}
	}

	var rows []reconciler.Row
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		grade, err := strconv.ParseInt(record[col["grade"]], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("row %d: bad grade: %w", len(rows)+2, err)
		}
		timeCs, err := racetime.Parse(record[col["time"]])
		if err != nil {
			return nil, fmt.Errorf("row %d: bad time: %w", len(rows)+2, err)
		}

		row := reconciler.Row{
			SchoolKey: record[col["school_key"]],
			FullName:  record[col["full_name"]],
			FirstName: record[col["first_name"]],
			LastName:  record[col["last_name"]],
			Grade:     grade,
			Gender:    record[col["gender"]],
			RaceKey:   record[col["race_key"]],
			TimeCs:    timeCs,
		}
		if i, ok := col["place"]; ok && record[i] != "" {
			row.Place, err = strconv.ParseInt(record[i], 10, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: bad place: %w", len(rows)+2, err)
			}
		}
		if i, ok := col["source"]; ok {
			row.Source = record[i]
		}
		rows = append(rows, row)
	}
	return rows, nil
}

var ingestCmd = &cobra.Command{
	Use:   "ingest <rows.csv>",
	Short: "Reconciles a csv of scraped result rows into the database.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		rows, err := readRows(args[0])
		if err != nil {
			serviceutil.Fatal("failed to read rows", err)
		}

		store, database := openStore()
		defer database.Close()

		report := reconciler.New(store).RunBatch(cmd.Context(), rows)

		if !*skipRecompute {
			err = rankings.NewService(store).Recompute(cmd.Context(), rankings.Scope{})
			if err != nil {
				serviceutil.Fatal("failed to recompute rankings", err)
			}
		}

		t := newTable()
		t.AppendHeader(table.Row{"Batch", report.BatchID})
		t.AppendRow(table.Row{"Processed", report.Processed})
		t.AppendRow(table.Row{"Results inserted", report.ResultsInserted})
		t.AppendRow(table.Row{"Athletes created", report.AthletesCreated})
		t.AppendRow(table.Row{"Duplicates flagged", report.DuplicatesFlagged})
		t.AppendRow(table.Row{"Duplicates discarded", report.Discarded})
		t.AppendRow(table.Row{"Failed", report.Failed})
		t.Render()

		for _, failure := range report.Failures {
			fmt.Fprintf(os.Stderr, "failed: %s @ %s: %s\n",
				failure.Row.FullName, failure.Row.RaceKey, failure.Reason)
		}
	},
}
