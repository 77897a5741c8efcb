package commands

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	configlibsql "xcresults-backend/lib/configutil/libsql"
	"xcresults-backend/lib/serviceutil"
	"xcresults-backend/services/results"
	"xcresults-backend/services/results/db"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var dbFile *string

var rootCmd = &cobra.Command{
	Use:   "xc-cli",
	Short: "xc-cli ingests scraped race results and manages the review queue and rankings.",
}

func init() {
	dbFile = rootCmd.PersistentFlags().String("db", "results.db", "The results database to operate on.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func openStore() (results.Store, *sql.DB) {
	database, err := configlibsql.Struct{File: *dbFile}.OpenDB(db.Schema)
	if err != nil {
		serviceutil.Fatal("failed to open db", err)
	}
	return results.NewStore(database), database
}

func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	return t
}
