package commands

import (
	"fmt"
	"strconv"
	"time"
	"xcresults-backend/lib/timezone"
	"xcresults-backend/services/reconciler"

	"github.com/spf13/cobra"
)

func init() {
	addCmd.AddCommand(addSchoolCmd)
	addCmd.AddCommand(addCourseCmd)
	addCmd.AddCommand(addMeetCmd)
	addCmd.AddCommand(addRaceCmd)
	rootCmd.AddCommand(addCmd)
}

// ingestion never creates schools, meets, races or courses on its own,
// they are registered up front through these commands.
var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Registers schools, courses, meets and races ahead of ingestion.",
}

var addSchoolCmd = &cobra.Command{
	Use:   "school <key> <name>",
	Short: "Registers a school.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, database := openStore()
		defer database.Close()

		id, err := store.CreateSchool(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var courseRating *float64

func init() {
	courseRating = addCourseCmd.Flags().Float64("rating", 0, "Difficulty rating, omit for an unrated course.")
}

var addCourseCmd = &cobra.Command{
	Use:   "course <name> <distance meters> [--rating <difficulty>]",
	Short: "Registers a course.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		distance, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}

		store, database := openStore()
		defer database.Close()

		id, err := store.CreateCourse(cmd.Context(), args[0], distance,
			*courseRating, cmd.Flags().Changed("rating"))
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var addMeetCmd = &cobra.Command{
	Use:   "meet <key> <name> <date YYYY-MM-DD>",
	Short: "Registers a meet. The season year is derived from the date.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		date, err := time.ParseInLocation("2006-01-02", args[2], timezone.Location)
		if err != nil {
			return err
		}

		store, database := openStore()
		defer database.Close()

		id, err := store.CreateMeet(cmd.Context(), args[0], args[1],
			date, reconciler.SeasonYear(date))
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}

var addRaceCmd = &cobra.Command{
	Use:   "race <key> <meet id> <course id> <gender> <division>",
	Short: "Registers a race within a meet.",
	Args:  cobra.ExactArgs(5),
	RunE: func(cmd *cobra.Command, args []string) error {
		meetID, err := strconv.ParseInt(args[1], 10, 64)
		if err != nil {
			return err
		}
		courseID, err := strconv.ParseInt(args[2], 10, 64)
		if err != nil {
			return err
		}

		store, database := openStore()
		defer database.Close()

		id, err := store.CreateRace(cmd.Context(), args[0], meetID, courseID, args[3], args[4])
		if err != nil {
			return err
		}
		fmt.Println(id)
		return nil
	},
}
