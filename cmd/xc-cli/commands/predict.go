package commands

import (
	"fmt"
	"strconv"
	"xcresults-backend/lib/racetime"
	"xcresults-backend/services/normalizer"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(predictCmd)
}

var predictCmd = &cobra.Command{
	Use:   "predict <normalized time> <target miles> <target difficulty>",
	Short: "Predicts a race time on a target course from a normalized baseline.",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		normalizedCs, err := racetime.Parse(args[0])
		if err != nil {
			return err
		}
		miles, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return err
		}
		difficulty, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return err
		}

		predicted, err := normalizer.PredictTime(normalizedCs, miles, difficulty)
		if err != nil {
			return err
		}
		fmt.Println(racetime.Format(predicted))
		return nil
	},
}
