package commands

import (
	"context"
	"fmt"
	"os"

	"dkscrape-backend/lib/telemetry"

	"github.com/spf13/cobra"
)

var verbose *bool
var outputPath *string

var rootCmd = &cobra.Command{
	Use:   "dkscrape",
	Short: "dkscrape scrapes DraftKings contests, salaries and results.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

func init() {
	verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging.")
	outputPath = rootCmd.PersistentFlags().StringP("output", "o", "", "Write scraped records to a JSON file.")
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
