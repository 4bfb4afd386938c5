package commands

import (
	"log/slog"

	"dkscrape-backend/lib/scrapers/draftkings"
	"dkscrape-backend/services/dkscrape"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var runSkipDraftGroups *bool
var runSkipContests *bool
var runSkipGameTypes *bool
var runSkipGameSets *bool
var runSkipPayouts *bool
var runSkipSalaries *bool
var runRefreshStatus *bool
var runGameTypeIDs *[]int64
var runSlateTypes *[]string

func init() {
	runSkipDraftGroups = runCmd.Flags().Bool("skip-draftgroups", false, "Skip the draft group stage.")
	runSkipContests = runCmd.Flags().Bool("skip-contests", false, "Skip the contest stage.")
	runSkipGameTypes = runCmd.Flags().Bool("skip-gametypes", false, "Skip the game type stage.")
	runSkipGameSets = runCmd.Flags().Bool("skip-gamesets", false, "Skip the game set stage.")
	runSkipPayouts = runCmd.Flags().Bool("skip-payouts", false, "Skip the payout stage.")
	runSkipSalaries = runCmd.Flags().Bool("skip-salaries", false, "Skip the salary stage.")
	runRefreshStatus = runCmd.Flags().Bool("refresh-status", false,
		"Fetch live contest state from the contests API.")
	runGameTypeIDs = runCmd.Flags().Int64Slice("game-type-ids", nil,
		"Only keep draft groups with these game type ids (overrides config).")
	runSlateTypes = runCmd.Flags().StringSlice("slate-types", nil,
		"Only keep draft groups with these slate suffixes (overrides config).")
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [sport]",
	Short: "Runs the full scrape pipeline for a sport.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)
		service := dkscrape.NewService(dkscrape.Options{
			Client:     client,
			StrictDeps: cfg.StrictDeps,
		})

		gameTypeIDs := cfg.GameTypeIDs
		if len(*runGameTypeIDs) > 0 {
			gameTypeIDs = *runGameTypeIDs
		}
		slateTypes := cfg.SlateTypes
		if len(*runSlateTypes) > 0 {
			slateTypes = *runSlateTypes
		}

		results, err := service.Run(cmd.Context(), dkscrape.RunOptions{
			Sport: sportArg(cfg, args),
			DraftGroupFilter: draftkings.DraftGroupFilter{
				GameTypeIDs: gameTypeIDs,
				SlateTypes:  slateTypes,
			},
			GameSetTags:          cfg.GameSetTags,
			SkipDraftGroups:      *runSkipDraftGroups,
			SkipContests:         *runSkipContests,
			SkipGameTypes:        *runSkipGameTypes,
			SkipGameSets:         *runSkipGameSets,
			SkipPayouts:          *runSkipPayouts,
			SkipSalaries:         *runSkipSalaries,
			RefreshContestStatus: *runRefreshStatus,
		})
		if err != nil {
			slog.Error("scrape run finished with errors", "err", err)
		}
		slog.Info("scraping time", "seconds", results.Elapsed.Seconds())

		renderTable(table.Row{"Stage", "Records"}, []table.Row{
			{"draft groups", len(results.DraftGroups)},
			{"contests", len(results.Contests)},
			{"game types", len(results.GameTypes)},
			{"game sets", len(results.GameSets)},
			{"payouts", len(results.Payouts)},
			{"salaries", len(results.Salaries)},
		})

		writeOutput(results)
	},
}
