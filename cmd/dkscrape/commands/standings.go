package commands

import (
	"errors"
	"log/slog"

	"dkscrape-backend/lib/scrapers/draftkings/account"
	"dkscrape-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var standingsContests *[]int64
var standingsProcessOnly *bool

func init() {
	standingsContests = standingsCmd.Flags().Int64Slice(
		"contests", nil, "Contest ids to download full standings for.")
	standingsProcessOnly = standingsCmd.Flags().Bool("process-only", false,
		"Skip downloading and parse whatever exports are already on disk.")
	rootCmd.AddCommand(standingsCmd)
}

var standingsCmd = &cobra.Command{
	Use:   "standings --contests <id,id,...>",
	Short: "Downloads and parses full contest standings. Requires DK_* credentials.",
	Run: func(cmd *cobra.Command, args []string) {
		env, err := account.EnvironmentFromEnv()
		if err != nil {
			serviceutil.Fatal("failed to read environment", err)
		}
		err = env.EnsureDirectories()
		if err != nil {
			serviceutil.Fatal("failed to prepare working directories", err)
		}

		var session *account.Session
		if !*standingsProcessOnly {
			if len(*standingsContests) == 0 {
				serviceutil.Fatal("no contests given", errors.New("--contests is required"))
			}
			session = downloadStandings(cmd, env)
			defer session.Close()
		}

		result, err := account.ProcessStandings(cmd.Context(), env)
		if err != nil {
			serviceutil.Fatal("failed to process standings", err)
		}
		if session != nil {
			err = session.MarkParsed()
			if err != nil {
				slog.Warn("session state out of step", "err", err)
			}
		}

		var rows []table.Row
		for _, id := range result.Successful {
			rows = append(rows, table.Row{id, "imported"})
		}
		for _, failed := range result.Failed {
			rows = append(rows, table.Row{failed.ContestID, failed.Reason})
		}
		renderTable(table.Row{"Contest", "Status"}, rows)
		slog.Info("parsed standings",
			"entries", len(result.Entries), "player_results", len(result.PlayerResults))

		writeOutput(result)
	},
}

func downloadStandings(cmd *cobra.Command, env account.Environment) *account.Session {
	session, err := account.NewSession(cmd.Context(), env)
	if err != nil {
		serviceutil.Fatal("failed to start browser", err)
	}

	err = session.Login(cmd.Context())
	if err != nil {
		session.Close()
		serviceutil.Fatal("failed to log in", err)
	}
	err = session.DownloadStandings(cmd.Context(), *standingsContests)
	if err != nil {
		session.Close()
		serviceutil.Fatal("failed to download standings", err)
	}
	return session
}
