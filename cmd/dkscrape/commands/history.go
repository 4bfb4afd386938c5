package commands

import (
	"fmt"
	"log/slog"

	"dkscrape-backend/lib/scrapers/draftkings/account"
	"dkscrape-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var historyFile *string

func init() {
	historyFile = historyCmd.Flags().String("file", "",
		"Parse an already-downloaded history export instead of fetching one.")
	rootCmd.AddCommand(historyCmd)
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Downloads and parses the contest entry history. Requires DK_* credentials.",
	Run: func(cmd *cobra.Command, args []string) {
		env, err := account.EnvironmentFromEnv()
		if err != nil {
			serviceutil.Fatal("failed to read environment", err)
		}
		err = env.EnsureDirectories()
		if err != nil {
			serviceutil.Fatal("failed to prepare working directories", err)
		}

		path := *historyFile
		var session *account.Session
		if path == "" {
			session, path = downloadHistory(cmd, env)
			defer session.Close()
		}

		historyEntries, err := account.ProcessHistory(cmd.Context(), env, path)
		if err != nil {
			serviceutil.Fatal("failed to process history", err)
		}
		if session != nil {
			err = session.MarkParsed()
			if err != nil {
				slog.Warn("session state out of step", "err", err)
			}
		}

		var rows []table.Row
		for _, entry := range historyEntries {
			rows = append(rows, table.Row{
				entry.ContestID, entry.Sport, entry.Entry, entry.LineupRank,
				entry.Points, fmt.Sprintf("$%.2f", entry.WinningsNonTicket),
			})
		}
		renderTable(table.Row{"Contest", "Sport", "Entry", "Place", "Points", "Winnings"}, rows)

		writeOutput(historyEntries)
	},
}

func downloadHistory(cmd *cobra.Command, env account.Environment) (*account.Session, string) {
	session, err := account.NewSession(cmd.Context(), env)
	if err != nil {
		serviceutil.Fatal("failed to start browser", err)
	}

	err = session.Login(cmd.Context())
	if err != nil {
		session.Close()
		serviceutil.Fatal("failed to log in", err)
	}
	path, err := session.DownloadHistory(cmd.Context())
	if err != nil {
		session.Close()
		serviceutil.Fatal("failed to download history", err)
	}
	return session, path
}
