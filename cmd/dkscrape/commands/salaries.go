package commands

import (
	"fmt"
	"log/slog"

	"dkscrape-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var salaryDraftGroups *[]int64

func init() {
	salaryDraftGroups = salariesCmd.Flags().Int64Slice(
		"draft-groups", nil, "Draft group ids to download player pools for.")
	salariesCmd.MarkFlagRequired("draft-groups")
	rootCmd.AddCommand(salariesCmd)
}

var salariesCmd = &cobra.Command{
	Use:   "salaries --draft-groups <id,id,...>",
	Short: "Downloads and parses draftable player pools.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		salaries, err := client.ScrapeSalaries(cmd.Context(), *salaryDraftGroups)
		if err != nil {
			if len(salaries) == 0 {
				serviceutil.Fatal("failed to scrape salaries", err)
			}
			slog.Warn("some salary downloads failed", "err", err)
		}

		var rows []table.Row
		for _, s := range salaries {
			rows = append(rows, table.Row{
				s.PlayerID, s.Name, s.Position, fmt.Sprintf("$%.0f", s.Salary),
				s.TeamAbbrev, s.AvgPointsPerGame, s.DraftGroupID,
			})
		}
		renderTable(table.Row{"ID", "Name", "Pos", "Salary", "Team", "Avg Pts", "Draft Group"}, rows)

		writeOutput(salaries)
	},
}
