package commands

import (
	"dkscrape-backend/lib/scrapers/draftkings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(draftGroupsCmd)
}

var draftGroupsCmd = &cobra.Command{
	Use:   "draftgroups [sport]",
	Short: "Scrapes the draft group list for a sport.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		lobby := fetchLobby(cmd.Context(), client, sportArg(cfg, args))
		groups := draftkings.ScrapeDraftGroups(cmd.Context(), lobby, draftkings.DraftGroupFilter{
			GameTypeIDs: cfg.GameTypeIDs,
			SlateTypes:  cfg.SlateTypes,
		})

		var rows []table.Row
		for _, g := range groups {
			rows = append(rows, table.Row{
				g.DraftGroupID, g.GameType, g.GameCount,
				g.ContestStartTimeSuffix, g.StartDateEst,
			})
		}
		renderTable(table.Row{"ID", "Game Type", "Games", "Slate", "Start (EST)"}, rows)

		writeOutput(groups)
	},
}
