package commands

import (
	"dkscrape-backend/lib/scrapers/draftkings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gameSetsCmd)
}

var gameSetsCmd = &cobra.Command{
	Use:   "gamesets [sport]",
	Short: "Scrapes the game set list for a sport.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		lobby := fetchLobby(cmd.Context(), client, sportArg(cfg, args))
		gameSets := draftkings.ScrapeGameSets(cmd.Context(), lobby, cfg.GameSetTags)

		var rows []table.Row
		for _, set := range gameSets {
			rows = append(rows, table.Row{
				set.GameSetKey, set.Tag, len(set.Competitions),
				len(set.GameStyles), set.MinStartTime,
			})
		}
		renderTable(table.Row{"Key", "Tag", "Games", "Styles", "Min Start"}, rows)

		writeOutput(gameSets)
	},
}
