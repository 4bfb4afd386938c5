package commands

import (
	"dkscrape-backend/lib/scrapers/draftkings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(gameTypesCmd)
}

var gameTypesCmd = &cobra.Command{
	Use:   "gametypes [sport]",
	Short: "Scrapes the game type list for a sport.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		lobby := fetchLobby(cmd.Context(), client, sportArg(cfg, args))
		gameTypes := draftkings.ScrapeGameTypes(cmd.Context(), lobby)

		var rows []table.Row
		for _, gt := range gameTypes {
			rows = append(rows, table.Row{gt.GameTypeID, gt.Name, gt.DraftType, gt.SportID})
		}
		renderTable(table.Row{"ID", "Name", "Draft Type", "Sport ID"}, rows)

		writeOutput(gameTypes)
	},
}
