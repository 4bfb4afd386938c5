package commands

import (
	"fmt"

	"dkscrape-backend/lib/scrapers/draftkings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var contestDraftGroups *[]int64

func init() {
	contestDraftGroups = contestsCmd.Flags().Int64Slice(
		"draft-groups", nil, "Only include contests in these draft groups.")
	rootCmd.AddCommand(contestsCmd)
}

var contestsCmd = &cobra.Command{
	Use:   "contests [sport]",
	Short: "Scrapes the contest list for a sport.",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		lobby := fetchLobby(cmd.Context(), client, sportArg(cfg, args))
		contests := draftkings.ScrapeContests(cmd.Context(), lobby, draftkings.ContestFilter{
			DraftGroupIDs: *contestDraftGroups,
		})

		var rows []table.Row
		for _, c := range contests {
			rows = append(rows, table.Row{
				c.ContestID, c.Name, fmt.Sprintf("$%.2f", c.EntryFee),
				c.MaxEntries, fmt.Sprintf("$%.0f", c.PrizePool), c.DraftGroupID,
			})
		}
		renderTable(table.Row{"ID", "Name", "Entry Fee", "Max Entries", "Prize Pool", "Draft Group"}, rows)

		writeOutput(contests)
	},
}
