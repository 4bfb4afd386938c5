package commands

import (
	"dkscrape-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(sportsCmd)
}

var sportsCmd = &cobra.Command{
	Use:   "sports",
	Short: "Lists the sports the site currently offers.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		sports, err := client.ScrapeSports(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to scrape sports", err)
		}

		var rows []table.Row
		for _, s := range sports {
			rows = append(rows, table.Row{
				s.SportID, s.RegionAbbreviatedSportName, s.FullName,
				s.IsEnabled, s.HasPublicContests,
			})
		}
		renderTable(table.Row{"ID", "Abbrev", "Name", "Enabled", "Public Contests"}, rows)

		writeOutput(sports)
	},
}
