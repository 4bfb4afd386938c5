package commands

import (
	"fmt"
	"log/slog"

	"dkscrape-backend/lib/serviceutil"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var payoutContests *[]int64

func init() {
	payoutContests = payoutsCmd.Flags().Int64Slice(
		"contests", nil, "Contest ids to scrape payout schedules for.")
	payoutsCmd.MarkFlagRequired("contests")
	rootCmd.AddCommand(payoutsCmd)
}

var payoutsCmd = &cobra.Command{
	Use:   "payouts --contests <id,id,...>",
	Short: "Scrapes payout schedules from contest draft pages.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)

		payouts, err := client.ScrapePayouts(cmd.Context(), *payoutContests)
		if err != nil {
			if len(payouts) == 0 {
				serviceutil.Fatal("failed to scrape payouts", err)
			}
			slog.Warn("some payout scrapes failed", "err", err)
		}

		var rows []table.Row
		for _, p := range payouts {
			rows = append(rows, table.Row{
				p.ContestID, p.MinPosition, p.MaxPosition,
				p.PayoutOneType, fmt.Sprintf("$%.2f", p.PayoutOneValue),
				p.PayoutTwoType,
			})
		}
		renderTable(table.Row{"Contest", "Min", "Max", "Type", "Value", "Secondary"}, rows)

		writeOutput(payouts)
	},
}
