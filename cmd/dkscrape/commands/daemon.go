package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"dkscrape-backend/lib/scrapers/draftkings"
	"dkscrape-backend/lib/serviceutil"
	"dkscrape-backend/lib/telemetry"
	"dkscrape-backend/lib/timezone"
	"dkscrape-backend/services/dkscrape"

	"github.com/spf13/cobra"
)

var daemonOutputDir *string

func init() {
	daemonOutputDir = daemonCmd.Flags().String(
		"output-dir", "results", "Directory to write per-run result files to.")
	rootCmd.AddCommand(daemonCmd)
}

var daemonCmd = &cobra.Command{
	Use:   "daemon",
	Short: "Scrapes the configured sports on an interval until stopped.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := createClient(cfg)
		service := dkscrape.NewService(dkscrape.Options{
			Client:     client,
			StrictDeps: cfg.StrictDeps,
		})

		err := os.MkdirAll(*daemonOutputDir, 0o755)
		if err != nil {
			serviceutil.Fatal("failed to create output directory", err)
		}

		daemon, err := dkscrape.NewDaemon(service, dkscrape.DaemonOptions{
			Sports:   cfg.Sports,
			Interval: time.Duration(cfg.IntervalMinutes) * time.Minute,
			Cron:     cfg.Cron,
			Run: dkscrape.RunOptions{
				DraftGroupFilter: draftkings.DraftGroupFilter{
					GameTypeIDs: cfg.GameTypeIDs,
					SlateTypes:  cfg.SlateTypes,
				},
				GameSetTags: cfg.GameSetTags,
			},
			OnResults: writeRunResults,
		})
		if err != nil {
			serviceutil.Fatal("failed to create daemon", err)
		}

		ctx := serviceutil.SignalContext()

		telemetry.InstrumentPerfStats(ctx)

		err = daemon.Start(ctx)
		if err != nil {
			serviceutil.Fatal("failed to start daemon", err)
		}

		<-ctx.Done()
		slog.Info("shutting down")
		err = daemon.Stop()
		if err != nil {
			slog.Error("failed to stop scheduler", "err", err)
		}
	},
}

func writeRunResults(ctx context.Context, results dkscrape.Results) {
	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		slog.ErrorContext(ctx, "failed to serialize results", "err", err)
		return
	}

	name := fmt.Sprintf("%s-%s.json", results.Sport, timezone.Now().Format("2006-01-02T15-04-05"))
	path := filepath.Join(*daemonOutputDir, name)
	err = os.WriteFile(path, payload, 0o644)
	if err != nil {
		slog.ErrorContext(ctx, "failed to write results", "path", path, "err", err)
		return
	}
	slog.InfoContext(ctx, "wrote run results", "path", path)
}
