package commands

import (
	"context"

	"dkscrape-backend/lib/scrapers/draftkings"
	"dkscrape-backend/lib/serviceutil"
)

// sportArg prefers a positional sport argument over the configured
// default.
func sportArg(cfg Config, args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return cfg.Sport
}

func fetchLobby(ctx context.Context, client *draftkings.Client, sport string) *draftkings.Lobby {
	lobby, err := client.FetchLobby(ctx, sport)
	if err != nil {
		serviceutil.Fatal("failed to fetch lobby", err)
	}
	return lobby
}
