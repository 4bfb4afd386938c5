package main

import (
	"context"

	"dkscrape-backend/cmd/dkscrape/commands"
	"dkscrape-backend/lib/serviceutil"
	"dkscrape-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()

	t, err := telemetry.SetupFromEnv(ctx, "dkscrape")
	if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	defer t.Shutdown(context.Background())

	commands.ExecuteContext(ctx)
}
