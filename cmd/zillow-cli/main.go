package main

import (
	"context"
	"log/slog"
	"os"
	"zillowscrape/cmd/zillow-cli/commands"
	"zillowscrape/lib/telemetry"
)

func main() {
	ctx := context.Background()

	tel, err := telemetry.SetupFromEnv(ctx, "zillow-cli")
	if err != nil {
		slog.Error("failed to setup telemetry", "err", err.Error())
		os.Exit(1)
	}
	defer tel.Shutdown(context.Background())
	telemetry.InitSlog(false)

	commands.ExecuteContext(ctx)
}
