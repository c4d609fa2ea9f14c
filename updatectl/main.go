package main

import (
	"click-updater/updatectl/adapters/api"
	"click-updater/updatectl/adapters/subscriber"
	"click-updater/updatectl/commands"
	"click-updater/updatectl/config"
	"click-updater/updatectl/core"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	root := commands.NewRootCommand(func(cfg config.Config, log *slog.Logger) (core.Updater, core.EventSource) {
		return api.NewClient(cfg.ApiConfig.Address, cfg.ApiConfig.Timeout, log),
			subscriber.NewNatsSubscriber(cfg.Broker.Address, cfg.Broker.Subject, log)
	})
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		cancel()
		os.Exit(1)
	}
}
