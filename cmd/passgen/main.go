package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/vaultpass/passgen/internal/cli"
	"github.com/vaultpass/passgen/internal/clipboard"
	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/logging"
	"github.com/vaultpass/passgen/internal/service"
)

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	logging.Setup(os.Stderr, cfg.LogLevel)

	if envErr != nil {
		slog.Debug("no .env file found, using environment variables")
	}
	slog.Debug("config loaded", "env", cfg.Env, "type", cfg.Type, "length", cfg.Length)

	genService := service.NewGeneratorService(nil, cfg.MinEntropy)
	app := cli.New(cfg, genService, clipboard.System{})

	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}
