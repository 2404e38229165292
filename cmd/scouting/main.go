package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/riskibarqy/scouting/internal/app"
	"github.com/riskibarqy/scouting/internal/config"
	"github.com/riskibarqy/scouting/internal/interfaces/cli"
	"github.com/riskibarqy/scouting/internal/platform/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	logOut, closeLog, err := openLogOutput(cfg.LogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	logger := logging.New(cfg.LogFormat, cfg.LogLevel, logOut)
	logging.SetDefault(logger)
	defer func() {
		_ = logger.Sync()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	application, err := app.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	menu := cli.NewMenu(cli.Services{
		Auth:    application.Auth,
		Players: application.Players,
		Teams:   application.Teams,
		Matches: application.Matches,
		Reports: application.Reports,
	}, cfg.ReportDir, logger)

	if err := menu.Run(ctx); err != nil {
		logger.Error("console stopped", "error", err)
		os.Exit(1)
	}
	logger.Info("console stopped")
}

// openLogOutput keeps logs off stdout so they never interleave with prompts.
func openLogOutput(path string) (io.Writer, func(), error) {
	if path == "" {
		return os.Stderr, func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
