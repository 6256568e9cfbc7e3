package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"youtube-trending/config"
	"youtube-trending/shell"
	"youtube-trending/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger().Error("Invalid configuration: %v", err)
		os.Exit(1)
	}

	logger := utils.NewLoggerWith(cfg.LogLevel, cfg.LogFormat)
	defer logger.Sync()

	logger.Info("YouTube Trending Analytics")
	logger.Info("Dataset: %s | Exports: %s | Charts: %s", cfg.DataPath, cfg.ExportDir, cfg.ChartDir)
	if cfg.RenderPNG {
		logger.Info("PNG rendering enabled (timeout %ds)", cfg.ChromeTimeoutSec)
	}
	if cfg.DatabaseEnabled() {
		logger.Info("Database export enabled: driver=%s retries=%d", cfg.DBDriver, cfg.DBMaxRetries)
	} else {
		logger.Debug("DATABASE_URL not set, database export disabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// =============== Interactive session ===================
	session := shell.NewSession(cfg, logger, os.Stdin, os.Stdout)
	if err := session.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("Session ended with error: %v", err)
		os.Exit(1)
	}
}
