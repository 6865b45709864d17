package main

import (
	"log/slog"
	"os"

	"github.com/soocke/watermark-desktop/app"
	"github.com/soocke/watermark-desktop/config"
)

func main() {
	// Optional read-only settings; defaults when absent.
	cfgPath := config.DefaultPath()
	cfg, cfgErr := config.Load(cfgPath)

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if cfgErr != nil {
		logger.Warn("config load failed, using defaults", "path", cfgPath, "error", cfgErr)
	}

	application, err := app.NewApp(cfg, logger)
	if err != nil {
		logger.Error("startup failed", "error", err)
		os.Exit(1)
	}
	application.Start()
}
