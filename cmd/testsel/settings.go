package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ivoronin/testsel/internal/config"
	"github.com/ivoronin/testsel/internal/logging"
)

// loadSettings reads the config file and environment and applies the
// persistent flags on top.
func loadSettings(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) (*slog.Logger, error) {
	logger, err := logging.New(cfg.LogLevel, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if cfg.File != "" {
		logger.Debug("loaded config", "file", cfg.File)
	}
	return logger, nil
}
