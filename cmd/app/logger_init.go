package main

import (
	"os"

	"github.com/thj-dnt/clockwork-banker/internal/config"
	"github.com/thj-dnt/clockwork-banker/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}
	version := os.Getenv("VERSION")
	if version == "" {
		version = "dev"
	}

	// Source info is only worth the noise in dev
	addSource := environment == "dev" || environment == "development"

	logger.InitLogger(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"clockwork-banker",
		version,
		environment,
		addSource,
	))
}
