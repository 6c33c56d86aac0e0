package main

import (
	"github.com/luckpix/raspadinha/internal/config"
	"github.com/luckpix/raspadinha/internal/logger"
)

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config) {
	// Source info only in dev
	addSource := cfg.Environment == "dev" || cfg.Environment == "development"

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		"raspadinha",
		cfg.Environment,
		addSource,
	)

	logger.InitLogger(loggerConfig)
}
