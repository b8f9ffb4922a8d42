package app

import (
	"github.com/guttosm/meal-planner/config"
	"github.com/guttosm/meal-planner/internal/logger"
)

// InitializeLogger initializes the global logger from configuration.
func InitializeLogger(cfg config.LogConfig) {
	logger.Init(cfg.Level, cfg.Pretty)
}
