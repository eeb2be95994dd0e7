// Package config sets up the application wide configuration.
package config

import (
	"github.com/retroenv/retrogolib/log"
)

// CreateLogger creates the application logger.
// Debug output takes precedence over quiet mode.
func CreateLogger(debug, quiet bool) *log.Logger {
	cfg := log.DefaultConfig()

	switch {
	case debug:
		cfg.Level = log.DebugLevel
	case quiet:
		cfg.Level = log.ErrorLevel
	}

	return log.NewWithConfig(cfg)
}
