package app

import "log/slog"

// Option is a functional option for configuring App initialization
type Option func(*appConfig)

// appConfig holds the configuration for App initialization
type appConfig struct {
	logger *slog.Logger
	stats  *Stats
}

// WithLogger sets the logger for the application
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *appConfig) {
		cfg.logger = logger
	}
}

// WithStats shares an existing stats collector instead of starting a new one
func WithStats(stats *Stats) Option {
	return func(cfg *appConfig) {
		cfg.stats = stats
	}
}
