package dragdrop

import (
	"log/slog"
	"time"
)

const (
	// DefaultDragThreshold is the pointer travel, in viewport units, that turns
	// a press into a drag. Shorter gestures are treated as clicks.
	DefaultDragThreshold = 4.0

	// DefaultRefreshDelay is how long the host should wait after an
	// invalidation before flushing a geometry refresh.
	DefaultRefreshDelay = 100 * time.Millisecond
)

// Option is a functional option for configuring an Engine
type Option func(*Engine)

// WithLogger sets the logger for drag lifecycle diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithAutoscroll sets the autoscroll tuning
func WithAutoscroll(cfg AutoscrollConfig) Option {
	return func(e *Engine) {
		e.scroll = NewAutoscroller(cfg)
	}
}

// WithDragThreshold sets the dead zone separating clicks from drags
func WithDragThreshold(threshold float64) Option {
	return func(e *Engine) {
		if threshold >= 0 {
			e.dragThreshold = threshold
		}
	}
}

// WithRefreshDelay sets the debounce the host applies before FlushRefresh
func WithRefreshDelay(d time.Duration) Option {
	return func(e *Engine) {
		if d >= 0 {
			e.refreshDelay = d
		}
	}
}

// WithStageChangeHandler sets the collaborator invoked once per committed drag
func WithStageChangeHandler(fn StageChangeFunc) Option {
	return func(e *Engine) {
		e.onStageChange = fn
	}
}

// WithCardActivatedHandler sets the collaborator invoked when a press/release
// on a card never became a drag
func WithCardActivatedHandler(fn func(cardID string)) Option {
	return func(e *Engine) {
		e.onActivated = fn
	}
}
