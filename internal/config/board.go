package config

import "time"

// Board defaults, in terminal cells and frames
const (
	DefaultEdgeRatio       = 0.15
	DefaultMinSpeed        = 3.0
	DefaultMaxSpeed        = 15.0
	DefaultFrameInterval   = 50 * time.Millisecond
	DefaultRefreshDebounce = 100 * time.Millisecond
	DefaultDragThreshold   = 1.0
)

// AutoscrollSettings tunes edge-zone scrolling while dragging
type AutoscrollSettings struct {
	EdgeRatio float64 `yaml:"edge_ratio"` // Fraction of board width treated as an edge zone
	MinSpeed  float64 `yaml:"min_speed"`  // Cells per frame at the inner zone boundary
	MaxSpeed  float64 `yaml:"max_speed"`  // Cells per frame at the board edge
}

// BoardSettings configures the pipeline board and its drag engine
type BoardSettings struct {
	Autoscroll      AutoscrollSettings `yaml:"autoscroll"`
	FrameInterval   time.Duration      `yaml:"frame_interval"`
	RefreshDebounce time.Duration      `yaml:"refresh_debounce"`
	DragThreshold   float64            `yaml:"drag_threshold"`
	CardsFile       string             `yaml:"cards_file"` // Optional YAML seed for the mock data layer
	WatchCardsFile  *bool              `yaml:"watch_cards_file"`
}

// DefaultBoardSettings returns the default board settings
func DefaultBoardSettings() BoardSettings {
	watch := true
	return BoardSettings{
		Autoscroll: AutoscrollSettings{
			EdgeRatio: DefaultEdgeRatio,
			MinSpeed:  DefaultMinSpeed,
			MaxSpeed:  DefaultMaxSpeed,
		},
		FrameInterval:   DefaultFrameInterval,
		RefreshDebounce: DefaultRefreshDebounce,
		DragThreshold:   DefaultDragThreshold,
		WatchCardsFile:  &watch,
	}
}

// Watch reports whether the cards file should be watched for changes
func (b BoardSettings) Watch() bool {
	return b.CardsFile != "" && (b.WatchCardsFile == nil || *b.WatchCardsFile)
}

// applyDefaults fills in zero values with defaults
func (b *BoardSettings) applyDefaults() {
	defaults := DefaultBoardSettings()

	if b.Autoscroll.EdgeRatio <= 0 || b.Autoscroll.EdgeRatio > 0.5 {
		b.Autoscroll.EdgeRatio = defaults.Autoscroll.EdgeRatio
	}
	if b.Autoscroll.MinSpeed <= 0 {
		b.Autoscroll.MinSpeed = defaults.Autoscroll.MinSpeed
	}
	if b.Autoscroll.MaxSpeed <= 0 {
		b.Autoscroll.MaxSpeed = defaults.Autoscroll.MaxSpeed
	}
	if b.Autoscroll.MaxSpeed < b.Autoscroll.MinSpeed {
		b.Autoscroll.MaxSpeed = b.Autoscroll.MinSpeed
	}
	if b.FrameInterval <= 0 {
		b.FrameInterval = defaults.FrameInterval
	}
	if b.RefreshDebounce <= 0 {
		b.RefreshDebounce = defaults.RefreshDebounce
	}
	if b.DragThreshold <= 0 {
		b.DragThreshold = defaults.DragThreshold
	}
	if b.WatchCardsFile == nil {
		b.WatchCardsFile = defaults.WatchCardsFile
	}
}
