package app

import (
	"log/slog"
	"sync/atomic"
	"time"
)

// Stats tracks board activity using atomic counters so the watcher and the
// board goroutine can both record into it.
type Stats struct {
	DragsStarted atomic.Int64
	StageChanges atomic.Int64
	Cancelled    atomic.Int64
	Activations  atomic.Int64
	MoveFailures atomic.Int64
	Reloads      atomic.Int64
	StartTime    time.Time
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{
		StartTime: time.Now(),
	}
}

// IncDragsStarted counts a pointer press that armed a drag session
func (s *Stats) IncDragsStarted() {
	s.DragsStarted.Add(1)
}

// IncStageChanges counts a committed stage transition
func (s *Stats) IncStageChanges() {
	s.StageChanges.Add(1)
}

// IncCancelled counts a drag that snapped back to its origin
func (s *Stats) IncCancelled() {
	s.Cancelled.Add(1)
}

// IncActivations counts a plain click on a card
func (s *Stats) IncActivations() {
	s.Activations.Add(1)
}

// IncMoveFailures counts a stage change the card store rejected
func (s *Stats) IncMoveFailures() {
	s.MoveFailures.Add(1)
}

// IncReloads counts a reload of the card set
func (s *Stats) IncReloads() {
	s.Reloads.Add(1)
}

// StatsSnapshot is a point-in-time copy of the counters
type StatsSnapshot struct {
	DragsStarted int64     `json:"drags_started"`
	StageChanges int64     `json:"stage_changes"`
	Cancelled    int64     `json:"cancelled"`
	Activations  int64     `json:"activations"`
	MoveFailures int64     `json:"move_failures"`
	Reloads      int64     `json:"reloads"`
	StartTime    time.Time `json:"start_time"`
	Uptime       string    `json:"uptime"`
}

// Snapshot returns a snapshot of the current counters
func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		DragsStarted: s.DragsStarted.Load(),
		StageChanges: s.StageChanges.Load(),
		Cancelled:    s.Cancelled.Load(),
		Activations:  s.Activations.Load(),
		MoveFailures: s.MoveFailures.Load(),
		Reloads:      s.Reloads.Load(),
		StartTime:    s.StartTime,
		Uptime:       time.Since(s.StartTime).Truncate(time.Second).String(),
	}
}

// LogValue implements slog.LogValuer
func (s StatsSnapshot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("drags_started", s.DragsStarted),
		slog.Int64("stage_changes", s.StageChanges),
		slog.Int64("cancelled", s.Cancelled),
		slog.Int64("activations", s.Activations),
		slog.Int64("move_failures", s.MoveFailures),
		slog.Int64("reloads", s.Reloads),
		slog.String("uptime", s.Uptime),
	)
}
