package dragdrop

import (
	"math"

	"github.com/thenoetrevino/etapa/internal/models"
)

// Snapshot is a copy of a drag session's state
type Snapshot struct {
	CardID  string
	Origin  models.Stage
	Hovered models.Stage // StageNone when the pointer resolves to no column
	Start   Point        // Pointer position at drag start
	Moved   bool         // Pointer left the drag dead zone at least once
}

// HasHover reports whether the session currently hovers a column
func (s Snapshot) HasHover() bool {
	return s.Hovered != models.StageNone
}

// Session is the drag session state machine: Idle or Dragging.
// At most one drag exists at a time; the zero value is Idle.
type Session struct {
	active *Snapshot
}

// Start moves Idle to Dragging. Returns false, leaving the current session
// untouched, if a drag is already in flight.
func (s *Session) Start(cardID string, origin models.Stage, at Point) bool {
	if s.active != nil {
		return false
	}
	s.active = &Snapshot{CardID: cardID, Origin: origin, Start: at}
	return true
}

// UpdateHover sets the hovered stage. No-op while Idle.
func (s *Session) UpdateHover(stage models.Stage) bool {
	if s.active == nil {
		return false
	}
	s.active.Hovered = stage
	return true
}

// Track records pointer travel and flags the session as a real drag once the
// pointer leaves the dead zone around the start point.
func (s *Session) Track(p Point, threshold float64) bool {
	if s.active == nil {
		return false
	}
	if !s.active.Moved && math.Hypot(p.X-s.active.Start.X, p.Y-s.active.Start.Y) > threshold {
		s.active.Moved = true
	}
	return s.active.Moved
}

// End moves Dragging to Idle and returns the final snapshot.
// ok is false when there was nothing to end.
func (s *Session) End() (snap Snapshot, ok bool) {
	if s.active == nil {
		return Snapshot{}, false
	}
	snap = *s.active
	s.active = nil
	return snap, true
}

// Active returns a copy of the in-flight session, if any
func (s *Session) Active() (Snapshot, bool) {
	if s.active == nil {
		return Snapshot{}, false
	}
	return *s.active, true
}

// Dragging reports whether a session is in flight
func (s *Session) Dragging() bool {
	return s.active != nil
}
