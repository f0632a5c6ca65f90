// Package dragdrop implements the stage-transition engine behind the pipeline board:
// column geometry tracking, pointer resolution, autoscroll, the drag session state
// machine, transition commits and the move indicator.
//
// Everything in this package is synchronous and expects to be driven from a single
// event loop (the bubbletea Update function in this repository).
package dragdrop

import (
	"github.com/thenoetrevino/etapa/internal/models"
)

// Point is a pointer position in viewport coordinates
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle in viewport coordinates.
// Bounds are inclusive on every side.
type Rect struct {
	Left, Top, Right, Bottom float64
}

// Contains reports whether p lies inside r, bounds included
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right &&
		p.Y >= r.Top && p.Y <= r.Bottom
}

// Center returns the midpoint of r
func (r Rect) Center() Point {
	return Point{X: (r.Left + r.Right) / 2, Y: (r.Top + r.Bottom) / 2}
}

// Width returns the horizontal extent of r
func (r Rect) Width() float64 {
	return r.Right - r.Left
}

// Height returns the vertical extent of r
func (r Rect) Height() float64 {
	return r.Bottom - r.Top
}

// Translate returns r shifted by (dx, dy)
func (r Rect) Translate(dx, dy float64) Rect {
	return Rect{Left: r.Left + dx, Top: r.Top + dy, Right: r.Right + dx, Bottom: r.Bottom + dy}
}

// Viewport is the host capability the engine measures layout through.
// A browser host would back it with getBoundingClientRect; the TUI backs it
// with its terminal-cell layout.
type Viewport interface {
	// MeasureColumn returns the current rectangle of a stage column.
	// ok is false when the column is not rendered yet.
	MeasureColumn(stage models.Stage) (rect Rect, ok bool)

	// ContainerRect returns the bounds of the scrollable board container
	ContainerRect() Rect

	// MaxScroll returns the largest valid horizontal scroll offset
	MaxScroll() float64
}

// Geometry maps stages to their last measured column rectangle.
// A Geometry handed out by the tracker is never mutated afterwards.
type Geometry map[models.Stage]Rect

// RefreshToken identifies one invalidation of the geometry tracker
type RefreshToken uint64

// GeometryTracker owns the column geometry map.
// Refresh swaps in a freshly measured map, so a reader holding an earlier
// Geometry never observes a partially updated one.
type GeometryTracker struct {
	viewport Viewport
	stages   []models.Stage
	current  Geometry

	// pending is the token of the latest invalidation; refreshed is the
	// token that was current when the last refresh ran.
	pending   RefreshToken
	refreshed RefreshToken
}

// NewGeometryTracker creates a tracker with no known geometry
func NewGeometryTracker(viewport Viewport) *GeometryTracker {
	return &GeometryTracker{
		viewport: viewport,
		stages:   models.Stages(),
		current:  Geometry{},
	}
}

// Refresh re-measures every column and replaces the geometry map
func (g *GeometryTracker) Refresh() {
	next := make(Geometry, len(g.stages))
	for _, stage := range g.stages {
		if rect, ok := g.viewport.MeasureColumn(stage); ok {
			next[stage] = rect
		}
	}
	g.current = next
	g.refreshed = g.pending
}

// Get returns the last known rectangle of a column.
// ok is false when the column has not been measured yet.
func (g *GeometryTracker) Get(stage models.Stage) (Rect, bool) {
	rect, ok := g.current[stage]
	return rect, ok
}

// Snapshot returns the current geometry map. Callers must not modify it.
func (g *GeometryTracker) Snapshot() Geometry {
	return g.current
}

// Invalidate records that layout changed and returns a token for a deferred refresh.
// Only the most recent token will actually trigger a refresh.
func (g *GeometryTracker) Invalidate() RefreshToken {
	g.pending++
	return g.pending
}

// Stale reports whether an invalidation happened after the last refresh
func (g *GeometryTracker) Stale() bool {
	return g.pending != g.refreshed
}

// RefreshIfCurrent refreshes only when token is the latest invalidation.
// Returns true if a refresh ran.
func (g *GeometryTracker) RefreshIfCurrent(token RefreshToken) bool {
	if token != g.pending || !g.Stale() {
		return false
	}
	g.Refresh()
	return true
}
