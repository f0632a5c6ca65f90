package dragdrop

import (
	"log/slog"
	"maps"
	"time"

	"github.com/thenoetrevino/etapa/internal/models"
)

// Outcome reports what a finished drag amounted to, so the presentation layer
// can animate accordingly (snap back, settle, open details).
type Outcome int

const (
	OutcomeNone      Outcome = iota // No drag was active
	OutcomeCancelled                // Card snaps back to its origin column
	OutcomeCommitted                // onStageChange was invoked
	OutcomeActivated                // Plain click: onCardActivated was invoked
)

// String implements fmt.Stringer
func (o Outcome) String() string {
	switch o {
	case OutcomeCancelled:
		return "cancelled"
	case OutcomeCommitted:
		return "committed"
	case OutcomeActivated:
		return "activated"
	default:
		return "none"
	}
}

// Engine owns one board's drag state: the geometry map, the drag session and
// the autoscroll offset. All mutation goes through its event methods.
type Engine struct {
	logger   *slog.Logger
	viewport Viewport
	geometry *GeometryTracker
	session  Session
	scroll   *Autoscroller

	dragThreshold float64
	refreshDelay  time.Duration

	onStageChange StageChangeFunc
	onActivated   func(cardID string)

	lastPoint  Point
	cardCounts map[models.Stage]int
}

// New creates an idle engine measuring layout through viewport
func New(viewport Viewport, opts ...Option) *Engine {
	e := &Engine{
		logger:        slog.Default(),
		viewport:      viewport,
		geometry:      NewGeometryTracker(viewport),
		scroll:        NewAutoscroller(DefaultAutoscroll()),
		dragThreshold: DefaultDragThreshold,
		refreshDelay:  DefaultRefreshDelay,
		cardCounts:    make(map[models.Stage]int),
	}

	for _, opt := range opts {
		opt(e)
	}

	return e
}

// ============================================================================
// Input events
// ============================================================================

// OnPointerDown starts a drag of cardID from stage.
// A second start while a drag is in flight is ignored so the first card is
// never lost. Returns an error only for logic errors (unknown stage, blank id).
func (e *Engine) OnPointerDown(cardID string, stage models.Stage, at Point) error {
	if cardID == "" {
		return models.ErrEmptyCardID
	}
	if _, err := models.StageIndex(stage); err != nil {
		return err
	}

	if !e.session.Start(cardID, stage, at) {
		active, _ := e.session.Active()
		e.logger.Debug("drag start ignored, drag already active",
			"card_id", cardID, "active_card_id", active.CardID)
		return nil
	}

	e.lastPoint = at
	e.resolveHover()
	e.logger.Debug("drag started", "card_id", cardID, "origin", stage)
	return nil
}

// OnPointerMove feeds a new pointer position into the active drag.
// Outside a drag it is a no-op: hover and autoscroll only exist while dragging.
func (e *Engine) OnPointerMove(p Point) {
	if !e.session.Dragging() {
		return
	}

	e.lastPoint = p
	moved := e.session.Track(p, e.dragThreshold)
	e.resolveHover()

	// Motion only aims; Tick applies one step per frame
	e.scroll.Aim(p.X, e.viewport.ContainerRect(), moved)
}

// OnPointerUp ends the active drag, committing a stage change when the card
// was dropped over another column. A release that never left the dead zone
// and is still over the origin is a click. Idempotent while idle.
func (e *Engine) OnPointerUp() Outcome {
	snap, ok := e.session.End()
	e.scroll.Stop()
	if !ok {
		e.logger.Debug("pointer up ignored, no active drag")
		return OutcomeNone
	}

	// A release over another column commits even inside the dead zone
	if !snap.Moved && !ShouldCommit(snap) {
		e.logger.Debug("card activated", "card_id", snap.CardID)
		if e.onActivated != nil {
			e.onActivated(snap.CardID)
		}
		return OutcomeActivated
	}

	if Commit(snap, e.onStageChange) {
		e.logger.Info("stage change committed",
			"card_id", snap.CardID, "from", snap.Origin, "to", snap.Hovered)
		return OutcomeCommitted
	}

	e.logger.Debug("drag ended without stage change",
		"card_id", snap.CardID, "origin", snap.Origin, "hovered", snap.Hovered)
	return OutcomeCancelled
}

// Cancel ends the active drag with the hover forced empty, guaranteeing no
// commit. Used for Escape and lost pointer capture.
func (e *Engine) Cancel() Outcome {
	snap, ok := e.session.End()
	e.scroll.Stop()
	if !ok {
		return OutcomeNone
	}

	snap.Hovered = models.StageNone
	Commit(snap, e.onStageChange)
	e.logger.Debug("drag cancelled", "card_id", snap.CardID)
	return OutcomeCancelled
}

// OnViewportResize invalidates geometry. The host should call FlushRefresh
// with the returned token after RefreshDelay.
func (e *Engine) OnViewportResize() RefreshToken {
	e.scroll.SetOffset(e.scroll.Offset(), e.viewport.MaxScroll())
	return e.geometry.Invalidate()
}

// OnCardSetChanged records the new per-column card counts and invalidates
// geometry, since column heights depend on the data.
func (e *Engine) OnCardSetChanged(cards []models.Card) RefreshToken {
	counts := make(map[models.Stage]int, len(e.cardCounts))
	for _, c := range cards {
		if c.Stage.Valid() {
			counts[c.Stage]++
		}
	}
	e.cardCounts = counts
	return e.geometry.Invalidate()
}

// FlushRefresh performs a deferred refresh if token is still the latest
// invalidation. Returns true if geometry was re-measured.
func (e *Engine) FlushRefresh(token RefreshToken) bool {
	if !e.geometry.RefreshIfCurrent(token) {
		return false
	}
	e.resolveHover()
	return true
}

// Refresh re-measures geometry immediately
func (e *Engine) Refresh() {
	e.geometry.Refresh()
	e.resolveHover()
}

// Tick advances autoscroll by one frame. Returns true if the board moved.
func (e *Engine) Tick() bool {
	if !e.session.Dragging() || !e.scroll.Active() {
		return false
	}
	if !e.scroll.Step(e.viewport.MaxScroll()) {
		return false
	}
	e.afterScroll()
	return true
}

// SetScrollOffset scrolls the board directly (keyboard or wheel scrolling).
// Returns true if the offset changed.
func (e *Engine) SetScrollOffset(offset float64) bool {
	if !e.scroll.SetOffset(offset, e.viewport.MaxScroll()) {
		return false
	}
	e.afterScroll()
	return true
}

// afterScroll re-measures columns, which moved with the board, and keeps the
// hover in sync with the last pointer position.
func (e *Engine) afterScroll() {
	e.geometry.Refresh()
	e.resolveHover()
}

func (e *Engine) resolveHover() {
	if !e.session.Dragging() {
		return
	}
	stage, _ := Resolve(e.lastPoint, e.geometry.Snapshot())
	e.session.UpdateHover(stage)
}

// ============================================================================
// Queries
// ============================================================================

// ScrollOffset returns the live horizontal scroll offset of the board
func (e *Engine) ScrollOffset() float64 {
	return e.scroll.Offset()
}

// Dragging reports whether a drag is in flight
func (e *Engine) Dragging() bool {
	return e.session.Dragging()
}

// Session returns a copy of the in-flight drag session
func (e *Engine) Session() (Snapshot, bool) {
	return e.session.Active()
}

// HoveredStage returns the column the active drag is over
func (e *Engine) HoveredStage() (models.Stage, bool) {
	snap, ok := e.session.Active()
	if !ok || !snap.HasHover() {
		return models.StageNone, false
	}
	return snap.Hovered, true
}

// MoveIndicator returns the pending move summary, or nil when the active drag
// (if any) would not change stage
func (e *Engine) MoveIndicator() *MoveIndicator {
	snap, ok := e.session.Active()
	if !ok || !snap.Moved {
		return nil
	}
	ind, err := ComputeMoveIndicator(snap.Origin, snap.Hovered)
	if err != nil {
		e.logger.Warn("move indicator unavailable", "error", err)
		return nil
	}
	return ind
}

// Geometry returns the current column geometry. Callers must not modify it.
func (e *Engine) Geometry() Geometry {
	return e.geometry.Snapshot()
}

// CardCounts returns how many cards each column holds
func (e *Engine) CardCounts() map[models.Stage]int {
	return maps.Clone(e.cardCounts)
}

// RefreshDelay returns the debounce the host should wait before FlushRefresh
func (e *Engine) RefreshDelay() time.Duration {
	return e.refreshDelay
}

// Autoscrolling reports whether the next Tick would try to move the board
func (e *Engine) Autoscrolling() bool {
	return e.session.Dragging() && e.scroll.Active()
}
