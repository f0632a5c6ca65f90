package dragdrop

// Default autoscroll tuning: 15% edge zones, 3 to 15 units per frame.
const (
	DefaultEdgeRatio = 0.15
	DefaultMinSpeed  = 3.0
	DefaultMaxSpeed  = 15.0
)

// AutoscrollConfig tunes the edge zones and speed range of the autoscroll controller
type AutoscrollConfig struct {
	EdgeRatio float64 // Edge zone width as a fraction of the container width
	MinSpeed  float64 // Speed at the inner boundary of an edge zone
	MaxSpeed  float64 // Speed at (or beyond) the container edge
}

// DefaultAutoscroll returns the default autoscroll tuning
func DefaultAutoscroll() AutoscrollConfig {
	return AutoscrollConfig{
		EdgeRatio: DefaultEdgeRatio,
		MinSpeed:  DefaultMinSpeed,
		MaxSpeed:  DefaultMaxSpeed,
	}
}

// normalized fills zero or inconsistent values with defaults
func (c AutoscrollConfig) normalized() AutoscrollConfig {
	if c.EdgeRatio <= 0 || c.EdgeRatio > 0.5 {
		c.EdgeRatio = DefaultEdgeRatio
	}
	if c.MinSpeed <= 0 {
		c.MinSpeed = DefaultMinSpeed
	}
	if c.MaxSpeed < c.MinSpeed {
		c.MaxSpeed = max(DefaultMaxSpeed, c.MinSpeed)
	}
	return c
}

// Velocity returns the signed horizontal scroll speed for a pointer at x.
// Negative scrolls left, positive scrolls right, zero outside both edge zones.
func (c AutoscrollConfig) Velocity(x float64, container Rect) float64 {
	c = c.normalized()

	width := container.Width()
	if width <= 0 {
		return 0
	}
	zone := width * c.EdgeRatio

	fromLeft := x - container.Left
	fromRight := container.Right - x

	switch {
	case fromLeft < zone && fromLeft <= fromRight:
		return -c.speed(fromLeft, zone)
	case fromRight < zone:
		return c.speed(fromRight, zone)
	default:
		return 0
	}
}

// speed scales linearly from MinSpeed at the zone boundary to MaxSpeed at the edge
func (c AutoscrollConfig) speed(dist, zone float64) float64 {
	proximity := 1 - dist/zone
	s := c.MinSpeed + (c.MaxSpeed-c.MinSpeed)*proximity
	return min(max(s, c.MinSpeed), c.MaxSpeed)
}

// Autoscroller owns the board's horizontal scroll offset and the velocity
// applied on each animation frame while a drag is in flight.
type Autoscroller struct {
	cfg      AutoscrollConfig
	offset   float64
	velocity float64
}

// NewAutoscroller creates an idle autoscroller at offset zero
func NewAutoscroller(cfg AutoscrollConfig) *Autoscroller {
	return &Autoscroller{cfg: cfg.normalized()}
}

// Config returns the effective tuning
func (a *Autoscroller) Config() AutoscrollConfig {
	return a.cfg
}

// Aim sets the velocity for a pointer at x. With no active drag the velocity is
// always zero so ordinary pointer travel never moves the board.
func (a *Autoscroller) Aim(x float64, container Rect, dragging bool) float64 {
	if !dragging {
		a.velocity = 0
		return 0
	}
	a.velocity = a.cfg.Velocity(x, container)
	return a.velocity
}

// Stop zeroes the velocity
func (a *Autoscroller) Stop() {
	a.velocity = 0
}

// Velocity returns the velocity applied by the next Step
func (a *Autoscroller) Velocity() float64 {
	return a.velocity
}

// Active reports whether the next Step would try to move the board
func (a *Autoscroller) Active() bool {
	return a.velocity != 0
}

// Step applies one frame of velocity, clamped to [0, maxScroll].
// Returns true if the offset changed.
func (a *Autoscroller) Step(maxScroll float64) bool {
	if a.velocity == 0 {
		return false
	}
	return a.SetOffset(a.offset+a.velocity, maxScroll)
}

// Offset returns the current scroll offset
func (a *Autoscroller) Offset() float64 {
	return a.offset
}

// SetOffset moves the board to offset, clamped to [0, maxScroll].
// Returns true if the offset changed.
func (a *Autoscroller) SetOffset(offset, maxScroll float64) bool {
	next := min(max(offset, 0), max(maxScroll, 0))
	if next == a.offset {
		return false
	}
	a.offset = next
	return true
}
