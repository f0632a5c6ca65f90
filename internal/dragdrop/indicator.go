package dragdrop

import (
	"strings"

	"github.com/thenoetrevino/etapa/internal/models"
)

// Direction of a pending stage move relative to registry order
type Direction int

const (
	Forward Direction = iota
	Backward
)

// String implements fmt.Stringer
func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Glyph returns the direction badge shown next to the indicator
func (d Direction) Glyph() string {
	if d == Backward {
		return "◀"
	}
	return "▶"
}

// MoveIndicator summarizes the stage transition a drag is about to produce
type MoveIndicator struct {
	Origin      models.Stage
	Destination models.Stage
	Direction   Direction
	Skipped     []models.Stage // Stages strictly between origin and destination, in registry order
}

// ComputeMoveIndicator derives the move summary for a drag from origin that
// currently hovers hovered. Returns nil when there is no move to show.
func ComputeMoveIndicator(origin, hovered models.Stage) (*MoveIndicator, error) {
	if hovered == models.StageNone || hovered == origin {
		return nil, nil
	}

	from, err := models.StageIndex(origin)
	if err != nil {
		return nil, err
	}
	to, err := models.StageIndex(hovered)
	if err != nil {
		return nil, err
	}

	stages := models.Stages()
	ind := &MoveIndicator{
		Origin:      origin,
		Destination: hovered,
		Direction:   Forward,
		Skipped:     []models.Stage{},
	}

	if to > from {
		ind.Skipped = append(ind.Skipped, stages[from+1:to]...)
	} else {
		ind.Direction = Backward
		// backward moves still list skipped stages in registry order
		ind.Skipped = append(ind.Skipped, stages[to+1:from]...)
	}

	return ind, nil
}

// String renders "Received → Client (via Scheduled, Interviewed)"
func (m MoveIndicator) String() string {
	var b strings.Builder
	b.WriteString(shortName(m.Origin))
	b.WriteString(" → ")
	b.WriteString(shortName(m.Destination))

	if len(m.Skipped) > 0 {
		names := make([]string, len(m.Skipped))
		for i, s := range m.Skipped {
			names[i] = shortName(s)
		}
		b.WriteString(" (via " + strings.Join(names, ", ") + ")")
	}
	return b.String()
}

func shortName(s models.Stage) string {
	info, err := models.LookupStage(s)
	if err != nil {
		return string(s)
	}
	return info.Short
}
