package dragdrop

import (
	"math"

	"github.com/thenoetrevino/etapa/internal/models"
)

// Resolve returns the stage a pointer at p should be considered over.
//
// Containment wins first, checked in registry order (first match wins when
// geometry is momentarily overlapping). Outside every column the nearest column
// center is used, ties going to the earlier stage. Returns false only when
// geometry is empty.
func Resolve(p Point, geometry Geometry) (models.Stage, bool) {
	if len(geometry) == 0 {
		return models.StageNone, false
	}

	stages := models.Stages()

	for _, stage := range stages {
		if rect, ok := geometry[stage]; ok && rect.Contains(p) {
			return stage, true
		}
	}

	best := models.StageNone
	bestDist := math.Inf(1)
	for _, stage := range stages {
		rect, ok := geometry[stage]
		if !ok {
			continue
		}
		c := rect.Center()
		d := math.Hypot(p.X-c.X, p.Y-c.Y)
		// strict less keeps the earlier stage on ties
		if d < bestDist {
			best = stage
			bestDist = d
		}
	}

	return best, best != models.StageNone
}
