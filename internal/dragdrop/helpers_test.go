package dragdrop

import (
	"github.com/thenoetrevino/etapa/internal/models"
)

const (
	testColumnWidth = 100.0
	testColumnGap   = 10.0
	testColumnTop   = 20.0
	testColumnBot   = 420.0
)

// fakeViewport lays out one column per stage in a row, shifted left by the
// scroll offset reported by offset (if set).
type fakeViewport struct {
	container Rect
	maxScroll float64
	hidden    map[models.Stage]bool
	offset    func() float64
	measured  int
}

func newFakeViewport() *fakeViewport {
	return &fakeViewport{
		container: Rect{Left: 0, Top: 0, Right: 300, Bottom: 440},
		maxScroll: 250,
		hidden:    map[models.Stage]bool{},
	}
}

func (v *fakeViewport) MeasureColumn(stage models.Stage) (Rect, bool) {
	v.measured++
	if v.hidden[stage] {
		return Rect{}, false
	}
	idx, err := models.StageIndex(stage)
	if err != nil {
		return Rect{}, false
	}
	left := float64(idx) * (testColumnWidth + testColumnGap)
	r := Rect{Left: left, Top: testColumnTop, Right: left + testColumnWidth, Bottom: testColumnBot}
	if v.offset != nil {
		r = r.Translate(-v.offset(), 0)
	}
	return r, true
}

func (v *fakeViewport) ContainerRect() Rect { return v.container }

func (v *fakeViewport) MaxScroll() float64 { return v.maxScroll }

// rowGeometry returns the unscrolled fakeViewport layout as a Geometry
func rowGeometry() Geometry {
	g := Geometry{}
	v := newFakeViewport()
	for _, s := range models.Stages() {
		r, _ := v.MeasureColumn(s)
		g[s] = r
	}
	return g
}

// centerOf returns the center of a stage column in the unscrolled layout
func centerOf(stage models.Stage) Point {
	return rowGeometry()[stage].Center()
}
