package tui

import (
	"math"

	"github.com/thenoetrevino/etapa/internal/dragdrop"
	"github.com/thenoetrevino/etapa/internal/models"
	"github.com/thenoetrevino/etapa/internal/tui/components"
	"github.com/thenoetrevino/etapa/internal/tui/state"
)

// columnStride is the horizontal distance between two column origins
const columnStride = components.ColumnWidth + components.ColumnGap

// board lays stage columns out left to right in terminal cells and measures
// them for the drag engine. Rendering and hit testing share this layout.
type board struct {
	ui     *state.UIState
	engine *dragdrop.Engine
}

// offset is the horizontal scroll in whole cells, as rendered
func (b *board) offset() int {
	if b.engine == nil {
		return 0
	}
	return int(math.Round(b.engine.ScrollOffset()))
}

// contentWidth is the width of all columns side by side
func (b *board) contentWidth() int {
	n := len(models.Stages())
	return n*components.ColumnWidth + (n-1)*components.ColumnGap
}

// columnLeft returns the screen column of a stage's left border
func (b *board) columnLeft(index int) int {
	return index*columnStride - b.offset()
}

// MeasureColumn implements dragdrop.Viewport
func (b *board) MeasureColumn(stage models.Stage) (dragdrop.Rect, bool) {
	idx, err := models.StageIndex(stage)
	if err != nil || !b.ui.Ready() || b.ui.BoardHeight() == 0 {
		return dragdrop.Rect{}, false
	}

	left := float64(idx * columnStride)
	top := float64(b.ui.BoardTop())
	rect := dragdrop.Rect{
		Left:   left,
		Top:    top,
		Right:  left + components.ColumnWidth - 1,
		Bottom: top + float64(b.ui.BoardHeight()) - 1,
	}
	return rect.Translate(-float64(b.offset()), 0), true
}

// ContainerRect implements dragdrop.Viewport
func (b *board) ContainerRect() dragdrop.Rect {
	top := float64(b.ui.BoardTop())
	return dragdrop.Rect{
		Left:   0,
		Top:    top,
		Right:  float64(max(b.ui.Width()-1, 0)),
		Bottom: top + float64(max(b.ui.BoardHeight()-1, 0)),
	}
}

// MaxScroll implements dragdrop.Viewport
func (b *board) MaxScroll() float64 {
	return float64(max(b.contentWidth()-b.ui.Width(), 0))
}

// cardAt returns the card rendered under the cell (x, y)
func (b *board) cardAt(x, y int, byStage map[models.Stage][]models.Card) (models.Card, bool) {
	row := y - b.ui.BoardTop()
	visible := components.VisibleCards(b.ui.BoardHeight())

	for idx, stage := range models.Stages() {
		cardLeft := b.columnLeft(idx) + 2
		if x < cardLeft || x >= cardLeft+components.CardWidth {
			continue
		}
		cards := byStage[stage]
		for i := 0; i < len(cards) && i < visible; i++ {
			top := components.CardTop(i)
			if row >= top && row < top+components.CardHeight {
				return cards[i], true
			}
		}
		return models.Card{}, false
	}
	return models.Card{}, false
}
