package components

// Board geometry in terminal cells. Hit testing in the tui package relies on
// these, so rendering must produce exactly these sizes.
const (
	ColumnWidth       = 32 // outer width including borders
	ColumnGap         = 1  // blank cells between columns
	CardWidth         = ColumnWidth - 4
	CardHeight        = 4 // border + name + role + border
	columnInnerWidth  = ColumnWidth - 2
	columnHeaderLines = 2 // title + spacer
	moreIndicatorLine = 1 // "+N more" footer

	// CardTopOffset is the row of the first card relative to the column's top border
	CardTopOffset = 1 + columnHeaderLines
)

// VisibleCards returns how many cards fit in a column of the given outer height
func VisibleCards(columnHeight int) int {
	available := columnHeight - 2 - columnHeaderLines - moreIndicatorLine
	if available < CardHeight {
		return 0
	}
	return available / CardHeight
}

// CardTop returns the row of the index-th card relative to the column's top border
func CardTop(index int) int {
	return CardTopOffset + index*CardHeight
}
