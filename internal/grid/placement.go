package grid

// occupancy is a sparse occupancy matrix. A map keyed by (row, col) is
// used instead of a dense 2D array since auto-placed grids can grow rows
// or columns without bound in one direction while staying fixed in the
// other.
type occupancy struct {
	cells          map[[2]int]bool
	maxRow, maxCol int // one past the highest occupied index seen
}

func newOccupancy() *occupancy {
	return &occupancy{cells: map[[2]int]bool{}}
}

func (o *occupancy) free(rs, re, cs, ce int) bool {
	for r := rs; r < re; r++ {
		for c := cs; c < ce; c++ {
			if o.cells[[2]int{r, c}] {
				return false
			}
		}
	}
	return true
}

func (o *occupancy) occupy(rs, re, cs, ce int) {
	for r := rs; r < re; r++ {
		for c := cs; c < ce; c++ {
			o.cells[[2]int{r, c}] = true
		}
	}
	if re > o.maxRow {
		o.maxRow = re
	}
	if ce > o.maxCol {
		o.maxCol = ce
	}
}

// placedItem is one in-flow child after Phase G3, with its resolved
// 0-indexed [start,end) span on each axis.
type placedItem struct {
	item                               Item
	rowStart, rowEnd, colStart, colEnd int
}

// placeItems implements Phase G3 in full: Pass A resolves explicit
// placements (including named-area references), Pass B auto-places
// everything else on the occupancy matrix under the given auto-flow.
func placeItems(items []Item, rowCount, colCount int, rowNames, colNames lineNameMap, areas map[string]areaBounds, autoFlow AutoFlow) (placed []placedItem, finalRows, finalCols int) {
	occ := newOccupancy()
	placed = make([]placedItem, len(items))
	resolved := make([]bool, len(items))

	type pending struct {
		i                int
		rowSpan, colSpan int
		fixedRow         *[2]int
		fixedCol         *[2]int
	}
	var queue []pending

	for i, it := range items {
		if it.Props.Placement.Area != "" {
			if b, ok := areas[it.Props.Placement.Area]; ok {
				occ.occupy(b.RowStart, b.RowEnd, b.ColStart, b.ColEnd)
				placed[i] = placedItem{item: it, rowStart: b.RowStart, rowEnd: b.RowEnd, colStart: b.ColStart, colEnd: b.ColEnd}
				resolved[i] = true
				continue
			}
		}

		rowResolved, rs, re := resolveAxisExplicit(it.Props.Placement.Row, rowCount, rowNames)
		colResolved, cs, ce := resolveAxisExplicit(it.Props.Placement.Column, colCount, colNames)

		switch {
		case rowResolved && colResolved:
			occ.occupy(rs, re, cs, ce)
			placed[i] = placedItem{item: it, rowStart: rs, rowEnd: re, colStart: cs, colEnd: ce}
			resolved[i] = true
		case rowResolved && !colResolved:
			queue = append(queue, pending{i: i, colSpan: spanCountOf(it.Props.Placement.Column), fixedRow: &[2]int{rs, re}})
		case !rowResolved && colResolved:
			queue = append(queue, pending{i: i, rowSpan: spanCountOf(it.Props.Placement.Row), fixedCol: &[2]int{cs, ce}})
		default:
			queue = append(queue, pending{
				i: i,
				rowSpan: spanCountOf(it.Props.Placement.Row),
				colSpan: spanCountOf(it.Props.Placement.Column),
			})
		}
	}

	explicitRows := rowCount
	if explicitRows < 1 {
		explicitRows = 1
	}
	explicitCols := colCount
	if explicitCols < 1 {
		explicitCols = 1
	}
	rowFlow := autoFlow == FlowRow || autoFlow == FlowRowDense
	dense := autoFlow == FlowRowDense || autoFlow == FlowColumnDense

	cursorRow, cursorCol := 0, 0
	for _, p := range queue {
		if dense {
			cursorRow, cursorCol = 0, 0
		}
		var rs, re, cs, ce int
		switch {
		case p.fixedRow != nil:
			rs, re = p.fixedRow[0], p.fixedRow[1]
			cs, ce = placeAlongAxis(occ, rs, re, p.colSpan, true, explicitCols)
		case p.fixedCol != nil:
			cs, ce = p.fixedCol[0], p.fixedCol[1]
			rs, re = placeAlongAxis(occ, cs, ce, p.rowSpan, false, explicitRows)
		case rowFlow:
			rs, re, cs, ce, cursorRow, cursorCol = placeRowFlow(occ, p.rowSpan, p.colSpan, cursorRow, cursorCol, explicitCols)
		default:
			rs, re, cs, ce, cursorRow, cursorCol = placeColumnFlow(occ, p.rowSpan, p.colSpan, cursorRow, cursorCol, explicitRows)
		}
		occ.occupy(rs, re, cs, ce)
		placed[p.i] = placedItem{item: items[p.i], rowStart: rs, rowEnd: re, colStart: cs, colEnd: ce}
	}

	finalRows = explicitRows
	if occ.maxRow > finalRows {
		finalRows = occ.maxRow
	}
	finalCols = explicitCols
	if occ.maxCol > finalCols {
		finalCols = occ.maxCol
	}
	return placed, finalRows, finalCols
}

func spanCountOf(span GridSpan) int {
	if span.Start.Kind == LineSpan {
		return span.Start.Index
	}
	if span.End.Kind == LineSpan {
		return span.End.Index
	}
	return 1
}

// resolveAxisExplicit attempts to fully resolve a GridSpan to a concrete
// [start,end) range without consulting auto-placement. An axis is
// explicit when it references a line number or name; auto or a
// standalone span is not.
func resolveAxisExplicit(span GridSpan, trackCount int, names lineNameMap) (ok bool, start, end int) {
	startExplicit := span.Start.Kind == LineIndex || span.Start.Kind == LineNamed
	endExplicit := span.End.Kind == LineIndex || span.End.Kind == LineNamed

	if !startExplicit && !endExplicit {
		return false, 0, 0
	}

	var sPos, ePos int
	var sOK, eOK bool
	if startExplicit {
		sPos, sOK = resolveLinePosition(span.Start, trackCount, names, true)
	}
	if endExplicit {
		ePos, eOK = resolveLinePosition(span.End, trackCount, names, false)
	}

	switch {
	case sOK && eOK:
		start, end = sPos, ePos
	case sOK && span.End.Kind == LineSpan:
		start, end = sPos, sPos+span.End.Index
	case eOK && span.Start.Kind == LineSpan:
		start, end = ePos-span.Start.Index, ePos
	case sOK:
		start, end = sPos, sPos+1
	case eOK:
		start, end = ePos-1, ePos
	default:
		return false, 0, 0
	}
	if end <= start {
		end = start + 1
	}
	return true, start, end
}

// resolveLinePosition resolves a single GridLine (Index or Named) to a
// 0-indexed line position. Unknown named lines resolve to line 0.
func resolveLinePosition(line GridLine, trackCount int, names lineNameMap, isStart bool) (int, bool) {
	switch line.Kind {
	case LineIndex:
		n := line.Index
		if n > 0 {
			return n - 1, true
		}
		if n < 0 {
			return trackCount + 1 + n, true
		}
		return 0, true
	case LineNamed:
		if isStart {
			if pos, ok := names.resolveStart(line.Name); ok {
				return pos, true
			}
		} else {
			if pos, ok := names.resolveEnd(line.Name); ok {
				return pos, true
			}
		}
		return 0, true
	default:
		return 0, false
	}
}

// placeAlongAxis searches the free (non-fixed) axis for the first
// available run of the required span length, used when only one of the
// item's two axes is explicit.
func placeAlongAxis(occ *occupancy, fixedStart, fixedEnd, span int, searchIsColumn bool, _ int) (a, b int) {
	i := 0
	for {
		var free bool
		if searchIsColumn {
			free = occ.free(fixedStart, fixedEnd, i, i+span)
		} else {
			free = occ.free(i, i+span, fixedStart, fixedEnd)
		}
		if free {
			return i, i + span
		}
		i++
	}
}

// placeRowFlow implements the row (sparse) / rowDense search order:
// outer loop over rows, inner loop over columns bounded by explicitCols.
func placeRowFlow(occ *occupancy, rowSpan, colSpan, cursorRow, cursorCol, explicitCols int) (rs, re, cs, ce, nextRow, nextCol int) {
	colLimit := explicitCols
	if colSpan > colLimit {
		colLimit = colSpan
	}
	r := cursorRow
	for {
		cStart := 0
		if r == cursorRow {
			cStart = cursorCol
		}
		for c := cStart; c+colSpan <= colLimit; c++ {
			if occ.free(r, r+rowSpan, c, c+colSpan) {
				nextRow, nextCol = r, c+colSpan
				if nextCol >= colLimit {
					nextRow, nextCol = r+1, 0
				}
				return r, r + rowSpan, c, c + colSpan, nextRow, nextCol
			}
		}
		r++
	}
}

// placeColumnFlow mirrors placeRowFlow for column (sparse) / columnDense.
func placeColumnFlow(occ *occupancy, rowSpan, colSpan, cursorRow, cursorCol, explicitRows int) (rs, re, cs, ce, nextRow, nextCol int) {
	rowLimit := explicitRows
	if rowSpan > rowLimit {
		rowLimit = rowSpan
	}
	c := cursorCol
	for {
		rStart := 0
		if c == cursorCol {
			rStart = cursorRow
		}
		for r := rStart; r+rowSpan <= rowLimit; r++ {
			if occ.free(r, r+rowSpan, c, c+colSpan) {
				nextRow, nextCol = r+rowSpan, c
				if nextRow >= rowLimit {
					nextRow, nextCol = 0, c+1
				}
				return r, r + rowSpan, c, c + colSpan, nextRow, nextCol
			}
		}
		c++
	}
}
