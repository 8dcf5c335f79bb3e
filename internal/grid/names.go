package grid

// lineNameMap maps a line name to the sorted 0-indexed line positions it
// is attached to. A name may be attached to multiple lines; resolving it
// as a start uses the first index, as an end the last. Duplicates are
// kept, never collapsed.
type lineNameMap map[string][]int

func buildLineNames(tracks []expandedTrack) lineNameMap {
	m := lineNameMap{}
	add := func(name string, pos int) {
		m[name] = append(m[name], pos)
	}
	for i, t := range tracks {
		for _, n := range t.startNames {
			add(n, i) // line before track i
		}
		for _, n := range t.endNames {
			add(n, i+1) // line after track i
		}
	}
	for name := range m {
		sortInts(m[name])
	}
	return m
}

func sortInts(s []int) {
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && s[j-1] > s[j]; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// resolveStart returns the first (lowest) line position registered for
// name, or ok=false if the name is unknown.
func (m lineNameMap) resolveStart(name string) (int, bool) {
	idx, ok := m[name]
	if !ok || len(idx) == 0 {
		return 0, false
	}
	return idx[0], true
}

// resolveEnd returns the last (highest) line position registered for
// name, or ok=false if the name is unknown.
func (m lineNameMap) resolveEnd(name string) (int, bool) {
	idx, ok := m[name]
	if !ok || len(idx) == 0 {
		return 0, false
	}
	return idx[len(idx)-1], true
}

// areaBounds is the resolved [rowStart,rowEnd) x [colStart,colEnd) extent
// of one named grid-template-area.
type areaBounds struct {
	RowStart, RowEnd, ColStart, ColEnd int
}

// parseAreas implements Phase G2's template-areas parsing: discover each
// distinct area name's bounding rectangle, and register synthetic
// "<area>-start"/"<area>-end" line names on both axes.
func parseAreas(areas [][]string, rowNames, colNames lineNameMap) map[string]areaBounds {
	bounds := map[string]areaBounds{}
	for r, row := range areas {
		for c, name := range row {
			if name == "" {
				continue
			}
			b, ok := bounds[name]
			if !ok {
				bounds[name] = areaBounds{RowStart: r, RowEnd: r + 1, ColStart: c, ColEnd: c + 1}
				continue
			}
			if r < b.RowStart {
				b.RowStart = r
			}
			if r+1 > b.RowEnd {
				b.RowEnd = r + 1
			}
			if c < b.ColStart {
				b.ColStart = c
			}
			if c+1 > b.ColEnd {
				b.ColEnd = c + 1
			}
			bounds[name] = b
		}
	}
	for name, b := range bounds {
		rowNames[name+"-start"] = append(rowNames[name+"-start"], b.RowStart)
		rowNames[name+"-end"] = append(rowNames[name+"-end"], b.RowEnd)
		colNames[name+"-start"] = append(colNames[name+"-start"], b.ColStart)
		colNames[name+"-end"] = append(colNames[name+"-end"], b.ColEnd)
		sortInts(rowNames[name+"-start"])
		sortInts(rowNames[name+"-end"])
		sortInts(colNames[name+"-start"])
		sortInts(colNames[name+"-end"])
	}
	return bounds
}
