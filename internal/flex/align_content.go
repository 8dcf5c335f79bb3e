package flex

import "github.com/krispeckt/layoutkit/internal/core/types"

// alignContent implements Phase 4: distributing leftover cross-axis
// space across lines per align-content, using the same offset/gap table
// as justify-content. Returns the cross-axis start
// offset, the extra gap to insert between lines (added on top of
// RowGap), and whether the single-line stretch special case applies.
func alignContent(container ContainerProps, lines []lineState, availableCross types.Length) (startOffset, extraGap types.Length, singleLineStretch bool) {
	n := len(lines)
	if n == 0 {
		return 0, 0, false
	}

	totalCross := types.Length(0)
	for _, ln := range lines {
		totalCross += ln.crossSize
	}
	if n > 1 {
		totalCross += container.RowGap * types.Length(n-1)
	}
	freeSpace := (availableCross - totalCross).NonNegative()

	if n == 1 && container.AlignContent == ContentStretch {
		return 0, 0, true
	}

	switch container.AlignContent {
	case ContentCenter:
		startOffset = freeSpace / 2
	case ContentEnd:
		startOffset = freeSpace
	case ContentStretch:
		// Multi-line stretch packs like flexStart; only the
		// single-line case (handled above) grows a line's own
		// crossSize.
	case ContentSpaceBetween:
		if n > 1 {
			extraGap = freeSpace / types.Length(n-1)
		}
	case ContentSpaceAround:
		extraGap = freeSpace / types.Length(n)
		startOffset = extraGap / 2
	case ContentSpaceEvenly:
		extraGap = freeSpace / types.Length(n+1)
		startOffset = extraGap
	default: // ContentStart
	}
	return startOffset, extraGap + container.RowGap, false
}
