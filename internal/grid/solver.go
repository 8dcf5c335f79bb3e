package grid

import "github.com/krispeckt/layoutkit/internal/core/types"

// Solve executes the ten-phase grid algorithm for one container.
// availableWidth/availableHeight are the container's content-box size
// (padding already subtracted by the caller); padding is supplied
// separately so Phase G10/emission can translate content-relative
// positions into border-box-relative ones, mirroring internal/flex.Solve.
func Solve(container ContainerProps, items []Item, absolutes []AbsoluteItem, padding types.EdgeInsets, availableWidth, availableHeight types.Length) Result {
	// Phase G1 — template expansion.
	rowTemplate := expandTemplate(container.TemplateRows, availableHeight, container.RowGap)
	colTemplate := expandTemplate(container.TemplateColumns, availableWidth, container.ColumnGap)

	// Phase G2 — named lines and areas.
	rowNames := buildLineNames(rowTemplate)
	colNames := buildLineNames(colTemplate)
	areas := parseAreas(container.TemplateAreas, rowNames, colNames)

	// Phase G3 — placement.
	placed, finalRows, finalCols := placeItems(items, len(rowTemplate), len(colTemplate), rowNames, colNames, areas, container.AutoFlow)

	// Phase G4 — finalize track lists with implicit tracks.
	rowTracks := finalizeTracks(rowTemplate, finalRows, container.AutoRows)
	colTracks := finalizeTracks(colTemplate, finalCols, container.AutoColumns)

	// Phase G5 — content-based base sizes.
	rowBases := computeContentBases(rowTracks, placed, true, availableHeight)
	colBases := computeContentBases(colTracks, placed, false, availableWidth)

	// Phase G6 — fr distribution.
	rowSizes := distributeFr(rowTracks, rowBases, availableHeight, container.RowGap)
	colSizes := distributeFr(colTracks, colBases, availableWidth, container.ColumnGap)

	// Phase G7 — track positions, distributing any leftover space per
	// justify-content/align-content.
	rowPos := trackPositions(rowSizes, container.RowGap, availableHeight, container.AlignContent)
	colPos := trackPositions(colSizes, container.ColumnGap, availableWidth, container.JustifyContent)

	// Phase G8 — per-row baselines (single-row-spanning baseline items only).
	rowBaselines := make([]types.Length, len(rowSizes))
	rowHasBaseline := make([]bool, len(rowSizes))
	for _, p := range placed {
		if p.rowEnd-p.rowStart != 1 || !p.item.HasBaseline {
			continue
		}
		if itemAlign(p.item.Props.AlignSelf, container.AlignItems) != ItemBaseline {
			continue
		}
		r := p.rowStart
		if !rowHasBaseline[r] || p.item.Baseline > rowBaselines[r] {
			rowBaselines[r] = p.item.Baseline
			rowHasBaseline[r] = true
		}
	}

	// Phase G9 — item cell positioning.
	result := Result{Items: make([]ItemResult, 0, len(items))}
	for _, p := range placed {
		cellX := colPos[p.colStart]
		cellY := rowPos[p.rowStart]
		cellW := spanSize(colSizes, p.colStart, p.colEnd, container.ColumnGap)
		cellH := spanSize(rowSizes, p.rowStart, p.rowEnd, container.RowGap)

		justify := itemAlign(p.item.Props.JustifySelf, container.JustifyItems)
		align := itemAlign(p.item.Props.AlignSelf, container.AlignItems)

		offX, w := resolveCellAxis(p.item.Box.Width, justify, cellW,
			p.item.Box.Margin.Left, p.item.Box.Margin.Right, p.item.Box.MinWidth, p.item.Box.MaxWidth, p.item.IntrinsicW)

		var offY, h types.Length
		if align == ItemBaseline && rowHasBaseline[p.rowStart] && p.item.HasBaseline {
			offY = p.item.Box.Margin.Top + (rowBaselines[p.rowStart] - p.item.Baseline)
			h = p.item.IntrinsicH
		} else {
			offY, h = resolveCellAxis(p.item.Box.Height, align, cellH,
				p.item.Box.Margin.Top, p.item.Box.Margin.Bottom, p.item.Box.MinHeight, p.item.Box.MaxHeight, p.item.IntrinsicH)
		}

		x := cellX + offX + padding.Left
		y := cellY + offY + padding.Top
		result.Items = append(result.Items, ItemResult{
			Index: p.item.Index,
			X:     x.Quantize(), Y: y.Quantize(),
			W: w.NonNegative().Quantize(), H: h.NonNegative().Quantize(),
		})
	}

	// Phase G10 — absolute positioning, same formula as flex.
	if len(absolutes) > 0 {
		for _, a := range absolutes {
			x, y, w, h := types.ResolveAbsolute(a.Box, a.IntrinsicW, a.IntrinsicH, padding, availableWidth, availableHeight)
			result.Items = append(result.Items, ItemResult{Index: a.Index, X: x, Y: y, W: w, H: h})
		}
	}

	return result
}

// spanSize sums a track run's sizes plus the gaps strictly between them
// (not the gap following the run).
func spanSize(sizes []types.Length, start, end int, gap types.Length) types.Length {
	var total types.Length
	for i := start; i < end && i < len(sizes); i++ {
		total += sizes[i]
	}
	if n := end - start; n > 1 {
		total += gap * types.Length(n-1)
	}
	return total
}

func itemAlign(self *ItemAlign, containerDefault ItemAlign) ItemAlign {
	if self != nil {
		return *self
	}
	return containerDefault
}

// resolveCellAxis implements the per-axis item alignment table: stretch
// fills the cell (minus margins), otherwise the item uses
// its intrinsic/definite size and is positioned start/center/end within
// the leftover space.
func resolveCellAxis(dim types.Dimension, align ItemAlign, cellSize, marginA, marginB, min types.Length, max *types.Length, intrinsic types.Length) (offset, size types.Length) {
	inner := (cellSize - marginA - marginB).NonNegative()
	var resolved types.Length
	switch {
	case dim.IsDefinite():
		// Percent resolves against the cell inner size (cell minus the
		// item's margins), not the whole container.
		resolved = dim.Resolve(inner, intrinsic)
	case align == ItemStretch:
		resolved = inner
	default:
		resolved = intrinsic
	}
	resolved = types.ClampMain(resolved, min, max)

	free := cellSize - marginA - marginB - resolved
	if free < 0 {
		free = 0
	}
	switch align {
	case ItemCenter:
		offset = marginA + free/2
	case ItemEnd:
		offset = marginA + free
	default: // ItemStart, ItemStretch, ItemBaseline fallback
		offset = marginA
	}
	return offset, resolved
}
