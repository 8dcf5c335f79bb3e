package flex

import (
	"sort"

	axispkg "github.com/krispeckt/layoutkit/internal/core/axis"
	"github.com/krispeckt/layoutkit/internal/core/types"
)

const maxFlexIterations = 100

// collected is the per-item working state threaded through phases 1-8.
type collected struct {
	item             Item
	axis             axispkg.Axis
	hypotheticalMain types.Length
	hypotheticalCross types.Length
	baseline         types.Length
	resolvedMain     types.Length
	resolvedCross    types.Length
	frozen           bool
	mainPos          types.Length
	crossPos         types.Length
}

func (c *collected) align(container ContainerProps) Align {
	if c.item.Props.AlignSelf != nil {
		return *c.item.Props.AlignSelf
	}
	return container.AlignItems
}

type lineState struct {
	items       []*collected
	crossSize   types.Length
	maxBaseline types.Length
}

// Solve executes the eight-phase flex algorithm for one container.
// availableMain/availableCross are the container's content-box size
// (padding already subtracted by the caller); padding is supplied
// separately so Phase 8 can translate content-relative positions into
// border-box-relative ones.
func Solve(container ContainerProps, items []Item, absolutes []AbsoluteItem, padding types.EdgeInsets, availableMain, availableCross types.Length) Result {
	ax := axispkg.Axis{Horizontal: container.Direction.IsHorizontal(), Reversed: container.Direction.IsReversed()}

	// Phase 1 — collect.
	cs := make([]*collected, len(items))
	for i, it := range items {
		cs[i] = collectItem(ax, it, availableMain, availableCross)
	}

	// Phase 1.5 — order.
	sort.SliceStable(cs, func(i, j int) bool {
		if cs[i].item.Props.Order != cs[j].item.Props.Order {
			return cs[i].item.Props.Order < cs[j].item.Props.Order
		}
		return cs[i].item.SourceOrder < cs[j].item.SourceOrder
	})

	// Phase 2 — partition into lines.
	lines := buildLines(ax, container, cs, availableMain)

	// Phase 3 — resolve flexible lengths, per line.
	for li := range lines {
		resolveFlexibleLengths(container, &lines[li], availableMain)
	}

	// Phase 4 — align lines on the cross axis.
	crossStartOffset, perLineGap, stretchOverride := alignContent(container, lines, availableCross)

	// Phase 5 — resolve cross sizes within each line.
	for li := range lines {
		ln := &lines[li]
		lineCross := ln.crossSize
		if stretchOverride && len(lines) == 1 {
			lineCross = availableCross
		}
		for _, it := range ln.items {
			if it.align(container) == AlignStretch {
				it.resolvedCross = (lineCross - ax.CrossMarginSum(it.item.Box.Margin)).NonNegative()
			} else {
				it.resolvedCross = it.hypotheticalCross
			}
		}
	}

	// Phase 6 — main-axis positioning (justify-content) with optional
	// margin collapsing.
	for li := range lines {
		positionMainAxis(ax, container, &lines[li], availableMain)
	}

	// Phase 7 — cross-axis positioning within the line. wrap-reverse
	// mirrors each line's position so the first line lands at the
	// cross-end, using the same offsets.
	crossOffset := crossStartOffset
	for li := range lines {
		ln := &lines[li]
		lineCross := ln.crossSize
		if stretchOverride && len(lines) == 1 {
			lineCross = availableCross
		}
		positionCrossAxis(ax, container, ln, lineCross)
		lineStart := crossOffset
		if container.Wrap == WrapReverse {
			lineStart = availableCross - crossOffset - lineCross
		}
		for _, it := range ln.items {
			it.crossPos += lineStart
		}
		crossOffset += lineCross + perLineGap
	}

	// Phase 8 — emit.
	padMainStart := ax.MainStart(padding)
	padCrossStart := ax.CrossStart(padding)
	result := Result{Items: make([]ItemResult, 0, len(items))}
	if len(lines) > 0 {
		result.ContentCross = crossOffset - perLineGap
	}
	for _, ln := range lines {
		for _, it := range ln.items {
			extent := it.mainPos + it.resolvedMain + ax.MainEnd(it.item.Box.Margin)
			result.ContentMain = result.ContentMain.Max(extent)
		}
	}
	for _, ln := range lines {
		for _, it := range ln.items {
			main := it.mainPos + padMainStart
			cross := it.crossPos + padCrossStart
			w, h := ax.ToWidthHeight(it.resolvedMain, it.resolvedCross)
			x, y := ax.ToWidthHeight(main, cross)
			result.Items = append(result.Items, ItemResult{
				Index: it.item.Index,
				X:     x.Quantize(), Y: y.Quantize(),
				W: w.NonNegative().Quantize(), H: h.NonNegative().Quantize(),
			})
		}
	}

	result.Items = append(result.Items, solveAbsolutes(ax, absolutes, padding, availableMain, availableCross)...)
	return result
}

func collectItem(ax axispkg.Axis, it Item, availableMain, availableCross types.Length) *collected {
	intrinsicMain := ax.MainSize(it.IntrinsicW, it.IntrinsicH)
	intrinsicCross := ax.CrossSize(it.IntrinsicW, it.IntrinsicH)

	mainDim := ax.MainDim(it.Box)
	var flexBase types.Length
	if mainDim.IsDefinite() {
		flexBase = mainDim.Resolve(availableMain, intrinsicMain)
	} else {
		flexBase = it.Props.Basis.Resolve(availableMain, intrinsicMain)
	}

	minMain, maxMain := ax.MainMinMax(it.Box)
	hypotheticalMain := types.ClampMain(flexBase, minMain, maxMain)

	crossDim := ax.CrossDim(it.Box)
	minCross, maxCross := ax.CrossMinMax(it.Box)
	hypotheticalCross := types.ClampMain(crossDim.Resolve(availableCross, intrinsicCross), minCross, maxCross)

	baseline := hypotheticalCross
	if it.HasBaseline {
		baseline = it.Baseline
	}

	return &collected{
		item: it, axis: ax,
		hypotheticalMain: hypotheticalMain, hypotheticalCross: hypotheticalCross,
		baseline: baseline,
	}
}

func buildLines(ax axispkg.Axis, container ContainerProps, cs []*collected, mainLimit types.Length) []lineState {
	var lines []lineState
	var cur lineState
	var curBase types.Length

	wrapping := container.Wrap != NoWrap

	flush := func() {
		if len(cur.items) == 0 {
			return
		}
		maxAscent, maxDescent := types.Length(0), types.Length(0)
		for _, it := range cur.items {
			ascent := it.baseline
			descent := it.hypotheticalCross - it.baseline + ax.CrossEnd(it.item.Box.Margin)
			maxAscent = maxAscent.Max(ascent)
			maxDescent = maxDescent.Max(descent)
		}
		cur.crossSize = maxAscent + maxDescent
		cur.maxBaseline = maxAscent
		lines = append(lines, cur)
		cur = lineState{}
		curBase = 0
	}

	for _, it := range cs {
		mainWithMargin := it.hypotheticalMain + ax.MainMarginSum(it.item.Box.Margin)
		gapBefore := types.Length(0)
		if len(cur.items) > 0 && !it.item.Props.IgnoreGapBefore {
			gapBefore = container.Gap
		}

		if wrapping && len(cur.items) > 0 && curBase+gapBefore+mainWithMargin > mainLimit {
			flush()
			gapBefore = 0
		}

		cur.items = append(cur.items, it)
		curBase += gapBefore + mainWithMargin
	}
	flush()
	return lines
}

func resolveFlexibleLengths(container ContainerProps, ln *lineState, mainLimit types.Length) {
	sumBase := types.Length(0)
	gapTotal := types.Length(0)
	for i, it := range ln.items {
		sumBase += it.hypotheticalMain + it.axis.MainMarginSum(it.item.Box.Margin)
		if i > 0 && !it.item.Props.IgnoreGapBefore {
			gapTotal += container.Gap
		}
	}
	freeSpace := mainLimit - sumBase - gapTotal

	for _, it := range ln.items {
		it.resolvedMain = it.hypotheticalMain
		it.frozen = false
		if freeSpace >= 0 {
			if it.item.Props.Grow <= 0 {
				it.frozen = true
			}
		} else {
			if it.item.Props.ResolvedShrink() <= 0 || it.hypotheticalMain <= 0 {
				it.frozen = true
			}
		}
	}

	grow := freeSpace >= 0
	for iter := 0; iter < maxFlexIterations; iter++ {
		remaining := freeSpace
		var unfrozenSum float64
		anyUnfrozen := false
		for _, it := range ln.items {
			if it.frozen {
				remaining -= it.resolvedMain - it.hypotheticalMain
				continue
			}
			anyUnfrozen = true
			if grow {
				unfrozenSum += it.item.Props.Grow
			} else {
				unfrozenSum += it.item.Props.ResolvedShrink() * float64(it.hypotheticalMain)
			}
		}
		if !anyUnfrozen || remaining == 0 || unfrozenSum == 0 {
			break
		}

		frozeAny := false
		for _, it := range ln.items {
			if it.frozen {
				continue
			}
			minMain, maxMain := it.axis.MainMinMax(it.item.Box)
			var candidate types.Length
			if grow {
				share := float64(remaining) * (it.item.Props.Grow / unfrozenSum)
				candidate = it.hypotheticalMain + types.Length(share)
			} else {
				w := it.item.Props.ResolvedShrink() * float64(it.hypotheticalMain)
				share := float64(-remaining) * (w / unfrozenSum)
				candidate = it.hypotheticalMain - types.Length(share)
			}
			if maxMain != nil && candidate > *maxMain {
				candidate = *maxMain
				it.frozen = true
				frozeAny = true
			} else if candidate < minMain {
				candidate = minMain
				it.frozen = true
				frozeAny = true
			}
			it.resolvedMain = candidate.NonNegative()
		}
		if !frozeAny {
			for _, it := range ln.items {
				it.frozen = true
			}
			break
		}
	}
	for _, it := range ln.items {
		if !it.frozen {
			it.frozen = true
		}
	}
}

// distribute returns (startOffset, extraGap) for the given free space
// and item count — the justify-content offset/gap table. Line packing
// (alignContent) applies the same table through its own switch.
func distribute(justify Justify, freeSpace types.Length, n int) (offset, extra types.Length) {
	if n <= 0 {
		return 0, 0
	}
	switch justify {
	case JustifyCenter:
		offset = freeSpace / 2
	case JustifyEnd:
		offset = freeSpace
	case JustifySpaceBetween:
		if n > 1 {
			extra = freeSpace / types.Length(n-1)
		}
	case JustifySpaceAround:
		extra = freeSpace / types.Length(n)
		offset = extra / 2
	case JustifySpaceEvenly:
		extra = freeSpace / types.Length(n+1)
		offset = extra
	default: // JustifyStart
	}
	return
}

func positionMainAxis(ax axispkg.Axis, container ContainerProps, ln *lineState, mainLimit types.Length) {
	n := len(ln.items)
	if n == 0 {
		return
	}

	// Margin collapsing, column-like only.
	effStart := make([]types.Length, n)
	effEnd := make([]types.Length, n)
	for i, it := range ln.items {
		effStart[i] = ax.MainStart(it.item.Box.Margin)
		effEnd[i] = ax.MainEnd(it.item.Box.Margin)
	}
	if container.MarginCollapse && !ax.Horizontal {
		for i := 0; i < n-1; i++ {
			c := collapseMargin(effEnd[i], effStart[i+1])
			effStart[i+1] = c
			effEnd[i] = 0
		}
	}

	used := types.Length(0)
	gapCount := 0
	for i, it := range ln.items {
		used += it.resolvedMain + effStart[i] + effEnd[i]
		if i > 0 && !it.item.Props.IgnoreGapBefore {
			used += container.Gap
			gapCount++
		}
	}
	remaining := (mainLimit - used).NonNegative()
	offset, extra := distribute(container.JustifyContent, remaining, n)

	cursor := offset
	for i, it := range ln.items {
		if i > 0 {
			if !it.item.Props.IgnoreGapBefore {
				cursor += container.Gap
			}
			cursor += extra
		}
		cursor += effStart[i]
		it.mainPos = cursor
		cursor += it.resolvedMain + effEnd[i]
	}

	if ax.Reversed {
		for _, it := range ln.items {
			it.mainPos = mainLimit - it.mainPos - it.resolvedMain
		}
	}
}

// collapseMargin combines two adjoining margins the CSS way: max when
// both >= 0, min when both < 0, algebraic sum when mixed signs.
func collapseMargin(m1, m2 types.Length) types.Length {
	switch {
	case m1 >= 0 && m2 >= 0:
		return m1.Max(m2)
	case m1 < 0 && m2 < 0:
		return m1.Min(m2)
	default:
		return m1 + m2
	}
}

func positionCrossAxis(ax axispkg.Axis, container ContainerProps, ln *lineState, lineCross types.Length) {
	for _, it := range ln.items {
		m := it.item.Box.Margin
		switch it.align(container) {
		case AlignCenter:
			it.crossPos = (lineCross-(it.resolvedCross+ax.CrossMarginSum(m)))/2 + ax.CrossStart(m)
		case AlignEnd:
			it.crossPos = lineCross - ax.CrossEnd(m) - it.resolvedCross
		case AlignBaseline:
			it.crossPos = ln.maxBaseline - it.baseline
		default: // AlignStart, AlignStretch
			it.crossPos = ax.CrossStart(m)
		}
	}
}

func solveAbsolutes(ax axispkg.Axis, absolutes []AbsoluteItem, padding types.EdgeInsets, availableMain, availableCross types.Length) []ItemResult {
	if len(absolutes) == 0 {
		return nil
	}
	availW, availH := ax.ToWidthHeight(availableMain, availableCross)
	out := make([]ItemResult, 0, len(absolutes))
	for _, a := range absolutes {
		x, y, w, h := types.ResolveAbsolute(a.Box, a.IntrinsicW, a.IntrinsicH, padding, availW, availH)
		out = append(out, ItemResult{Index: a.Index, X: x, Y: y, W: w, H: h})
	}
	return out
}
