package grid

import "github.com/krispeckt/layoutkit/internal/core/types"

// finalizeTracks extends an explicit track list out to finalCount using
// autoSize for every implicit track created by placement.
func finalizeTracks(explicit []expandedTrack, finalCount int, autoSize TrackSize) []expandedTrack {
	out := make([]expandedTrack, finalCount)
	copy(out, explicit)
	for i := len(explicit); i < finalCount; i++ {
		out[i] = expandedTrack{size: autoSize}
	}
	return out
}

// resolveTrackBase resolves a TrackSize's non-fr contribution, recursing
// into the min side of minmax().
func resolveTrackBase(t TrackSize, available, content types.Length) types.Length {
	switch t.Kind {
	case TrackFixed:
		return t.Fixed.Resolve(available, content)
	case TrackFr:
		return 0
	case TrackMinmax:
		return resolveTrackBase(*t.MinSide, available, content)
	case TrackFitContent:
		if content < t.FitContentLimit {
			return content
		}
		return t.FitContentLimit
	default:
		return 0
	}
}

// isContentDriven reports whether a track's base size depends on the
// content of the items placed in it (auto/min-content/max-content fixed
// tracks, and fit-content tracks).
func isContentDriven(t TrackSize) bool {
	switch t.Kind {
	case TrackFixed:
		k := t.Fixed.Kind
		return k == types.Auto || k == types.MinContent || k == types.MaxContent
	case TrackFitContent:
		return true
	case TrackMinmax:
		return isContentDriven(*t.MinSide)
	default:
		return false
	}
}

// computeContentBases implements Phase G5: each content-driven track's
// base size is the max, over items spanning it, of (item size + margin)
// divided evenly across the item's span.
func computeContentBases(tracks []expandedTrack, placed []placedItem, axisIsRow bool, available types.Length) []types.Length {
	bases := make([]types.Length, len(tracks))
	for i, t := range tracks {
		bases[i] = resolveTrackBase(t.size, available, 0)
	}
	for _, p := range placed {
		var start, end int
		if axisIsRow {
			start, end = p.rowStart, p.rowEnd
		} else {
			start, end = p.colStart, p.colEnd
		}
		if start < 0 || end > len(tracks) || end <= start {
			continue
		}
		itemSize := p.item.IntrinsicW
		margin := p.item.Box.Margin.Horizontal()
		if axisIsRow {
			itemSize = p.item.IntrinsicH
			margin = p.item.Box.Margin.Vertical()
		}
		per := (itemSize + margin) / types.Length(end-start)
		for idx := start; idx < end; idx++ {
			if isContentDriven(tracks[idx].size) && per > bases[idx] {
				bases[idx] = per
			}
		}
	}
	return bases
}

// distributeFr implements Phase G6: grow fr tracks to consume the space
// left over after every track's base size and the inter-track gaps are
// subtracted from the available size.
func distributeFr(tracks []expandedTrack, bases []types.Length, available, gap types.Length) []types.Length {
	n := len(tracks)
	sizes := make([]types.Length, n)
	copy(sizes, bases)

	sumBase := types.Length(0)
	sumFr := 0.0
	for i, t := range tracks {
		sumBase += bases[i]
		sumFr += t.size.FrValue()
	}
	if n > 1 {
		sumBase += gap * types.Length(n-1)
	}
	if sumFr <= 0 {
		return sizes
	}

	remaining := available - sumBase
	if remaining < 0 {
		remaining = 0
	}
	perFr := float64(remaining) / sumFr

	for i, t := range tracks {
		fr := t.size.FrValue()
		if fr <= 0 {
			continue
		}
		grown := bases[i] + types.Length(perFr*fr)
		if t.size.Kind == TrackMinmax && t.size.MaxSide.Kind != TrackFr {
			if limit := resolveTrackBase(*t.size.MaxSide, available, grown); grown > limit {
				grown = limit
			}
		}
		sizes[i] = grown.Quantize()
	}
	return sizes
}

// trackPositions turns a list of final track sizes into prefix-summed
// start offsets relative to the container's content-box origin. Any
// leftover space between the summed tracks and available is distributed
// per content, using the same offset/per-gap table flex's align-content
// uses: content-align only has room to act when no track consumed the
// extra space itself (e.g. no fr tracks).
func trackPositions(sizes []types.Length, gap types.Length, available types.Length, content ContentAlign) []types.Length {
	n := len(sizes)
	pos := make([]types.Length, n+1)
	if n == 0 {
		return pos
	}

	total := types.Length(0)
	for _, s := range sizes {
		total += s
	}
	if n > 1 {
		total += gap * types.Length(n-1)
	}
	freeSpace := (available - total).NonNegative()

	var startOffset, extraGap types.Length
	switch content {
	case ContentCenter:
		startOffset = freeSpace / 2
	case ContentEnd:
		startOffset = freeSpace
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
	default: // ContentStart, ContentStretch
	}

	cur := startOffset
	for i, s := range sizes {
		pos[i] = cur
		cur += s
		if i < n-1 {
			cur += gap + extraGap
		}
	}
	pos[n] = cur
	return pos
}
