package grid

import "github.com/krispeckt/layoutkit/internal/core/types"

// expandedTrack is one track after Phase G1's template expansion, still
// carrying its line-name metadata.
type expandedTrack struct {
	size           TrackSize
	startNames     []string
	endNames       []string
}

// EstimateTemplateTrackCount exposes Phase G1's expansion count for
// internal/measure's intrinsic pre-pass, which needs a notional track
// count (not the full per-track metadata) to shape its cell grid.
func EstimateTemplateTrackCount(t GridTemplate, available, gap types.Length) int {
	return len(expandTemplate(t, available, gap))
}

// expandTemplate implements Phase G1: walk TrackEntry values and produce
// the flat sequence of tracks, expanding repeat(N, ...) and
// repeat(autoFill|autoFit, ...) against the available size.
func expandTemplate(t GridTemplate, available types.Length, gap types.Length) []expandedTrack {
	var out []expandedTrack
	for _, e := range t.Entries {
		if !e.Repeat {
			out = append(out, expandedTrack{size: e.Size, startNames: e.StartLineNames, endNames: e.EndLineNames})
			continue
		}
		switch e.Mode {
		case RepeatCount:
			for i := 0; i < e.Count; i++ {
				for _, s := range e.Sizes {
					out = append(out, expandedTrack{size: s.Size, startNames: s.StartLineNames, endNames: s.EndLineNames})
				}
			}
		case RepeatAutoFill, RepeatAutoFit:
			count := autoRepeatCount(e.Sizes, available, gap)
			for i := 0; i < count; i++ {
				for _, s := range e.Sizes {
					out = append(out, expandedTrack{size: s.Size, startNames: s.StartLineNames, endNames: s.EndLineNames})
				}
			}
		}
	}
	return out
}

// autoRepeatCount computes how many times an auto-fill/auto-fit repeat
// block expands: max(1, floor(available / (sum of min track sizes +
// gap*(len-1)))). autoFit's empty-track collapsing is not implemented;
// it behaves identically to autoFill.
func autoRepeatCount(sizes []TrackEntry, available, gap types.Length) int {
	sum := types.Length(0)
	for _, s := range sizes {
		sum += minTrackSizeEstimate(s.Size, available)
	}
	if len(sizes) > 1 {
		sum += gap * types.Length(len(sizes)-1)
	}
	if sum <= 0 {
		return 1
	}
	count := int(float64(available) / float64(sum))
	if count < 1 {
		count = 1
	}
	return count
}

// minTrackSizeEstimate is the floor a track contributes for the purpose
// of auto-fill/auto-fit counting: its minimum side, with fr treated as 0.
func minTrackSizeEstimate(t TrackSize, available types.Length) types.Length {
	switch t.Kind {
	case TrackFixed:
		return t.Fixed.Resolve(available, 0)
	case TrackFr:
		return 0
	case TrackMinmax:
		return minTrackSizeEstimate(*t.MinSide, available)
	case TrackFitContent:
		return 0
	default:
		return 0
	}
}
