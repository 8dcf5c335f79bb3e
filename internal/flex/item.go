package flex

import "github.com/krispeckt/layoutkit/internal/core/types"

// Item is the solver's input descriptor for one child: everything the
// flex algorithm needs to know about a child node without depending on
// the tree package (kept acyclic — internal/tree depends on internal/flex,
// not the other way around).
type Item struct {
	Index         int // caller-defined identity, returned unchanged in Result
	SourceOrder   int // position among siblings before the Phase 1.5 stable sort
	Box           types.BoxConstraints
	Props         ItemProps
	IntrinsicW    types.Length
	IntrinsicH    types.Length
	Baseline      types.Length // from ContentSize.Baseline; used when HasBaseline
	HasBaseline   bool
}

// AbsoluteItem is the solver's input descriptor for an out-of-flow child.
type AbsoluteItem struct {
	Index      int
	Box        types.BoxConstraints
	IntrinsicW types.Length
	IntrinsicH types.Length
}

// ItemResult is one child's resolved rectangle relative to the
// container's border-box origin (0,0): Solve adds the container's
// padding to every position.
type ItemResult struct {
	Index      int
	X, Y, W, H types.Length
}

// Result is the solver's full output for one container.
type Result struct {
	Items       []ItemResult
	ContentMain types.Length // resolved main-axis content size, for auto-sizing containers
	ContentCross types.Length
}
