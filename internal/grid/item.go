package grid

import "github.com/krispeckt/layoutkit/internal/core/types"

// Item is the grid solver's input descriptor for one in-flow child.
type Item struct {
	Index       int
	Box         types.BoxConstraints
	Props       ItemProps
	IntrinsicW  types.Length
	IntrinsicH  types.Length
	Baseline    types.Length
	HasBaseline bool
}

// AbsoluteItem mirrors flex.AbsoluteItem; grid absolute children don't
// participate in track sizing or placement.
type AbsoluteItem struct {
	Index      int
	Box        types.BoxConstraints
	IntrinsicW types.Length
	IntrinsicH types.Length
}

// ItemResult is one child's resolved rectangle relative to the
// container's border-box origin: Solve adds the container's padding to
// every position.
type ItemResult struct {
	Index      int
	X, Y, W, H types.Length
}

// Result is the solver's full output for one container.
type Result struct {
	Items []ItemResult
}
