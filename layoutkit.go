// Package layoutkit computes CSS-style Flexbox and Grid box layouts for
// a caller-built tree of Nodes. Layout is a pure function: given a root,
// a pair of available dimensions, and intrinsic content sizes attached
// to leaves, it produces a border rectangle and a padding-inset content
// rectangle for every node, returned as a flat id-keyed LayoutResult.
//
// The package itself is type aliases and thin re-exported constructors
// onto the internal packages that do the actual work, so the module
// presents one import path instead of forcing callers into internal/*.
package layoutkit

import (
	"github.com/krispeckt/layoutkit/internal/core/axis"
	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/engine"
	"github.com/krispeckt/layoutkit/internal/flex"
	"github.com/krispeckt/layoutkit/internal/grid"
	"github.com/krispeckt/layoutkit/internal/tree"
	"github.com/krispeckt/layoutkit/textmetrics"
)

// Type aliases for the public API.
type (
	// Node is one box in the layout tree.
	Node = tree.Node
	// NodeId identifies a Node within a single Layout call's result.
	NodeId = tree.NodeId
	// ContentSize is a leaf node's measured intrinsic size (e.g. text).
	ContentSize = tree.ContentSize
	// ComputedLayout is one node's resolved border-box and content-box rect.
	ComputedLayout = tree.ComputedLayout
	// LayoutResult is the flat, id-keyed output of a Layout call.
	LayoutResult = engine.LayoutResult

	// Dimension is the <length-percentage> | auto | min-content |
	// max-content sum type used for Box.Width/Height.
	Dimension = types.Dimension
	// Length is a resolved pixel quantity.
	Length = types.Length
	// EdgeInsets holds a box's margin or padding.
	EdgeInsets = types.EdgeInsets
	// BoxConstraints is the sizing contract attached to every Node.
	BoxConstraints = types.BoxConstraints
	// PositionMode selects in-flow (Static) or out-of-flow (Absolute).
	PositionMode = types.PositionMode

	// FlexContainerProps configures a flex container Node.
	FlexContainerProps = flex.ContainerProps
	// FlexItemProps configures a flex child Node.
	FlexItemProps = flex.ItemProps
	// FlexDirection is the flex main-axis direction.
	FlexDirection = flex.Direction
	// FlexWrap controls line wrapping.
	FlexWrap = flex.Wrap
	// Justify controls main-axis distribution.
	Justify = flex.Justify
	// Align controls cross-axis alignment.
	Align = flex.Align
	// AlignContent controls wrapped-line packing.
	AlignContent = flex.AlignContent

	// GridContainerProps configures a grid container Node.
	GridContainerProps = grid.ContainerProps
	// GridItemProps configures a grid child Node.
	GridItemProps = grid.ItemProps
	// GridTemplate describes a grid's row or column tracks.
	GridTemplate = grid.GridTemplate
	// TrackEntry is one template entry: a single track or a repeat block.
	TrackEntry = grid.TrackEntry
	// RepeatMode selects count/auto-fill/auto-fit repeat expansion.
	RepeatMode = grid.RepeatMode
	// TrackSize is the fixed|fr|minmax|fit-content track sum type.
	TrackSize = grid.TrackSize
	// GridLine references a grid line by index, span, or name.
	GridLine = grid.GridLine
	// GridSpan is a start/end GridLine pair.
	GridSpan = grid.GridSpan
	// GridPlacement is a child's row/column/area placement.
	GridPlacement = grid.GridPlacement
	// GridAutoFlow selects the auto-placement algorithm.
	GridAutoFlow = grid.AutoFlow
	// ItemAlign is the grid per-item alignment keyword set.
	ItemAlign = grid.ItemAlign
	// ContentAlign is the grid content-distribution keyword set.
	ContentAlign = grid.ContentAlign

	// Font measures text for ContentSize.
	Font = textmetrics.Font
)

// Container kind / item kind aliases, so callers building a Node don't
// need to import internal/tree directly.
const (
	ContainerNone = tree.ContainerNone
	ContainerFlex = tree.ContainerFlex
	ContainerGrid = tree.ContainerGrid

	ItemNone      = tree.ItemNone
	ItemFlexChild = tree.ItemFlexChild
	ItemGridChild = tree.ItemGridChild
)

// Dimension keyword values.
const (
	Auto       = types.Auto
	Fixed      = types.Fixed
	Percent    = types.Percent
	MinContent = types.MinContent
	MaxContent = types.MaxContent
)

// Position mode values.
const (
	Static   = types.Static
	Absolute = types.Absolute
)

// Flex keyword values.
const (
	Row         = flex.Row
	RowReverse  = flex.RowReverse
	Column      = flex.Column
	ColumnReverse = flex.ColumnReverse

	NoWrap      = flex.NoWrap
	WrapNormal  = flex.WrapNormal
	WrapReverse = flex.WrapReverse

	JustifyStart        = flex.JustifyStart
	JustifyCenter        = flex.JustifyCenter
	JustifyEnd           = flex.JustifyEnd
	JustifySpaceBetween  = flex.JustifySpaceBetween
	JustifySpaceAround   = flex.JustifySpaceAround
	JustifySpaceEvenly   = flex.JustifySpaceEvenly

	AlignStart    = flex.AlignStart
	AlignCenter   = flex.AlignCenter
	AlignEnd      = flex.AlignEnd
	AlignStretch  = flex.AlignStretch
	AlignBaseline = flex.AlignBaseline

	ContentStart        = flex.ContentStart
	ContentCenter       = flex.ContentCenter
	ContentEnd          = flex.ContentEnd
	ContentStretch      = flex.ContentStretch
	ContentSpaceBetween = flex.ContentSpaceBetween
	ContentSpaceAround  = flex.ContentSpaceAround
	ContentSpaceEvenly  = flex.ContentSpaceEvenly
)

// Grid keyword values.
const (
	RepeatCount    = grid.RepeatCount
	RepeatAutoFill = grid.RepeatAutoFill
	RepeatAutoFit  = grid.RepeatAutoFit

	FlowRow         = grid.FlowRow
	FlowColumn      = grid.FlowColumn
	FlowRowDense    = grid.FlowRowDense
	FlowColumnDense = grid.FlowColumnDense

	ItemStart    = grid.ItemStart
	ItemCenter   = grid.ItemCenter
	ItemEnd      = grid.ItemEnd
	ItemStretch  = grid.ItemStretch
	ItemBaseline = grid.ItemBaseline

	GridContentStart        = grid.ContentStart
	GridContentCenter       = grid.ContentCenter
	GridContentEnd          = grid.ContentEnd
	GridContentStretch      = grid.ContentStretch
	GridContentSpaceBetween = grid.ContentSpaceBetween
	GridContentSpaceAround  = grid.ContentSpaceAround
	GridContentSpaceEvenly  = grid.ContentSpaceEvenly
)

// Dimension constructors.
var (
	// Dim wraps a fixed Length as a Dimension.
	Dim = types.Dim
	// Pct wraps a percentage (1.0 == 100%) as a Dimension.
	Pct = types.Pct
)

// Flex item constructors.
var (
	// Shrink wraps an explicit flex-shrink factor for FlexItemProps.
	// Shrink(0) pins an item at its basis; leaving the field nil takes
	// the CSS initial value of 1.
	Shrink = flex.Shrink
)

// Grid line/track constructors.
var (
	Line             = grid.Line
	Span             = grid.Span
	Named            = grid.Named
	FixedTrack       = grid.FixedTrack
	FrTrack          = grid.FrTrack
	MinmaxTrack      = grid.MinmaxTrack
	FitContentTrack  = grid.FitContentTrack
)

// Font constructors.
var (
	// LoadFont loads a .ttf file from disk at the given point size.
	LoadFont = textmetrics.LoadFont
	// LoadFontFromBytes parses a TrueType font from memory.
	LoadFontFromBytes = textmetrics.LoadFontFromBytes
	// MustLoadFont / MustLoadFontFromBytes panic on error, for static
	// initialization and go:embed'd fonts.
	MustLoadFont          = textmetrics.MustLoadFont
	MustLoadFontFromBytes = textmetrics.MustLoadFontFromBytes
)

// MeasureFunc measures one node's intrinsic content size.
// AttachContentSizes calls it once for each leaf that has no
// ContentSize yet; Layout never calls it.
type MeasureFunc func(*Node) ContentSize

// AttachContentSizes walks the tree and attaches f's measurement to
// every leaf that doesn't already carry a ContentSize. It is a caller
// convenience for wiring an external measurer (text, images) before
// Layout — Layout itself only ever reads the Content fields already on
// the tree.
func AttachContentSizes(root *Node, f MeasureFunc) {
	if root == nil || f == nil {
		return
	}
	stack := []*Node{root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if len(n.Children) == 0 && n.Content == nil {
			cs := f(n)
			n.Content = &cs
		}
		stack = append(stack, n.Children...)
	}
}

// Layout computes a ComputedLayout for every node in the tree rooted at
// root, given the root's available content-box dimensions. The input
// tree is not mutated; node ids must be unique within the tree.
func Layout(root *Node, availableWidth, availableHeight Length) *LayoutResult {
	return engine.Layout(root, availableWidth, availableHeight)
}

// MeasureIntrinsicSize returns root's intrinsic (width, height) without
// running a full Layout, for callers who need to size a root container
// (e.g. a window) before laying it out.
func MeasureIntrinsicSize(root *Node) (width, height Length) {
	return engine.MeasureIntrinsicSize(root)
}

// NewAxis constructs the main/cross axis projection a caller's custom
// container code would need to replicate flex's direction handling.
func NewAxis(horizontal, reversed bool) axis.Axis {
	return axis.Axis{Horizontal: horizontal, Reversed: reversed}
}
