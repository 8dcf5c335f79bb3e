// Package flex implements the CSS Flexbox container model as an
// eight-phase algorithm: collect, order, line partitioning, iterative
// flexible-length resolution, line alignment, cross sizing, main/cross
// positioning, and emission. One Solve call lays out one container;
// nesting is the driver's job.
package flex

import "github.com/krispeckt/layoutkit/internal/core/types"

// Direction is the CSS flex-direction keyword.
type Direction int

const (
	Row Direction = iota
	RowReverse
	Column
	ColumnReverse
)

// IsHorizontal reports whether the main axis runs left-to-right.
func (d Direction) IsHorizontal() bool { return d == Row || d == RowReverse }

// IsReversed reports whether the main axis runs from the end.
func (d Direction) IsReversed() bool { return d == RowReverse || d == ColumnReverse }

// Wrap is the CSS flex-wrap keyword.
type Wrap int

const (
	NoWrap Wrap = iota
	WrapNormal
	WrapReverse
)

// Justify controls main-axis distribution (justify-content).
type Justify int

const (
	JustifyStart Justify = iota
	JustifyCenter
	JustifyEnd
	JustifySpaceBetween
	JustifySpaceAround
	JustifySpaceEvenly
)

// Align controls cross-axis alignment, shared between align-items and
// align-self.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
	AlignStretch
	AlignBaseline
)

// AlignContent controls cross-axis packing of wrapped lines. It carries
// the full justify-style keyword set (spaceBetween/spaceAround/
// spaceEvenly in addition to start/center/end/stretch), unlike plain
// item alignment which only needs Align.
type AlignContent int

const (
	ContentStart AlignContent = iota
	ContentCenter
	ContentEnd
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
	ContentSpaceEvenly
)

// ContainerProps configures one flex container.
type ContainerProps struct {
	Direction      Direction
	Wrap           Wrap
	JustifyContent Justify
	AlignItems     Align
	AlignContent   AlignContent
	Gap            types.Length // main-axis gap
	RowGap         types.Length // cross-axis gap (between wrapped lines)
	MarginCollapse bool
}

// ItemProps configures one flex child. IgnoreGapBefore lets an item hug
// its predecessor (an icon glued to a label) without zeroing the
// container's gap for everyone else.
type ItemProps struct {
	Grow            float64
	Shrink          *float64 // nil means unset; an explicit 0 means "never shrink"
	Basis           types.Dimension
	AlignSelf       *Align
	Order           int
	IgnoreGapBefore bool
}

// Shrink wraps a flex-shrink factor for ItemProps.Shrink. Shrink(0) and
// a nil field are different things: nil takes the CSS initial value of
// 1, an explicit 0 pins the item at its basis size.
func Shrink(v float64) *float64 { return &v }

// ResolvedShrink returns the shrink factor, defaulted to the CSS
// initial value of 1 when unset.
func (p ItemProps) ResolvedShrink() float64 {
	if p.Shrink == nil {
		return 1
	}
	return *p.Shrink
}
