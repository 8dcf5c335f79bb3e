// Package axis provides the main/cross projection used throughout the
// flex solver: the horizontal-or-vertical switch lives in one place
// instead of being repeated as an isRow branch at every call site, so
// the same solver code handles row, row-reverse, column and
// column-reverse.
package axis

import "github.com/krispeckt/layoutkit/internal/core/types"

// Axis projects (width, height)-shaped data onto (main, cross) for a given
// flex direction. Reversal (row-reverse/column-reverse) is handled
// separately by the solver when it emits final positions — Axis carries
// the Reversed flag for it, but its projection methods depend only on
// whether main is horizontal.
type Axis struct {
	Horizontal bool // true for Row/RowReverse, false for Column/ColumnReverse
	Reversed   bool // true for RowReverse/ColumnReverse
}

// MainSize returns the main-axis component of a (w, h) pair.
func (a Axis) MainSize(w, h types.Length) types.Length {
	if a.Horizontal {
		return w
	}
	return h
}

// CrossSize returns the cross-axis component of a (w, h) pair.
func (a Axis) CrossSize(w, h types.Length) types.Length {
	if a.Horizontal {
		return h
	}
	return w
}

// ToWidthHeight projects (main, cross) back onto (width, height).
func (a Axis) ToWidthHeight(main, cross types.Length) (w, h types.Length) {
	if a.Horizontal {
		return main, cross
	}
	return cross, main
}

// MainStart returns the start-edge inset (left for horizontal, top for
// vertical) along the main axis.
func (a Axis) MainStart(e types.EdgeInsets) types.Length {
	if a.Horizontal {
		return e.Left
	}
	return e.Top
}

// MainEnd returns the end-edge inset along the main axis.
func (a Axis) MainEnd(e types.EdgeInsets) types.Length {
	if a.Horizontal {
		return e.Right
	}
	return e.Bottom
}

// CrossStart returns the start-edge inset along the cross axis.
func (a Axis) CrossStart(e types.EdgeInsets) types.Length {
	if a.Horizontal {
		return e.Top
	}
	return e.Left
}

// CrossEnd returns the end-edge inset along the cross axis.
func (a Axis) CrossEnd(e types.EdgeInsets) types.Length {
	if a.Horizontal {
		return e.Bottom
	}
	return e.Right
}

// MainMarginSum returns the sum of the main-axis margins.
func (a Axis) MainMarginSum(e types.EdgeInsets) types.Length {
	if a.Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// CrossMarginSum returns the sum of the cross-axis margins.
func (a Axis) CrossMarginSum(e types.EdgeInsets) types.Length {
	if a.Horizontal {
		return e.Vertical()
	}
	return e.Horizontal()
}

// MainDim returns the Dimension governing the main axis (Width for row,
// Height for column).
func (a Axis) MainDim(b types.BoxConstraints) types.Dimension {
	if a.Horizontal {
		return b.Width
	}
	return b.Height
}

// CrossDim returns the Dimension governing the cross axis.
func (a Axis) CrossDim(b types.BoxConstraints) types.Dimension {
	if a.Horizontal {
		return b.Height
	}
	return b.Width
}

// MainMinMax returns (min, max) along the main axis.
func (a Axis) MainMinMax(b types.BoxConstraints) (types.Length, *types.Length) {
	if a.Horizontal {
		return b.MinWidth, b.MaxWidth
	}
	return b.MinHeight, b.MaxHeight
}

// CrossMinMax returns (min, max) along the cross axis.
func (a Axis) CrossMinMax(b types.BoxConstraints) (types.Length, *types.Length) {
	if a.Horizontal {
		return b.MinHeight, b.MaxHeight
	}
	return b.MinWidth, b.MaxWidth
}
