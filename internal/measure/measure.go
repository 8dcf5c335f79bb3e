// Package measure implements the intrinsic-size pre-pass: an explicit-
// stack post-order traversal that maps every tree.NodeId to an intrinsic
// (width, height). It never fails — anything it cannot size reports
// (0, 0).
package measure

import (
	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/grid"
	"github.com/krispeckt/layoutkit/internal/tree"
)

// Size is one node's intrinsic (width, height).
type Size struct {
	Width, Height types.Length
}

// Intrinsic maps every node id reachable from root to its intrinsic size.
func Intrinsic(root *tree.Node) map[tree.NodeId]Size {
	sizes := make(map[tree.NodeId]Size)
	if root == nil {
		return sizes
	}

	// Explicit-stack post-order: push (node, visited=false); on first pop
	// push it back with visited=true followed by its children, so a node
	// is only measured after all its children have been.
	type frame struct {
		n       *tree.Node
		visited bool
	}
	stack := []frame{{n: root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if !top.visited {
			stack[len(stack)-1].visited = true
			for i := len(top.n.Children) - 1; i >= 0; i-- {
				stack = append(stack, frame{n: top.n.Children[i]})
			}
			continue
		}
		stack = stack[:len(stack)-1]
		sizes[top.n.ID] = measureNode(top.n, sizes)
	}
	return sizes
}

func measureNode(n *tree.Node, sizes map[tree.NodeId]Size) Size {
	if n.Content != nil {
		return Size{Width: n.Content.Width, Height: n.Content.Height}
	}
	if len(n.Children) == 0 {
		return Size{}
	}
	switch n.ContainerKind {
	case tree.ContainerFlex:
		return measureFlex(n, sizes)
	case tree.ContainerGrid:
		return measureGrid(n, sizes)
	default:
		return Size{}
	}
}

func measureFlex(n *tree.Node, sizes map[tree.NodeId]Size) Size {
	rowLike := n.FlexContainer.Direction.IsHorizontal()
	gap := n.FlexContainer.Gap

	var mainSum, crossMax types.Length
	count := 0
	for _, c := range n.Children {
		if c.Box.Position == types.Absolute {
			continue
		}
		cs := sizes[c.ID]
		var childMain, childCross types.Length
		if rowLike {
			childMain, childCross = cs.Width+c.Box.Margin.Horizontal(), cs.Height+c.Box.Margin.Vertical()
		} else {
			childMain, childCross = cs.Height+c.Box.Margin.Vertical(), cs.Width+c.Box.Margin.Horizontal()
		}
		mainSum += childMain
		if childCross > crossMax {
			crossMax = childCross
		}
		count++
	}
	if count > 1 {
		mainSum += gap * types.Length(count-1)
	}

	pad := n.Box.Padding
	if rowLike {
		return Size{Width: mainSum + pad.Horizontal(), Height: crossMax + pad.Vertical()}
	}
	return Size{Width: crossMax + pad.Horizontal(), Height: mainSum + pad.Vertical()}
}

// measureGrid estimates a grid container's intrinsic size: expand
// templates with gap=0 to get a notional track count,
// falling back to ceil(childCount/otherAxisCount) when unspecified,
// assign children to cells in autoFlow order, then sum per-column max
// width and per-row max height.
func measureGrid(n *tree.Node, sizes map[tree.NodeId]Size) Size {
	props := n.GridContainer
	inFlow := make([]*tree.Node, 0, len(n.Children))
	for _, c := range n.Children {
		if c.Box.Position != types.Absolute {
			inFlow = append(inFlow, c)
		}
	}
	if len(inFlow) == 0 {
		return Size{Width: n.Box.Padding.Horizontal(), Height: n.Box.Padding.Vertical()}
	}

	rowCount := grid.EstimateTemplateTrackCount(props.TemplateRows, 0, 0)
	colCount := grid.EstimateTemplateTrackCount(props.TemplateColumns, 0, 0)
	switch {
	case rowCount > 0 && colCount == 0:
		colCount = ceilDiv(len(inFlow), rowCount)
	case colCount > 0 && rowCount == 0:
		rowCount = ceilDiv(len(inFlow), colCount)
	case rowCount == 0 && colCount == 0:
		colCount = len(inFlow)
		rowCount = 1
	}
	if rowCount < 1 {
		rowCount = 1
	}
	if colCount < 1 {
		colCount = 1
	}

	colWidths := make([]types.Length, colCount)
	rowHeights := make([]types.Length, rowCount)

	columnFlow := props.AutoFlow == grid.FlowColumn || props.AutoFlow == grid.FlowColumnDense
	for i, c := range inFlow {
		var r, col int
		if columnFlow {
			col, r = i/rowCount, i%rowCount
		} else {
			r, col = i/colCount, i%colCount
		}
		if r >= rowCount {
			r = rowCount - 1
		}
		if col >= colCount {
			col = colCount - 1
		}
		cs := sizes[c.ID]
		w := cs.Width + c.Box.Margin.Horizontal()
		h := cs.Height + c.Box.Margin.Vertical()
		if w > colWidths[col] {
			colWidths[col] = w
		}
		if h > rowHeights[r] {
			rowHeights[r] = h
		}
	}

	var totalW, totalH types.Length
	for _, w := range colWidths {
		totalW += w
	}
	for _, h := range rowHeights {
		totalH += h
	}
	if colCount > 1 {
		totalW += props.ColumnGap * types.Length(colCount-1)
	}
	if rowCount > 1 {
		totalH += props.RowGap * types.Length(rowCount-1)
	}

	pad := n.Box.Padding
	return Size{Width: totalW + pad.Horizontal(), Height: totalH + pad.Vertical()}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return a
	}
	return (a + b - 1) / b
}
