// Package engine drives the layout pass: an iterative top-down traversal
// that invokes the flex/grid solvers per container, translates the
// produced rectangles into tree coordinates, and assembles a
// LayoutResult. The walk uses an explicit work stack, not recursion —
// tree depth is unbounded.
package engine

import (
	axispkg "github.com/krispeckt/layoutkit/internal/core/axis"
	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/flex"
	"github.com/krispeckt/layoutkit/internal/grid"
	"github.com/krispeckt/layoutkit/internal/measure"
	"github.com/krispeckt/layoutkit/internal/tree"
)

type workItem struct {
	n          *tree.Node
	x, y, w, h types.Length
}

// Layout computes a ComputedLayout for every node in the tree rooted at
// root, given the root's available content-box dimensions.
func Layout(root *tree.Node, availableWidth, availableHeight types.Length) *LayoutResult {
	result := newLayoutResult()
	if root == nil {
		return result
	}

	sizes := measure.Intrinsic(root)

	rootW, rootH := resolveSize(root, availableWidth, availableHeight, sizes)
	result.emit(root, 0, 0, rootW, rootH)

	stack := []workItem{{n: root, x: 0, y: 0, w: rootW, h: rootH}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		n := top.n
		if len(n.Children) == 0 {
			continue
		}

		contentW := (top.w - n.Box.Padding.Horizontal()).NonNegative()
		contentH := (top.h - n.Box.Padding.Vertical()).NonNegative()

		// childRects are relative to n's border-box origin (top.x, top.y):
		// flex/grid's own Phase 8/G9 already fold n.Box.Padding into each
		// rect, so the default (no-container) case below must do the same
		// rather than this loop adding padding a second time.
		childRects := solveChildren(n, sizes, contentW, contentH)

		for _, c := range n.Children {
			rect, ok := childRects[c.ID]
			if !ok {
				continue
			}
			cw, ch := applyAspect(c, rect.W, rect.H)
			cw, ch = c.Box.Clamp(cw, ch)
			cx := top.x + rect.X
			cy := top.y + rect.Y
			result.emit(c, cx, cy, cw, ch)
			stack = append(stack, workItem{n: c, x: cx, y: cy, w: cw, h: ch})
		}
	}
	return result
}

// MeasureIntrinsicSize exposes the intrinsic pre-pass for a single node,
// for callers doing their own sizing outside a full Layout call.
func MeasureIntrinsicSize(root *tree.Node) (width, height types.Length) {
	if root == nil {
		return 0, 0
	}
	s := measure.Intrinsic(root)[root.ID]
	return s.Width, s.Height
}

func resolveSize(n *tree.Node, availW, availH types.Length, sizes map[tree.NodeId]measure.Size) (types.Length, types.Length) {
	s := sizes[n.ID]
	isContainer := n.ContainerKind != tree.ContainerNone
	widthAuto := n.Box.Width.IsAuto()
	heightAuto := n.Box.Height.IsAuto()

	var w, h types.Length
	if widthAuto {
		if isContainer {
			w = availW
		} else {
			w = s.Width
		}
	} else {
		w = n.Box.Width.Resolve(availW, s.Width)
	}
	if heightAuto {
		if isContainer {
			h = availH
		} else {
			h = s.Height
		}
	} else {
		h = n.Box.Height.Resolve(availH, s.Height)
	}

	w, h = applyAspectRatio(n.Box.AspectRatio, widthAuto, heightAuto, w, h)
	return n.Box.Clamp(w, h)
}

// applyAspect re-applies aspect-ratio correction to a child rectangle
// already emitted by a container solver, using the child's own
// width/height auto-ness to decide which side the ratio adjusts.
// Neither the flex nor grid solver models aspect ratio directly, so the
// driver applies it uniformly here.
func applyAspect(c *tree.Node, w, h types.Length) (types.Length, types.Length) {
	return applyAspectRatio(c.Box.AspectRatio, c.Box.Width.IsAuto(), c.Box.Height.IsAuto(), w, h)
}

func applyAspectRatio(ratio *float64, widthAuto, heightAuto bool, w, h types.Length) (types.Length, types.Length) {
	if ratio == nil || *ratio == 0 {
		return w, h
	}
	switch {
	case widthAuto && !heightAuto:
		w = h * types.Length(*ratio)
	case heightAuto && !widthAuto:
		h = w / types.Length(*ratio)
	}
	return w, h
}

type childRect struct {
	X, Y, W, H types.Length
}

// solveChildren dispatches to the flex or grid solver for one container
// node, returning each child's rectangle relative to the container's
// border-box origin (the container's padding is already added). A node
// with children but ContainerKind == none has
// no layout algorithm; each such child is positioned at the content-box
// origin, with its own Width/Height dimensions resolved against the
// content box the same way resolveSize does for the root.
func solveChildren(n *tree.Node, sizes map[tree.NodeId]measure.Size, contentW, contentH types.Length) map[tree.NodeId]childRect {
	out := make(map[tree.NodeId]childRect, len(n.Children))

	switch n.ContainerKind {
	case tree.ContainerFlex:
		var items []flex.Item
		var absolutes []flex.AbsoluteItem
		for i, c := range n.Children {
			s := sizes[c.ID]
			if c.Box.Position == types.Absolute {
				absolutes = append(absolutes, flex.AbsoluteItem{Index: i, Box: c.Box, IntrinsicW: s.Width, IntrinsicH: s.Height})
				continue
			}
			props := flex.ItemProps{}
			if c.ItemKind == tree.ItemFlexChild {
				props = c.FlexItem
			}
			baseline, hasBaseline := s.Height, false
			if c.Content != nil && c.Content.HasBaseline {
				baseline, hasBaseline = c.Content.Baseline, true
			}
			items = append(items, flex.Item{
				Index: i, SourceOrder: i, Box: c.Box, Props: props,
				IntrinsicW: s.Width, IntrinsicH: s.Height,
				Baseline: baseline, HasBaseline: hasBaseline,
			})
		}
		ax := axispkg.Axis{Horizontal: n.FlexContainer.Direction.IsHorizontal(), Reversed: n.FlexContainer.Direction.IsReversed()}
		res := flex.Solve(n.FlexContainer, items, absolutes, n.Box.Padding, ax.MainSize(contentW, contentH), ax.CrossSize(contentW, contentH))
		for _, r := range res.Items {
			out[n.Children[r.Index].ID] = childRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
		}

	case tree.ContainerGrid:
		var items []grid.Item
		var absolutes []grid.AbsoluteItem
		for i, c := range n.Children {
			s := sizes[c.ID]
			if c.Box.Position == types.Absolute {
				absolutes = append(absolutes, grid.AbsoluteItem{Index: i, Box: c.Box, IntrinsicW: s.Width, IntrinsicH: s.Height})
				continue
			}
			props := grid.ItemProps{}
			if c.ItemKind == tree.ItemGridChild {
				props = c.GridItem
			}
			baseline, hasBaseline := s.Height, false
			if c.Content != nil && c.Content.HasBaseline {
				baseline, hasBaseline = c.Content.Baseline, true
			}
			items = append(items, grid.Item{
				Index: i, Box: c.Box, Props: props,
				IntrinsicW: s.Width, IntrinsicH: s.Height,
				Baseline: baseline, HasBaseline: hasBaseline,
			})
		}
		res := grid.Solve(n.GridContainer, items, absolutes, n.Box.Padding, contentW, contentH)
		for _, r := range res.Items {
			out[n.Children[r.Index].ID] = childRect{X: r.X, Y: r.Y, W: r.W, H: r.H}
		}

	default:
		for _, c := range n.Children {
			w, h := resolveSize(c, contentW, contentH, sizes)
			out[c.ID] = childRect{X: n.Box.Padding.Left, Y: n.Box.Padding.Top, W: w, H: h}
		}
	}
	return out
}
