package engine

import (
	"sort"

	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/tree"
)

// LayoutResult is the flat, id-keyed output of a Layout call: every
// node's ComputedLayout in traversal order, with O(1) id lookup and a
// derived paint order for renderers that honor z-index.
type LayoutResult struct {
	layouts []tree.ComputedLayout
	index   map[tree.NodeId]int
	zIndex  map[tree.NodeId]int
	order   []tree.NodeId
}

func newLayoutResult() *LayoutResult {
	return &LayoutResult{
		index:  make(map[tree.NodeId]int),
		zIndex: make(map[tree.NodeId]int),
	}
}

func (r *LayoutResult) emit(n *tree.Node, x, y, w, h types.Length) {
	cl := tree.ComputedLayout{
		NodeId:  n.ID,
		BorderX: x, BorderY: y, BorderW: w, BorderH: h,
		ContentX: x + n.Box.Padding.Left,
		ContentY: y + n.Box.Padding.Top,
		ContentW: (w - n.Box.Padding.Horizontal()).NonNegative(),
		ContentH: (h - n.Box.Padding.Vertical()).NonNegative(),
	}
	r.index[n.ID] = len(r.layouts)
	r.layouts = append(r.layouts, cl)
	r.zIndex[n.ID] = n.ZIndex
	r.order = append(r.order, n.ID)
}

// Get performs an O(1) lookup of a node's ComputedLayout.
func (r *LayoutResult) Get(id tree.NodeId) (tree.ComputedLayout, bool) {
	i, ok := r.index[id]
	if !ok {
		return tree.ComputedLayout{}, false
	}
	return r.layouts[i], true
}

// MustGet is the panic-on-missing variant of Get, for callers who have
// already established that id is in the tree (e.g. they assigned the
// ids themselves) and don't want to thread an ok bool through.
func (r *LayoutResult) MustGet(id tree.NodeId) tree.ComputedLayout {
	l, ok := r.Get(id)
	if !ok {
		panic("layoutkit: no layout for node id")
	}
	return l
}

// All returns every ComputedLayout in traversal order (roots first, then
// each container's children, then grandchildren) — array order is an
// implementation detail callers must not rely on for anything but this
// guarantee; use Get for id-keyed access.
func (r *LayoutResult) All() []tree.ComputedLayout {
	return r.layouts
}

// PaintOrder returns node ids stably sorted by ZIndex ascending, ties
// broken by traversal order. Layout order and paint order are different
// concerns; renderers consuming a LayoutResult draw in this order.
func (r *LayoutResult) PaintOrder() []tree.NodeId {
	ids := make([]tree.NodeId, len(r.order))
	copy(ids, r.order)
	sort.SliceStable(ids, func(i, j int) bool {
		return r.zIndex[ids[i]] < r.zIndex[ids[j]]
	})
	return ids
}
