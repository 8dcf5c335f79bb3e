package engine_test

import (
	"testing"

	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/engine"
	"github.com/krispeckt/layoutkit/internal/flex"
	"github.com/krispeckt/layoutkit/internal/grid"
	"github.com/krispeckt/layoutkit/internal/tree"
	"github.com/stretchr/testify/require"
)

func leafNode(id tree.NodeId, w, h types.Length) *tree.Node {
	return &tree.Node{
		ID:      id,
		Box:     types.BoxConstraints{Width: types.Dim(w), Height: types.Dim(h)},
		Content: &tree.ContentSize{Width: w, Height: h},
	}
}

func TestLayout_FlexRowPositionsChildrenAndAppliesPadding(t *testing.T) {
	root := &tree.Node{
		ID:            0,
		Box:           types.BoxConstraints{Width: types.Dim(300), Height: types.Dim(100), Padding: types.EdgeInsets{Top: 10, Left: 10, Right: 10, Bottom: 10}},
		ContainerKind: tree.ContainerFlex,
		FlexContainer: flex.ContainerProps{Direction: flex.Row, Gap: 5},
		Children:      []*tree.Node{leafNode(1, 50, 20), leafNode(2, 50, 20)},
	}
	res := engine.Layout(root, 300, 100)

	rootLayout, ok := res.Get(0)
	require.True(t, ok)
	require.Equal(t, types.Length(300), rootLayout.BorderW)
	require.Equal(t, types.Length(280), rootLayout.ContentW) // 300 - 2*10

	c1, ok := res.Get(1)
	require.True(t, ok)
	require.Equal(t, types.Length(10), c1.BorderX) // contentX(10) + child x(0)
	require.Equal(t, types.Length(10), c1.BorderY)

	c2, ok := res.Get(2)
	require.True(t, ok)
	require.Equal(t, types.Length(65), c2.BorderX) // 10 + 50 + gap(5)
}

func TestLayout_NilRootReturnsEmptyResult(t *testing.T) {
	res := engine.Layout(nil, 100, 100)
	require.Empty(t, res.All())
}

func TestLayout_GridContainerPositionsChildren(t *testing.T) {
	root := &tree.Node{
		ID:            0,
		Box:           types.BoxConstraints{Width: types.Dim(200), Height: types.Dim(50)},
		ContainerKind: tree.ContainerGrid,
		GridContainer: grid.ContainerProps{
			TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(100))}, {Size: grid.FixedTrack(types.Dim(100))}}},
			TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
		},
		Children: []*tree.Node{leafNode(1, 100, 50), leafNode(2, 100, 50)},
	}
	res := engine.Layout(root, 200, 50)
	c1, _ := res.Get(1)
	c2, _ := res.Get(2)
	require.Equal(t, types.Length(0), c1.BorderX)
	require.Equal(t, types.Length(100), c2.BorderX)
}

func TestLayout_PaintOrderSortsByZIndex(t *testing.T) {
	root := &tree.Node{
		ID:            0,
		Box:           types.BoxConstraints{Width: types.Dim(100), Height: types.Dim(100)},
		ContainerKind: tree.ContainerFlex,
		FlexContainer: flex.ContainerProps{Direction: flex.Row},
		Children: []*tree.Node{
			{ID: 1, Box: types.BoxConstraints{Width: types.Dim(10), Height: types.Dim(10)}, ZIndex: 5},
			{ID: 2, Box: types.BoxConstraints{Width: types.Dim(10), Height: types.Dim(10)}, ZIndex: 1},
		},
	}
	res := engine.Layout(root, 100, 100)
	order := res.PaintOrder()
	// root (z=0), then child 2 (z=1), then child 1 (z=5).
	require.Equal(t, []tree.NodeId{0, 2, 1}, order)
}

func TestLayout_AspectRatioDerivesMissingSide(t *testing.T) {
	ratio := 2.0 // width = 2 * height
	root := &tree.Node{
		ID:            0,
		Box:           types.BoxConstraints{Width: types.Dim(200), Height: types.Dim(100)},
		ContainerKind: tree.ContainerFlex,
		FlexContainer: flex.ContainerProps{Direction: flex.Row},
		Children: []*tree.Node{
			{ID: 1, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.Dim(40), AspectRatio: &ratio}, Content: &tree.ContentSize{Width: 0, Height: 40}},
		},
	}
	res := engine.Layout(root, 200, 100)
	c1, _ := res.Get(1)
	require.Equal(t, types.Length(80), c1.BorderW) // 2 * 40
}

func TestLayout_NoneContainerResolvesChildDimensions(t *testing.T) {
	// A node with children but no container kind has no layout algorithm;
	// its children still get their own explicit dimensions resolved
	// instead of falling back to intrinsic size.
	child := &tree.Node{
		ID:      1,
		Box:     types.BoxConstraints{Width: types.Dim(100), Height: types.DimAuto},
		Content: &tree.ContentSize{Width: 50, Height: 30},
	}
	root := &tree.Node{
		ID:       0,
		Box:      types.BoxConstraints{Width: types.Dim(200), Height: types.Dim(200), Padding: types.EdgeInsets{Top: 10, Left: 10}},
		Children: []*tree.Node{child},
	}
	res := engine.Layout(root, 200, 200)

	c, ok := res.Get(1)
	require.True(t, ok)
	require.Equal(t, types.Length(100), c.BorderW, "explicit width wins over intrinsic")
	require.Equal(t, types.Length(30), c.BorderH, "auto height falls back to intrinsic")
	require.Equal(t, types.Length(10), c.BorderX)
	require.Equal(t, types.Length(10), c.BorderY)
}

func TestMeasureIntrinsicSize_NilRoot(t *testing.T) {
	w, h := engine.MeasureIntrinsicSize(nil)
	require.Equal(t, types.Length(0), w)
	require.Equal(t, types.Length(0), h)
}
