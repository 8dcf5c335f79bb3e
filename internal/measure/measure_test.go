package measure_test

import (
	"testing"

	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/flex"
	"github.com/krispeckt/layoutkit/internal/measure"
	"github.com/krispeckt/layoutkit/internal/tree"
	"github.com/stretchr/testify/require"
)

func leaf(id tree.NodeId, w, h types.Length) *tree.Node {
	return &tree.Node{ID: id, Content: &tree.ContentSize{Width: w, Height: h}}
}

func TestIntrinsic_LeafUsesContentSize(t *testing.T) {
	n := leaf(1, 30, 20)
	sizes := measure.Intrinsic(n)
	require.Equal(t, measure.Size{Width: 30, Height: 20}, sizes[1])
}

func TestIntrinsic_FlexRowSumsMainMaxesCross(t *testing.T) {
	root := &tree.Node{
		ID:            0,
		ContainerKind: tree.ContainerFlex,
		FlexContainer: flex.ContainerProps{Direction: flex.Row, Gap: 10},
		Box:           types.BoxConstraints{Padding: types.EdgeInsets{Top: 5, Left: 5, Right: 5, Bottom: 5}},
		Children:      []*tree.Node{leaf(1, 40, 20), leaf(2, 30, 50)},
	}
	sizes := measure.Intrinsic(root)
	// mainSum = 40+30+gap(10) = 80; crossMax = 50; + padding 5 on each side (10 per axis).
	require.Equal(t, types.Length(90), sizes[0].Width)
	require.Equal(t, types.Length(60), sizes[0].Height)
}

func TestIntrinsic_AbsoluteChildrenExcludedFromFlexSum(t *testing.T) {
	abs := leaf(2, 999, 999)
	abs.Box.Position = types.Absolute
	root := &tree.Node{
		ID:            0,
		ContainerKind: tree.ContainerFlex,
		FlexContainer: flex.ContainerProps{Direction: flex.Row},
		Children:      []*tree.Node{leaf(1, 40, 20), abs},
	}
	sizes := measure.Intrinsic(root)
	require.Equal(t, types.Length(40), sizes[0].Width)
	require.Equal(t, types.Length(20), sizes[0].Height)
}

func TestIntrinsic_NestedTreeMeasuresBottomUp(t *testing.T) {
	inner := &tree.Node{
		ID:            1,
		ContainerKind: tree.ContainerFlex,
		FlexContainer: flex.ContainerProps{Direction: flex.Column},
		Children:      []*tree.Node{leaf(2, 10, 10), leaf(3, 10, 10)},
	}
	root := &tree.Node{
		ID:            0,
		ContainerKind: tree.ContainerFlex,
		FlexContainer: flex.ContainerProps{Direction: flex.Row},
		Children:      []*tree.Node{inner},
	}
	sizes := measure.Intrinsic(root)
	require.Equal(t, types.Length(20), sizes[1].Height) // column sums heights
	require.Equal(t, sizes[1].Width, sizes[0].Width)
	require.Equal(t, sizes[1].Height, sizes[0].Height)
}
