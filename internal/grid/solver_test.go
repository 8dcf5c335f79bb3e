package grid_test

import (
	"testing"

	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/grid"
	"github.com/stretchr/testify/require"
)

func itemByIndex(res grid.Result, idx int) grid.ItemResult {
	for _, r := range res.Items {
		if r.Index == idx {
			return r
		}
	}
	panic("index not found")
}

func threeEqualColumnsContainer() grid.ContainerProps {
	return grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FrTrack(1)}, {Size: grid.FrTrack(1)}, {Size: grid.FrTrack(1)}}},
		ColumnGap:       10,
	}
}

func TestSolve_AutoPlacementFillsColumnsThenRows(t *testing.T) {
	// Three 1fr columns over a 320px width (3*100 + 2*10 gap) with three
	// auto-placed 90x40 items: row-flow fills column by column.
	container := threeEqualColumnsContainer()
	items := []grid.Item{
		{Index: 0, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 90, IntrinsicH: 40},
		{Index: 1, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 90, IntrinsicH: 40},
		{Index: 2, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 90, IntrinsicH: 40},
	}
	res := grid.Solve(container, items, nil, types.EdgeInsets{}, 320, 50)

	a, b, c := itemByIndex(res, 0), itemByIndex(res, 1), itemByIndex(res, 2)
	require.Equal(t, types.Length(0), a.X)
	require.Equal(t, types.Length(110), b.X)
	require.Equal(t, types.Length(220), c.X)
	for _, it := range []grid.ItemResult{a, b, c} {
		require.Equal(t, types.Length(0), it.Y)
		require.Equal(t, types.Length(90), it.W)
		require.Equal(t, types.Length(40), it.H)
	}
}

func TestSolve_FrTracksConserveAvailableWidth(t *testing.T) {
	// Each of the 3 equal-fr columns should be exactly 100px when
	// stretched: the three cells plus two 10px gaps must sum to the
	// 320px available width.
	container := threeEqualColumnsContainer()
	container.JustifyItems = grid.ItemStretch
	items := []grid.Item{
		{Index: 0, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 10, IntrinsicH: 10},
		{Index: 1, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 10, IntrinsicH: 10},
		{Index: 2, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 10, IntrinsicH: 10},
	}
	res := grid.Solve(container, items, nil, types.EdgeInsets{}, 320, 50)
	var total types.Length
	for _, r := range res.Items {
		require.Equal(t, types.Length(100), r.W)
		total += r.W
	}
	require.Equal(t, types.Length(320), total+20) // +2 gaps of 10px
}

func TestSolve_ExplicitPlacementByLine(t *testing.T) {
	container := grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}, {Size: grid.FixedTrack(types.Dim(50))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(100))}, {Size: grid.FixedTrack(types.Dim(100))}}},
	}
	items := []grid.Item{
		{
			Index: 0,
			Box:   types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto},
			Props: grid.ItemProps{Placement: grid.GridPlacement{
				Row:    grid.GridSpan{Start: grid.Line(2), End: grid.Auto},
				Column: grid.GridSpan{Start: grid.Line(2), End: grid.Auto},
			}},
			IntrinsicW: 100, IntrinsicH: 50,
		},
	}
	res := grid.Solve(container, items, nil, types.EdgeInsets{}, 200, 100)
	a := itemByIndex(res, 0)
	require.Equal(t, types.Length(100), a.X)
	require.Equal(t, types.Length(50), a.Y)
}

func TestSolve_TemplateAreasPlacement(t *testing.T) {
	container := grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(20))}, {Size: grid.FixedTrack(types.Dim(80))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(200))}}},
		TemplateAreas: [][]string{
			{"header"},
			{"main"},
		},
	}
	items := []grid.Item{
		{Index: 0, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, Props: grid.ItemProps{Placement: grid.GridPlacement{Area: "main"}}, IntrinsicW: 200, IntrinsicH: 80},
		{Index: 1, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, Props: grid.ItemProps{Placement: grid.GridPlacement{Area: "header"}}, IntrinsicW: 200, IntrinsicH: 20},
	}
	res := grid.Solve(container, items, nil, types.EdgeInsets{}, 200, 100)
	main, header := itemByIndex(res, 0), itemByIndex(res, 1)
	require.Equal(t, types.Length(20), main.Y)
	require.Equal(t, types.Length(0), header.Y)
}

func denseFlowRowContainer(flow grid.AutoFlow) grid.ContainerProps {
	return grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(100))}, {Size: grid.FixedTrack(types.Dim(100))}, {Size: grid.FixedTrack(types.Dim(100))}}},
		AutoRows:        grid.FixedTrack(types.Dim(50)),
		AutoFlow:        flow,
	}
}

func TestSolve_RowDenseBackfillsGaps(t *testing.T) {
	// Two span-2 items leave column 2 of row 0 empty. Sparse row flow
	// never moves the cursor backwards, so the 1x1 item lands after them
	// on row 1; rowDense restarts the search at (0,0) and back-fills the
	// hole at row 0.
	autoBox := types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}
	span2 := grid.ItemProps{Placement: grid.GridPlacement{Column: grid.GridSpan{Start: grid.Span(2)}}}
	items := []grid.Item{
		{Index: 0, Box: autoBox, Props: span2, IntrinsicW: 10, IntrinsicH: 10},
		{Index: 1, Box: autoBox, Props: span2, IntrinsicW: 10, IntrinsicH: 10},
		{Index: 2, Box: autoBox, IntrinsicW: 10, IntrinsicH: 10},
	}

	sparse := grid.Solve(denseFlowRowContainer(grid.FlowRow), items, nil, types.EdgeInsets{}, 300, 100)
	c := itemByIndex(sparse, 2)
	require.Equal(t, types.Length(200), c.X)
	require.Equal(t, types.Length(50), c.Y, "sparse flow leaves the row-0 hole empty")

	dense := grid.Solve(denseFlowRowContainer(grid.FlowRowDense), items, nil, types.EdgeInsets{}, 300, 100)
	c = itemByIndex(dense, 2)
	require.Equal(t, types.Length(200), c.X)
	require.Equal(t, types.Length(0), c.Y, "dense flow back-fills the row-0 hole")
}

func denseFlowColumnContainer(flow grid.AutoFlow) grid.ContainerProps {
	return grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}, {Size: grid.FixedTrack(types.Dim(50))}, {Size: grid.FixedTrack(types.Dim(50))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(100))}}},
		AutoColumns:     grid.FixedTrack(types.Dim(100)),
		AutoFlow:        flow,
	}
}

func TestSolve_ColumnDenseBackfillsGaps(t *testing.T) {
	// Mirror of the rowDense case on the other axis: two span-2-row
	// items leave row 2 of column 0 empty; columnDense back-fills it.
	autoBox := types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}
	span2 := grid.ItemProps{Placement: grid.GridPlacement{Row: grid.GridSpan{Start: grid.Span(2)}}}
	items := []grid.Item{
		{Index: 0, Box: autoBox, Props: span2, IntrinsicW: 10, IntrinsicH: 10},
		{Index: 1, Box: autoBox, Props: span2, IntrinsicW: 10, IntrinsicH: 10},
		{Index: 2, Box: autoBox, IntrinsicW: 10, IntrinsicH: 10},
	}

	sparse := grid.Solve(denseFlowColumnContainer(grid.FlowColumn), items, nil, types.EdgeInsets{}, 200, 150)
	c := itemByIndex(sparse, 2)
	require.Equal(t, types.Length(100), c.X, "sparse flow leaves the column-0 hole empty")
	require.Equal(t, types.Length(100), c.Y)

	dense := grid.Solve(denseFlowColumnContainer(grid.FlowColumnDense), items, nil, types.EdgeInsets{}, 200, 150)
	c = itemByIndex(dense, 2)
	require.Equal(t, types.Length(0), c.X, "dense flow back-fills the column-0 hole")
	require.Equal(t, types.Length(100), c.Y)
}

func TestSolve_StretchFillsCell(t *testing.T) {
	container := grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(200))}}},
		JustifyItems:    grid.ItemStretch,
		AlignItems:      grid.ItemStretch,
	}
	items := []grid.Item{
		{Index: 0, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 50, IntrinsicH: 20},
	}
	res := grid.Solve(container, items, nil, types.EdgeInsets{}, 200, 50)
	a := itemByIndex(res, 0)
	require.Equal(t, types.Length(200), a.W)
	require.Equal(t, types.Length(50), a.H)
}

func TestSolve_PaddingOffsetsEmission(t *testing.T) {
	container := grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
	}
	items := []grid.Item{{Index: 0, Box: types.BoxConstraints{Width: types.DimAuto, Height: types.DimAuto}, IntrinsicW: 10, IntrinsicH: 10}}
	padding := types.EdgeInsets{Top: 5, Left: 8}
	res := grid.Solve(container, items, nil, padding, 50, 50)
	a := itemByIndex(res, 0)
	require.Equal(t, types.Length(8), a.X)
	require.Equal(t, types.Length(5), a.Y)
}

func TestSolve_AbsoluteItemsSkipPlacement(t *testing.T) {
	right := types.Length(5)
	container := grid.ContainerProps{
		TemplateRows:    grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
		TemplateColumns: grid.GridTemplate{Entries: []grid.TrackEntry{{Size: grid.FixedTrack(types.Dim(50))}}},
	}
	absolutes := []grid.AbsoluteItem{
		{Index: 7, Box: types.BoxConstraints{Width: types.Dim(10), Height: types.Dim(10), Right: &right}},
	}
	res := grid.Solve(container, nil, absolutes, types.EdgeInsets{}, 100, 50)
	require.Len(t, res.Items, 1)
	require.Equal(t, types.Length(85), res.Items[0].X) // 100-5-10
}
