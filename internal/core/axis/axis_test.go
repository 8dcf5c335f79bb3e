package axis_test

import (
	"testing"

	"github.com/krispeckt/layoutkit/internal/core/axis"
	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/stretchr/testify/require"
)

func TestAxis_RowProjection(t *testing.T) {
	a := axis.Axis{Horizontal: true}
	require.Equal(t, types.Length(10), a.MainSize(10, 20))
	require.Equal(t, types.Length(20), a.CrossSize(10, 20))
	w, h := a.ToWidthHeight(10, 20)
	require.Equal(t, types.Length(10), w)
	require.Equal(t, types.Length(20), h)
}

func TestAxis_ColumnProjection(t *testing.T) {
	a := axis.Axis{Horizontal: false}
	require.Equal(t, types.Length(20), a.MainSize(10, 20))
	require.Equal(t, types.Length(10), a.CrossSize(10, 20))
	w, h := a.ToWidthHeight(10, 20)
	require.Equal(t, types.Length(20), w)
	require.Equal(t, types.Length(10), h)
}

func TestAxis_EdgeProjections(t *testing.T) {
	e := types.EdgeInsets{Top: 1, Right: 2, Bottom: 3, Left: 4}

	row := axis.Axis{Horizontal: true}
	require.Equal(t, types.Length(4), row.MainStart(e))
	require.Equal(t, types.Length(2), row.MainEnd(e))
	require.Equal(t, types.Length(1), row.CrossStart(e))
	require.Equal(t, types.Length(3), row.CrossEnd(e))

	col := axis.Axis{Horizontal: false}
	require.Equal(t, types.Length(1), col.MainStart(e))
	require.Equal(t, types.Length(3), col.MainEnd(e))
	require.Equal(t, types.Length(4), col.CrossStart(e))
	require.Equal(t, types.Length(2), col.CrossEnd(e))
}

func TestAxis_MarginSums(t *testing.T) {
	e := types.EdgeInsets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	row := axis.Axis{Horizontal: true}
	require.Equal(t, e.Horizontal(), row.MainMarginSum(e))
	require.Equal(t, e.Vertical(), row.CrossMarginSum(e))

	col := axis.Axis{Horizontal: false}
	require.Equal(t, e.Vertical(), col.MainMarginSum(e))
	require.Equal(t, e.Horizontal(), col.CrossMarginSum(e))
}

func TestAxis_DimAndMinMaxSelection(t *testing.T) {
	max := types.Length(99)
	b := types.BoxConstraints{
		Width: types.Dim(1), Height: types.Dim(2),
		MinWidth: 5, MinHeight: 6, MaxWidth: &max,
	}
	row := axis.Axis{Horizontal: true}
	require.Equal(t, b.Width, row.MainDim(b))
	require.Equal(t, b.Height, row.CrossDim(b))
	minV, maxV := row.MainMinMax(b)
	require.Equal(t, types.Length(5), minV)
	require.Equal(t, &max, maxV)

	col := axis.Axis{Horizontal: false}
	require.Equal(t, b.Height, col.MainDim(b))
	require.Equal(t, b.Width, col.CrossDim(b))
}
