package types_test

import (
	"testing"

	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/stretchr/testify/require"
)

func TestDimension_Resolve(t *testing.T) {
	cases := []struct {
		name      string
		d         types.Dimension
		available types.Length
		content   types.Length
		want      types.Length
	}{
		{"fixed ignores available/content", types.Dim(42), 1000, 5, 42},
		{"percent of available", types.Pct(0.5), 200, 0, 100},
		{"auto falls back to content", types.DimAuto, 200, 37, 37},
		{"min-content falls back to content", types.DimMinContent, 200, 12, 12},
		{"max-content falls back to content", types.DimMaxContent, 200, 99, 99},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, tc.d.Resolve(tc.available, tc.content))
		})
	}
}

func TestDimension_IsAutoIsDefinite(t *testing.T) {
	require.True(t, types.DimAuto.IsAuto())
	require.False(t, types.DimAuto.IsDefinite())
	require.True(t, types.Dim(10).IsDefinite())
	require.True(t, types.Pct(0.5).IsDefinite())
	require.False(t, types.DimMinContent.IsDefinite())
}

func TestBoxConstraints_Clamp_MinWinsOverMax(t *testing.T) {
	// Per CSS: when min > max, min wins.
	max := types.Length(50)
	b := types.BoxConstraints{MinWidth: 80, MaxWidth: &max}
	w, _ := b.Clamp(1000, 0)
	require.Equal(t, types.Length(80), w, "min must win when min > max")
}

func TestBoxConstraints_Clamp_NonNegative(t *testing.T) {
	b := types.BoxConstraints{}
	w, h := b.Clamp(-10, -5)
	require.Equal(t, types.Length(0), w)
	require.Equal(t, types.Length(0), h)
}

func TestBoxConstraints_Clamp_WithinRange(t *testing.T) {
	max := types.Length(200)
	b := types.BoxConstraints{MinWidth: 10, MaxWidth: &max}
	w, _ := b.Clamp(150, 0)
	require.Equal(t, types.Length(150), w)
}

func TestLength_Quantize(t *testing.T) {
	// 1/64px stabilization: values already on the grid pass through.
	require.InDelta(t, 10.0, float64(types.Length(10).Quantize()), 1.0/64)
	require.InDelta(t, 10.015625, float64(types.Length(10.01).Quantize()), 1.0/64)
}

func TestLength_NonNegative(t *testing.T) {
	require.Equal(t, types.Length(0), types.Length(-3).NonNegative())
	require.Equal(t, types.Length(3), types.Length(3).NonNegative())
}

func TestEdgeInsets_HorizontalVertical(t *testing.T) {
	e := types.EdgeInsets{Top: 1, Right: 2, Bottom: 3, Left: 4}
	require.Equal(t, types.Length(6), e.Horizontal())
	require.Equal(t, types.Length(4), e.Vertical())
}
