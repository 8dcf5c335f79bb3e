// Package types defines the value types shared by the flex and grid
// solvers: lengths, dimensions, edge insets, and box constraints.
package types

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Length is a resolved measurement in device pixels.
type Length float64

// ClampF64 constrains x to stay within the range [lo, hi].
func ClampF64(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// ClampInt constrains v to stay within the range [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MaxF64 returns the greater of two doubles.
func MaxF64(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}

// MinF64 returns the lesser of two doubles.
func MinF64(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

// Clamp constrains l within [lo, hi] via ClampF64. When lo > hi it
// returns lo for l < lo and hi otherwise; BoxConstraints.Clamp and
// ClampMain apply their own min-wins rule instead.
func (l Length) Clamp(lo, hi Length) Length {
	return Length(ClampF64(float64(l), float64(lo), float64(hi)))
}

// Max returns the greater of two Lengths.
func (l Length) Max(o Length) Length {
	if l > o {
		return l
	}
	return o
}

// Min returns the lesser of two Lengths.
func (l Length) Min(o Length) Length {
	if l < o {
		return l
	}
	return o
}

// NonNegative clamps l to zero when negative. Every ComputedLayout
// dimension passes through this before being returned to callers.
func (l Length) NonNegative() Length {
	if l < 0 {
		return 0
	}
	return l
}

// Quantize rounds l to the nearest 1/64px
// (golang.org/x/image/math/fixed.Int26_6). Layout output is usually
// consumed by a rasterizer working on the same subpixel grid; rounding
// here keeps emitted coordinates reproducible and jitter-free.
func (l Length) Quantize() Length {
	return Length(unfix(fix(float64(l))))
}

func fix(x float64) fixed.Int26_6 {
	return fixed.Int26_6(math.Floor(x*64 + 0.5))
}

func unfix(x fixed.Int26_6) float64 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float64(x>>shift) + float64(x&mask)/64
	}
	x = -x
	return -(float64(x>>shift) + float64(x&mask)/64)
}
