package types

// ResolveAbsolute resolves one absolutely-positioned child against its
// container's content box — the formula is identical for flex and grid
// containers, so both solvers share it. Size comes from explicit
// dimensions, else from opposing inset pairs, else intrinsic; position
// from the start inset, else the end inset, else 0.
func ResolveAbsolute(box BoxConstraints, intrinsicW, intrinsicH Length, padding EdgeInsets, availW, availH Length) (x, y, w, h Length) {
	w = resolveAbsoluteAxis(box.Width, box.Left, box.Right, availW, intrinsicW, box.MinWidth, box.MaxWidth)
	h = resolveAbsoluteAxis(box.Height, box.Top, box.Bottom, availH, intrinsicH, box.MinHeight, box.MaxHeight)

	switch {
	case box.Left != nil:
		x = *box.Left
	case box.Right != nil:
		x = availW - *box.Right - w
	default:
		x = 0
	}
	switch {
	case box.Top != nil:
		y = *box.Top
	case box.Bottom != nil:
		y = availH - *box.Bottom - h
	default:
		y = 0
	}

	x += padding.Left + box.Margin.Left
	y += padding.Top + box.Margin.Top
	return x.Quantize(), y.Quantize(), w.NonNegative().Quantize(), h.NonNegative().Quantize()
}

func resolveAbsoluteAxis(dim Dimension, start, end *Length, available, intrinsic, min Length, max *Length) Length {
	var v Length
	switch {
	case dim.IsDefinite():
		v = dim.Resolve(available, intrinsic)
	case start != nil && end != nil:
		v = available - *start - *end
	default:
		v = intrinsic
	}
	return ClampMain(v, min, max)
}
