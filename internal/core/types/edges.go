package types

// EdgeInsets holds the four edges of a box (margin or padding) as named
// Length fields.
type EdgeInsets struct {
	Top, Right, Bottom, Left Length
}

// Horizontal returns Left + Right.
func (e EdgeInsets) Horizontal() Length { return e.Left + e.Right }

// Vertical returns Top + Bottom.
func (e EdgeInsets) Vertical() Length { return e.Top + e.Bottom }
