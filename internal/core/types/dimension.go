package types

// DimensionKind tags the variant carried by a Dimension.
type DimensionKind int

const (
	// Auto means "resolve from content/available space" depending on context.
	Auto DimensionKind = iota
	// Fixed carries an explicit Length.
	Fixed
	// Percent resolves against the available size of the same axis.
	Percent
	// MinContent resolves to the content's minimum intrinsic size.
	MinContent
	// MaxContent resolves to the content's maximum (preferred) intrinsic size.
	MaxContent
)

// Dimension is the sum type CSS calls a `<length-percentage> | auto |
// min-content | max-content`. The zero value is Auto.
type Dimension struct {
	Kind    DimensionKind
	Length  Length  // valid when Kind == Fixed
	Percent float64 // valid when Kind == Percent; 1.0 == 100%
}

// Dim wraps a fixed Length as a Dimension.
func Dim(l Length) Dimension { return Dimension{Kind: Fixed, Length: l} }

// Pct wraps a percentage (1.0 == 100%) as a Dimension.
func Pct(p float64) Dimension { return Dimension{Kind: Percent, Percent: p} }

// DimAuto is the auto Dimension.
var DimAuto = Dimension{Kind: Auto}

// DimMinContent is the min-content Dimension.
var DimMinContent = Dimension{Kind: MinContent}

// DimMaxContent is the max-content Dimension.
var DimMaxContent = Dimension{Kind: MaxContent}

// IsAuto reports whether d is the auto keyword.
func (d Dimension) IsAuto() bool { return d.Kind == Auto }

// IsDefinite reports whether d resolves to a number without consulting
// intrinsic content size: Fixed or Percent. A Percent is reported as
// definite whatever the available size it later resolves against.
func (d Dimension) IsDefinite() bool {
	return d.Kind == Fixed || d.Kind == Percent
}

// Resolve computes the Length a Dimension represents given the available
// size on the same axis and, for auto/min-content/max-content, the
// node's intrinsic size along that axis.
func (d Dimension) Resolve(available, content Length) Length {
	switch d.Kind {
	case Fixed:
		return d.Length
	case Percent:
		return Length(float64(available) * d.Percent)
	case MinContent, MaxContent:
		return content
	default: // Auto
		return content
	}
}
