// Package grid implements the CSS Grid container model: template
// expansion (including auto-fill/auto-fit repeats), named lines and
// template areas, auto-placement on an occupancy matrix under the four
// flow modes, track sizing (fr/minmax/fit-content), and item
// positioning within cells. One Solve call lays out one container.
package grid

import "github.com/krispeckt/layoutkit/internal/core/types"

// TrackSizeKind tags the TrackSize sum type.
type TrackSizeKind int

const (
	TrackFixed TrackSizeKind = iota
	TrackFr
	TrackMinmax
	TrackFitContent
)

// TrackSize is the track sizing sum type: fixed(Dimension) | fr(F) |
// minmax(TrackSize, TrackSize) | fitContent(L).
type TrackSize struct {
	Kind  TrackSizeKind
	Fixed types.Dimension // valid when Kind == TrackFixed
	Fr    float64         // valid when Kind == TrackFr

	// Minmax holds the two bounds when Kind == TrackMinmax. Either side
	// may itself be TrackFixed or TrackFr (e.g. minmax(100px, 1fr)).
	MinSide, MaxSide *TrackSize

	FitContentLimit types.Length // valid when Kind == TrackFitContent
}

// FixedTrack wraps a Dimension as a fixed TrackSize.
func FixedTrack(d types.Dimension) TrackSize { return TrackSize{Kind: TrackFixed, Fixed: d} }

// FrTrack returns an `fr` TrackSize.
func FrTrack(n float64) TrackSize { return TrackSize{Kind: TrackFr, Fr: n} }

// MinmaxTrack returns a minmax(min, max) TrackSize.
func MinmaxTrack(min, max TrackSize) TrackSize {
	return TrackSize{Kind: TrackMinmax, MinSide: &min, MaxSide: &max}
}

// FitContentTrack returns a fit-content(limit) TrackSize.
func FitContentTrack(limit types.Length) TrackSize {
	return TrackSize{Kind: TrackFitContent, FitContentLimit: limit}
}

// FrValue returns the fr weight of a track, recursing into the max side
// of a minmax() (minmax(100px, 1fr) is an fr track with a 100px floor).
func (t TrackSize) FrValue() float64 {
	switch t.Kind {
	case TrackFr:
		return t.Fr
	case TrackMinmax:
		return t.MaxSide.FrValue()
	default:
		return 0
	}
}

// RepeatMode tags how many times a repeat() TrackEntry expands.
type RepeatMode int

const (
	RepeatCount RepeatMode = iota
	RepeatAutoFill
	RepeatAutoFit
)

// TrackEntry is one template entry: a single track with optional line
// names, or a repeat block.
type TrackEntry struct {
	Repeat bool

	// Single fields.
	Size           TrackSize
	StartLineNames []string
	EndLineNames   []string

	// Repeat fields.
	Mode  RepeatMode
	Count int // valid when Mode == RepeatCount
	Sizes []TrackEntry
}

// GridTemplate describes one axis's explicit tracks. AutoSize is not
// read by Solve: implicit tracks beyond the template take
// ContainerProps.AutoRows / AutoColumns.
type GridTemplate struct {
	Entries  []TrackEntry
	AutoSize TrackSize // not consulted for implicit tracks; see ContainerProps.AutoRows/AutoColumns
}

// GridLineKind tags the GridLine sum type.
type GridLineKind int

const (
	LineAuto GridLineKind = iota
	LineIndex                // 1-indexed, negative counts from the end
	LineSpan                 // span(N)
	LineNamed
)

// GridLine references a grid line: auto, a 1-indexed line number
// (negative counts from the end), span(N), or a name.
type GridLine struct {
	Kind  GridLineKind
	Index int    // valid when Kind == LineIndex or LineSpan (span count)
	Name  string // valid when Kind == LineNamed
}

// Auto is the auto GridLine.
var Auto = GridLine{Kind: LineAuto}

// Line returns a 1-indexed line reference (negative counts from the end).
func Line(n int) GridLine { return GridLine{Kind: LineIndex, Index: n} }

// Span returns a span(n) GridLine.
func Span(n int) GridLine { return GridLine{Kind: LineSpan, Index: n} }

// Named returns a named-line GridLine reference.
func Named(name string) GridLine { return GridLine{Kind: LineNamed, Name: name} }

// GridSpan is a start/end GridLine pair for one axis.
type GridSpan struct {
	Start, End GridLine
}

// GridPlacement is a child's row/column placement, or a named area that
// fixes both axes at once.
type GridPlacement struct {
	Row, Column GridSpan
	Area        string // optional, matches a templateAreas area name
}

// AutoFlow selects the auto-placement algorithm (grid-auto-flow).
type AutoFlow int

const (
	FlowRow AutoFlow = iota
	FlowColumn
	FlowRowDense
	FlowColumnDense
)

// JustifyItems/AlignItems reuse flex.Align's keyword set (start/center/
// end/stretch) via a local alias so this package has no dependency on
// internal/flex; JustifyContent/AlignContent reuse the distribution
// keywords locally too.
type ItemAlign int

const (
	ItemStart ItemAlign = iota
	ItemCenter
	ItemEnd
	ItemStretch
	ItemBaseline
)

type ContentAlign int

const (
	ContentStart ContentAlign = iota
	ContentCenter
	ContentEnd
	ContentStretch
	ContentSpaceBetween
	ContentSpaceAround
	ContentSpaceEvenly
)

// ContainerProps configures one grid container.
type ContainerProps struct {
	TemplateRows, TemplateColumns GridTemplate
	TemplateAreas                [][]string // rows x cols, "" == no area

	RowGap, ColumnGap types.Length

	JustifyItems, AlignItems     ItemAlign
	JustifyContent, AlignContent ContentAlign

	AutoFlow               AutoFlow
	AutoRows, AutoColumns  TrackSize
}

// ItemProps configures one grid child: its placement plus per-item
// alignment overrides.
type ItemProps struct {
	Placement GridPlacement
	JustifySelf *ItemAlign
	AlignSelf   *ItemAlign
}
