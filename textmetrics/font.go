// Package textmetrics provides a ContentSize provider for text nodes:
// a TrueType font wrapper exposing the metrics and string-measurement
// queries a layout pass needs. Measurement only — there is no glyph
// rasterization or drawing path, since layoutkit never renders.
package textmetrics

import (
	"os"
	"strings"

	"github.com/golang/freetype/truetype"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font"

	"github.com/krispeckt/layoutkit/internal/core/types"
	"github.com/krispeckt/layoutkit/internal/tree"
)

const defaultDPI = 72

// Font wraps a TrueType font at a fixed point size and DPI, caching its
// single font.Face on the value itself: a layout-only consumer creates
// one Font per typeface/size and measures repeatedly, so it doesn't
// need cross-Font face sharing.
type Font struct {
	tt     *truetype.Font
	sizePt float64
	dpi    float64
	face   font.Face
}

// LoadFont loads a .ttf file from disk at the given point size.
func LoadFont(path string, sizePt float64) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadFontFromBytes(data, sizePt)
}

// LoadFontFromBytes parses a TrueType font from memory.
func LoadFontFromBytes(data []byte, sizePt float64) (*Font, error) {
	ttf, err := truetype.Parse(data)
	if err != nil {
		return nil, err
	}
	if sizePt <= 0 {
		sizePt = 0.01
	}
	f := &Font{tt: ttf, sizePt: sizePt, dpi: defaultDPI}
	f.face = truetype.NewFace(f.tt, &truetype.Options{Size: f.sizePt, DPI: f.dpi, Hinting: font.HintingNone})
	return f, nil
}

// MustLoadFont is LoadFont panicking on error, for static initialization.
func MustLoadFont(path string, sizePt float64) *Font {
	f, err := LoadFont(path, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// MustLoadFontFromBytes is LoadFontFromBytes panicking on error, for
// fonts embedded with go:embed.
func MustLoadFontFromBytes(data []byte, sizePt float64) *Font {
	f, err := LoadFontFromBytes(data, sizePt)
	if err != nil {
		panic(err)
	}
	return f
}

// SetDPI replaces the font's DPI and rebuilds its cached face.
func (f *Font) SetDPI(dpi float64) *Font {
	if dpi <= 0 {
		dpi = defaultDPI
	}
	f.dpi = dpi
	f.face = truetype.NewFace(f.tt, &truetype.Options{Size: f.sizePt, DPI: f.dpi, Hinting: font.HintingNone})
	return f
}

// TrueTypeFont exposes the underlying truetype.Font.
func (f *Font) TrueTypeFont() *truetype.Font { return f.tt }

// AscentPx returns the distance from baseline to top, in pixels.
func (f *Font) AscentPx() float64 {
	m := f.face.Metrics()
	return float64(m.Ascent >> 6)
}

// DescentPx returns the distance from baseline to bottom, in pixels.
func (f *Font) DescentPx() float64 {
	m := f.face.Metrics()
	return float64(m.Descent >> 6)
}

// LineHeightPx returns the total line height (ascent + descent + leading).
func (f *Font) LineHeightPx() float64 {
	m := f.face.Metrics()
	return float64(m.Height >> 6)
}

// LeadingPx returns the vertical leading between lines.
func (f *Font) LeadingPx() float64 {
	m := f.face.Metrics()
	return float64((m.Height - (m.Ascent + m.Descent)) >> 6)
}

// BaselineForTopY returns the baseline y coordinate for a given top y,
// matching CSS line-box behavior: baseline = top + ascent + leading/2.
func (f *Font) BaselineForTopY(topY float64) float64 {
	return topY + f.AscentPx() + f.LeadingPx()/2
}

// MeasureString measures the pixel width and height of a single line.
func (f *Font) MeasureString(s string) (w, h float64) {
	if s == "" {
		return 0, 0
	}
	adv := font.MeasureString(f.face, s)
	return float64(adv >> 6), f.LineHeightPx()
}

// MeasureMultilineString measures a multi-line text block: width is the
// widest line, height is line count × lineHeightPx (the font's own line
// height when lineHeightPx <= 0).
func (f *Font) MeasureMultilineString(s string, lineHeightPx float64) (width, height float64) {
	lines := strings.Split(s, "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return 0, 0
	}
	if lineHeightPx <= 0 {
		lineHeightPx = f.LineHeightPx()
	}
	for _, line := range lines {
		w, _ := f.MeasureString(line)
		if w > width {
			width = w
		}
	}
	height = float64(len(lines)) * lineHeightPx
	return
}

// ContentSizeFor greedily word-wraps text to maxWidth (no wrapping when
// maxWidth <= 0) and returns the resulting block's ContentSize, with
// baseline measured from the top of the first line — a convenience
// measurer for callers who just want "lay out this text node" without
// writing their own.
func (f *Font) ContentSizeFor(text string, maxWidth types.Length) tree.ContentSize {
	lines := f.wrapGreedy(text, float64(maxWidth))
	w, h := f.MeasureMultilineString(strings.Join(lines, "\n"), 0)
	return tree.ContentSize{
		Width:       types.Length(w),
		Height:      types.Length(h),
		Baseline:    types.Length(f.BaselineForTopY(0)),
		HasBaseline: true,
	}
}

// wrapGreedy wraps text at word boundaries. Single-font, no ellipsis,
// no max-lines — just what layout-only measurement needs; overlong
// single words break by grapheme cluster via splitLongWord.
func (f *Font) wrapGreedy(text string, maxWidth float64) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	if maxWidth <= 0 {
		return strings.Split(text, "\n")
	}

	var out []string
	for _, para := range strings.Split(text, "\n") {
		out = append(out, f.wrapParagraph(para, maxWidth)...)
	}
	return out
}

func (f *Font) wrapParagraph(p string, maxWidth float64) []string {
	words := splitWordsPreserveNBSP(p)
	if len(words) == 0 {
		return []string{""}
	}

	cache := map[string]float64{}
	measure := func(s string) float64 {
		if s == "" {
			return 0
		}
		if w, ok := cache[s]; ok {
			return w
		}
		w, _ := f.MeasureString(s)
		cache[s] = w
		return w
	}

	var lines []string
	i := 0
	for i < len(words) {
		if measure(words[i]) > maxWidth {
			lines = append(lines, splitLongWord(words[i], maxWidth, measure)...)
			i++
			continue
		}
		spaceW := measure(" ")
		count := 1
		cur := words[i]
		curW := measure(words[i])
		for i+count < len(words) {
			next := words[i+count]
			candidateW := curW + spaceW + measure(next)
			if candidateW > maxWidth {
				break
			}
			cur += " " + next
			curW = candidateW
			count++
		}
		lines = append(lines, cur)
		i += count
	}
	return lines
}

// splitLongWord breaks a single overlong word by grapheme clusters so it
// spans multiple lines instead of overflowing maxWidth.
func splitLongWord(word string, maxWidth float64, measure func(string) float64) []string {
	clusters, offs := splitGraphemes(word)
	var out []string
	start := 0
	for start < len(clusters) {
		end := start + 1
		for end < len(clusters) && measure(word[offs[start]:offs[end+1]]) <= maxWidth {
			end++
		}
		out = append(out, word[offs[start]:offs[end]])
		start = end
	}
	return out
}

func splitGraphemes(s string) (clusters []string, offsets []int) {
	g := uniseg.NewGraphemes(s)
	offsets = append(offsets, 0)
	for g.Next() {
		cl := g.Str()
		clusters = append(clusters, cl)
		offsets = append(offsets, offsets[len(offsets)-1]+len(cl))
	}
	return clusters, offsets
}

func splitWordsPreserveNBSP(s string) []string {
	if s == "" {
		return nil
	}
	var out []string
	start := -1
	for i, r := range s {
		if r == ' ' || r == '\t' {
			if start >= 0 {
				out = append(out, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, s[start:])
	}
	return out
}
