package textmetrics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplitWordsPreserveNBSP(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"simple words", "a bb ccc", []string{"a", "bb", "ccc"}},
		{"tabs and runs of spaces", "a \t b", []string{"a", "b"}},
		{"nbsp is not a break", "a b c", []string{"a b", "c"}},
		{"empty", "", nil},
		{"only spaces", "   ", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, splitWordsPreserveNBSP(tc.in))
		})
	}
}

func TestSplitGraphemes(t *testing.T) {
	// The combining mark must stay glued to its base letter, and the
	// offsets must index back into the original string byte-accurately:
	// "e"+U+0301 is one 3-byte cluster.
	clusters, offs := splitGraphemes("aéb")
	require.Equal(t, []string{"a", "é", "b"}, clusters)
	require.Equal(t, []int{0, 1, 4, 5}, offs)
}

func TestSplitLongWord_BreaksByGraphemeWidth(t *testing.T) {
	// Every grapheme measures 10px wide; at maxWidth 25 each chunk holds
	// two graphemes.
	measure := func(s string) float64 {
		cl, _ := splitGraphemes(s)
		return float64(len(cl)) * 10
	}
	out := splitLongWord("abcde", 25, measure)
	require.Equal(t, []string{"ab", "cd", "e"}, out)
}
