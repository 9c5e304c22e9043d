package shape

import (
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textlayout/classify"
)

// paragraph is a span of text ending after a hard line break or at the end
// of the text.
type paragraph struct {
	start, end int
}

// splitParagraphs splits text after every newline codepoint.
func splitParagraphs(text []rune) []paragraph {
	paras := make([]paragraph, 0, 1)
	start := 0
	for i, r := range text {
		if classify.IsNewline(r) {
			paras = append(paras, paragraph{start: start, end: i + 1})
			start = i + 1
		}
	}
	if start < len(text) {
		paras = append(paras, paragraph{start: start, end: len(text)})
	}
	return paras
}

// paragraphDirection returns the direction of the first strong codepoint,
// or fallback if there is none (UAX #9 rules P2 and P3).
func paragraphDirection(text []rune, fallback Direction) Direction {
	for _, r := range text {
		props, _ := bidi.LookupRune(r)
		switch props.Class() {
		case bidi.L:
			return DirectionLTR
		case bidi.R, bidi.AL:
			return DirectionRTL
		}
	}
	return fallback
}

// visualOrder returns run indices in visual order, left to right, by
// reversing every maximal sequence at or above each odd level (UAX #9 rule L2).
func visualOrder(levels []int) []int {
	order := make([]int, len(levels))
	for i := range order {
		order[i] = i
	}
	if len(levels) < 2 {
		return order
	}

	lv := append([]int(nil), levels...)
	highest, lowest := lv[0], lv[0]
	for _, l := range lv[1:] {
		highest = max(highest, l)
		lowest = min(lowest, l)
	}
	lowestOdd := lowest
	if lowestOdd%2 == 0 {
		lowestOdd++
	}

	for level := highest; level >= lowestOdd; level-- {
		for i := 0; i < len(lv); i++ {
			if lv[i] < level {
				continue
			}
			j := i
			for j < len(lv) && lv[j] >= level {
				j++
			}
			reverse(order[i:j])
			reverse(lv[i:j])
			i = j
		}
	}
	return order
}

func reverse(s []int) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
