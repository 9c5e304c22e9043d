package shape

import (
	"github.com/go-text/typesetting/language"
	"golang.org/x/text/unicode/bidi"

	"github.com/gogpu/textlayout/classify"
)

// Segment is a span of codepoints [Start, End) sharing direction and script.
type Segment struct {
	Start     int
	End       int
	Direction Direction
	Script    language.Script
	Level     int
}

// Len returns the number of codepoints in the segment.
func (s Segment) Len() int {
	return s.End - s.Start
}

// Segmenter splits text into runs at direction, script and hard line
// break boundaries.
type Segmenter struct {
	// BaseDirection is the paragraph direction used when the text has no
	// strong directional characters.
	BaseDirection Direction
}

// NewSegmenter creates a segmenter with a left-to-right base direction.
func NewSegmenter() *Segmenter {
	return &Segmenter{BaseDirection: DirectionLTR}
}

// Segment returns the segments of text in logical order.
// The segments partition [0, len(text)).
func (s *Segmenter) Segment(text []rune) []Segment {
	if len(text) == 0 {
		return nil
	}

	segments := make([]Segment, 0, 4)
	start := 0
	for _, end := range hardBreaks(text) {
		segments = s.appendLine(segments, text, start, end)
		start = end
	}
	return segments
}

// hardBreaks returns the end offsets of the lines of text, splitting after
// every mandatory break. The last offset is len(text).
func hardBreaks(text []rune) []int {
	breaks := classify.LineBreaks(text)
	ends := make([]int, 0, 2)
	for i, b := range breaks {
		if b == classify.BreakMandatory {
			ends = append(ends, i+1)
		}
	}
	if len(ends) == 0 || ends[len(ends)-1] != len(text) {
		ends = append(ends, len(text))
	}
	return ends
}

// appendLine segments text[start:end], which contains no inner hard break.
func (s *Segmenter) appendLine(segments []Segment, text []rune, start, end int) []Segment {
	line := text[start:end]
	levels := s.bidiLevels(line)
	scripts := resolveScripts(line)

	curLevel := levels[0]
	curScript := scripts[0]
	segStart := 0
	for i := 1; i < len(line); i++ {
		if levels[i] == curLevel && scripts[i] == curScript {
			continue
		}
		segments = append(segments, makeSegment(start+segStart, start+i, curLevel, curScript))
		segStart = i
		curLevel = levels[i]
		curScript = scripts[i]
	}
	return append(segments, makeSegment(start+segStart, end, curLevel, curScript))
}

// bidiLevels returns an embedding level (0 or 1) per codepoint.
func (s *Segmenter) bidiLevels(line []rune) []int {
	levels := make([]int, len(line))

	defaultDir := bidi.Neutral
	if s.BaseDirection == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(string(line), bidi.DefaultDirection(defaultDir)); err != nil {
		return levels
	}
	ordering, err := p.Order()
	if err != nil {
		return levels
	}

	// run.Pos() returns rune indices, end inclusive.
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		if run.Direction() != bidi.RightToLeft {
			continue
		}
		first, last := run.Pos()
		for j := first; j <= last && j < len(levels); j++ {
			levels[j] = 1
		}
	}
	return levels
}

func makeSegment(start, end, level int, script language.Script) Segment {
	dir := DirectionLTR
	if level%2 == 1 {
		dir = DirectionRTL
	}
	return Segment{
		Start:     start,
		End:       end,
		Direction: dir,
		Script:    script,
		Level:     level,
	}
}

// resolveScripts returns the script of every codepoint, with Inherited
// codepoints taking the preceding script and Common codepoints taking the
// script of their context.
func resolveScripts(line []rune) []language.Script {
	scripts := make([]language.Script, len(line))
	for i, r := range line {
		scripts[i] = language.LookupScript(r)
	}

	last := language.Common
	for i := range scripts {
		if scripts[i] == language.Inherited {
			scripts[i] = last
		} else if scripts[i] != language.Common {
			last = scripts[i]
		}
	}

	last = language.Common
	for i := range scripts {
		if scripts[i] != language.Common {
			if scripts[i] != language.Inherited {
				last = scripts[i]
			}
			continue
		}
		scripts[i] = resolveCommonScript(last, nextConcreteScript(scripts, i+1))
	}
	return scripts
}

// nextConcreteScript finds the next non-Common, non-Inherited script from start.
func nextConcreteScript(scripts []language.Script, start int) language.Script {
	for j := start; j < len(scripts); j++ {
		if scripts[j] != language.Common && scripts[j] != language.Inherited {
			return scripts[j]
		}
	}
	return language.Common
}

// resolveCommonScript determines what script a Common codepoint inherits.
func resolveCommonScript(prev, next language.Script) language.Script {
	switch {
	case prev != language.Common:
		return prev
	case next != language.Common:
		return next
	default:
		return language.Common
	}
}
