package text

import "golang.org/x/text/unicode/bidi"

// Run is a contiguous span of text with a single direction.
type Run struct {
	Text      string
	Start     int // rune offset into the original text
	End       int // exclusive rune offset
	Direction Direction
}

// Segment splits mixed-direction text into single-direction runs using
// the Unicode bidirectional algorithm. Plain LTR text yields one run.
func Segment(text string, base Direction) []Run {
	if text == "" {
		return nil
	}

	defaultDir := bidi.Neutral
	if base == DirectionRTL {
		defaultDir = bidi.RightToLeft
	}

	p := bidi.Paragraph{}
	if _, err := p.SetString(text, bidi.DefaultDirection(defaultDir)); err != nil {
		return []Run{{Text: text, End: len([]rune(text)), Direction: base}}
	}
	ordering, err := p.Order()
	if err != nil {
		return []Run{{Text: text, End: len([]rune(text)), Direction: base}}
	}

	runes := []rune(text)
	runs := make([]Run, 0, ordering.NumRuns())
	for i := 0; i < ordering.NumRuns(); i++ {
		run := ordering.Run(i)
		start, end := run.Pos() // rune indices, end inclusive
		if start > end || end >= len(runes) {
			continue
		}
		dir := DirectionLTR
		if run.Direction() == bidi.RightToLeft {
			dir = DirectionRTL
		}
		runs = append(runs, Run{
			Text:      string(runes[start : end+1]),
			Start:     start,
			End:       end + 1,
			Direction: dir,
		})
	}
	return runs
}
