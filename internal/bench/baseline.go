package bench

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/sentences"
)

// BaselineBoundaries segments text with the Unicode UAX #29 sentence rules
// and returns boundary offsets comparable to HeuristicBoundaries. Trailing
// whitespace of each segment is excluded so offsets line up with the
// ground-truth annotation.
func BaselineBoundaries(text string) []int {
	var bounds []int

	offset := 0
	segs := sentences.FromString(text)
	for segs.Next() {
		seg := segs.Value()
		trimmed := strings.TrimRight(seg, " \t\r\n")
		if trimmed != "" {
			bounds = append(bounds, offset+len(trimmed))
		}
		offset += len(seg)
	}

	return bounds
}

// EvaluateBaseline scores the UAX #29 segmenter on one transcript.
func EvaluateBaseline(tr *Transcript, cfg Config) Metrics {
	return Evaluate(BaselineBoundaries(tr.RawText), tr.Boundaries(), cfg)
}
