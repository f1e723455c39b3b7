package bench

import (
	"strings"

	"github.com/xenova/kokoro"
)

// HeuristicBoundaries runs the heuristic splitter over text and maps each
// emitted sentence back to the byte offset just past its last character.
func HeuristicBoundaries(text string) []int {
	sentences := kokoro.Split(text)
	bounds := make([]int, 0, len(sentences))

	cursor := 0
	for _, sentence := range sentences {
		idx := strings.Index(text[cursor:], sentence)
		if idx < 0 {
			// Emitted sentences are trimmed substrings of the input, so
			// this only happens on a corrupt corpus; skip the entry.
			continue
		}
		end := cursor + idx + len(sentence)
		bounds = append(bounds, end)
		cursor = end
	}

	return bounds
}

// EvaluateTranscript scores the heuristic splitter on one transcript.
func EvaluateTranscript(tr *Transcript, cfg Config) Metrics {
	return Evaluate(HeuristicBoundaries(tr.RawText), tr.Boundaries(), cfg)
}
