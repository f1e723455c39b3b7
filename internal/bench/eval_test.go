package bench

import (
	"reflect"
	"testing"
)

func TestHeuristicBoundaries(t *testing.T) {
	text := "Hello world. How are you?"
	got := HeuristicBoundaries(text)
	want := []int{12, 25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("HeuristicBoundaries(%q) = %v, want %v", text, got, want)
	}
}

func TestEvaluateTranscript(t *testing.T) {
	tr := &Transcript{
		ID:      "test",
		RawText: "Hello world. How are you?",
		Sentences: []Sentence{
			{Text: "Hello world.", Start: 0, End: 12},
			{Text: "How are you?", Start: 13, End: 25},
		},
	}

	m := EvaluateTranscript(tr, DefaultConfig())
	if m.Precision != 1.0 || m.Recall != 1.0 {
		t.Errorf("metrics = %+v, want perfect score", m)
	}
}

func TestBaselineBoundaries(t *testing.T) {
	text := "Hello world. How are you?"
	got := BaselineBoundaries(text)
	want := []int{12, 25}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BaselineBoundaries(%q) = %v, want %v", text, got, want)
	}
}

func TestCompare(t *testing.T) {
	transcripts := []*Transcript{
		{
			ID:      "a",
			RawText: "One sentence here. Another follows!",
			Sentences: []Sentence{
				{Text: "One sentence here.", Start: 0, End: 18},
				{Text: "Another follows!", Start: 19, End: 35},
			},
		},
		{
			ID:      "b",
			RawText: "Short.",
			Sentences: []Sentence{
				{Text: "Short.", Start: 0, End: 6},
			},
		},
	}

	cmp := Compare(transcripts, DefaultConfig())

	if len(cmp.PerTranscript) != 2 {
		t.Fatalf("got %d per-transcript results, want 2", len(cmp.PerTranscript))
	}
	if cmp.Heuristic.Recall != 1.0 {
		t.Errorf("aggregate heuristic recall = %v, want 1.0", cmp.Heuristic.Recall)
	}
	for i := 1; i < len(cmp.PerTranscript); i++ {
		prev := cmp.PerTranscript[i-1].Heuristic.WeightedScore
		curr := cmp.PerTranscript[i].Heuristic.WeightedScore
		if prev < curr {
			t.Errorf("results not sorted: %v before %v", prev, curr)
		}
	}
}
