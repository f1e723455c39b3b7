package bench

import "sort"

// TranscriptResult pairs a transcript with its heuristic and baseline scores.
type TranscriptResult struct {
	ID        string
	Heuristic Metrics
	Baseline  Metrics
}

// Comparison is a corpus-wide side-by-side evaluation.
type Comparison struct {
	PerTranscript []TranscriptResult
	Heuristic     Metrics // aggregate over the whole corpus
	Baseline      Metrics
}

// Compare evaluates both segmenters over the corpus. Per-transcript results
// are sorted by descending heuristic weighted score; aggregates are computed
// from pooled counts rather than averaged per-transcript scores, so long
// transcripts weigh more.
func Compare(transcripts []*Transcript, cfg Config) Comparison {
	var cmp Comparison
	var hTP, hFP, hFN int
	var bTP, bFP, bFN int

	for _, tr := range transcripts {
		h := EvaluateTranscript(tr, cfg)
		b := EvaluateBaseline(tr, cfg)

		cmp.PerTranscript = append(cmp.PerTranscript, TranscriptResult{
			ID:        tr.ID,
			Heuristic: h,
			Baseline:  b,
		})

		hTP += h.TruePositives
		hFP += h.FalsePositives
		hFN += h.FalseNegatives
		bTP += b.TruePositives
		bFP += b.FalsePositives
		bFN += b.FalseNegatives
	}

	sort.Slice(cmp.PerTranscript, func(i, j int) bool {
		return cmp.PerTranscript[i].Heuristic.WeightedScore > cmp.PerTranscript[j].Heuristic.WeightedScore
	})

	cmp.Heuristic = computeMetrics(hTP, hFP, hFN, cfg)
	cmp.Baseline = computeMetrics(bTP, bFP, bFN, cfg)
	return cmp
}
