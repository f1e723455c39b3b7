package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/xenova/kokoro/internal/bench"
)

func main() {
	var (
		corpusDir = flag.String("corpus", "testdata/transcripts", "Directory containing transcript files")
		tolerance = flag.Int("tolerance", 3, "Character tolerance for boundary matching")
		wp        = flag.Float64("wp", 1.0, "Precision weight")
		wr        = flag.Float64("wr", 1.0, "Recall weight")
		baseline  = flag.Bool("baseline", false, "Also evaluate the UAX #29 segmenter side by side")
		perFile   = flag.Bool("per-file", false, "Print per-transcript results")
	)
	flag.Parse()

	transcripts, err := bench.LoadCorpus(*corpusDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading corpus: %v\n", err)
		os.Exit(1)
	}
	if len(transcripts) == 0 {
		fmt.Fprintf(os.Stderr, "no transcripts found in %s\n", *corpusDir)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d transcripts from %s\n\n", len(transcripts), *corpusDir)

	cfg := bench.Config{
		Tolerance:       *tolerance,
		PrecisionWeight: *wp,
		RecallWeight:    *wr,
	}

	cmp := bench.Compare(transcripts, cfg)

	if *perFile {
		fmt.Printf("Per-Transcript Results (wp=%.1f, wr=%.1f)\n", *wp, *wr)
		fmt.Println(strings.Repeat("-", 60))
		fmt.Printf("%-24s %-8s %-8s %-8s %-8s\n", "Transcript", "Prec", "Rec", "F1", "Weighted")
		for _, r := range cmp.PerTranscript {
			fmt.Printf("%-24s %-8.2f %-8.2f %-8.2f %-8.2f\n",
				r.ID, r.Heuristic.Precision, r.Heuristic.Recall, r.Heuristic.F1, r.Heuristic.WeightedScore)
		}
		fmt.Println(strings.Repeat("-", 60))
	}

	fmt.Println("Heuristic splitter:")
	printMetrics(cmp.Heuristic)

	if *baseline {
		fmt.Println("\nUAX #29 baseline:")
		printMetrics(cmp.Baseline)
	}
}

func printMetrics(m bench.Metrics) {
	fmt.Printf("Precision: %.2f  Recall: %.2f  F1: %.2f  Weighted: %.2f\n",
		m.Precision, m.Recall, m.F1, m.WeightedScore)
	fmt.Printf("(TP: %d, FP: %d, FN: %d)\n",
		m.TruePositives, m.FalsePositives, m.FalseNegatives)
}
