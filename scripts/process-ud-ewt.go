//go:build ignore

// Process UD English Web Treebank CoNLL-U files into transcript corpus
// format, one file per split, with gold sentences joined one per line.
// Usage: go run ./scripts/process-ud-ewt.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

func main() {
	inDir := "testdata/ud-ewt"
	outDir := "testdata/transcripts"

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	for _, split := range []string{"train", "dev", "test"} {
		inFile := filepath.Join(inDir, fmt.Sprintf("en_ewt-ud-%s.conllu", split))
		outFile := filepath.Join(outDir, fmt.Sprintf("ud-ewt-%s.txt", split))

		fmt.Printf("Processing %s...\n", split)
		sentences, err := extractSentences(inFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inFile, err)
			continue
		}

		if err := writeTranscript(outFile, split, sentences); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", outFile, err)
			continue
		}

		fmt.Printf("  -> %s (%d sentences)\n", outFile, len(sentences))
	}

	fmt.Printf("\nDone! Corpus files created in %s/\n", outDir)
}

// extractSentences pulls the `# text = ...` metadata lines out of a CoNLL-U
// file, one per gold sentence.
func extractSentences(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	var sentences []string

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if text, ok := strings.CutPrefix(line, "# text = "); ok {
			text = strings.TrimSpace(text)
			if text != "" {
				sentences = append(sentences, text)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning file: %w", err)
	}

	return sentences, nil
}

func writeTranscript(path, split string, sentences []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "# Source: https://github.com/UniversalDependencies/UD_English-EWT\n")
	fmt.Fprintf(w, "# Speaker: English Web Treebank\n")
	fmt.Fprintf(w, "# Title: UD-EWT %s split\n", split)
	fmt.Fprintf(w, "\n")

	for _, sent := range sentences {
		w.WriteString(sent)
		w.WriteString("\n")
	}

	return w.Flush()
}
