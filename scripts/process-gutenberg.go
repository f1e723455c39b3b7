//go:build ignore

// Process raw Project Gutenberg downloads into transcript corpus format.
// Usage: go run ./scripts/process-gutenberg.go
package main

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Book metadata
var books = map[string]struct {
	Title  string
	Author string
	Year   string
}{
	"pride_and_prejudice": {"Pride and Prejudice", "Jane Austen", "1813"},
	"moby_dick":           {"Moby Dick", "Herman Melville", "1851"},
	"great_expectations":  {"Great Expectations", "Charles Dickens", "1861"},
	"origin_of_species":   {"On the Origin of Species", "Charles Darwin", "1859"},
	"tom_sawyer":          {"The Adventures of Tom Sawyer", "Mark Twain", "1876"},
	"jane_eyre":           {"Jane Eyre", "Charlotte Brontë", "1847"},
}

func main() {
	inDir := "testdata/gutenberg"
	outDir := "testdata/transcripts"

	files, err := filepath.Glob(filepath.Join(inDir, "*_raw.txt"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error finding files: %v\n", err)
		os.Exit(1)
	}

	if len(files) == 0 {
		fmt.Println("No raw files found. Run ./scripts/fetch-gutenberg.sh first.")
		os.Exit(1)
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating %s: %v\n", outDir, err)
		os.Exit(1)
	}

	for _, rawFile := range files {
		baseName := strings.TrimSuffix(filepath.Base(rawFile), "_raw.txt")
		outFile := filepath.Join(outDir, baseName+".txt")

		meta, ok := books[baseName]
		if !ok {
			fmt.Printf("Skipping unknown book: %s\n", baseName)
			continue
		}

		fmt.Printf("Processing %s...\n", baseName)
		if err := processBook(rawFile, outFile, meta.Title, meta.Author, meta.Year); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", baseName, err)
			continue
		}
		fmt.Printf("  -> %s\n", outFile)
	}

	fmt.Printf("\nDone! Corpus files created in %s/\n", outDir)
}

func processBook(inPath, outPath, title, author, year string) error {
	content, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	text := string(content)

	// Find the start marker
	startPatterns := []string{
		"*** START OF THE PROJECT GUTENBERG EBOOK",
		"*** START OF THIS PROJECT GUTENBERG EBOOK",
		"*END*THE SMALL PRINT",
	}

	startIdx := -1
	for _, pattern := range startPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			endOfLine := strings.Index(text[idx:], "\n")
			if endOfLine != -1 {
				startIdx = idx + endOfLine + 1
			}
			break
		}
	}

	if startIdx == -1 {
		startIdx = 0
	}

	// Find the end marker
	endPatterns := []string{
		"*** END OF THE PROJECT GUTENBERG EBOOK",
		"*** END OF THIS PROJECT GUTENBERG EBOOK",
		"End of Project Gutenberg",
		"End of the Project Gutenberg",
	}

	endIdx := len(text)
	for _, pattern := range endPatterns {
		if idx := strings.Index(text, pattern); idx != -1 {
			endIdx = idx
			break
		}
	}

	body := cleanBody(text[startIdx:endIdx])

	// Limit to first ~50KB for reasonable benchmark size, cut at a
	// sentence boundary.
	if len(body) > 50000 {
		cutoff := 50000
		for i := cutoff; i < len(body) && i < cutoff+1000; i++ {
			if body[i] == '.' || body[i] == '!' || body[i] == '?' {
				if i+1 < len(body) && (body[i+1] == ' ' || body[i+1] == '\n') {
					body = body[:i+1]
					break
				}
			}
		}
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	fmt.Fprintf(w, "# Source: https://www.gutenberg.org/\n")
	fmt.Fprintf(w, "# Speaker: %s\n", author)
	fmt.Fprintf(w, "# Title: %s (%s)\n", title, year)
	fmt.Fprintf(w, "\n")
	w.WriteString(body)
	w.WriteString("\n")

	return w.Flush()
}

func cleanBody(text string) string {
	// Normalize line endings
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	// Skip front matter: start at the first chapter marker when one exists.
	chapterRe := regexp.MustCompile(`(?m)^(Chapter|CHAPTER)\s+([IVX]+|[0-9]+)[\.\]\s]`)
	if loc := chapterRe.FindStringIndex(text); loc != nil {
		text = text[loc[0]:]
	}

	// Collapse hard-wrapped lines inside paragraphs so that newlines only
	// separate paragraphs.
	paragraphs := strings.Split(text, "\n\n")
	for i, p := range paragraphs {
		p = strings.TrimSpace(p)
		p = strings.ReplaceAll(p, "\n", " ")
		paragraphs[i] = regexp.MustCompile(`\s+`).ReplaceAllString(p, " ")
	}

	var kept []string
	for _, p := range paragraphs {
		if p != "" {
			kept = append(kept, p)
		}
	}

	return strings.Join(kept, "\n")
}
