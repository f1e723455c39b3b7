// Package bench provides corpus loading and scoring utilities for sentence
// boundary evaluation.
package bench

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// Header contains metadata parsed from a transcript file header.
type Header struct {
	Source  string
	Speaker string
	Title   string
}

// ParseHeader extracts metadata from the leading `# Key: value` comment
// lines. Returns the header, the body after the header, and any error.
func ParseHeader(text string) (Header, string, error) {
	var h Header
	scanner := bufio.NewScanner(strings.NewReader(text))
	var bodyStart int
	var lineEnd int

	for scanner.Scan() {
		line := scanner.Text()
		lineEnd += len(line) + 1 // +1 for newline

		if !strings.HasPrefix(line, "#") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			bodyStart = lineEnd - len(line) - 1
			break
		}

		line = strings.TrimPrefix(line, "# ")
		if value, ok := strings.CutPrefix(line, "Source:"); ok {
			h.Source = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Speaker:"); ok {
			h.Speaker = strings.TrimSpace(value)
		} else if value, ok := strings.CutPrefix(line, "Title:"); ok {
			h.Title = strings.TrimSpace(value)
		}
	}

	if err := scanner.Err(); err != nil {
		return Header{}, "", fmt.Errorf("scan header: %w", err)
	}

	if h.Source == "" {
		return Header{}, "", errors.New("missing Source in header")
	}

	body := strings.TrimSpace(text[bodyStart:])
	return h, body, nil
}

// Sentence is a ground-truth sentence with byte offsets into the body.
type Sentence struct {
	Text  string
	Start int
	End   int
}

// Abbreviations that should not end a ground-truth sentence.
var truthAbbreviations = regexp.MustCompile(`(?i)\b(Mr|Mrs|Ms|Dr|Prof|Sr|Jr|vs|etc|i\.e|e\.g|U\.S|U\.K)\.$`)

// ParseSentences derives ground-truth sentences from annotated corpus text:
// a terminator followed by a space or newline ends a sentence unless the
// preceding word is a known abbreviation.
func ParseSentences(text string) []Sentence {
	if text == "" {
		return nil
	}

	var sentences []Sentence
	start := 0

	for i := 0; i < len(text); i++ {
		ch := text[i]
		if ch != '.' && ch != '?' && ch != '!' {
			continue
		}
		isEnd := i == len(text)-1 || text[i+1] == ' ' || text[i+1] == '\n'
		if !isEnd {
			continue
		}

		candidate := text[start : i+1]
		if ch == '.' && truthAbbreviations.MatchString(candidate) {
			continue
		}

		end := i + 1
		sentences = append(sentences, Sentence{
			Text:  strings.TrimSpace(text[start:end]),
			Start: start,
			End:   end,
		})

		for i+1 < len(text) && (text[i+1] == ' ' || text[i+1] == '\n') {
			i++
		}
		start = i + 1
	}

	if start < len(text) {
		remaining := strings.TrimSpace(text[start:])
		if remaining != "" {
			sentences = append(sentences, Sentence{
				Text:  remaining,
				Start: start,
				End:   len(text),
			})
		}
	}

	return sentences
}

// Transcript is a loaded corpus document with ground-truth sentences.
type Transcript struct {
	ID        string // filename without extension
	Source    string
	Speaker   string
	Title     string
	RawText   string // body text
	Sentences []Sentence
}

// Boundaries returns the ground-truth boundary offsets of the transcript.
func (tr *Transcript) Boundaries() []int {
	bounds := make([]int, len(tr.Sentences))
	for i, s := range tr.Sentences {
		bounds[i] = s.End
	}
	return bounds
}

// LoadTranscript loads and parses one transcript file.
func LoadTranscript(path string) (*Transcript, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	header, body, err := ParseHeader(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse header: %w", err)
	}

	base := filepath.Base(path)
	id := strings.TrimSuffix(base, filepath.Ext(base))

	return &Transcript{
		ID:        id,
		Source:    header.Source,
		Speaker:   header.Speaker,
		Title:     header.Title,
		RawText:   body,
		Sentences: ParseSentences(body),
	}, nil
}

// LoadCorpus loads all .txt transcript files from a directory.
func LoadCorpus(dir string) ([]*Transcript, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir: %w", err)
	}

	var transcripts []*Transcript
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".txt" {
			continue
		}

		tr, err := LoadTranscript(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", entry.Name(), err)
		}
		transcripts = append(transcripts, tr)
	}

	return transcripts, nil
}
