package kokoro

import (
	"log/slog"
	"regexp"
	"strings"
	"unicode"
)

// Splitter detects sentence boundaries incrementally. Text arrives via Push
// in arbitrary chunks; each finalized sentence is delivered to the callback
// exactly once, trimmed, in original order. Close flushes the remainder.
//
// The splitter holds all text that has not yet been finalized and re-scans
// it from the flush point after every chunk, so emission decisions never
// depend on where chunk boundaries happened to fall.
type Splitter struct {
	onSentence func(string)
	logger     *slog.Logger

	// buf holds received but not yet finalized text, as code points.
	// Finalized sentences are dropped from the front after each scan.
	buf    []rune
	closed bool
}

// New creates a Splitter that invokes onSentence once per finalized,
// trimmed, non-empty sentence. A nil callback discards sentences.
func New(onSentence func(string), opts ...Option) *Splitter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Splitter{
		onSentence: onSentence,
		logger:     cfg.logger,
	}
}

// Push appends each chunk to the buffer in order and re-runs the boundary
// scan after every chunk. Completed sentences are delivered synchronously,
// left to right, before Push returns. Pushing "ab" then "cd" emits exactly
// what pushing "abcd" would.
func (s *Splitter) Push(chunks ...string) {
	if s.closed {
		s.logger.Debug("kokoro: push after close ignored")
		return
	}
	for _, chunk := range chunks {
		if chunk == "" {
			continue
		}
		s.buf = append(s.buf, []rune(chunk)...)
		s.scan()
	}
}

// Close flushes whatever remains in the buffer as a final sentence, if
// non-empty after trimming, and clears all state. Close is safe to call
// more than once; calls after the first do nothing. Push after Close is
// ignored.
func (s *Splitter) Close() {
	if s.closed {
		return
	}
	s.closed = true
	rest := strings.TrimSpace(string(s.buf))
	s.buf = nil
	if rest != "" {
		s.emit(rest)
	}
}

// Split splits text into trimmed sentences: the batch composition of New,
// a single Push, and Close.
func Split(text string) []string {
	var out []string
	s := New(func(sentence string) {
		out = append(out, sentence)
	})
	s.Push(text)
	s.Close()
	return out
}

func (s *Splitter) emit(sentence string) {
	if s.onSentence != nil {
		s.onSentence(sentence)
	}
}

// initialsPattern matches a run of single letters each followed by a
// period, as in "J.R.R.".
var initialsPattern = regexp.MustCompile(`^(?:[A-Za-z]\.)+$`)

// urlMarkers are scheme prefixes that mark a token as a URL. The comma
// variants tolerate the common comma-for-colon typo.
var urlMarkers = []string{"http://", "https://", "http,//", "https,//"}

// scan walks the unprocessed buffer from the flush point, rebuilding the
// nesting stack as it goes, and emits every sentence whose boundary can be
// proven with the lookahead available so far. Text before the flush point
// is dropped from the buffer when the scan stalls.
func (s *Splitter) scan() {
	var stack []rune
	start := 0 // flush index: start of the sentence being assembled

	i := 0
	for i < len(s.buf) {
		r := s.buf[i]

		// Nesting stack update. While the stack is non-empty the scan is
		// inside a quoted or parenthetical span and no position qualifies
		// as a boundary.
		if r == '"' || r == '\'' {
			if r == '\'' && s.flankedByLetters(i) {
				// In-word apostrophe, as in a contraction.
			} else if n := len(stack); n > 0 && stack[n-1] == r {
				stack = stack[:n-1]
			} else {
				stack = append(stack, r)
			}
			i++
			continue
		}
		if openers[r] {
			stack = append(stack, r)
			i++
			continue
		}
		if opener, ok := closerToOpener[r]; ok {
			if r == '’' && s.flankedByLetters(i) {
				// Curly apostrophe inside a word.
			} else if n := len(stack); n > 0 && stack[n-1] == opener {
				stack = stack[:n-1]
			}
			// A mismatched closer is left unresolved.
			i++
			continue
		}

		if len(stack) != 0 || !terminators[r] {
			i++
			continue
		}

		// Candidate boundary at i: terminator with an empty stack.

		// A bare digit run since the start of the line or buffer is a
		// numbered-list marker, not a sentence end.
		if isListMarker(s.buf[start:i]) {
			i++
			continue
		}

		// Consume the full terminator run (?!, !!!, 。。) and any trailing
		// closers that stick to it (."), extending the boundary.
		end := i + 1
		for end < len(s.buf) && terminators[s.buf[end]] {
			end++
		}
		for end < len(s.buf) && trailingChars[s.buf[end]] {
			end++
		}

		// Look ahead to the next non-whitespace character.
		next := end
		for next < len(s.buf) && unicode.IsSpace(s.buf[next]) {
			next++
		}
		if next == len(s.buf) {
			// Not enough lookahead to decide; wait for more input.
			break
		}
		if next == end && !containsNewline(s.buf[i:end]) {
			// Terminator glued to the next character, as in $9.99 or
			// U.S.A. mid-token. A newline inside the run is itself the
			// gap, so "x.\ny" still splits.
			i++
			continue
		}

		// The token around the terminator: back to the previous
		// whitespace, forward across the consumed run.
		tokStart := i
		for tokStart > start && !unicode.IsSpace(s.buf[tokStart-1]) {
			tokStart--
		}
		tokEnd := i + 1
		for tokEnd < end && !unicode.IsSpace(s.buf[tokEnd]) {
			tokEnd++
		}
		token := string(s.buf[tokStart:tokEnd])

		// A terminator inside a URL or email address belongs to the
		// token; skip the token as a whole.
		if insideURLOrEmail(token) {
			j := i + 1
			for j < len(s.buf) && !unicode.IsSpace(s.buf[j]) {
				j++
			}
			i = j
			continue
		}

		if isAbbreviation(token) {
			i++
			continue
		}

		// Initials such as "J.R.R." followed by a capitalized name.
		if initialsPattern.MatchString(token) && unicode.IsUpper(s.buf[next]) {
			i++
			continue
		}

		// A period followed by a lowercase continuation is an in-sentence
		// abbreviation or decimal, not a boundary.
		if r == '.' && unicode.IsLower(s.buf[next]) {
			i++
			continue
		}

		sentence := strings.TrimSpace(string(s.buf[start:end]))

		// A bare ellipsis never stands alone; merge it into the sentence
		// that follows.
		if sentence == "..." || sentence == "…" {
			i++
			continue
		}

		if sentence != "" {
			s.emit(sentence)
		}
		start = end
		i = end
	}

	if start > 0 {
		s.buf = append([]rune(nil), s.buf[start:]...)
	}
}

// flankedByLetters reports whether the rune at i sits directly between two
// letters, as the apostrophe in "don't" does.
func (s *Splitter) flankedByLetters(i int) bool {
	return i > 0 && i+1 < len(s.buf) &&
		unicode.IsLetter(s.buf[i-1]) && unicode.IsLetter(s.buf[i+1])
}

// isListMarker reports whether the text before a candidate terminator is a
// bare digit run starting the buffer or a line, i.e. "12" in "12. item".
func isListMarker(prefix []rune) bool {
	j := len(prefix)
	for j > 0 && prefix[j-1] != '\n' {
		j--
	}
	digits := prefix[j:]
	if len(digits) == 0 {
		return false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func containsNewline(runs []rune) bool {
	for _, r := range runs {
		if r == '\n' {
			return true
		}
	}
	return false
}

// insideURLOrEmail reports whether token carries a URL scheme marker or an
// email-style @ while not ending in a terminator, meaning the candidate
// terminator is internal to the token (mid-domain) rather than closing it.
func insideURLOrEmail(token string) bool {
	rs := []rune(token)
	if len(rs) == 0 || terminators[rs[len(rs)-1]] {
		return false
	}
	if strings.Contains(token, "@") {
		return true
	}
	for _, marker := range urlMarkers {
		if strings.Contains(token, marker) {
			return true
		}
	}
	return false
}

// isAbbreviation reports whether token, minus a possessive suffix and any
// trailing periods, is a known non-terminal abbreviation.
func isAbbreviation(token string) bool {
	t := strings.ToLower(token)
	t = strings.TrimSuffix(t, "'s")
	t = strings.TrimSuffix(t, "’s")
	t = strings.TrimRight(t, ".")
	return abbreviations[t]
}
