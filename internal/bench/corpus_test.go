package bench

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseHeader(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		want     Header
		wantBody string
		wantErr  bool
	}{
		{
			name: "valid header",
			input: `# Source: https://example.com/talk
# Speaker: John Doe
# Title: My Talk

Hello world.`,
			want: Header{
				Source:  "https://example.com/talk",
				Speaker: "John Doe",
				Title:   "My Talk",
			},
			wantBody: "Hello world.",
		},
		{
			name: "missing source",
			input: `# Speaker: John Doe
# Title: My Talk

Hello.`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, body, err := ParseHeader(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseHeader() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("ParseHeader() header = %+v, want %+v", got, tt.want)
			}
			if body != tt.wantBody {
				t.Errorf("ParseHeader() body = %q, want %q", body, tt.wantBody)
			}
		})
	}
}

func TestParseSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Sentence
	}{
		{
			name:  "simple sentences",
			input: "Hello world. How are you?",
			want: []Sentence{
				{Text: "Hello world.", Start: 0, End: 12},
				{Text: "How are you?", Start: 13, End: 25},
			},
		},
		{
			name:  "exclamation",
			input: "Wow! That's great.",
			want: []Sentence{
				{Text: "Wow!", Start: 0, End: 4},
				{Text: "That's great.", Start: 5, End: 18},
			},
		},
		{
			name:  "abbreviation Dr.",
			input: "Dr. Jones called. She left a message.",
			want: []Sentence{
				{Text: "Dr. Jones called.", Start: 0, End: 17},
				{Text: "She left a message.", Start: 18, End: 37},
			},
		},
		{
			name:  "trailing fragment",
			input: "Complete sentence. And a dangling tail",
			want: []Sentence{
				{Text: "Complete sentence.", Start: 0, End: 18},
				{Text: "And a dangling tail", Start: 19, End: 38},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseSentences(tt.input)
			if len(got) != len(tt.want) {
				t.Errorf("ParseSentences() got %d sentences, want %d", len(got), len(tt.want))
				for i, s := range got {
					t.Logf("  got[%d]: %+v", i, s)
				}
				return
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("sentence[%d] = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLoadTranscript(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test_transcript.txt")
	content := `# Source: https://example.com
# Speaker: Test Speaker
# Title: Test Title

Hello world. How are you?`

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	tr, err := LoadTranscript(path)
	if err != nil {
		t.Fatalf("LoadTranscript() error = %v", err)
	}

	if tr.ID != "test_transcript" {
		t.Errorf("ID = %q, want %q", tr.ID, "test_transcript")
	}
	if tr.Speaker != "Test Speaker" {
		t.Errorf("Speaker = %q, want %q", tr.Speaker, "Test Speaker")
	}
	if len(tr.Sentences) != 2 {
		t.Errorf("got %d sentences, want 2", len(tr.Sentences))
	}

	bounds := tr.Boundaries()
	if len(bounds) != 2 || bounds[0] != 12 || bounds[1] != 25 {
		t.Errorf("Boundaries() = %v, want [12 25]", bounds)
	}
}

func TestLoadCorpus(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"talk1.txt", "talk2.txt"} {
		content := `# Source: https://example.com
# Speaker: Speaker
# Title: Title

Hello.`
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
	}

	// Non-txt files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "README.md"), []byte("# Readme"), 0644); err != nil {
		t.Fatal(err)
	}

	transcripts, err := LoadCorpus(dir)
	if err != nil {
		t.Fatalf("LoadCorpus() error = %v", err)
	}

	if len(transcripts) != 2 {
		t.Errorf("got %d transcripts, want 2", len(transcripts))
	}
}
