// Command kokoro-split segments text into sentences, either in one shot or
// incrementally from a stream.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/xenova/kokoro"
)

var (
	stream  bool
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "kokoro-split [text...]",
	Short: "Split text into sentences",
	Long: `kokoro-split detects sentence boundaries with streaming-safe heuristics.

Text is taken from the arguments, or from stdin when none are given. Each
detected sentence is printed on its own line. With --stream, stdin is
consumed one rune at a time and sentences are printed as soon as they are
recognized, which is the mode used in front of incremental consumers such
as TTS pipelines.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		out := cmd.OutOrStdout()

		if stream {
			if len(args) > 0 {
				return fmt.Errorf("--stream reads stdin, no arguments allowed")
			}
			return runStream(cmd.InOrStdin(), out)
		}

		text := strings.Join(args, " ")
		if text == "" {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return fmt.Errorf("read stdin: %w", err)
			}
			text = string(data)
		}

		for _, sentence := range kokoro.Split(text) {
			fmt.Fprintln(out, sentence)
		}
		return nil
	},
}

// runStream pushes input rune by rune so sentences appear with minimal
// latency.
func runStream(in io.Reader, out io.Writer) error {
	s := kokoro.New(func(sentence string) {
		fmt.Fprintln(out, sentence)
	})

	reader := bufio.NewReader(in)
	for {
		r, _, err := reader.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		s.Push(string(r))
	}

	s.Close()
	return nil
}

func main() {
	rootCmd.Flags().BoolVar(&stream, "stream", false, "read stdin incrementally and emit sentences as they complete")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
