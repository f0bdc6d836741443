package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/revlens/revlens/internal/analysis"
	"github.com/revlens/revlens/internal/config"
	"github.com/revlens/revlens/internal/server"
	"github.com/revlens/revlens/internal/spinner"
)

// setupLogger configures the default slog logger based on debug mode
func setupLogger(debug bool) {
	level := slog.LevelError
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))
}

// readInput returns the text to analyze: joined positional arguments, or
// stdin when none are given.
func readInput(args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}

// readLines splits batch input into one review per non-blank line.
func readLines(args []string) ([]string, error) {
	raw, err := readInput(args)
	if err != nil {
		return nil, err
	}
	var lines []string
	for _, line := range strings.Split(raw, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}

func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

func printResult(r analysis.Result) {
	fmt.Printf("Text:       %s\n", r.Text)
	fmt.Printf("Label:      %s (score %d, comparative %.3f, confidence %.1f%%)\n",
		r.Lexicon.Label, r.Lexicon.TotalScore, r.Lexicon.ComparativeScore, r.Lexicon.Confidence)
	fmt.Printf("Classifier: %s (%.1f%% | pos %.3f, neg %.3f, neu %.3f)\n",
		r.Classifier.PredictedClass, r.Classifier.Confidence,
		r.Classifier.PositiveProb, r.Classifier.NegativeProb, r.Classifier.NeutralProb)
	if len(r.Lexicon.PositiveTokens) > 0 {
		fmt.Printf("Positive:   %s\n", strings.Join(r.Lexicon.PositiveTokens, ", "))
	}
	if len(r.Lexicon.NegativeTokens) > 0 {
		fmt.Printf("Negative:   %s\n", strings.Join(r.Lexicon.NegativeTokens, ", "))
	}
	if r.Preprocessed != nil {
		m := r.Preprocessed.Metadata
		fmt.Printf("Profile:    readability %.1f, intensity %.1f, subjectivity %.1f\n",
			m.ReadabilityScore, m.EmotionalIntensity, m.Subjectivity)
	}
}

func printBatch(b analysis.BatchResult) {
	for i, r := range b.Results {
		fmt.Printf("[%d] %-8s score %3d  %s\n", i+1, r.Lexicon.Label, r.Lexicon.TotalScore, truncate(r.Text, 60))
	}
	s := b.Summary
	fmt.Printf("\n%d reviews: %d positive (%.1f%%), %d negative (%.1f%%), %d neutral (%.1f%%)\n",
		s.TotalReviews,
		s.PositiveCount, s.PositivePercentage,
		s.NegativeCount, s.NegativePercentage,
		s.NeutralCount, s.NeutralPercentage)
	fmt.Printf("mean %.2f, median %.2f, std dev %.2f\n", s.AverageScore, s.MedianScore, s.StdDeviation)
	for _, insight := range s.Insights {
		fmt.Printf("- %s\n", insight)
	}
}

func truncate(s string, n int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= n {
		return string(runes)
	}
	return string(runes[:n-1]) + "…"
}

var rootCmd = &cobra.Command{
	Use:   "revlens [text...]",
	Short: "Sentiment analysis for product reviews",
	Long: `Revlens scores product-review text with a lexicon-based analyzer and a
heuristic subword classifier, and aggregates batches into dashboard metrics.

Examples:
  revlens "This product is amazing!"
  cat reviews.txt | revlens --batch
  revlens compare "I love it" "I hate it"
  revlens serve --addr :8080`,
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		batch, _ := cmd.Flags().GetBool("batch")
		features, _ := cmd.Flags().GetBool("features")
		jsonOut, _ := cmd.Flags().GetBool("json")
		quiet, _ := cmd.Flags().GetBool("quiet")
		workers, _ := cmd.Flags().GetInt("workers")

		if batch {
			texts, err := readLines(args)
			if err != nil {
				return err
			}

			var sp *spinner.Spinner
			if !quiet && term.IsTerminal(int(os.Stderr.Fd())) {
				sp = spinner.New(os.Stderr, "analyzing...")
				sp.Start()
				sp.SetMessage(fmt.Sprintf("analyzing %d reviews...", len(texts)))
			}
			result := analysis.Batch(texts, features, workers)
			if sp != nil {
				sp.Stop()
			}

			if jsonOut {
				return printJSON(result)
			}
			printBatch(result)
			return nil
		}

		text, err := readInput(args)
		if err != nil {
			return err
		}
		result := analysis.Single(text, features)
		if jsonOut {
			return printJSON(result)
		}
		printResult(result)
		return nil
	},
}

var compareCmd = &cobra.Command{
	Use:   "compare TEXT_A TEXT_B",
	Short: "Compare the sentiment of two texts",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		result := analysis.Compare(args[0], args[1])

		jsonOut, _ := cmd.Flags().GetBool("json")
		if jsonOut {
			return printJSON(result)
		}

		fmt.Println("--- A ---")
		printResult(result.ResultA)
		fmt.Println("--- B ---")
		printResult(result.ResultB)
		fmt.Printf("\nScore difference (A-B): %.1f\n", result.ScoreDifference)
		fmt.Printf("Word similarity:        %.3f\n", result.WordSimilarity)
		return nil
	},
}

var featuresCmd = &cobra.Command{
	Use:   "features [text...]",
	Short: "Extract the linguistic profile of a text without classifying it",
	RunE: func(cmd *cobra.Command, args []string) error {
		debug, _ := cmd.Flags().GetBool("debug")
		setupLogger(debug)

		text, err := readInput(args)
		if err != nil {
			return err
		}
		return printJSON(analysis.ExtractFeatures(text))
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the analysis HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// colored, human-oriented logs for the long-running server
		slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
			Level:      slog.LevelInfo,
			TimeFormat: time.Kitchen,
		})))

		configPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return server.New(cfg).ListenAndServe(ctx)
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")

	rootCmd.Flags().BoolP("batch", "b", false, "Treat each non-blank input line as one review")
	rootCmd.Flags().BoolP("features", "f", false, "Include the preprocessing profile in results")
	rootCmd.Flags().BoolP("quiet", "q", false, "Suppress progress output")
	rootCmd.Flags().IntP("workers", "w", 0, "Batch worker count (default: one per CPU)")

	serveCmd.Flags().String("addr", "", "Listen address (overrides configuration)")
	serveCmd.Flags().String("config", "", "Path to a YAML configuration file")

	rootCmd.AddCommand(compareCmd, featuresCmd, serveCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
