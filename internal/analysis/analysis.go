// Package analysis orchestrates the scoring pipeline for single reviews and
// batches, and exposes the comparison, feature-extraction, and distribution
// operations consumed by the CLI and the HTTP API.
//
// Each review is analyzed by the lexicon scorer and the subword classifier
// independently over the same input; the preprocessing profile is produced
// only when the caller opts in. Batch analysis fans out across a worker pool
// because every review is processed independently, and results are returned
// in input order regardless of completion order.
package analysis

import (
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/revlens/revlens/internal/classifier"
	"github.com/revlens/revlens/internal/lexicon"
	"github.com/revlens/revlens/internal/preprocess"
	"github.com/revlens/revlens/internal/stats"
	"github.com/revlens/revlens/internal/tokenize"
)

// Result bundles the per-review outputs of the independent analyzers.
// Preprocessed is nil unless preprocessing was requested.
type Result struct {
	Text         string              `json:"text"`
	Lexicon      lexicon.Result      `json:"lexicon"`
	Classifier   classifier.Output   `json:"classifier"`
	Preprocessed *preprocess.Profile `json:"preprocessed,omitempty"`
}

// BatchResult is the order-preserving outcome of analyzing many reviews, with
// an aggregate summary over the whole batch.
type BatchResult struct {
	Results []Result               `json:"results"`
	Summary stats.DashboardMetrics `json:"summary"`
}

// Comparison is the outcome of analyzing two texts side by side.
type Comparison struct {
	ResultA         Result  `json:"result_a"`
	ResultB         Result  `json:"result_b"`
	ScoreDifference float64 `json:"score_difference"`
	WordSimilarity  float64 `json:"word_similarity"`
}

// Distribution tallies lexicon labels over a collection of texts.
type Distribution struct {
	Total              int     `json:"total"`
	PositiveCount      int     `json:"positive_count"`
	NegativeCount      int     `json:"negative_count"`
	NeutralCount       int     `json:"neutral_count"`
	PositivePercentage float64 `json:"positive_percentage"`
	NegativePercentage float64 `json:"negative_percentage"`
	NeutralPercentage  float64 `json:"neutral_percentage"`
}

// Single analyzes one review. The lexicon scorer and classifier always run;
// the preprocessing profile is computed only when includePreprocessing is set.
func Single(text string, includePreprocessing bool) Result {
	result := Result{
		Text:       text,
		Lexicon:    lexicon.Score(text),
		Classifier: classifier.Classify(text),
	}
	if includePreprocessing {
		profile := preprocess.Preprocess(text)
		result.Preprocessed = &profile
	}
	return result
}

// Batch analyzes texts with a pool of workers and aggregates the results.
// Output order matches input order. workers <= 0 selects one worker per CPU;
// the pool never exceeds the number of texts.
func Batch(texts []string, includePreprocessing bool, workers int) BatchResult {
	results := make([]Result, len(texts))
	if len(texts) == 0 {
		return BatchResult{Results: results, Summary: stats.Aggregate(nil)}
	}

	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(texts) {
		workers = len(texts)
	}

	slog.Debug("analyzing batch", "texts", len(texts), "workers", workers)

	indices := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				results[i] = Single(texts[i], includePreprocessing)
			}
		}()
	}
	for i := range texts {
		indices <- i
	}
	close(indices)
	wg.Wait()

	now := time.Now().UTC()
	records := make([]stats.ReviewRecord, len(results))
	for i, r := range results {
		records[i] = Record(r, now)
	}

	return BatchResult{Results: results, Summary: stats.Aggregate(records)}
}

// Record converts one analysis result into the aggregation input form,
// stamped with the given time.
func Record(r Result, at time.Time) stats.ReviewRecord {
	return stats.ReviewRecord{
		Label:          string(r.Lexicon.Label),
		Score:          float64(r.Lexicon.TotalScore),
		Confidence:     r.Classifier.Confidence,
		PositiveTokens: r.Lexicon.PositiveTokens,
		NegativeTokens: r.Lexicon.NegativeTokens,
		AllTokens:      tokenize.Words(r.Text),
		Timestamp:      at.Format(time.RFC3339),
	}
}

// Compare analyzes two texts and reports the score difference (A minus B)
// and the Jaccard similarity of their lower-cased word sets.
func Compare(textA, textB string) Comparison {
	a := Single(textA, false)
	b := Single(textB, false)

	return Comparison{
		ResultA:         a,
		ResultB:         b,
		ScoreDifference: float64(a.Lexicon.TotalScore - b.Lexicon.TotalScore),
		WordSimilarity:  jaccard(textA, textB),
	}
}

// jaccard computes |intersection| / |union| over lower-cased whitespace-split
// word sets, defined as 0 when the union is empty.
func jaccard(textA, textB string) float64 {
	setA := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(textA)) {
		setA[w] = struct{}{}
	}
	setB := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(textB)) {
		setB[w] = struct{}{}
	}

	union := len(setB)
	intersection := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			intersection++
		} else {
			union++
		}
	}

	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

// ExtractFeatures runs only the preprocessing pipeline, with no classifier or
// lexicon call.
func ExtractFeatures(text string) preprocess.Profile {
	return preprocess.Preprocess(text)
}

// Distribute scores each text with the lexicon scorer and tallies labels.
func Distribute(texts []string) Distribution {
	d := Distribution{Total: len(texts)}
	for _, text := range texts {
		switch lexicon.Score(text).Label {
		case lexicon.LabelPositive:
			d.PositiveCount++
		case lexicon.LabelNegative:
			d.NegativeCount++
		default:
			d.NeutralCount++
		}
	}

	if d.Total > 0 {
		total := float64(d.Total)
		d.PositivePercentage = float64(d.PositiveCount) / total * 100
		d.NegativePercentage = float64(d.NegativeCount) / total * 100
		d.NeutralPercentage = float64(d.NeutralCount) / total * 100
	}

	return d
}
