// Package stats aggregates per-review analysis results into dashboard metrics.
//
// The engine consumes a caller-owned slice of review records (label, score,
// confidence, matched token lists, timestamp) and computes label counts and
// percentages, central-tendency statistics, top word frequencies, a word
// cloud, a day-granularity trend series, a score histogram, and a textual
// insight summary. Every call recomputes a fresh snapshot from its inputs;
// nothing is cached or mutated in place, and an empty collection yields
// all-zero metrics rather than an error.
package stats

import (
	"fmt"
	"log/slog"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// defaults for the derived chart collections
const (
	DefaultTopWords      = 10
	DefaultCloudWords    = 20
	DefaultHistogramBins = 10
)

// ReviewRecord is the unit of aggregation, assembled by the caller from one
// review's analysis results. Records are immutable once built; the engine
// never retains them between calls.
type ReviewRecord struct {
	Label          string   `json:"label"`
	Score          float64  `json:"score"`
	Confidence     float64  `json:"confidence"`
	PositiveTokens []string `json:"positive_tokens"`
	NegativeTokens []string `json:"negative_tokens"`
	AllTokens      []string `json:"all_tokens"`
	Timestamp      string   `json:"timestamp"` // ISO 8601
}

// WordCount is one entry of a word-frequency ranking.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// CloudWord is a word-cloud entry: a frequent token annotated with the label
// of the record it most recently appeared in.
type CloudWord struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

// TrendPoint summarizes one day of records.
type TrendPoint struct {
	Date          string  `json:"date"`
	PositiveCount int     `json:"positive_count"`
	NegativeCount int     `json:"negative_count"`
	NeutralCount  int     `json:"neutral_count"`
	AverageScore  float64 `json:"average_score"`
}

// HistogramBin is one equal-width score bin. Bounds are inclusive on both
// ends, so a score landing exactly on a shared boundary is counted in both
// adjoining bins; this mirrors the original dashboard's binning and is kept
// deliberately.
type HistogramBin struct {
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
	Count int     `json:"count"`
}

// DashboardMetrics is a fresh snapshot of every aggregate the dashboard
// consumes.
type DashboardMetrics struct {
	TotalReviews       int            `json:"total_reviews"`
	PositiveCount      int            `json:"positive_count"`
	NegativeCount      int            `json:"negative_count"`
	NeutralCount       int            `json:"neutral_count"`
	PositivePercentage float64        `json:"positive_percentage"`
	NegativePercentage float64        `json:"negative_percentage"`
	NeutralPercentage  float64        `json:"neutral_percentage"`
	AverageScore       float64        `json:"average_score"`
	MedianScore        float64        `json:"median_score"`
	StdDeviation       float64        `json:"std_deviation"`
	AverageConfidence  float64        `json:"average_confidence"`
	TopPositiveWords   []WordCount    `json:"top_positive_words"`
	TopNegativeWords   []WordCount    `json:"top_negative_words"`
	WordCloud          []CloudWord    `json:"word_cloud"`
	Trend              []TrendPoint   `json:"trend"`
	Histogram          []HistogramBin `json:"histogram"`
	Insights           []string       `json:"insights"`
}

// Options bounds the derived collections; zero values select the defaults.
type Options struct {
	TopWords      int
	CloudWords    int
	HistogramBins int
}

func (o Options) withDefaults() Options {
	if o.TopWords <= 0 {
		o.TopWords = DefaultTopWords
	}
	if o.CloudWords <= 0 {
		o.CloudWords = DefaultCloudWords
	}
	if o.HistogramBins <= 0 {
		o.HistogramBins = DefaultHistogramBins
	}
	return o
}

// Aggregate computes a DashboardMetrics snapshot over records with default
// options.
func Aggregate(records []ReviewRecord) DashboardMetrics {
	return AggregateWith(records, Options{})
}

// AggregateWith computes a DashboardMetrics snapshot over records.
func AggregateWith(records []ReviewRecord, opts Options) DashboardMetrics {
	opts = opts.withDefaults()

	m := DashboardMetrics{
		TotalReviews:     len(records),
		TopPositiveWords: []WordCount{},
		TopNegativeWords: []WordCount{},
		WordCloud:        []CloudWord{},
		Trend:            []TrendPoint{},
		Histogram:        []HistogramBin{},
		Insights:         []string{},
	}
	if len(records) == 0 {
		slog.Debug("aggregating empty record collection")
		return m
	}

	scores := make([]float64, len(records))
	confidences := make([]float64, len(records))
	for i, r := range records {
		scores[i] = r.Score
		confidences[i] = r.Confidence
		switch r.Label {
		case "positive":
			m.PositiveCount++
		case "negative":
			m.NegativeCount++
		default:
			m.NeutralCount++
		}
	}

	total := float64(len(records))
	m.PositivePercentage = float64(m.PositiveCount) / total * 100
	m.NegativePercentage = float64(m.NegativeCount) / total * 100
	m.NeutralPercentage = float64(m.NeutralCount) / total * 100

	m.AverageScore = stat.Mean(scores, nil)
	m.AverageConfidence = stat.Mean(confidences, nil)
	m.MedianScore = median(scores)
	// population formula: second central moment about the mean
	m.StdDeviation = math.Sqrt(stat.MomentAbout(2, scores, m.AverageScore, nil))

	m.TopPositiveWords = topWords(records, "positive", opts.TopWords)
	m.TopNegativeWords = topWords(records, "negative", opts.TopWords)
	m.WordCloud = wordCloud(records, opts.CloudWords)
	m.Trend = trend(records)
	m.Histogram = histogram(scores, opts.HistogramBins)
	m.Insights = insights(m)

	slog.Debug("aggregated records",
		"total", m.TotalReviews,
		"positive", m.PositiveCount,
		"negative", m.NegativeCount,
		"neutral", m.NeutralCount)

	return m
}

// median returns the middle value of the ascending-sorted scores, averaging
// the two middle values for even-length input.
func median(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}

// rankWords sorts a frequency table descending by count, breaking ties by
// first-seen order, and returns the top n entries.
func rankWords(counts map[string]int, firstSeen map[string]int, n int) []WordCount {
	ranked := make([]WordCount, 0, len(counts))
	for word, count := range counts {
		ranked = append(ranked, WordCount{Word: word, Count: count})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return firstSeen[ranked[i].Word] < firstSeen[ranked[j].Word]
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// topWords builds the per-polarity frequency ranking over matched tokens from
// all records carrying that label.
func topWords(records []ReviewRecord, label string, n int) []WordCount {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	order := 0

	for _, r := range records {
		if r.Label != label {
			continue
		}
		tokens := r.PositiveTokens
		if label == "negative" {
			tokens = r.NegativeTokens
		}
		for _, token := range tokens {
			if _, seen := counts[token]; !seen {
				firstSeen[token] = order
				order++
			}
			counts[token]++
		}
	}

	return rankWords(counts, firstSeen, n)
}

// wordCloud builds the overall frequency table of tokens longer than two
// characters, each annotated with the label of the record it most recently
// appeared in.
func wordCloud(records []ReviewRecord, n int) []CloudWord {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	lastLabel := make(map[string]string)
	order := 0

	for _, r := range records {
		for _, token := range r.AllTokens {
			if len(token) <= 2 {
				continue
			}
			if _, seen := counts[token]; !seen {
				firstSeen[token] = order
				order++
			}
			counts[token]++
			lastLabel[token] = r.Label
		}
	}

	ranked := rankWords(counts, firstSeen, n)
	cloud := make([]CloudWord, len(ranked))
	for i, wc := range ranked {
		cloud[i] = CloudWord{Word: wc.Word, Count: wc.Count, Label: lastLabel[wc.Word]}
	}
	return cloud
}

// trend buckets records by the date portion of their timestamp and summarizes
// each day, sorted ascending by date string.
func trend(records []ReviewRecord) []TrendPoint {
	type bucket struct {
		point TrendPoint
		sum   float64
		n     int
	}
	buckets := make(map[string]*bucket)

	for _, r := range records {
		date := r.Timestamp
		if len(date) >= 10 {
			date = date[:10]
		}
		b, ok := buckets[date]
		if !ok {
			b = &bucket{point: TrendPoint{Date: date}}
			buckets[date] = b
		}
		switch r.Label {
		case "positive":
			b.point.PositiveCount++
		case "negative":
			b.point.NegativeCount++
		default:
			b.point.NeutralCount++
		}
		b.sum += r.Score
		b.n++
	}

	points := make([]TrendPoint, 0, len(buckets))
	for _, b := range buckets {
		b.point.AverageScore = b.sum / float64(b.n)
		points = append(points, b.point)
	}
	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})
	return points
}

// histogram partitions the observed score range into equal-width bins with
// inclusive bounds on both ends. When every score is identical the bin width
// falls back to 1.
func histogram(scores []float64, bins int) []HistogramBin {
	if len(scores) == 0 {
		return []HistogramBin{}
	}

	lo, hi := scores[0], scores[0]
	for _, s := range scores[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	width := (hi - lo) / float64(bins)
	if width == 0 {
		width = 1
	}

	out := make([]HistogramBin, bins)
	for i := range out {
		binLo := lo + float64(i)*width
		binHi := binLo + width
		count := 0
		for _, s := range scores {
			if s >= binLo && s <= binHi {
				count++
			}
		}
		out[i] = HistogramBin{Min: binLo, Max: binHi, Count: count}
	}
	return out
}

// insights derives the qualitative report statements from fixed thresholds.
func insights(m DashboardMetrics) []string {
	out := []string{}

	switch {
	case m.PositivePercentage > 60:
		out = append(out, fmt.Sprintf("Sentiment is predominantly positive (%.1f%% of reviews).", m.PositivePercentage))
	case m.NegativePercentage > 60:
		out = append(out, fmt.Sprintf("Sentiment is predominantly negative (%.1f%% of reviews).", m.NegativePercentage))
	default:
		out = append(out, "Sentiment is mixed across reviews.")
	}

	if m.StdDeviation > 1.5 {
		out = append(out, "High variance in scores suggests diverse opinions.")
	} else {
		out = append(out, "Scores follow a consistent pattern.")
	}

	switch {
	case m.AverageConfidence > 85:
		out = append(out, "Classifications carry high confidence.")
	case m.AverageConfidence < 65:
		out = append(out, "Low average confidence; results may be ambiguous.")
	}

	return out
}
