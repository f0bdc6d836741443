package stats

import (
	"math"
	"strings"
	"testing"
)

const tolerance = 1e-9

func rec(label string, score float64) ReviewRecord {
	return ReviewRecord{
		Label:      label,
		Score:      score,
		Confidence: 75,
		Timestamp:  "2025-06-01T10:00:00Z",
	}
}

func TestAggregateEmpty(t *testing.T) {
	m := Aggregate(nil)

	if m.TotalReviews != 0 {
		t.Errorf("total = %d, want 0", m.TotalReviews)
	}
	if m.PositivePercentage != 0 || m.NegativePercentage != 0 || m.NeutralPercentage != 0 {
		t.Errorf("percentages over empty input: %+v", m)
	}
	if m.AverageScore != 0 || m.MedianScore != 0 || m.StdDeviation != 0 {
		t.Errorf("statistics over empty input: %+v", m)
	}
	if len(m.Histogram) != 0 || len(m.Trend) != 0 || len(m.WordCloud) != 0 {
		t.Errorf("derived collections over empty input: %+v", m)
	}
}

func TestAggregateCountsAndPercentages(t *testing.T) {
	records := []ReviewRecord{
		rec("positive", 3),
		rec("positive", 2),
		rec("positive", 4),
		rec("negative", -2),
		rec("neutral", 0),
	}

	m := Aggregate(records)

	if m.PositiveCount != 3 || m.NegativeCount != 1 || m.NeutralCount != 1 {
		t.Fatalf("counts = %d/%d/%d, want 3/1/1", m.PositiveCount, m.NegativeCount, m.NeutralCount)
	}
	if math.Abs(m.PositivePercentage-60.0) > tolerance {
		t.Errorf("positive percentage = %f, want 60.0", m.PositivePercentage)
	}
	if math.Abs(m.NegativePercentage-20.0) > tolerance {
		t.Errorf("negative percentage = %f, want 20.0", m.NegativePercentage)
	}
	if math.Abs(m.NeutralPercentage-20.0) > tolerance {
		t.Errorf("neutral percentage = %f, want 20.0", m.NeutralPercentage)
	}

	sum := m.PositivePercentage + m.NegativePercentage + m.NeutralPercentage
	if math.Abs(sum-100.0) > 1e-6 {
		t.Errorf("percentages sum to %f, want 100", sum)
	}
}

func TestCentralTendency(t *testing.T) {
	records := []ReviewRecord{
		rec("positive", 1),
		rec("positive", 2),
		rec("positive", 3),
		rec("positive", 4),
	}

	m := Aggregate(records)

	if math.Abs(m.AverageScore-2.5) > tolerance {
		t.Errorf("mean = %f, want 2.5", m.AverageScore)
	}
	// even count: average of the two middle values
	if math.Abs(m.MedianScore-2.5) > tolerance {
		t.Errorf("median = %f, want 2.5", m.MedianScore)
	}
	// population standard deviation of {1,2,3,4}
	want := math.Sqrt(1.25)
	if math.Abs(m.StdDeviation-want) > tolerance {
		t.Errorf("std deviation = %f, want %f", m.StdDeviation, want)
	}
}

func TestMedianOdd(t *testing.T) {
	if got := median([]float64{5, 1, 3}); got != 3 {
		t.Errorf("median = %f, want 3", got)
	}
}

func TestTopWordsOrdering(t *testing.T) {
	records := []ReviewRecord{
		{Label: "positive", PositiveTokens: []string{"great", "love", "great"}, Timestamp: "2025-06-01"},
		{Label: "positive", PositiveTokens: []string{"great", "nice"}, Timestamp: "2025-06-01"},
		{Label: "negative", NegativeTokens: []string{"broken"}, Timestamp: "2025-06-01"},
	}

	m := Aggregate(records)

	if len(m.TopPositiveWords) != 3 {
		t.Fatalf("top positive words = %v, want 3 entries", m.TopPositiveWords)
	}
	if m.TopPositiveWords[0].Word != "great" || m.TopPositiveWords[0].Count != 3 {
		t.Errorf("top word = %+v, want great x3", m.TopPositiveWords[0])
	}
	// love and nice tie at 1; love was seen first
	if m.TopPositiveWords[1].Word != "love" || m.TopPositiveWords[2].Word != "nice" {
		t.Errorf("tie order = %v, want love before nice", m.TopPositiveWords[1:])
	}

	if len(m.TopNegativeWords) != 1 || m.TopNegativeWords[0].Word != "broken" {
		t.Errorf("top negative words = %v, want [broken]", m.TopNegativeWords)
	}
}

func TestWordCloud(t *testing.T) {
	records := []ReviewRecord{
		{Label: "positive", AllTokens: []string{"battery", "is", "great"}, Timestamp: "2025-06-01"},
		{Label: "negative", AllTokens: []string{"battery", "died"}, Timestamp: "2025-06-02"},
	}

	m := Aggregate(records)

	if len(m.WordCloud) != 3 {
		t.Fatalf("word cloud = %v, want 3 entries (short tokens dropped)", m.WordCloud)
	}
	top := m.WordCloud[0]
	if top.Word != "battery" || top.Count != 2 {
		t.Fatalf("top cloud word = %+v, want battery x2", top)
	}
	// annotated with the label of the most recent record containing it
	if top.Label != "negative" {
		t.Errorf("cloud label = %q, want negative", top.Label)
	}
}

func TestTrendBuckets(t *testing.T) {
	records := []ReviewRecord{
		{Label: "positive", Score: 2, Timestamp: "2025-06-02T09:00:00Z"},
		{Label: "negative", Score: -2, Timestamp: "2025-06-01T12:00:00Z"},
		{Label: "positive", Score: 4, Timestamp: "2025-06-02T18:30:00Z"},
	}

	m := Aggregate(records)

	if len(m.Trend) != 2 {
		t.Fatalf("trend = %v, want 2 buckets", m.Trend)
	}
	// ascending by date
	if m.Trend[0].Date != "2025-06-01" || m.Trend[1].Date != "2025-06-02" {
		t.Fatalf("trend dates = %q, %q", m.Trend[0].Date, m.Trend[1].Date)
	}
	if m.Trend[0].NegativeCount != 1 || m.Trend[0].AverageScore != -2 {
		t.Errorf("first bucket = %+v", m.Trend[0])
	}
	if m.Trend[1].PositiveCount != 2 || math.Abs(m.Trend[1].AverageScore-3.0) > tolerance {
		t.Errorf("second bucket = %+v", m.Trend[1])
	}
}

func TestHistogram(t *testing.T) {
	scores := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}
	bins := histogram(scores, 10)

	if len(bins) != 10 {
		t.Fatalf("bins = %d, want 10", len(bins))
	}
	if bins[0].Min != 0 || math.Abs(bins[9].Max-10) > tolerance {
		t.Errorf("bin range = [%f, %f], want [0, 10]", bins[0].Min, bins[9].Max)
	}

	total := 0
	for _, b := range bins {
		total += b.Count
	}
	// inclusive bounds double-count scores on shared boundaries, so the sum
	// may exceed the number of scores; it can never be smaller
	if total < len(scores) {
		t.Errorf("binned count = %d, want >= %d", total, len(scores))
	}

	// a score exactly on a shared boundary lands in both adjoining bins
	boundary := histogram([]float64{0, 1, 2}, 2)
	if boundary[0].Count != 2 || boundary[1].Count != 2 {
		t.Errorf("boundary bins = %+v, want the middle score counted twice", boundary)
	}
}

func TestHistogramIdenticalScores(t *testing.T) {
	bins := histogram([]float64{2, 2, 2}, 4)

	if len(bins) != 4 {
		t.Fatalf("bins = %d, want 4", len(bins))
	}
	// width falls back to 1 when the range is degenerate
	if math.Abs(bins[0].Max-bins[0].Min-1.0) > tolerance {
		t.Errorf("bin width = %f, want 1", bins[0].Max-bins[0].Min)
	}
	if bins[0].Count != 3 {
		t.Errorf("first bin count = %d, want 3", bins[0].Count)
	}
}

func TestInsights(t *testing.T) {
	tests := []struct {
		name    string
		metrics DashboardMetrics
		wantSub []string
	}{
		{
			name: "predominantly positive with high confidence",
			metrics: DashboardMetrics{
				PositivePercentage: 80,
				StdDeviation:       0.5,
				AverageConfidence:  90,
			},
			wantSub: []string{"predominantly positive", "consistent pattern", "high confidence"},
		},
		{
			name: "mixed and diverse",
			metrics: DashboardMetrics{
				PositivePercentage: 40,
				NegativePercentage: 40,
				StdDeviation:       2.0,
				AverageConfidence:  70,
			},
			wantSub: []string{"mixed", "diverse opinions"},
		},
		{
			name: "predominantly negative with low confidence",
			metrics: DashboardMetrics{
				NegativePercentage: 70,
				AverageConfidence:  50,
			},
			wantSub: []string{"predominantly negative", "ambiguous"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := insights(tt.metrics)
			joined := ""
			for _, s := range got {
				joined += s + " "
			}
			for _, sub := range tt.wantSub {
				if !strings.Contains(joined, sub) {
					t.Errorf("insights %v missing %q", got, sub)
				}
			}
		})
	}
}
