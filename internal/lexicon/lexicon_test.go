package lexicon

import (
	"math"
	"testing"
)

func TestScoreLabels(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		wantLabel Label
	}{
		{
			name:      "clearly positive review",
			text:      "This product is absolutely amazing! Best purchase I've ever made. Highly recommend!",
			wantLabel: LabelPositive,
		},
		{
			name:      "clearly negative review",
			text:      "Terrible quality. Broke after one day. Complete waste of money. Very disappointed.",
			wantLabel: LabelNegative,
		},
		{
			name:      "neutral text with no sentiment words",
			text:      "The package arrived on Tuesday in a cardboard box.",
			wantLabel: LabelNeutral,
		},
		{
			name:      "empty string",
			text:      "",
			wantLabel: LabelNeutral,
		},
		{
			name:      "mixed sentiment cancels out",
			text:      "good bad",
			wantLabel: LabelNeutral,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Score(tt.text)
			if result.Label != tt.wantLabel {
				t.Errorf("Score() label = %q, want %q (total %d)", result.Label, tt.wantLabel, result.TotalScore)
			}
		})
	}
}

// the label must always follow the sign of the total score
func TestLabelFollowsScoreSign(t *testing.T) {
	texts := []string{
		"",
		"amazing",
		"terrible",
		"good bad",
		"I love this but it broke",
		"nothing to report here",
		"worst scam ever, total garbage",
	}

	for _, text := range texts {
		result := Score(text)
		switch {
		case result.TotalScore > 0 && result.Label != LabelPositive:
			t.Errorf("Score(%q): total %d but label %q", text, result.TotalScore, result.Label)
		case result.TotalScore < 0 && result.Label != LabelNegative:
			t.Errorf("Score(%q): total %d but label %q", text, result.TotalScore, result.Label)
		case result.TotalScore == 0 && result.Label != LabelNeutral:
			t.Errorf("Score(%q): total %d but label %q", text, result.TotalScore, result.Label)
		}
	}
}

func TestScorePositiveReview(t *testing.T) {
	result := Score("This product is absolutely amazing! Best purchase I've ever made. Highly recommend!")

	if result.TotalScore <= 0 {
		t.Errorf("total score = %d, want > 0", result.TotalScore)
	}

	wantMatched := map[string]bool{"amazing": false, "recommend": false}
	for _, token := range result.PositiveTokens {
		if _, ok := wantMatched[token]; ok {
			wantMatched[token] = true
		}
	}
	for word, seen := range wantMatched {
		if !seen {
			t.Errorf("matched positive tokens %v missing %q", result.PositiveTokens, word)
		}
	}
}

func TestScoreNegativeReview(t *testing.T) {
	result := Score("Terrible quality. Broke after one day. Complete waste of money. Very disappointed.")

	if result.TotalScore >= 0 {
		t.Errorf("total score = %d, want < 0", result.TotalScore)
	}
	if len(result.NegativeTokens) == 0 {
		t.Error("expected matched negative tokens, got none")
	}
}

func TestComparativeScoreAndConfidence(t *testing.T) {
	result := Score("amazing amazing")

	// two tokens, each weighted 4
	if result.TotalScore != 8 {
		t.Fatalf("total score = %d, want 8", result.TotalScore)
	}
	if math.Abs(result.ComparativeScore-4.0) > 1e-9 {
		t.Errorf("comparative score = %f, want 4.0", result.ComparativeScore)
	}
	// confidence caps at 100
	if result.Confidence != 100 {
		t.Errorf("confidence = %f, want 100", result.Confidence)
	}
}

func TestScoreEmptyInput(t *testing.T) {
	result := Score("")

	if result.TotalScore != 0 || result.ComparativeScore != 0 || result.Confidence != 0 {
		t.Errorf("empty input produced non-zero scores: %+v", result)
	}
	if result.Features.WordCount != 0 || result.Features.LexicalDiversity != 0 {
		t.Errorf("empty input produced non-zero features: %+v", result.Features)
	}
}

func TestExtractFeatures(t *testing.T) {
	result := Score("good good product")

	if result.Features.WordCount != 3 {
		t.Errorf("word count = %d, want 3", result.Features.WordCount)
	}
	if result.Features.UniqueWordCount != 2 {
		t.Errorf("unique word count = %d, want 2", result.Features.UniqueWordCount)
	}
	wantDiversity := 2.0 / 3.0
	if math.Abs(result.Features.LexicalDiversity-wantDiversity) > 1e-9 {
		t.Errorf("lexical diversity = %f, want %f", result.Features.LexicalDiversity, wantDiversity)
	}
	// (4 + 4 + 7) / 3
	wantAvgLen := 5.0
	if math.Abs(result.Features.AvgWordLength-wantAvgLen) > 1e-9 {
		t.Errorf("avg word length = %f, want %f", result.Features.AvgWordLength, wantAvgLen)
	}
}
