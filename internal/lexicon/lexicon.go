// Package lexicon provides dictionary-based sentiment scoring for review text.
//
// The scorer scans normalized word tokens against a fixed word-to-weight
// polarity table, sums matched weights into a total score, and derives a
// length-normalized comparative score, a polarity label, and a confidence
// value. It also computes a small block of surface features (word count,
// average word length, lexical diversity) over the same normalized tokens.
//
// Usage Example:
//
//	result := lexicon.Score("This product is amazing!")
//	// result.Label == lexicon.LabelPositive
//
// Scoring is a pure function of the input text: there is no shared mutable
// state beyond the read-only polarity table.
package lexicon

import (
	"math"

	"github.com/revlens/revlens/internal/tokenize"
)

// Label is the polarity classification of a scored text.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Features holds surface statistics computed over the normalized tokens of the
// scored text, independent of the polarity lookup.
type Features struct {
	WordCount        int     `json:"word_count"`
	AvgWordLength    float64 `json:"avg_word_length"`
	UniqueWordCount  int     `json:"unique_word_count"`
	LexicalDiversity float64 `json:"lexical_diversity"`
}

// Result is the outcome of scoring one text against the polarity table.
// Label is a pure function of the sign of TotalScore: positive iff > 0,
// negative iff < 0, neutral otherwise.
type Result struct {
	TotalScore       int      `json:"total_score"`
	ComparativeScore float64  `json:"comparative_score"`
	Label            Label    `json:"label"`
	Confidence       float64  `json:"confidence"`
	PositiveTokens   []string `json:"positive_tokens"`
	NegativeTokens   []string `json:"negative_tokens"`
	Features         Features `json:"features"`
}

// Score analyzes text against the polarity table and returns the full scoring
// result. Empty or token-free input yields a neutral result with all-zero
// features; Score never fails.
func Score(text string) Result {
	tokens := tokenize.Words(text)

	result := Result{
		Label:          LabelNeutral,
		PositiveTokens: []string{},
		NegativeTokens: []string{},
	}

	for _, token := range tokens {
		weight, ok := polarity[token]
		if !ok {
			continue
		}
		result.TotalScore += weight
		if weight > 0 {
			result.PositiveTokens = append(result.PositiveTokens, token)
		} else if weight < 0 {
			result.NegativeTokens = append(result.NegativeTokens, token)
		}
	}

	if len(tokens) > 0 {
		result.ComparativeScore = float64(result.TotalScore) / float64(len(tokens))
	}

	switch {
	case result.TotalScore > 0:
		result.Label = LabelPositive
	case result.TotalScore < 0:
		result.Label = LabelNegative
	}

	result.Confidence = math.Min(math.Abs(result.ComparativeScore)*100, 100)
	result.Features = extractFeatures(tokens)

	return result
}

// extractFeatures computes the surface-feature block from normalized tokens.
// Ratios over zero tokens degrade to 0 rather than dividing by zero.
func extractFeatures(tokens []string) Features {
	f := Features{WordCount: len(tokens)}
	if len(tokens) == 0 {
		return f
	}

	totalLen := 0
	unique := make(map[string]struct{}, len(tokens))
	for _, token := range tokens {
		totalLen += len(token)
		unique[token] = struct{}{}
	}

	f.AvgWordLength = float64(totalLen) / float64(len(tokens))
	f.UniqueWordCount = len(unique)
	f.LexicalDiversity = float64(f.UniqueWordCount) / float64(f.WordCount)

	return f
}
