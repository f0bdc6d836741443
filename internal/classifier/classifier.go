// Package classifier emits a three-way sentiment probability distribution for
// review text.
//
// The classifier borrows transformer-style machinery (a fixed subword
// vocabulary, bounded-length id sequences with padding and attention masks,
// softmax over logits) but carries no learned weights anywhere. Scoring is a
// fixed heuristic over word lists and punctuation, and the encoding exists so
// that the number of real token positions can feed the neutral logit.
// Reproducing this arithmetic exactly is the contract; it is not a model to
// be improved.
//
// Usage Example:
//
//	out := classifier.Classify("I love this product!")
//	// out.PredictedClass == "positive", probabilities sum to 1
//
// Classify never fails for any finite string, including the empty string.
package classifier

import (
	"math"
	"strings"
	"sync/atomic"

	"github.com/revlens/revlens/internal/tokenize"
)

// defaults mirror a BERT-base-sized id space and sequence bound
const (
	DefaultVocabSize = 30522
	DefaultMaxSeqLen = 512

	// longest word prefix attempted during greedy subword splitting
	maxPieceLen = 4
)

// sentiment word lists for the heuristic logits; matched as substrings of
// lower-cased whitespace-split words of the original text
var (
	positiveWords = []string{
		"good", "great", "excellent", "amazing", "love", "perfect",
		"best", "awesome", "fantastic", "wonderful", "recommend",
		"happy", "pleased", "nice", "easy", "impressed",
	}
	negativeWords = []string{
		"bad", "terrible", "awful", "hate", "worst", "poor",
		"horrible", "broken", "waste", "disappoint", "useless",
		"refund", "defect", "cheap", "fail", "regret",
	}
)

// Options configures a Classifier. Zero values select the defaults.
type Options struct {
	VocabSize int
	MaxSeqLen int
}

// Classifier encodes text into fixed-length id sequences and scores them with
// the heuristic logit rules. Instances are immutable after construction and
// safe for concurrent use.
type Classifier struct {
	vocabSize int
	maxSeqLen int
}

// Encoding is a fixed-length encoded sequence: token ids, a parallel attention
// mask (1 for the class marker, real pieces, and separator; 0 for padding),
// and all-zero segment ids.
type Encoding struct {
	IDs           []int `json:"ids"`
	AttentionMask []int `json:"attention_mask"`
	SegmentIDs    []int `json:"segment_ids"`
}

// Output is the classification result. The three probabilities sum to 1;
// PredictedClass is the argmax with ties broken toward the earlier entry in
// [positive, negative, neutral].
type Output struct {
	PositiveProb   float64    `json:"positive_prob"`
	NegativeProb   float64    `json:"negative_prob"`
	NeutralProb    float64    `json:"neutral_prob"`
	PredictedClass string     `json:"predicted_class"`
	Confidence     float64    `json:"confidence"`
	RawLogits      [3]float64 `json:"raw_logits"`
}

// New creates a Classifier with the given options.
func New(opts Options) *Classifier {
	c := &Classifier{
		vocabSize: opts.VocabSize,
		maxSeqLen: opts.MaxSeqLen,
	}
	if c.vocabSize <= 0 {
		c.vocabSize = DefaultVocabSize
	}
	if c.maxSeqLen < 2 {
		c.maxSeqLen = DefaultMaxSeqLen
	}
	return c
}

// defaultClf backs the package-level Classify; replaceable once at startup
var defaultClf atomic.Pointer[Classifier]

func init() {
	defaultClf.Store(New(Options{}))
}

// Classify runs the process-wide default classifier over text.
func Classify(text string) Output {
	return defaultClf.Load().Classify(text)
}

// SetDefault replaces the classifier used by the package-level Classify,
// typically during startup after configuration is loaded. A nil argument is
// ignored.
func SetDefault(c *Classifier) {
	if c != nil {
		defaultClf.Store(c)
	}
}

// Encode normalizes text, splits each word into subword pieces, and produces
// the fixed-length id sequence with its attention mask and segment ids. The
// piece sequence is truncated before padding when it would overflow, keeping
// two slots reserved for the class-start and separator markers.
func (c *Classifier) Encode(text string) Encoding {
	var pieces []string
	for _, word := range tokenize.Words(text) {
		pieces = append(pieces, splitWord(word)...)
	}

	if len(pieces) > c.maxSeqLen-2 {
		pieces = pieces[:c.maxSeqLen-2]
	}

	enc := Encoding{
		IDs:           make([]int, c.maxSeqLen),
		AttentionMask: make([]int, c.maxSeqLen),
		SegmentIDs:    make([]int, c.maxSeqLen),
	}

	enc.IDs[0] = clsID
	enc.AttentionMask[0] = 1
	for i, piece := range pieces {
		enc.IDs[i+1] = pieceID(piece, c.vocabSize)
		enc.AttentionMask[i+1] = 1
	}
	enc.IDs[len(pieces)+1] = sepID
	enc.AttentionMask[len(pieces)+1] = 1
	// remaining positions stay at padID with mask 0

	return enc
}

// splitWord greedily consumes a word into subword pieces. At each step the
// longest prefix of length <= 4 that is either a vocabulary member or
// tokenizable is taken; if neither applies, a single character is consumed.
func splitWord(word string) []string {
	var pieces []string
	runes := []rune(word)

	for len(runes) > 0 {
		n := min(maxPieceLen, len(runes))
		taken := 1
		for l := n; l >= 1; l-- {
			prefix := string(runes[:l])
			if _, ok := vocab()[prefix]; ok || tokenizable(prefix) {
				pieces = append(pieces, prefix)
				taken = l
				break
			}
			if l == 1 {
				// no match at any length, consume a single character
				pieces = append(pieces, prefix)
			}
		}
		runes = runes[taken:]
	}

	return pieces
}

// tokenizable reports whether a piece contains a lowercase letter or digit.
func tokenizable(piece string) bool {
	for _, r := range piece {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}

// Classify encodes text and applies the heuristic scoring rules.
func (c *Classifier) Classify(text string) Output {
	enc := c.Encode(text)

	var posLogit, negLogit float64
	for _, word := range strings.Fields(strings.ToLower(text)) {
		if containsAny(word, positiveWords) {
			posLogit += 1.5
		}
		if containsAny(word, negativeWords) {
			negLogit += 1.5
		}
	}
	posLogit += 0.3 * float64(strings.Count(text, "!"))
	negLogit += 0.2 * float64(strings.Count(text, "?"))

	attention := 0
	for _, m := range enc.AttentionMask {
		attention += m
	}
	// the numerator is clamped to >= 1 so the logit stays finite for every
	// input, including the empty string
	neutralLogit := math.Log(float64(max(1, attention)) / 10.0)

	logits := [3]float64{posLogit, negLogit, neutralLogit}
	probs := softmax(logits)

	classes := [3]string{"positive", "negative", "neutral"}
	argmax := 0
	for i := 1; i < 3; i++ {
		if probs[i] > probs[argmax] {
			argmax = i
		}
	}

	return Output{
		PositiveProb:   probs[0],
		NegativeProb:   probs[1],
		NeutralProb:    probs[2],
		PredictedClass: classes[argmax],
		Confidence:     probs[argmax] * 100,
		RawLogits:      logits,
	}
}

func containsAny(word string, list []string) bool {
	for _, entry := range list {
		if strings.Contains(word, entry) {
			return true
		}
	}
	return false
}

// softmax applies the numerically stable formulation, subtracting the max
// logit before exponentiating.
func softmax(logits [3]float64) [3]float64 {
	maxLogit := logits[0]
	for _, l := range logits[1:] {
		if l > maxLogit {
			maxLogit = l
		}
	}

	var sum float64
	var exps [3]float64
	for i, l := range logits {
		exps[i] = math.Exp(l - maxLogit)
		sum += exps[i]
	}

	var probs [3]float64
	for i := range exps {
		probs[i] = exps[i] / sum
	}
	return probs
}
