// Package preprocess cleans review text and derives a linguistic profile from it.
//
// The pipeline runs a fixed sequence of cleaning steps (URL/mention/hashtag
// stripping, repeated-character collapsing, punctuation normalization), splits
// the result into sentences and word tokens, filters stop words, maps tokens
// through a closed lemma table, and computes style features plus readability,
// emotional-intensity, and subjectivity metadata.
//
// Usage Example:
//
//	profile := preprocess.Preprocess("Sooo goooood! Loved it @store #happy")
//	// profile.CleanedText, profile.Features, profile.Metadata
//
// Style features are deliberately computed from the original, uncleaned text
// and the pre-filter token list so that raw signals (capitalization, repeated
// punctuation) survive the cleaning pass. Every ratio is guarded against a
// zero denominator; Preprocess never fails, even on empty input.
package preprocess

import (
	"regexp"
	"strings"
	"unicode"
)

// compiled once at package initialization
var (
	urlRe        = regexp.MustCompile(`https?://\S+`)
	mentionRe    = regexp.MustCompile(`@\w+`)
	hashtagRe    = regexp.MustCompile(`#\w+`)
	disallowedRe = regexp.MustCompile(`[^\p{L}\p{N}\s.!?-]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	sentenceRe   = regexp.MustCompile(`[.!?]+`)
)

// Features holds style statistics over the original text and the pre-filter
// token list.
type Features struct {
	WordCount         int     `json:"word_count"`
	SentenceCount     int     `json:"sentence_count"`
	AvgWordLength     float64 `json:"avg_word_length"`
	AvgSentenceLength float64 `json:"avg_sentence_length"`
	UniqueWordCount   int     `json:"unique_word_count"`
	LexicalDiversity  float64 `json:"lexical_diversity"`
	SpecialCharCount  int     `json:"special_char_count"`
	UppercaseRatio    float64 `json:"uppercase_ratio"`
	ExclamationCount  int     `json:"exclamation_count"`
	QuestionCount     int     `json:"question_count"`
}

// Metadata holds derived text-level judgments, each scaled to [0, 100].
type Metadata struct {
	Language           string  `json:"language"`
	ReadabilityScore   float64 `json:"readability_score"`
	EmotionalIntensity float64 `json:"emotional_intensity"`
	Subjectivity       float64 `json:"subjectivity"`
}

// Profile is the full preprocessing result for one text.
type Profile struct {
	OriginalText     string   `json:"original_text"`
	CleanedText      string   `json:"cleaned_text"`
	FilteredTokens   []string `json:"filtered_tokens"`
	LemmatizedTokens []string `json:"lemmatized_tokens"`
	Features         Features `json:"features"`
	Metadata         Metadata `json:"metadata"`
}

// Preprocess runs the full cleaning and feature pipeline over text.
func Preprocess(text string) Profile {
	cleaned := Clean(text)
	tokens := tokenizeSentenceWords(cleaned)

	filtered := filterStopWords(tokens)
	lemmatized := lemmatize(filtered)

	return Profile{
		OriginalText:     text,
		CleanedText:      cleaned,
		FilteredTokens:   filtered,
		LemmatizedTokens: lemmatized,
		Features:         extractFeatures(text, tokens),
		Metadata:         extractMetadata(text, tokens),
	}
}

// Clean applies the cleaning steps in their fixed order: lower-case, strip
// URLs, mentions, and hashtags, collapse repeated character groups, replace
// characters outside the letter/digit/whitespace/.!?- set with spaces, and
// collapse whitespace.
func Clean(text string) string {
	t := strings.ToLower(text)
	t = urlRe.ReplaceAllString(t, " ")
	t = mentionRe.ReplaceAllString(t, " ")
	t = hashtagRe.ReplaceAllString(t, " ")
	t = collapseRepeats(t)
	t = disallowedRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// collapseRepeats reduces any character group immediately followed by two or
// more repeats of itself down to a single copy ("amazingggg" -> "amazing",
// "hahaha" -> "ha"). The shortest repeating group wins at each position, and
// the run of repeats is consumed greedily.
//
// This mirrors a lazy backreference pattern, which Go's RE2 engine cannot
// express, so it is implemented directly.
func collapseRepeats(s string) string {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))

	i := 0
	for i < len(runes) {
		collapsed := false
		for period := 1; i+3*period <= len(runes); period++ {
			if !runesEqual(runes[i:i+period], runes[i+period:i+2*period]) ||
				!runesEqual(runes[i:i+period], runes[i+2*period:i+3*period]) {
				continue
			}
			// consume every further repeat of the group
			end := i + 3*period
			for end+period <= len(runes) && runesEqual(runes[i:i+period], runes[end:end+period]) {
				end += period
			}
			out = append(out, runes[i:i+period]...)
			i = end
			collapsed = true
			break
		}
		if !collapsed {
			out = append(out, runes[i])
			i++
		}
	}

	return string(out)
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Sentences splits text on runs of sentence-final punctuation and discards
// empty or whitespace-only fragments.
func Sentences(text string) []string {
	parts := sentenceRe.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.TrimSpace(part) != "" {
			sentences = append(sentences, strings.TrimSpace(part))
		}
	}
	return sentences
}

// tokenizeSentenceWords splits cleaned text into sentences and concatenates
// their whitespace-separated words in order.
func tokenizeSentenceWords(cleaned string) []string {
	var tokens []string
	for _, sentence := range Sentences(cleaned) {
		tokens = append(tokens, strings.Fields(sentence)...)
	}
	return tokens
}

// filterStopWords drops stop-word tokens and tokens of length <= 2.
func filterStopWords(tokens []string) []string {
	filtered := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if len(token) <= 2 {
			continue
		}
		if _, stop := stopWords[strings.ToLower(token)]; stop {
			continue
		}
		filtered = append(filtered, token)
	}
	return filtered
}

// lemmatize maps each token through the closed irregular-form table; tokens
// absent from the table pass through lower-cased unchanged.
func lemmatize(tokens []string) []string {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		lower := strings.ToLower(token)
		if lemma, ok := lemmas[lower]; ok {
			out[i] = lemma
		} else {
			out[i] = lower
		}
	}
	return out
}

// extractFeatures computes the style-feature block from the original text and
// the pre-filter token list.
func extractFeatures(original string, tokens []string) Features {
	f := Features{
		WordCount:        len(tokens),
		SentenceCount:    len(Sentences(original)),
		ExclamationCount: strings.Count(original, "!"),
		QuestionCount:    strings.Count(original, "?"),
	}

	if len(tokens) > 0 {
		totalLen := 0
		unique := make(map[string]struct{}, len(tokens))
		for _, token := range tokens {
			totalLen += len([]rune(token))
			unique[strings.ToLower(token)] = struct{}{}
		}
		f.AvgWordLength = float64(totalLen) / float64(len(tokens))
		f.UniqueWordCount = len(unique)
		f.LexicalDiversity = float64(f.UniqueWordCount) / float64(f.WordCount)
	}

	f.AvgSentenceLength = float64(f.WordCount) / float64(max(1, f.SentenceCount))

	runes := []rune(original)
	upper := 0
	for _, r := range runes {
		if unicode.IsPunct(r) || unicode.IsSymbol(r) {
			f.SpecialCharCount++
		}
		if unicode.IsUpper(r) {
			upper++
		}
	}
	f.UppercaseRatio = float64(upper) / float64(max(1, len(runes)))

	return f
}

// extractMetadata computes readability, emotional intensity, and subjectivity.
func extractMetadata(original string, tokens []string) Metadata {
	return Metadata{
		Language:           "en",
		ReadabilityScore:   readability(original, tokens),
		EmotionalIntensity: emotionalIntensity(original),
		Subjectivity:       subjectivity(tokens),
	}
}

// readability computes the Flesch Reading Ease score clamped to [0, 100].
// Empty input scores 0.
func readability(original string, tokens []string) float64 {
	words := len(tokens)
	if words == 0 {
		return 0
	}
	sentences := max(1, len(Sentences(original)))

	totalSyllables := 0
	for _, token := range tokens {
		totalSyllables += syllables(token)
	}
	totalSyllables = max(1, totalSyllables)

	score := 206.835 -
		1.015*(float64(words)/float64(sentences)) -
		84.6*(float64(totalSyllables)/float64(words))

	return clamp(score, 0, 100)
}

// syllables estimates the syllable count of a word by counting vowel-group
// onsets, subtracting a trailing silent "e", and restoring consonant-"le"
// endings. Every word counts as at least one syllable.
func syllables(word string) int {
	count := 0
	prevVowel := false
	for _, r := range word {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(word, "e") {
		count--
	}
	if len(word) >= 3 && strings.HasSuffix(word, "le") && !isVowel(rune(word[len(word)-3])) {
		count++
	}

	return max(1, count)
}

func isVowel(r rune) bool {
	switch unicode.ToLower(r) {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// emotionalIntensity scores exclamations, questions, and shouting (all-caps
// words) in the original text, scaled to [0, 100].
func emotionalIntensity(original string) float64 {
	exclamations := strings.Count(original, "!")
	questions := strings.Count(original, "?")

	allCaps := 0
	for _, word := range strings.Fields(original) {
		if len([]rune(word)) < 2 {
			continue
		}
		hasLetter := false
		upperOnly := true
		for _, r := range word {
			if unicode.IsLetter(r) {
				hasLetter = true
				if !unicode.IsUpper(r) {
					upperOnly = false
					break
				}
			}
		}
		if hasLetter && upperOnly {
			allCaps++
		}
	}

	intensity := 10 * (0.3*float64(exclamations) + 0.2*float64(questions) + 0.1*float64(allCaps))
	return clamp(intensity, 0, 100)
}

// subjectivity measures the share of tokens containing a subjective word stem.
func subjectivity(tokens []string) float64 {
	matched := 0
	for _, token := range tokens {
		lower := strings.ToLower(token)
		for _, stem := range subjectiveStems {
			if strings.Contains(lower, stem) {
				matched++
				break
			}
		}
	}

	score := 100 * float64(matched) / float64(max(1, len(tokens)))
	return clamp(score, 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
