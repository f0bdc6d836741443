// Package tokenize provides word tokenization and text normalization shared by
// the scoring and classification packages.
//
// Normalization is intentionally simple: lower-case the text, map every
// character that is not a letter, digit, or whitespace to a space, and collapse
// runs of whitespace. The same normalized-token definition is used by both the
// lexicon scorer and the subword classifier so that their per-token statistics
// agree with each other.
package tokenize

import (
	"regexp"
	"strings"
)

// compiled once at package initialization
var (
	nonWordRe    = regexp.MustCompile(`[^\p{L}\p{N}\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// Normalize lower-cases text, replaces every non-letter/digit/whitespace
// character with a space, collapses whitespace runs, and trims. Normalize is
// idempotent: Normalize(Normalize(t)) == Normalize(t).
func Normalize(text string) string {
	t := strings.ToLower(text)
	t = nonWordRe.ReplaceAllString(t, " ")
	t = whitespaceRe.ReplaceAllString(t, " ")
	return strings.TrimSpace(t)
}

// Words normalizes text and splits it on whitespace. Empty or whitespace-only
// input yields an empty slice; callers are responsible for treating rates and
// averages over zero tokens as 0.
func Words(text string) []string {
	normalized := Normalize(text)
	if normalized == "" {
		return []string{}
	}
	return strings.Fields(normalized)
}
