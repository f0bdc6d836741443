package classifier

import (
	"hash/fnv"
	"sync"
)

// reserved marker ids, kept apart from the word-piece id space
const (
	padID  = 0
	maskID = 100
	clsID  = 101
	sepID  = 102
)

// first id handed out to vocabulary entries; everything between the last
// assigned entry and the configured vocabulary size is unused placeholder
// space, except where unknown pieces are hashed into it
const vocabStart = 1000

// vocabEntries is the fixed vocabulary, listed in id-assignment order. Only
// pieces of length <= 4 can ever match during greedy prefix splitting, so the
// list sticks to short tokens, subword fragments, digits, and punctuation.
var vocabEntries = []string{
	// single characters and digits
	"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l", "m",
	"n", "o", "p", "q", "r", "s", "t", "u", "v", "w", "x", "y", "z",
	"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
	".", ",", "!", "?", "-", "'",

	// frequent whole words
	"the", "and", "for", "not", "but", "was", "are", "this", "that",
	"with", "have", "had", "has", "its", "it", "is", "of", "to", "in",
	"on", "at", "by", "an", "as", "be", "or", "so", "we", "me", "my",
	"you", "your", "they", "them", "she", "he", "her", "his", "our",
	"one", "two", "all", "any", "can", "did", "do", "get", "got",
	"just", "like", "more", "most", "much", "new", "no", "now", "off",
	"only", "out", "over", "some", "time", "too", "use", "used", "very",
	"way", "well", "were", "what", "when", "who", "will", "work",

	// review-domain fragments
	"good", "bad", "best", "wor", "love", "hate", "nice", "poor",
	"amaz", "terr", "awes", "awf", "perf", "fant", "wond", "hor",
	"dis", "app", "oint", "rec", "omm", "end", "qual", "ity",
	"prod", "uct", "purc", "hase", "mone", "item", "ship", "fast",
	"slow", "chea", "pric", "valu", "serv", "ice", "retu", "rn",
	"brok", "fix", "last", "day", "week", "year", "star", "five",

	// common subword pieces
	"ing", "ed", "er", "est", "ly", "un", "re", "pre", "tion",
	"able", "ible", "ness", "ment", "ful", "less", "ous", "al",
	"en", "es", "ize", "ise", "ant", "ent", "ive", "ate", "ish",
}

var (
	vocabOnce sync.Once
	vocabIDs  map[string]int
)

// vocab returns the piece-to-id table, built once on first use.
func vocab() map[string]int {
	vocabOnce.Do(func() {
		vocabIDs = make(map[string]int, len(vocabEntries))
		for i, entry := range vocabEntries {
			if _, dup := vocabIDs[entry]; dup {
				continue
			}
			vocabIDs[entry] = vocabStart + i
		}
	})
	return vocabIDs
}

// pieceID resolves a word piece to an id. Pieces outside the fixed vocabulary
// hash deterministically into the unused placeholder region so that equal
// pieces always encode to equal ids.
func pieceID(piece string, vocabSize int) int {
	if id, ok := vocab()[piece]; ok {
		return id
	}

	unusedStart := vocabStart + len(vocabEntries)
	span := vocabSize - unusedStart
	if span <= 0 {
		return maskID
	}

	h := fnv.New32a()
	h.Write([]byte(piece))
	return unusedStart + int(h.Sum32())%span
}
