package preprocess

// stopWords is the fixed set of tokens dropped before lemmatization. Mostly
// pronouns, articles, and auxiliary verbs; matched case-insensitively.
var stopWords = map[string]struct{}{
	// --- articles & conjunctions ---
	"a": {}, "an": {}, "and": {}, "but": {}, "or": {}, "the": {},

	// --- pronouns ---
	"he": {}, "her": {}, "him": {}, "his": {}, "i": {}, "it": {}, "its": {},
	"me": {}, "my": {}, "our": {}, "she": {}, "their": {}, "them": {},
	"they": {}, "us": {}, "we": {}, "you": {}, "your": {},

	// --- auxiliaries & modals ---
	"am": {}, "are": {}, "be": {}, "been": {}, "being": {}, "can": {},
	"could": {}, "did": {}, "do": {}, "does": {}, "had": {}, "has": {},
	"have": {}, "is": {}, "may": {}, "might": {}, "must": {}, "not": {},
	"shall": {}, "should": {}, "was": {}, "were": {}, "will": {}, "would": {},

	// --- prepositions & misc ---
	"as": {}, "at": {}, "by": {}, "for": {}, "from": {}, "in": {}, "of": {},
	"on": {}, "that": {}, "this": {}, "to": {}, "with": {},
}

// lemmas is a closed, hand-authored irregular-form table. Tokens absent from
// the table pass through unchanged; this is deliberately not a rule-based
// stemmer.
var lemmas = map[string]string{
	"amazing": "amazing",

	"ran":     "run",
	"running": "run",
	"runs":    "run",

	"best":   "good",
	"better": "good",

	"worse": "bad",
	"worst": "bad",

	"loved":  "love",
	"loves":  "love",
	"loving": "love",

	"hated":  "hate",
	"hates":  "hate",
	"hating": "hate",

	"liked":  "like",
	"likes":  "like",
	"liking": "like",

	"bought": "buy",
	"buying": "buy",
	"buys":   "buy",

	"broke":    "break",
	"broken":   "break",
	"breaking": "break",

	"made":   "make",
	"making": "make",
	"makes":  "make",

	"went":  "go",
	"gone":  "go",
	"going": "go",
	"goes":  "go",

	"worked":  "work",
	"working": "work",
	"works":   "work",

	"disappointed":  "disappoint",
	"disappointing": "disappoint",
	"disappoints":   "disappoint",

	"recommended":  "recommend",
	"recommending": "recommend",
	"recommends":   "recommend",

	"returned":  "return",
	"returning": "return",
	"returns":   "return",

	"arrived":  "arrive",
	"arriving": "arrive",
	"arrives":  "arrive",
}

// subjectiveStems mark opinionated language; a token counts toward the
// subjectivity score when it contains any of these as a substring.
var subjectiveStems = []string{
	"amazing",
	"awesome",
	"awful",
	"believe",
	"best",
	"feel",
	"hate",
	"horrible",
	"love",
	"opinion",
	"perfect",
	"terrible",
	"think",
	"wonderful",
	"worst",
}
