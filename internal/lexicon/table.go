package lexicon

// polarity maps normalized tokens to signed sentiment weights in [-5, 5],
// AFINN-style. The table is a process-wide read-only constant; it is never
// mutated after initialization, so concurrent lookups need no locking.
var polarity = map[string]int{
	// --- strongly positive ---
	"amazing":     4,
	"awesome":     4,
	"breathtaking": 5,
	"brilliant":   4,
	"fabulous":    4,
	"fantastic":   4,
	"incredible":  4,
	"magnificent": 4,
	"outstanding": 5,
	"perfect":     5,
	"phenomenal":  4,
	"superb":      5,
	"wonderful":   4,

	// --- positive ---
	"admire":      3,
	"beautiful":   3,
	"best":        3,
	"delight":     3,
	"delighted":   3,
	"delightful":  3,
	"excellent":   3,
	"exceptional": 3,
	"great":       3,
	"happy":       3,
	"impressive":  3,
	"love":        3,
	"loved":       3,
	"lovely":      3,
	"loves":       3,
	"thrilled":    3,

	// --- mildly positive ---
	"affordable":  2,
	"comfortable": 2,
	"convenient":  2,
	"durable":     2,
	"easy":        2,
	"effective":   2,
	"enjoy":       2,
	"enjoyable":   2,
	"enjoyed":     2,
	"fast":        2,
	"friendly":    2,
	"glad":        2,
	"good":        2,
	"helpful":     2,
	"impressed":   2,
	"like":        2,
	"liked":       2,
	"nice":        2,
	"pleasant":    2,
	"pleased":     2,
	"quality":     2,
	"recommend":   2,
	"recommended": 2,
	"reliable":    2,
	"satisfied":   2,
	"smooth":      2,
	"solid":       2,
	"sturdy":      2,
	"useful":      2,
	"valuable":    2,
	"works":       2,
	"worth":       2,

	// --- weakly positive ---
	"better":   1,
	"decent":   1,
	"fine":     1,
	"ok":       1,
	"okay":     1,
	"thanks":   1,
	"thank":    1,
	"adequate": 1,

	// --- weakly negative ---
	"annoying":  -1,
	"cheap":     -1,
	"doubt":     -1,
	"issue":     -1,
	"issues":    -1,
	"mediocre":  -1,
	"meh":       -1,
	"problem":   -2,
	"problems":  -2,
	"slow":      -1,
	"waste":     -1,
	"wasted":    -1,
	"worse":     -1,

	// --- negative ---
	"bad":           -2,
	"broke":         -2,
	"broken":        -2,
	"complaint":     -2,
	"defective":     -2,
	"disappointed":  -2,
	"disappointing": -2,
	"disappointment": -2,
	"dislike":       -2,
	"expensive":     -2,
	"fail":          -2,
	"failed":        -2,
	"flawed":        -2,
	"flimsy":        -2,
	"frustrated":    -2,
	"frustrating":   -2,
	"misleading":    -2,
	"poor":          -2,
	"refund":        -2,
	"regret":        -2,
	"returned":      -2,
	"sad":           -2,
	"uncomfortable": -2,
	"unhappy":       -2,
	"unreliable":    -2,
	"upset":         -2,
	"useless":       -2,
	"worst":         -3,

	// --- strongly negative ---
	"angry":      -3,
	"awful":      -3,
	"disgusting": -3,
	"dreadful":   -3,
	"garbage":    -3,
	"hate":       -3,
	"hated":      -3,
	"hates":      -3,
	"horrible":   -3,
	"junk":       -3,
	"pathetic":   -3,
	"scam":       -4,
	"terrible":   -3,
	"unusable":   -3,
	"abysmal":    -4,
	"atrocious":  -4,
	"nightmare":  -4,
}
