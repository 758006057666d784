package extract

// maxEditDistance bounds the fuzzy alias match: one-character typos only.
const maxEditDistance = 1

// minFuzzyLength is the shortest candidate eligible for fuzzy matching.
// Short tokens produce too many false positives at edit distance 1
// ("java" vs "lava"), so only candidates longer than this are considered.
const minFuzzyLength = 4

// withinEditDistance reports whether the Levenshtein distance between a and b
// is at most max. It bails out early once the bound can no longer be met.
func withinEditDistance(a, b string, max int) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}
	if len(rb)-len(ra) > max {
		return false
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)
	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j
		best := curr[0]
		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[i] = min3(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
			if curr[i] < best {
				best = curr[i]
			}
		}
		if best > max {
			return false
		}
		prev, curr = curr, prev
	}

	return prev[len(ra)] <= max
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
