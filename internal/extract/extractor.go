// Package extract scans free text for canonical skills using the taxonomy's
// alias index. Matching is a two-stage process: exact alias lookup over
// tokens and n-grams first, then a bounded edit-distance fallback that
// tolerates one-character typos without ever inventing a skill the taxonomy
// does not know.
package extract

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// maxGram is the longest alias phrase we look for ("machine learning",
// "ruby on rails").
const maxGram = 3

// Extractor extracts canonical skill sets from documents. It holds only a
// reference to the immutable taxonomy and is safe for concurrent use.
type Extractor struct {
	tax *taxonomy.Taxonomy
}

// New returns an Extractor backed by the given taxonomy.
func New(tax *taxonomy.Taxonomy) *Extractor {
	return &Extractor{tax: tax}
}

// Extract returns the set of canonical skills mentioned in text. Matching is
// case-insensitive and order-independent; empty or whitespace-only input
// yields an empty set.
func (e *Extractor) Extract(text string) types.SkillSet {
	skills := make(types.SkillSet)

	tokens := tokenize(text)
	if len(tokens) == 0 {
		return skills
	}

	var unmatched []string
	for _, gram := range ngrams(tokens, maxGram) {
		if names := e.tax.LookupCandidates(gram); names != nil {
			for _, name := range names {
				skills.Add(name)
			}
			continue
		}
		if utf8.RuneCountInString(gram) > minFuzzyLength {
			unmatched = append(unmatched, gram)
		}
	}

	// Fuzzy fallback for near-misses the exact pass did not cover. Lower
	// confidence than an exact hit, and constrained to known aliases.
	for _, gram := range unmatched {
		for _, name := range e.fuzzyCandidates(gram) {
			skills.Add(name)
		}
	}

	return skills
}

// fuzzyCandidates returns canonical names whose alias is within the edit
// distance bound of the candidate string.
func (e *Extractor) fuzzyCandidates(gram string) []string {
	var out []string
	for _, alias := range e.tax.Aliases() {
		if utf8.RuneCountInString(alias.Form) <= minFuzzyLength {
			continue
		}
		if withinEditDistance(gram, alias.Form, maxEditDistance) {
			out = append(out, alias.Canonical)
		}
	}
	return out
}

// tokenize lowercases the text, converts punctuation to word boundaries, and
// splits on whitespace. Characters that occur inside skill names (+, #, .,
// /, -) are preserved so that aliases like "c++", "node.js" and "ci/cd"
// survive as single tokens.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)

	var sb strings.Builder
	sb.Grow(len(lowered))
	for _, r := range lowered {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
		case r == '+' || r == '#' || r == '.' || r == '/' || r == '-':
			sb.WriteRune(r)
		default:
			sb.WriteRune(' ')
		}
	}

	fields := strings.Fields(sb.String())
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		// Trim sentence punctuation from the edges but keep interior
		// occurrences ("node.js." -> "node.js"); '+' and '#' are part of
		// language names and stay.
		f = strings.Trim(f, "./-")
		if f != "" {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

// ngrams produces every n-gram of the token stream for n=1..max, joined by a
// single space.
func ngrams(tokens []string, max int) []string {
	var out []string
	for n := 1; n <= max; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
