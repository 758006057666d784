package types

import "sort"

// SkillSet is a set of canonical skill names extracted from one document.
// Membership is keyed by the canonical name exactly as it appears in the
// taxonomy; callers should not insert free-form strings.
type SkillSet map[string]struct{}

// NewSkillSet builds a SkillSet from a list of canonical names.
func NewSkillSet(names ...string) SkillSet {
	s := make(SkillSet, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts a canonical name into the set. Empty names are ignored.
func (s SkillSet) Add(name string) {
	if name == "" {
		return
	}
	s[name] = struct{}{}
}

// Has reports whether the set contains the given canonical name.
func (s SkillSet) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Intersect returns the canonical names present in both sets, sorted.
// The result is never nil so it serializes as an empty JSON array.
func (s SkillSet) Intersect(other SkillSet) []string {
	out := []string{}
	for name := range s {
		if other.Has(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Diff returns the canonical names present in s but absent from other,
// sorted. Never nil.
func (s SkillSet) Diff(other SkillSet) []string {
	out := []string{}
	for name := range s {
		if !other.Has(name) {
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}

// Sorted returns all members in lexical order.
func (s SkillSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for name := range s {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of skills in the set.
func (s SkillSet) Len() int {
	return len(s)
}
