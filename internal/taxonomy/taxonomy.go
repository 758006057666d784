// Package taxonomy holds the curated skill taxonomy: canonical skill names,
// their surface-form aliases, and reporting categories. The taxonomy is
// loaded once at startup and is read-only afterwards, so it is safe for
// unsynchronized concurrent use.
package taxonomy

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	_ "embed"

	"github.com/jonathan/resume-analyzer/internal/dataset"
)

//go:embed schema.json
var schemaJSON string

//go:embed data/skills.json
var defaultData []byte

const sourceName = "skill taxonomy"

// Entry is one canonical skill with its matching aliases.
type Entry struct {
	Name     string   `json:"name"`
	Aliases  []string `json:"aliases"`
	Category string   `json:"-"`
}

// Alias is one lowercase surface form pointing at its canonical skill.
type Alias struct {
	Form      string
	Canonical string
}

// Taxonomy is the immutable alias index built from the data source.
type Taxonomy struct {
	entries []Entry
	byAlias map[string][]string // lowercase form -> canonical names
	aliases []Alias             // every form once, sorted for determinism
}

// Default loads the embedded taxonomy dataset.
func Default() (*Taxonomy, error) {
	return Load(defaultData)
}

// LoadFile loads a taxonomy from a JSON file on disk.
func LoadFile(path string) (*Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &dataset.LoadError{Source: sourceName, Reason: "cannot read file", Cause: err}
	}
	return Load(data)
}

// Load validates and decodes a taxonomy document. The source must conform to
// the taxonomy schema and canonical names must be unique across categories.
func Load(data []byte) (*Taxonomy, error) {
	if err := dataset.Validate(schemaJSON, data, sourceName); err != nil {
		return nil, err
	}

	var raw map[string][]Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &dataset.LoadError{Source: sourceName, Reason: "cannot decode", Cause: err}
	}

	t := &Taxonomy{byAlias: make(map[string][]string)}
	seen := make(map[string]string) // lowercase canonical -> category it came from

	categories := make([]string, 0, len(raw))
	for cat := range raw {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	for _, cat := range categories {
		for _, e := range raw[cat] {
			key := strings.ToLower(e.Name)
			if prev, dup := seen[key]; dup {
				return nil, &dataset.LoadError{
					Source: sourceName,
					Reason: "duplicate canonical name " + e.Name + " (in " + prev + " and " + cat + ")",
				}
			}
			seen[key] = cat

			e.Category = cat
			t.entries = append(t.entries, e)

			forms := make(map[string]struct{}, len(e.Aliases)+1)
			forms[key] = struct{}{} // the canonical name always matches itself
			for _, a := range e.Aliases {
				forms[strings.ToLower(strings.TrimSpace(a))] = struct{}{}
			}
			for form := range forms {
				t.byAlias[form] = append(t.byAlias[form], e.Name)
				t.aliases = append(t.aliases, Alias{Form: form, Canonical: e.Name})
			}
		}
	}

	sort.Slice(t.aliases, func(i, j int) bool {
		if t.aliases[i].Form != t.aliases[j].Form {
			return t.aliases[i].Form < t.aliases[j].Form
		}
		return t.aliases[i].Canonical < t.aliases[j].Canonical
	})
	for _, names := range t.byAlias {
		sort.Strings(names)
	}

	return t, nil
}

// LookupCandidates returns the canonical names whose alias list contains the
// given token, matched case-insensitively. Returns nil when nothing matches.
func (t *Taxonomy) LookupCandidates(token string) []string {
	names := t.byAlias[strings.ToLower(strings.TrimSpace(token))]
	if len(names) == 0 {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Aliases returns every known surface form with its canonical skill, in a
// deterministic order. Used by the fuzzy-matching fallback in extraction.
func (t *Taxonomy) Aliases() []Alias {
	return t.aliases
}

// Category returns the reporting category of a canonical skill, or "" when
// the skill is unknown.
func (t *Taxonomy) Category(name string) string {
	for _, e := range t.entries {
		if strings.EqualFold(e.Name, name) {
			return e.Category
		}
	}
	return ""
}

// Categorize groups canonical skill names by their taxonomy category.
// Unknown names are skipped. Categories are for reporting only and carry
// no scoring weight.
func (t *Taxonomy) Categorize(skills []string) map[string][]string {
	out := make(map[string][]string)
	for _, s := range skills {
		if cat := t.Category(s); cat != "" {
			out[cat] = append(out[cat], s)
		}
	}
	for _, names := range out {
		sort.Strings(names)
	}
	return out
}

// Len returns the number of canonical skills in the taxonomy.
func (t *Taxonomy) Len() int {
	return len(t.entries)
}
