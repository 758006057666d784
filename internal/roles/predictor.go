// Package roles ranks likely-fit job titles by comparing a resume's skill
// set against curated per-role reference skill profiles.
package roles

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	_ "embed"

	"github.com/jonathan/resume-analyzer/internal/dataset"
	"github.com/jonathan/resume-analyzer/internal/types"
)

//go:embed schema.json
var schemaJSON string

//go:embed data/role_profiles.json
var defaultData []byte

const sourceName = "role profiles"

const (
	// DefaultTopK is how many roles a prediction returns at most.
	DefaultTopK = 5
	// DefaultMinOverlap filters out roles whose reference profile barely
	// intersects the resume; below this ratio a suggestion is noise.
	DefaultMinOverlap = 0.2
)

// Profile is one job title with its reference skill set.
type Profile struct {
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
}

// Match is a predicted role with its overlap ratio in [0, 1].
type Match struct {
	Role    string  `json:"role"`
	Overlap float64 `json:"overlap"`
}

// Predictor holds the immutable role-profile table. Safe for concurrent use.
type Predictor struct {
	profiles   []Profile
	TopK       int
	MinOverlap float64
}

// Default loads the embedded role-profile dataset.
func Default() (*Predictor, error) {
	return Load(defaultData)
}

// LoadFile loads role profiles from a JSON file on disk.
func LoadFile(path string) (*Predictor, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &dataset.LoadError{Source: sourceName, Reason: "cannot read file", Cause: err}
	}
	return Load(data)
}

// Load validates and decodes a role-profile document. Duplicate role names
// are rejected.
func Load(data []byte) (*Predictor, error) {
	if err := dataset.Validate(schemaJSON, data, sourceName); err != nil {
		return nil, err
	}

	var profiles []Profile
	if err := json.Unmarshal(data, &profiles); err != nil {
		return nil, &dataset.LoadError{Source: sourceName, Reason: "cannot decode", Cause: err}
	}

	seen := make(map[string]struct{}, len(profiles))
	for _, p := range profiles {
		key := strings.ToLower(p.Role)
		if _, dup := seen[key]; dup {
			return nil, &dataset.LoadError{Source: sourceName, Reason: "duplicate role " + p.Role}
		}
		seen[key] = struct{}{}
	}

	return &Predictor{
		profiles:   profiles,
		TopK:       DefaultTopK,
		MinOverlap: DefaultMinOverlap,
	}, nil
}

// Predict ranks roles by the share of their reference skills the resume
// covers. Roles below the minimum overlap are dropped; ties are broken by
// role name so identical inputs always produce identical output. Returns an
// empty slice when nothing clears the threshold.
func (p *Predictor) Predict(resumeSkills types.SkillSet) []Match {
	matches := make([]Match, 0, len(p.profiles))
	for _, prof := range p.profiles {
		overlap := p.overlap(resumeSkills, prof)
		if overlap >= p.MinOverlap {
			matches = append(matches, Match{Role: prof.Role, Overlap: overlap})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Overlap != matches[j].Overlap {
			return matches[i].Overlap > matches[j].Overlap
		}
		return matches[i].Role < matches[j].Role
	})

	if len(matches) > p.TopK {
		matches = matches[:p.TopK]
	}
	return matches
}

// Names is Predict reduced to the ranked role titles.
func (p *Predictor) Names(resumeSkills types.SkillSet) []string {
	matches := p.Predict(resumeSkills)
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.Role
	}
	return names
}

func (p *Predictor) overlap(resumeSkills types.SkillSet, prof Profile) float64 {
	if len(prof.Skills) == 0 {
		return 0
	}
	hits := 0
	for _, s := range prof.Skills {
		if resumeSkills.Has(s) {
			hits++
		}
	}
	return float64(hits) / float64(len(prof.Skills))
}

// Len returns the number of loaded role profiles.
func (p *Predictor) Len() int {
	return len(p.profiles)
}
