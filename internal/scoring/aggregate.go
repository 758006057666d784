// Package scoring combines the skill-overlap ratio and the semantic
// similarity figure into the final weighted score breakdown.
package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Weights controls the split between the semantic and skill components of
// the overall score. The two weights must sum to 1 so deployments can tune
// the balance without code changes.
type Weights struct {
	Semantic float64 `json:"semantic"`
	Skill    float64 `json:"skill"`
}

// DefaultWeights is an equal split between semantic similarity and skill
// match.
func DefaultWeights() Weights {
	return Weights{Semantic: 0.5, Skill: 0.5}
}

// Validate checks that both weights are in [0, 1] and sum to 1.
func (w Weights) Validate() error {
	if w.Semantic < 0 || w.Semantic > 1 || w.Skill < 0 || w.Skill > 1 {
		return fmt.Errorf("weights must be in [0, 1], got semantic=%v skill=%v", w.Semantic, w.Skill)
	}
	if math.Abs(w.Semantic+w.Skill-1) > 1e-9 {
		return fmt.Errorf("weights must sum to 1, got %v", w.Semantic+w.Skill)
	}
	return nil
}

// Aggregate computes the score breakdown from the two extracted skill sets
// and the semantic similarity figure. When the job description requires no
// skills, the skill match is trivially 100. All outputs are clamped to
// [0, 100] after rounding to guard against floating-point drift.
func Aggregate(resumeSkills, jobSkills types.SkillSet, semanticScore float64, w Weights) types.ScoreBreakdown {
	skillMatch := 100.0
	if jobSkills.Len() > 0 {
		matched := len(jobSkills.Intersect(resumeSkills))
		skillMatch = 100 * float64(matched) / float64(jobSkills.Len())
	}

	semantic := clamp(round1(semanticScore))
	skill := clamp(round1(skillMatch))
	overall := clamp(round1(w.Semantic*semantic + w.Skill*skill))

	return types.ScoreBreakdown{
		OverallScore:       overall,
		SemanticSimilarity: semantic,
		SkillMatch:         skill,
		MatchRate:          skill,
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
