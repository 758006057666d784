// Package recommend turns the aggregated score and skill gap into a tiered
// verdict, a strengths summary, and a prioritized list of skills to learn.
package recommend

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// Score bands for the recommendation tiers. The lower bound of each band is
// inclusive: 80.0 is excellent, 79.9 is good.
const (
	excellentThreshold = 80
	goodThreshold      = 60
)

const maxSuggestions = 8

// Recommend classifies an overall score into a fixed verdict. It is a total
// function: every numeric input maps to a well-formed recommendation. When
// skills are missing, a gap note is appended regardless of tier.
func Recommend(overallScore float64, missingSkillCount int) types.Recommendation {
	var rec types.Recommendation

	switch {
	case overallScore >= excellentThreshold:
		rec = types.Recommendation{
			Level:   types.LevelExcellent,
			Message: "Excellent match! Your resume is highly aligned with this job description.",
			Advice:  "You should definitely apply. Make sure to highlight your matching skills in your cover letter.",
		}
	case overallScore >= goodThreshold:
		rec = types.Recommendation{
			Level:   types.LevelGood,
			Message: "Good match! Your profile shows good alignment with the job requirements.",
			Advice:  "Consider emphasizing your matched skills and learning the missing skills if possible.",
		}
	default:
		rec = types.Recommendation{
			Level:   types.LevelNeedsWork,
			Message: "Needs work. There is a significant gap between your profile and the job requirements.",
			Advice:  "Focus on building the missing skills through projects, courses, and certifications.",
		}
	}

	if missingSkillCount > 0 {
		noun := "skills"
		if missingSkillCount == 1 {
			noun = "skill"
		}
		rec.Advice += fmt.Sprintf(" The job description lists %d %s not found on your resume.", missingSkillCount, noun)
	}

	return rec
}

// skillRelations maps a known skill to skills commonly learned alongside it.
// Keys are lowercase canonical names.
var skillRelations = map[string][]string{
	"python":           {"Django", "Flask", "FastAPI", "Pandas", "NumPy"},
	"javascript":       {"React", "Node.js", "TypeScript", "Vue.js"},
	"typescript":       {"React", "Next.js", "Node.js"},
	"machine learning": {"TensorFlow", "PyTorch", "Scikit-learn", "Deep Learning"},
	"deep learning":    {"PyTorch", "TensorFlow", "NLP", "Computer Vision"},
	"react":            {"Next.js", "TypeScript", "Node.js"},
	"aws":              {"Docker", "Kubernetes", "Terraform", "CI/CD"},
	"docker":           {"Kubernetes", "CI/CD", "Terraform"},
	"sql":              {"PostgreSQL", "MySQL", "Data Analysis"},
	"go":               {"Docker", "Kubernetes", "PostgreSQL", "Microservices"},
}

// SuggestSkills returns a prioritized learning list: missing job-description
// skills first, then skills related to what the candidate already knows.
// Skills already on the resume are excluded and the list is capped.
func SuggestSkills(current, missing []string) []string {
	known := make(map[string]struct{}, len(current))
	for _, s := range current {
		known[strings.ToLower(s)] = struct{}{}
	}

	out := []string{}
	seen := make(map[string]struct{})
	add := func(s string) {
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			return
		}
		if _, have := known[key]; have {
			return
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	// The skill gap is the most actionable signal, so it leads.
	for _, s := range missing {
		add(s)
	}

	var related []string
	for _, s := range current {
		related = append(related, skillRelations[strings.ToLower(s)]...)
	}
	sort.Strings(related)
	for _, s := range related {
		add(s)
	}

	if len(out) > maxSuggestions {
		out = out[:maxSuggestions]
	}
	return out
}

// highValueSkills are broadly in-demand skills worth surfacing as strengths
// even when the job description does not ask for them. Lowercase canonical
// names.
var highValueSkills = map[string]struct{}{
	"machine learning": {},
	"deep learning":    {},
	"aws":              {},
	"kubernetes":       {},
	"docker":           {},
	"tensorflow":       {},
	"pytorch":          {},
	"react":            {},
	"node.js":          {},
	"python":           {},
	"java":             {},
	"go":               {},
}

const maxStrengths = 10

// Strengths surfaces the resume skills most worth emphasizing: everything
// the job asked for and matched, plus high-value skills the candidate brings
// beyond the posting. Sorted, capped, deterministic.
func Strengths(resumeSkills, matched []string) []string {
	out := make([]string, 0, len(matched))
	seen := make(map[string]struct{})

	for _, s := range matched {
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	for _, s := range resumeSkills {
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		if _, hv := highValueSkills[key]; !hv {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}

	sort.Strings(out)
	if len(out) > maxStrengths {
		out = out[:maxStrengths]
	}
	return out
}
