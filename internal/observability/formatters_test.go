package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/resume-analyzer/internal/jobdesc"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

func sampleResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Scores: types.ScoreBreakdown{
			OverallScore:       68.4,
			SemanticSimilarity: 70.0,
			SkillMatch:         66.7,
			MatchRate:          66.7,
		},
		MatchedSkills: []string{"Python", "SQL"},
		MissingSkills: []string{"Django"},
		Strengths:     []string{"Python", "SQL"},
		Suggestions:   []string{"Django", "Flask"},
		PredictedRoles: []string{
			"Backend Developer",
		},
		Recommendation: types.Recommendation{
			Level:   types.LevelGood,
			Message: "Good fit with room to improve.",
			Advice:  "Add Django to your resume if you have used it.",
		},
	}
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScores(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "FIT SCORE")
	assert.Contains(t, out, "68.4")
	assert.Contains(t, out, "good")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintScoresDegraded(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.Degraded = true
	p.PrintScores(result)

	assert.Contains(t, buf.String(), "Semantic scoring unavailable")
}

func TestPrintScoresNil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScores(nil)

	assert.Empty(t, buf.String())
}

func TestPrintSkills(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintSkills(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "SKILL ANALYSIS")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "Django")
}

func TestPrintGuidance(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintGuidance(sampleResult())

	out := buf.String()
	assert.Contains(t, out, "GUIDANCE")
	assert.Contains(t, out, "Backend Developer")
	assert.Contains(t, out, "Flask")
}

func TestPrintJobInsights(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobInsights(&jobdesc.Insights{
		JobTitle:           "Backend Developer",
		Seniority:          jobdesc.SenioritySenior,
		ExperienceRequired: "5+ years",
		EducationRequired:  []string{"Bachelor's Degree"},
		Responsibilities:   []string{"Design and build backend services for the platform"},
	})

	out := buf.String()
	assert.Contains(t, out, "JOB DESCRIPTION")
	assert.Contains(t, out, "Backend Developer")
	assert.Contains(t, out, "5+ years")
}

func TestPrintProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintProfile(&llm.Profile{
		Name:            "Jane Doe",
		Email:           "jane@example.com",
		YearsExperience: 7,
	})

	out := buf.String()
	assert.Contains(t, out, "CANDIDATE PROFILE")
	assert.Contains(t, out, "Jane Doe")
	assert.Contains(t, out, "(not found)")
	assert.Contains(t, out, "7 years")
}

func TestBoxLineTruncation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	result := sampleResult()
	result.Recommendation.Message = strings.Repeat("x", 120)
	p.PrintScores(result)

	assert.Contains(t, buf.String(), "...")
}
