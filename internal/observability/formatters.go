// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-analyzer/internal/jobdesc"
	"github.com/jonathan/resume-analyzer/internal/llm"
	"github.com/jonathan/resume-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for the analyze command
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

func writeSkillList(sb *strings.Builder, heading string, skills []string, limit int) {
	if len(skills) == 0 {
		return
	}
	sb.WriteString(heading + "\n")
	count := min(len(skills), limit)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", skills[i]))
	}
	if len(skills) > limit {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(skills)-limit))
	}
	sb.WriteString("\n")
}

// PrintScores outputs the score breakdown and recommendation.
func (p *Printer) PrintScores(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall Score:       %.1f / 100\n", result.Scores.OverallScore))
	sb.WriteString(fmt.Sprintf("Semantic Similarity: %.1f\n", result.Scores.SemanticSimilarity))
	sb.WriteString(fmt.Sprintf("Skill Match:         %.1f\n", result.Scores.SkillMatch))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Verdict: %s\n", result.Recommendation.Level))
	sb.WriteString(result.Recommendation.Message)
	if result.Degraded {
		sb.WriteString("\n\n⚠ Semantic scoring unavailable; score is skill-based")
	}
	if result.LowConfidence {
		sb.WriteString("\n\n⚠ Low confidence: not enough text to analyze")
	}

	p.printBox("FIT SCORE", sb.String())
}

// PrintSkills outputs matched, missing, and resume-only skills.
func (p *Printer) PrintSkills(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	writeSkillList(&sb, "Matched:", result.MatchedSkills, maxItemsToShow)
	writeSkillList(&sb, "Missing from resume:", result.MissingSkills, maxItemsToShow)
	writeSkillList(&sb, "Strengths:", result.Strengths, 5)
	if sb.Len() == 0 {
		sb.WriteString("No skills detected")
	}

	p.printBox("SKILL ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGuidance outputs suggestions, predicted roles, and advice.
func (p *Printer) PrintGuidance(result *types.AnalysisResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	writeSkillList(&sb, "Suggested skills to add:", result.Suggestions, maxItemsToShow)
	writeSkillList(&sb, "Roles your resume fits:", result.PredictedRoles, 5)
	if result.Recommendation.Advice != "" {
		sb.WriteString("Advice:\n")
		sb.WriteString(fmt.Sprintf("  %s\n", result.Recommendation.Advice))
	}
	if sb.Len() == 0 {
		sb.WriteString("No guidance available")
	}

	p.printBox("GUIDANCE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobInsights outputs the structured job description breakdown.
func (p *Printer) PrintJobInsights(insights *jobdesc.Insights) {
	if insights == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Title:      %s\n", insights.JobTitle))
	sb.WriteString(fmt.Sprintf("Seniority:  %s\n", insights.Seniority))
	sb.WriteString(fmt.Sprintf("Experience: %s\n", valueOr(insights.ExperienceRequired, "Not specified")))
	sb.WriteString(fmt.Sprintf("Education:  %s\n", valueOr(strings.Join(insights.EducationRequired, ", "), "Not specified")))

	if len(insights.Responsibilities) > 0 {
		sb.WriteString("\nResponsibilities:\n")
		for _, r := range insights.Responsibilities {
			if len(r) > 50 {
				r = r[:47] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s\n", r))
		}
	}

	p.printBox("JOB DESCRIPTION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintProfile outputs the contact profile extracted from the resume.
func (p *Printer) PrintProfile(profile *llm.Profile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Name:     %s\n", valueOr(profile.Name, "(not found)")))
	sb.WriteString(fmt.Sprintf("Email:    %s\n", valueOr(profile.Email, "(not found)")))
	sb.WriteString(fmt.Sprintf("Phone:    %s\n", valueOr(profile.Phone, "(not found)")))
	sb.WriteString(fmt.Sprintf("Location: %s", valueOr(profile.Location, "(not found)")))
	if profile.YearsExperience > 0 {
		sb.WriteString(fmt.Sprintf("\nExperience: %d years", profile.YearsExperience))
	}

	p.printBox("CANDIDATE PROFILE", sb.String())
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
