// Package jobdesc derives structural insights from a job-description text:
// title, seniority, required experience and education, and key
// responsibilities. These are heuristics for reporting; they carry no
// scoring weight.
package jobdesc

import (
	"regexp"
	"strings"
)

// SeniorityLevel buckets a posting by the experience it expects.
type SeniorityLevel string

const (
	SeniorityEntry  SeniorityLevel = "Entry"
	SeniorityMid    SeniorityLevel = "Mid"
	SenioritySenior SeniorityLevel = "Senior"
	SeniorityExpert SeniorityLevel = "Expert"
)

// NotSpecified is used when a field cannot be inferred from the text.
const NotSpecified = "Not specified"

// Insights is the structured view of a job description.
type Insights struct {
	JobTitle           string         `json:"job_title"`
	Seniority          SeniorityLevel `json:"seniority_level"`
	ExperienceRequired string         `json:"experience_required"`
	EducationRequired  []string       `json:"education_required"`
	Responsibilities   []string       `json:"responsibilities"`
}

var titleKeywords = []string{
	"engineer", "developer", "scientist", "analyst", "manager",
	"architect", "consultant", "specialist", "lead",
}

// seniorityKeywords are checked in order; the first bucket with a hit wins.
var seniorityKeywords = []struct {
	level    SeniorityLevel
	keywords []string
}{
	{SeniorityExpert, []string{"expert", "architect", "director", "head of", "10+ years"}},
	{SenioritySenior, []string{"senior", "lead", "principal", "5+ years", "7+ years"}},
	{SeniorityEntry, []string{"junior", "entry level", "graduate", "fresher", "intern", "0-2 years"}},
	{SeniorityMid, []string{"mid level", "mid-level", "intermediate", "2-5 years", "3-5 years"}},
}

var educationKeywords = []string{
	"bachelor", "master", "phd", "degree", "b.tech", "m.tech", "diploma",
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\d+\s*-\s*\d+\s*years?`),
	regexp.MustCompile(`\d+\+?\s*years?\s+(?:of\s+)?experience`),
	regexp.MustCompile(`experience[:\s]+\d+\+?\s*years?`),
}

var responsibilityHeadings = []string{
	"responsibilities", "what you will do", "what you'll do", "your role", "duties",
}

const maxResponsibilities = 5

// Process extracts all insights from a job description. Total function:
// unparseable fields fall back to NotSpecified / defaults rather than
// erroring.
func Process(jdText string) *Insights {
	return &Insights{
		JobTitle:           Title(jdText),
		Seniority:          Seniority(jdText),
		ExperienceRequired: ExperienceRequired(jdText),
		EducationRequired:  EducationRequired(jdText),
		Responsibilities:   Responsibilities(jdText),
	}
}

// Title scans the first few lines for a line that looks like a job title.
func Title(jdText string) string {
	lines := strings.Split(strings.TrimSpace(jdText), "\n")
	limit := 5
	if len(lines) < limit {
		limit = len(lines)
	}
	for _, line := range lines[:limit] {
		lower := strings.ToLower(line)
		for _, kw := range titleKeywords {
			if strings.Contains(lower, kw) {
				return strings.TrimSpace(line)
			}
		}
	}
	return NotSpecified
}

// Seniority infers the expected level, defaulting to Mid when the posting
// gives no signal.
func Seniority(jdText string) SeniorityLevel {
	lower := strings.ToLower(jdText)
	for _, bucket := range seniorityKeywords {
		for _, kw := range bucket.keywords {
			if strings.Contains(lower, kw) {
				return bucket.level
			}
		}
	}
	return SeniorityMid
}

// ExperienceRequired returns the first years-of-experience phrase found.
func ExperienceRequired(jdText string) string {
	lower := strings.ToLower(jdText)
	for _, pat := range experiencePatterns {
		if m := pat.FindString(lower); m != "" {
			return m
		}
	}
	return NotSpecified
}

// EducationRequired lists the education keywords the posting mentions.
func EducationRequired(jdText string) []string {
	lower := strings.ToLower(jdText)
	var found []string
	for _, kw := range educationKeywords {
		if strings.Contains(lower, kw) {
			found = append(found, titleCase(kw))
		}
	}
	if len(found) == 0 {
		return []string{NotSpecified}
	}
	return found
}

// titleCase uppercases the first letter of an ASCII keyword.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// Responsibilities pulls bullet items from a responsibilities-like section.
func Responsibilities(jdText string) []string {
	lower := strings.ToLower(jdText)

	start := -1
	for _, heading := range responsibilityHeadings {
		if idx := strings.Index(lower, heading); idx >= 0 {
			start = idx
			break
		}
	}
	if start < 0 {
		return nil
	}

	section := jdText[start:]
	// The section ends at the next requirements-like heading or a double
	// blank line.
	for _, terminator := range []string{"requirements", "qualifications", "\n\n\n"} {
		if idx := strings.Index(strings.ToLower(section)[1:], terminator); idx >= 0 {
			section = section[:idx+1]
			break
		}
	}

	var items []string
	for _, line := range strings.Split(section, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*•· \t")
		if len(line) > 20 {
			items = append(items, line)
		}
		if len(items) == maxResponsibilities {
			break
		}
	}
	return items
}
