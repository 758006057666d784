// Package ingestion prepares input documents for analysis: cleaning
// already-extracted plain text and fetching job postings from URLs.
// File-format extraction (PDF, DOCX) is deliberately not handled here;
// callers supply decodable text.
package ingestion

import (
	"fmt"
	"os"
	"regexp"
	"strings"
)

var spaceRun = regexp.MustCompile(`\s+`)

// CleanText normalizes text before it reaches the scoring engine: line
// endings become LF, runs of spaces collapse, and excessive blank lines are
// squeezed. Structure (line breaks, bullet markers) is preserved so the
// embedding input still reads like a document.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		line = spaceRun.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = squeezeBlankLines(result)
	return strings.TrimSpace(result)
}

// squeezeBlankLines reduces runs of blank lines to at most one.
func squeezeBlankLines(s string) string {
	for strings.Contains(s, "\n\n\n") {
		s = strings.ReplaceAll(s, "\n\n\n", "\n\n")
	}
	return s
}

// ReadTextFile reads a plain-text document from disk and cleans it.
func ReadTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return CleanText(string(data)), nil
}
