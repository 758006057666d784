package llm

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// Profile is the contact/summary information extracted from a resume.
// Fields the model could not find stay empty.
type Profile struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Location        string `json:"location"`
	Summary         string `json:"summary"`
	YearsExperience int    `json:"total_years_experience"`
}

// profileSchema validates the model's output before it is trusted.
const profileSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"properties": {
		"name": {"type": ["string", "null"]},
		"email": {"type": ["string", "null"]},
		"phone": {"type": ["string", "null"]},
		"location": {"type": ["string", "null"]},
		"summary": {"type": ["string", "null"]},
		"total_years_experience": {"type": ["integer", "null"]}
	},
	"additionalProperties": false
}`

const profilePrompt = `Extract the candidate's contact information from this resume and return JSON:
{
	"name": "string or null",
	"email": "string or null",
	"phone": "string or null",
	"location": "string or null",
	"summary": "1-2 sentence professional summary or null",
	"total_years_experience": 0
}
Return JSON only. Use null for fields you cannot find.

Resume:
%s`

// ExtractProfile asks the model for the candidate's contact details and
// validates the response against the profile schema. A failure here never
// blocks the scoring analysis; callers treat the profile as optional.
func ExtractProfile(ctx context.Context, client Client, resumeText string) (*Profile, error) {
	raw, err := client.GenerateJSON(ctx, fmt.Sprintf(profilePrompt, resumeText))
	if err != nil {
		return nil, fmt.Errorf("profile extraction failed: %w", err)
	}
	return ParseProfile(raw)
}

// ParseProfile validates and decodes a profile JSON document.
func ParseProfile(raw string) (*Profile, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(profileSchema),
		gojsonschema.NewStringLoader(raw),
	)
	if err != nil {
		return nil, fmt.Errorf("profile response is not valid JSON: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("profile response does not match schema: %v", result.Errors())
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &p, nil
}
