package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalysisResultJSON(t *testing.T) {
	result := AnalysisResult{
		Scores: ScoreBreakdown{
			OverallScore:       68.4,
			SemanticSimilarity: 70.0,
			SkillMatch:         66.7,
			MatchRate:          66.7,
		},
		ResumeSkills:  []string{"Python", "SQL"},
		JobSkills:     []string{"Django", "Python", "SQL"},
		MatchedSkills: []string{"Python", "SQL"},
		MissingSkills: []string{"Django"},
		Strengths:     []string{"Python"},
		Suggestions:   []string{"Django"},
		Recommendation: Recommendation{
			Level:   LevelGood,
			Message: "Good fit.",
			Advice:  "Learn Django.",
		},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	body := string(data)
	assert.Contains(t, body, `"overall_score":68.4`)
	assert.Contains(t, body, `"match_rate":66.7`)
	assert.Contains(t, body, `"jd_skills":["Django","Python","SQL"]`)
	assert.Contains(t, body, `"level":"good"`)

	var decoded AnalysisResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, result, decoded)
}

func TestEmptySkillListsSerializeAsArrays(t *testing.T) {
	result := AnalysisResult{
		MatchedSkills: []string{},
		MissingSkills: []string{},
	}

	data, err := json.Marshal(result)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"matched_skills":[]`)
	assert.Contains(t, string(data), `"missing_skills":[]`)
}

func TestRecommendationLevels(t *testing.T) {
	assert.Equal(t, RecommendationLevel("excellent"), LevelExcellent)
	assert.Equal(t, RecommendationLevel("good"), LevelGood)
	assert.Equal(t, RecommendationLevel("needs-work"), LevelNeedsWork)
}
