package scoring

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeights_Validate(t *testing.T) {
	assert.NoError(t, DefaultWeights().Validate())
	assert.NoError(t, Weights{Semantic: 0.4, Skill: 0.6}.Validate())
	assert.Error(t, Weights{Semantic: 0.5, Skill: 0.6}.Validate())
	assert.Error(t, Weights{Semantic: -0.1, Skill: 1.1}.Validate())
	assert.Error(t, Weights{}.Validate())
}

func TestAggregate_TwoOfThreeRequiredSkills(t *testing.T) {
	resume := types.NewSkillSet("Python", "Flask", "SQL")
	job := types.NewSkillSet("Python", "Django", "SQL")

	got := Aggregate(resume, job, 70, DefaultWeights())

	assert.Equal(t, 66.7, got.SkillMatch)
	assert.Equal(t, 66.7, got.MatchRate)
	assert.Equal(t, 70.0, got.SemanticSimilarity)
	// 0.5*70 + 0.5*66.7 = 68.35 -> rounds to 68.4 at one decimal
	assert.InDelta(t, 68.4, got.OverallScore, 0.05)
}

func TestAggregate_EmptyJobSkillsIsTriviallySatisfied(t *testing.T) {
	resume := types.NewSkillSet("Python")
	job := types.NewSkillSet()

	got := Aggregate(resume, job, 40, DefaultWeights())

	assert.Equal(t, 100.0, got.SkillMatch)
	assert.Equal(t, 100.0, got.MatchRate)
	assert.Equal(t, 70.0, got.OverallScore)
}

func TestAggregate_SubsetYieldsFullMatch(t *testing.T) {
	resume := types.NewSkillSet("Python", "Django", "SQL", "Docker")
	job := types.NewSkillSet("Python", "SQL")

	got := Aggregate(resume, job, 0, DefaultWeights())
	assert.Equal(t, 100.0, got.SkillMatch)
}

func TestAggregate_MatchRateMirrorsSkillMatch(t *testing.T) {
	cases := []struct {
		resume, job []string
	}{
		{[]string{"Python"}, []string{"Python", "Go", "Rust"}},
		{nil, []string{"Go"}},
		{[]string{"Go"}, nil},
	}

	for _, c := range cases {
		got := Aggregate(types.NewSkillSet(c.resume...), types.NewSkillSet(c.job...), 50, DefaultWeights())
		assert.Equal(t, got.SkillMatch, got.MatchRate)
	}
}

func TestAggregate_BoundsHold(t *testing.T) {
	resume := types.NewSkillSet("Python")
	job := types.NewSkillSet("Python")

	for _, semantic := range []float64{-10, 0, 33.333, 50, 99.99, 100, 150} {
		got := Aggregate(resume, job, semantic, DefaultWeights())

		require.GreaterOrEqual(t, got.OverallScore, 0.0)
		require.LessOrEqual(t, got.OverallScore, 100.0)
		require.GreaterOrEqual(t, got.SemanticSimilarity, 0.0)
		require.LessOrEqual(t, got.SemanticSimilarity, 100.0)
		require.GreaterOrEqual(t, got.SkillMatch, 0.0)
		require.LessOrEqual(t, got.SkillMatch, 100.0)
	}
}

func TestAggregate_ConfigurableWeights(t *testing.T) {
	resume := types.NewSkillSet("Python")
	job := types.NewSkillSet("Python", "Go")

	// Original production split: 40% semantic, 60% skills.
	got := Aggregate(resume, job, 80, Weights{Semantic: 0.4, Skill: 0.6})
	// 0.4*80 + 0.6*50 = 62
	assert.Equal(t, 62.0, got.OverallScore)
}
