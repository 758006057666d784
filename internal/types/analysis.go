package types

// RecommendationLevel classifies the overall fit of a resume against a job.
type RecommendationLevel string

const (
	LevelExcellent RecommendationLevel = "excellent"
	LevelGood      RecommendationLevel = "good"
	LevelNeedsWork RecommendationLevel = "needs-work"
)

// ScoreBreakdown holds the individual scoring components of an analysis.
// All values are percentages in [0, 100]. OverallScore is derived from the
// weighted combination of SemanticSimilarity and SkillMatch and is never
// set independently.
type ScoreBreakdown struct {
	OverallScore       float64 `json:"overall_score"`
	SemanticSimilarity float64 `json:"semantic_similarity"`
	SkillMatch         float64 `json:"skill_match"`
	// MatchRate mirrors SkillMatch. The duplication is intentional: it keeps
	// the "rate" display semantics decoupled from the "match" display
	// semantics so the two can diverge later without a contract change.
	MatchRate float64 `json:"match_rate"`
}

// Recommendation is the tiered textual verdict derived from the overall score.
type Recommendation struct {
	Level   RecommendationLevel `json:"level"`
	Message string              `json:"message"`
	Advice  string              `json:"advice"`
}

// AnalysisResult is the complete output of a resume/job-description analysis.
// It is constructed once per request and never mutated afterwards; all fields
// are plain values safe for direct serialization.
type AnalysisResult struct {
	Scores ScoreBreakdown `json:"scores"`

	ResumeSkills  []string `json:"resume_skills"`
	JobSkills     []string `json:"jd_skills"`
	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
	Strengths     []string `json:"strengths"`
	Suggestions   []string `json:"suggestions"`

	PredictedRoles []string       `json:"predicted_roles"`
	Recommendation Recommendation `json:"recommendation"`

	// Degraded is set when the embedding backend failed and the semantic
	// component fell back to zero. The rest of the result is still valid.
	Degraded bool `json:"degraded"`
	// LowConfidence is set when both input texts were empty and the result
	// carries no signal.
	LowConfidence bool `json:"low_confidence"`
}
