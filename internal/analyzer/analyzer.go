// Package analyzer is the engine façade: it wires the skill extractor,
// semantic similarity scorer, score aggregator, role predictor, and
// recommendation generator into the single analysis entry point.
package analyzer

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-analyzer/internal/embedding"
	"github.com/jonathan/resume-analyzer/internal/extract"
	"github.com/jonathan/resume-analyzer/internal/ingestion"
	"github.com/jonathan/resume-analyzer/internal/recommend"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
	"github.com/jonathan/resume-analyzer/internal/types"
)

// Config assembles an Analyzer. Everything is dependency-injected so tests
// can supply a minimal taxonomy and a fake embedder.
type Config struct {
	Taxonomy *taxonomy.Taxonomy
	Roles    *roles.Predictor
	Embedder embedding.Embedder
	// Weights defaults to the equal split when left zero.
	Weights scoring.Weights
}

// Analyzer scores resumes against job descriptions. It holds only immutable
// data and a stateless embedder, so concurrent Analyze calls need no
// synchronization.
type Analyzer struct {
	taxonomy  *taxonomy.Taxonomy
	extractor *extract.Extractor
	predictor *roles.Predictor
	embedder  embedding.Embedder
	weights   scoring.Weights
}

// New validates the configuration and builds an Analyzer.
func New(cfg Config) (*Analyzer, error) {
	if cfg.Taxonomy == nil {
		return nil, fmt.Errorf("taxonomy is required")
	}
	if cfg.Roles == nil {
		return nil, fmt.Errorf("role profiles are required")
	}
	if cfg.Embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}

	weights := cfg.Weights
	if weights == (scoring.Weights{}) {
		weights = scoring.DefaultWeights()
	}
	if err := weights.Validate(); err != nil {
		return nil, err
	}

	return &Analyzer{
		taxonomy:  cfg.Taxonomy,
		extractor: extract.New(cfg.Taxonomy),
		predictor: cfg.Roles,
		embedder:  cfg.Embedder,
		weights:   weights,
	}, nil
}

// Analyze scores a resume against a job description. It never fails:
// embedding trouble degrades the semantic component to zero and sets the
// Degraded flag, and empty input produces an all-zero low-confidence result.
// Identical inputs always yield identical results.
func (a *Analyzer) Analyze(ctx context.Context, resumeText, jdText string) *types.AnalysisResult {
	resumeText = ingestion.CleanText(resumeText)
	jdText = ingestion.CleanText(jdText)

	if resumeText == "" && jdText == "" {
		return lowConfidenceResult()
	}

	var (
		resumeSkills types.SkillSet
		jdSkills     types.SkillSet
		semantic     float64
		degraded     bool
	)

	// Extraction of the two documents and the embedding round-trip are
	// independent; the embedding call is the only one with real latency.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		resumeSkills = a.extractor.Extract(resumeText)
		return nil
	})
	g.Go(func() error {
		jdSkills = a.extractor.Extract(jdText)
		return nil
	})
	g.Go(func() error {
		score, err := embedding.Similarity(gctx, a.embedder, resumeText, jdText)
		if err != nil {
			// Availability beats strictness here: keep the skill-based
			// half of the analysis and flag the result.
			degraded = true
			score = 0
		}
		semantic = score
		return nil
	})
	_ = g.Wait() // the goroutines above only ever return nil

	matched := jdSkills.Intersect(resumeSkills)
	missing := jdSkills.Diff(resumeSkills)
	breakdown := scoring.Aggregate(resumeSkills, jdSkills, semantic, a.weights)

	return &types.AnalysisResult{
		Scores:         breakdown,
		ResumeSkills:   resumeSkills.Sorted(),
		JobSkills:      jdSkills.Sorted(),
		MatchedSkills:  matched,
		MissingSkills:  missing,
		Strengths:      recommend.Strengths(resumeSkills.Sorted(), matched),
		Suggestions:    recommend.SuggestSkills(resumeSkills.Sorted(), missing),
		PredictedRoles: a.predictor.Names(resumeSkills),
		Recommendation: recommend.Recommend(breakdown.OverallScore, len(missing)),
		Degraded:       degraded,
	}
}

// Categorize groups extracted skills by taxonomy category for reporting.
func (a *Analyzer) Categorize(skills []string) map[string][]string {
	return a.taxonomy.Categorize(skills)
}

// lowConfidenceResult is what both-inputs-empty produces: a well-formed,
// all-zero result instead of an error, so callers still get feedback.
func lowConfidenceResult() *types.AnalysisResult {
	return &types.AnalysisResult{
		Scores:         types.ScoreBreakdown{},
		ResumeSkills:   []string{},
		JobSkills:      []string{},
		MatchedSkills:  []string{},
		MissingSkills:  []string{},
		Strengths:      []string{},
		Suggestions:    []string{},
		PredictedRoles: []string{},
		Recommendation: recommend.Recommend(0, 0),
		LowConfidence:  true,
	}
}
