package main

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-analyzer/internal/analyzer"
	"github.com/jonathan/resume-analyzer/internal/config"
	"github.com/jonathan/resume-analyzer/internal/embedding"
	"github.com/jonathan/resume-analyzer/internal/roles"
	"github.com/jonathan/resume-analyzer/internal/scoring"
	"github.com/jonathan/resume-analyzer/internal/taxonomy"
)

// loadConfig resolves configuration from file, environment, and defaults.
func loadConfig(path string) (*config.Config, error) {
	var cfg *config.Config
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		cfg = &config.Config{}
	}

	cfg.FromEnv()
	merged := cfg.MergeWithDefaults(config.Defaults())
	if err := merged.Validate(); err != nil {
		return nil, err
	}
	return &merged, nil
}

// buildEmbedder selects the Gemini backend when an API key is configured
// and the local term-frequency embedder otherwise. The returned closer is
// non-nil only for backends that hold a connection.
func buildEmbedder(ctx context.Context, cfg *config.Config) (embedding.Embedder, func(), error) {
	if cfg.APIKey == "" {
		return embedding.NewTermFrequency(), nil, nil
	}

	gem, err := embedding.NewGemini(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create embedding client: %w", err)
	}
	return gem, func() { _ = gem.Close() }, nil
}

// buildAnalyzer assembles the scoring engine from the configuration.
func buildAnalyzer(cfg *config.Config, embedder embedding.Embedder) (*analyzer.Analyzer, error) {
	tax, err := loadTaxonomy(cfg)
	if err != nil {
		return nil, err
	}

	predictor, err := loadRoles(cfg)
	if err != nil {
		return nil, err
	}

	return analyzer.New(analyzer.Config{
		Taxonomy: tax,
		Roles:    predictor,
		Embedder: embedder,
		Weights: scoring.Weights{
			Semantic: cfg.SemanticWeight,
			Skill:    cfg.SkillWeight,
		},
	})
}

func loadTaxonomy(cfg *config.Config) (*taxonomy.Taxonomy, error) {
	if cfg.SkillsFile != "" {
		return taxonomy.LoadFile(cfg.SkillsFile)
	}
	return taxonomy.Default()
}

func loadRoles(cfg *config.Config) (*roles.Predictor, error) {
	if cfg.RolesFile != "" {
		return roles.LoadFile(cfg.RolesFile)
	}
	return roles.Default()
}
