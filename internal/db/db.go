// Package db stores analysis history in PostgreSQL. The store is optional:
// the engine and API run fully without it. Only derived results are
// persisted, never the submitted documents.
package db

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-analyzer/internal/types"
)

// DB wraps a PostgreSQL connection pool.
type DB struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool and verifies it.
func Connect(ctx context.Context, databaseURL string) (*DB, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{pool: pool}, nil
}

// Close closes the connection pool.
func (db *DB) Close() {
	if db.pool != nil {
		db.pool.Close()
	}
}

// AnalysisRecord is one stored analysis run.
type AnalysisRecord struct {
	ID                  uuid.UUID            `json:"id"`
	OverallScore        float64              `json:"overall_score"`
	SemanticSimilarity  float64              `json:"semantic_similarity"`
	SkillMatch          float64              `json:"skill_match"`
	RecommendationLevel string               `json:"recommendation_level"`
	Degraded            bool                 `json:"degraded"`
	Result              types.AnalysisResult `json:"result"`
	CreatedAt           time.Time            `json:"created_at"`
}

// SaveAnalysis records a completed analysis and returns its id. The full
// result is stored as JSON next to the headline figures used for listing.
func (db *DB) SaveAnalysis(ctx context.Context, result *types.AnalysisResult) (uuid.UUID, error) {
	payload, err := json.Marshal(result)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to marshal analysis result: %w", err)
	}

	var id uuid.UUID
	err = db.pool.QueryRow(ctx,
		`INSERT INTO analyses (overall_score, semantic_similarity, skill_match, recommendation_level, degraded, result)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		result.Scores.OverallScore,
		result.Scores.SemanticSimilarity,
		result.Scores.SkillMatch,
		string(result.Recommendation.Level),
		result.Degraded,
		payload,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to save analysis: %w", err)
	}
	return id, nil
}

// GetAnalysis fetches one stored analysis by id.
func (db *DB) GetAnalysis(ctx context.Context, id uuid.UUID) (*AnalysisRecord, error) {
	var (
		rec     AnalysisRecord
		payload []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, overall_score, semantic_similarity, skill_match, recommendation_level, degraded, result, created_at
		 FROM analyses WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.OverallScore, &rec.SemanticSimilarity, &rec.SkillMatch,
		&rec.RecommendationLevel, &rec.Degraded, &payload, &rec.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get analysis %s: %w", id, err)
	}

	if err := json.Unmarshal(payload, &rec.Result); err != nil {
		return nil, fmt.Errorf("failed to decode analysis %s: %w", id, err)
	}
	return &rec, nil
}

// ListRecent returns the newest analyses, headline fields only.
func (db *DB) ListRecent(ctx context.Context, limit int) ([]AnalysisRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := db.pool.Query(ctx,
		`SELECT id, overall_score, semantic_similarity, skill_match, recommendation_level, degraded, created_at
		 FROM analyses ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list analyses: %w", err)
	}
	defer rows.Close()

	var records []AnalysisRecord
	for rows.Next() {
		var rec AnalysisRecord
		if err := rows.Scan(&rec.ID, &rec.OverallScore, &rec.SemanticSimilarity, &rec.SkillMatch,
			&rec.RecommendationLevel, &rec.Degraded, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan analysis row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Migrate creates the analyses table when it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := db.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS analyses (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			overall_score DOUBLE PRECISION NOT NULL,
			semantic_similarity DOUBLE PRECISION NOT NULL,
			skill_match DOUBLE PRECISION NOT NULL,
			recommendation_level TEXT NOT NULL,
			degraded BOOLEAN NOT NULL DEFAULT FALSE,
			result JSONB NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create analyses table: %w", err)
	}
	return nil
}
