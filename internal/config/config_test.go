package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `{
		"port": 9090,
		"semantic_weight": 0.4,
		"skill_weight": 0.6,
		"json_logs": true
	}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 0.4, cfg.SemanticWeight)
	assert.Equal(t, 0.6, cfg.SkillWeight)
	assert.True(t, cfg.JSONLogs)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := writeConfig(t, `{broken`)
	_, err = Load(path)
	assert.Error(t, err)
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Port: 3000}
	merged := cfg.MergeWithDefaults(Defaults())

	assert.Equal(t, 3000, merged.Port)
	assert.Equal(t, 0.5, merged.SemanticWeight)
	assert.Equal(t, 0.5, merged.SkillWeight)

	empty := Config{}
	merged = empty.MergeWithDefaults(Defaults())
	assert.Equal(t, 8080, merged.Port)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("DATABASE_URL", "postgres://env")
	t.Setenv("PORT", "7777")

	cfg := Config{}
	cfg.FromEnv()
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "postgres://env", cfg.DatabaseURL)
	assert.Equal(t, 7777, cfg.Port)

	// Explicit values survive the environment.
	cfg = Config{APIKey: "explicit", Port: 1234}
	cfg.FromEnv()
	assert.Equal(t, "explicit", cfg.APIKey)
	assert.Equal(t, 1234, cfg.Port)
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	assert.NoError(t, cfg.Validate())

	bad := Defaults()
	bad.Port = -1
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.SemanticWeight = 1.5
	assert.Error(t, bad.Validate())

	bad = Defaults()
	bad.SkillsFile = filepath.Join(t.TempDir(), "nope.json")
	assert.Error(t, bad.Validate())
}
