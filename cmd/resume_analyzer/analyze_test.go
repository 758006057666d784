package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func resetAnalyzeFlags() {
	resumeFile = ""
	jobFile = ""
	jobURL = ""
	configPath = ""
	jsonOutput = false
	withProfile = false
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetAnalyzeFlags()
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("DATABASE_URL", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestAnalyzeCommand_JSON(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", "Backend developer skilled in Python, SQL, and Git.")
	job := writeTempFile(t, "job.txt", "Backend Developer\n\nWe need Python, Django, and SQL experience.")

	out, err := runCommand(t, "analyze", "--resume", resume, "--job", job, "--json")
	require.NoError(t, err)

	var result analyzeOutput
	require.NoError(t, json.Unmarshal([]byte(out), &result))

	assert.Equal(t, []string{"Python", "SQL"}, result.MatchedSkills)
	assert.Equal(t, []string{"Django"}, result.MissingSkills)
	assert.NotNil(t, result.JobInsights)
}

func TestAnalyzeCommand_BoxOutput(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", "Python and SQL developer.")
	job := writeTempFile(t, "job.txt", "Python role with SQL.")

	out, err := runCommand(t, "analyze", "--resume", resume, "--job", job)
	require.NoError(t, err)

	assert.Contains(t, out, "FIT SCORE")
	assert.Contains(t, out, "SKILL ANALYSIS")
}

func TestAnalyzeCommand_MutuallyExclusiveJobSources(t *testing.T) {
	resume := writeTempFile(t, "resume.txt", "Python developer.")
	job := writeTempFile(t, "job.txt", "Python role.")

	_, err := runCommand(t, "analyze", "--resume", resume, "--job", job, "--job-url", "https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestAnalyzeCommand_MissingResumeFile(t *testing.T) {
	_, err := runCommand(t, "analyze", "--resume", filepath.Join(t.TempDir(), "absent.txt"))
	require.Error(t, err)
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0.5, cfg.SemanticWeight)
	assert.Equal(t, 0.5, cfg.SkillWeight)
}

func TestLoadConfig_File(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"semantic_weight": 0.4, "skill_weight": 0.6, "port": 9090}`)

	cfg, err := loadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 0.4, cfg.SemanticWeight)
	assert.Equal(t, 0.6, cfg.SkillWeight)
}
