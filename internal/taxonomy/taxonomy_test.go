package taxonomy

import (
	"testing"

	"github.com/jonathan/resume-analyzer/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidDocument(t *testing.T) {
	data := []byte(`{
		"languages": [
			{"name": "Python", "aliases": ["python", "python3"]},
			{"name": "Go", "aliases": ["go", "golang"]}
		],
		"frameworks": [
			{"name": "Flask", "aliases": ["flask"]}
		]
	}`)

	tax, err := Load(data)
	require.NoError(t, err)
	assert.Equal(t, 3, tax.Len())
}

func TestLoad_DuplicateCanonicalName(t *testing.T) {
	data := []byte(`{
		"languages": [{"name": "Python", "aliases": ["python"]}],
		"scripting": [{"name": "python", "aliases": ["py"]}]
	}`)

	_, err := Load(data)
	require.Error(t, err)

	var loadErr *dataset.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "duplicate canonical name")
}

func TestLoad_SchemaViolations(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not JSON", `{not json`},
		{"missing name", `{"languages": [{"aliases": ["python"]}]}`},
		{"missing aliases", `{"languages": [{"name": "Python"}]}`},
		{"empty aliases", `{"languages": [{"name": "Python", "aliases": []}]}`},
		{"empty document", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load([]byte(tt.data))
			require.Error(t, err)

			var loadErr *dataset.LoadError
			assert.ErrorAs(t, err, &loadErr)
		})
	}
}

func TestLookupCandidates(t *testing.T) {
	data := []byte(`{
		"languages": [{"name": "JavaScript", "aliases": ["javascript", "js"]}]
	}`)
	tax, err := Load(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"JavaScript"}, tax.LookupCandidates("js"))
	assert.Equal(t, []string{"JavaScript"}, tax.LookupCandidates("JS"))
	assert.Equal(t, []string{"JavaScript"}, tax.LookupCandidates("JavaScript"))
	assert.Nil(t, tax.LookupCandidates("cobol"))
}

func TestCategorize(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)

	got := tax.Categorize([]string{"Python", "Flask", "Unknown Skill"})
	assert.Equal(t, []string{"Python"}, got["programming_languages"])
	assert.Equal(t, []string{"Flask"}, got["web_frameworks"])
	assert.NotContains(t, got, "Unknown Skill")
}

func TestDefault_EmbeddedDataset(t *testing.T) {
	tax, err := Default()
	require.NoError(t, err)
	assert.Greater(t, tax.Len(), 50)

	// Spot-check a few aliases from the embedded data.
	assert.Equal(t, []string{"Kubernetes"}, tax.LookupCandidates("k8s"))
	assert.Equal(t, []string{"Machine Learning"}, tax.LookupCandidates("ml"))
	assert.Equal(t, "databases", tax.Category("PostgreSQL"))
}
