package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	response string
	err      error
}

func (f *fakeClient) GenerateJSON(_ context.Context, _ string) (string, error) {
	return f.response, f.err
}

func (f *fakeClient) Close() error { return nil }

func TestParseProfile_Valid(t *testing.T) {
	raw := `{
		"name": "Ada Lovelace",
		"email": "ada@example.com",
		"phone": null,
		"location": "London",
		"summary": "Analyst and programmer.",
		"total_years_experience": 7
	}`

	p, err := ParseProfile(raw)
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.Name)
	assert.Equal(t, "ada@example.com", p.Email)
	assert.Empty(t, p.Phone)
	assert.Equal(t, 7, p.YearsExperience)
}

func TestParseProfile_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not JSON", `{"name": `},
		{"wrong type", `{"name": 42}`},
		{"unknown field", `{"name": "Ada", "ssn": "000"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseProfile(tt.raw)
			assert.Error(t, err)
		})
	}
}

func TestExtractProfile(t *testing.T) {
	client := &fakeClient{response: `{"name": "Ada Lovelace", "email": "ada@example.com"}`}

	p, err := ExtractProfile(context.Background(), client, "Ada Lovelace\nada@example.com\nAnalyst")
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", p.Name)
}

func TestExtractProfile_ClientFailure(t *testing.T) {
	client := &fakeClient{err: errors.New("quota exhausted")}

	_, err := ExtractProfile(context.Background(), client, "some resume")
	assert.Error(t, err)
}

func TestCleanJSONBlock(t *testing.T) {
	assert.Equal(t, `{"a":1}`, cleanJSONBlock("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, cleanJSONBlock(`{"a":1}`))
}
