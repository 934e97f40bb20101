package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// scriptedClient returns canned responses per call kind.
type scriptedClient struct {
	content    string
	contentErr error
	jsonOut    string
	jsonErr    error
	jsonCalls  int
}

func (c *scriptedClient) GenerateContent(_ context.Context, _ string, _ ModelTier) (string, error) {
	return c.content, c.contentErr
}

func (c *scriptedClient) GenerateJSON(_ context.Context, _ string, _ ModelTier) (string, error) {
	c.jsonCalls++
	return c.jsonOut, c.jsonErr
}

func (c *scriptedClient) Close() error { return nil }

func TestExtractCV(t *testing.T) {
	client := &scriptedClient{jsonOut: `{
		"language": "en",
		"personalInfo": {"name": "Alex Chen", "title": "Engineer"},
		"summary": "Builds things.",
		"skills": {"backend": ["Go"]}
	}`}

	cv, err := ExtractCV(context.Background(), client, "Alex Chen\nEngineer\nBuilds things.")
	require.NoError(t, err)

	assert.Equal(t, "Alex Chen", cv.PersonalInfo.Name)
	assert.Equal(t, "Builds things.", cv.Summary)
	assert.Equal(t, []string{"backend"}, cv.SkillOrder)
}

func TestExtractCV_EmptyText(t *testing.T) {
	client := &scriptedClient{}
	_, err := ExtractCV(context.Background(), client, "   \n  ")
	require.Error(t, err)
	assert.Equal(t, 0, client.jsonCalls)
}

func TestExtractCV_InvalidModelJSON(t *testing.T) {
	client := &scriptedClient{jsonOut: `{broken`}
	_, err := ExtractCV(context.Background(), client, "some text")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestTailorCV_RewritesSummaryAndBullets(t *testing.T) {
	client := &scriptedClient{
		content: "Tailored summary.",
		jsonOut: `["Most relevant", "Second", "Third", "Fourth", "Fifth over the cap"]`,
	}
	cv := &types.CV{
		Language: types.LangEnglish,
		Summary:  "Original.",
		Experience: []types.ExperienceItem{
			{Title: "Engineer", Responsibilities: []string{"old"}},
		},
	}

	tailored, err := TailorCV(context.Background(), client, cv, "A Go job.")
	require.NoError(t, err)

	assert.Equal(t, "Tailored summary.", tailored.Summary)
	require.Len(t, tailored.Experience, 1)
	assert.Len(t, tailored.Experience[0].Responsibilities, maxTailorBullets)
	assert.Equal(t, "Most relevant", tailored.Experience[0].Responsibilities[0])

	// The input document is never mutated.
	assert.Equal(t, "Original.", cv.Summary)
	assert.Equal(t, []string{"old"}, cv.Experience[0].Responsibilities)
}

func TestTailorCV_GenerationFailureKeepsOriginal(t *testing.T) {
	client := &scriptedClient{
		contentErr: errors.New("model unavailable"),
		jsonErr:    errors.New("model unavailable"),
	}
	cv := &types.CV{
		Language: types.LangEnglish,
		Summary:  "Original.",
		Experience: []types.ExperienceItem{
			{Title: "Engineer", Responsibilities: []string{"kept bullet"}},
		},
	}

	tailored, err := TailorCV(context.Background(), client, cv, "A job.")
	require.NoError(t, err)

	assert.Equal(t, "Original.", tailored.Summary)
	assert.Equal(t, []string{"kept bullet"}, tailored.Experience[0].Responsibilities)
}

func TestTailorCV_RequiresJobDescription(t *testing.T) {
	_, err := TailorCV(context.Background(), &scriptedClient{}, &types.CV{}, "  ")
	require.Error(t, err)
}

func TestTailorCV_SkipsEntriesWithoutBullets(t *testing.T) {
	client := &scriptedClient{jsonOut: `["new"]`}
	cv := &types.CV{
		Experience: []types.ExperienceItem{
			{Title: "No bullets"},
		},
	}

	tailored, err := TailorCV(context.Background(), client, cv, "A job.")
	require.NoError(t, err)
	assert.Equal(t, 0, client.jsonCalls)
	assert.Empty(t, tailored.Experience[0].Responsibilities)
}

func TestCoverLetter(t *testing.T) {
	client := &scriptedClient{content: "  Dear team, I am writing...  "}
	cv := &types.CV{Language: types.LangFrench, Summary: "Ingénieure."}

	letter, err := CoverLetter(context.Background(), client, cv, "Une offre.")
	require.NoError(t, err)
	assert.Equal(t, "Dear team, I am writing...", letter)
}

func TestCoverLetter_RequiresJobDescription(t *testing.T) {
	_, err := CoverLetter(context.Background(), &scriptedClient{}, &types.CV{}, "")
	require.Error(t, err)
}

func TestLanguageName(t *testing.T) {
	assert.Equal(t, "French", languageName(types.LangFrench))
	assert.Equal(t, "English", languageName(types.LangEnglish))
	assert.Equal(t, "English", languageName(types.Language("de")))
}
