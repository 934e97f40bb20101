package prompts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet_KnownPrompts(t *testing.T) {
	for _, key := range []string{"extract_cv", "tailor_summary", "tailor_experience", "cover_letter"} {
		prompt, err := Get("cv.json", key)
		require.NoErrorf(t, err, "prompt %q", key)
		assert.NotEmpty(t, prompt)
	}
}

func TestGet_UnknownKey(t *testing.T) {
	_, err := Get("cv.json", "no_such_prompt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGet_UnknownFile(t *testing.T) {
	_, err := Get("missing.json", "extract_cv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read prompt file")
}

func TestMustGet_PanicsOnMissing(t *testing.T) {
	assert.Panics(t, func() { MustGet("cv.json", "no_such_prompt") })
}

func TestFormat(t *testing.T) {
	out := Format("Extract from {{.Text}} in {{.Language}}.", map[string]string{
		"Text":     "the document",
		"Language": "English",
	})
	assert.Equal(t, "Extract from the document in English.", out)
}

func TestFormat_UnknownPlaceholderLeftIntact(t *testing.T) {
	out := Format("Keep {{.Unknown}}.", map[string]string{"Other": "x"})
	assert.True(t, strings.Contains(out, "{{.Unknown}}"))
}
