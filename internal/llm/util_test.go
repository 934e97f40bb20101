package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock_JSONFence(t *testing.T) {
	in := "```json\n{\"name\": \"test\"}\n```"
	assert.Equal(t, `{"name": "test"}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_PlainFence(t *testing.T) {
	in := "```\n{\"name\": \"test\"}\n```"
	assert.Equal(t, `{"name": "test"}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_FenceWithLanguageID(t *testing.T) {
	in := "```javascript\n{\"name\": \"test\"}\n```"
	assert.Equal(t, `{"name": "test"}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_NoFence(t *testing.T) {
	in := `{"name": "test"}`
	assert.Equal(t, in, CleanJSONBlock(in))
}

func TestCleanJSONBlock_SurroundingWhitespace(t *testing.T) {
	in := "  \n```json\n{\"a\": 1}\n```\n  "
	assert.Equal(t, `{"a": 1}`, CleanJSONBlock(in))
}

func TestCleanJSONBlock_BraceOnFirstLineNotALanguageID(t *testing.T) {
	in := "```{\"compact\":true}```"
	assert.Equal(t, `{"compact":true}`, CleanJSONBlock(in))
}
