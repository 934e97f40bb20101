package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoerceSkillList_Sequence(t *testing.T) {
	out := coerceSkillList([]any{"Go", "  PostgreSQL  ", ""})
	assert.Equal(t, []string{"Go", "PostgreSQL"}, out)
}

func TestCoerceSkillList_SequenceOfNameLevelPairs(t *testing.T) {
	out := coerceSkillList([]any{
		map[string]any{"name": "Go", "level": "Expert"},
		map[string]any{"name": "Rust"},
		map[string]any{"level": "orphan level"},
	})
	assert.Equal(t, []string{"Go (Expert)", "Rust"}, out)
}

func TestCoerceSkillList_SingleNameLevelObject(t *testing.T) {
	out := coerceSkillList(map[string]any{"name": "Go", "level": "Expert"})
	assert.Equal(t, []string{"Go (Expert)"}, out)
}

func TestCoerceSkillList_ObjectOfValuesSortedByKey(t *testing.T) {
	out := coerceSkillList(map[string]any{
		"b": "second",
		"a": "first",
	})
	assert.Equal(t, []string{"first", "second"}, out)
}

func TestCoerceSkillList_DelimitedString(t *testing.T) {
	out := coerceSkillList("Go, Python , , Rust")
	assert.Equal(t, []string{"Go", "Python", "Rust"}, out)
}

func TestCoerceSkillList_UnrecognizedIsEmpty(t *testing.T) {
	assert.Empty(t, coerceSkillList(true))
	assert.Empty(t, coerceSkillList(nil))
}

func TestNormalizeSkills_FlatListBecomesGeneralCategory(t *testing.T) {
	skills, order := normalizeSkills([]any{"Go", "Python"})

	require.Equal(t, []string{"skills"}, order)
	assert.Equal(t, []string{"Go", "Python"}, skills["skills"])
}

func TestNormalizeSkills_EmptyCategoriesDropped(t *testing.T) {
	skills, order := normalizeSkills(map[string]any{
		"backend": []any{"Go"},
		"empty":   []any{},
	})

	assert.Equal(t, []string{"backend"}, order)
	assert.NotContains(t, skills, "empty")
}
