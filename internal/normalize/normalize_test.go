package normalize

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

func TestCV_FullDocument(t *testing.T) {
	raw := map[string]any{
		"language": "fr",
		"theme":    "modern",
		"summary":  "  Ingénieur logiciel.  ",
		"personalInfo": map[string]any{
			"name":  "Marie Dupont",
			"title": "Développeuse",
			"contact": map[string]any{
				"email": "marie@example.com",
				"phone": "+33 6 00 00 00 00",
			},
		},
		"experience": []any{
			map[string]any{
				"title":            "Développeuse",
				"company":          "Acme",
				"period":           "2020 - 2023",
				"responsibilities": []any{"Construit l'API", "Maintenu la CI"},
			},
		},
	}

	cv := CV(raw)

	assert.Equal(t, types.LangFrench, cv.Language)
	assert.Equal(t, "modern", cv.Theme)
	assert.Equal(t, "Ingénieur logiciel.", cv.Summary)
	assert.Equal(t, "Marie Dupont", cv.PersonalInfo.Name)
	assert.Equal(t, "marie@example.com", cv.PersonalInfo.Contact.Email)
	require.Len(t, cv.Experience, 1)
	assert.Equal(t, []string{"Construit l'API", "Maintenu la CI"}, cv.Experience[0].Responsibilities)
}

func TestCV_MissingPersonalInfoUsesPlaceholder(t *testing.T) {
	cv := CV(map[string]any{"summary": "No identity."})

	assert.Equal(t, PlaceholderName, cv.PersonalInfo.Name)
	assert.Equal(t, "No identity.", cv.Summary)
}

func TestCV_NonObjectDocumentDegradesToPlaceholder(t *testing.T) {
	for _, raw := range []any{nil, "just a string", 42.0, []any{"a", "b"}} {
		cv := CV(raw)
		assert.Equal(t, PlaceholderName, cv.PersonalInfo.Name)
		assert.NotNil(t, cv.Skills)
		assert.NotNil(t, cv.Experience)
	}
}

func TestCV_CollectionsNeverNil(t *testing.T) {
	cv := CV(map[string]any{})

	assert.NotNil(t, cv.Skills)
	assert.NotNil(t, cv.SkillOrder)
	assert.NotNil(t, cv.Experience)
	assert.NotNil(t, cv.Projects)
	assert.NotNil(t, cv.Education)
	assert.NotNil(t, cv.Certifications)
	assert.NotNil(t, cv.Languages)
	assert.NotNil(t, cv.Interests)
}

func TestCV_InvalidLanguageFallsBackToEnglish(t *testing.T) {
	cv := CV(map[string]any{"language": "de"})
	assert.Equal(t, types.LangEnglish, cv.Language)
}

func TestCV_SkillOrderSortedForDeterminism(t *testing.T) {
	raw := map[string]any{
		"skills": map[string]any{
			"frontend": []any{"React"},
			"backend":  []any{"Go"},
			"devops":   []any{"Docker"},
		},
	}

	cv := CV(raw)
	assert.Equal(t, []string{"backend", "devops", "frontend"}, cv.SkillOrder)
}

func TestCV_SingleObjectWrappedAsList(t *testing.T) {
	raw := map[string]any{
		"experience": map[string]any{"title": "Engineer", "company": "Acme"},
	}

	cv := CV(raw)
	require.Len(t, cv.Experience, 1)
	assert.Equal(t, "Engineer", cv.Experience[0].Title)
}

func TestCV_MalformedEntriesDropped(t *testing.T) {
	raw := map[string]any{
		"experience": []any{
			map[string]any{"title": "Kept"},
			"not an object",
			map[string]any{},
		},
		"projects": []any{
			map[string]any{"description": "no name"},
		},
	}

	cv := CV(raw)
	require.Len(t, cv.Experience, 1)
	assert.Equal(t, "Kept", cv.Experience[0].Title)
	assert.Empty(t, cv.Projects)
}

func TestCV_CertificationsAcceptBareStrings(t *testing.T) {
	raw := map[string]any{
		"certifications": []any{
			"AWS Solutions Architect",
			map[string]any{"name": "CKA", "issuer": "CNCF"},
		},
	}

	cv := CV(raw)
	require.Len(t, cv.Certifications, 2)
	assert.Equal(t, "AWS Solutions Architect", cv.Certifications[0].Name)
	assert.Equal(t, "CNCF", cv.Certifications[1].Issuer)
}

type rowWrapper struct {
	doc map[string]any
}

func (r rowWrapper) ToPlain() map[string]any { return r.doc }

func TestToPlainValue_PlainerMaterialized(t *testing.T) {
	w := rowWrapper{doc: map[string]any{
		"_id":     "abc123",
		"summary": "From wrapper.",
	}}

	cv := CV(w)
	assert.Equal(t, "From wrapper.", cv.Summary)
}

func TestToPlainValue_StripsStorageInternalFields(t *testing.T) {
	raw := map[string]any{
		"_id":        "x",
		"__v":        1.0,
		"user_id":    "u",
		"created_at": "2024-01-01",
		"updatedAt":  "2024-01-02",
		"summary":    "kept",
	}

	out, ok := ToPlainValue(raw).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"summary": "kept"}, out)
}

func TestToPlainValue_RawMessageDecoded(t *testing.T) {
	raw := json.RawMessage(`{"summary": "from raw", "_id": "drop"}`)

	out, ok := ToPlainValue(raw).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "from raw", out["summary"])
	assert.NotContains(t, out, "_id")
}

func TestToPlainValue_StructRoundTripped(t *testing.T) {
	type doc struct {
		Summary string `json:"summary"`
	}

	out, ok := ToPlainValue(doc{Summary: "typed"}).(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "typed", out["summary"])
}

func TestToPlainValue_InvalidRawMessageIsNil(t *testing.T) {
	assert.Nil(t, ToPlainValue(json.RawMessage(`{broken`)))
}
