package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCV_ValidDocument(t *testing.T) {
	doc := []byte(`{
		"language": "en",
		"personalInfo": {"name": "Jane Doe", "contact": {"email": "jane@example.com"}},
		"summary": "Engineer.",
		"skills": {"backend": ["Go"]},
		"experience": [{"title": "Engineer", "responsibilities": ["Built things"]}]
	}`)

	assert.NoError(t, ValidateCV(doc))
}

func TestValidateCV_SkillsAcceptObjectOrArray(t *testing.T) {
	assert.NoError(t, ValidateCV([]byte(`{"skills": {"backend": ["Go"]}}`)))
	assert.NoError(t, ValidateCV([]byte(`{"skills": ["Go", "Python"]}`)))
}

func TestValidateCV_RejectsWrongTypes(t *testing.T) {
	err := ValidateCV([]byte(`{"summary": 42, "language": "de"}`))
	require.Error(t, err)

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	assert.GreaterOrEqual(t, len(ve.Errors), 2)
	assert.Contains(t, ve.Error(), "summary")
}

func TestValidateCV_RejectsNonObjectDocument(t *testing.T) {
	err := ValidateCV([]byte(`"just a string"`))
	require.Error(t, err)

	var ve *ValidationError
	assert.True(t, errors.As(err, &ve))
}

func TestValidateCV_UnknownFieldsTolerated(t *testing.T) {
	doc := []byte(`{"summary": "ok", "customSection": {"anything": true}}`)
	assert.NoError(t, ValidateCV(doc))
}

func TestValidateCV_MalformedJSON(t *testing.T) {
	err := ValidateCV([]byte(`{broken`))
	require.Error(t, err)

	var ve *ValidationError
	assert.False(t, errors.As(err, &ve))
}
