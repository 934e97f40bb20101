// Package schemas validates incoming CV documents against a JSON Schema.
// Validation guards the storage boundary; the normalizer stays tolerant of
// older stored shapes.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed cv.schema.json
var cvSchemaJSON []byte

// FieldError is one validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates the field errors from one validation run.
type ValidationError struct {
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:")
	for _, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf(" %s: %s;", err.Field, err.Message))
	}
	return strings.TrimSuffix(sb.String(), ";")
}

// ValidateCV validates a raw CV JSON document against the CV schema.
// Returns *ValidationError when the document is invalid.
func ValidateCV(document []byte) error {
	schemaLoader := gojsonschema.NewBytesLoader(cvSchemaJSON)
	documentLoader := gojsonschema.NewBytesLoader(document)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to run schema validation: %w", err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
