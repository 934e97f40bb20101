package server

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"

	"github.com/yassjustice/resumeBuilder-sub001/internal/schemas"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

var validate = validator.New()

// CVRequest is the body for creating or updating a CV.
type CVRequest struct {
	Title    string         `json:"title" validate:"required,max=200"`
	Language string         `json:"language" validate:"omitempty,oneof=en fr"`
	Theme    string         `json:"theme" validate:"omitempty,max=50"`
	Content  map[string]any `json:"content" validate:"required"`
}

// Validate checks the struct tags and validates the content against the
// CV document schema.
func (r *CVRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	raw, err := json.Marshal(r.Content)
	if err != nil {
		return &ErrValidation{Field: "content", Message: err.Error()}
	}
	return schemas.ValidateCV(raw)
}

// RenderRequest is the body for PDF rendering of a stored CV.
type RenderRequest struct {
	Theme   string              `json:"theme,omitempty" validate:"omitempty,max=50"`
	Options types.RenderOptions `json:"options"`
}

// Validate checks the render request.
func (r *RenderRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// PreviewRequest renders a CV payload that was never persisted.
type PreviewRequest struct {
	Theme   string              `json:"theme,omitempty" validate:"omitempty,max=50"`
	Options types.RenderOptions `json:"options"`
	Content map[string]any      `json:"content" validate:"required"`
}

// Validate checks the preview request. The content is not schema-checked:
// preview accepts partial documents and relies on normalization.
func (r *PreviewRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// ExtractRequest carries raw CV text (or HTML) for AI extraction.
type ExtractRequest struct {
	Text        string `json:"text" validate:"required"`
	ContentType string `json:"content_type,omitempty"`
}

// Validate checks the extract request.
func (r *ExtractRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}

// TailorRequest asks for a CV tailored to a job description. Exactly one
// of CVID or Content identifies the source document.
type TailorRequest struct {
	CVID           string         `json:"cv_id,omitempty" validate:"omitempty,uuid"`
	Content        map[string]any `json:"content,omitempty"`
	JobDescription string         `json:"job_description" validate:"required"`
}

// Validate checks the tailor request.
func (r *TailorRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	if r.CVID == "" && r.Content == nil {
		return &ErrValidation{Field: "cv_id", Message: "either cv_id or content is required"}
	}
	return nil
}

// ThemeRequest stores a theme override.
type ThemeRequest struct {
	Config types.Theme `json:"config" validate:"required"`
}

// Validate checks the theme request.
func (r *ThemeRequest) Validate() error {
	if err := validate.Struct(r); err != nil {
		return &ErrValidation{Field: "body", Message: err.Error()}
	}
	return nil
}
