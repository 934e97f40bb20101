// Package server provides the HTTP REST API for the CV builder.
package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/yassjustice/resumeBuilder-sub001/internal/db"
	"github.com/yassjustice/resumeBuilder-sub001/internal/render"
	"github.com/yassjustice/resumeBuilder-sub001/internal/schemas"
)

// ErrValidation indicates request validation failure.
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrAIUnavailable indicates the AI service is not configured.
type ErrAIUnavailable struct{}

func (e *ErrAIUnavailable) Error() string {
	return "AI service is not configured"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var validationErr *ErrValidation
	var schemaErr *schemas.ValidationError
	var renderErr *render.Error
	var aiErr *ErrAIUnavailable

	switch {
	case errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.As(err, &validationErr), errors.As(err, &schemaErr):
		return http.StatusBadRequest
	case errors.As(err, &renderErr):
		return http.StatusBadGateway
	case errors.As(err, &aiErr):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
