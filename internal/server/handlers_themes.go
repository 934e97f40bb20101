package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yassjustice/resumeBuilder-sub001/internal/db"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// ThemeResponse is the wire form of a theme.
type ThemeResponse struct {
	Name    string      `json:"name"`
	Builtin bool        `json:"builtin"`
	Config  types.Theme `json:"config"`
}

// handleListThemes returns the built-in themes plus stored overrides.
func (s *Server) handleListThemes(w http.ResponseWriter, r *http.Request) {
	out := []ThemeResponse{}
	for _, name := range types.BuiltinThemeNames() {
		out = append(out, ThemeResponse{Name: name, Builtin: true, Config: types.ThemeByName(name)})
	}

	records, err := s.store.ListThemes(r.Context())
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	for _, rec := range records {
		var theme types.Theme
		if err := json.Unmarshal(rec.Config, &theme); err != nil {
			continue
		}
		theme.Name = rec.Name
		out = append(out, ThemeResponse{Name: rec.Name, Config: theme})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"themes": out})
}

// handleGetTheme returns one theme: a stored override wins over the
// built-in of the same name.
func (s *Server) handleGetTheme(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	rec, err := s.store.GetTheme(r.Context(), name)
	if err == nil {
		var theme types.Theme
		if jsonErr := json.Unmarshal(rec.Config, &theme); jsonErr != nil {
			s.errorResponse(w, jsonErr)
			return
		}
		theme.Name = rec.Name
		s.writeJSON(w, http.StatusOK, ThemeResponse{Name: rec.Name, Config: theme})
		return
	}
	if !errors.Is(err, db.ErrNotFound) {
		s.errorResponse(w, err)
		return
	}

	for _, builtin := range types.BuiltinThemeNames() {
		if builtin == name {
			s.writeJSON(w, http.StatusOK, ThemeResponse{Name: name, Builtin: true, Config: types.ThemeByName(name)})
			return
		}
	}
	s.errorResponse(w, db.ErrNotFound)
}

func (s *Server) handlePutTheme(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")

	var req ThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	if err := s.store.UpsertTheme(r.Context(), name, req.Config); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"name": name})
}

func (s *Server) handleDeleteTheme(w http.ResponseWriter, r *http.Request) {
	if err := s.store.DeleteTheme(r.Context(), r.PathValue("name")); err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
