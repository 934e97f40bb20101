package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// CVResponse is the wire form of a stored CV.
type CVResponse struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Language  string         `json:"language"`
	Theme     string         `json:"theme"`
	Content   map[string]any `json:"content,omitempty"`
	CreatedAt string         `json:"created_at"`
	UpdatedAt string         `json:"updated_at"`
}

func (s *Server) handleCreateCV(w http.ResponseWriter, r *http.Request) {
	var req CVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}
	if req.Language == "" {
		req.Language = string(types.LangEnglish)
	}
	if req.Theme == "" {
		req.Theme = types.DefaultThemeName
	}

	id, err := s.store.CreateCV(r.Context(), req.Title, req.Language, req.Theme, req.Content)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]string{"id": id.String()})
}

func (s *Server) handleListCVs(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	records, err := s.store.ListCVs(r.Context(), limit, offset)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	out := make([]CVResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, CVResponse{
			ID:        rec.ID.String(),
			Title:     rec.Title,
			Language:  rec.Language,
			Theme:     rec.Theme,
			CreatedAt: rec.CreatedAt.Format(timeFormat),
			UpdatedAt: rec.UpdatedAt.Format(timeFormat),
		})
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"cvs": out})
}

func (s *Server) handleGetCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	rec, err := s.store.GetCV(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	var content map[string]any
	if err := json.Unmarshal(rec.Content, &content); err != nil {
		content = nil
	}
	s.writeJSON(w, http.StatusOK, CVResponse{
		ID:        rec.ID.String(),
		Title:     rec.Title,
		Language:  rec.Language,
		Theme:     rec.Theme,
		Content:   content,
		CreatedAt: rec.CreatedAt.Format(timeFormat),
		UpdatedAt: rec.UpdatedAt.Format(timeFormat),
	})
}

func (s *Server) handleUpdateCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req CVRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	if err := s.store.UpdateCV(r.Context(), id, req.Title, req.Language, req.Theme, req.Content); err != nil {
		s.errorResponse(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"id": id.String()})
}

func (s *Server) handleDeleteCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := s.store.DeleteCV(r.Context(), id); err != nil {
		s.errorResponse(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathUUID parses a UUID path segment, writing a 400 on failure.
func (s *Server) pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: name, Message: "invalid UUID"})
		return uuid.Nil, false
	}
	return id, true
}

const timeFormat = "2006-01-02T15:04:05Z07:00"
