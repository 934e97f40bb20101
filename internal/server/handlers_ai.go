package server

import (
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/yassjustice/resumeBuilder-sub001/internal/ingestion"
	"github.com/yassjustice/resumeBuilder-sub001/internal/llm"
	"github.com/yassjustice/resumeBuilder-sub001/internal/normalize"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// admitAI applies the AI rate limit and checks the client is configured.
// Returns false after writing the response when the request is rejected.
func (s *Server) admitAI(w http.ResponseWriter, r *http.Request) bool {
	if s.ai == nil {
		s.errorResponse(w, &ErrAIUnavailable{})
		return false
	}

	client, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		client = r.RemoteAddr
	}
	s.aiLimiter.Prune()
	info := s.aiLimiter.Allow(client)
	if !info.Allowed {
		w.Header().Set("Retry-After", strconv.Itoa(int(info.RetryAfter.Seconds())+1))
		s.writeJSON(w, http.StatusTooManyRequests, map[string]string{"error": "AI rate limit exceeded"})
		return false
	}
	return true
}

// handleExtract turns raw CV text or HTML into a normalized CV document.
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	if !s.admitAI(w, r) {
		return
	}

	var req ExtractRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	text, err := ingestion.FromUpload(req.ContentType, []byte(req.Text))
	if err != nil {
		s.errorResponse(w, &ErrValidation{Field: "content_type", Message: err.Error()})
		return
	}

	cv, err := llm.ExtractCV(r.Context(), s.ai, text)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"cv": cv})
}

// handleTailor rewrites a CV to target a job description.
func (s *Server) handleTailor(w http.ResponseWriter, r *http.Request) {
	if !s.admitAI(w, r) {
		return
	}

	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	cv, err := s.resolveCV(r, &req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	tailored, err := llm.TailorCV(r.Context(), s.ai, cv, req.JobDescription)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{"cv": tailored})
}

// handleCoverLetter generates a cover letter for a CV and job description.
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	if !s.admitAI(w, r) {
		return
	}

	var req TailorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	cv, err := s.resolveCV(r, &req)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	letter, err := llm.CoverLetter(r.Context(), s.ai, cv, req.JobDescription)
	if err != nil {
		s.errorResponse(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{"cover_letter": letter})
}

// resolveCV loads the normalized CV named by a tailor-style request,
// either from storage or from the inline payload.
func (s *Server) resolveCV(r *http.Request, req *TailorRequest) (*types.CV, error) {
	if req.CVID != "" {
		id, err := uuid.Parse(req.CVID)
		if err != nil {
			return nil, &ErrValidation{Field: "cv_id", Message: "invalid UUID"}
		}
		rec, err := s.store.GetCV(r.Context(), id)
		if err != nil {
			return nil, err
		}
		return normalize.CV(rec.Content), nil
	}
	return normalize.CV(req.Content), nil
}
