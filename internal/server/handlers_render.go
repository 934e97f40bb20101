package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/yassjustice/resumeBuilder-sub001/internal/layout"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// handleRenderCV renders a stored CV to PDF. The response streams the
// binary for direct download, or inline preview with ?inline=1.
func (s *Server) handleRenderCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req RenderRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
			return
		}
		if err := req.Validate(); err != nil {
			s.errorResponse(w, err)
			return
		}
	}

	rec, err := s.store.GetCV(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	name := req.Theme
	if name == "" {
		name = rec.Theme
	}

	pdf, err := s.renderer.Produce(r.Context(), rec.Content, s.resolveTheme(r.Context(), name), req.Options)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	disposition := fmt.Sprintf("attachment; filename=%q", rec.Title+".pdf")
	if r.URL.Query().Get("inline") == "1" {
		disposition = "inline"
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", disposition)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(pdf); err != nil {
		// Client went away mid-download; nothing to recover.
		return
	}
}

// PlanResponse describes the deterministic page plan for a CV.
type PlanResponse struct {
	PageCount  int             `json:"page_count"`
	Placements []PlanPlacement `json:"placements"`
}

// PlanPlacement is one placed element in the plan.
type PlanPlacement struct {
	Kind    string   `json:"kind"`
	Section string   `json:"section,omitempty"`
	Units   []string `json:"units,omitempty"`
	Page    int      `json:"page"`
	Top     float64  `json:"top"`
	Height  float64  `json:"height"`
}

// handlePlanCV returns the page plan without invoking the browser, for
// layout previews and diagnostics.
func (s *Server) handlePlanCV(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req RenderRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
			return
		}
		if err := req.Validate(); err != nil {
			s.errorResponse(w, err)
			return
		}
	}

	rec, err := s.store.GetCV(r.Context(), id)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	name := req.Theme
	if name == "" {
		name = rec.Theme
	}
	plan := s.renderer.Plan(rec.Content, s.resolveTheme(r.Context(), name), req.Options)
	s.writeJSON(w, http.StatusOK, toPlanResponse(plan))
}

// handlePreview renders a CV payload that was never persisted.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, &ErrValidation{Field: "body", Message: "invalid JSON: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, err)
		return
	}

	pdf, err := s.renderer.Produce(r.Context(), req.Content, s.resolveTheme(r.Context(), req.Theme), req.Options)
	if err != nil {
		s.errorResponse(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "inline")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

// resolveTheme looks a theme name up for rendering: a stored override wins
// over the built-in of the same name, matching the GET /themes/{name}
// contract. An empty name yields a zero theme, which the renderer resolves
// from the document itself.
func (s *Server) resolveTheme(ctx context.Context, name string) types.Theme {
	if name == "" {
		return types.Theme{}
	}
	if rec, err := s.store.GetTheme(ctx, name); err == nil {
		var theme types.Theme
		if jsonErr := json.Unmarshal(rec.Config, &theme); jsonErr == nil {
			theme.Name = rec.Name
			return theme
		}
		log.Printf("[SERVER] stored theme %s is malformed; using built-in", name)
	}
	return types.ThemeByName(name)
}

func toPlanResponse(plan *layout.Plan) PlanResponse {
	out := PlanResponse{PageCount: plan.PageCount}
	for _, p := range plan.Placements {
		out.Placements = append(out.Placements, PlanPlacement{
			Kind:    string(p.Kind),
			Section: p.SectionKey,
			Units:   p.UnitIDs,
			Page:    p.Page,
			Top:     p.Top,
			Height:  p.Height,
		})
	}
	return out
}
