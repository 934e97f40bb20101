package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/yassjustice/resumeBuilder-sub001/internal/db"
	"github.com/yassjustice/resumeBuilder-sub001/internal/layout"
	"github.com/yassjustice/resumeBuilder-sub001/internal/llm"
	"github.com/yassjustice/resumeBuilder-sub001/internal/render"
	"github.com/yassjustice/resumeBuilder-sub001/internal/server/ratelimit"
	"github.com/yassjustice/resumeBuilder-sub001/internal/types"
)

// Store is the persistence surface the handlers depend on.
type Store interface {
	CreateCV(ctx context.Context, title, language, theme string, content any) (uuid.UUID, error)
	GetCV(ctx context.Context, id uuid.UUID) (*db.CVRecord, error)
	ListCVs(ctx context.Context, limit, offset int) ([]db.CVRecord, error)
	UpdateCV(ctx context.Context, id uuid.UUID, title, language, theme string, content any) error
	DeleteCV(ctx context.Context, id uuid.UUID) error
	GetTheme(ctx context.Context, name string) (*db.ThemeRecord, error)
	ListThemes(ctx context.Context) ([]db.ThemeRecord, error)
	UpsertTheme(ctx context.Context, name string, config any) error
	DeleteTheme(ctx context.Context, name string) error
}

// Renderer produces paginated PDF output and page plans for CV records.
// The theme is resolved by the caller so stored overrides apply.
type Renderer interface {
	Produce(ctx context.Context, raw any, theme types.Theme, opts types.RenderOptions) ([]byte, error)
	Plan(raw any, theme types.Theme, opts types.RenderOptions) *layout.Plan
}

// Server is the HTTP server wiring storage, rendering and the AI client.
type Server struct {
	httpServer *http.Server
	store      Store
	renderer   Renderer
	ai         llm.Client
	aiLimiter  *ratelimit.Limiter
	verbose    bool
}

// Config holds server configuration.
type Config struct {
	Port         int
	DatabaseURL  string
	GeminiAPIKey string
	Verbose      bool

	// AIRequestsPerMinute caps calls to the AI endpoints per client.
	AIRequestsPerMinute int
}

// defaultAIRequestsPerMinute bounds AI usage when not configured.
const defaultAIRequestsPerMinute = 10

// New creates a server instance backed by PostgreSQL, the headless-browser
// renderer and, when an API key is configured, the Gemini client.
func New(ctx context.Context, cfg Config) (*Server, error) {
	database, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	backend := render.NewChromeBackend()
	backend.Verbose = cfg.Verbose

	var aiClient llm.Client
	if cfg.GeminiAPIKey != "" {
		aiClient, err = llm.NewClient(ctx, nil, cfg.GeminiAPIKey)
		if err != nil {
			database.Close()
			return nil, fmt.Errorf("failed to create AI client: %w", err)
		}
	}

	perMinute := cfg.AIRequestsPerMinute
	if perMinute <= 0 {
		perMinute = defaultAIRequestsPerMinute
	}

	s := &Server{
		store:     database,
		renderer:  render.NewDriver(backend),
		ai:        aiClient,
		aiLimiter: ratelimit.New(perMinute, time.Minute),
		verbose:   cfg.Verbose,
	}

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           s.routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s, nil
}

// NewWithDeps creates a server with injected collaborators, used by tests.
func NewWithDeps(store Store, renderer Renderer, ai llm.Client, limiter *ratelimit.Limiter) *Server {
	if limiter == nil {
		limiter = ratelimit.New(defaultAIRequestsPerMinute, time.Minute)
	}
	s := &Server{store: store, renderer: renderer, ai: ai, aiLimiter: limiter}
	s.httpServer = &http.Server{Handler: s.routes()}
	return s
}

// Handler exposes the router, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)

	// CV CRUD
	mux.HandleFunc("POST /cvs", s.handleCreateCV)
	mux.HandleFunc("GET /cvs", s.handleListCVs)
	mux.HandleFunc("GET /cvs/{id}", s.handleGetCV)
	mux.HandleFunc("PUT /cvs/{id}", s.handleUpdateCV)
	mux.HandleFunc("DELETE /cvs/{id}", s.handleDeleteCV)

	// Rendering
	mux.HandleFunc("POST /cvs/{id}/pdf", s.handleRenderCV)
	mux.HandleFunc("POST /cvs/{id}/plan", s.handlePlanCV)
	mux.HandleFunc("POST /render/preview", s.handlePreview)

	// Themes
	mux.HandleFunc("GET /themes", s.handleListThemes)
	mux.HandleFunc("GET /themes/{name}", s.handleGetTheme)
	mux.HandleFunc("PUT /themes/{name}", s.handlePutTheme)
	mux.HandleFunc("DELETE /themes/{name}", s.handleDeleteTheme)

	// AI endpoints
	mux.HandleFunc("POST /ai/extract", s.handleExtract)
	mux.HandleFunc("POST /ai/tailor", s.handleTailor)
	mux.HandleFunc("POST /ai/cover-letter", s.handleCoverLetter)

	return mux
}

// Start runs the server until SIGINT/SIGTERM, then shuts down gracefully.
func (s *Server) Start() error {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("[SERVER] listening on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-stop:
		log.Printf("[SERVER] received %s, shutting down", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	if database, ok := s.store.(*db.DB); ok {
		database.Close()
	}
	if s.ai != nil {
		if err := s.ai.Close(); err != nil {
			log.Printf("[SERVER] warning: failed to close AI client: %v", err)
		}
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// writeJSON writes a JSON response body.
func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("[SERVER] failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error body with the status for the error.
func (s *Server) errorResponse(w http.ResponseWriter, err error) {
	status := HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		log.Printf("[SERVER] %d: %v", status, err)
	}
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
