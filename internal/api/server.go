package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/dgallion1/doccover/internal/config"
	"github.com/dgallion1/doccover/internal/pipeline"
	"github.com/dgallion1/doccover/internal/report"
)

// Server is the HTTP API server for doccover.
type Server struct {
	router   chi.Router
	analyzer *pipeline.Analyzer
	// cache holds finished reports keyed by snapshot hash and filter.
	cache *lru.Cache[string, *report.Report]
	log   *slog.Logger
	cfg   config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(analyzer *pipeline.Analyzer, log *slog.Logger, cfg config.Config) (*Server, error) {
	cache, err := lru.New[string, *report.Report](max(cfg.CacheSize, 1))
	if err != nil {
		return nil, fmt.Errorf("create report cache: %w", err)
	}
	s := &Server{
		analyzer: analyzer,
		cache:    cache,
		log:      log,
		cfg:      cfg,
	}
	s.setupRoutes()
	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public endpoints.
	r.Get("/health", s.handleHealth)

	// Authenticated endpoints; open when no API key is configured.
	r.Group(func(r chi.Router) {
		if s.cfg.APIKey != "" {
			r.Use(AuthMiddleware(s.cfg.APIKey, s.log))
		}

		r.Post("/api/analyze", s.handleAnalyze)
		r.Get("/api/stats", s.handleStats)
	})

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
