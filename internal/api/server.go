package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/fdemusso/FlashCardIA/internal/config"
	"github.com/fdemusso/FlashCardIA/internal/genai"
	"github.com/fdemusso/FlashCardIA/internal/pipeline"
)

// Server is the HTTP API for the flashcard generation service.
type Server struct {
	router chi.Router
	runner *pipeline.Runner
	model  *genai.Client
	log    *slog.Logger
	cfg    config.Config
}

// NewServer creates and configures the HTTP server. The model client
// may be nil in tests; health and stats then report unavailable.
func NewServer(runner *pipeline.Runner, model *genai.Client, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		runner: runner,
		model:  model,
		log:    log,
		cfg:    cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   s.cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))

	r.Get("/health", s.handleHealth)
	r.Post("/api/generate", s.handleGenerate)
	r.Get("/api/stats/llm", s.handleLLMStats)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if s.model == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]any{
			"status": "unhealthy",
			"error":  "model client not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	status := s.model.CheckAvailability(ctx)
	resp := map[string]any{
		"status":          "healthy",
		"model":           s.model.Model(),
		"model_available": status.ModelAvailable,
		"models":          status.Models,
	}
	if !status.Available {
		resp["status"] = "unhealthy"
		resp["error"] = status.Error
		w.WriteHeader(http.StatusServiceUnavailable)
	} else if !status.ModelAvailable {
		resp["status"] = "degraded"
	}
	json.NewEncoder(w).Encode(resp)
}
