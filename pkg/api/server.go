// Package api exposes the transcript analytics service over HTTP: transcript
// upload, per-upload statistics, and a health check
package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/prabeshj/chatlytics/internal/config"
	"github.com/prabeshj/chatlytics/pkg/analysis"
	"github.com/prabeshj/chatlytics/pkg/ingestion"
	"github.com/prabeshj/chatlytics/pkg/storage"
)

// Server represents the API server
type Server struct {
	cfg      *config.Config
	log      *zap.Logger
	store    storage.Store
	parser   *ingestion.Parser
	analyzer *analysis.Analyzer
}

// NewServer creates a new API server instance
func NewServer(cfg *config.Config, log *zap.Logger, store storage.Store) *Server {
	return &Server{
		cfg:      cfg,
		log:      log,
		store:    store,
		parser:   ingestion.NewParser(),
		analyzer: analysis.NewAnalyzer(),
	}
}

// Router returns the HTTP handler for the server
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/v1/uploads", s.handleUpload)
	mux.HandleFunc("GET /api/v1/uploads/{id}/stats", s.handleStats)

	return s.withMiddleware(mux)
}

// withMiddleware wraps the handler with common middleware
func (s *Server) withMiddleware(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		s.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path))
		h.ServeHTTP(w, r)
	})
}

// handleHealth returns the health status of the server
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Ping(r.Context()); err != nil {
		s.writeError(w, http.StatusServiceUnavailable, "storage unavailable")
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "chatlytics",
	})
}

// writeJSON writes v as a JSON response with the given status
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", zap.Error(err))
	}
}

// writeError writes a JSON error body with the given status
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]string{"error": msg})
}
