// Package server exposes the analysis pipeline over HTTP.
//
// Request-shape validation happens here and only here: the handlers reject
// missing or empty required fields with a 400 and a JSON error envelope, so
// the core packages can assume well-formed strings and never fail on finite
// input. Every response uses the same {"success", "data", "error"} envelope.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"runtime"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/revlens/revlens/internal/classifier"
	"github.com/revlens/revlens/internal/config"
)

// Version is stamped at build time via -ldflags.
var Version = "dev"

// Server wires the HTTP routes to the analysis pipeline.
type Server struct {
	cfg    *config.Config
	router *chi.Mux
}

// New builds a Server with its routes mounted.
func New(cfg *config.Config) *Server {
	if cfg == nil {
		cfg = config.Default()
	}

	// the classifier encoding bounds come from configuration
	classifier.SetDefault(classifier.New(classifier.Options{
		VocabSize: cfg.Analysis.VocabSize,
		MaxSeqLen: cfg.Analysis.MaxSeqLen,
	}))

	s := &Server{cfg: cfg, router: chi.NewRouter()}

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Recoverer)
	s.router.Use(requestLogger)

	s.router.Get("/health", s.handleHealth)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/info", s.handleInfo)
		r.Post("/analyze", s.handleAnalyze)
		r.Post("/analyze/batch", s.handleAnalyzeBatch)
		r.Post("/compare", s.handleCompare)
		r.Post("/features", s.handleFeatures)
		r.Post("/distribution", s.handleDistribution)
		r.Post("/dashboard", s.handleDashboard)
	})

	return s
}

// Handler returns the mounted route tree.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe runs the server until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("listening", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// requestLogger logs one line per request through slog.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		slog.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start))
	})
}

// envelope is the uniform response shape.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(envelope{Success: true, Data: data}); err != nil {
		slog.Error("encoding response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

// decodeBody parses the JSON request body into dst, rejecting unknown fields.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"name":       "revlens",
		"version":    Version,
		"go_version": runtime.Version(),
	})
}
