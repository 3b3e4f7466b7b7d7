// Package http exposes a small admin API to inspect and flip trace toggles at runtime.
package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/aretw0/nodetrace"
	"github.com/aretw0/nodetrace/pkg/domain"
	"github.com/aretw0/nodetrace/pkg/toggles"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MasterCategory addresses the master switch in PATCH /toggles/{category}.
const MasterCategory = "master"

// Tracer is the part of *nodetrace.Tracer the admin API needs.
type Tracer interface {
	Toggles() *toggles.Registry
	LogPath() (string, error)
}

var _ Tracer = (*nodetrace.Tracer)(nil)

// Server serves the admin API.
type Server struct {
	Tracer   Tracer
	Gatherer prometheus.Gatherer
	Logger   *slog.Logger
}

// Option configures the handler.
type Option func(*Server)

// WithGatherer mounts GET /metrics for g.
func WithGatherer(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.Gatherer = g
	}
}

// WithLogger sets the logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.Logger = logger
	}
}

// NewHandler creates the admin HTTP handler for tracer.
func NewHandler(tracer Tracer, opts ...Option) http.Handler {
	s := &Server{
		Tracer: tracer,
		Logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.GetHealth)
	r.Get("/info", s.GetInfo)
	r.Get("/toggles", s.GetToggles)
	r.Put("/toggles", s.PutToggles)
	r.Patch("/toggles/{category}", s.PatchToggle)
	r.Get("/logfile", s.GetLogFile)
	if s.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.Gatherer, promhttp.HandlerOpts{}))
	}

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, PUT, PATCH, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ToggleRequest is the body of PATCH /toggles/{category}.
type ToggleRequest struct {
	Enabled *bool `json:"enabled"`
}

// LogFileResponse is the body of GET /logfile.
type LogFileResponse struct {
	Path string `json:"path"`
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GetInfo handles GET /info.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"app":     "nodetrace-admin",
		"version": nodetrace.Version,
	})
}

// GetToggles handles GET /toggles.
func (s *Server) GetToggles(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.Tracer.Toggles().Snapshot())
}

// PutToggles handles PUT /toggles. Omitted fields are switched off.
func (s *Server) PutToggles(w http.ResponseWriter, r *http.Request) {
	var body domain.ToggleSet
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.Logger.Warn("PutToggles: invalid request body", "error", err)
		return
	}

	s.Tracer.Toggles().Apply(body)
	s.writeJSON(w, http.StatusOK, s.Tracer.Toggles().Snapshot())
}

// PatchToggle handles PATCH /toggles/{category}.
func (s *Server) PatchToggle(w http.ResponseWriter, r *http.Request) {
	var body ToggleRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Enabled == nil {
		http.Error(w, `Invalid request body, expected {"enabled": bool}`, http.StatusBadRequest)
		return
	}

	reg := s.Tracer.Toggles()
	name := chi.URLParam(r, "category")
	if name == MasterCategory {
		reg.SetMaster(*body.Enabled)
	} else if err := reg.Set(domain.Category(name), *body.Enabled); err != nil {
		if errors.Is(err, domain.ErrUnknownCategory) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, reg.Snapshot())
}

// GetLogFile handles GET /logfile. It creates the file if nothing was traced yet.
func (s *Server) GetLogFile(w http.ResponseWriter, r *http.Request) {
	path, err := s.Tracer.LogPath()
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		s.Logger.Error("GetLogFile: log file unavailable", "error", err)
		return
	}
	s.writeJSON(w, http.StatusOK, LogFileResponse{Path: path})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.Logger.Error("response encode failed", "error", err)
	}
}
