// Package server hosts the HTTP shell: a JSON API for converting and
// previewing schedules, and a small embedded web form. All parsing happens
// in the core packages; handlers only move bytes and surface errors.
package server

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/crewcal/crewcal/internal/config"
)

// Server wires configuration, router, and HTTP server lifecycle.
type Server struct {
	cfg config.Application
	srv *http.Server
}

// New constructs the full HTTP application, ready to Run().
func New(cfg config.Application) *Server {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	h := NewHandler(cfg.ExcludeNames)
	r.HandleFunc("/api/convert", h.Convert).Methods("POST")
	r.HandleFunc("/api/preview", h.Preview).Methods("POST")

	if cfg.Frontend.Enabled {
		r.PathPrefix("/").Handler(frontendHandler()).Methods("GET")
	}

	srv := &http.Server{
		Handler:      r,
		Addr:         cfg.Listen,
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{cfg: cfg, srv: srv}
}

// Run starts the HTTP server and blocks.
func (s *Server) Run() error {
	log.Infof("Starting server on %s", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Router exposes the configured router for tests.
func (s *Server) Router() http.Handler {
	return s.srv.Handler
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.WithFields(log.Fields{
			"method":   r.Method,
			"path":     r.URL.Path,
			"duration": time.Since(start).String(),
		}).Debug("request handled")
	})
}
