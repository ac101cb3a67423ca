// Package server exposes the scheduling engine over HTTP: one endpoint to
// run a single policy, one to compare all of them. Handlers are stateless —
// every request recomputes from its own input, so concurrent calls need no
// coordination.
package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

// Version reported by the health endpoint.
const Version = "0.1.0"

// Server is the seeksim REST API server.
type Server struct {
	router    chi.Router
	logger    *logrus.Logger
	startTime time.Time
}

// New creates a Server with all routes registered.
func New(logger *logrus.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger,
		startTime: time.Now(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Handler returns the http.Handler for this server.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() {
	r := s.router

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware(s.logger))
	r.Use(corsMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Post("/simulate", s.handleSimulate)
	r.Post("/compare", s.handleCompare)
}
