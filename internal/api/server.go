package api

import (
	"context"
	"net/http"
	"time"

	"github.com/aws11/account-api/internal/auth"
)

// Server wraps the HTTP server and its configured router.
type Server struct {
	handler http.Handler
	server  *http.Server
}

// NewServer wires handlers, health checking, and auth into a ready router.
func NewServer(h *Handlers, hc *HealthChecker, verifier *auth.Verifier, corsOrigins []string) *Server {
	return &Server{handler: SetupRoutes(h, hc, verifier, corsOrigins)}
}

// ListenAndServe starts the HTTP server on addr.
func (s *Server) ListenAndServe(addr string) error {
	s.server = &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler returns the HTTP handler for testing.
func (s *Server) Handler() http.Handler {
	return s.handler
}
