// Package httpserver exposes the catalog API over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/dmitrijs2005/catalog/internal/server/httpserver/mw"
)

// Server wraps the HTTP server and its dependencies.
type Server struct {
	http *http.Server
	deps Deps
}

// NewRouter builds the handler tree with the global middlewares.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(mw.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(d.Config.RequestTimeout))
	r.Use(mw.Log(d.Logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.CORSAllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", middleware.RequestIDHeader},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	registerRoutes(r, d)
	return r
}

// New builds the HTTP server listening on the configured endpoint.
func New(d Deps) *Server {
	s := &http.Server{
		Addr:              d.Config.EndpointAddr,
		Handler:           NewRouter(d),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       d.Config.RequestTimeout,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}
	return &Server{http: s, deps: d}
}

// Start runs the HTTP server (blocks until error or shutdown).
func (s *Server) Start(ctx context.Context) error {
	s.deps.Logger.Info(ctx, "HTTP server listening", "addr", s.http.Addr)
	err := s.http.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Stop gracefully shuts down the server within ctx's deadline.
func (s *Server) Stop(ctx context.Context) error {
	s.deps.Logger.Info(ctx, "HTTP server shutting down")
	return s.http.Shutdown(ctx)
}
