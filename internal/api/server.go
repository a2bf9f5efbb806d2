// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/taibuivan/gamereview/internal/catalog/category"
	"github.com/taibuivan/gamereview/internal/catalog/comment"
	"github.com/taibuivan/gamereview/internal/catalog/review"
	"github.com/taibuivan/gamereview/internal/platform/config"
	"github.com/taibuivan/gamereview/internal/platform/constants"
	"github.com/taibuivan/gamereview/internal/platform/metrics"
	"github.com/taibuivan/gamereview/internal/platform/middleware"
	"github.com/taibuivan/gamereview/internal/platform/respond"
	"github.com/taibuivan/gamereview/internal/users/user"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
type Handlers struct {
	// Liveness is the /health handler, always 200 while the process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler, 200 only when postgres answers.
	Readiness http.HandlerFunc

	Category *category.Handler
	Review   *review.Handler
	Comment  *comment.Handler
	User     *user.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups. A nil collector disables metrics.
func NewServer(ctx context.Context, cfg *config.Config, log *slog.Logger, collector *metrics.Metrics, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	if collector != nil {
		r.Use(middleware.Metrics(collector))
	}
	r.Use(middleware.PanicRecovery())
	r.Use(middleware.RateLimit(ctx, constants.DefaultRateLimitRPS, constants.DefaultRateLimitBurst))
	r.Use(middleware.CORS(cfg))
	r.Use(chimw.CleanPath)

	// Anything outside the route table, whatever the method
	r.NotFound(respond.RouteNotFound)
	r.MethodNotAllowed(respond.RouteNotFound)

	// # Infrastructure Endpoints
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)
	if collector != nil {
		r.Method(http.MethodGet, "/metrics", collector.Handler())
	}

	// # Application API
	r.Route("/api", func(api chi.Router) {
		api.Route("/categories", h.Category.RegisterRoutes)
		api.Route("/reviews", func(reviews chi.Router) {
			h.Review.RegisterRoutes(reviews)
			h.Comment.RegisterReviewRoutes(reviews)
		})
		api.Route("/comments", h.Comment.RegisterRoutes)
		api.Route("/users", h.User.RegisterRoutes)
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// Handler exposes the routed handler, for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(ctx)
}
