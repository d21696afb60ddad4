// Package server is the development API server: it implements the full
// GetWay wire contract over in-memory sample data so the CLI and tests
// have a real endpoint to talk to without a deployed backend.
package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/getwaylabs/getway/internal/config"
)

// Server is the GetWay development API server.
type Server struct {
	router    chi.Router
	logger    *slog.Logger
	config    config.ServerConfig
	startTime time.Time
	data      *memStore
}

// New creates a Server with all routes registered and sample data seeded.
func New(cfg config.ServerConfig, logger *slog.Logger) *Server {
	s := &Server{
		router:    chi.NewRouter(),
		logger:    logger.With("component", "server"),
		config:    cfg,
		startTime: time.Now(),
		data:      newMemStore(),
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

	r.Get("/health", s.handleHealth)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.handleLogin)
		r.Post("/register", s.handleRegister)
		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Post("/logout", s.handleLogout)
			r.Get("/profile", s.handleProfile)
		})
	})

	r.Route("/posts", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", s.handleListPosts)
		r.Post("/", s.handleCreatePost)
		r.Post("/{id}/like", s.handleLikePost)
		r.Delete("/{id}", s.handleDeletePost)
	})

	r.Route("/journeys", func(r chi.Router) {
		r.Use(s.requireAuth)
		r.Get("/", s.handleListJourneys)
		r.Post("/", s.handleLogJourney)
		r.Get("/stats", s.handleJourneyStats)
	})

	r.Route("/owner", func(r chi.Router) {
		r.Use(s.requireAuth, s.requireOwner)
		r.Get("/pending", s.handlePendingScientists)
		r.Post("/approve/{id}", s.handleApproveScientist)
		r.Post("/reject/{id}", s.handleRejectScientist)
	})

	r.Route("/analytics", func(r chi.Router) {
		r.Use(s.requireAuth, s.requireDataAccess)
		r.Get("/alerts", s.handleAlerts)
		r.Get("/ridership", s.handleRidership)
	})
}
