// Package api provides the HTTP API server and handlers for the book club catalog.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/bookclubapp/bookclub-server/internal/http/response"
	"github.com/bookclubapp/bookclub-server/internal/service"
	"github.com/bookclubapp/bookclub-server/internal/validation"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	bookService   *service.BookService
	ratingService *service.RatingService
	validator     *validation.Validator
	router        *chi.Mux
	logger        *slog.Logger
}

// NewServer creates a new HTTP server with all routes configured.
func NewServer(bookService *service.BookService, ratingService *service.RatingService, logger *slog.Logger) *Server {
	s := &Server{
		bookService:   bookService,
		ratingService: ratingService,
		validator:     validation.New(),
		router:        chi.NewRouter(),
		logger:        logger,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// setupMiddleware configures middleware stack.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))
}

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() {
	// Health check.
	s.router.Get("/health", s.handleHealthCheck)

	s.router.Route("/books", func(r chi.Router) {
		r.Post("/", s.handleCreateBook)
		r.Get("/", s.handleQueryBooks)
		r.Get("/{id}", s.handleGetBook)
		r.Put("/{id}", s.handleReplaceBook)
		r.Delete("/{id}", s.handleDeleteBook)
	})

	s.router.Route("/ratings", func(r chi.Router) {
		r.Get("/", s.handleListRatings)
		r.Get("/{id}", s.handleGetRating)
		r.Post("/{id}/values", s.handlePostRatingValue)
	})

	s.router.Get("/top", s.handleTopBooks)
}

// handleHealthCheck returns server health status.
func (s *Server) handleHealthCheck(w http.ResponseWriter, _ *http.Request) {
	response.Success(w, map[string]string{
		"status": "healthy",
	}, s.logger)
}
