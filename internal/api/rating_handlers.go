package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubapp/bookclub-server/internal/http/response"
)

// ratingValueRequest is the body of a rating submission. The value is a
// number on the wire; integer bounds are enforced by the service.
type ratingValueRequest struct {
	Value *float64 `json:"value" validate:"required"`
}

// handleListRatings returns all ratings, or a single one when the
// recognized `id` query parameter is given. Any other query shape is
// rejected.
func (s *Server) handleListRatings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query()
	_, hasID := query["id"]
	if len(query) > 1 || (len(query) == 1 && !hasID) {
		response.Error(w, http.StatusUnprocessableEntity, "queries can only be of the form id=<string>", s.logger)
		return
	}

	if hasID {
		rating, err := s.ratingService.Get(ctx, query.Get("id"))
		if err != nil {
			response.HandleError(w, err, s.logger)
			return
		}
		response.Success(w, rating, s.logger)
		return
	}

	ratings, err := s.ratingService.List(ctx)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, ratings, s.logger)
}

// handleGetRating returns a single rating by id.
func (s *Server) handleGetRating(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	rating, err := s.ratingService.Get(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, rating, s.logger)
}

// handlePostRatingValue appends a value to a book's rating and reports
// the recomputed average.
func (s *Server) handlePostRatingValue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req ratingValueRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	average, err := s.ratingService.Rate(ctx, id, *req.Value)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Message(w, http.StatusCreated,
		fmt.Sprintf("book with id %s successfully rated %v. New average rating: %v", id, *req.Value, average),
		s.logger)
}

// handleTopBooks returns the tie-aware ranking of the best-rated books.
func (s *Server) handleTopBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	top, err := s.ratingService.TopBooks(ctx)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, top, s.logger)
}
