package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bookclubapp/bookclub-server/internal/http/response"
	"github.com/bookclubapp/bookclub-server/internal/service"
)

// createBookRequest is the exact field set accepted on book creation.
// Pointer fields distinguish absent members from empty strings.
type createBookRequest struct {
	Title *string `json:"title" validate:"required"`
	ISBN  *string `json:"ISBN" validate:"required"`
	Genre *string `json:"genre" validate:"required"`
}

// replaceBookRequest carries the full seven-field book shape required
// for replacement.
type replaceBookRequest struct {
	ID            *string `json:"id" validate:"required"`
	Title         *string `json:"title" validate:"required"`
	Authors       *string `json:"authors" validate:"required"`
	ISBN          *string `json:"ISBN" validate:"required"`
	Publisher     *string `json:"publisher" validate:"required"`
	PublishedDate *string `json:"publishedDate" validate:"required"`
	Genre         *string `json:"genre" validate:"required"`
}

// handleCreateBook creates a book, enriching it from the metadata source.
func (s *Server) handleCreateBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req createBookRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	id, err := s.bookService.Create(ctx, service.CreateBookInput{
		Title: *req.Title,
		ISBN:  *req.ISBN,
		Genre: *req.Genre,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Created(w, map[string]string{"id": id}, s.logger)
}

// handleQueryBooks returns all books matching the query-string filters.
// Every parameter is an exact-equality filter against the record's fields.
func (s *Server) handleQueryBooks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter := make(map[string]string)
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			filter[key] = values[0]
		}
	}

	books, err := s.bookService.Query(ctx, filter)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, books, s.logger)
}

// handleGetBook returns a single book by id.
func (s *Server) handleGetBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	book, err := s.bookService.Get(ctx, id)
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, book, s.logger)
}

// handleReplaceBook replaces every field of a book and propagates the
// title to its paired rating.
func (s *Server) handleReplaceBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	var req replaceBookRequest
	if err := s.decodeJSON(r, &req); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	err := s.bookService.Replace(ctx, id, service.ReplaceBookInput{
		ID:            *req.ID,
		Title:         *req.Title,
		Authors:       *req.Authors,
		ISBN:          *req.ISBN,
		Publisher:     *req.Publisher,
		PublishedDate: *req.PublishedDate,
		Genre:         *req.Genre,
	})
	if err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]string{"id": id}, s.logger)
}

// handleDeleteBook removes a book together with its paired rating.
func (s *Server) handleDeleteBook(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := chi.URLParam(r, "id")

	if err := s.bookService.Delete(ctx, id); err != nil {
		response.HandleError(w, err, s.logger)
		return
	}

	response.Success(w, map[string]string{"id": id}, s.logger)
}
