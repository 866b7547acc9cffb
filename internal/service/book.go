package service

import (
	"context"
	"log/slog"

	"github.com/bookclubapp/bookclub-server/internal/domain"
	"github.com/bookclubapp/bookclub-server/internal/errors"
	"github.com/bookclubapp/bookclub-server/internal/store"
)

// BookService orchestrates book lifecycle operations.
type BookService struct {
	store    *store.Store
	enricher *Enricher
	logger   *slog.Logger
}

// NewBookService creates a new book service.
func NewBookService(store *store.Store, enricher *Enricher, logger *slog.Logger) *BookService {
	return &BookService{
		store:    store,
		enricher: enricher,
		logger:   logger,
	}
}

// CreateBookInput carries the caller-supplied fields of a new book.
type CreateBookInput struct {
	Title string
	ISBN  string
	Genre string
}

// ReplaceBookInput carries the full field set of a book replacement.
type ReplaceBookInput struct {
	ID            string
	Title         string
	Authors       string
	ISBN          string
	Publisher     string
	PublishedDate string
	Genre         string
}

// Create validates the input, enriches the ISBN, allocates an id and
// persists the book together with its paired empty rating. Nothing is
// stored if any step fails.
func (s *BookService) Create(ctx context.Context, in CreateBookInput) (string, error) {
	if !domain.IsAcceptedGenre(in.Genre) {
		return "", errors.InvalidGenre("not an acceptable genre")
	}

	if _, err := s.store.GetBookByISBN(ctx, in.ISBN); err == nil {
		return "", errors.DuplicateISBN("a book with this ISBN number already exists")
	} else if !errors.Is(err, store.ErrBookNotFound) {
		return "", errors.Internal("failed to check ISBN").WithCause(err)
	}

	enrichment, err := s.enricher.Enrich(ctx, in.ISBN)
	if err != nil {
		return "", err
	}

	id, err := s.store.AllocateID()
	if err != nil {
		return "", errors.Internal("failed to allocate id").WithCause(err)
	}

	book := &domain.Book{
		ID:            id,
		Title:         in.Title,
		Authors:       enrichment.Authors,
		ISBN:          in.ISBN,
		Publisher:     enrichment.Publisher,
		PublishedDate: enrichment.PublishedDate,
		Genre:         in.Genre,
	}
	rating := &domain.Rating{
		ID:      id,
		Title:   in.Title,
		Values:  []int{},
		Average: 0,
	}

	if err := s.store.CreateBookWithRating(ctx, book, rating); err != nil {
		if errors.Is(err, store.ErrBookExists) {
			return "", errors.DuplicateISBN("a book with this ISBN number already exists")
		}
		return "", errors.Internal("failed to create book").WithCause(err)
	}

	return id, nil
}

// Get retrieves a single book by id.
func (s *BookService) Get(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.store.GetBook(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return nil, errors.NotFound("book not found")
		}
		return nil, errors.Internal("failed to get book").WithCause(err)
	}
	return book, nil
}

// Replace overwrites every field of an existing book and propagates the
// title to the paired rating.
func (s *BookService) Replace(ctx context.Context, id string, in ReplaceBookInput) error {
	if in.ID != id {
		return errors.Validation("body id must match the path id")
	}
	if !domain.IsAcceptedGenre(in.Genre) {
		return errors.InvalidGenre("not an acceptable genre")
	}

	book := &domain.Book{
		ID:            in.ID,
		Title:         in.Title,
		Authors:       in.Authors,
		ISBN:          in.ISBN,
		Publisher:     in.Publisher,
		PublishedDate: in.PublishedDate,
		Genre:         in.Genre,
	}

	if err := s.store.ReplaceBook(ctx, book); err != nil {
		switch {
		case errors.Is(err, store.ErrBookNotFound), errors.Is(err, store.ErrRatingNotFound):
			return errors.NotFound("book not found")
		case errors.Is(err, store.ErrBookExists):
			return errors.DuplicateISBN("a book with this ISBN number already exists")
		default:
			return errors.Internal("failed to replace book").WithCause(err)
		}
	}
	return nil
}

// Delete removes a book and its paired rating together.
func (s *BookService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteBook(ctx, id); err != nil {
		if errors.Is(err, store.ErrBookNotFound) {
			return errors.NotFound("book not found")
		}
		return errors.Internal("failed to delete book").WithCause(err)
	}
	return nil
}

// Query returns every book matching all filter entries with exact string
// equality. A filter key that names no book field matches nothing.
func (s *BookService) Query(ctx context.Context, filter map[string]string) ([]*domain.Book, error) {
	books, err := s.store.ListBooks(ctx)
	if err != nil {
		return nil, errors.Internal("failed to list books").WithCause(err)
	}

	for key, want := range filter {
		matched := books[:0:0]
		for _, book := range books {
			if value, ok := book.Field(key); ok && value == want {
				matched = append(matched, book)
			}
		}
		books = matched
	}

	if books == nil {
		books = []*domain.Book{}
	}
	return books, nil
}
