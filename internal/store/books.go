package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bookclubapp/bookclub-server/internal/domain"
	"github.com/dgraph-io/badger/v4"
)

const (
	bookPrefix       = "book:"
	ratingPrefix     = "rating:"
	bookByISBNPrefix = "idx:books:isbn:"
)

// Book Operations

// CreateBookWithRating creates a book and its paired empty rating in a
// single transaction. The ISBN uniqueness index is checked and written
// inside the same transaction, so two concurrent creates with the same
// ISBN cannot both succeed.
func (s *Store) CreateBookWithRating(ctx context.Context, book *domain.Book, rating *domain.Rating) error {
	key := []byte(bookPrefix + book.ID)
	isbnKey := []byte(bookByISBNPrefix + book.ISBN)

	err := s.db.Update(func(txn *badger.Txn) error {
		// Reject an ISBN already owned by a live book.
		_, err := txn.Get(isbnKey)
		if err == nil {
			return ErrBookExists
		}
		if !errors.Is(err, badger.ErrKeyNotFound) {
			return fmt.Errorf("check isbn index: %w", err)
		}

		data, err := json.Marshal(book)
		if err != nil {
			return fmt.Errorf("marshal book: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}

		if err := txn.Set(isbnKey, []byte(book.ID)); err != nil {
			return err
		}

		ratingData, err := json.Marshal(rating)
		if err != nil {
			return fmt.Errorf("marshal rating: %w", err)
		}
		return txn.Set([]byte(ratingPrefix+rating.ID), ratingData)
	})
	if err != nil {
		if errors.Is(err, ErrBookExists) {
			return ErrBookExists
		}
		return fmt.Errorf("create book: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "book created",
			slog.String("id", book.ID),
			slog.String("title", book.Title),
			slog.String("isbn", book.ISBN),
		)
	}
	return nil
}

// GetBook retrieves a book by ID.
func (s *Store) GetBook(ctx context.Context, id string) (*domain.Book, error) {
	key := []byte(bookPrefix + id)

	var book domain.Book
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &book)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get book: %w", err)
	}
	return &book, nil
}

// GetBookByISBN retrieves a book through the ISBN uniqueness index.
func (s *Store) GetBookByISBN(ctx context.Context, isbn string) (*domain.Book, error) {
	isbnKey := []byte(bookByISBNPrefix + isbn)

	var bookID string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(isbnKey)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			bookID = string(val)
			return nil
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, fmt.Errorf("get book by isbn: %w", err)
	}
	return s.GetBook(ctx, bookID)
}

// ListBooks returns all books in key order. The order is deterministic,
// so repeated queries against unchanged state return identical results.
func (s *Store) ListBooks(ctx context.Context) ([]*domain.Book, error) {
	books := []*domain.Book{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(bookPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var book domain.Book
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &book)
			})
			if err != nil {
				return err
			}
			books = append(books, &book)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return books, nil
}

// ReplaceBook overwrites an existing book and syncs the denormalized
// title onto its paired rating, all in one transaction. When the ISBN
// changes, the uniqueness index is moved; an ISBN already owned by a
// different book is rejected with ErrBookExists.
func (s *Store) ReplaceBook(ctx context.Context, book *domain.Book) error {
	key := []byte(bookPrefix + book.ID)

	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		var oldBook domain.Book
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &oldBook)
		}); err != nil {
			return fmt.Errorf("unmarshal book: %w", err)
		}

		if oldBook.ISBN != book.ISBN {
			newISBNKey := []byte(bookByISBNPrefix + book.ISBN)
			if existing, err := txn.Get(newISBNKey); err == nil {
				var ownerID string
				if err := existing.Value(func(val []byte) error {
					ownerID = string(val)
					return nil
				}); err != nil {
					return err
				}
				if ownerID != book.ID {
					return ErrBookExists
				}
			} else if !errors.Is(err, badger.ErrKeyNotFound) {
				return fmt.Errorf("check isbn index: %w", err)
			}

			if err := txn.Delete([]byte(bookByISBNPrefix + oldBook.ISBN)); err != nil {
				return err
			}
			if err := txn.Set(newISBNKey, []byte(book.ID)); err != nil {
				return err
			}
		}

		data, err := json.Marshal(book)
		if err != nil {
			return fmt.Errorf("marshal book: %w", err)
		}
		if err := txn.Set(key, data); err != nil {
			return err
		}

		// Sync the denormalized title onto the paired rating.
		ratingKey := []byte(ratingPrefix + book.ID)
		ratingItem, err := txn.Get(ratingKey)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrRatingNotFound
			}
			return err
		}
		var rating domain.Rating
		if err := ratingItem.Value(func(val []byte) error {
			return json.Unmarshal(val, &rating)
		}); err != nil {
			return fmt.Errorf("unmarshal rating: %w", err)
		}
		rating.Title = book.Title
		ratingData, err := json.Marshal(&rating)
		if err != nil {
			return fmt.Errorf("marshal rating: %w", err)
		}
		return txn.Set(ratingKey, ratingData)
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) || errors.Is(err, ErrBookExists) || errors.Is(err, ErrRatingNotFound) {
			return err
		}
		return fmt.Errorf("replace book: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "book replaced",
			slog.String("id", book.ID),
			slog.String("title", book.Title),
		)
	}
	return nil
}

// DeleteBook removes a book, its ISBN index entry and its paired rating
// in one transaction.
func (s *Store) DeleteBook(ctx context.Context, id string) error {
	key := []byte(bookPrefix + id)

	err := s.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrBookNotFound
			}
			return err
		}

		var book domain.Book
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &book)
		}); err != nil {
			return fmt.Errorf("unmarshal book: %w", err)
		}

		if err := txn.Delete(key); err != nil {
			return err
		}
		if err := txn.Delete([]byte(bookByISBNPrefix + book.ISBN)); err != nil {
			return err
		}
		return txn.Delete([]byte(ratingPrefix + id))
	})
	if err != nil {
		if errors.Is(err, ErrBookNotFound) {
			return ErrBookNotFound
		}
		return fmt.Errorf("delete book: %w", err)
	}

	if s.logger != nil {
		s.logger.LogAttrs(ctx, slog.LevelInfo, "book deleted",
			slog.String("id", id),
		)
	}
	return nil
}
