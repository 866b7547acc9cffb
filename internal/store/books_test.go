package store

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCreateBookWithRating tests creating a book and its paired rating
func TestCreateBookWithRating(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	book, rating := testBookPair("1", "9780140449136")

	err := store.CreateBookWithRating(ctx, book, rating)
	require.NoError(t, err)

	retrieved, err := store.GetBook(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, book.Title, retrieved.Title)
	assert.Equal(t, book.ISBN, retrieved.ISBN)

	pairedRating, err := store.GetRating(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, book.Title, pairedRating.Title)
	assert.Empty(t, pairedRating.Values)
	assert.Zero(t, pairedRating.Average)
}

// TestCreateBookWithRating_DuplicateISBN tests that a duplicate ISBN is rejected
func TestCreateBookWithRating_DuplicateISBN(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	book, rating := testBookPair("1", "9780140449136")
	require.NoError(t, store.CreateBookWithRating(ctx, book, rating))

	dup, dupRating := testBookPair("2", "9780140449136")
	err := store.CreateBookWithRating(ctx, dup, dupRating)
	assert.ErrorIs(t, err, ErrBookExists)

	// The failed create must not leave a partial pair behind.
	_, err = store.GetBook(ctx, "2")
	assert.ErrorIs(t, err, ErrBookNotFound)
	_, err = store.GetRating(ctx, "2")
	assert.ErrorIs(t, err, ErrRatingNotFound)
}

// TestGetBook_NotFound tests getting a nonexistent book
func TestGetBook_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	_, err := store.GetBook(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

// TestGetBookByISBN tests the ISBN index lookup
func TestGetBookByISBN(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	book, rating := testBookPair("1", "9780140449136")
	require.NoError(t, store.CreateBookWithRating(ctx, book, rating))

	retrieved, err := store.GetBookByISBN(ctx, "9780140449136")
	require.NoError(t, err)
	assert.Equal(t, "1", retrieved.ID)

	_, err = store.GetBookByISBN(ctx, "0000000000000")
	assert.ErrorIs(t, err, ErrBookNotFound)
}

// TestListBooks tests listing all books with deterministic ordering
func TestListBooks(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	for i := 1; i <= 3; i++ {
		book, rating := testBookPair(fmt.Sprintf("%d", i), fmt.Sprintf("isbn-%d", i))
		require.NoError(t, store.CreateBookWithRating(ctx, book, rating))
	}

	books, err := store.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 3)

	// Repeated listing of unchanged state returns identical ordering.
	again, err := store.ListBooks(ctx)
	require.NoError(t, err)
	assert.Equal(t, books, again)
}

// TestReplaceBook tests full replacement and rating title sync
func TestReplaceBook(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	book, rating := testBookPair("1", "9780140449136")
	require.NoError(t, store.CreateBookWithRating(ctx, book, rating))

	updated := *book
	updated.Title = "Renamed"
	updated.Genre = "Fantasy"
	require.NoError(t, store.ReplaceBook(ctx, &updated))

	retrieved, err := store.GetBook(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", retrieved.Title)
	assert.Equal(t, "Fantasy", retrieved.Genre)

	pairedRating, err := store.GetRating(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", pairedRating.Title)
}

// TestReplaceBook_ISBNChange tests that the ISBN index follows the book
func TestReplaceBook_ISBNChange(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	book, rating := testBookPair("1", "9780140449136")
	require.NoError(t, store.CreateBookWithRating(ctx, book, rating))

	updated := *book
	updated.ISBN = "9780141182551"
	require.NoError(t, store.ReplaceBook(ctx, &updated))

	_, err := store.GetBookByISBN(ctx, "9780140449136")
	assert.ErrorIs(t, err, ErrBookNotFound)

	moved, err := store.GetBookByISBN(ctx, "9780141182551")
	require.NoError(t, err)
	assert.Equal(t, "1", moved.ID)
}

// TestReplaceBook_ISBNCollision tests that stealing another book's ISBN fails
func TestReplaceBook_ISBNCollision(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	first, firstRating := testBookPair("1", "isbn-1")
	require.NoError(t, store.CreateBookWithRating(ctx, first, firstRating))
	second, secondRating := testBookPair("2", "isbn-2")
	require.NoError(t, store.CreateBookWithRating(ctx, second, secondRating))

	updated := *second
	updated.ISBN = "isbn-1"
	err := store.ReplaceBook(ctx, &updated)
	assert.ErrorIs(t, err, ErrBookExists)
}

// TestReplaceBook_NotFound tests replacing a nonexistent book
func TestReplaceBook_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	book, _ := testBookPair("42", "isbn-42")
	err := store.ReplaceBook(context.Background(), book)
	assert.ErrorIs(t, err, ErrBookNotFound)
}

// TestDeleteBook tests that delete removes the book, index and rating together
func TestDeleteBook(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	ctx := context.Background()
	book, rating := testBookPair("1", "9780140449136")
	require.NoError(t, store.CreateBookWithRating(ctx, book, rating))

	require.NoError(t, store.DeleteBook(ctx, "1"))

	_, err := store.GetBook(ctx, "1")
	assert.ErrorIs(t, err, ErrBookNotFound)
	_, err = store.GetRating(ctx, "1")
	assert.ErrorIs(t, err, ErrRatingNotFound)
	_, err = store.GetBookByISBN(ctx, "9780140449136")
	assert.ErrorIs(t, err, ErrBookNotFound)

	// The ISBN is free for reuse after deletion.
	fresh, freshRating := testBookPair("2", "9780140449136")
	require.NoError(t, store.CreateBookWithRating(ctx, fresh, freshRating))
}

// TestDeleteBook_NotFound tests deleting a nonexistent book
func TestDeleteBook_NotFound(t *testing.T) {
	store, cleanup := setupTestStore(t)
	defer cleanup()

	err := store.DeleteBook(context.Background(), "nonexistent")
	assert.ErrorIs(t, err, ErrBookNotFound)
}
