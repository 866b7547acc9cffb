package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bookclubapp/bookclub-server/internal/domain"
	"github.com/stretchr/testify/require"
)

func setupTestStore(t *testing.T) (*Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "store-test-*")
	require.NoError(t, err)

	dbPath := filepath.Join(tmpDir, "test.db")
	s, err := New(dbPath, nil)
	require.NoError(t, err)

	cleanup := func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	}

	return s, cleanup
}

// Helper to build a book and its paired empty rating.
func testBookPair(id, isbn string) (*domain.Book, *domain.Rating) {
	book := &domain.Book{
		ID:            id,
		Title:         "Test Book " + id,
		Authors:       "Test Author",
		ISBN:          isbn,
		Publisher:     "Test Publisher",
		PublishedDate: "2020-01-01",
		Genre:         "Fiction",
	}
	rating := &domain.Rating{
		ID:      id,
		Title:   book.Title,
		Values:  []int{},
		Average: 0,
	}
	return book, rating
}
