package store

import (
	"fmt"
	"strconv"
)

// counterKey is where Badger keeps the identifier sequence cursor.
const counterKey = "counter:books"

// AllocateID issues the next book identifier as a decimal string,
// starting at "1". The sequence is Badger's atomic fetch-and-increment,
// so concurrent allocations never observe the same value, and ids are
// never reused even after the book they named is deleted.
func (s *Store) AllocateID() (string, error) {
	n, err := s.seq.Next()
	if err != nil {
		return "", fmt.Errorf("allocate id: %w", err)
	}
	return strconv.FormatUint(n+1, 10), nil
}
