package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBook_Field(t *testing.T) {
	book := &Book{
		ID:            "7",
		Title:         "Dune",
		Authors:       "Frank Herbert",
		ISBN:          "9780441013593",
		Publisher:     "Ace",
		PublishedDate: "1965",
		Genre:         "Science Fiction",
	}

	tests := []struct {
		name      string
		wantValue string
		wantOK    bool
	}{
		{"id", "7", true},
		{"title", "Dune", true},
		{"authors", "Frank Herbert", true},
		{"ISBN", "9780441013593", true},
		{"publisher", "Ace", true},
		{"publishedDate", "1965", true},
		{"genre", "Science Fiction", true},
		{"isbn", "", false},
		{"Title", "", false},
		{"shelf", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, ok := book.Field(tt.name)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantValue, value)
		})
	}
}

func TestIsAcceptedGenre(t *testing.T) {
	for _, genre := range AcceptedGenres {
		assert.True(t, IsAcceptedGenre(genre), genre)
	}

	assert.False(t, IsAcceptedGenre("fiction"), "matching is case-sensitive")
	assert.False(t, IsAcceptedGenre("Cooking"))
	assert.False(t, IsAcceptedGenre(""))
}

func TestMean(t *testing.T) {
	assert.Equal(t, float64(0), Mean(nil))
	assert.Equal(t, float64(0), Mean([]int{}))
	assert.Equal(t, float64(4), Mean([]int{4}))
	assert.Equal(t, 3.5, Mean([]int{4, 5, 3, 2}))
	assert.InDelta(t, 4.333333, Mean([]int{4, 5, 4}), 0.000001)
}
