// Package main provides a tool to seed the database with test catalog data.
//
// This writes a small set of books with paired ratings directly through the
// store, skipping metadata enrichment, to exercise filtering and the top
// ranking locally.
//
// Usage:
//
//	DB_PATH=~/BookClub/data/db go run ./cmd/seed
//	DB_PATH=~/BookClub/data/db go run ./cmd/seed --ratings=10
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/bookclubapp/bookclub-server/internal/domain"
	"github.com/bookclubapp/bookclub-server/internal/store"
)

var ratingsPerBook = flag.Int("ratings", 5, "Number of random rating values per book")

type seedBook struct {
	title         string
	authors       string
	isbn          string
	publisher     string
	publishedDate string
	genre         string
}

var catalog = []seedBook{
	{"Dune", "Frank Herbert", "9780441013593", "Ace", "1965", "Science Fiction"},
	{"Foundation", "Isaac Asimov", "9780553293357", "Spectra", "1991", "Science Fiction"},
	{"The Way of Kings", "Brandon Sanderson", "9780765326355", "Tor", "2010-08-31", "Fantasy"},
	{"A Short History of Nearly Everything", "Bill Bryson", "9780767908184", "Broadway Books", "2004", "Science"},
	{"Matilda", "Roald Dahl", "9780142410370", "Puffin", "2007", "Children"},
	{"The Name of the Wind", "Patrick Rothfuss", "9780756404741", "DAW", "2008", "Fantasy"},
}

func main() {
	flag.Parse()

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/BookClub/data/db")
	}

	fmt.Printf("Opening database at: %s\n", dbPath)

	s, err := store.New(dbPath, nil)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}
	defer s.Close()

	ctx := context.Background()

	for _, b := range catalog {
		if _, err := s.GetBookByISBN(ctx, b.isbn); err == nil {
			fmt.Printf("  skipping %q, ISBN already present\n", b.title)
			continue
		}

		id, err := s.AllocateID()
		if err != nil {
			log.Fatalf("Failed to allocate id: %v", err)
		}

		book := &domain.Book{
			ID:            id,
			Title:         b.title,
			Authors:       b.authors,
			ISBN:          b.isbn,
			Publisher:     b.publisher,
			PublishedDate: b.publishedDate,
			Genre:         b.genre,
		}
		rating := &domain.Rating{
			ID:     id,
			Title:  b.title,
			Values: []int{},
		}

		if err := s.CreateBookWithRating(ctx, book, rating); err != nil {
			log.Fatalf("Failed to create %q: %v", b.title, err)
		}

		var average float64
		for range *ratingsPerBook {
			average, err = s.AppendRatingValue(ctx, id, 1+rand.Intn(5))
			if err != nil {
				log.Fatalf("Failed to rate %q: %v", b.title, err)
			}
		}

		fmt.Printf("  seeded %q (id %s, %d ratings, average %.2f)\n", b.title, id, *ratingsPerBook, average)
	}

	fmt.Println("Done")
}
