// Package main provides a read-only inspection tool for the catalog database.
//
// Usage:
//
//	DB_PATH=~/BookClub/data/db go run ./cmd/dbinspect
package main

import (
	"encoding/json/v2"
	"fmt"
	"log"
	"os"

	"github.com/dgraph-io/badger/v4"

	"github.com/bookclubapp/bookclub-server/internal/domain"
)

func main() {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = os.ExpandEnv("$HOME/BookClub/data/db")
	}

	opts := badger.DefaultOptions(dbPath).
		WithReadOnly(true).
		WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	fmt.Println("=== Database Inspection ===")
	fmt.Println()

	bookCount := 0
	ratingCount := 0
	ratedBooks := 0
	totalValues := 0
	indexCount := 0

	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			key := string(item.Key())

			switch {
			case len(key) > 5 && key[:5] == "book:":
				bookCount++
				err := item.Value(func(val []byte) error {
					var book domain.Book
					if err := json.Unmarshal(val, &book); err != nil {
						return err
					}
					fmt.Printf("  book %s: %q by %s [%s]\n", book.ID, book.Title, book.Authors, book.Genre)
					return nil
				})
				if err != nil {
					return err
				}
			case len(key) > 7 && key[:7] == "rating:":
				ratingCount++
				err := item.Value(func(val []byte) error {
					var rating domain.Rating
					if err := json.Unmarshal(val, &rating); err != nil {
						return err
					}
					if len(rating.Values) > 0 {
						ratedBooks++
						totalValues += len(rating.Values)
					}
					return nil
				})
				if err != nil {
					return err
				}
			case len(key) > 4 && key[:4] == "idx:":
				indexCount++
			}
		}
		return nil
	})
	if err != nil {
		log.Fatalf("Inspection failed: %v", err)
	}

	fmt.Println()
	fmt.Printf("Books:          %d\n", bookCount)
	fmt.Printf("Ratings:        %d (rated: %d, values: %d)\n", ratingCount, ratedBooks, totalValues)
	fmt.Printf("ISBN index:     %d entries\n", indexCount)

	if bookCount != ratingCount {
		fmt.Printf("\nWARNING: book/rating pairing is broken (%d books, %d ratings)\n", bookCount, ratingCount)
	}
}
