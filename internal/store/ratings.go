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

// Rating Operations

// GetRating retrieves a rating by its book ID.
func (s *Store) GetRating(ctx context.Context, id string) (*domain.Rating, error) {
	key := []byte(ratingPrefix + id)

	var rating domain.Rating
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &rating)
		})
	})
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, fmt.Errorf("get rating: %w", err)
	}
	return &rating, nil
}

// ListRatings returns all ratings in key order.
func (s *Store) ListRatings(ctx context.Context) ([]*domain.Rating, error) {
	ratings := []*domain.Rating{}

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(ratingPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			var rating domain.Rating
			err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &rating)
			})
			if err != nil {
				return err
			}
			ratings = append(ratings, &rating)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	return ratings, nil
}

// AppendRatingValue appends a value to a rating and recomputes its
// average inside a single transaction, returning the new average.
// Badger's optimistic concurrency surfaces racing appends as
// ErrConflict; the transaction is retried so no value is ever lost.
func (s *Store) AppendRatingValue(ctx context.Context, id string, value int) (float64, error) {
	key := []byte(ratingPrefix + id)

	for {
		var average float64
		err := s.db.Update(func(txn *badger.Txn) error {
			item, err := txn.Get(key)
			if err != nil {
				return err
			}

			var rating domain.Rating
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &rating)
			}); err != nil {
				return fmt.Errorf("unmarshal rating: %w", err)
			}

			rating.Values = append(rating.Values, value)
			rating.Average = domain.Mean(rating.Values)
			average = rating.Average

			data, err := json.Marshal(&rating)
			if err != nil {
				return fmt.Errorf("marshal rating: %w", err)
			}
			return txn.Set(key, data)
		})

		switch {
		case err == nil:
			if s.logger != nil {
				s.logger.LogAttrs(ctx, slog.LevelInfo, "rating value appended",
					slog.String("id", id),
					slog.Int("value", value),
					slog.Float64("average", average),
				)
			}
			return average, nil
		case errors.Is(err, badger.ErrConflict):
			continue
		case errors.Is(err, badger.ErrKeyNotFound):
			return 0, ErrRatingNotFound
		default:
			return 0, fmt.Errorf("append rating value: %w", err)
		}
	}
}
