package service

import (
	"context"
	"log/slog"
	"math"
	"sort"

	"github.com/bookclubapp/bookclub-server/internal/domain"
	"github.com/bookclubapp/bookclub-server/internal/errors"
	"github.com/bookclubapp/bookclub-server/internal/store"
)

// minRatingVolume is the smallest sample size a rating needs before it
// can appear in the top-books ranking.
const minRatingVolume = 3

// RatingService accumulates rating values and serves the derived
// top-books ranking.
type RatingService struct {
	store  *store.Store
	logger *slog.Logger
}

// NewRatingService creates a new rating service.
func NewRatingService(store *store.Store, logger *slog.Logger) *RatingService {
	return &RatingService{
		store:  store,
		logger: logger,
	}
}

// Rate appends a value to a book's rating and returns the new average.
// The value must be integer-valued and in [1,5]; JSON numbers such as
// 3.0 qualify, 3.5 does not.
func (s *RatingService) Rate(ctx context.Context, id string, value float64) (float64, error) {
	if value != math.Trunc(value) || value < 1 || value > 5 {
		return 0, errors.InvalidRatingValue("only integer values in the range 1-5 are accepted")
	}

	average, err := s.store.AppendRatingValue(ctx, id, int(value))
	if err != nil {
		if errors.Is(err, store.ErrRatingNotFound) {
			return 0, errors.NotFound("book not found")
		}
		return 0, errors.Internal("failed to append rating value").WithCause(err)
	}
	return average, nil
}

// Get retrieves the rating state for a single book.
func (s *RatingService) Get(ctx context.Context, id string) (*domain.Rating, error) {
	rating, err := s.store.GetRating(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRatingNotFound) {
			return nil, errors.NotFound("book not found")
		}
		return nil, errors.Internal("failed to get rating").WithCause(err)
	}
	return rating, nil
}

// List returns the full rating collection.
func (s *RatingService) List(ctx context.Context) ([]*domain.Rating, error) {
	ratings, err := s.store.ListRatings(ctx)
	if err != nil {
		return nil, errors.Internal("failed to list ratings").WithCause(err)
	}
	return ratings, nil
}

// TopBooks returns the highest-averaged books with sufficient rating
// volume, grouped into bands of equal average.
func (s *RatingService) TopBooks(ctx context.Context) ([]domain.RankedBook, error) {
	ratings, err := s.store.ListRatings(ctx)
	if err != nil {
		return nil, errors.Internal("failed to list ratings").WithCause(err)
	}
	return rankTop(ratings), nil
}

// rankTop filters out ratings with fewer than three values, sorts the
// rest by average descending (stable, so exact ties keep their input
// order) and walks the result counting distinct-average bands.
//
// The cutoff is evaluated before each entry: a fourth distinct average
// still opens a band and is emitted, but nothing after that first entry
// is, not even a tie on the same average. Existing clients depend on
// this exact cutoff, so it must not be "corrected".
func rankTop(ratings []*domain.Rating) []domain.RankedBook {
	eligible := make([]*domain.Rating, 0, len(ratings))
	for _, r := range ratings {
		if len(r.Values) >= minRatingVolume {
			eligible = append(eligible, r)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].Average > eligible[j].Average
	})

	top := []domain.RankedBook{}
	bands := 0
	last := -1.0 // impossible sentinel, valid averages are in [1,5]
	for _, r := range eligible {
		if bands > 3 {
			break
		}
		if r.Average != last {
			last = r.Average
			bands++
		}
		top = append(top, domain.RankedBook{
			ID:      r.ID,
			Title:   r.Title,
			Average: r.Average,
		})
	}
	return top
}
