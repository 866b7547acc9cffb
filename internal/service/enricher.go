// Package service provides the business logic layer for the book club catalog.
package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/bookclubapp/bookclub-server/internal/domain"
	"github.com/bookclubapp/bookclub-server/internal/errors"
	"github.com/bookclubapp/bookclub-server/internal/metadata/googlebooks"
)

// authorSeparator joins multi-author lists into the single stored string.
const authorSeparator = " and "

// publishedDatePattern accepts a full date or a bare year, nothing else.
var publishedDatePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}|\d{4})$`)

// MetadataLookup resolves raw volume metadata for an ISBN.
type MetadataLookup interface {
	Lookup(ctx context.Context, isbn string) (*googlebooks.Volume, error)
}

// Enricher resolves author, publisher and publication date for an ISBN,
// applying the catalog's fallback rules to the raw lookup result.
type Enricher struct {
	client MetadataLookup
	logger *slog.Logger
}

// NewEnricher creates a new enricher backed by the given lookup client.
func NewEnricher(client MetadataLookup, logger *slog.Logger) *Enricher {
	return &Enricher{
		client: client,
		logger: logger,
	}
}

// Enrich looks up the ISBN and normalizes the result:
//   - no matching volume means the ISBN itself is invalid;
//   - an unreachable or failing source aborts with an enrichment error;
//   - absent fields resolve to the "missing" sentinel;
//   - authors are joined with " and " in source order;
//   - a published date that is neither YYYY-MM-DD nor YYYY becomes "missing".
func (e *Enricher) Enrich(ctx context.Context, isbn string) (domain.Enrichment, error) {
	volume, err := e.client.Lookup(ctx, isbn)
	if err != nil {
		if errors.Is(err, googlebooks.ErrNoMatch) {
			return domain.Enrichment{}, errors.InvalidISBN("invalid ISBN number")
		}
		e.logger.Error("metadata lookup failed", "isbn", isbn, "error", err)
		return domain.Enrichment{}, errors.EnrichmentUnavailable("unable to connect to external metadata source").WithCause(err)
	}

	enrichment := domain.Enrichment{
		Authors:       domain.FieldMissing,
		Publisher:     domain.FieldMissing,
		PublishedDate: domain.FieldMissing,
	}

	if len(volume.Authors) > 0 {
		enrichment.Authors = strings.Join(volume.Authors, authorSeparator)
	}
	if volume.Publisher != "" {
		enrichment.Publisher = volume.Publisher
	}
	if publishedDatePattern.MatchString(volume.PublishedDate) {
		enrichment.PublishedDate = volume.PublishedDate
	}

	return enrichment, nil
}
