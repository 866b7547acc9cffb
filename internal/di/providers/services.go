package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookclubapp/bookclub-server/internal/logger"
	"github.com/bookclubapp/bookclub-server/internal/service"
)

// ProvideBookService provides the book lifecycle service.
func ProvideBookService(i do.Injector) (*service.BookService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	enricher := do.MustInvoke[*service.Enricher](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewBookService(storeHandle.Store, enricher, log.Logger), nil
}

// ProvideRatingService provides the rating aggregation and ranking service.
func ProvideRatingService(i do.Injector) (*service.RatingService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewRatingService(storeHandle.Store, log.Logger), nil
}
