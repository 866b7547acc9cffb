package providers

import (
	"github.com/samber/do/v2"

	"github.com/bookclubapp/bookclub-server/internal/config"
	"github.com/bookclubapp/bookclub-server/internal/logger"
	"github.com/bookclubapp/bookclub-server/internal/metadata/googlebooks"
	"github.com/bookclubapp/bookclub-server/internal/service"
)

// ProvideGoogleBooksClient provides the Google Books API client.
func ProvideGoogleBooksClient(i do.Injector) (*googlebooks.Client, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	var opts []googlebooks.Option
	if cfg.GoogleBooks.BaseURL != "" {
		opts = append(opts, googlebooks.WithBaseURL(cfg.GoogleBooks.BaseURL))
	}
	if cfg.GoogleBooks.RequestsPerSecond > 0 {
		opts = append(opts, googlebooks.WithRateLimit(cfg.GoogleBooks.RequestsPerSecond, 3))
	}

	client := googlebooks.New(log.Logger, opts...)
	log.Info("Google Books client initialized", "base_url", cfg.GoogleBooks.BaseURL)

	return client, nil
}

// ProvideEnricher provides the book metadata enricher.
func ProvideEnricher(i do.Injector) (*service.Enricher, error) {
	client := do.MustInvoke[*googlebooks.Client](i)
	log := do.MustInvoke[*logger.Logger](i)

	return service.NewEnricher(client, log.Logger), nil
}
