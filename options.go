package fieldpath

import (
	"log/slog"
)

type config struct {
	logger  *slog.Logger
	catalog Catalog
	seed    []Access
}

type Option func(*config)

// WithLogger sets the logger used for cache and rejection events. A nil
// logger discards output.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	}
}

// WithCatalog supplies field-level labels for declarations without an
// explicit Display.
func WithCatalog(catalog Catalog) Option {
	return func(c *config) {
		c.catalog = catalog
	}
}

// WithSeed pre-resolves declarations when the resolver is built.
func WithSeed(accesses ...Access) Option {
	return func(c *config) {
		c.seed = append(c.seed, accesses...)
	}
}
