// Package handlers implements the API endpoints. Every handler reads
// from the frozen registry through the application container and caches
// its rendered payload, so request handling is lock-light and
// repeatable.
package handlers

import (
	"github.com/rs/zerolog"

	"github.com/modelatlas/modelatlas/cmd/application"
	"github.com/modelatlas/modelatlas/internal/server/cache"
)

// Handlers bundles the dependencies the endpoint methods share.
type Handlers struct {
	app    application.Application
	cache  *cache.Cache
	logger *zerolog.Logger
}

// New wires the handler set.
func New(app application.Application, c *cache.Cache, logger *zerolog.Logger) *Handlers {
	return &Handlers{app: app, cache: c, logger: logger}
}
