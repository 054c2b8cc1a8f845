// Package serve provides the API server command.
package serve

import (
	"github.com/spf13/cobra"

	"github.com/modelatlas/modelatlas/cmd/application"
	"github.com/modelatlas/modelatlas/internal/server"
)

// NewCommand creates the serve command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cfg := server.DefaultConfig()

	cmd := &cobra.Command{
		Use:     "serve",
		GroupID: "core",
		Short:   "Serve the registry over a read-only HTTP API",
		Long: `Serve starts an HTTP server exposing the registry as a read-only
JSON API. The registry is frozen at startup, so responses are cached and
every request sees the same snapshot.

Endpoints:
  GET /healthz                          Liveness probe
  GET /readyz                           Readiness probe
  GET /v1/models                        List models (filterable)
  GET /v1/models/{id}                   One model's metadata
  GET /v1/resolve/{name}                Resolve a name to loader config
  GET /v1/collections                   List collections
  GET /v1/collections/{name}            One collection
  GET /v1/collections/{name}/models     A collection's members`,
		Example: `  modelatlas serve                   # Serve on localhost:8080
  modelatlas serve --port 9090       # Custom port
  modelatlas serve --cors            # Enable CORS for browser clients`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			srv, err := server.New(app, cfg)
			if err != nil {
				return err
			}
			return srv.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "host to bind")
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "port to listen on")
	cmd.Flags().DurationVar(&cfg.CacheTTL, "cache-ttl", cfg.CacheTTL, "response cache TTL")
	cmd.Flags().BoolVar(&cfg.CORSEnabled, "cors", false, "enable CORS headers")
	cmd.Flags().StringSliceVar(&cfg.CORSOrigins, "cors-origins", nil, "allowed CORS origins (default: all)")

	return cmd
}
